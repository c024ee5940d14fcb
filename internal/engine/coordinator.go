// Package engine orchestrates semantic scroll synchronization between a
// markdown editing surface and its rendered preview. It owns the current
// block list and drives both sync directions, guarding against the feedback
// loop a programmatic scroll would otherwise cause.
package engine

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/colonyops/marksync/internal/engine/block"
	"github.com/colonyops/marksync/internal/engine/position"
	"github.com/colonyops/marksync/internal/engine/preview"
)

// Mode selects the synchronization strategy.
type Mode string

// Accuracy selects how aggressively matching may trade cost for precision.
type Accuracy string

const (
	ModeSemantic  Mode = "semantic"   // match corresponding content blocks
	ModeLineBased Mode = "line-based" // caller scrolls proportionally; engine stands down
	ModeHybrid    Mode = "hybrid"     // semantic matching with caller-side fallback

	AccuracyFast     Accuracy = "fast"
	AccuracyBalanced Accuracy = "balanced"
	AccuracyPrecise  Accuracy = "precise"
)

// DefaultCooldown is the suppression window after a programmatic scroll.
const DefaultCooldown = 100 * time.Millisecond

// ContentParser rebuilds the block list from the full document text.
type ContentParser interface {
	Parse(content string) []block.Block
}

// Editor is the host editing widget boundary. The engine calls it on the
// preview→editor path and never expects a result; implementations must not
// call back into the Coordinator synchronously.
type Editor interface {
	ScrollToLine(line int)
}

// NopEditor discards scroll requests, for embeddings without a host editor.
type NopEditor struct{}

// ScrollToLine implements Editor.
func (NopEditor) ScrollToLine(int) {}

// Options configures a Coordinator. Zero values take documented defaults.
type Options struct {
	Mode         Mode
	Accuracy     Accuracy // accepted and threaded, currently inert
	Cooldown     time.Duration
	HeaderOffset float64 // fixed offset subtracted from scroll targets
	Parser       ContentParser
	Logger       zerolog.Logger
	Clock        func() time.Time
}

// Coordinator owns the block list and serializes editor→preview and
// preview→editor synchronization. It is single-threaded: both event sources
// must call in from the same event loop.
type Coordinator struct {
	surface preview.Surface
	editor  Editor
	parser  ContentParser
	guard   *guard
	log     zerolog.Logger

	mode         Mode
	accuracy     Accuracy
	headerOffset float64

	blocks      []block.Block
	lastContent string
	haveContent bool
}

// New creates a Coordinator bound to a preview surface and host editor.
func New(surface preview.Surface, editor Editor, opts Options) *Coordinator {
	if opts.Mode == "" {
		opts.Mode = ModeSemantic
	}
	if opts.Accuracy == "" {
		opts.Accuracy = AccuracyBalanced
	}
	if opts.Cooldown == 0 {
		opts.Cooldown = DefaultCooldown
	}
	if opts.Parser == nil {
		opts.Parser = block.NewParser()
	}
	if editor == nil {
		editor = NopEditor{}
	}

	return &Coordinator{
		surface:      surface,
		editor:       editor,
		parser:       opts.Parser,
		guard:        newGuard(opts.Cooldown, opts.Clock),
		log:          opts.Logger,
		mode:         opts.Mode,
		accuracy:     opts.Accuracy,
		headerOffset: opts.HeaderOffset,
	}
}

// Blocks returns the current block list. The slice is replaced wholesale on
// every content update; callers must not mutate it.
func (c *Coordinator) Blocks() []block.Block {
	return c.blocks
}

// UpdateContent re-parses the document and replaces the block list. Updates
// with unchanged content are a no-op; the check is plain string equality,
// per-block hashes are not consulted. Callers are expected to debounce
// rapid edits.
func (c *Coordinator) UpdateContent(content string) {
	if c.haveContent && content == c.lastContent {
		return
	}

	c.blocks = c.parser.Parse(content)
	c.lastContent = content
	c.haveContent = true
	c.log.Debug().Int("blocks", len(c.blocks)).Msg("content reparsed")
}

// SyncEditorToPreview scrolls the preview to the block under the 0-based
// editor cursor, landing proportionally inside the rendered element. Every
// lookup miss is a silent no-op: the preview simply does not move.
func (c *Coordinator) SyncEditorToPreview(line, column int) {
	if c.guard.Active() || c.mode == ModeLineBased {
		return
	}

	pos, ok := position.Locate(c.blocks, line, column)
	if !ok {
		return
	}

	el, ok := preview.Locate(c.blocks, pos, c.surface)
	if !ok {
		c.log.Debug().Str("block", pos.BlockID).Msg("no rendered element for block")
		return
	}

	rect := c.surface.ElementRect(el)
	target := rect.Top - c.headerOffset + rect.Height*pos.Percentage

	c.guard.Engage()
	c.surface.ScrollTo(target)
	c.guard.Release()
}

// SyncPreviewToEditor maps the rendered element straddling the vertical
// center of the preview viewport back to its source block and asks the host
// editor to move there. The editor call is a boundary call; the guard
// absorbs any scroll events it echoes back.
func (c *Coordinator) SyncPreviewToEditor(scrollTop float64) {
	if c.guard.Active() || c.mode == ModeLineBased {
		return
	}

	center := scrollTop + c.surface.Viewport().Height/2

	var visible preview.Element
	for _, el := range c.surface.QueryByTag(preview.AllBlockTags()...) {
		if c.surface.ElementRect(el).Contains(center) {
			visible = el
			break
		}
	}
	if visible == nil {
		return
	}

	b, ok := preview.MatchBlock(c.blocks, visible)
	if !ok {
		c.log.Debug().Str("tag", visible.Tag()).Msg("no block for visible element")
		return
	}

	c.guard.Engage()
	c.editor.ScrollToLine(b.StartLine)
	c.guard.Release()
}
