// Package markdown renders parsed blocks into a terminal preview pane.
// Each block is rendered independently so the pane knows the exact line
// extent of every element, which is what the sync engine scrolls against.
package markdown

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/colonyops/marksync/internal/engine/block"
	"github.com/colonyops/marksync/internal/engine/preview"
)

// minWrapWidth is the narrowest width the renderer will wrap at. Glamour
// produces garbage below this.
const minWrapWidth = 20

// Element is one rendered block in the pane.
type Element struct {
	tag  string
	text string
	rect preview.Rect
}

// Tag implements preview.Element.
func (e *Element) Tag() string { return e.tag }

// Text implements preview.Element.
func (e *Element) Text() string { return e.text }

// Renderer turns block lists into panes. It holds the glamour style name
// and a goldmark instance for plain-text extraction.
type Renderer struct {
	style string
	md    goldmark.Markdown
}

// NewRenderer creates a renderer using the named glamour style.
func NewRenderer(style string) *Renderer {
	return &Renderer{
		style: style,
		md:    goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
}

// Render renders each block at the given wrap width and assembles a pane.
// Blocks are separated by a single blank line; element rects are measured
// in rendered lines relative to the top of the pane.
func (r *Renderer) Render(blocks []block.Block, width int) (*Pane, error) {
	if width < minWrapWidth {
		width = minWrapWidth
	}

	gr, err := glamour.NewTermRenderer(
		glamour.WithStylePath(r.style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, fmt.Errorf("create term renderer: %w", err)
	}

	p := &Pane{}
	for _, b := range blocks {
		rendered, err := gr.Render(b.Content)
		if err != nil {
			return nil, fmt.Errorf("render block %s: %w", b.ID, err)
		}

		lines := strings.Split(strings.Trim(rendered, "\n"), "\n")
		if len(p.lines) > 0 {
			p.lines = append(p.lines, "")
		}

		p.elements = append(p.elements, &Element{
			tag:  tagFor(b),
			text: r.plainText(b),
			rect: preview.Rect{
				Top:    float64(len(p.lines)),
				Height: float64(len(lines)),
			},
		})
		p.lines = append(p.lines, lines...)
	}
	return p, nil
}

// tagFor maps a block to the single tag its rendering is treated as.
func tagFor(b block.Block) string {
	switch b.Kind {
	case block.KindHeading:
		return fmt.Sprintf("h%d", b.Level)
	case block.KindCode:
		return "pre"
	case block.KindList:
		if isOrderedList(b.Content) {
			return "ol"
		}
		return "ul"
	case block.KindBlockquote:
		return "blockquote"
	case block.KindTable:
		return "table"
	case block.KindHorizontalRule:
		return "hr"
	case block.KindImage:
		return "img"
	default:
		return "p"
	}
}

func isOrderedList(content string) bool {
	first := strings.TrimSpace(strings.SplitN(content, "\n", 2)[0])
	return len(first) > 0 && first[0] >= '0' && first[0] <= '9'
}

// Pane is a rendered preview. It implements preview.Surface headlessly:
// scroll requests are recorded, not executed, and the owning widget drains
// them with TakeScroll.
type Pane struct {
	elements []*Element
	lines    []string

	viewport      preview.Rect
	scrollTarget  float64
	scrollPending bool
}

// QueryByTag implements preview.Surface.
func (p *Pane) QueryByTag(tags ...string) []preview.Element {
	var out []preview.Element
	for _, el := range p.elements {
		for _, tag := range tags {
			if el.tag == tag {
				out = append(out, el)
				break
			}
		}
	}
	return out
}

// ElementRect implements preview.Surface. Unknown elements get a zero rect.
func (p *Pane) ElementRect(el preview.Element) preview.Rect {
	for _, e := range p.elements {
		if preview.Element(e) == el {
			return e.rect
		}
	}
	return preview.Rect{}
}

// ScrollTo implements preview.Surface by recording the requested offset.
func (p *Pane) ScrollTo(offset float64) {
	if offset < 0 {
		offset = 0
	}
	p.scrollTarget = offset
	p.scrollPending = true
}

// TakeScroll returns the pending scroll target, if any, and clears it.
func (p *Pane) TakeScroll() (float64, bool) {
	if !p.scrollPending {
		return 0, false
	}
	p.scrollPending = false
	return p.scrollTarget, true
}

// SetViewport records the widget's visible extent.
func (p *Pane) SetViewport(top, height float64) {
	p.viewport = preview.Rect{Top: top, Height: height}
}

// Viewport implements preview.Surface.
func (p *Pane) Viewport() preview.Rect {
	return p.viewport
}

// Content returns the full rendered pane text for the viewport widget.
func (p *Pane) Content() string {
	return strings.Join(p.lines, "\n")
}

// LineCount returns the number of rendered lines in the pane.
func (p *Pane) LineCount() int {
	return len(p.lines)
}

// Elements returns the pane's elements in document order.
func (p *Pane) Elements() []preview.Element {
	out := make([]preview.Element, len(p.elements))
	for i, el := range p.elements {
		out[i] = el
	}
	return out
}
