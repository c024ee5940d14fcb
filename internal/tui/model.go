// Package tui implements the side-by-side markdown editor: a textarea on
// the left, the rendered preview on the right, and the sync engine keeping
// the two aligned as the cursor or preview scroll moves.
package tui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/colonyops/marksync/internal/core/config"
	"github.com/colonyops/marksync/internal/core/logging"
	"github.com/colonyops/marksync/internal/engine"
	"github.com/colonyops/marksync/internal/engine/position"
	"github.com/colonyops/marksync/internal/tui/markdown"
)

type focusArea int

const (
	focusEditor focusArea = iota
	focusPreview
)

// Model is the root bubbletea model for the editor.
type Model struct {
	path string
	cfg  *config.Config
	keys KeyMap
	log  zerolog.Logger

	editor   textarea.Model
	preview  viewport.Model
	renderer *markdown.Renderer
	holder   *paneHolder
	bridge   *editorBridge
	coord    *engine.Coordinator

	focus         focusArea
	width, height int
	ready         bool
	dirty         bool
	status        string

	// Last cursor seen, to sync only on movement.
	lastLine, lastCol int
}

// New creates an editor model for the given file path and initial content.
func New(path, content string, cfg *config.Config) Model {
	ed := textarea.New()
	ed.ShowLineNumbers = true
	ed.CharLimit = 0
	ed.MaxHeight = 0
	ed.MaxWidth = 0
	ed.SetValue(content)
	ed.Focus()

	holder := &paneHolder{}
	bridge := &editorBridge{}

	opts := cfg.EngineOptions()
	opts.Logger = logging.Component("engine")

	m := Model{
		path:     path,
		cfg:      cfg,
		keys:     DefaultKeyMap(),
		log:      logging.Component("tui"),
		editor:   ed,
		preview:  viewport.New(0, 0),
		renderer: markdown.NewRenderer(cfg.TUI.Theme),
		holder:   holder,
		bridge:   bridge,
		coord:    engine.New(holder, bridge, opts),
		lastLine: -1,
		lastCol:  -1,
	}
	m.coord.UpdateContent(content)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	editorWidth, previewWidth := m.paneWidths()
	contentHeight := m.height - statusBarHeight - paneFrameHeight

	m.editor.SetWidth(editorWidth)
	m.editor.SetHeight(contentHeight)
	m.preview.Width = previewWidth
	m.preview.Height = contentHeight

	m.ready = true
	m.renderPreview()
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Save):
		return m.save()
	case key.Matches(msg, m.keys.ToggleFocus):
		return m.toggleFocus()
	}

	if m.focus == focusPreview {
		var cmd tea.Cmd
		m.preview, cmd = m.preview.Update(msg)
		m.syncPreviewToEditor()
		return m, cmd
	}

	before := m.editor.Value()

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)

	if after := m.editor.Value(); after != before {
		m.dirty = true
		m.status = ""
		m.coord.UpdateContent(after)
		m.renderPreview()
	}
	m.syncEditorToPreview()

	return m, cmd
}

func (m *Model) toggleFocus() (tea.Model, tea.Cmd) {
	if m.focus == focusEditor {
		m.focus = focusPreview
		m.editor.Blur()
		return *m, nil
	}
	m.focus = focusEditor
	return *m, m.editor.Focus()
}

func (m *Model) save() (tea.Model, tea.Cmd) {
	if err := os.WriteFile(m.path, []byte(m.editor.Value()), 0o644); err != nil {
		m.log.Error().Err(err).Str("path", m.path).Msg("save failed")
		m.status = "save failed: " + err.Error()
		return *m, nil
	}
	m.dirty = false
	m.status = "saved"
	return *m, nil
}

// syncEditorToPreview forwards cursor movement into the engine and applies
// any scroll the engine requested to the preview widget.
func (m *Model) syncEditorToPreview() {
	line, col := m.cursor()
	if line == m.lastLine && col == m.lastCol {
		return
	}
	m.lastLine, m.lastCol = line, col

	m.holder.SetViewport(float64(m.preview.YOffset), float64(m.preview.Height))
	m.coord.SyncEditorToPreview(line, col)

	if m.holder.pane != nil {
		if target, ok := m.holder.pane.TakeScroll(); ok {
			m.preview.SetYOffset(int(target + 0.5))
		}
	}
}

// syncPreviewToEditor forwards a preview scroll into the engine and moves
// the textarea cursor to whatever line the engine asked for.
func (m *Model) syncPreviewToEditor() {
	m.holder.SetViewport(float64(m.preview.YOffset), float64(m.preview.Height))
	m.coord.SyncPreviewToEditor(float64(m.preview.YOffset))

	if line, ok := m.bridge.Take(); ok {
		m.moveCursorToLine(line)
	}
}

// moveCursorToLine moves the textarea cursor to a 1-based document line.
func (m *Model) moveCursorToLine(line int) {
	target := line - 1
	if target < 0 {
		target = 0
	}
	if max := m.editor.LineCount() - 1; target > max {
		target = max
	}

	for m.editor.Line() < target {
		m.editor.CursorDown()
	}
	for m.editor.Line() > target {
		m.editor.CursorUp()
	}

	// The move is programmatic; remember it so the next key event does
	// not re-sync the preview to a cursor that never moved again.
	m.lastLine, m.lastCol = m.cursor()
}

// cursor returns the 0-based cursor position in document coordinates.
func (m *Model) cursor() (line, col int) {
	info := m.editor.LineInfo()
	return m.editor.Line(), info.StartColumn + info.ColumnOffset
}

// renderPreview re-renders all blocks into a fresh pane and swaps it under
// the coordinator. Render failures keep the previous pane on screen.
func (m *Model) renderPreview() {
	if !m.ready {
		return
	}

	_, previewWidth := m.paneWidths()
	pane, err := m.renderer.Render(m.coord.Blocks(), previewWidth)
	if err != nil {
		m.log.Error().Err(err).Msg("preview render failed")
		return
	}

	m.holder.pane = pane
	m.preview.SetContent(pane.Content())
	m.holder.SetViewport(float64(m.preview.YOffset), float64(m.preview.Height))
}

func (m Model) paneWidths() (editorWidth, previewWidth int) {
	usable := m.width - 2*paneFrameWidth
	previewWidth = usable * m.cfg.TUI.PreviewRatio / 100
	editorWidth = usable - previewWidth
	if editorWidth < minPaneWidth {
		editorWidth = minPaneWidth
	}
	if previewWidth < minPaneWidth {
		previewWidth = minPaneWidth
	}
	return editorWidth, previewWidth
}

const (
	statusBarHeight = 1
	paneFrameHeight = 2 // top + bottom border
	paneFrameWidth  = 2 // left + right border
	minPaneWidth    = 20
)

// currentBlockID reports the block under the cursor for the status bar.
func (m Model) currentBlockID() string {
	pos, ok := position.Locate(m.coord.Blocks(), m.editor.Line(), 0)
	if !ok {
		return ""
	}
	return pos.BlockID
}

// statusLine renders the status bar text.
func (m Model) statusLine() string {
	marker := " "
	if m.dirty {
		marker = "*"
	}

	left := marker + m.path
	if m.status != "" {
		left += "  " + m.status
	}

	line, col := m.cursor()
	right := fmt.Sprintf("%d:%d", line+1, col+1)
	if id := m.currentBlockID(); id != "" {
		right += "  " + id
	}
	right += "  " + m.cfg.Sync.Mode

	return left + "  |  " + right
}
