package tui

import (
	"github.com/colonyops/marksync/internal/engine/preview"
	"github.com/colonyops/marksync/internal/tui/markdown"
)

// paneHolder adapts the current rendered pane to the engine's Surface
// interface. The coordinator keeps one handle for its whole lifetime while
// the model swaps panes underneath on every re-render.
type paneHolder struct {
	pane *markdown.Pane
}

func (h *paneHolder) QueryByTag(tags ...string) []preview.Element {
	if h.pane == nil {
		return nil
	}
	return h.pane.QueryByTag(tags...)
}

func (h *paneHolder) ElementRect(el preview.Element) preview.Rect {
	if h.pane == nil {
		return preview.Rect{}
	}
	return h.pane.ElementRect(el)
}

func (h *paneHolder) ScrollTo(offset float64) {
	if h.pane != nil {
		h.pane.ScrollTo(offset)
	}
}

func (h *paneHolder) Viewport() preview.Rect {
	if h.pane == nil {
		return preview.Rect{}
	}
	return h.pane.Viewport()
}

// SetViewport forwards the widget's visible extent to the current pane.
func (h *paneHolder) SetViewport(top, height float64) {
	if h.pane != nil {
		h.pane.SetViewport(top, height)
	}
}

// editorBridge is the host-editor boundary. The engine requests a line;
// the model drains the request and moves the textarea cursor, so the
// engine never touches the widget directly.
type editorBridge struct {
	line    int
	pending bool
}

// ScrollToLine implements engine.Editor.
func (b *editorBridge) ScrollToLine(line int) {
	b.line = line
	b.pending = true
}

// Take returns the pending 1-based target line, if any, and clears it.
func (b *editorBridge) Take() (int, bool) {
	if !b.pending {
		return 0, false
	}
	b.pending = false
	return b.line, true
}
