// Package preview matches parsed blocks against elements of the rendered
// preview pane. All rendering-surface specifics sit behind the Surface
// capability interface so the matching logic runs headless in tests.
package preview

// Rect describes an element's vertical extent in the surface's own scroll
// units (rendered lines for the terminal pane, pixels for a GUI embedding).
type Rect struct {
	Top    float64
	Height float64
}

// Bottom returns the rect's lower edge.
func (r Rect) Bottom() float64 {
	return r.Top + r.Height
}

// Contains reports whether the vertical offset y falls inside the rect.
func (r Rect) Contains(y float64) bool {
	return y >= r.Top && y <= r.Bottom()
}

// Element is a single rendered block-level element.
type Element interface {
	// Tag identifies the element kind: h1..h6, p, pre, code, ul, ol,
	// blockquote, table, hr, img.
	Tag() string
	// Text returns the element's rendered plain text.
	Text() string
}

// Surface is the narrow capability interface over a rendered preview pane.
type Surface interface {
	// QueryByTag returns all elements with any of the given tags, in
	// document order.
	QueryByTag(tags ...string) []Element
	// ElementRect returns the element's vertical extent.
	ElementRect(el Element) Rect
	// ScrollTo scrolls the pane so the given offset is at the top.
	ScrollTo(offset float64)
	// Viewport returns the currently visible extent of the pane.
	Viewport() Rect
}
