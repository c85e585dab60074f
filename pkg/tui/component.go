// ABOUTME: Core rendering contract: a Component fills a frame-sized RenderBuffer with rows
// ABOUTME: Rows is the placeholder component drawn when no text buffer is open

package tui

// Component is anything that can draw itself into a frame. The buffer
// carries the frame size and enforces it.
type Component interface {
	Render(out *RenderBuffer)
}

// Rows draws one placeholder marker per terminal row, vi-style.
type Rows struct {
	Placeholder string
}

// DefaultPlaceholder marks rows past the end of the (empty) document.
const DefaultPlaceholder = "~"

// Render fills every row of out.
func (r Rows) Render(out *RenderBuffer) {
	for out.WriteLine(r.Placeholder) {
	}
}
