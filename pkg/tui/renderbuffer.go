// ABOUTME: RenderBuffer holds one frame's rows, bounded to the screen it will be painted on
// ABOUTME: Rows are clipped to the frame width on write and extra rows are refused

package tui

import (
	"strings"

	"github.com/HATTER-LONG/hecto-go/pkg/tui/width"
)

// RenderBuffer collects the rows of a single frame. It never holds more than
// Height rows and no row is wider than Width cells, so whatever a component
// writes fits the screen without wrapping or scrolling.
//
// A RenderBuffer is reused from frame to frame through Reset.
type RenderBuffer struct {
	width  int
	height int
	lines  []string
}

// NewRenderBuffer returns an empty frame of cols x rows cells.
func NewRenderBuffer(cols, rows int) *RenderBuffer {
	b := &RenderBuffer{}
	b.Reset(cols, rows)
	return b
}

// Reset empties the buffer and resizes it to cols x rows, keeping the backing
// storage for the next frame.
func (b *RenderBuffer) Reset(cols, rows int) {
	b.width = max(cols, 0)
	b.height = max(rows, 0)
	if cap(b.lines) < b.height {
		b.lines = make([]string, 0, b.height)
	}
	b.lines = b.lines[:0]
}

// Width returns the frame width in cells.
func (b *RenderBuffer) Width() int { return b.width }

// Height returns the frame height in rows.
func (b *RenderBuffer) Height() int { return b.height }

// WriteLine appends a row clipped to the frame width. It reports false and
// drops the row once the frame is full.
func (b *RenderBuffer) WriteLine(line string) bool {
	if b.Full() {
		return false
	}
	b.lines = append(b.lines, width.Clip(line, b.width))
	return true
}

// Full reports whether every row of the frame has been written.
func (b *RenderBuffer) Full() bool {
	return len(b.lines) >= b.height
}

// Len returns the number of rows written.
func (b *RenderBuffer) Len() int {
	return len(b.lines)
}

// Lines returns the rows written so far. The slice is reused by Reset.
func (b *RenderBuffer) Lines() []string {
	return b.lines
}

// Frame joins the rows with CRLF. There is no break after the last row, so a
// full-height frame leaves the cursor on the bottom row and never scrolls.
// Raw mode turns off output post-processing, hence the explicit carriage return.
func (b *RenderBuffer) Frame() string {
	return strings.Join(b.lines, "\r\n")
}
