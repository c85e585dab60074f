// ABOUTME: Frame painting: renders a Component into a RenderBuffer and prints the joined frame
// ABOUTME: The buffer bounds the frame to the screen size so painting never scrolls

package tui

// Printer is the minimal output surface a frame is painted on.
type Printer interface {
	Print(text string)
}

// Paint resets buf to cols x rows, renders c into it, and prints the frame
// starting at the current cursor position. It returns the rows painted.
func Paint(p Printer, c Component, buf *RenderBuffer, cols, rows int) int {
	buf.Reset(cols, rows)
	c.Render(buf)
	if buf.Len() > 0 {
		p.Print(buf.Frame())
	}
	return buf.Len()
}
