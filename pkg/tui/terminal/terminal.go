// ABOUTME: Defines the Device interface for raw mode, size queries, and terminal I/O.
// ABOUTME: Also holds the Size and Position value types shared by the session and the editor.

package terminal

import "math"

// Device abstracts low-level terminal operations: raw mode, size queries,
// output writing and input reading. Implementations target a real TTY
// (ProcessTerminal) or memory (VirtualTerminal).
type Device interface {
	EnterRawMode() error
	ExitRawMode() error
	Size() (width, height int, err error)
	Write(p []byte) (n int, err error)
	// Read blocks until at least one byte of input is available.
	Read(p []byte) (n int, err error)
}

// Size is the terminal dimension in character cells.
type Size struct {
	Width  int
	Height int
}

// Position is a zero-based cell coordinate in editor space.
type Position struct {
	X uint16
	Y uint16
}

// Origin is the top-left cell.
var Origin = Position{}

// OneBased converts p to the one-based column and row terminals expect.
// The conversion saturates at math.MaxUint16 instead of wrapping to zero.
func (p Position) OneBased() (col, row uint16) {
	return saturatingInc(p.X), saturatingInc(p.Y)
}

func saturatingInc(v uint16) uint16 {
	if v == math.MaxUint16 {
		return v
	}
	return v + 1
}
