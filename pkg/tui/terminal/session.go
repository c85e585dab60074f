// ABOUTME: Session owns a terminal in raw mode for its whole lifetime and is the only writer of control sequences.
// ABOUTME: Exposes cached size, screen and cursor primitives, buffered output, and one-key-at-a-time input.

package terminal

import (
	"bufio"
	"fmt"
	"sync"

	"github.com/charmbracelet/x/ansi"

	"github.com/HATTER-LONG/hecto-go/pkg/tui/key"
)

// readChunk is the most input bytes taken from the device per read.
const readChunk = 256

// Session is an exclusive raw-mode hold on a terminal.
//
// Create it once per process and hand the pointer around; the raw-mode guard
// inside is released by Close, which callers defer right after Create.
// Screen and cursor primitives only fill the output buffer: a failed device
// write is remembered and reported by the next Flush.
type Session struct {
	noCopy noCopy

	dev   Device
	size  Size
	guard *rawGuard
	out   *bufio.Writer

	pending []byte
	readBuf [readChunk]byte
}

// Create queries the terminal size and switches dev to raw mode. Failures are
// returned as *InitError; on a size failure raw mode is never touched.
func Create(dev Device) (*Session, error) {
	w, h, err := dev.Size()
	if err != nil {
		return nil, &InitError{Op: "querying size", Err: err}
	}
	if w <= 0 || h <= 0 {
		return nil, &InitError{Op: "querying size", Err: fmt.Errorf("unusable size %dx%d", w, h)}
	}

	guard, err := acquireRawMode(dev)
	if err != nil {
		return nil, &InitError{Op: "entering raw mode", Err: err}
	}

	return &Session{
		dev:   dev,
		size:  Size{Width: w, Height: h},
		guard: guard,
		out:   bufio.NewWriter(dev),
	}, nil
}

// Size returns the dimensions captured by Create. Resizes are not tracked.
func (s *Session) Size() Size {
	return s.size
}

// ClearScreen erases the whole display.
func (s *Session) ClearScreen() {
	s.emit(ansi.EraseEntireScreen)
}

// ClearCurrentLine erases the line under the cursor.
func (s *Session) ClearCurrentLine() {
	s.emit(ansi.EraseEntireLine)
}

// MoveCursor places the cursor at the zero-based position p.
func (s *Session) MoveCursor(p Position) {
	col, row := p.OneBased()
	s.emit(ansi.CursorPosition(int(col), int(row)))
}

// HideCursor makes the cursor invisible. Calls are not counted.
func (s *Session) HideCursor() {
	s.emit(ansi.HideCursor)
}

// ShowCursor makes the cursor visible.
func (s *Session) ShowCursor() {
	s.emit(ansi.ShowCursor)
}

// Print writes plain text at the cursor.
func (s *Session) Print(text string) {
	s.emit(text)
}

func (s *Session) emit(seq string) {
	// bufio.Writer keeps the first write error and returns it from Flush.
	_, _ = s.out.WriteString(seq)
}

// DiscardOutput drops unflushed output along with any write failure it hit,
// so output written afterwards reaches the device on the next Flush.
func (s *Session) DiscardOutput() {
	s.out.Reset(s.dev)
}

// Flush pushes buffered output to the terminal.
func (s *Session) Flush() error {
	if err := s.out.Flush(); err != nil {
		return &IOError{Op: "flushing output", Err: err}
	}
	return nil
}

// ReadKey blocks until one complete key is available and returns it. Input
// that arrives in one burst, such as a paste or an escape sequence, is split
// and handed out over successive calls.
func (s *Session) ReadKey() (key.Key, error) {
	for {
		if len(s.pending) > 0 {
			if k, n := key.Decode(s.pending); n > 0 {
				s.pending = s.pending[n:]
				return k, nil
			}
		}

		n, err := s.dev.Read(s.readBuf[:])
		if n > 0 {
			s.pending = append(s.pending, s.readBuf[:n]...)
		}
		if err != nil {
			// Bytes that came with the error still count.
			if k, n := key.Decode(s.pending); n > 0 {
				s.pending = s.pending[n:]
				return k, nil
			}
			return key.Key{}, &IOError{Op: "reading key", Err: err}
		}
	}
}

// Close restores the terminal mode saved by Create. Only the first call does
// anything; later calls return nil.
func (s *Session) Close() error {
	return s.guard.release()
}

// rawGuard represents the terminal being in raw mode. Exactly one exists
// per Session and it is never shared.
type rawGuard struct {
	noCopy noCopy

	dev  Device
	once sync.Once
}

func acquireRawMode(dev Device) (*rawGuard, error) {
	if err := dev.EnterRawMode(); err != nil {
		return nil, err
	}
	return &rawGuard{dev: dev}, nil
}

func (g *rawGuard) release() error {
	var err error
	g.once.Do(func() {
		if exitErr := g.dev.ExitRawMode(); exitErr != nil {
			err = &IOError{Op: "restoring terminal mode", Err: exitErr}
		}
	})
	return err
}

// noCopy makes go vet's copylocks check reject copies of the embedding struct.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
