// ABOUTME: ProcessTerminal implements Device over a TTY's input and output files using golang.org/x/term.
// ABOUTME: Saves the cooked state on raw-mode entry and restores it on exit; platform files bound input waits.

package terminal

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/term"
)

// ProcessTerminal is a real terminal backed by a pair of files, normally
// os.Stdin and os.Stdout.
type ProcessTerminal struct {
	mu       sync.Mutex
	in       *os.File
	out      *os.File
	oldState *term.State
}

// NewProcessTerminal returns a ProcessTerminal reading from in and writing to out.
func NewProcessTerminal(in, out *os.File) *ProcessTerminal {
	return &ProcessTerminal{in: in, out: out}
}

// EnterRawMode switches the input TTY to raw mode, saving the previous state.
func (t *ProcessTerminal) EnterRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	state, err := term.MakeRaw(int(t.in.Fd()))
	if err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	t.oldState = state
	return nil
}

// ExitRawMode restores the terminal to the state saved by EnterRawMode.
func (t *ProcessTerminal) ExitRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.oldState == nil {
		return nil
	}
	if err := term.Restore(int(t.in.Fd()), t.oldState); err != nil {
		return fmt.Errorf("exiting raw mode: %w", err)
	}
	t.oldState = nil
	return nil
}

// Size returns the current terminal dimensions.
func (t *ProcessTerminal) Size() (width, height int, err error) {
	w, h, err := term.GetSize(int(t.out.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("getting terminal size: %w", err)
	}
	return w, h, nil
}

// Write sends bytes to the output file.
func (t *ProcessTerminal) Write(p []byte) (int, error) {
	n, err := t.out.Write(p)
	if err != nil {
		return n, fmt.Errorf("writing to terminal: %w", err)
	}
	return n, nil
}

// Read waits until input is ready, then reads what is available.
// End of input surfaces as io.EOF.
func (t *ProcessTerminal) Read(p []byte) (int, error) {
	if err := waitReadable(int(t.in.Fd())); err != nil {
		return 0, fmt.Errorf("waiting for input: %w", err)
	}
	n, err := t.in.Read(p)
	if err != nil {
		return n, fmt.Errorf("reading from terminal: %w", err)
	}
	return n, nil
}
