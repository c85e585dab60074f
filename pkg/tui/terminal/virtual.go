// ABOUTME: VirtualTerminal implements Device for testing without a real TTY.
// ABOUTME: Replays scripted input, captures output, tracks raw-mode calls and injects failures.

package terminal

import (
	"bytes"
	"fmt"
	"io"
	"sync"
)

// VirtualTerminal is a fake Device for unit tests.
// It records written output and tracks raw-mode transitions.
type VirtualTerminal struct {
	mu         sync.Mutex
	buf        bytes.Buffer
	width      int
	height     int
	rawMode    bool
	enterCount int
	exitCount  int

	input [][]byte
	reads int

	writes       int
	failWritesAt int
	failWriteAt  int
	writeErr     error
	sizeErr      error
	enterErr     error
	exitErr      error
	readErr      error
}

// NewVirtualTerminal returns a VirtualTerminal with the given dimensions.
func NewVirtualTerminal(width, height int) *VirtualTerminal {
	return &VirtualTerminal{
		width:  width,
		height: height,
	}
}

// EnterRawMode records a raw-mode entry.
func (v *VirtualTerminal) EnterRawMode() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.enterErr != nil {
		return v.enterErr
	}
	v.rawMode = true
	v.enterCount++
	return nil
}

// ExitRawMode records a raw-mode exit.
func (v *VirtualTerminal) ExitRawMode() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.exitCount++
	if v.exitErr != nil {
		return v.exitErr
	}
	v.rawMode = false
	return nil
}

// Size returns the configured terminal dimensions.
func (v *VirtualTerminal) Size() (width, height int, err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.sizeErr != nil {
		return 0, 0, v.sizeErr
	}
	return v.width, v.height, nil
}

// Write appends data to the internal buffer.
func (v *VirtualTerminal) Write(p []byte) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.writes++
	if v.failWritesAt > 0 && v.writes >= v.failWritesAt {
		return 0, v.writeErr
	}
	if v.writes == v.failWriteAt {
		return 0, v.writeErr
	}
	n, err := v.buf.Write(p)
	if err != nil {
		return n, fmt.Errorf("writing to virtual buffer: %w", err)
	}
	return n, nil
}

// Read hands out the next queued input chunk. Once the queue is drained it
// returns the injected read error, or io.EOF.
func (v *VirtualTerminal) Read(p []byte) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.reads++
	if len(v.input) == 0 {
		if v.readErr != nil {
			return 0, v.readErr
		}
		return 0, io.EOF
	}

	n := copy(p, v.input[0])
	if n < len(v.input[0]) {
		v.input[0] = v.input[0][n:]
	} else {
		v.input = v.input[1:]
	}
	return n, nil
}

// --- Test helpers (not part of Device interface) ---

// QueueInput appends chunks to the input script. Each chunk is delivered by
// one Read, like a burst of bytes arriving from the keyboard together.
func (v *VirtualTerminal) QueueInput(chunks ...string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	for _, c := range chunks {
		v.input = append(v.input, []byte(c))
	}
}

// FailSize makes Size return err.
func (v *VirtualTerminal) FailSize(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.sizeErr = err
}

// FailEnterRawMode makes EnterRawMode return err.
func (v *VirtualTerminal) FailEnterRawMode(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.enterErr = err
}

// FailExitRawMode makes ExitRawMode return err.
func (v *VirtualTerminal) FailExitRawMode(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.exitErr = err
}

// FailWritesFrom makes the call-th Write (1-based) and every later one fail with err.
func (v *VirtualTerminal) FailWritesFrom(call int, err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.failWritesAt = call
	v.writeErr = err
}

// FailWrite makes only the call-th Write (1-based) fail with err, like a
// transient EAGAIN. Later writes succeed.
func (v *VirtualTerminal) FailWrite(call int, err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.failWriteAt = call
	v.writeErr = err
}

// FailReads makes Read return err once the queued input is drained.
func (v *VirtualTerminal) FailReads(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.readErr = err
}

// Output returns everything written so far.
func (v *VirtualTerminal) Output() string {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.buf.String()
}

// Reset clears the output buffer.
func (v *VirtualTerminal) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.buf.Reset()
}

// IsRawMode reports whether raw mode is currently active.
func (v *VirtualTerminal) IsRawMode() bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.rawMode
}

// EnterCount returns how many times EnterRawMode succeeded.
func (v *VirtualTerminal) EnterCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.enterCount
}

// ExitCount returns how many times ExitRawMode was called.
func (v *VirtualTerminal) ExitCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.exitCount
}

// Reads returns how many times Read was called.
func (v *VirtualTerminal) Reads() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.reads
}

// SetSize updates the dimensions reported by Size.
func (v *VirtualTerminal) SetSize(width, height int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.width = width
	v.height = height
}
