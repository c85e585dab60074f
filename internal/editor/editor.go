// ABOUTME: Editor drives the render -> check-quit -> read-key -> dispatch cycle over a terminal session.
// ABOUTME: Quits on its quit key after a farewell frame; any session error clears the screen and ends the run.

package editor

import (
	"fmt"

	"github.com/HATTER-LONG/hecto-go/internal/log"
	"github.com/HATTER-LONG/hecto-go/pkg/tui"
	"github.com/HATTER-LONG/hecto-go/pkg/tui/key"
	"github.com/HATTER-LONG/hecto-go/pkg/tui/terminal"
	"github.com/HATTER-LONG/hecto-go/pkg/tui/width"
)

// DefaultFarewell is printed on the final frame.
const DefaultFarewell = "Goodbye."

// Screen is the part of *terminal.Session the editor drives.
type Screen interface {
	Size() terminal.Size
	ClearScreen()
	MoveCursor(p terminal.Position)
	HideCursor()
	ShowCursor()
	Print(text string)
	Flush() error
	DiscardOutput()
	ReadKey() (key.Key, error)
}

// State is the editor's run state.
type State int

const (
	// Running renders and waits for keys.
	Running State = iota
	// Quitting renders the farewell frame once and stops. It is final.
	Quitting
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Quitting:
		return "quitting"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Editor owns the loop state. It is not safe for concurrent use.
type Editor struct {
	screen   Screen
	content  tui.Component
	frame    *tui.RenderBuffer
	quitKey  key.Key
	farewell string

	state   State
	renders int
}

// Option customizes an Editor.
type Option func(*Editor)

// WithQuitKey replaces the default Ctrl+K quit binding.
func WithQuitKey(k key.Key) Option {
	return func(e *Editor) { e.quitKey = k }
}

// WithPlaceholder sets the marker drawn on every row.
func WithPlaceholder(marker string) Option {
	return func(e *Editor) { e.content = tui.Rows{Placeholder: marker} }
}

// WithFarewell sets the line printed on the final frame.
func WithFarewell(msg string) Option {
	return func(e *Editor) { e.farewell = msg }
}

// New returns an Editor in the Running state.
func New(screen Screen, opts ...Option) *Editor {
	e := &Editor{
		screen:   screen,
		content:  tui.Rows{Placeholder: tui.DefaultPlaceholder},
		frame:    &tui.RenderBuffer{},
		quitKey:  key.Ctrl('k'),
		farewell: DefaultFarewell,
		state:    Running,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// State returns the current run state.
func (e *Editor) State() State {
	return e.state
}

// Renders returns how many frames have been drawn.
func (e *Editor) Renders() int {
	return e.renders
}

// Run loops until the quit key has been handled or the screen fails.
// It returns nil after the farewell frame. On failure the screen is cleared
// and the error is returned; the caller still owns releasing the session.
func (e *Editor) Run() error {
	for {
		if err := e.refreshScreen(); err != nil {
			return e.die(err)
		}
		if e.state == Quitting {
			return nil
		}
		if err := e.processKeypress(); err != nil {
			return e.die(err)
		}
	}
}

func (e *Editor) refreshScreen() error {
	e.renders++
	size := e.screen.Size()

	if e.state == Quitting {
		e.screen.ClearScreen()
		e.screen.MoveCursor(terminal.Origin)
		e.screen.Print(width.Clip(e.farewell, size.Width) + "\r\n")
		return e.screen.Flush()
	}

	e.screen.HideCursor()
	e.screen.ClearScreen()
	e.screen.MoveCursor(terminal.Origin)
	tui.Paint(e.screen, e.content, e.frame, size.Width, size.Height)
	e.screen.MoveCursor(terminal.Origin)
	e.screen.ShowCursor()
	return e.screen.Flush()
}

func (e *Editor) processKeypress() error {
	k, err := e.screen.ReadKey()
	if err != nil {
		return err
	}

	if k.Matches(e.quitKey) {
		log.Debug("editor: %s pressed, %s -> %s", k, e.state, Quitting)
		e.state = Quitting
		return nil
	}

	// Editing commands will hook in here.
	log.Debug("editor: ignoring %s", k)
	return nil
}

// die leaves a blank screen behind so the error report is readable. Output
// still queued from the failed frame is dropped first; it would otherwise keep
// the clear from being written.
func (e *Editor) die(err error) error {
	e.screen.DiscardOutput()
	e.screen.ClearScreen()
	e.screen.MoveCursor(terminal.Origin)
	_ = e.screen.Flush()
	return fmt.Errorf("editor: %w", err)
}
