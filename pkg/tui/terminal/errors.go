// ABOUTME: Error taxonomy for terminal sessions: initialization failures and I/O failures.
// ABOUTME: Both carry the failed operation and match their sentinel via errors.Is.

package terminal

import "errors"

var (
	// ErrInit matches any *InitError.
	ErrInit = errors.New("terminal init")
	// ErrIO matches any *IOError.
	ErrIO = errors.New("terminal i/o")
)

// InitError reports that a session could not be created. Nothing useful can
// run without a terminal, so callers abort.
type InitError struct {
	Op  string
	Err error
}

func (e *InitError) Error() string {
	return "terminal init: " + e.Op + ": " + e.Err.Error()
}

func (e *InitError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrInit) match.
func (e *InitError) Is(target error) bool { return target == ErrInit }

// IOError reports a failed read or write against a live session.
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string {
	return "terminal i/o: " + e.Op + ": " + e.Err.Error()
}

func (e *IOError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrIO) match.
func (e *IOError) Is(target error) bool { return target == ErrIO }
