// ABOUTME: RestoreOnPanic recovers from panics, releases the session's raw-mode guard, and prints the stack trace.
// ABOUTME: Intended for use as a deferred call on the goroutine that owns the session.

package terminal

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
)

// RestoreOnPanic should be deferred right after Create (after the deferred
// Close, so it runs first). On panic it makes the cursor visible, releases
// raw mode, prints the panic value and stack trace, then exits with code 1.
func RestoreOnPanic(s *Session) {
	r := recover()
	if r == nil {
		return
	}

	restoreAfterPanic(s, r, debug.Stack(), os.Stderr)
	os.Exit(1)
}

// restoreAfterPanic is the best-effort cleanup shared by RestoreOnPanic and tests.
func restoreAfterPanic(s *Session, r any, stack []byte, w io.Writer) {
	s.ShowCursor()
	_ = s.Flush()
	_ = s.Close()

	fmt.Fprintf(w, "\npanic: %v\n\n%s\n", r, stack)
}
