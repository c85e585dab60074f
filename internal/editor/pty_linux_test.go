// ABOUTME: End-to-end editor run on a real pseudo-terminal via creack/pty.
// ABOUTME: Drives Ctrl+K from the master side and checks the farewell and cooked-mode restore.

//go:build linux

package editor

import (
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/creack/pty"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sys/unix"

	"github.com/HATTER-LONG/hecto-go/pkg/tui/terminal"
)

func TestRun_PTYQuitRestoresCookedMode(t *testing.T) {
	master, tty, err := pty.Open()
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	defer master.Close()
	defer tty.Close()

	if err := pty.Setsize(tty, &pty.Winsize{Rows: 5, Cols: 20}); err != nil {
		t.Fatalf("pty.Setsize() error: %v", err)
	}

	s, err := terminal.Create(terminal.NewProcessTerminal(tty, tty))
	if err != nil {
		t.Fatalf("terminal.Create() error: %v", err)
	}
	e := New(s)

	var g errgroup.Group
	g.Go(func() error {
		defer s.Close()
		return e.Run()
	})

	var output strings.Builder
	g.Go(func() error {
		return driveQuit(master, &output)
	})

	done := make(chan error, 1)
	go func() { done <- g.Wait() }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("run failed: %v (output %q)", err, output.String())
		}
	case <-time.After(10 * time.Second):
		t.Fatal("editor did not quit after Ctrl+K")
	}

	if e.State() != Quitting {
		t.Errorf("State() = %v, want Quitting", e.State())
	}
	if got := strings.Count(output.String(), "~"); got != 5 {
		t.Errorf("placeholder rows = %d, want 5", got)
	}

	tio, err := unix.IoctlGetTermios(int(tty.Fd()), unix.TCGETS)
	if err != nil {
		t.Fatalf("IoctlGetTermios() error: %v", err)
	}
	const cooked = unix.ICANON | unix.ECHO
	if tio.Lflag&cooked != cooked {
		t.Error("ICANON/ECHO not restored after the editor quit")
	}
}

// driveQuit waits for the first full frame, sends Ctrl+K, then reads until the
// farewell arrives.
func driveQuit(master *os.File, out *strings.Builder) error {
	buf := make([]byte, 4096)
	sent := false
	for {
		n, err := master.Read(buf)
		out.Write(buf[:n])
		if err != nil {
			return fmt.Errorf("reading pty master: %w", err)
		}

		seen := out.String()
		if !sent && strings.Contains(seen, "\x1b[?25h") {
			if _, err := master.Write([]byte{0x0b}); err != nil {
				return fmt.Errorf("writing Ctrl+K: %w", err)
			}
			sent = true
		}
		if strings.Contains(seen, DefaultFarewell+"\r\n") {
			return nil
		}
	}
}
