// ABOUTME: Windows input wait for ProcessTerminal.
// ABOUTME: Console handles are not pollable, so the read itself does the blocking.

//go:build windows

package terminal

// waitReadable returns immediately; the console read blocks until a key arrives.
func waitReadable(int) error {
	return nil
}
