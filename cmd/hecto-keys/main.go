// ABOUTME: hecto-keys puts the terminal in raw mode and prints how each keystroke decodes
// ABOUTME: Shares the session and panic recovery with hecto; Ctrl+Q exits

package main

import (
	"errors"
	"os"

	"github.com/HATTER-LONG/hecto-go/internal/keydump"
	"github.com/HATTER-LONG/hecto-go/internal/log"
	"github.com/HATTER-LONG/hecto-go/pkg/tui/terminal"
)

func main() {
	if err := run(); err != nil {
		log.Error("%v", err)
		os.Exit(1)
	}
}

func run() (err error) {
	session, err := terminal.Create(terminal.NewProcessTerminal(os.Stdin, os.Stdout))
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, session.Close())
	}()
	defer terminal.RestoreOnPanic(session)

	n, err := keydump.Run(session)
	log.Debug("hecto-keys: %d keys", n)
	return err
}
