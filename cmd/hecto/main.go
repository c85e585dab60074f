// ABOUTME: Entry point for hecto: takes over the controlling terminal and runs the editor loop
// ABOUTME: Raw mode is released by run's defers before any error is reported and the process exits 1

package main

import (
	"errors"
	"os"

	"github.com/HATTER-LONG/hecto-go/internal/editor"
	"github.com/HATTER-LONG/hecto-go/internal/log"
	"github.com/HATTER-LONG/hecto-go/pkg/tui/terminal"
)

func main() {
	if err := run(os.Stdin, os.Stdout); err != nil {
		log.Error("%v", err)
		os.Exit(1)
	}
}

func run(in, out *os.File) (err error) {
	session, err := terminal.Create(terminal.NewProcessTerminal(in, out))
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, session.Close())
	}()
	defer terminal.RestoreOnPanic(session)

	return editor.New(session).Run()
}
