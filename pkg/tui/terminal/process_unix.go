// ABOUTME: Unix input wait for ProcessTerminal built on poll(2).
// ABOUTME: Polls in bounded slices so a pending read never spins the CPU.

//go:build unix

package terminal

import (
	"errors"

	"golang.org/x/sys/unix"
)

// pollInterval is the upper bound in milliseconds of one poll(2) call.
const pollInterval = 100

// waitReadable blocks until fd has input, has hung up, or poll fails.
func waitReadable(fd int) error {
	fds := []unix.PollFd{
		{Fd: int32(fd), Events: unix.POLLIN},
	}

	for {
		n, err := unix.Poll(fds, pollInterval)
		if err != nil {
			if errors.Is(err, unix.EINTR) {
				continue
			}
			return err
		}
		if n > 0 {
			// POLLIN, POLLHUP or POLLERR: the following read reports which.
			return nil
		}
	}
}
