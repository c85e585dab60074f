// ABOUTME: Key dump loop: prints one line per decoded key until the stop key arrives
// ABOUTME: Used by hecto-keys to inspect what a terminal sends for each keystroke

package keydump

import (
	"fmt"

	"github.com/HATTER-LONG/hecto-go/internal/log"
	"github.com/HATTER-LONG/hecto-go/pkg/tui/key"
	"github.com/HATTER-LONG/hecto-go/pkg/tui/width"
)

// Screen is what the dump loop needs from a terminal session.
type Screen interface {
	Print(text string)
	Flush() error
	ReadKey() (key.Key, error)
}

// StopKey ends the dump.
var StopKey = key.Ctrl('q')

// Banner is printed once before the first key.
const Banner = "Press keys to see how they decode. Ctrl+Q quits.\r\n"

// Run prints a line for every key read from s until StopKey. It returns the
// number of keys printed, not counting StopKey.
func Run(s Screen) (int, error) {
	s.Print(Banner)
	if err := s.Flush(); err != nil {
		return 0, fmt.Errorf("keydump: %w", err)
	}

	count := 0
	for {
		k, err := s.ReadKey()
		if err != nil {
			return count, fmt.Errorf("keydump: %w", err)
		}
		if k.Matches(StopKey) {
			log.Debug("keydump: stop after %d keys", count)
			return count, nil
		}

		s.Print(Describe(k) + "\r\n")
		if err := s.Flush(); err != nil {
			return count, fmt.Errorf("keydump: %w", err)
		}
		count++
	}
}

// Describe formats k as its name. Plain runes show the code point, the
// character, and how many cells it takes on screen.
func Describe(k key.Key) string {
	if k.Type == key.KeyRune && !k.Ctrl && !k.Alt {
		return fmt.Sprintf("%d (%c) width %d", k.Rune, k.Rune, width.VisibleWidth(string(k.Rune)))
	}
	return k.String()
}
