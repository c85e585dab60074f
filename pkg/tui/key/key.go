// ABOUTME: Defines the Key type and the decoders that turn raw terminal bytes into keys.
// ABOUTME: Handles printable runes, Ctrl+letter bytes, and ESC-prefixed sequences.

package key

import (
	"strings"
	"unicode/utf8"
)

// Key represents a parsed keyboard input event.
type Key struct {
	Type  KeyType
	Rune  rune // For printable characters and Ctrl+<letter>
	Alt   bool
	Ctrl  bool
	Shift bool
}

// KeyType enumerates the kinds of key events the editor can receive.
type KeyType int

const (
	KeyRune      KeyType = iota // Printable character or Ctrl+<letter>
	KeyEnter                    // Enter / Return
	KeyTab                      // Tab
	KeyBackTab                  // Shift+Tab
	KeyBackspace                // Backspace / DEL (0x7F)
	KeyDelete                   // Delete key
	KeyUp                       // Arrow up
	KeyDown                     // Arrow down
	KeyLeft                     // Arrow left
	KeyRight                    // Arrow right
	KeyHome                     // Home
	KeyEnd                      // End
	KeyPageUp                   // Page Up
	KeyPageDown                 // Page Down
	KeyEscape                   // Escape
	KeyUnknown                  // Unrecognized input
)

const esc = 0x1b

// Ctrl returns the key produced by holding Ctrl and pressing letter.
func Ctrl(letter rune) Key {
	if letter >= 'A' && letter <= 'Z' {
		letter += 'a' - 'A'
	}
	return Key{Type: KeyRune, Rune: letter, Ctrl: true}
}

// Matches reports whether k and other describe the same key press.
func (k Key) Matches(other Key) bool {
	return k == other
}

// Decode decodes the first key in data and returns it together with the
// number of bytes consumed. A zero count means data holds only the prefix of
// a key and more input is required.
func Decode(data []byte) (Key, int) {
	if len(data) == 0 {
		return Key{}, 0
	}

	b := data[0]
	if b == esc {
		return decodeEscape(data)
	}
	if b < utf8.RuneSelf {
		return parseSingleByte(b), 1
	}

	if !utf8.FullRune(data) {
		return Key{}, 0
	}
	r, size := utf8.DecodeRune(data)
	if r == utf8.RuneError {
		return Key{Type: KeyUnknown}, size
	}
	return Key{Type: KeyRune, Rune: r}, size
}

// decodeEscape splits one ESC-prefixed key off the front of data.
func decodeEscape(data []byte) (Key, int) {
	if len(data) == 1 {
		return Key{Type: KeyEscape}, 1
	}

	switch data[1] {
	case '[':
		// CSI: parameter and intermediate bytes, then one final byte 0x40..0x7e.
		for i := 2; i < len(data); i++ {
			if data[i] >= 0x40 && data[i] <= 0x7e {
				return parseEscapeSequence(string(data[:i+1])), i + 1
			}
			if data[i] < 0x20 {
				// A control byte cannot continue the sequence, so ESC [ was
				// Alt+[ and the control byte is a key of its own.
				return Key{Type: KeyRune, Rune: '[', Alt: true}, 2
			}
		}
		return Key{}, 0
	case 'O':
		if len(data) < 3 {
			return Key{}, 0
		}
		return parseEscapeSequence(string(data[:3])), 3
	case esc:
		// Double ESC: report the first, keep the second for the next call.
		return Key{Type: KeyEscape}, 1
	}

	if data[1] >= utf8.RuneSelf {
		// Alt with a non-ASCII character: ESC then the whole UTF-8 sequence.
		rest := data[1:]
		if !utf8.FullRune(rest) {
			return Key{}, 0
		}
		r, size := utf8.DecodeRune(rest)
		if r == utf8.RuneError {
			return Key{Type: KeyUnknown}, 1 + size
		}
		return Key{Type: KeyRune, Rune: r, Alt: true}, 1 + size
	}

	return parseEscapeSequence(string(data[:2])), 2
}

// parseSingleByte handles a single-byte input (ASCII or control character).
func parseSingleByte(b byte) Key {
	switch {
	case b == 0x0d:
		return Key{Type: KeyEnter}
	case b == 0x09:
		return Key{Type: KeyTab}
	case b == 0x7f:
		return Key{Type: KeyBackspace}
	case b == esc:
		return Key{Type: KeyEscape}
	case b >= 0x20 && b <= 0x7e:
		return Key{Type: KeyRune, Rune: rune(b)}
	case b == 0x00:
		return Key{Type: KeyRune, Rune: ' ', Ctrl: true}
	case b <= 0x1a:
		// Ctrl clears bits 5 and 6 of the letter: 'k' (0x6b) arrives as 0x0b.
		return Ctrl(rune('a' + b - 1))
	}
	return Key{Type: KeyUnknown}
}

// parseEscapeSequence resolves a complete ESC-prefixed sequence.
func parseEscapeSequence(data string) Key {
	if k, ok := parseModifiedSequence(data); ok {
		return k
	}

	if k, ok := legacySequences[data]; ok {
		return k
	}

	// Lone ESC
	if len(data) == 1 {
		return Key{Type: KeyEscape}
	}

	// Alt+letter: ESC followed by a single printable byte (0x20..0x7e)
	if len(data) == 2 && data[1] >= 0x20 && data[1] <= 0x7e {
		return Key{Type: KeyRune, Rune: rune(data[1]), Alt: true}
	}

	return Key{Type: KeyUnknown}
}

// keyTypeNames provides human-readable labels for each KeyType.
var keyTypeNames = map[KeyType]string{
	KeyEnter:     "Enter",
	KeyTab:       "Tab",
	KeyBackTab:   "BackTab",
	KeyBackspace: "Backspace",
	KeyDelete:    "Delete",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyPageUp:    "PageUp",
	KeyPageDown:  "PageDown",
	KeyEscape:    "Escape",
	KeyUnknown:   "Unknown",
}

// String returns a human-readable representation of the Key for debug display.
func (k Key) String() string {
	name := "Unknown"
	switch {
	case k.Type == KeyRune:
		name = string(k.Rune)
		if k.Ctrl {
			name = strings.ToUpper(name)
			if k.Rune == ' ' {
				name = "Space"
			}
		}
	default:
		if n, ok := keyTypeNames[k.Type]; ok {
			name = n
		}
	}
	return modifierPrefix(k) + name
}

// modifierPrefix renders the modifier flags in Ctrl, Alt, Shift order.
func modifierPrefix(k Key) string {
	var prefix string
	if k.Ctrl {
		prefix += "Ctrl+"
	}
	if k.Alt {
		prefix += "Alt+"
	}
	if k.Shift && k.Type != KeyBackTab {
		prefix += "Shift+"
	}
	return prefix
}
