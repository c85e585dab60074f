// ABOUTME: Table-driven tests for key decoding covering ASCII, Ctrl+letter bytes, and escape sequences.
// ABOUTME: Validates whole-chunk parsing, streaming Decode over concatenated input, and Key formatting.

package key

import "testing"

// parseKey decodes one complete chunk of input. An unfinished ESC prefix is
// resolved as final instead of waiting for more bytes.
func parseKey(data string) Key {
	if len(data) == 0 {
		return Key{Type: KeyUnknown}
	}
	k, n := Decode([]byte(data))
	if n == 0 {
		if data[0] == esc {
			return parseEscapeSequence(data)
		}
		return Key{Type: KeyUnknown}
	}
	return k
}

func TestParseKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
		want Key
	}{
		// Single printable ASCII characters
		{name: "lowercase a", data: "a", want: Key{Type: KeyRune, Rune: 'a'}},
		{name: "uppercase A", data: "A", want: Key{Type: KeyRune, Rune: 'A'}},
		{name: "digit 0", data: "0", want: Key{Type: KeyRune, Rune: '0'}},
		{name: "space", data: " ", want: Key{Type: KeyRune, Rune: ' '}},
		{name: "tilde", data: "~", want: Key{Type: KeyRune, Rune: '~'}},

		// Control characters
		{name: "ctrl+a", data: "\x01", want: Key{Type: KeyRune, Rune: 'a', Ctrl: true}},
		{name: "ctrl+c", data: "\x03", want: Key{Type: KeyRune, Rune: 'c', Ctrl: true}},
		{name: "ctrl+k", data: "\x0b", want: Key{Type: KeyRune, Rune: 'k', Ctrl: true}},
		{name: "ctrl+q", data: "\x11", want: Key{Type: KeyRune, Rune: 'q', Ctrl: true}},
		{name: "ctrl+z", data: "\x1a", want: Key{Type: KeyRune, Rune: 'z', Ctrl: true}},
		{name: "ctrl+space", data: "\x00", want: Key{Type: KeyRune, Rune: ' ', Ctrl: true}},

		// Enter, Tab, Backspace
		{name: "enter", data: "\r", want: Key{Type: KeyEnter}},
		{name: "tab", data: "\t", want: Key{Type: KeyTab}},
		{name: "backspace", data: "\x7f", want: Key{Type: KeyBackspace}},

		// Escape alone
		{name: "escape", data: "\x1b", want: Key{Type: KeyEscape}},

		// CSI keys
		{name: "arrow up", data: "\x1b[A", want: Key{Type: KeyUp}},
		{name: "arrow down", data: "\x1b[B", want: Key{Type: KeyDown}},
		{name: "arrow right", data: "\x1b[C", want: Key{Type: KeyRight}},
		{name: "arrow left", data: "\x1b[D", want: Key{Type: KeyLeft}},
		{name: "home", data: "\x1b[H", want: Key{Type: KeyHome}},
		{name: "end", data: "\x1b[F", want: Key{Type: KeyEnd}},
		{name: "home tilde", data: "\x1b[1~", want: Key{Type: KeyHome}},
		{name: "end tilde", data: "\x1b[4~", want: Key{Type: KeyEnd}},
		{name: "page up", data: "\x1b[5~", want: Key{Type: KeyPageUp}},
		{name: "page down", data: "\x1b[6~", want: Key{Type: KeyPageDown}},
		{name: "delete", data: "\x1b[3~", want: Key{Type: KeyDelete}},
		{name: "backtab", data: "\x1b[Z", want: Key{Type: KeyBackTab, Shift: true}},

		// SS3 keys
		{name: "SS3 up", data: "\x1bOA", want: Key{Type: KeyUp}},
		{name: "SS3 left", data: "\x1bOD", want: Key{Type: KeyLeft}},
		{name: "SS3 home", data: "\x1bOH", want: Key{Type: KeyHome}},
		{name: "SS3 end", data: "\x1bOF", want: Key{Type: KeyEnd}},

		// Modified sequences
		{name: "ctrl+up", data: "\x1b[1;5A", want: Key{Type: KeyUp, Ctrl: true}},
		{name: "shift+right", data: "\x1b[1;2C", want: Key{Type: KeyRight, Shift: true}},
		{name: "alt+delete", data: "\x1b[3;3~", want: Key{Type: KeyDelete, Alt: true}},
		{name: "csi u ctrl+k", data: "\x1b[107;5u", want: Key{Type: KeyRune, Rune: 'k', Ctrl: true}},
		{name: "csi u ctrl+K", data: "\x1b[75;5u", want: Key{Type: KeyRune, Rune: 'k', Ctrl: true}},
		{name: "csi u plain a", data: "\x1b[97u", want: Key{Type: KeyRune, Rune: 'a'}},
		{name: "csi u enter", data: "\x1b[13u", want: Key{Type: KeyEnter}},
		{name: "csi u shift+tab", data: "\x1b[9;2u", want: Key{Type: KeyBackTab, Shift: true}},

		// Alt+letter
		{name: "alt+x", data: "\x1bx", want: Key{Type: KeyRune, Rune: 'x', Alt: true}},

		// Multi-byte UTF-8
		{name: "e acute", data: "é", want: Key{Type: KeyRune, Rune: 'é'}},
		{name: "cjk", data: "世", want: Key{Type: KeyRune, Rune: '世'}},

		// Unknown input
		{name: "unknown escape", data: "\x1b[99Z", want: Key{Type: KeyUnknown}},
		{name: "invalid utf8", data: "\xff", want: Key{Type: KeyUnknown}},
		{name: "empty", data: "", want: Key{Type: KeyUnknown}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := parseKey(tt.data)
			if got != tt.want {
				t.Errorf("parseKey(%q) = %+v, want %+v", tt.data, got, tt.want)
			}
		})
	}
}

func TestParseKey_CSIuKeyReleaseIsUnknown(t *testing.T) {
	t.Parallel()

	got := parseKey("\x1b[107;5:3u")
	if got.Type != KeyUnknown {
		t.Errorf("key release = %+v, want KeyUnknown", got)
	}
}

func TestDecode_SplitsConcatenatedInput(t *testing.T) {
	t.Parallel()

	data := []byte("ab\x1b[A\x0b世\x1b[3~\r")
	want := []Key{
		{Type: KeyRune, Rune: 'a'},
		{Type: KeyRune, Rune: 'b'},
		{Type: KeyUp},
		Ctrl('k'),
		{Type: KeyRune, Rune: '世'},
		{Type: KeyDelete},
		{Type: KeyEnter},
	}

	var got []Key
	for len(data) > 0 {
		k, n := Decode(data)
		if n == 0 {
			t.Fatalf("Decode stalled on %q", data)
		}
		got = append(got, k)
		data = data[n:]
	}

	if len(got) != len(want) {
		t.Fatalf("decoded %d keys, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("key %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestDecode_IncompleteInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
	}{
		{name: "empty", data: nil},
		{name: "csi prefix", data: []byte("\x1b[")},
		{name: "csi with params", data: []byte("\x1b[1;5")},
		{name: "ss3 prefix", data: []byte("\x1bO")},
		{name: "cut rune", data: []byte("世")[:2]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, n := Decode(tt.data); n != 0 {
				t.Errorf("Decode(%q) consumed %d bytes, want 0", tt.data, n)
			}
		})
	}
}

func TestDecode_EscapePrefixes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		data  string
		want  Key
		wantN int
	}{
		{name: "alt+[ then ctrl+k", data: "\x1b[\x0b", want: Key{Type: KeyRune, Rune: '[', Alt: true}, wantN: 2},
		{name: "alt+[ then enter", data: "\x1b[\r", want: Key{Type: KeyRune, Rune: '[', Alt: true}, wantN: 2},
		{name: "control byte after params", data: "\x1b[1;\x0b", want: Key{Type: KeyRune, Rune: '[', Alt: true}, wantN: 2},
		{name: "alt+é", data: "\x1b\u00e9x", want: Key{Type: KeyRune, Rune: '\u00e9', Alt: true}, wantN: 3},
		{name: "alt+世", data: "\x1b世", want: Key{Type: KeyRune, Rune: '世', Alt: true}, wantN: 4},
		{name: "esc then invalid utf-8", data: "\x1b\xff", want: Key{Type: KeyUnknown}, wantN: 2},
		{name: "esc then cut rune", data: "\x1b\xe4\xb8", want: Key{}, wantN: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			k, n := Decode([]byte(tt.data))
			if k != tt.want || n != tt.wantN {
				t.Errorf("Decode(%q) = (%+v, %d), want (%+v, %d)", tt.data, k, n, tt.want, tt.wantN)
			}
		})
	}
}

func TestDecode_AltRuneLeavesNoStrayBytes(t *testing.T) {
	t.Parallel()

	data := []byte("\x1b世\x0b")
	var got []Key
	for len(data) > 0 {
		k, n := Decode(data)
		if n == 0 {
			t.Fatalf("Decode stalled on %q", data)
		}
		got = append(got, k)
		data = data[n:]
	}

	want := []Key{{Type: KeyRune, Rune: '世', Alt: true}, Ctrl('k')}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("decoded %+v, want %+v", got, want)
	}
}

func TestDecode_DoubleEscape(t *testing.T) {
	t.Parallel()

	k, n := Decode([]byte("\x1b\x1b"))
	if k.Type != KeyEscape || n != 1 {
		t.Errorf("Decode(ESC ESC) = (%+v, %d), want (Escape, 1)", k, n)
	}
}

func TestCtrl(t *testing.T) {
	t.Parallel()

	if got := Ctrl('K'); got != Ctrl('k') {
		t.Errorf("Ctrl('K') = %+v, want %+v", got, Ctrl('k'))
	}
	if !parseKey("\x0b").Matches(Ctrl('k')) {
		t.Error("byte 0x0b should match Ctrl('k')")
	}
	if parseKey("k").Matches(Ctrl('k')) {
		t.Error("plain k must not match Ctrl('k')")
	}
	if parseKey("\x1bk").Matches(Ctrl('k')) {
		t.Error("Alt+k must not match Ctrl('k')")
	}
}

func TestKeyString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		key  Key
		want string
	}{
		{name: "rune a", key: Key{Type: KeyRune, Rune: 'a'}, want: "a"},
		{name: "enter", key: Key{Type: KeyEnter}, want: "Enter"},
		{name: "ctrl+k", key: Ctrl('k'), want: "Ctrl+K"},
		{name: "ctrl+space", key: Key{Type: KeyRune, Rune: ' ', Ctrl: true}, want: "Ctrl+Space"},
		{name: "arrow up", key: Key{Type: KeyUp}, want: "Up"},
		{name: "ctrl+up", key: Key{Type: KeyUp, Ctrl: true}, want: "Ctrl+Up"},
		{name: "backtab", key: Key{Type: KeyBackTab, Shift: true}, want: "BackTab"},
		{name: "unknown", key: Key{Type: KeyUnknown}, want: "Unknown"},
		{name: "alt rune", key: Key{Type: KeyRune, Rune: 'x', Alt: true}, want: "Alt+x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := tt.key.String()
			if got != tt.want {
				t.Errorf("Key.String() = %q, want %q", got, tt.want)
			}
		})
	}
}
