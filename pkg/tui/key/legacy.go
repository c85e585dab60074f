// ABOUTME: Unmodified CSI and SS3 key sequences as sent by xterm-compatible terminals.
// ABOUTME: Lookup table consulted after the modifier-aware parser declines a sequence.

package key

// legacySequences maps the common cursor and editing key encodings to keys.
// Sequences with a modifier parameter are handled by parseModifiedSequence.
var legacySequences = map[string]Key{
	"\x1b[A": {Type: KeyUp},
	"\x1b[B": {Type: KeyDown},
	"\x1b[C": {Type: KeyRight},
	"\x1b[D": {Type: KeyLeft},
	"\x1b[H": {Type: KeyHome},
	"\x1b[F": {Type: KeyEnd},
	"\x1b[Z": {Type: KeyBackTab, Shift: true},

	// Application cursor mode
	"\x1bOA": {Type: KeyUp},
	"\x1bOB": {Type: KeyDown},
	"\x1bOC": {Type: KeyRight},
	"\x1bOD": {Type: KeyLeft},
	"\x1bOH": {Type: KeyHome},
	"\x1bOF": {Type: KeyEnd},
}
