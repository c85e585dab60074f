// ABOUTME: Parser for CSI sequences that carry a modifier parameter.
// ABOUTME: Covers CSI u (fixterms/kitty), CSI n;m ~ and CSI 1;m <letter> encodings.

package key

import "strconv"

// Modifier bitmask values (encoded as modifiers-1 in the wire format).
const (
	modShift = 1 << iota // bit 0
	modAlt               // bit 1
	modCtrl              // bit 2
)

// tildeKeyTypes maps CSI number~ codes to their key types.
var tildeKeyTypes = map[int]KeyType{
	1: KeyHome,
	3: KeyDelete,
	4: KeyEnd,
	5: KeyPageUp,
	6: KeyPageDown,
	7: KeyHome,
	8: KeyEnd,
}

// letterKeyTypes maps CSI letter terminators to their key types.
var letterKeyTypes = map[byte]KeyType{
	'A': KeyUp,
	'B': KeyDown,
	'C': KeyRight,
	'D': KeyLeft,
	'H': KeyHome,
	'F': KeyEnd,
}

// parseModifiedSequence parses a CSI sequence carrying explicit modifiers:
//   - CSI <codepoint>[:<shifted>] [; <modifiers>[:<event>]] u
//   - CSI <number> [; <modifiers>] ~
//   - CSI 1 ; <modifiers> <letter>
//
// Terminals emit these for Ctrl/Alt/Shift combinations the legacy byte
// encoding cannot express. Returns false when data is not one of them.
func parseModifiedSequence(data string) (Key, bool) {
	if len(data) < 4 || data[0] != esc || data[1] != '[' {
		return Key{}, false
	}

	body := data[2 : len(data)-1]
	terminator := data[len(data)-1]

	switch terminator {
	case 'u':
		return parseCSIu(body)
	case '~':
		return parseTilde(body)
	case 'A', 'B', 'C', 'D', 'H', 'F':
		return parseLetterTerminator(body, terminator)
	default:
		return Key{}, false
	}
}

// parseCSIu handles CSI <codepoint>[:<shifted>] [; <modifiers>[:<event>]] u.
func parseCSIu(body string) (Key, bool) {
	codepointStr, modifierStr := splitOn(body, ';')

	codepoint, err := parseCodepoint(codepointStr)
	if err != nil {
		return Key{}, false
	}

	mods, event, err := parseModifiers(modifierStr)
	if err != nil {
		return Key{}, false
	}

	// Event type 3 = key release; ignore it
	if event == 3 {
		return Key{}, false
	}

	return buildKey(codepoint, mods), true
}

// parseTilde handles CSI <number> [; <modifiers>] ~ for functional keys.
func parseTilde(body string) (Key, bool) {
	numStr, modifierStr := splitOn(body, ';')

	num, err := strconv.Atoi(numStr)
	if err != nil {
		return Key{}, false
	}

	kt, ok := tildeKeyTypes[num]
	if !ok {
		return Key{}, false
	}

	mods, _, err := parseModifiers(modifierStr)
	if err != nil {
		return Key{}, false
	}

	k := Key{Type: kt}
	applyModifiers(&k, mods)
	return k, true
}

// parseLetterTerminator handles CSI 1 ; <modifiers> <letter> for arrow/nav keys.
// The unmodified forms (CSI A etc.) live in the legacy table.
func parseLetterTerminator(body string, letter byte) (Key, bool) {
	kt, ok := letterKeyTypes[letter]
	if !ok {
		return Key{}, false
	}

	_, modifierStr := splitOn(body, ';')
	if modifierStr == "" {
		return Key{}, false
	}

	mods, _, err := parseModifiers(modifierStr)
	if err != nil {
		return Key{}, false
	}

	k := Key{Type: kt}
	applyModifiers(&k, mods)
	return k, true
}

// splitOn splits s into at most two parts on the first sep.
func splitOn(s string, sep byte) (string, string) {
	for i := 0; i < len(s); i++ {
		if s[i] == sep {
			return s[:i], s[i+1:]
		}
	}
	return s, ""
}

// parseCodepoint extracts the primary codepoint from <codepoint>[:<shifted>[:<base>]].
func parseCodepoint(s string) (rune, error) {
	primary, _ := splitOn(s, ':')
	n, err := strconv.Atoi(primary)
	if err != nil {
		return 0, err
	}
	return rune(n), nil
}

// parseModifiers parses <modifiers>[:<event_type>] and returns the decoded
// bitmask and event type (0 if absent).
func parseModifiers(s string) (int, int, error) {
	if s == "" {
		return 0, 0, nil
	}

	modStr, eventStr := splitOn(s, ':')

	modVal, err := strconv.Atoi(modStr)
	if err != nil {
		return 0, 0, err
	}
	mods := modVal - 1

	event := 0
	if eventStr != "" {
		event, err = strconv.Atoi(eventStr)
		if err != nil {
			return 0, 0, err
		}
	}

	return mods, event, nil
}

// buildKey constructs a Key from a codepoint and modifier bitmask.
func buildKey(codepoint rune, mods int) Key {
	k := mapCodepointToKey(codepoint)

	// Ctrl+<letter> must equal what the single control byte decodes to.
	if mods&modCtrl != 0 && k.Type == KeyRune {
		k = Ctrl(k.Rune)
	}

	if k.Type == KeyTab && mods&modShift != 0 {
		k = Key{Type: KeyBackTab}
	}

	applyModifiers(&k, mods)
	return k
}

// mapCodepointToKey converts a codepoint to a base Key without modifiers.
func mapCodepointToKey(cp rune) Key {
	switch cp {
	case 13:
		return Key{Type: KeyEnter}
	case 9:
		return Key{Type: KeyTab}
	case 127:
		return Key{Type: KeyBackspace}
	case 27:
		return Key{Type: KeyEscape}
	default:
		return Key{Type: KeyRune, Rune: cp}
	}
}

// applyModifiers sets the modifier flags on a Key from the decoded bitmask.
func applyModifiers(k *Key, mods int) {
	if mods&modShift != 0 {
		k.Shift = true
	}
	if mods&modAlt != 0 {
		k.Alt = true
	}
	if mods&modCtrl != 0 {
		k.Ctrl = true
	}
}
