package nfa

// The supported alphabet: ASCII letters, digits, and a fixed punctuation
// set. Bytes outside this set are never matched literally; the
// metacharacters among them are reachable through escapes instead.
func isAlphabetByte(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z':
		return true
	case b >= 'A' && b <= 'Z':
		return true
	case b >= '0' && b <= '9':
		return true
	}
	switch b {
	case '!', '@', '#', '%', '&', '-', '=', '+',
		';', ':', '"', ',', '<', '>', '/', '`',
		'~', ' ', '\'':
		return true
	}
	return false
}

// escapedByte resolves the byte following a backslash. ok is false when
// the byte is not in the recognized escape set.
func escapedByte(b byte) (symbol byte, ok bool) {
	switch b {
	case 'n':
		return '\n', true
	case 't':
		return '\t', true
	case '$', '^', '(', ')', '{', '}', '[', ']', '|', '?', '*', '\\':
		return b, true
	}
	return 0, false
}
