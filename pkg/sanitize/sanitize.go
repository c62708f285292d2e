package sanitize

import "strings"

// Text normalizes free-form user input: NUL bytes are stripped, the result is
// capped at max runes and surrounding whitespace is trimmed. Empty input
// passes through unchanged; callers decide whether empty is an error.
func Text(s string, max int) string {
	if s == "" {
		return s
	}
	s = strings.ReplaceAll(s, "\x00", "")
	if r := []rune(s); len(r) > max {
		s = string(r[:max])
	}
	return strings.TrimSpace(s)
}

// Truncate caps a string at max runes without trimming. Used for values taken
// verbatim from the external product API.
func Truncate(s string, max int) string {
	if r := []rune(s); len(r) > max {
		return string(r[:max])
	}
	return s
}
