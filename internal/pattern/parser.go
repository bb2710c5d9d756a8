package pattern

import (
	"strings"
	"unicode"
)

// Parse tokenizes a pattern string. Optional groups are parsed recursively, so
// "stop [remotely [now]]" yields a literal followed by an optional group whose
// interior holds another optional group. Malformed brackets are not rejected; an
// unbalanced group simply stays a literal.
func Parse(pattern string) []Token {
	raw := Split(pattern)
	tokens := make([]Token, 0, len(raw))
	for _, r := range raw {
		tokens = append(tokens, Classify(r))
	}
	return tokens
}

// Classify turns one raw pattern element into a token.
func Classify(raw string) Token {
	switch {
	case isEnclosed(raw, '<', '>'):
		return NewArgument(raw[1 : len(raw)-1])
	case isEnclosed(raw, '[', ']'):
		return NewOptionalGroup(Parse(raw[1 : len(raw)-1]))
	default:
		return NewLiteral(raw)
	}
}

// Split breaks a pattern on whitespace while keeping bracketed elements whole, so
// "[remotely now]" and "<app id>" each stay a single element.
func Split(pattern string) []string {
	var (
		parts   []string
		current strings.Builder
		depth   int
	)
	flush := func() {
		if current.Len() > 0 {
			parts = append(parts, current.String())
			current.Reset()
		}
	}

	for _, r := range pattern {
		switch {
		case r == '[' || r == '<':
			depth++
		case (r == ']' || r == '>') && depth > 0:
			depth--
		case unicode.IsSpace(r) && depth == 0:
			flush()
			continue
		}
		current.WriteRune(r)
	}
	flush()

	return parts
}

// isEnclosed reports whether s is open...close with a non-empty interior.
func isEnclosed(s string, open, closing byte) bool {
	return len(s) > 2 && s[0] == open && s[len(s)-1] == closing
}
