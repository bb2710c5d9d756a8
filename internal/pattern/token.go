// Package pattern turns command pattern strings into token sequences.
// A pattern is a space separated list of literals ("start"), named argument
// placeholders ("<flow-id>") and optional groups ("[remotely]") whose interior is
// itself a pattern.
package pattern

import "strings"

// Kind classifies a pattern token.
type Kind int

const (
	// Literal tokens must be typed verbatim.
	Literal Kind = iota
	// Argument tokens bind one input word under a name.
	Argument
	// OptionalGroup tokens hold a sub-pattern that may be present or absent.
	OptionalGroup
)

func (k Kind) String() string {
	switch k {
	case Literal:
		return "literal"
	case Argument:
		return "argument"
	case OptionalGroup:
		return "optional"
	default:
		return "unknown"
	}
}

// Token is one element of a tokenized pattern. Tokens are compared by their
// textual form (String), which is also the label used for tree node identity.
type Token struct {
	Kind Kind
	// Text is the literal word or the argument name.
	Text string
	// Inner is the tokenized interior of an optional group.
	Inner []Token
}

// NewLiteral returns a literal token.
func NewLiteral(text string) Token {
	return Token{Kind: Literal, Text: text}
}

// NewArgument returns an argument token named name.
func NewArgument(name string) Token {
	return Token{Kind: Argument, Text: name}
}

// NewOptionalGroup returns an optional group wrapping inner.
func NewOptionalGroup(inner []Token) Token {
	return Token{Kind: OptionalGroup, Inner: inner}
}

// IsArgument reports whether t is a named argument placeholder.
func (t Token) IsArgument() bool {
	return t.Kind == Argument
}

// IsOptional reports whether t is an optional group.
func (t Token) IsOptional() bool {
	return t.Kind == OptionalGroup
}

// String renders the token the way it is written in a pattern.
func (t Token) String() string {
	switch t.Kind {
	case Argument:
		return "<" + t.Text + ">"
	case OptionalGroup:
		return "[" + Join(t.Inner) + "]"
	default:
		return t.Text
	}
}

// Join renders a token sequence back into pattern syntax.
func Join(tokens []Token) string {
	parts := make([]string, len(tokens))
	for i, t := range tokens {
		parts[i] = t.String()
	}
	return strings.Join(parts, " ")
}
