package completion

import (
	"strings"
	"sync"

	"patterncli/internal/pattern"
	"patterncli/pkg/clitypes"
)

// StringsCompleter offers a fixed candidate list, filtered by the typed text.
type StringsCompleter struct {
	candidates []string
}

// NewStringsCompleter returns a completer offering candidates.
func NewStringsCompleter(candidates ...string) *StringsCompleter {
	return &StringsCompleter{candidates: append([]string(nil), candidates...)}
}

// Complete returns the candidates that start with line.
func (s *StringsCompleter) Complete(line string) []string {
	var matches []string
	for _, c := range s.candidates {
		if strings.HasPrefix(c, line) {
			matches = append(matches, c)
		}
	}
	return matches
}

// Scope is the token path a scoped completer is bound to. Literals must be typed
// verbatim; arguments stand for exactly one word. Each element is followed by a
// single space in the typed line.
type Scope []pattern.Token

// String renders the scope in pattern syntax, e.g. "start flow <flow-id>".
func (s Scope) String() string {
	return pattern.Join(s)
}

// Match checks that line begins with the scope and returns the remaining text.
func (s Scope) Match(line string) (rest string, ok bool) {
	rest = line
	for _, tok := range s {
		if tok.IsArgument() {
			end := strings.IndexByte(rest, ' ')
			if end <= 0 {
				return "", false
			}
			rest = rest[end+1:]
			continue
		}
		if !strings.HasPrefix(rest, tok.Text+" ") {
			return "", false
		}
		rest = rest[len(tok.Text)+1:]
	}
	return rest, true
}

func (s Scope) with(tok pattern.Token) Scope {
	next := make(Scope, 0, len(s)+1)
	next = append(next, s...)
	return append(next, tok)
}

// ScopedCompleter activates its inner completer only when the typed line starts
// with its scope, handing the inner completer the text after the scope.
type ScopedCompleter struct {
	scope Scope
	inner clitypes.Completer
}

// NewScopedCompleter wraps inner so it only completes within scope.
func NewScopedCompleter(scope Scope, inner clitypes.Completer) *ScopedCompleter {
	return &ScopedCompleter{scope: scope, inner: inner}
}

// Complete implements clitypes.Completer.
func (p *ScopedCompleter) Complete(line string) []string {
	rest, ok := p.scope.Match(line)
	if !ok {
		return nil
	}
	return p.inner.Complete(rest)
}

// scopeIfNeeded leaves root-level completers unwrapped.
func scopeIfNeeded(scope Scope, inner clitypes.Completer) clitypes.Completer {
	if len(scope) == 0 {
		return inner
	}
	return NewScopedCompleter(scope, inner)
}

// Aggregate asks every constituent completer in turn and concatenates their
// candidates. It neither ranks nor deduplicates.
type Aggregate []clitypes.Completer

// Complete implements clitypes.Completer.
func (a Aggregate) Complete(line string) []string {
	var candidates []string
	for _, c := range a {
		candidates = append(candidates, c.Complete(line)...)
	}
	return candidates
}

// Switch forwards to a replaceable target completer. It lets a line editor keep
// one installed completer while the engine behind it changes between sessions.
type Switch struct {
	mu     sync.RWMutex
	target clitypes.Completer
}

// Set replaces the target. A nil target yields no candidates.
func (s *Switch) Set(target clitypes.Completer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.target = target
}

// Complete implements clitypes.Completer.
func (s *Switch) Complete(line string) []string {
	s.mu.RLock()
	target := s.target
	s.mu.RUnlock()
	if target == nil {
		return nil
	}
	return target.Complete(line)
}
