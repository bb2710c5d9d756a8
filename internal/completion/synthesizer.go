package completion

import (
	"strings"

	"patterncli/internal/logger"
	"patterncli/pkg/clitypes"
)

// Registry resolves argument names to completers. A missing name is a normal
// outcome and yields no candidates.
type Registry interface {
	Completer(argumentName string) (clitypes.Completer, bool)
}

// Synthesizer turns a pattern Tree into a completion Engine.
type Synthesizer struct {
	registry Registry
}

// NewSynthesizer returns a synthesizer resolving argument completers from registry.
// A nil registry means no argument completers.
func NewSynthesizer(registry Registry) *Synthesizer {
	return &Synthesizer{registry: registry}
}

// Synthesize walks tree and aggregates one completer per argument child with a
// registered completer and one literal completer per inner node, each scoped to
// the token path leading to that node.
func (s *Synthesizer) Synthesize(tree *Tree) *Engine {
	completers := s.collect(tree.Root(), nil)
	logger.Debug("Synthesized completion engine", "completers", len(completers))
	return &Engine{completers: completers}
}

func (s *Synthesizer) collect(node *Node, scope Scope) []clitypes.Completer {
	if node.IsLeaf() {
		return nil
	}

	var (
		completers []clitypes.Completer
		literals   []string
	)
	children := node.Children()
	for _, child := range children {
		tok, _ := child.Token()
		if !tok.IsArgument() {
			literals = append(literals, child.Label())
			continue
		}
		if c, ok := s.lookup(tok.Text); ok {
			completers = append(completers, scopeIfNeeded(scope, c))
		}
	}
	if len(literals) > 0 {
		completers = append(completers, scopeIfNeeded(scope, NewStringsCompleter(literals...)))
	}

	for _, child := range children {
		tok, _ := child.Token()
		completers = append(completers, s.collect(child, scope.with(tok))...)
	}
	return completers
}

func (s *Synthesizer) lookup(name string) (clitypes.Completer, bool) {
	if s.registry == nil {
		return nil, false
	}
	return s.registry.Completer(name)
}

// Engine is the composed completer installed into the line editor. It is
// stateless: candidates depend only on the text passed in.
type Engine struct {
	completers []clitypes.Completer
}

// Complete implements clitypes.Completer by asking every constituent completer.
func (e *Engine) Complete(line string) []string {
	return Aggregate(e.completers).Complete(line)
}

// Len returns the number of constituent completers.
func (e *Engine) Len() int {
	return len(e.completers)
}

// Do implements readline.AutoCompleter. It returns the suffixes that complete
// the word under the cursor and the length of that word.
func (e *Engine) Do(line []rune, pos int) (newLine [][]rune, length int) {
	return Suggest(e, line, pos)
}

// Suggest adapts a clitypes.Completer to readline's suffix based protocol: it
// returns the suffixes completing the word under the cursor, each followed by a
// space, and the length of that word in runes.
func Suggest(c clitypes.Completer, line []rune, pos int) ([][]rune, int) {
	if pos > len(line) {
		pos = len(line)
	}
	text := string(line[:pos])
	word := text[strings.LastIndexByte(text, ' ')+1:]

	var suggestions [][]rune
	for _, candidate := range c.Complete(text) {
		if strings.HasPrefix(candidate, word) {
			suggestions = append(suggestions, []rune(candidate[len(word):]+" "))
		}
	}
	return suggestions, len([]rune(word))
}
