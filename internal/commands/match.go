package commands

import (
	"errors"
	"fmt"

	"github.com/kballard/go-shellquote"

	"patterncli/internal/logger"
	"patterncli/internal/pattern"
	"patterncli/pkg/clitypes"
)

// ErrInvalidCommand is wrapped by every InvalidCommandError.
var ErrInvalidCommand = errors.New("invalid command")

// InvalidCommandError reports input that no registered pattern matches.
type InvalidCommandError struct {
	Input  string
	Reason string
}

func (e *InvalidCommandError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid command '%s': %s", e.Input, e.Reason)
	}
	return fmt.Sprintf("invalid command '%s'", e.Input)
}

// Unwrap allows errors.Is(err, ErrInvalidCommand).
func (e *InvalidCommandError) Unwrap() error {
	return ErrInvalidCommand
}

// CommandMatch is a resolved command together with its bound arguments.
type CommandMatch struct {
	Command   clitypes.Command
	Arguments *Arguments
}

// FindMatch resolves input to a command. The input is split into words honouring
// shell quoting; literals must equal their word, arguments bind one word each and
// optional groups may be present or absent. When several commands match, the one
// matching more literal words wins, ties going to the earliest registered.
func (s *CommandSet) FindMatch(input string) (*CommandMatch, error) {
	words, err := shellquote.Split(input)
	if err != nil {
		return nil, &InvalidCommandError{Input: input, Reason: err.Error()}
	}
	if len(words) == 0 {
		return nil, &InvalidCommandError{Input: input, Reason: "empty input"}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var (
		best     *CommandMatch
		bestRank = -1
	)
	for _, e := range s.entries {
		bindings, literals, ok := matchTokens(e.tokens, words)
		if !ok || literals <= bestRank {
			continue
		}
		best = &CommandMatch{Command: e.command, Arguments: NewArguments(bindings)}
		bestRank = literals
	}

	if best == nil {
		return nil, &InvalidCommandError{Input: input}
	}
	logger.CommandMatched(best.Command.Pattern(), best.Arguments.Map())
	return best, nil
}

// matchTokens reports whether words satisfy tokens, returning the argument
// bindings and the number of literal words matched. When an argument name occurs
// twice, the first occurrence wins.
func matchTokens(tokens []pattern.Token, words []string) (map[string]string, int, bool) {
	if len(tokens) == 0 {
		if len(words) == 0 {
			return make(map[string]string), 0, true
		}
		return nil, 0, false
	}

	tok, rest := tokens[0], tokens[1:]
	switch tok.Kind {
	case pattern.OptionalGroup:
		withGroup := make([]pattern.Token, 0, len(tok.Inner)+len(rest))
		withGroup = append(withGroup, tok.Inner...)
		withGroup = append(withGroup, rest...)
		if bindings, literals, ok := matchTokens(withGroup, words); ok {
			return bindings, literals, true
		}
		return matchTokens(rest, words)

	case pattern.Argument:
		if len(words) == 0 {
			return nil, 0, false
		}
		bindings, literals, ok := matchTokens(rest, words[1:])
		if !ok {
			return nil, 0, false
		}
		bindings[tok.Text] = words[0]
		return bindings, literals, true

	default:
		if len(words) == 0 || words[0] != tok.Text {
			return nil, 0, false
		}
		bindings, literals, ok := matchTokens(rest, words[1:])
		if !ok {
			return nil, 0, false
		}
		return bindings, literals + 1, true
	}
}
