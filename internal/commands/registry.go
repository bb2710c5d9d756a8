// Package commands holds the registered command set and resolves raw input to a
// command plus its bound arguments.
package commands

import (
	"fmt"
	"sync"

	"patterncli/internal/pattern"
	"patterncli/pkg/clitypes"
)

type entry struct {
	command clitypes.Command
	key     string
	tokens  []pattern.Token
}

// CommandSet manages command registration and lookup by pattern.
// Commands keep their registration order.
type CommandSet struct {
	mu      sync.RWMutex
	entries []entry
}

// NewCommandSet creates a set holding cmds. Returns an error if any pattern is
// empty or registered twice.
func NewCommandSet(cmds ...clitypes.Command) (*CommandSet, error) {
	set := &CommandSet{}
	for _, cmd := range cmds {
		if err := set.Register(cmd); err != nil {
			return nil, err
		}
	}
	return set, nil
}

// Register adds a command. Patterns are compared after whitespace normalisation.
func (s *CommandSet) Register(cmd clitypes.Command) error {
	tokens := pattern.Parse(cmd.Pattern())
	if len(tokens) == 0 {
		return fmt.Errorf("command pattern cannot be empty")
	}
	key := pattern.Join(tokens)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(key) >= 0 {
		return fmt.Errorf("command %s already registered", key)
	}
	s.entries = append(s.entries, entry{command: cmd, key: key, tokens: tokens})
	return nil
}

// Unregister removes the command registered under p. Unknown patterns are ignored.
func (s *CommandSet) Unregister(p string) {
	key := pattern.Join(pattern.Parse(p))

	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(key); i >= 0 {
		s.entries = append(s.entries[:i], s.entries[i+1:]...)
	}
}

// Get retrieves a command by pattern.
func (s *CommandSet) Get(p string) (clitypes.Command, bool) {
	key := pattern.Join(pattern.Parse(p))

	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(key); i >= 0 {
		return s.entries[i].command, true
	}
	return nil, false
}

// GetAll returns all commands in registration order. The slice is a copy.
func (s *CommandSet) GetAll() []clitypes.Command {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cmds := make([]clitypes.Command, len(s.entries))
	for i, e := range s.entries {
		cmds[i] = e.command
	}
	return cmds
}

// Patterns returns the raw patterns of all commands in registration order.
func (s *CommandSet) Patterns() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	patterns := make([]string, len(s.entries))
	for i, e := range s.entries {
		patterns[i] = e.command.Pattern()
	}
	return patterns
}

// Len returns the number of registered commands.
func (s *CommandSet) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

func (s *CommandSet) indexOf(key string) int {
	for i, e := range s.entries {
		if e.key == key {
			return i
		}
	}
	return -1
}
