package completion

import (
	"fmt"
	"os"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"patterncli/pkg/clitypes"
)

// CompleterSet maps argument names to the completers that supply their values.
type CompleterSet struct {
	mu         sync.RWMutex
	completers map[string]clitypes.Completer
}

// NewCompleterSet creates a set seeded with completers. Nil entries are skipped.
func NewCompleterSet(completers map[string]clitypes.Completer) *CompleterSet {
	s := &CompleterSet{completers: make(map[string]clitypes.Completer, len(completers))}
	for name, c := range completers {
		if c != nil {
			s.completers[name] = c
		}
	}
	return s
}

// Register adds a completer for an argument name. Returns an error if the name is
// empty, the completer is nil, or the name is already taken.
func (s *CompleterSet) Register(name string, c clitypes.Completer) error {
	if name == "" {
		return fmt.Errorf("argument name cannot be empty")
	}
	if c == nil {
		return fmt.Errorf("completer for %s cannot be nil", name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.completers[name]; exists {
		return fmt.Errorf("completer for %s already registered", name)
	}
	s.completers[name] = c
	return nil
}

// Completer implements Registry.
func (s *CompleterSet) Completer(name string) (clitypes.Completer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.completers[name]
	return c, ok
}

// Names returns the registered argument names, sorted.
func (s *CompleterSet) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.completers))
	for name := range s.completers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RegisterValues registers a StringsCompleter for every entry of values.
func (s *CompleterSet) RegisterValues(values map[string][]string) error {
	for name, list := range values {
		if err := s.Register(name, NewStringsCompleter(list...)); err != nil {
			return err
		}
	}
	return nil
}

// LoadValuesFile reads a YAML document mapping argument names to value lists:
//
//	flow-id: [ingest, cleanup]
//	name:
//	  - alice
//	  - bob
func LoadValuesFile(path string) (map[string][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read completion values: %w", err)
	}

	values := make(map[string][]string)
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("failed to parse completion values %s: %w", path, err)
	}
	return values, nil
}
