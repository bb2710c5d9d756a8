package commands

import (
	"fmt"
	"sort"
	"strconv"
)

// Arguments holds argument values bound by FindMatch, keyed by argument name.
// It implements clitypes.Arguments.
type Arguments struct {
	values map[string]string
}

// NewArguments creates an Arguments from a name/value map. The map is copied.
func NewArguments(values map[string]string) *Arguments {
	copied := make(map[string]string, len(values))
	for k, v := range values {
		copied[k] = v
	}
	return &Arguments{values: copied}
}

// Get returns the value bound to name, or an error if the argument is missing.
func (a *Arguments) Get(name string) (string, error) {
	v, ok := a.values[name]
	if !ok {
		return "", fmt.Errorf("missing argument: %s", name)
	}
	return v, nil
}

// GetOptional returns the value bound to name, or defaultValue when missing.
func (a *Arguments) GetOptional(name string, defaultValue string) string {
	if v, ok := a.values[name]; ok {
		return v
	}
	return defaultValue
}

// GetInt parses the value bound to name as an integer.
func (a *Arguments) GetInt(name string) (int, error) {
	v, err := a.Get(name)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("argument %s is not an integer: %q", name, v)
	}
	return n, nil
}

// Has reports whether name is bound.
func (a *Arguments) Has(name string) bool {
	_, ok := a.values[name]
	return ok
}

// Len returns the number of bound arguments.
func (a *Arguments) Len() int {
	return len(a.values)
}

// Names returns the bound argument names, sorted.
func (a *Arguments) Names() []string {
	names := make([]string, 0, len(a.values))
	for name := range a.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Map returns a copy of the bindings.
func (a *Arguments) Map() map[string]string {
	return NewArguments(a.values).values
}
