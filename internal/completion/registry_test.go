package completion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"patterncli/pkg/clitypes"
)

func TestCompleterSet_Register(t *testing.T) {
	set := NewCompleterSet(map[string]clitypes.Completer{
		"app": NewStringsCompleter("purchase"),
	})

	require.NoError(t, set.Register("stream", NewStringsCompleter("clicks")))
	assert.Equal(t, []string{"app", "stream"}, set.Names())

	c, ok := set.Completer("stream")
	require.True(t, ok)
	assert.Equal(t, []string{"clicks"}, c.Complete(""))

	_, ok = set.Completer("missing")
	assert.False(t, ok)

	tests := []struct {
		name      string
		argName   string
		completer clitypes.Completer
		errMsg    string
	}{
		{name: "empty name", argName: "", completer: NewStringsCompleter(), errMsg: "argument name cannot be empty"},
		{name: "nil completer", argName: "x", completer: nil, errMsg: "completer for x cannot be nil"},
		{name: "duplicate", argName: "app", completer: NewStringsCompleter(), errMsg: "completer for app already registered"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := set.Register(tt.argName, tt.completer)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestCompleterSet_NewCopiesInput(t *testing.T) {
	input := map[string]clitypes.Completer{"a": NewStringsCompleter("1")}
	set := NewCompleterSet(input)
	delete(input, "a")

	_, ok := set.Completer("a")
	assert.True(t, ok)
}

func TestLoadValuesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "completions.yaml")
	content := "flow-id: [ingest, cleanup]\nname:\n  - alice\n  - bob\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	values, err := LoadValuesFile(path)
	require.NoError(t, err)
	assert.Equal(t, map[string][]string{
		"flow-id": {"ingest", "cleanup"},
		"name":    {"alice", "bob"},
	}, values)

	set := NewCompleterSet(nil)
	require.NoError(t, set.RegisterValues(values))

	c, ok := set.Completer("name")
	require.True(t, ok)
	assert.Equal(t, []string{"bob"}, c.Complete("b"))
}

func TestLoadValuesFile_Errors(t *testing.T) {
	_, err := LoadValuesFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read completion values")

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("flow-id: {not: [a list"), 0600))
	_, err = LoadValuesFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse completion values")
}
