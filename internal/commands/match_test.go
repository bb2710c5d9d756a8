package commands

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSet(t *testing.T, patterns ...string) *CommandSet {
	t.Helper()
	set, err := NewCommandSet()
	require.NoError(t, err)
	for _, p := range patterns {
		require.NoError(t, set.Register(NewMockCommand(p)))
	}
	return set
}

func TestFindMatch(t *testing.T) {
	set := newTestSet(t,
		"start flow <flow-id>",
		"start stream <stream-id>",
		"stop [remotely] <id>",
		"send <stream> <event>",
		"deploy <app> [to <env> [now]]",
	)

	tests := []struct {
		name        string
		input       string
		wantPattern string
		wantArgs    map[string]string
	}{
		{
			name:        "literal and argument",
			input:       "start flow ingest",
			wantPattern: "start flow <flow-id>",
			wantArgs:    map[string]string{"flow-id": "ingest"},
		},
		{
			name:        "sibling branch",
			input:       "start stream clicks",
			wantPattern: "start stream <stream-id>",
			wantArgs:    map[string]string{"stream-id": "clicks"},
		},
		{
			name:        "optional present",
			input:       "stop remotely 42",
			wantPattern: "stop [remotely] <id>",
			wantArgs:    map[string]string{"id": "42"},
		},
		{
			name:        "optional absent",
			input:       "stop 42",
			wantPattern: "stop [remotely] <id>",
			wantArgs:    map[string]string{"id": "42"},
		},
		{
			name:        "quoted argument",
			input:       `send clicks "a b c"`,
			wantPattern: "send <stream> <event>",
			wantArgs:    map[string]string{"stream": "clicks", "event": "a b c"},
		},
		{
			name:        "nested optional fully present",
			input:       "deploy web to prod now",
			wantPattern: "deploy <app> [to <env> [now]]",
			wantArgs:    map[string]string{"app": "web", "env": "prod"},
		},
		{
			name:        "nested optional partially present",
			input:       "deploy web to prod",
			wantPattern: "deploy <app> [to <env> [now]]",
			wantArgs:    map[string]string{"app": "web", "env": "prod"},
		},
		{
			name:        "nested optional absent",
			input:       "deploy web",
			wantPattern: "deploy <app> [to <env> [now]]",
			wantArgs:    map[string]string{"app": "web"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match, err := set.FindMatch(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.wantPattern, match.Command.Pattern())
			assert.Equal(t, tt.wantArgs, match.Arguments.Map())
		})
	}
}

func TestFindMatch_Invalid(t *testing.T) {
	set := newTestSet(t, "start flow <flow-id>")

	tests := []struct {
		name   string
		input  string
		reason string
	}{
		{name: "unknown literal", input: "begin flow x"},
		{name: "missing argument", input: "start flow"},
		{name: "extra words", input: "start flow x y"},
		{name: "blank", input: "   ", reason: "empty input"},
		{name: "unterminated quote", input: `start flow "x`, reason: "Unterminated"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match, err := set.FindMatch(tt.input)
			assert.Nil(t, match)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidCommand))

			var invalid *InvalidCommandError
			require.True(t, errors.As(err, &invalid))
			assert.Equal(t, tt.input, invalid.Input)
			if tt.reason != "" {
				assert.Contains(t, invalid.Reason, tt.reason)
			}
		})
	}
}

func TestFindMatch_PrefersMoreLiterals(t *testing.T) {
	set := newTestSet(t, "show <what>", "show apps", "<anything> apps")

	match, err := set.FindMatch("show apps")
	require.NoError(t, err)
	assert.Equal(t, "show apps", match.Command.Pattern())

	match, err = set.FindMatch("show streams")
	require.NoError(t, err)
	assert.Equal(t, "show <what>", match.Command.Pattern())
}

func TestFindMatch_TiesGoToRegistrationOrder(t *testing.T) {
	set := newTestSet(t, "get <a>", "get <b>")

	match, err := set.FindMatch("get x")
	require.NoError(t, err)
	assert.Equal(t, "get <a>", match.Command.Pattern())
}

func TestInvalidCommandError_Message(t *testing.T) {
	assert.Equal(t, "invalid command 'foo'", (&InvalidCommandError{Input: "foo"}).Error())
	assert.Equal(t, "invalid command 'foo': bad", (&InvalidCommandError{Input: "foo", Reason: "bad"}).Error())
}
