package commands

import (
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"patterncli/pkg/clitypes"
)

// MockCommand records executions for testing.
type MockCommand struct {
	pattern     string
	executeFunc func(args clitypes.Arguments, output io.Writer) error
	calls       int
}

func NewMockCommand(pattern string) *MockCommand {
	return &MockCommand{pattern: pattern}
}

func (m *MockCommand) Pattern() string {
	return m.pattern
}

func (m *MockCommand) Execute(args clitypes.Arguments, output io.Writer) error {
	m.calls++
	if m.executeFunc != nil {
		return m.executeFunc(args, output)
	}
	return nil
}

func TestCommandSet_Register(t *testing.T) {
	tests := []struct {
		name    string
		command clitypes.Command
		wantErr bool
		errMsg  string
	}{
		{
			name:    "register valid command",
			command: NewMockCommand("start flow <flow-id>"),
		},
		{
			name:    "register another command",
			command: NewMockCommand("stop flow <flow-id> [now]"),
		},
		{
			name:    "register command with empty pattern",
			command: NewMockCommand("   "),
			wantErr: true,
			errMsg:  "command pattern cannot be empty",
		},
		{
			name:    "register duplicate after whitespace normalisation",
			command: NewMockCommand("start  flow   <flow-id>"),
			wantErr: true,
			errMsg:  "command start flow <flow-id> already registered",
		},
	}

	set, err := NewCommandSet()
	require.NoError(t, err)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := set.Register(tt.command)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			cmd, exists := set.Get(tt.command.Pattern())
			assert.True(t, exists)
			assert.Equal(t, tt.command, cmd)
		})
	}

	assert.Equal(t, 2, set.Len())
}

func TestNewCommandSet_RejectsDuplicates(t *testing.T) {
	_, err := NewCommandSet(NewMockCommand("help"), NewMockCommand("help"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "command help already registered")
}

func TestCommandSet_Unregister(t *testing.T) {
	set, err := NewCommandSet(NewMockCommand("a"), NewMockCommand("b c"), NewMockCommand("d"))
	require.NoError(t, err)

	set.Unregister("b  c")
	_, exists := set.Get("b c")
	assert.False(t, exists)
	assert.Equal(t, []string{"a", "d"}, set.Patterns())

	// Unregistering an unknown pattern is a no-op.
	set.Unregister("nonexistent")
	assert.Equal(t, 2, set.Len())
}

func TestCommandSet_GetAllKeepsOrder(t *testing.T) {
	cmds := []clitypes.Command{NewMockCommand("z"), NewMockCommand("a"), NewMockCommand("m")}
	set, err := NewCommandSet(cmds...)
	require.NoError(t, err)

	all := set.GetAll()
	assert.Equal(t, cmds, all)

	all[0] = nil
	assert.NotNil(t, set.GetAll()[0])
}

func TestFuncCommand(t *testing.T) {
	cmd := New("echo <text>", "Print text", func(args clitypes.Arguments, output io.Writer) error {
		text, err := args.Get("text")
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(output, text)
		return err
	})

	assert.Equal(t, "echo <text>", cmd.Pattern())
	assert.Equal(t, "Print text", cmd.Description())

	assert.Error(t, cmd.Execute(NewArguments(nil), io.Discard))
	assert.NoError(t, New("noop", "", nil).Execute(NewArguments(nil), io.Discard))
}
