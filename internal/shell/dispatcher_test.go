package shell

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"patterncli/internal/commands"
	"patterncli/internal/logger"
	"patterncli/pkg/clitypes"
)

// recordingHandler counts reported errors.
type recordingHandler struct {
	errs []error
}

func (h *recordingHandler) HandleError(output io.Writer, err error) {
	h.errs = append(h.errs, err)
	fmt.Fprintf(output, "handled: %v\n", err)
}

func newTestCommands(t *testing.T, cmds ...clitypes.Command) *commands.CommandSet {
	t.Helper()
	set, err := commands.NewCommandSet(cmds...)
	require.NoError(t, err)
	return set
}

func echoCommand() clitypes.Command {
	return commands.New("echo <text>", "", func(args clitypes.Arguments, output io.Writer) error {
		text, err := args.Get("text")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(output, text)
		return err
	})
}

func failingCommand(err error) clitypes.Command {
	return commands.New("fail", "", func(clitypes.Arguments, io.Writer) error {
		return err
	})
}

func TestDispatcher_Execute(t *testing.T) {
	d := NewDispatcher(newTestCommands(t, echoCommand()), nil)

	var out bytes.Buffer
	require.NoError(t, d.Execute("echo hi", &out))
	assert.Equal(t, "hi\n", out.String())
}

func TestDispatcher_InvalidCommandPropagates(t *testing.T) {
	handler := &recordingHandler{}
	d := NewDispatcher(newTestCommands(t, echoCommand()), handler)

	var out bytes.Buffer
	err := d.Execute("nope", &out)
	require.Error(t, err)
	assert.True(t, errors.Is(err, commands.ErrInvalidCommand))
	assert.Empty(t, handler.errs)
	assert.Empty(t, out.String())
}

func TestDispatcher_CommandErrorIsHandled(t *testing.T) {
	boom := errors.New("boom")
	handler := &recordingHandler{}
	d := NewDispatcher(newTestCommands(t, failingCommand(boom)), handler)

	var out bytes.Buffer
	require.NoError(t, d.Execute("fail", &out))
	require.Len(t, handler.errs, 1)
	assert.Same(t, boom, handler.errs[0])
	assert.Equal(t, "handled: boom\n", out.String())
}

func TestDispatcher_CommandPanicIsHandled(t *testing.T) {
	handler := &recordingHandler{}
	panicking := commands.New("explode", "", func(clitypes.Arguments, io.Writer) error {
		panic("kaboom")
	})
	d := NewDispatcher(newTestCommands(t, panicking), handler)

	var logs bytes.Buffer
	logger.SetOutput(&logs)
	t.Cleanup(func() { logger.SetOutput(os.Stderr) })

	require.NoError(t, d.Execute("explode", io.Discard))
	require.Len(t, handler.errs, 1)
	assert.Contains(t, handler.errs[0].Error(), "command panicked: kaboom")
	assert.Contains(t, logs.String(), "Command panicked")
	assert.Contains(t, logs.String(), "pattern=explode")
}

func TestDefaultExceptionHandler(t *testing.T) {
	d := NewDispatcher(newTestCommands(t, failingCommand(errors.New("disk full"))), nil)

	var out bytes.Buffer
	require.NoError(t, d.Execute("fail", &out))
	assert.Equal(t, "Error: disk full\n", out.String())
}

func TestStyledExceptionHandler_PlainOnNonTerminal(t *testing.T) {
	var out bytes.Buffer
	NewStyledExceptionHandler().HandleError(&out, errors.New("disk full"))
	assert.Equal(t, "Error: disk full\n", out.String())
}
