package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"patterncli/internal/commands"
)

func TestCLI_ExecuteScript(t *testing.T) {
	c := newTestCLI(t)
	script := strings.NewReader("# provision\n\nstart flow ingest\n  stop flow ingest  \nstart flow 'clean up' verbose\n")

	var out bytes.Buffer
	require.NoError(t, c.ExecuteScript(context.Background(), script, &out))
	assert.Equal(t, "started ingest verbose=false\n"+
		"Error: flow is not running\n"+
		"started clean up verbose=true\n", out.String())
}

func TestCLI_ExecuteScript_StopsAtInvalidLine(t *testing.T) {
	c := newTestCLI(t)
	script := strings.NewReader("start flow a\nlaunch\nstart flow b\n")

	var out bytes.Buffer
	err := c.ExecuteScript(context.Background(), script, &out)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrInvalidCommand)
	assert.Contains(t, err.Error(), "line 2:")
	assert.Equal(t, "started a verbose=false\n", out.String())
}

func TestCLI_ExecuteScript_Cancelled(t *testing.T) {
	c := newTestCLI(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := c.ExecuteScript(ctx, strings.NewReader("start flow a\n"), &out)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}
