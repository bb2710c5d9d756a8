package builtin

import (
	"fmt"
	"io"

	"patterncli/pkg/clitypes"
)

// EchoCommand writes its argument back. Quote the text to include spaces.
type EchoCommand struct{}

// Pattern returns "echo <text>".
func (c *EchoCommand) Pattern() string {
	return "echo <text>"
}

// Description returns a brief description of what the echo command does.
func (c *EchoCommand) Description() string {
	return "Print text"
}

// Execute writes the text argument followed by a newline.
func (c *EchoCommand) Execute(args clitypes.Arguments, output io.Writer) error {
	text, err := args.Get("text")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(output, text)
	return err
}
