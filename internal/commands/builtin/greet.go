package builtin

import (
	"fmt"
	"io"

	"patterncli/pkg/clitypes"
)

// GreetCommand greets someone, optionally with a custom greeting word.
type GreetCommand struct{}

// Pattern returns "greet <name> [with <greeting>]".
func (c *GreetCommand) Pattern() string {
	return "greet <name> [with <greeting>]"
}

// Description returns a brief description of what the greet command does.
func (c *GreetCommand) Description() string {
	return "Greet someone"
}

// Execute writes "<greeting>, <name>!".
func (c *GreetCommand) Execute(args clitypes.Arguments, output io.Writer) error {
	name, err := args.Get("name")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(output, "%s, %s!\n", args.GetOptional("greeting", "Hello"), name)
	return err
}
