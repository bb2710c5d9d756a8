package builtin

import (
	"fmt"
	"io"

	"patterncli/internal/version"
	"patterncli/pkg/clitypes"
)

// VersionCommand prints build version information.
type VersionCommand struct{}

// Pattern returns "version".
func (c *VersionCommand) Pattern() string {
	return "version"
}

// Description returns a brief description of what the version command does.
func (c *VersionCommand) Description() string {
	return "Show version information"
}

// Execute writes the formatted version line.
func (c *VersionCommand) Execute(_ clitypes.Arguments, output io.Writer) error {
	_, err := fmt.Fprintln(output, version.GetFormattedVersion())
	return err
}
