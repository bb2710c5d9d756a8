package builtin

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"patterncli/pkg/clitypes"
)

// HelpCommand lists every registered command pattern with its description.
type HelpCommand struct {
	Source CommandSource
}

// Pattern returns "help".
func (c *HelpCommand) Pattern() string {
	return "help"
}

// Description returns a brief description of what the help command does.
func (c *HelpCommand) Description() string {
	return "Show available commands"
}

// Execute writes a two-column table of patterns and descriptions.
func (c *HelpCommand) Execute(_ clitypes.Arguments, output io.Writer) error {
	if c.Source == nil {
		return fmt.Errorf("no command source configured")
	}
	cmds := c.Source()

	width := 0
	for _, cmd := range cmds {
		if w := ansi.StringWidth(cmd.Pattern()); w > width {
			width = w
		}
	}

	renderer := lipgloss.NewRenderer(output)
	patternStyle := renderer.NewStyle().Bold(true)
	descStyle := renderer.NewStyle().Faint(true)

	var b strings.Builder
	b.WriteString("Available commands:\n")
	for _, cmd := range cmds {
		p := cmd.Pattern()
		padding := strings.Repeat(" ", width-ansi.StringWidth(p))
		b.WriteString("  " + patternStyle.Render(p) + padding)
		if described, ok := cmd.(clitypes.DescribedCommand); ok && described.Description() != "" {
			b.WriteString("  " + descStyle.Render(described.Description()))
		}
		b.WriteString("\n")
	}

	_, err := io.WriteString(output, b.String())
	return err
}
