package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"patterncli/internal/logger"
)

// ExecuteScript runs every line of script through Execute in order. Blank lines
// and lines starting with '#' are skipped. Command failures are reported through
// the exception handler and do not stop the script; a line that matches no
// command does, and the returned error names its line number.
func (c *CLI) ExecuteScript(ctx context.Context, script io.Reader, output io.Writer) error {
	scanner := bufio.NewScanner(script)
	lineNumber, executed := 0, 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		lineNumber++

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		logger.Debug("Executing script line", "line", lineNumber, "input", line)
		if err := c.Execute(line, output); err != nil {
			return fmt.Errorf("line %d: %w", lineNumber, err)
		}
		executed++
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read script: %w", err)
	}

	logger.Debug("Script completed", "commands", executed)
	return nil
}
