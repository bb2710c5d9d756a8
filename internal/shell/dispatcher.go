// Package shell runs commands: the Dispatcher resolves and executes a single
// input line, and the Loop drives interactive sessions over a line editor.
package shell

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"patterncli/internal/commands"
	"patterncli/internal/logger"
	"patterncli/pkg/clitypes"
)

// Matcher resolves raw input to a command and its bound arguments.
type Matcher interface {
	FindMatch(input string) (*commands.CommandMatch, error)
}

// Dispatcher executes input lines against a Matcher. Command failures are routed
// to the exception handler; only unmatched input is returned to the caller.
type Dispatcher struct {
	matcher Matcher
	handler clitypes.ExceptionHandler
}

// NewDispatcher creates a dispatcher. A nil handler selects DefaultExceptionHandler.
func NewDispatcher(matcher Matcher, handler clitypes.ExceptionHandler) *Dispatcher {
	if handler == nil {
		handler = clitypes.ExceptionHandlerFunc(DefaultExceptionHandler)
	}
	return &Dispatcher{matcher: matcher, handler: handler}
}

// Handler returns the exception handler in use.
func (d *Dispatcher) Handler() clitypes.ExceptionHandler {
	return d.handler
}

// Execute resolves input and runs the matched command with output as its sink.
// A resolution failure (typically *commands.InvalidCommandError) is returned
// unhandled. Errors and panics raised by the command are reported through the
// exception handler and Execute returns nil.
func (d *Dispatcher) Execute(input string, output io.Writer) error {
	match, err := d.matcher.FindMatch(input)
	if err != nil {
		return err
	}

	if err := invoke(match, output); err != nil {
		logger.Debug("Command failed", "pattern", match.Command.Pattern(), "error", err)
		d.handler.HandleError(output, err)
	}
	return nil
}

func invoke(match *commands.CommandMatch, output io.Writer) (err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Command panicked", "pattern", match.Command.Pattern(), "panic", r)
			err = fmt.Errorf("command panicked: %v", r)
		}
	}()
	return match.Command.Execute(match.Arguments, output)
}

// DefaultExceptionHandler writes "Error: <message>".
func DefaultExceptionHandler(output io.Writer, err error) {
	fmt.Fprintf(output, "Error: %s\n", err.Error())
}

// NewStyledExceptionHandler returns a handler like DefaultExceptionHandler that
// renders the "Error:" label in bold red when output is a colour terminal.
func NewStyledExceptionHandler() clitypes.ExceptionHandler {
	return clitypes.ExceptionHandlerFunc(func(output io.Writer, err error) {
		label := lipgloss.NewRenderer(output).NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196")).
			Render("Error:")
		fmt.Fprintf(output, "%s %s\n", label, err.Error())
	})
}
