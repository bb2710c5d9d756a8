// Package clitypes defines the contracts shared between the pattern shell engine and the
// code that embeds it: commands, completers, argument bindings, error handlers and the
// line editor that drives interactive sessions.
package clitypes

import (
	"errors"
	"io"
)

// ErrInterrupt is returned by a LineEditor when the user interrupts the current read
// (Ctrl+C) and interrupt handling is enabled.
var ErrInterrupt = errors.New("interrupted")

// Arguments holds the values bound to a command's named arguments.
type Arguments interface {
	Get(name string) (string, error)
	GetOptional(name string, defaultValue string) string
	GetInt(name string) (int, error)
	Has(name string) bool
	Len() int
}

// Command is a single shell command addressed by a textual pattern such as
// "start flow <flow-id> [verbose]".
type Command interface {
	Pattern() string
	Execute(args Arguments, output io.Writer) error
}

// DescribedCommand is implemented by commands that provide a one-line description
// for help output.
type DescribedCommand interface {
	Command
	Description() string
}

// Completer proposes candidate words for the text typed so far. The line passed in is
// the text before the cursor; returned candidates are whole words that complete the
// partially typed final word.
type Completer interface {
	Complete(line string) []string
}

// CompleterFunc adapts an ordinary function to the Completer interface.
type CompleterFunc func(line string) []string

// Complete calls f(line).
func (f CompleterFunc) Complete(line string) []string {
	return f(line)
}

// ExceptionHandler renders a command failure to the output sink.
type ExceptionHandler interface {
	HandleError(output io.Writer, err error)
}

// ExceptionHandlerFunc adapts an ordinary function to the ExceptionHandler interface.
type ExceptionHandlerFunc func(output io.Writer, err error)

// HandleError calls f(output, err).
func (f ExceptionHandlerFunc) HandleError(output io.Writer, err error) {
	f(output, err)
}

// LineEditor is the terminal surface used by the interactive loop.
// ReadLine returns ErrInterrupt on a user interrupt and io.EOF at end of input.
type LineEditor interface {
	SetPrompt(prompt string)
	ReadLine() (string, error)
	AddCompleter(completer Completer)
	SetHandleInterrupt(handle bool)
}
