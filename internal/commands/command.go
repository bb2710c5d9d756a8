package commands

import (
	"io"

	"patterncli/pkg/clitypes"
)

// ExecuteFunc is the body of a Func command.
type ExecuteFunc func(args clitypes.Arguments, output io.Writer) error

// Func is a command built from a pattern, a description and a function.
type Func struct {
	pattern     string
	description string
	execute     ExecuteFunc
}

// New returns a command that runs fn when its pattern matches.
func New(pattern, description string, fn ExecuteFunc) *Func {
	return &Func{pattern: pattern, description: description, execute: fn}
}

// Pattern implements clitypes.Command.
func (f *Func) Pattern() string {
	return f.pattern
}

// Description implements clitypes.DescribedCommand.
func (f *Func) Description() string {
	return f.description
}

// Execute implements clitypes.Command.
func (f *Func) Execute(args clitypes.Arguments, output io.Writer) error {
	if f.execute == nil {
		return nil
	}
	return f.execute(args, output)
}
