// Package builtin provides the stock commands shipped with the patterncli binary.
package builtin

import "patterncli/pkg/clitypes"

// CommandSource lists the commands currently registered, for commands such as
// help that describe the shell itself.
type CommandSource func() []clitypes.Command

// Commands returns every builtin command. source feeds the help command.
func Commands(source CommandSource) []clitypes.Command {
	return []clitypes.Command{
		&HelpCommand{Source: source},
		&EchoCommand{},
		&GreetCommand{},
		&VersionCommand{},
	}
}

// CompletionValues returns the default completion values for builtin arguments.
func CompletionValues() map[string][]string {
	return map[string][]string{
		"greeting": {"Hello", "Hi", "Welcome"},
	}
}
