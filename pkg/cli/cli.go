// Package cli embeds a pattern-driven interactive shell in a host program.
//
// Commands are declared with textual patterns such as "start flow <flow-id> [verbose]".
// The same patterns drive argument binding for Execute and tab completion for the
// interactive session started by StartInteractiveMode.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"patterncli/internal/commands"
	"patterncli/internal/completion"
	"patterncli/internal/logger"
	"patterncli/internal/shell"
	"patterncli/pkg/clitypes"
)

// DefaultPrompt is the prompt used when WithPrompt is not given.
const DefaultPrompt = "cli> "

// ErrSessionActive is returned when commands or completers are registered while an
// interactive session is running.
var ErrSessionActive = errors.New("interactive session is active")

// Option configures a CLI.
type Option func(*CLI)

// WithPrompt sets the interactive prompt.
func WithPrompt(prompt string) Option {
	return func(c *CLI) {
		c.prompt = prompt
	}
}

// WithExceptionHandler sets the handler that reports command failures.
func WithExceptionHandler(handler clitypes.ExceptionHandler) Option {
	return func(c *CLI) {
		c.handler = handler
	}
}

// WithLineEditor replaces the terminal line editor used by StartInteractiveMode.
func WithLineEditor(editor clitypes.LineEditor) Option {
	return func(c *CLI) {
		c.editor = editor
	}
}

// WithHistoryFile persists interactive history to path. Ignored when a custom
// line editor is supplied.
func WithHistoryFile(path string) Option {
	return func(c *CLI) {
		c.historyFile = path
	}
}

// closableEditor is a line editor owned by a single session.
type closableEditor interface {
	clitypes.LineEditor
	Close() error
}

// CLI is a set of pattern commands with their argument completers.
type CLI struct {
	mu          sync.Mutex
	commands    *commands.CommandSet
	completers  *completion.CompleterSet
	handler     clitypes.ExceptionHandler
	editor      clitypes.LineEditor
	newEditor   func() (closableEditor, error)
	prompt      string
	historyFile string

	running   bool
	session   clitypes.LineEditor
	installed clitypes.LineEditor
	engine    *completion.Switch
}

// New creates a CLI for cmds, completing arguments with completers keyed by
// argument name. Returns an error if a pattern is empty or registered twice.
func New(cmds []clitypes.Command, completers map[string]clitypes.Completer, opts ...Option) (*CLI, error) {
	set, err := commands.NewCommandSet(cmds...)
	if err != nil {
		return nil, err
	}

	c := &CLI{
		commands:   set,
		completers: completion.NewCompleterSet(completers),
		handler:    clitypes.ExceptionHandlerFunc(shell.DefaultExceptionHandler),
		prompt:     DefaultPrompt,
	}
	c.newEditor = c.newReadlineEditor
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Register adds a command.
func (c *CLI) Register(cmd clitypes.Command) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.running {
		return fmt.Errorf("cannot register %s: %w", cmd.Pattern(), ErrSessionActive)
	}
	return c.commands.Register(cmd)
}

// Unregister removes the command registered under pattern. Unknown patterns are
// ignored.
func (c *CLI) Unregister(pattern string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.running {
		return fmt.Errorf("cannot unregister %s: %w", pattern, ErrSessionActive)
	}
	c.commands.Unregister(pattern)
	return nil
}

// RegisterCompleter adds the completer for an argument name.
func (c *CLI) RegisterCompleter(argumentName string, completer clitypes.Completer) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.running {
		return fmt.Errorf("cannot register completer for %s: %w", argumentName, ErrSessionActive)
	}
	return c.completers.Register(argumentName, completer)
}

// RegisterValues adds a fixed-value completer for each argument name in values.
func (c *CLI) RegisterValues(values map[string][]string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.running {
		return ErrSessionActive
	}
	return c.completers.RegisterValues(values)
}

// Commands returns the registered commands in registration order.
func (c *CLI) Commands() []clitypes.Command {
	return c.commands.GetAll()
}

// SetExceptionHandler replaces the handler that reports command failures. It takes
// effect for the next Execute call or interactive session.
func (c *CLI) SetExceptionHandler(handler clitypes.ExceptionHandler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if handler == nil {
		handler = clitypes.ExceptionHandlerFunc(shell.DefaultExceptionHandler)
	}
	c.handler = handler
}

// Editor returns the line editor of the running session, or the one supplied
// with WithLineEditor when no session runs.
func (c *CLI) Editor() clitypes.LineEditor {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session != nil {
		return c.session
	}
	return c.editor
}

// Completer synthesizes the completion engine for the registered commands.
func (c *CLI) Completer() clitypes.Completer {
	tree := completion.BuildTree(c.commands.Patterns())
	return completion.NewSynthesizer(c.completers).Synthesize(tree)
}

// Execute runs one input line without an interactive session. Command failures are
// reported through the exception handler; input that matches no command returns a
// *commands.InvalidCommandError.
func (c *CLI) Execute(input string, output io.Writer) error {
	return c.dispatcher().Execute(input, output)
}

// StartInteractiveMode runs the interactive loop until end of input or until ctx is
// cancelled. Without WithLineEditor a fresh readline terminal editor is created for
// the session and closed when it ends. The completion engine is rebuilt for every
// session from the commands registered at its start.
func (c *CLI) StartInteractiveMode(ctx context.Context, output io.Writer) error {
	c.mu.Lock()
	if c.running {
		c.mu.Unlock()
		return ErrSessionActive
	}
	editor := c.editor
	if editor == nil {
		created, err := c.newEditor()
		if err != nil {
			c.mu.Unlock()
			return fmt.Errorf("failed to create line editor: %w", err)
		}
		defer func() {
			if err := created.Close(); err != nil {
				logger.Warn("Failed to close line editor", "error", err)
			}
		}()
		editor = created
	}

	// An editor keeps its completers for life, so the switch is installed once
	// per editor and only its target changes between sessions.
	var install clitypes.Completer
	if editor != c.installed {
		c.engine = &completion.Switch{}
		c.installed = editor
		install = c.engine
	}
	c.engine.Set(c.Completer())
	c.session = editor
	c.running = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.engine.Set(nil)
		c.session = nil
		c.running = false
		c.mu.Unlock()
	}()

	logger.Debug("Starting interactive mode", "commands", c.commands.Len())
	loop := shell.NewLoop(editor, c.dispatcher(), install, c.prompt)
	return loop.Run(ctx, output)
}

// newReadlineEditor creates the terminal editor for one session.
func (c *CLI) newReadlineEditor() (closableEditor, error) {
	rl, err := shell.NewReadlineEditor(shell.EditorConfig{
		Prompt:      c.prompt,
		HistoryFile: c.historyFile,
	})
	if err != nil {
		return nil, err
	}
	return rl, nil
}

func (c *CLI) dispatcher() *shell.Dispatcher {
	c.mu.Lock()
	handler := c.handler
	c.mu.Unlock()
	return shell.NewDispatcher(c.commands, handler)
}
