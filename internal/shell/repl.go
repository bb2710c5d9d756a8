package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"patterncli/internal/logger"
	"patterncli/pkg/clitypes"
)

// State is the interactive loop's position in its read/dispatch cycle.
type State int

const (
	// StateIdle is the state before Run is called.
	StateIdle State = iota
	// StateReadingLine waits on the line editor.
	StateReadingLine
	// StateDispatching runs a command.
	StateDispatching
	// StateClosed is terminal; the loop has returned.
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateReadingLine:
		return "reading"
	case StateDispatching:
		return "dispatching"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Loop is the read-eval-print loop. It processes one line completely before
// reading the next and is not safe for concurrent use.
type Loop struct {
	editor     clitypes.LineEditor
	dispatcher *Dispatcher
	completer  clitypes.Completer
	prompt     string
	state      State
	log        *log.Logger
}

// NewLoop creates a loop reading from editor and dispatching through dispatcher.
// completer, when non-nil, is installed into the editor when Run starts; an
// empty prompt leaves the editor's prompt untouched.
func NewLoop(editor clitypes.LineEditor, dispatcher *Dispatcher, completer clitypes.Completer, prompt string) *Loop {
	return &Loop{
		editor:     editor,
		dispatcher: dispatcher,
		completer:  completer,
		prompt:     prompt,
		state:      StateIdle,
		log:        logger.NewStyledLogger("repl"),
	}
}

// State returns the loop's current state.
func (l *Loop) State() State {
	return l.state
}

// Run reads and dispatches lines until end of input, writing command output and
// error reports to output. Interrupts discard the current line; blank lines are
// skipped; every dispatched line is followed by a blank separator line. Run
// returns nil at end of input, ctx.Err() if ctx is cancelled between reads, and
// an error only if the editor fails for a reason other than interrupt or EOF.
func (l *Loop) Run(ctx context.Context, output io.Writer) error {
	l.editor.SetHandleInterrupt(true)
	if l.prompt != "" {
		l.editor.SetPrompt(l.prompt)
	}
	if l.completer != nil {
		l.editor.AddCompleter(l.completer)
	}

	sessionID := uuid.New().String()
	l.log.Debug("Interactive session started", "session", sessionID)
	defer func() {
		l.state = StateClosed
		l.log.Debug("Interactive session closed", "session", sessionID)
	}()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		l.state = StateReadingLine
		line, err := l.editor.ReadLine()
		switch {
		case errors.Is(err, clitypes.ErrInterrupt):
			continue
		case errors.Is(err, io.EOF):
			fmt.Fprintln(output)
			return nil
		case err != nil:
			return fmt.Errorf("failed to read line: %w", err)
		}

		command := strings.TrimSpace(line)
		if command == "" {
			continue
		}

		l.state = StateDispatching
		if err := l.dispatcher.Execute(command, output); err != nil {
			l.dispatcher.Handler().HandleError(output, err)
		}
		fmt.Fprintln(output)
	}
}
