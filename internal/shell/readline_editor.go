package shell

import (
	"io"
	"sync"

	"github.com/chzyer/readline"
	"github.com/muesli/termenv"

	"patterncli/internal/completion"
	"patterncli/pkg/clitypes"
)

// EditorConfig configures a ReadlineEditor. Nil streams fall back to the
// process's standard streams.
type EditorConfig struct {
	Prompt      string
	HistoryFile string
	Stdin       io.ReadCloser
	Stdout      io.Writer
	Stderr      io.Writer
}

// ReadlineEditor is a clitypes.LineEditor backed by github.com/chzyer/readline.
type ReadlineEditor struct {
	instance        *readline.Instance
	completers      *completerList
	handleInterrupt bool
}

// NewReadlineEditor creates the terminal line editor.
func NewReadlineEditor(cfg EditorConfig) (*ReadlineEditor, error) {
	completers := &completerList{}
	instance, err := readline.NewEx(&readline.Config{
		Prompt:          cfg.Prompt,
		HistoryFile:     cfg.HistoryFile,
		AutoComplete:    completers,
		InterruptPrompt: "^C",
		Stdin:           cfg.Stdin,
		Stdout:          cfg.Stdout,
		Stderr:          cfg.Stderr,
	})
	if err != nil {
		return nil, err
	}
	return &ReadlineEditor{instance: instance, completers: completers}, nil
}

// SetPrompt implements clitypes.LineEditor.
func (e *ReadlineEditor) SetPrompt(prompt string) {
	e.instance.SetPrompt(prompt)
}

// ReadLine implements clitypes.LineEditor. When interrupt handling is off, an
// interrupt ends input like EOF.
func (e *ReadlineEditor) ReadLine() (string, error) {
	line, err := e.instance.Readline()
	if err == readline.ErrInterrupt {
		if e.handleInterrupt {
			return "", clitypes.ErrInterrupt
		}
		return "", io.EOF
	}
	return line, err
}

// AddCompleter implements clitypes.LineEditor.
func (e *ReadlineEditor) AddCompleter(c clitypes.Completer) {
	e.completers.add(c)
}

// SetHandleInterrupt implements clitypes.LineEditor.
func (e *ReadlineEditor) SetHandleInterrupt(handle bool) {
	e.handleInterrupt = handle
}

// Close restores the terminal and flushes history.
func (e *ReadlineEditor) Close() error {
	return e.instance.Close()
}

// completerList is the readline.AutoCompleter handed to readline at
// construction; completers added later join it.
type completerList struct {
	mu   sync.RWMutex
	list completion.Aggregate
}

func (c *completerList) add(completer clitypes.Completer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.list = append(c.list, completer)
}

// Do implements readline.AutoCompleter.
func (c *completerList) Do(line []rune, pos int) ([][]rune, int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return completion.Suggest(c.list, line, pos)
}

// ColorPrompt renders prompt in bold blue when w is a colour terminal and
// returns it unchanged otherwise.
func ColorPrompt(w io.Writer, prompt string) string {
	output := termenv.NewOutput(w)
	if output.Profile == termenv.Ascii {
		return prompt
	}
	return output.String(prompt).Foreground(output.Color("39")).Bold().String()
}
