package prompt

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
)

var (
	// ErrAborted is returned when the user leaves a required prompt with esc or ctrl+c.
	ErrAborted = errors.New("prompt aborted")
	// ErrNoTerminal is returned when stdin is not an interactive terminal.
	ErrNoTerminal = errors.New("interactive terminal required")
)

// Prompter asks the user questions on the terminal.
//
// SelectMany and Input fail when the session cannot be completed. Confirm never
// fails: a skipped or cancelled question reads as "no" whatever its default.
type Prompter interface {
	SelectMany(prompt string, items []string) ([]string, error)
	Confirm(prompt string, def bool) bool
	Input(prompt string) (string, error)
}

// Terminal is the bubbletea backed Prompter used by the CLI.
type Terminal struct {
	in          io.Reader
	out         io.Writer
	interactive bool
}

func NewTerminal() *Terminal {
	fd := os.Stdin.Fd()
	return &Terminal{
		in:          os.Stdin,
		out:         os.Stdout,
		interactive: isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd),
	}
}

func (t *Terminal) run(m tea.Model) (tea.Model, error) {
	if !t.interactive {
		return nil, ErrNoTerminal
	}
	return tea.NewProgram(m, tea.WithInput(t.in), tea.WithOutput(t.out)).Run()
}

func (t *Terminal) SelectMany(prompt string, items []string) ([]string, error) {
	final, err := t.run(newMultiSelect(prompt, items))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", prompt, err)
	}

	m := final.(multiSelectModel)
	if m.aborted || !m.done {
		return nil, fmt.Errorf("%s: %w", prompt, ErrAborted)
	}

	// echo the answer since the program clears its own view on exit
	fmt.Fprintf(t.out, "%s %v\n", theme.Title.Render(prompt), m.Selected())
	return m.Selected(), nil
}

func (t *Terminal) Confirm(prompt string, def bool) bool {
	final, err := t.run(newConfirm(prompt, def))
	if err != nil {
		return false
	}

	answer := final.(confirmModel).Answer()
	fmt.Fprintf(t.out, "%s %t\n", theme.Title.Render(prompt), answer)
	return answer
}

func (t *Terminal) Input(prompt string) (string, error) {
	final, err := t.run(newInput(prompt))
	if err != nil {
		return "", fmt.Errorf("%s: %w", prompt, err)
	}

	m := final.(inputModel)
	if m.aborted || !m.done {
		return "", fmt.Errorf("%s: %w", prompt, ErrAborted)
	}
	return m.Value(), nil
}
