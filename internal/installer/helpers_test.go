package installer

import (
	"context"
	"errors"
	"testing"

	"arch-setup/internal/config"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type recordingRunner struct {
	commands []Command
	failOn   string
	onRun    func(c Command)
}

func (r *recordingRunner) Run(_ context.Context, c Command) error {
	r.commands = append(r.commands, c)
	if r.onRun != nil {
		r.onRun(c)
	}
	if r.failOn != "" && c.String() == r.failOn {
		return &CommandError{Command: c.String(), Dir: c.Dir, Err: errors.New("exit status 1")}
	}
	return nil
}

func (r *recordingRunner) lines() []string {
	lines := make([]string, len(r.commands))
	for i, c := range r.commands {
		lines[i] = c.String()
	}
	return lines
}

func (r *recordingRunner) index(line string) int {
	for i, l := range r.lines() {
		if l == line {
			return i
		}
	}
	return -1
}

func (r *recordingRunner) count(line string) int {
	n := 0
	for _, l := range r.lines() {
		if l == line {
			n++
		}
	}
	return n
}

type mockPrompter struct {
	mock.Mock
}

func (m *mockPrompter) SelectMany(prompt string, items []string) ([]string, error) {
	args := m.Called(prompt, items)
	selected, _ := args.Get(0).([]string)
	return selected, args.Error(1)
}

func (m *mockPrompter) Confirm(prompt string, def bool) bool {
	return m.Called(prompt, def).Bool(0)
}

func (m *mockPrompter) Input(prompt string) (string, error) {
	args := m.Called(prompt)
	return args.String(0), args.Error(1)
}

func testConfig(t *testing.T) config.Config {
	t.Helper()
	cfg, err := config.Default()
	require.NoError(t, err)
	return cfg
}

func newTestExecutor(cfg config.Config, runner Runner, p *mockPrompter) (*Executor, afero.Fs) {
	fs := afero.NewMemMapFs()
	if p == nil {
		p = &mockPrompter{}
	}
	return NewExecutor(cfg, Options{
		Runner:   runner,
		Prompter: p,
		Fs:       fs,
		WorkDir:  "/work",
	}), fs
}
