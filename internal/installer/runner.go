package installer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"arch-setup/internal/logger"
)

// Command is a single external program invocation.
type Command struct {
	Name string
	Args []string
	Dir  string // working directory; empty means the current one
}

// ParseCommand splits a command line on whitespace into program and arguments.
// No quoting is supported.
func ParseCommand(line string) Command {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}
	}
	return Command{Name: fields[0], Args: fields[1:]}
}

// In returns a copy of c that runs in dir.
func (c Command) In(dir string) Command {
	c.Dir = dir
	return c
}

func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// CommandError reports an external command that could not be started or exited non-zero.
type CommandError struct {
	Command string
	Dir     string
	Err     error
}

func (e *CommandError) Error() string {
	if e.Dir != "" {
		return fmt.Sprintf("failed to run command %q in %s: %v", e.Command, e.Dir, e.Err)
	}
	return fmt.Sprintf("failed to run command %q: %v", e.Command, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// Runner executes commands one at a time, blocking until each exits.
type Runner interface {
	Run(ctx context.Context, c Command) error
}

// ExecRunner runs commands as child processes attached to the given streams.
type ExecRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecRunner returns a runner wired to the process's own stdio so that
// sudo, makepkg and installer scripts can talk to the user.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

func (r *ExecRunner) Run(ctx context.Context, c Command) error {
	if c.Name == "" {
		return &CommandError{Command: c.String(), Dir: c.Dir, Err: errors.New("empty command")}
	}

	logger.Command("$ %s\n", c)
	if c.Dir != "" {
		logger.Debug("[DEBUG] Working directory: %s\n", c.Dir)
	}

	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Dir = c.Dir
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	if err := cmd.Run(); err != nil {
		return &CommandError{Command: c.String(), Dir: c.Dir, Err: err}
	}
	return nil
}

// DryRunner prints commands instead of running them.
type DryRunner struct{}

func (DryRunner) Run(_ context.Context, c Command) error {
	if c.Dir != "" {
		logger.Command("$ (cd %s) %s\n", c.Dir, c)
		return nil
	}
	logger.Command("$ %s\n", c)
	return nil
}
