package installer

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"

	"arch-setup/internal/config"
	"arch-setup/internal/logger"
	"arch-setup/internal/prompt"
	"github.com/spf13/afero"
)

// Options configures an Executor. Zero values select the real implementations.
type Options struct {
	Runner   Runner
	Prompter prompt.Prompter
	Fs       afero.Fs
	Client   *http.Client
	WorkDir  string // where installer scripts are downloaded, defaults to "."
	DryRun   bool   // print commands, skip downloads and extraction
}

// Executor runs the install script for a gathered Installer record.
type Executor struct {
	cfg      config.Config
	runner   Runner
	prompter prompt.Prompter
	fs       afero.Fs
	client   *http.Client
	workDir  string
	dryRun   bool
}

func NewExecutor(cfg config.Config, opts Options) *Executor {
	e := &Executor{
		cfg:      cfg,
		runner:   opts.Runner,
		prompter: opts.Prompter,
		fs:       opts.Fs,
		client:   opts.Client,
		workDir:  opts.WorkDir,
		dryRun:   opts.DryRun,
	}
	if e.runner == nil {
		if e.dryRun {
			e.runner = DryRunner{}
		} else {
			e.runner = NewExecRunner()
		}
	}
	if e.prompter == nil {
		e.prompter = prompt.NewTerminal()
	}
	if e.fs == nil {
		if e.dryRun {
			e.fs = afero.NewMemMapFs()
		} else {
			e.fs = afero.NewOsFs()
		}
	}
	if e.client == nil {
		// http.Client follows up to 10 redirects by default
		e.client = &http.Client{}
	}
	if e.workDir == "" {
		e.workDir = "."
	}
	return e
}

// run parses a whitespace separated command line and runs it in the work directory.
func (e *Executor) run(ctx context.Context, line string) error {
	return e.runner.Run(ctx, ParseCommand(line).In(e.workDir))
}

func (e *Executor) helper() string {
	return e.cfg.AURHelper.Name
}

// Finish runs the post-selection script. The first failing step aborts the run;
// nothing already done is rolled back.
func (e *Executor) Finish(ctx context.Context, inst Installer) error {
	logger.Info("[INFO] Upgrading the system...\n")
	if err := e.run(ctx, fmt.Sprintf("%s -Syu", e.helper())); err != nil {
		return err
	}

	if err := e.installPackages(ctx, inst.Packages); err != nil {
		return err
	}

	if inst.Settings.SetGitConfig {
		if err := e.setGitIdentity(ctx); err != nil {
			return err
		}
	}

	if err := e.removeUnwanted(ctx, inst); err != nil {
		return err
	}

	if inst.Settings.EnableServices {
		if err := e.enableServices(ctx, inst.Packages.Service); err != nil {
			return err
		}
	}

	if inst.Settings.InstallOMF {
		if err := e.runScriptAddon(ctx, e.cfg.Addons.OhMyFish, e.cfg.Addons.OhMyFish.URL); err != nil {
			return fmt.Errorf("failed to install Oh My Fish: %w", err)
		}
	}

	if inst.Settings.ChangeShell {
		if err := e.run(ctx, "chsh -s "+e.cfg.Shell); err != nil {
			return err
		}
	}

	if inst.Settings.InstallKDETheme {
		if err := e.installKDETheme(ctx); err != nil {
			return fmt.Errorf("failed to install KDE theme: %w", err)
		}
	}

	if inst.Settings.InstallBedrock {
		if err := e.installBedrock(ctx); err != nil {
			return fmt.Errorf("failed to install Bedrock Linux: %w", err)
		}
	}

	if inst.Packages.Installed("tealdeer") {
		if err := e.run(ctx, "tldr --update"); err != nil {
			return err
		}
	}

	logger.Info("[INFO] Setup complete\n")
	return nil
}

// setGitIdentity asks for name and email and writes them to the global git config.
// The values are passed as single arguments so that spaces survive.
func (e *Executor) setGitIdentity(ctx context.Context) error {
	name, err := e.prompter.Input("Git name: ")
	if err != nil {
		return fmt.Errorf("failed to read git name: %w", err)
	}
	email, err := e.prompter.Input("Git email: ")
	if err != nil {
		return fmt.Errorf("failed to read git email: %w", err)
	}

	for _, kv := range [][2]string{{"user.name", name}, {"user.email", email}} {
		c := Command{Name: "git", Args: []string{"config", "--global", kv[0], kv[1]}, Dir: e.workDir}
		if err := e.runner.Run(ctx, c); err != nil {
			return err
		}
	}
	return nil
}

// tempDir creates a scratch directory under the work directory.
func (e *Executor) tempDir(prefix string) (string, error) {
	dir, err := afero.TempDir(e.fs, e.workDir, prefix)
	if err != nil {
		return "", fmt.Errorf("failed to create build directory: %w", err)
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return dir, nil
	}
	return abs, nil
}

func (e *Executor) removeAll(path string) {
	if err := e.fs.RemoveAll(path); err != nil {
		logger.Warn("[WARN] Failed to remove %s: %v\n", path, err)
	}
}
