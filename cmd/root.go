package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"arch-setup/internal/config"
	"arch-setup/internal/installer"
	"arch-setup/internal/logger"
	"arch-setup/internal/prompt"
	"github.com/spf13/cobra"
)

const title = "Post x86_64 Archinstall Setup Program"

var (
	// debug enables cyan [DEBUG] output.
	debug bool
	// configPath replaces the embedded catalog and add-on configuration.
	configPath string
	// dryRun prints the commands instead of running them.
	dryRun bool
)

// rootCmd bootstraps the toolchain and AUR helper, asks the questions and runs
// the install script. It takes no arguments.
var rootCmd = &cobra.Command{
	Use:           "arch-setup",
	Short:         "Interactive post-installation setup for Arch Linux",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,

	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(debug)
	},
	RunE: runSetup,
}

func runSetup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	terminal := prompt.NewTerminal()
	executor := installer.NewExecutor(cfg, installer.Options{
		Prompter: terminal,
		DryRun:   dryRun,
	})

	ctx := cmd.Context()
	if err := executor.Bootstrap(ctx); err != nil {
		return err
	}

	prompt.Banner(cmd.OutOrStdout(), title)

	inst, err := installer.Gather(terminal, cfg)
	if err != nil {
		return err
	}

	return executor.Finish(ctx, inst)
}

// Execute runs the CLI and is the single place where errors end the process.
func Execute() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a configuration file (defaults to the built-in catalog)")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print commands instead of running them")

	rootCmd.AddCommand(catalogCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		logger.Error("[ERROR] %v\n", err)
		os.Exit(1)
	}
}
