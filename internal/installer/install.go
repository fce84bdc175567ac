package installer

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"arch-setup/internal/config"
	"arch-setup/internal/logger"
)

// Bootstrap installs the Rust toolchain and builds the AUR helper from its -bin
// PKGBUILD. It runs before any question is asked.
func (e *Executor) Bootstrap(ctx context.Context) error {
	logger.Info("[INFO] Installing rustup and the stable toolchain...\n")
	for _, line := range []string{
		"sudo pacman -S rustup --noconfirm",
		"rustup install stable",
		"rustup default stable",
	} {
		if err := e.run(ctx, line); err != nil {
			return err
		}
	}

	helper := e.cfg.AURHelper
	logger.Info("[INFO] Building %s from %s...\n", helper.Name, helper.Repo)

	buildDir, err := e.tempDir(helper.Name + "-build-")
	if err != nil {
		return err
	}

	clone := Command{Name: "git", Args: []string{"clone", helper.Repo}, Dir: buildDir}
	if err := e.runner.Run(ctx, clone); err != nil {
		return err
	}

	checkout := filepath.Join(buildDir, strings.TrimSuffix(path.Base(helper.Repo), ".git"))
	if err := e.runner.Run(ctx, ParseCommand("makepkg -si").In(checkout)); err != nil {
		return err
	}

	e.removeAll(buildDir)
	logger.Debug("[DEBUG] Removed build directory %s\n", buildDir)
	return nil
}

// installPackages installs every selected package with the AUR helper, one
// package per invocation, categories in catalog order.
func (e *Executor) installPackages(ctx context.Context, packages Packages) error {
	for _, category := range config.Categories {
		selected := packages.InCategory(category)
		if len(selected) == 0 {
			logger.Debug("[DEBUG] No %s packages selected\n", category)
			continue
		}

		logger.Info("[INFO] Installing %d %s package(s)\n", len(selected), category)
		for _, pkg := range selected {
			if err := e.run(ctx, fmt.Sprintf("%s -S %s --noconfirm", e.helper(), pkg)); err != nil {
				return err
			}
		}
	}
	return nil
}
