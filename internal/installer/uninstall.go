package installer

import (
	"context"
	"fmt"
	"slices"

	"arch-setup/internal/logger"
)

// removeUnwanted uninstalls what Bootstrap put on the system but the user did
// not ask to keep. rustup goes first because its removal still needs the helper.
func (e *Executor) removeUnwanted(ctx context.Context, inst Installer) error {
	if !slices.Contains(inst.Packages.ProgrammingLanguage, "rustup") {
		logger.Info("[INFO] rustup was not selected, removing it\n")
		if err := e.run(ctx, fmt.Sprintf("%s -Rns rustup", e.helper())); err != nil {
			return err
		}
	}

	if !inst.Settings.InstallAURHelper {
		logger.Info("[INFO] Removing %s as requested\n", e.helper())
		if err := e.run(ctx, fmt.Sprintf("%s -Rns %s", e.helper(), e.helper())); err != nil {
			return err
		}
	}
	return nil
}
