package installer

import (
	"fmt"
	"slices"

	"arch-setup/internal/config"
	"arch-setup/internal/logger"
	"arch-setup/internal/prompt"
)

var categoryQuestions = map[config.Category]string{
	config.CategorySoftware:            "Which software packages do you want to install?",
	config.CategoryService:             "Which services do you want to install?",
	config.CategoryFont:                "Which fonts do you want to install?",
	config.CategoryProgrammingLanguage: "Which programming languages do you want to install?",
	config.CategoryUtility:             "Which utilities do you want to install?",
}

// Gather asks every catalog and settings question and assembles the Installer
// record. Only a failed multi-select aborts; confirmations degrade to false.
func Gather(p prompt.Prompter, cfg config.Config) (Installer, error) {
	var inst Installer

	for _, category := range config.Categories {
		items := cfg.Catalog.Items(category)
		chosen, err := p.SelectMany(categoryQuestions[category], items)
		if err != nil {
			return Installer{}, fmt.Errorf("failed to select %s packages: %w", category, err)
		}
		inst.Packages.set(category, subset(items, chosen))
	}

	// Every question defaults to yes.
	s := &inst.Settings
	s.InstallAURHelper = p.Confirm(fmt.Sprintf("Install %s?", cfg.AURHelper.Name), true)
	s.InstallBedrock = p.Confirm("Install Bedrock Linux?", true)
	s.InstallKDETheme = p.Confirm("Install KDE theme?", true)
	s.InstallOMF = p.Confirm("Install Oh My Fish?", true)
	s.ChangeShell = p.Confirm("Change shell to fish?", true)
	s.EnableServices = p.Confirm("Enable installed services?", true)
	s.SetGitConfig = p.Confirm("Set git username and email?", true)

	logger.Debug("[DEBUG] Gathered selection: %+v\n", inst)
	return inst, nil
}

// subset keeps the catalog entries that were chosen, in catalog order. Anything
// chosen that is not in the catalog is dropped.
func subset(items, chosen []string) []string {
	result := []string{}
	for _, item := range items {
		if slices.Contains(chosen, item) && !slices.Contains(result, item) {
			result = append(result, item)
		}
	}
	for _, c := range chosen {
		if !slices.Contains(items, c) {
			logger.Warn("[WARN] Ignoring %q: not in the catalog\n", c)
		}
	}
	return result
}
