package installer

import (
	"slices"

	"arch-setup/internal/config"
)

// Packages holds the user's selection for each catalog category, in catalog order.
type Packages struct {
	Software            []string
	Service             []string
	Font                []string
	ProgrammingLanguage []string
	Utility             []string
}

// InCategory returns the selection for a single category.
func (p Packages) InCategory(category config.Category) []string {
	switch category {
	case config.CategorySoftware:
		return p.Software
	case config.CategoryService:
		return p.Service
	case config.CategoryFont:
		return p.Font
	case config.CategoryProgrammingLanguage:
		return p.ProgrammingLanguage
	case config.CategoryUtility:
		return p.Utility
	}
	return nil
}

func (p *Packages) set(category config.Category, selected []string) {
	switch category {
	case config.CategorySoftware:
		p.Software = selected
	case config.CategoryService:
		p.Service = selected
	case config.CategoryFont:
		p.Font = selected
	case config.CategoryProgrammingLanguage:
		p.ProgrammingLanguage = selected
	case config.CategoryUtility:
		p.Utility = selected
	}
}

// All returns every selected package, categories in install order.
func (p Packages) All() []string {
	var all []string
	for _, category := range config.Categories {
		all = append(all, p.InCategory(category)...)
	}
	return all
}

// Installed reports whether pkg was selected in any category.
func (p Packages) Installed(pkg string) bool {
	return slices.Contains(p.All(), pkg)
}

// Settings are the yes/no answers controlling optional steps.
type Settings struct {
	InstallAURHelper bool // keep the bootstrapped AUR helper (install_paru)
	InstallBedrock   bool
	InstallKDETheme  bool
	InstallOMF       bool
	ChangeShell      bool
	EnableServices   bool
	SetGitConfig     bool
}

// Installer is the record built by Gather and consumed by Executor.Finish.
type Installer struct {
	Packages Packages
	Settings Settings
}
