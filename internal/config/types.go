package config

// Category names one of the five fixed catalog sections.
type Category string

const (
	CategorySoftware            Category = "software"
	CategoryService             Category = "service"
	CategoryFont                Category = "font"
	CategoryProgrammingLanguage Category = "programming_language"
	CategoryUtility             Category = "utility"
)

// Categories lists every catalog section in the order it is prompted and installed.
var Categories = []Category{
	CategorySoftware,
	CategoryService,
	CategoryFont,
	CategoryProgrammingLanguage,
	CategoryUtility,
}

// Catalog holds the selectable package names, one ordered list per category.
// Duplicates are allowed but never useful.
type Catalog struct {
	Software            []string `yaml:"software"`
	Service             []string `yaml:"service"`
	Font                []string `yaml:"font"`
	ProgrammingLanguage []string `yaml:"programming_language"`
	Utility             []string `yaml:"utility"`
}

// Items returns the entries of a single category, or nil for an unknown one.
func (c Catalog) Items(category Category) []string {
	switch category {
	case CategorySoftware:
		return c.Software
	case CategoryService:
		return c.Service
	case CategoryFont:
		return c.Font
	case CategoryProgrammingLanguage:
		return c.ProgrammingLanguage
	case CategoryUtility:
		return c.Utility
	}
	return nil
}

// ServiceUnit describes how a service package maps onto systemd.
// - Unit: the unit to enable, e.g. "bluetooth.service".
// - None: the package ships no unit and must be skipped.
type ServiceUnit struct {
	Unit string `yaml:"unit,omitempty"`
	None bool   `yaml:"none,omitempty"`
}

// Services is the declarative package → unit table.
type Services map[string]ServiceUnit

// Unit resolves the systemd unit for a package. Packages missing from the table
// use their own name as unit. ok is false when the package has no unit at all.
func (s Services) Unit(pkg string) (unit string, ok bool) {
	entry, found := s[pkg]
	if !found {
		return pkg, true
	}
	if entry.None {
		return "", false
	}
	if entry.Unit == "" {
		return pkg, true
	}
	return entry.Unit, true
}

// AURHelper names the helper bootstrapped from the AUR and used for every install.
type AURHelper struct {
	Name string `yaml:"name"` // binary and package name, e.g. "paru"
	Repo string `yaml:"repo"` // git URL of the -bin PKGBUILD
}

// ScriptAddon is an installer script fetched over HTTP and run once.
type ScriptAddon struct {
	URL         string   `yaml:"url"`
	File        string   `yaml:"file"`        // local file name, defaults to the URL base name
	Interpreter string   `yaml:"interpreter"` // e.g. "fish" or "sh"
	Args        []string `yaml:"args"`
}

// BedrockAddon locates the Bedrock Linux installer on GitHub releases.
// The embedded ScriptAddon URL is the pinned installer used when the release
// lookup fails.
type BedrockAddon struct {
	ScriptAddon `yaml:",inline"`
	APIBase     string `yaml:"api_base"`
	Repo        string `yaml:"repo"`
	Tag         string `yaml:"tag"` // "latest" or a release tag such as "0.7.27"
	AssetSuffix string `yaml:"asset_suffix"`
}

// ArchiveAddon is an archive that is downloaded, unpacked and installed by running
// a script found at its top level.
type ArchiveAddon struct {
	URL    string `yaml:"url"`
	Script string `yaml:"script"`
}

// Addons groups the optional add-ons offered at the end of the run.
type Addons struct {
	OhMyFish ScriptAddon  `yaml:"oh_my_fish"`
	Bedrock  BedrockAddon `yaml:"bedrock"`
	KDETheme ArchiveAddon `yaml:"kde_theme"`
}

// Config is the top-level structure returned by Load.
type Config struct {
	Catalog   Catalog   `yaml:"catalog"`
	Services  Services  `yaml:"services"`
	AURHelper AURHelper `yaml:"aur_helper"`
	Addons    Addons    `yaml:"addons"`
	Shell     string    `yaml:"shell"`
}
