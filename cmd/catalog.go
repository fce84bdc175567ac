package cmd

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"arch-setup/internal/config"
	"github.com/spf13/cobra"
)

// catalogCmd prints the selectable packages and how services map to units.
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Show the package catalog and service table",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		printCatalog(cmd.OutOrStdout(), cfg)
		return nil
	},
}

func printCatalog(w io.Writer, cfg config.Config) {
	for _, category := range config.Categories {
		fmt.Fprintf(w, "%s:\n", category)
		for _, item := range cfg.Catalog.Items(category) {
			fmt.Fprintf(w, "  %s\n", item)
		}
	}

	fmt.Fprintln(w, "\nservice units:")
	for _, pkg := range cfg.Catalog.Service {
		unit, ok := cfg.Services.Unit(pkg)
		if !ok {
			unit = "(none)"
		}
		fmt.Fprintf(w, "  %-32s %s\n", pkg, unit)
	}

	// table entries that are not in the catalog still apply to a custom config
	var extra []string
	for pkg := range cfg.Services {
		if !slices.Contains(cfg.Catalog.Service, pkg) {
			extra = append(extra, pkg)
		}
	}
	if len(extra) > 0 {
		slices.Sort(extra)
		fmt.Fprintf(w, "\nunused service table entries: %s\n", strings.Join(extra, ", "))
	}
}
