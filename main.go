package main

import (
	"arch-setup/cmd"
)

// main delegates to cmd.Execute, which parses flags, runs the setup and turns
// the first error into a diagnostic and a non-zero exit code.
//
// arch-setup prepares a fresh Arch Linux install:
//   - installs rustup and builds the AUR helper (paru) before asking anything
//   - asks which software, services, fonts, languages and utilities to install,
//     choosing from a catalog embedded in the binary (or --config)
//   - asks a handful of yes/no questions (keep the helper, enable services,
//     git identity, fish, Oh My Fish, a KDE theme, Bedrock Linux)
//   - runs the package manager and the other commands one after the other
//
// Any command that cannot be started or exits non-zero stops the run. Nothing
// is rolled back; running the program again is the recovery path.
func main() {
	cmd.Execute()
}
