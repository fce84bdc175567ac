package logger

import (
	"github.com/fatih/color" // Colored console output for each log level
)

// Level printers built on fatih/color. Each behaves like fmt.Printf and callers
// prefix their messages with the level tag, e.g. "[INFO] ...".

// Info logs progress messages in green.
var Info = color.New(color.FgGreen).PrintfFunc()

// Warn logs skipped steps and recoverable oddities in bright magenta.
var Warn = color.New(color.FgHiMagenta).PrintfFunc()

// Error logs the fatal diagnostic printed before exit in red.
var Error = color.New(color.FgRed).PrintfFunc()

// Command echoes each external command before it is run, in bold yellow.
var Command = color.New(color.FgYellow, color.Bold).PrintfFunc()

// Debug logs debug messages in cyan once Init(true) has been called, otherwise it is a no-op.
var Debug = func(format string, a ...any) {}

// Init enables or disables debug logging. It is called once from the root
// command's PersistentPreRun with the value of --debug.
func Init(enableDebug bool) {
	if enableDebug {
		Debug = color.New(color.FgCyan).PrintfFunc()
	} else {
		Debug = func(format string, a ...any) {}
	}
}
