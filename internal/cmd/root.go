// Package cmd defines the pomo command surface. Each subcommand is a
// kong struct with a Run method; shared state (store, logging) is wired
// up from the root CLI.
package cmd

import (
	"github.com/alecthomas/kong"

	"github.com/sadopc/pomo/internal/logging"
	"github.com/sadopc/pomo/internal/store"
)

// CLI is the root command-line interface structure.
type CLI struct {
	Version   kong.VersionFlag `help:"Show version information"`
	Debug     bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile string           `help:"Custom path for debug log file" env:"POMO_DEBUG_FILE"`

	Tui    TuiCmd    `cmd:"" help:"Open the full-screen interface (default)" default:"1"`
	Start  StartCmd  `cmd:"" help:"Run a pomodoro timer in the terminal"`
	Stats  StatsCmd  `cmd:"" help:"Show work statistics"`
	Goal   GoalCmd   `cmd:"" help:"Check or set the daily goal"`
	Preset PresetCmd `cmd:"" help:"Manage timer presets"`
	Task   TaskCmd   `cmd:"" help:"Manage the task list"`
	Export ExportCmd `cmd:"" help:"Export the session log"`
}

// AfterApply initializes logging once arguments are parsed.
func (c *CLI) AfterApply() error {
	return logging.Initialize(c.Debug, c.DebugFile)
}

// openStore opens the store at the default data directory.
func openStore() (*store.Store, error) {
	return store.Open()
}
