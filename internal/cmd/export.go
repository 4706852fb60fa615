package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sadopc/pomo/internal/export"
)

// ExportCmd writes the session log to a CSV or JSON file.
type ExportCmd struct {
	Format string `help:"Output format: csv or json" enum:"csv,json" default:"csv"`
	Output string `help:"Output path (defaults to pomo-export-<date>.<format> in the home directory)" short:"o" type:"path"`
}

func (e *ExportCmd) Run(cli *CLI) error {
	st, err := openStore()
	if err != nil {
		return fmt.Errorf("open data directory: %w", err)
	}

	records, err := st.Records()
	if err != nil {
		return fmt.Errorf("read session log: %w", err)
	}

	path := e.Output
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home directory: %w", err)
		}
		path = filepath.Join(home, fmt.Sprintf("pomo-export-%s.%s", time.Now().Format("2006-01-02"), e.Format))
	}

	if e.Format == "json" {
		err = export.ToJSON(records, path)
	} else {
		err = export.ToCSV(records, path)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Exported %d sessions to %s\n", len(records), path)
	return nil
}
