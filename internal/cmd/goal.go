package cmd

import (
	"fmt"
	"time"

	"github.com/sadopc/pomo/internal/stats"
)

// GoalCmd checks or sets the daily work-hours goal.
type GoalCmd struct {
	Check GoalCheckCmd `cmd:"" help:"Compare today's work against the goal (default)" default:"1"`
	Set   GoalSetCmd   `cmd:"" help:"Set the daily goal in hours"`
}

type GoalCheckCmd struct{}

func (g *GoalCheckCmd) Run(cli *CLI) error {
	st, err := openStore()
	if err != nil {
		return fmt.Errorf("open data directory: %w", err)
	}

	records, err := st.Records()
	if err != nil {
		return fmt.Errorf("read session log: %w", err)
	}

	today := stats.Today(records, time.Now())
	goal := st.Config().DailyGoal

	pct := 0.0
	if goal > 0 {
		pct = today.Hours() / goal * 100
	}
	fmt.Printf("Today: %.1fh / %vh (%.1f%%)\n", today.Hours(), goal, pct)
	if today.Hours() >= goal {
		fmt.Println("Goal achieved!")
	} else {
		fmt.Printf("Remaining: %.1fh\n", goal-today.Hours())
	}
	return nil
}

type GoalSetCmd struct {
	Hours float64 `arg:"" help:"Daily goal in hours"`
}

func (g *GoalSetCmd) Run(cli *CLI) error {
	if g.Hours < 0 {
		return fmt.Errorf("daily goal must be non-negative")
	}

	st, err := openStore()
	if err != nil {
		return fmt.Errorf("open data directory: %w", err)
	}

	cfg := st.Config()
	cfg.DailyGoal = g.Hours
	if err := st.SaveConfig(cfg); err != nil {
		return err
	}
	fmt.Printf("Daily goal set to %vh\n", g.Hours)
	return nil
}
