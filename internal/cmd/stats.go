package cmd

import (
	"fmt"
	"time"

	"github.com/sadopc/pomo/internal/stats"
)

// StatsCmd prints aggregates from the session log.
type StatsCmd struct {
	Period string   `arg:"" optional:"" enum:"today,week,total,tasks" default:"today" help:"Aggregation period: today, week, total or tasks"`
	Task   string   `help:"Only count sessions for this task" short:"t"`
	Tags   []string `help:"Only count sessions carrying any of these tags" sep:","`
}

func (s *StatsCmd) Run(cli *CLI) error {
	st, err := openStore()
	if err != nil {
		return fmt.Errorf("open data directory: %w", err)
	}

	records, err := st.Records()
	if err != nil {
		return fmt.Errorf("read session log: %w", err)
	}
	records = stats.Filter{Task: s.Task, Tags: s.Tags}.Apply(records)
	if len(records) == 0 {
		fmt.Println("No data found")
		return nil
	}

	now := time.Now()
	switch s.Period {
	case "week":
		week := stats.Week(records, now)
		if len(week) == 0 {
			fmt.Println("No data for this week")
			return nil
		}
		fmt.Println("\nThis week:")
		for _, day := range week {
			fmt.Printf("%s: %.1fh (%d sessions)\n", day.Date.Format("2006-01-02"), day.Hours(), day.Sessions)
		}

	case "total":
		b := stats.Total(records)
		fmt.Printf("Total: %.1fh (%d sessions)\n", b.Hours(), b.Sessions)

	case "tasks":
		byTask := stats.ByTask(records)
		if len(byTask) == 0 {
			fmt.Println("No task data found")
			return nil
		}
		fmt.Println("\nBy task:")
		for _, t := range byTask {
			fmt.Printf("%s: %.1fh (%d sessions)\n", t.Task, t.Hours(), t.Sessions)
		}

	default:
		b := stats.Today(records, now)
		fmt.Printf("Today: %.1fh (%d sessions)\n", b.Hours(), b.Sessions)
	}
	return nil
}
