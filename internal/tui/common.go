package tui

import (
	"fmt"
	"time"

	"github.com/sadopc/pomo/internal/session"
	"github.com/sadopc/pomo/internal/store"
)

// viewState represents the currently active view.
type viewState int

const (
	viewTimer viewState = iota
	viewTasks
	viewStats
	viewSettings
)

var viewNames = []string{"Timer", "Tasks", "Stats", "Settings"}

// --- Messages ---

type tickMsg time.Time

type statusMsg struct {
	text    string
	isError bool
}

// recordsMsg delivers the session log to the stats view.
type recordsMsg struct {
	records []session.Record
}

// tasksMsg delivers the task list to the tasks view.
type tasksMsg struct {
	tasks []store.Task
}

// taskChosenMsg sets the active task label for the next timer run.
type taskChosenMsg struct {
	title string
}

// configSavedMsg tells the timer view to pick up new settings.
type configSavedMsg struct {
	cfg store.Config
}

// exportDoneMsg reports where the session log was written.
type exportDoneMsg struct {
	path string
}

// --- Helpers ---

func formatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", m, s)
}

func formatHours(secs int64) string {
	h := float64(secs) / 3600
	return fmt.Sprintf("%.1fh", h)
}
