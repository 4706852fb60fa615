package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/pomo/internal/logging"
	"github.com/sadopc/pomo/internal/session"
	"github.com/sadopc/pomo/internal/sound"
	"github.com/sadopc/pomo/internal/store"
)

// timerModel drives the session machine from the TUI. The machine is
// nil while no run is active.
type timerModel struct {
	store  *store.Store
	player sound.Player
	width  int
	height int

	cfg     store.Config
	machine *session.Machine
	task    string
}

func newTimerModel(s *store.Store, player sound.Player) timerModel {
	return timerModel{
		store:  s,
		player: player,
		cfg:    s.Config(),
	}
}

func (t *timerModel) setSize(w, h int) {
	t.width = w
	t.height = h
}

func (t timerModel) running() bool {
	if t.machine == nil {
		return false
	}
	switch t.machine.State() {
	case session.StateRunning, session.StatePaused, session.StateAwaitingProceed:
		return true
	}
	return false
}

func (t timerModel) update(msg tea.Msg) (timerModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if t.machine == nil {
			return t, nil
		}
		if c := t.machine.Tick(); c != nil {
			return t, t.handleCompletion(c)
		}
		return t, nil

	case taskChosenMsg:
		t.task = msg.title
		return t, nil

	case configSavedMsg:
		t.cfg = msg.cfg
		return t, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Start):
			if !t.running() {
				return t.startRun()
			}
		case key.Matches(msg, keys.Stop):
			if t.running() {
				return t.stopRun()
			}
		case key.Matches(msg, keys.Pause):
			if t.machine != nil {
				t.machine.TogglePause()
			}
			return t, nil
		case key.Matches(msg, keys.Skip):
			if t.machine != nil {
				if c := t.machine.Skip(); c != nil {
					return t, func() tea.Msg {
						return statusMsg{text: fmt.Sprintf("%s skipped", c.Phase)}
					}
				}
			}
			return t, nil
		case key.Matches(msg, keys.Enter):
			if t.machine != nil {
				t.machine.Proceed()
			}
			return t, nil
		}
	}
	return t, nil
}

func (t timerModel) startRun() (timerModel, tea.Cmd) {
	t.cfg = t.store.Config() // pick up saved settings
	t.machine = session.New(t.cfg.MachineConfig(), session.WithTask(t.task, nil))
	t.machine.Start()
	t.player.PlayEffect(sound.EffectStart)
	if t.cfg.MusicEnabled {
		t.player.StartMusic()
	}
	return t, func() tea.Msg {
		return statusMsg{text: "Timer started"}
	}
}

func (t timerModel) stopRun() (timerModel, tea.Cmd) {
	t.machine.Stop()
	t.machine = nil
	t.player.StopMusic()
	return t, func() tea.Msg {
		return statusMsg{text: "Timer stopped"}
	}
}

// handleCompletion persists the record and plays the notification,
// exactly once per completed phase.
func (t timerModel) handleCompletion(c *session.Completion) tea.Cmd {
	if c.Record != nil {
		if err := t.store.AppendRecord(*c.Record); err != nil {
			logging.Logger.Error("append session record", "error", err)
			return func() tea.Msg {
				return statusMsg{text: fmt.Sprintf("could not log session: %v", err), isError: true}
			}
		}
	}
	if c.Phase == session.PhaseWork {
		t.player.PlayEffect(sound.EffectWorkDone)
	} else {
		t.player.PlayEffect(sound.EffectBreakDone)
	}
	text := fmt.Sprintf("%s complete", c.Phase)
	if c.Awaiting {
		text += fmt.Sprintf(" — press enter to start %s", c.Next)
	}
	return func() tea.Msg {
		return statusMsg{text: text}
	}
}

func (t timerModel) view() string {
	w := t.width - 4

	title := titleStyle.Render("Pomodoro Timer")

	var timeDisplay, phaseLabel, indicator string
	switch {
	case t.machine == nil:
		timeDisplay = timerClockStyle(mutedStyle, w).Render(formatClock(time.Duration(t.cfg.WorkTime) * time.Minute))
		phaseLabel = mutedStyle.Render("Ready to start")
		indicator = mutedStyle.Render("Press s to begin")

	case t.machine.State() == session.StateAwaitingProceed:
		next := t.machine.NextPhase()
		timeDisplay = timerClockStyle(warningStyle, w).Render(formatClock(t.machine.PhaseDuration(next)))
		phaseLabel = warningStyle.Bold(true).Render(fmt.Sprintf("NEXT: %s", strings.ToUpper(next.String())))
		indicator = mutedStyle.Render("Press enter to continue")

	case t.machine.State() == session.StatePaused:
		timeDisplay = timerClockStyle(warningStyle, w).Render(formatClock(t.machine.Remaining()))
		phaseLabel = warningStyle.Bold(true).Render("PAUSED")
		indicator = t.renderCycle()

	default:
		style := accentStyle
		if t.machine.Phase() != session.PhaseWork {
			style = successStyle
		}
		timeDisplay = timerClockStyle(style, w).Render(formatClock(t.machine.Remaining()))
		phaseLabel = style.Bold(true).Render(strings.ToUpper(t.machine.Phase().String()))
		indicator = t.renderCycle()
	}

	taskLine := ""
	if t.task != "" {
		taskLine = mutedStyle.Render("Task: " + t.task)
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		title,
		"",
		timeDisplay,
		phaseLabel,
		taskLine,
		"",
		indicator,
	)

	var controls string
	if t.running() {
		controls = mutedStyle.Render("space: pause  n: skip  x: stop")
	} else {
		controls = mutedStyle.Render("s: start  2: tasks  4: settings")
	}

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Center, content, "", controls),
	)
}

func timerClockStyle(base lipgloss.Style, w int) lipgloss.Style {
	return base.Bold(true).Width(w - 6).Align(lipgloss.Center)
}

// renderCycle shows work sessions completed toward the long break.
func (t timerModel) renderCycle() string {
	cfg := t.machine.Config()
	done := t.machine.CompletedInCycle()
	var parts []string
	for i := 0; i < cfg.SessionsPerCycle; i++ {
		switch {
		case i < done:
			parts = append(parts, successStyle.Render("●"))
		case i == done && t.machine.Phase() == session.PhaseWork:
			parts = append(parts, accentStyle.Render("◐"))
		default:
			parts = append(parts, mutedStyle.Render("○"))
		}
	}
	progress := strings.Join(parts, " ")
	counter := mutedStyle.Render(fmt.Sprintf("  %d/%d", done, cfg.SessionsPerCycle))
	return progress + counter
}
