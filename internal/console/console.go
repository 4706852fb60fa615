// Package console is the inline terminal front end: a single countdown
// line driven by the session machine, without taking over the screen.
package console

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

type keyMap struct {
	Pause   key.Binding
	Skip    key.Binding
	Proceed key.Binding
	Quit    key.Binding
}

var keys = keyMap{
	Pause: key.NewBinding(
		key.WithKeys(" ", "p"),
		key.WithHelp("space", "pause/resume"),
	),
	Skip: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "skip phase"),
	),
	Proceed: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "start next phase"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c", "esc"),
		key.WithHelp("q", "stop"),
	),
}

var (
	workStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF6B6B"))
	breakStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2ECC71"))
	pausedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F39C12"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
)

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Model runs one timer run in the terminal.
type Model struct {
	machine *session.Machine
	store   *store.Store
	player  sound.Player

	status   string
	quitting bool
}

func New(machine *session.Machine, st *store.Store, player sound.Player) Model {
	return Model{machine: machine, store: st, player: player}
}

// Run drives a full timer run and blocks until the user stops it.
func Run(machine *session.Machine, st *store.Store, player sound.Player) error {
	p := tea.NewProgram(New(machine, st, player))
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	m.machine.Start()
	m.player.PlayEffect(sound.EffectStart)
	m.player.StartMusic()
	return tickCmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if c := m.machine.Tick(); c != nil {
			m.handleCompletion(c)
		}
		return m, tickCmd()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m.stop()
		case key.Matches(msg, keys.Pause):
			m.machine.TogglePause()
			return m, nil
		case key.Matches(msg, keys.Skip):
			if c := m.machine.Skip(); c != nil {
				m.status = fmt.Sprintf("%s skipped", c.Phase)
			}
			return m, nil
		case key.Matches(msg, keys.Proceed):
			m.machine.Proceed()
			return m, nil
		}
	}
	return m, nil
}

// handleCompletion persists the record and notifies, exactly once per
// completed phase.
func (m *Model) handleCompletion(c *session.Completion) {
	if c.Record != nil {
		if err := m.store.AppendRecord(*c.Record); err != nil {
			logging.Logger.Error("append session record", "error", err)
			m.status = fmt.Sprintf("could not log session: %v", err)
		}
	}
	if c.Phase == session.PhaseWork {
		m.player.PlayEffect(sound.EffectWorkDone)
	} else {
		m.player.PlayEffect(sound.EffectBreakDone)
	}
	m.status = fmt.Sprintf("%s complete", c.Phase)
}

func (m Model) stop() (tea.Model, tea.Cmd) {
	m.machine.Stop()
	m.player.StopMusic()
	m.quitting = true
	return m, tea.Quit
}

func (m Model) View() string {
	if m.quitting {
		return "Pomodoro stopped\n"
	}

	var b strings.Builder
	b.WriteString(m.headerLine())
	b.WriteString("\n")
	b.WriteString(m.timerLine())
	b.WriteString("\n")
	b.WriteString(m.helpLine())
	b.WriteString("\n")
	return b.String()
}

func (m Model) headerLine() string {
	cfg := m.machine.Config()
	parts := []string{
		fmt.Sprintf("Work: %dm | Break: %dm | Long break: %dm", cfg.WorkMinutes, cfg.BreakMinutes, cfg.LongBreakMinutes),
	}
	if task := m.machine.Task(); task != "" {
		parts = append(parts, "Task: "+task)
	}
	if tags := m.machine.Tags(); len(tags) > 0 {
		parts = append(parts, "Tags: "+strings.Join(tags, ", "))
	}
	return mutedStyle.Render(strings.Join(parts, "  "))
}

func (m Model) timerLine() string {
	switch m.machine.State() {
	case session.StateAwaitingProceed:
		next := m.machine.NextPhase()
		d := m.machine.PhaseDuration(next)
		label := fmt.Sprintf("%s  Press enter to start %s (%s)", m.status, next, formatClock(d))
		return pausedStyle.Render(label)

	case session.StatePaused:
		return pausedStyle.Render(fmt.Sprintf("%s  %s  ⏸ paused", m.phaseLabel(), formatClock(m.machine.Remaining())))

	default:
		return fmt.Sprintf("%s  %s  %s", m.phaseLabel(), formatClock(m.machine.Remaining()), m.cycleDots())
	}
}

func (m Model) phaseLabel() string {
	phase := m.machine.Phase()
	label := phase.String()
	if phase == session.PhaseWork {
		label = fmt.Sprintf("Work Session %d", m.machine.CompletedInCycle()+1)
		return workStyle.Render(label)
	}
	return breakStyle.Render(label)
}

// cycleDots renders progress toward the next long break.
func (m Model) cycleDots() string {
	cfg := m.machine.Config()
	done := m.machine.CompletedInCycle()
	var dots []string
	for i := 0; i < cfg.SessionsPerCycle; i++ {
		if i < done {
			dots = append(dots, "●")
		} else {
			dots = append(dots, "○")
		}
	}
	return mutedStyle.Render(strings.Join(dots, " "))
}

func (m Model) helpLine() string {
	if m.machine.State() == session.StateAwaitingProceed {
		return mutedStyle.Render("enter: continue  q: stop")
	}
	return mutedStyle.Render("space: pause/resume  s: skip  q: stop")
}

func formatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	mins := int(d.Minutes())
	secs := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", mins, secs)
}
