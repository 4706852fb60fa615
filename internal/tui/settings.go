package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/pomo/internal/store"
)

type settingsModel struct {
	store  *store.Store
	width  int
	height int

	cfg        store.Config
	formActive bool
	form       *huh.Form

	// Form values as pointers (survive value copies)
	workTime     *string
	breakTime    *string
	longBreak    *string
	sessions     *string
	dailyGoal    *string
	autoContinue *bool
	soundEnabled *bool
	musicEnabled *bool
}

func newSettingsModel(s *store.Store) settingsModel {
	wt, bt, lb, se, dg := "", "", "", "", ""
	ac, snd, mus := false, false, false
	return settingsModel{
		store:        s,
		cfg:          s.Config(),
		workTime:     &wt,
		breakTime:    &bt,
		longBreak:    &lb,
		sessions:     &se,
		dailyGoal:    &dg,
		autoContinue: &ac,
		soundEnabled: &snd,
		musicEnabled: &mus,
	}
}

func (s *settingsModel) setSize(w, h int) {
	s.width = w
	s.height = h
}

func (s settingsModel) update(msg tea.Msg) (settingsModel, tea.Cmd) {
	if s.formActive && s.form != nil {
		return s.updateForm(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, keys.Enter), key.Matches(msg, keys.New):
			return s.showForm()
		}
	}
	return s, nil
}

func (s settingsModel) showForm() (settingsModel, tea.Cmd) {
	s.cfg = s.store.Config()
	*s.workTime = strconv.Itoa(s.cfg.WorkTime)
	*s.breakTime = strconv.Itoa(s.cfg.BreakTime)
	*s.longBreak = strconv.Itoa(s.cfg.LongBreak)
	*s.sessions = strconv.Itoa(s.cfg.SessionsUntilLong)
	*s.dailyGoal = strconv.FormatFloat(s.cfg.DailyGoal, 'f', -1, 64)
	*s.autoContinue = s.cfg.AutoContinue
	*s.soundEnabled = s.cfg.SoundEnabled
	*s.musicEnabled = s.cfg.MusicEnabled

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Work session (min)").Value(s.workTime).Validate(validateMinutes),
			huh.NewInput().Title("Short break (min)").Value(s.breakTime).Validate(validateMinutes),
			huh.NewInput().Title("Long break (min)").Value(s.longBreak).Validate(validateMinutes),
			huh.NewInput().Title("Sessions before long break").Value(s.sessions).Validate(validateCount),
		).Title("Timer"),
		huh.NewGroup(
			huh.NewInput().Title("Daily goal (hours)").Value(s.dailyGoal).Validate(validateHours),
			huh.NewConfirm().Title("Auto-continue phases").Value(s.autoContinue),
			huh.NewConfirm().Title("Notification sounds").Value(s.soundEnabled),
			huh.NewConfirm().Title("Background music").Value(s.musicEnabled),
		).Title("General"),
	).WithShowHelp(true).WithShowErrors(true)

	s.formActive = true
	return s, s.form.Init()
}

func (s settingsModel) updateForm(msg tea.Msg) (settingsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			s.formActive = false
			s.form = nil
			return s, nil
		}
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if s.form.State == huh.StateCompleted {
		s.formActive = false
		return s.saveSettings()
	}

	return s, cmd
}

func (s settingsModel) saveSettings() (settingsModel, tea.Cmd) {
	cfg := s.cfg
	cfg.WorkTime = atoiOr(*s.workTime, cfg.WorkTime)
	cfg.BreakTime = atoiOr(*s.breakTime, cfg.BreakTime)
	cfg.LongBreak = atoiOr(*s.longBreak, cfg.LongBreak)
	cfg.SessionsUntilLong = atoiOr(*s.sessions, cfg.SessionsUntilLong)
	if g, err := strconv.ParseFloat(*s.dailyGoal, 64); err == nil {
		cfg.DailyGoal = g
	}
	cfg.AutoContinue = *s.autoContinue
	cfg.SoundEnabled = *s.soundEnabled
	cfg.MusicEnabled = *s.musicEnabled

	if err := s.store.SaveConfig(cfg); err != nil {
		return s, func() tea.Msg {
			return statusMsg{text: fmt.Sprintf("could not save settings: %v", err), isError: true}
		}
	}
	s.cfg = s.store.Config()

	cfgCopy := s.cfg
	return s, tea.Batch(
		func() tea.Msg { return configSavedMsg{cfg: cfgCopy} },
		func() tea.Msg { return statusMsg{text: "Settings saved"} },
	)
}

func (s settingsModel) view() string {
	w := s.width - 4

	title := titleStyle.Render("Settings")

	if s.formActive && s.form != nil {
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", s.form.View()),
		)
	}

	rows := []string{
		title,
		"",
		s.renderRow("Work session", fmt.Sprintf("%d min", s.cfg.WorkTime)),
		s.renderRow("Short break", fmt.Sprintf("%d min", s.cfg.BreakTime)),
		s.renderRow("Long break", fmt.Sprintf("%d min", s.cfg.LongBreak)),
		s.renderRow("Sessions before long break", strconv.Itoa(s.cfg.SessionsUntilLong)),
		s.renderRow("Daily goal", fmt.Sprintf("%.1f hours", s.cfg.DailyGoal)),
		s.renderRow("Auto-continue", onOff(s.cfg.AutoContinue)),
		s.renderRow("Notification sounds", onOff(s.cfg.SoundEnabled)),
		s.renderRow("Background music", onOff(s.cfg.MusicEnabled)),
		"",
		mutedStyle.Render("Press enter to edit settings"),
	}

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (s settingsModel) renderRow(label, value string) string {
	return fmt.Sprintf("  %s %s",
		lipgloss.NewStyle().Width(28).Render(label),
		highlightStyle.Render(value),
	)
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func atoiOr(s string, fallback int) int {
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return fallback
}

func validateMinutes(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return fmt.Errorf("enter a non-negative number of minutes")
	}
	return nil
}

func validateCount(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return fmt.Errorf("enter a number of at least 1")
	}
	return nil
}

func validateHours(s string) error {
	h, err := strconv.ParseFloat(s, 64)
	if err != nil || h < 0 {
		return fmt.Errorf("enter a non-negative number of hours")
	}
	return nil
}
