package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/pomo/internal/session"
	"github.com/sadopc/pomo/internal/stats"
	"github.com/sadopc/pomo/internal/store"
)

type statsModel struct {
	store  *store.Store
	width  int
	height int

	records []session.Record
	cfg     store.Config

	chart   barchart.Model
	goalBar progress.Model
}

func newStatsModel(s *store.Store) statsModel {
	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = 40
	return statsModel{
		store:   s,
		cfg:     s.Config(),
		chart:   barchart.New(60, 10),
		goalBar: bar,
	}
}

func (m *statsModel) setSize(w, h int) {
	m.width = w
	m.height = h
	m.goalBar.Width = min(w-20, 50)
	m.buildChart()
}

func (m statsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		records, err := m.store.Records()
		if err != nil {
			return statusMsg{text: fmt.Sprintf("could not read session log: %v", err), isError: true}
		}
		return recordsMsg{records: records}
	}
}

func (m statsModel) update(msg tea.Msg) (statsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case recordsMsg:
		m.records = msg.records
		m.buildChart()
		return m, nil
	case configSavedMsg:
		m.cfg = msg.cfg
		return m, nil
	}
	return m, nil
}

// buildChart renders one bar of work hours per day since Monday.
func (m *statsModel) buildChart() {
	chartWidth := m.width - 8
	if chartWidth < 20 {
		chartWidth = 20
	}
	chartHeight := 10
	if m.height > 34 {
		chartHeight = 14
	}

	m.chart = barchart.New(chartWidth, chartHeight)

	now := time.Now()
	week := stats.Week(m.records, now)
	byDate := make(map[string]stats.DayBucket, len(week))
	for _, d := range week {
		byDate[d.Date.Format("2006-01-02")] = d
	}

	start := mondayOf(now)
	var bars []barchart.BarData
	for i := 0; i < 7; i++ {
		day := start.AddDate(0, 0, i)
		label := day.Format("Mon")

		value := barchart.BarValue{Name: "", Value: 0, Style: mutedStyle}
		if d, ok := byDate[day.Format("2006-01-02")]; ok {
			value = barchart.BarValue{
				Name:  label,
				Value: d.Hours(),
				Style: lipgloss.NewStyle().Foreground(colorPrimary),
			}
		}

		bars = append(bars, barchart.BarData{
			Label:  label,
			Values: []barchart.BarValue{value},
		})
	}

	m.chart.PushAll(bars)
	m.chart.Draw()
}

func (m statsModel) view() string {
	w := m.width - 4

	now := time.Now()
	today := stats.Today(m.records, now)
	total := stats.Total(m.records)

	header := titleStyle.Render("Statistics")

	summary := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderBucket("Today", today),
		"   ",
		m.renderBucket("All time", total),
	)

	goal := m.renderGoal(today)

	chartTitle := mutedStyle.Render("This week")
	chartView := m.chart.View()

	taskTable := m.renderTaskTable(w)

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header, "", summary, "", goal, "", chartTitle, chartView, "", taskTable,
		),
	)
}

func (m statsModel) renderBucket(label string, b stats.Bucket) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		mutedStyle.Render(label),
		highlightStyle.Bold(true).Render(formatHours(b.Seconds))+
			mutedStyle.Render(fmt.Sprintf("  (%d sessions)", b.Sessions)),
	)
}

func (m statsModel) renderGoal(today stats.Bucket) string {
	goal := m.cfg.DailyGoal
	pct := stats.GoalProgress(today, goal)

	label := fmt.Sprintf("Daily goal  %s / %.0fh", formatHours(today.Seconds), goal)
	if pct >= 1 {
		label += successStyle.Render("  ✓ reached")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		mutedStyle.Render(label),
		m.goalBar.ViewAs(pct),
	)
}

func (m statsModel) renderTaskTable(w int) string {
	tasks := stats.ByTask(m.records)
	if len(tasks) == 0 {
		return mutedStyle.Render("  No task-tagged sessions yet")
	}

	var rows []string
	rows = append(rows, mutedStyle.Render(fmt.Sprintf("  %-30s %8s %10s", "Task", "Hours", "Sessions")))
	rows = append(rows, mutedStyle.Render("  "+strings.Repeat("─", min(w-6, 50))))

	limit := min(len(tasks), 8)
	for _, t := range tasks[:limit] {
		name := t.Task
		if len(name) > 30 {
			name = name[:27] + "..."
		}
		rows = append(rows, fmt.Sprintf("  %-30s %8.1f %10d", name, t.Hours(), t.Sessions))
	}

	return strings.Join(rows, "\n")
}

// mondayOf returns midnight of the most recent Monday in local time.
func mondayOf(now time.Time) time.Time {
	y, mo, d := now.Date()
	day := time.Date(y, mo, d, 0, 0, 0, 0, now.Location())
	weekday := day.Weekday()
	if weekday == time.Sunday {
		weekday = 7
	}
	return day.AddDate(0, 0, -int(weekday-time.Monday))
}
