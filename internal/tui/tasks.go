package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/pomo/internal/store"
)

type tasksModel struct {
	store  *store.Store
	width  int
	height int

	tasks  []store.Task
	cursor int

	formActive bool
	form       *huh.Form
	newTitle   *string
}

func newTasksModel(s *store.Store) tasksModel {
	title := ""
	return tasksModel{
		store:    s,
		newTitle: &title,
	}
}

func (t *tasksModel) setSize(w, h int) {
	t.width = w
	t.height = h
}

func (t tasksModel) refresh() tea.Cmd {
	return func() tea.Msg {
		return tasksMsg{tasks: t.store.ListTasks()}
	}
}

func (t tasksModel) update(msg tea.Msg) (tasksModel, tea.Cmd) {
	if t.formActive && t.form != nil {
		return t.updateForm(msg)
	}

	switch msg := msg.(type) {
	case tasksMsg:
		t.tasks = msg.tasks
		if t.cursor >= len(t.tasks) {
			t.cursor = len(t.tasks) - 1
		}
		if t.cursor < 0 {
			t.cursor = 0
		}
		return t, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Up):
			if t.cursor > 0 {
				t.cursor--
			}
		case key.Matches(msg, keys.Down):
			if t.cursor < len(t.tasks)-1 {
				t.cursor++
			}
		case key.Matches(msg, keys.Enter):
			if len(t.tasks) > 0 {
				task := t.tasks[t.cursor]
				if err := t.store.SetTaskCompleted(task.ID, !task.Completed); err != nil {
					return t, func() tea.Msg {
						return statusMsg{text: fmt.Sprintf("Error: %v", err), isError: true}
					}
				}
				return t, t.refresh()
			}
		case key.Matches(msg, keys.Use):
			if len(t.tasks) > 0 {
				title := t.tasks[t.cursor].Title
				return t, tea.Batch(
					func() tea.Msg { return taskChosenMsg{title: title} },
					func() tea.Msg { return statusMsg{text: "Timer will log sessions for: " + title} },
				)
			}
		case key.Matches(msg, keys.New):
			return t.showForm()
		}
	}
	return t, nil
}

func (t tasksModel) showForm() (tasksModel, tea.Cmd) {
	*t.newTitle = ""
	t.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Task title").Value(t.newTitle),
		),
	).WithShowHelp(true).WithShowErrors(true)
	t.formActive = true
	return t, t.form.Init()
}

func (t tasksModel) updateForm(msg tea.Msg) (tasksModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			t.formActive = false
			t.form = nil
			return t, nil
		}
	}

	form, cmd := t.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		t.form = f
	}

	if t.form.State == huh.StateCompleted {
		t.formActive = false
		title := *t.newTitle
		if title != "" {
			if _, err := t.store.AddTask(title); err != nil {
				return t, func() tea.Msg {
					return statusMsg{text: fmt.Sprintf("Error: %v", err), isError: true}
				}
			}
		}
		return t, t.refresh()
	}

	return t, cmd
}

func (t tasksModel) view() string {
	w := t.width - 4

	if t.formActive && t.form != nil {
		title := titleStyle.Render("New Task")
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", t.form.View()),
		)
	}

	title := titleStyle.Render("Tasks")

	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")

	if len(t.tasks) == 0 {
		rows = append(rows, mutedStyle.Render("  No tasks yet. Press a to add one."))
	}

	for i, task := range t.tasks {
		cursor := "  "
		style := normalItemStyle
		if i == t.cursor {
			cursor = "> "
			style = selectedItemStyle
		}
		check := "[ ]"
		if task.Completed {
			check = successStyle.Render("[x]")
		}
		rows = append(rows, style.Render(cursor+check+" "+task.Title))
	}

	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  enter: toggle done  u: use for timer  a: add"))

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
