package store

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/google/uuid"
)

// Task is one entry in the user's task list.
type Task struct {
	ID        string
	Title     string
	Completed bool
	Created   time.Time
}

// taskDoc is the wire form: the tasks document is an object keyed by
// opaque id.
type taskDoc struct {
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
	Created   string `json:"created"`
}

func (s *Store) loadTasks() map[string]taskDoc {
	data, err := os.ReadFile(s.tasksPath())
	if err != nil {
		return map[string]taskDoc{}
	}
	tasks := map[string]taskDoc{}
	if err := json.Unmarshal(data, &tasks); err != nil {
		return map[string]taskDoc{}
	}
	return tasks
}

func (s *Store) saveTasks(tasks map[string]taskDoc) error {
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal tasks: %w", err)
	}
	if err := s.writeDoc(s.tasksPath(), data); err != nil {
		return fmt.Errorf("write tasks: %w", err)
	}
	return nil
}

// AddTask creates a new task with a fresh opaque id.
func (s *Store) AddTask(title string) (Task, error) {
	t := Task{
		ID:      uuid.NewString(),
		Title:   title,
		Created: time.Now(),
	}
	tasks := s.loadTasks()
	tasks[t.ID] = taskDoc{Title: t.Title, Created: t.Created.Format(time.RFC3339)}
	if err := s.saveTasks(tasks); err != nil {
		return Task{}, err
	}
	return t, nil
}

// ListTasks returns all tasks ordered by creation time.
func (s *Store) ListTasks() []Task {
	docs := s.loadTasks()
	tasks := make([]Task, 0, len(docs))
	for id, d := range docs {
		created, _ := time.Parse(time.RFC3339, d.Created)
		tasks = append(tasks, Task{
			ID:        id,
			Title:     d.Title,
			Completed: d.Completed,
			Created:   created,
		})
	}
	sort.Slice(tasks, func(i, j int) bool {
		if !tasks[i].Created.Equal(tasks[j].Created) {
			return tasks[i].Created.Before(tasks[j].Created)
		}
		return tasks[i].ID < tasks[j].ID
	})
	return tasks
}

// SetTaskCompleted toggles a task's completed flag to the given value.
func (s *Store) SetTaskCompleted(id string, completed bool) error {
	tasks := s.loadTasks()
	t, ok := tasks[id]
	if !ok {
		return fmt.Errorf("task %q not found", id)
	}
	t.Completed = completed
	tasks[id] = t
	return s.saveTasks(tasks)
}
