package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"
)

// TaskCmd manages the task list.
type TaskCmd struct {
	Add  TaskAddCmd  `cmd:"" help:"Add a task"`
	List TaskListCmd `cmd:"" help:"List tasks (default)" default:"1"`
	Done TaskDoneCmd `cmd:"" help:"Mark a task as completed"`
}

type TaskAddCmd struct {
	Title string `arg:"" help:"Task title"`
}

func (t *TaskAddCmd) Run(cli *CLI) error {
	st, err := openStore()
	if err != nil {
		return fmt.Errorf("open data directory: %w", err)
	}

	task, err := st.AddTask(t.Title)
	if err != nil {
		return err
	}
	fmt.Printf("Added task %q (%s)\n", task.Title, task.ID)
	return nil
}

type TaskListCmd struct {
	All bool `help:"Include completed tasks" short:"a"`
}

func (t *TaskListCmd) Run(cli *CLI) error {
	st, err := openStore()
	if err != nil {
		return fmt.Errorf("open data directory: %w", err)
	}

	tasks := st.ListTasks()
	if len(tasks) == 0 {
		fmt.Println("No tasks")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDONE\tTITLE\tCREATED")
	for _, task := range tasks {
		if task.Completed && !t.All {
			continue
		}
		done := ""
		if task.Completed {
			done = "✓"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			task.ID, done, task.Title, task.Created.Format("2006-01-02 15:04"))
	}
	return w.Flush()
}

type TaskDoneCmd struct {
	ID string `arg:"" help:"Task id"`
}

func (t *TaskDoneCmd) Run(cli *CLI) error {
	st, err := openStore()
	if err != nil {
		return fmt.Errorf("open data directory: %w", err)
	}

	if err := st.SetTaskCompleted(t.ID, true); err != nil {
		return err
	}
	fmt.Println("Task completed")
	return nil
}
