package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/sadopc/pomo/internal/session"
	"github.com/sadopc/pomo/internal/store"
)

func ToCSV(records []session.Record, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	// Header
	if err := w.Write([]string{"Start", "End", "Duration (s)", "Duration", "Type", "Task", "Tags"}); err != nil {
		return err
	}

	for _, r := range records {
		row := []string{
			r.Start.Format(store.TimestampLayout),
			r.End.Format(store.TimestampLayout),
			fmt.Sprintf("%d", r.Duration),
			formatDuration(r.Duration),
			string(r.Kind),
			r.Task,
			strings.Join(r.Tags, ","),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func formatDuration(secs int64) string {
	h := secs / 3600
	m := (secs % 3600) / 60
	s := secs % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
