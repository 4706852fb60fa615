package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/sadopc/pomo/internal/session"
	"github.com/sadopc/pomo/internal/store"
)

type jsonExport struct {
	ExportedAt string      `json:"exported_at"`
	Count      int         `json:"count"`
	Sessions   []jsonEntry `json:"sessions"`
}

type jsonEntry struct {
	Start       string   `json:"start"`
	End         string   `json:"end"`
	DurationSec int64    `json:"duration_seconds"`
	Duration    string   `json:"duration"`
	Type        string   `json:"type"`
	Task        string   `json:"task,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

func ToJSON(records []session.Record, path string) error {
	out := jsonExport{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Count:      len(records),
	}

	for _, r := range records {
		out.Sessions = append(out.Sessions, jsonEntry{
			Start:       r.Start.Format(store.TimestampLayout),
			End:         r.End.Format(store.TimestampLayout),
			DurationSec: r.Duration,
			Duration:    formatDuration(r.Duration),
			Type:        string(r.Kind),
			Task:        r.Task,
			Tags:        r.Tags,
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}
