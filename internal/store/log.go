package store

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/sadopc/pomo/internal/session"
)

// TimestampLayout is the on-disk timestamp format: local time with
// microsecond precision. It round-trips exactly through AppendRecord
// and Records.
const TimestampLayout = "2006-01-02 15:04:05.000000"

// logLine is the wire form of one session record: one JSON object per
// line of the append-only log. Task is null when the session had no
// task label; tags are always an array.
type logLine struct {
	Start    string   `json:"start"`
	End      string   `json:"end"`
	Duration int64    `json:"duration"`
	Type     string   `json:"type"`
	Task     *string  `json:"task"`
	Tags     []string `json:"tags"`
}

// AppendRecord appends one completed session to the log and flushes it
// before returning, so a record is either fully on disk or absent.
func (s *Store) AppendRecord(r session.Record) error {
	line := logLine{
		Start:    r.Start.Format(TimestampLayout),
		End:      r.End.Format(TimestampLayout),
		Duration: r.Duration,
		Type:     string(r.Kind),
		Tags:     r.Tags,
	}
	if r.Task != "" {
		task := r.Task
		line.Task = &task
	}
	if line.Tags == nil {
		line.Tags = []string{}
	}

	data, err := json.Marshal(line)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	f, err := os.OpenFile(s.logPath(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open session log: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("append record: %w", err)
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("flush session log: %w", err)
	}
	return nil
}

// Records reads every session from the log. Malformed lines are
// skipped silently; a missing log is an empty log.
func (s *Store) Records() ([]session.Record, error) {
	f, err := os.Open(s.logPath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open session log: %w", err)
	}
	defer f.Close()

	var records []session.Record
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		r, ok := parseLogLine(scanner.Bytes())
		if !ok {
			continue
		}
		records = append(records, r)
	}
	if err := scanner.Err(); err != nil {
		return records, fmt.Errorf("read session log: %w", err)
	}
	return records, nil
}

func parseLogLine(data []byte) (session.Record, bool) {
	var line logLine
	if err := json.Unmarshal(data, &line); err != nil {
		return session.Record{}, false
	}
	if line.Type != string(session.KindWork) && line.Type != string(session.KindBreak) {
		return session.Record{}, false
	}
	start, err := time.ParseInLocation(TimestampLayout, line.Start, time.Local)
	if err != nil {
		return session.Record{}, false
	}
	end, err := time.ParseInLocation(TimestampLayout, line.End, time.Local)
	if err != nil {
		return session.Record{}, false
	}

	r := session.Record{
		Start:    start,
		End:      end,
		Duration: line.Duration,
		Kind:     session.Kind(line.Type),
		Tags:     line.Tags,
	}
	if line.Task != nil {
		r.Task = *line.Task
	}
	return r, true
}
