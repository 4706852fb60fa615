package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sadopc/pomo/internal/session"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(t.TempDir())
}

func mustAppend(t *testing.T, s *Store, r session.Record) {
	t.Helper()
	if err := s.AppendRecord(r); err != nil {
		t.Fatalf("append record: %v", err)
	}
}

func workRecord(start time.Time, durationSecs int64, task string, tags []string) session.Record {
	return session.Record{
		Start:    start,
		End:      start.Add(time.Duration(durationSecs) * time.Second),
		Duration: durationSecs,
		Kind:     session.KindWork,
		Task:     task,
		Tags:     tags,
	}
}

// ============================================================
// Store paths
// ============================================================

func TestDefaultDirHonorsEnvOverride(t *testing.T) {
	t.Setenv("POMO_HOME", "/tmp/pomo-test-home")
	dir, err := DefaultDir()
	if err != nil {
		t.Fatal(err)
	}
	if dir != "/tmp/pomo-test-home" {
		t.Fatalf("expected env override, got %q", dir)
	}
}

func TestDefaultDir(t *testing.T) {
	t.Setenv("POMO_HOME", "")
	dir, err := DefaultDir()
	if err != nil {
		t.Fatal(err)
	}
	if dir == "" {
		t.Fatal("empty default dir")
	}
}

// ============================================================
// Session log
// ============================================================

func TestLogRoundTrip(t *testing.T) {
	s := newTestStore(t)
	start := time.Date(2025, 3, 10, 9, 15, 30, 123456000, time.Local)
	mustAppend(t, s, workRecord(start, 1500, "deep work", []string{"focus", "am"}))

	records, err := s.Records()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	r := records[0]
	if !r.Start.Equal(start) {
		t.Fatalf("start must round-trip exactly: %v != %v", r.Start, start)
	}
	if r.Duration != 1500 {
		t.Fatalf("duration mismatch: %d", r.Duration)
	}
	if r.Kind != session.KindWork {
		t.Fatalf("kind mismatch: %q", r.Kind)
	}
	if r.Task != "deep work" {
		t.Fatalf("task mismatch: %q", r.Task)
	}
	if len(r.Tags) != 2 || r.Tags[0] != "focus" || r.Tags[1] != "am" {
		t.Fatalf("tags mismatch: %v", r.Tags)
	}
}

func TestLogTaskNullWhenEmpty(t *testing.T) {
	s := newTestStore(t)
	mustAppend(t, s, workRecord(time.Now(), 1500, "", nil))

	data, err := os.ReadFile(filepath.Join(s.Dir(), "sessions.log"))
	if err != nil {
		t.Fatal(err)
	}
	line := string(data)
	if !strings.Contains(line, `"task":null`) {
		t.Fatalf("empty task should serialize as null: %s", line)
	}
	if !strings.Contains(line, `"tags":[]`) {
		t.Fatalf("nil tags should serialize as an empty array: %s", line)
	}
}

func TestLogTimestampFormat(t *testing.T) {
	s := newTestStore(t)
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)
	mustAppend(t, s, workRecord(start, 60, "", nil))

	data, _ := os.ReadFile(filepath.Join(s.Dir(), "sessions.log"))
	if !strings.Contains(string(data), `"start":"2025-03-10 09:00:00.000000"`) {
		t.Fatalf("unexpected timestamp format: %s", data)
	}
}

func TestLogAppendsInOrder(t *testing.T) {
	s := newTestStore(t)
	base := time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)
	for i := 0; i < 3; i++ {
		mustAppend(t, s, workRecord(base.Add(time.Duration(i)*time.Hour), 1500, "", nil))
	}

	records, err := s.Records()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	for i := 1; i < len(records); i++ {
		if !records[i].Start.After(records[i-1].Start) {
			t.Fatal("records must come back in append order")
		}
	}
}

func TestLogSkipsMalformedLines(t *testing.T) {
	s := newTestStore(t)
	mustAppend(t, s, workRecord(time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local), 1500, "", nil))

	// Corrupt the log with garbage lines between valid ones.
	path := filepath.Join(s.Dir(), "sessions.log")
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		t.Fatal(err)
	}
	f.WriteString("not json at all\n")
	f.WriteString(`{"start":"bogus","end":"bogus","duration":1,"type":"work","task":null,"tags":[]}` + "\n")
	f.WriteString(`{"start":"2025-03-10 10:00:00.000000","end":"2025-03-10 10:25:00.000000","duration":1500,"type":"nap","task":null,"tags":[]}` + "\n")
	f.Close()
	mustAppend(t, s, workRecord(time.Date(2025, 3, 10, 11, 0, 0, 0, time.Local), 1500, "", nil))

	records, err := s.Records()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Fatalf("bad lines must be skipped, expected 2 records, got %d", len(records))
	}
}

func TestLogMissingFileIsEmpty(t *testing.T) {
	s := newTestStore(t)
	records, err := s.Records()
	if err != nil {
		t.Fatal(err)
	}
	if records != nil {
		t.Fatalf("missing log should be empty, got %d records", len(records))
	}
}

// ============================================================
// Config
// ============================================================

func TestConfigDefaultsWhenMissing(t *testing.T) {
	s := newTestStore(t)
	cfg := s.Config()
	if cfg != DefaultConfig() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
	if cfg.WorkTime != 25 || cfg.BreakTime != 5 || cfg.LongBreak != 15 || cfg.SessionsUntilLong != 4 {
		t.Fatalf("unexpected default durations: %+v", cfg)
	}
	if cfg.DailyGoal != 8 {
		t.Fatalf("unexpected default goal: %v", cfg.DailyGoal)
	}
}

func TestConfigMissingKeysFallBack(t *testing.T) {
	s := newTestStore(t)
	if err := s.writeDoc(s.configPath(), []byte(`{"work_time": 50}`)); err != nil {
		t.Fatal(err)
	}

	cfg := s.Config()
	if cfg.WorkTime != 50 {
		t.Fatalf("explicit key should win, got %d", cfg.WorkTime)
	}
	if cfg.BreakTime != 5 || cfg.SessionsUntilLong != 4 || !cfg.SoundEnabled {
		t.Fatalf("missing keys should keep defaults: %+v", cfg)
	}
}

func TestConfigMalformedFallsBack(t *testing.T) {
	s := newTestStore(t)
	if err := s.writeDoc(s.configPath(), []byte(`{broken`)); err != nil {
		t.Fatal(err)
	}
	if cfg := s.Config(); cfg != DefaultConfig() {
		t.Fatalf("malformed config should fall back to defaults: %+v", cfg)
	}
}

func TestConfigClampsOutOfRange(t *testing.T) {
	s := newTestStore(t)
	err := s.writeDoc(s.configPath(), []byte(`{"work_time":-10,"sessions_until_long":0,"daily_goal":-2}`))
	if err != nil {
		t.Fatal(err)
	}

	cfg := s.Config()
	if cfg.WorkTime != 0 {
		t.Fatalf("negative minutes should clamp to 0, got %d", cfg.WorkTime)
	}
	if cfg.SessionsUntilLong != 1 {
		t.Fatalf("sessions should clamp to 1, got %d", cfg.SessionsUntilLong)
	}
	if cfg.DailyGoal != 0 {
		t.Fatalf("negative goal should clamp to 0, got %v", cfg.DailyGoal)
	}
}

func TestConfigSaveLoad(t *testing.T) {
	s := newTestStore(t)
	cfg := DefaultConfig()
	cfg.WorkTime = 50
	cfg.AutoContinue = true
	cfg.DailyGoal = 6.5
	if err := s.SaveConfig(cfg); err != nil {
		t.Fatal(err)
	}

	got := s.Config()
	if got != cfg {
		t.Fatalf("config round trip mismatch: %+v != %+v", got, cfg)
	}
}

// ============================================================
// Presets
// ============================================================

func TestPresetSaveAndUse(t *testing.T) {
	s := newTestStore(t)
	p := Preset{WorkTime: 50, BreakTime: 10, LongBreak: 20, Sessions: 4}
	if err := s.SavePreset("focus", p); err != nil {
		t.Fatal(err)
	}

	got, ok := s.Preset("focus")
	if !ok {
		t.Fatal("preset not found after save")
	}
	if got != p {
		t.Fatalf("preset fields must round-trip exactly: %+v != %+v", got, p)
	}
}

func TestPresetOverwriteSameName(t *testing.T) {
	s := newTestStore(t)
	s.SavePreset("focus", Preset{WorkTime: 50, BreakTime: 10, LongBreak: 20, Sessions: 4})
	s.SavePreset("focus", Preset{WorkTime: 90, BreakTime: 15, LongBreak: 30, Sessions: 2})

	got, _ := s.Preset("focus")
	if got.WorkTime != 90 {
		t.Fatalf("re-save should overwrite, got %+v", got)
	}
	if len(s.Presets()) != 1 {
		t.Fatal("overwrite must not duplicate the preset")
	}
}

func TestPresetNamesSorted(t *testing.T) {
	s := newTestStore(t)
	s.SavePreset("zzz", Preset{WorkTime: 25, BreakTime: 5, LongBreak: 15, Sessions: 4})
	s.SavePreset("aaa", Preset{WorkTime: 25, BreakTime: 5, LongBreak: 15, Sessions: 4})

	names := s.PresetNames()
	if len(names) != 2 || names[0] != "aaa" || names[1] != "zzz" {
		t.Fatalf("expected sorted names, got %v", names)
	}
}

func TestPresetsMissingFileIsEmpty(t *testing.T) {
	s := newTestStore(t)
	if len(s.Presets()) != 0 {
		t.Fatal("missing presets file should yield empty map")
	}
	if _, ok := s.Preset("nope"); ok {
		t.Fatal("lookup in empty presets should miss")
	}
}

// ============================================================
// Tasks
// ============================================================

func TestAddAndListTasks(t *testing.T) {
	s := newTestStore(t)
	t1, err := s.AddTask("write report")
	if err != nil {
		t.Fatal(err)
	}
	if t1.ID == "" {
		t.Fatal("task id should be assigned")
	}
	if t1.Completed {
		t.Fatal("new task should not be completed")
	}

	tasks := s.ListTasks()
	if len(tasks) != 1 || tasks[0].Title != "write report" {
		t.Fatalf("unexpected task list: %+v", tasks)
	}
}

func TestSetTaskCompleted(t *testing.T) {
	s := newTestStore(t)
	task, _ := s.AddTask("ship it")

	if err := s.SetTaskCompleted(task.ID, true); err != nil {
		t.Fatal(err)
	}
	tasks := s.ListTasks()
	if !tasks[0].Completed {
		t.Fatal("task should be completed")
	}

	if err := s.SetTaskCompleted(task.ID, false); err != nil {
		t.Fatal(err)
	}
	if s.ListTasks()[0].Completed {
		t.Fatal("task should be uncompleted again")
	}
}

func TestSetTaskCompletedUnknownID(t *testing.T) {
	s := newTestStore(t)
	if err := s.SetTaskCompleted("missing", true); err == nil {
		t.Fatal("expected error for unknown task id")
	}
}

func TestTasksMalformedDocIsEmpty(t *testing.T) {
	s := newTestStore(t)
	if err := s.writeDoc(s.tasksPath(), []byte(`[1,2,3]`)); err != nil {
		t.Fatal(err)
	}
	if tasks := s.ListTasks(); len(tasks) != 0 {
		t.Fatalf("malformed tasks doc should be empty, got %d", len(tasks))
	}
}
