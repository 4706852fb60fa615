package cmd

import (
	"testing"

	"github.com/sadopc/pomo/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	return store.New(t.TempDir())
}

func intp(n int) *int    { return &n }
func boolp(b bool) *bool { return &b }

// ============================================================
// Start: run configuration layering
// ============================================================

func TestRunConfigDefaults(t *testing.T) {
	st := newTestStore(t)
	s := &StartCmd{}

	cfg, err := s.runConfig(st)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.WorkMinutes != 25 || cfg.BreakMinutes != 5 || cfg.LongBreakMinutes != 15 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.SessionsPerCycle != 4 {
		t.Fatalf("sessions = %d, want 4", cfg.SessionsPerCycle)
	}
	if cfg.AutoContinue {
		t.Fatal("auto-continue should default to off")
	}
}

func TestRunConfigFlagOverrides(t *testing.T) {
	st := newTestStore(t)
	s := &StartCmd{
		Work:     intp(50),
		Break:    intp(10),
		Sessions: intp(2),
		Auto:     boolp(true),
	}

	cfg, err := s.runConfig(st)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.WorkMinutes != 50 || cfg.BreakMinutes != 10 {
		t.Fatalf("flags not applied: %+v", cfg)
	}
	if cfg.LongBreakMinutes != 15 {
		t.Fatal("unset flag should keep the saved value")
	}
	if cfg.SessionsPerCycle != 2 || !cfg.AutoContinue {
		t.Fatalf("flags not applied: %+v", cfg)
	}
}

func TestRunConfigPreset(t *testing.T) {
	st := newTestStore(t)
	err := st.SavePreset("deep", store.Preset{WorkTime: 90, BreakTime: 20, LongBreak: 30, Sessions: 2})
	if err != nil {
		t.Fatal(err)
	}

	s := &StartCmd{Preset: "deep"}
	cfg, err := s.runConfig(st)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.WorkMinutes != 90 || cfg.BreakMinutes != 20 || cfg.LongBreakMinutes != 30 || cfg.SessionsPerCycle != 2 {
		t.Fatalf("preset not applied: %+v", cfg)
	}
}

func TestRunConfigFlagBeatsPreset(t *testing.T) {
	st := newTestStore(t)
	err := st.SavePreset("deep", store.Preset{WorkTime: 90, BreakTime: 20, LongBreak: 30, Sessions: 2})
	if err != nil {
		t.Fatal(err)
	}

	s := &StartCmd{Preset: "deep", Work: intp(45)}
	cfg, err := s.runConfig(st)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.WorkMinutes != 45 {
		t.Fatalf("flag should beat preset, got %d", cfg.WorkMinutes)
	}
	if cfg.BreakMinutes != 20 {
		t.Fatal("unflagged preset values should survive")
	}
}

func TestRunConfigUnknownPreset(t *testing.T) {
	st := newTestStore(t)
	s := &StartCmd{Preset: "nope"}

	if _, err := s.runConfig(st); err == nil {
		t.Fatal("unknown preset should error")
	}
}
