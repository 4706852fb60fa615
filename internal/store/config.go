package store

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sadopc/pomo/internal/session"
)

// Config is the persisted configuration document. It is loaded once at
// startup; missing keys fall back to the defaults below and out-of-range
// values are clamped at load time.
type Config struct {
	WorkTime          int     `json:"work_time"`           // minutes
	BreakTime         int     `json:"break_time"`          // minutes
	LongBreak         int     `json:"long_break"`          // minutes
	SessionsUntilLong int     `json:"sessions_until_long"`
	AutoContinue      bool    `json:"auto_continue"`
	SoundEnabled      bool    `json:"sound_enabled"`
	MusicEnabled      bool    `json:"music_enabled"`
	DailyGoal         float64 `json:"daily_goal"` // hours
}

func DefaultConfig() Config {
	return Config{
		WorkTime:          25,
		BreakTime:         5,
		LongBreak:         15,
		SessionsUntilLong: 4,
		AutoContinue:      false,
		SoundEnabled:      true,
		MusicEnabled:      false,
		DailyGoal:         8,
	}
}

// clamped rejects out-of-range values. Zero-minute phases are legal
// (they complete immediately).
func (c Config) clamped() Config {
	if c.WorkTime < 0 {
		c.WorkTime = 0
	}
	if c.BreakTime < 0 {
		c.BreakTime = 0
	}
	if c.LongBreak < 0 {
		c.LongBreak = 0
	}
	if c.SessionsUntilLong < 1 {
		c.SessionsUntilLong = 1
	}
	if c.DailyGoal < 0 {
		c.DailyGoal = 0
	}
	return c
}

// MachineConfig maps the persisted document onto a run configuration.
func (c Config) MachineConfig() session.Config {
	return session.Config{
		WorkMinutes:      c.WorkTime,
		BreakMinutes:     c.BreakTime,
		LongBreakMinutes: c.LongBreak,
		SessionsPerCycle: c.SessionsUntilLong,
		AutoContinue:     c.AutoContinue,
	}
}

// Config loads the configuration document. A missing or malformed file
// is not an error: the returned Config is always usable, falling back
// to defaults.
func (s *Store) Config() Config {
	cfg := DefaultConfig()
	data, err := os.ReadFile(s.configPath())
	if err != nil {
		return cfg
	}
	// Unmarshal over the defaults so missing keys keep their default.
	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig()
	}
	return cfg.clamped()
}

// SaveConfig overwrites the whole configuration document.
func (s *Store) SaveConfig(cfg Config) error {
	data, err := json.MarshalIndent(cfg.clamped(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := s.writeDoc(s.configPath(), data); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
