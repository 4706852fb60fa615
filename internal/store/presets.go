package store

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// Preset is a named, reusable phase configuration. Auto-continue is a
// per-run choice and is deliberately not part of a preset.
type Preset struct {
	WorkTime  int `json:"work_time"`  // minutes
	BreakTime int `json:"break_time"` // minutes
	LongBreak int `json:"long_break"` // minutes
	Sessions  int `json:"sessions"`
}

// Presets loads the presets document. Missing or malformed files yield
// an empty map.
func (s *Store) Presets() map[string]Preset {
	data, err := os.ReadFile(s.presetsPath())
	if err != nil {
		return map[string]Preset{}
	}
	presets := map[string]Preset{}
	if err := json.Unmarshal(data, &presets); err != nil {
		return map[string]Preset{}
	}
	return presets
}

// Preset looks up one preset by name.
func (s *Store) Preset(name string) (Preset, bool) {
	p, ok := s.Presets()[name]
	return p, ok
}

// SavePreset adds or overwrites a named preset. The document is
// read-modify-written as a whole; last writer wins.
func (s *Store) SavePreset(name string, p Preset) error {
	presets := s.Presets()
	presets[name] = p

	data, err := json.MarshalIndent(presets, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal presets: %w", err)
	}
	if err := s.writeDoc(s.presetsPath(), data); err != nil {
		return fmt.Errorf("write presets: %w", err)
	}
	return nil
}

// PresetNames returns the saved preset names in sorted order.
func (s *Store) PresetNames() []string {
	presets := s.Presets()
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
