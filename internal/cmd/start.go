package cmd

import (
	"fmt"

	"github.com/sadopc/pomo/internal/console"
	"github.com/sadopc/pomo/internal/logging"
	"github.com/sadopc/pomo/internal/session"
	"github.com/sadopc/pomo/internal/sound"
	"github.com/sadopc/pomo/internal/store"
)

// StartCmd runs the inline terminal timer. Durations default to the
// saved configuration; flags and presets override it for this run only.
type StartCmd struct {
	Work      *int     `help:"Work session length in minutes"`
	Break     *int     `name:"break" help:"Short break length in minutes"`
	LongBreak *int     `help:"Long break length in minutes"`
	Sessions  *int     `help:"Work sessions before a long break"`
	Task      string   `help:"Task label to attach to logged sessions" short:"t"`
	Tags      []string `help:"Comma-separated tags for logged sessions" sep:","`
	Auto      *bool    `help:"Continue to the next phase without waiting"`
	Preset    string   `help:"Start from a saved preset" short:"p"`
}

// runConfig layers the run configuration: saved config, then preset,
// then explicit flags.
func (s *StartCmd) runConfig(st *store.Store) (session.Config, error) {
	cfg := st.Config().MachineConfig()

	if s.Preset != "" {
		p, ok := st.Preset(s.Preset)
		if !ok {
			return session.Config{}, fmt.Errorf("preset %q not found", s.Preset)
		}
		cfg.WorkMinutes = p.WorkTime
		cfg.BreakMinutes = p.BreakTime
		cfg.LongBreakMinutes = p.LongBreak
		cfg.SessionsPerCycle = p.Sessions
	}

	if s.Work != nil {
		cfg.WorkMinutes = *s.Work
	}
	if s.Break != nil {
		cfg.BreakMinutes = *s.Break
	}
	if s.LongBreak != nil {
		cfg.LongBreakMinutes = *s.LongBreak
	}
	if s.Sessions != nil {
		cfg.SessionsPerCycle = *s.Sessions
	}
	if s.Auto != nil {
		cfg.AutoContinue = *s.Auto
	}
	return cfg, nil
}

func (s *StartCmd) Run(cli *CLI) error {
	st, err := openStore()
	if err != nil {
		return fmt.Errorf("open data directory: %w", err)
	}

	cfg, err := s.runConfig(st)
	if err != nil {
		return err
	}

	logging.Logger.Info("starting timer run",
		"work", cfg.WorkMinutes, "break", cfg.BreakMinutes,
		"long_break", cfg.LongBreakMinutes, "sessions", cfg.SessionsPerCycle,
		"task", s.Task)

	saved := st.Config()
	machine := session.New(cfg, session.WithTask(s.Task, s.Tags))
	player := sound.NewPlayer(saved.SoundEnabled, saved.MusicEnabled)
	defer player.Close()

	return console.Run(machine, st, player)
}
