package cmd

import (
	"fmt"

	"github.com/sadopc/pomo/internal/console"
	"github.com/sadopc/pomo/internal/session"
	"github.com/sadopc/pomo/internal/sound"
	"github.com/sadopc/pomo/internal/store"
)

// PresetCmd manages named timer presets.
type PresetCmd struct {
	List PresetListCmd `cmd:"" help:"List saved presets (default)" default:"1"`
	Save PresetSaveCmd `cmd:"" help:"Save or overwrite a preset"`
	Use  PresetUseCmd  `cmd:"" help:"Run the timer with a saved preset"`
}

type PresetListCmd struct{}

func (p *PresetListCmd) Run(cli *CLI) error {
	st, err := openStore()
	if err != nil {
		return fmt.Errorf("open data directory: %w", err)
	}

	names := st.PresetNames()
	if len(names) == 0 {
		fmt.Println("No presets saved")
		return nil
	}
	presets := st.Presets()
	fmt.Println("Saved presets:")
	for _, name := range names {
		p := presets[name]
		fmt.Printf("  %s: %dm work, %dm break\n", name, p.WorkTime, p.BreakTime)
	}
	return nil
}

type PresetSaveCmd struct {
	Name      string `arg:"" help:"Preset name"`
	Work      int    `arg:"" help:"Work session length in minutes"`
	Break     int    `arg:"" help:"Short break length in minutes"`
	LongBreak int    `arg:"" help:"Long break length in minutes"`
	Sessions  int    `arg:"" help:"Work sessions before a long break"`
}

func (p *PresetSaveCmd) Run(cli *CLI) error {
	st, err := openStore()
	if err != nil {
		return fmt.Errorf("open data directory: %w", err)
	}

	err = st.SavePreset(p.Name, store.Preset{
		WorkTime:  p.Work,
		BreakTime: p.Break,
		LongBreak: p.LongBreak,
		Sessions:  p.Sessions,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Preset %q saved\n", p.Name)
	return nil
}

type PresetUseCmd struct {
	Name string `arg:"" help:"Preset name"`
	Task string `help:"Task label to attach to logged sessions" short:"t"`
}

func (p *PresetUseCmd) Run(cli *CLI) error {
	st, err := openStore()
	if err != nil {
		return fmt.Errorf("open data directory: %w", err)
	}

	preset, ok := st.Preset(p.Name)
	if !ok {
		return fmt.Errorf("preset %q not found", p.Name)
	}

	saved := st.Config()
	cfg := saved.MachineConfig()
	cfg.WorkMinutes = preset.WorkTime
	cfg.BreakMinutes = preset.BreakTime
	cfg.LongBreakMinutes = preset.LongBreak
	cfg.SessionsPerCycle = preset.Sessions

	machine := session.New(cfg, session.WithTask(p.Task, nil))
	player := sound.NewPlayer(saved.SoundEnabled, saved.MusicEnabled)
	defer player.Close()

	return console.Run(machine, st, player)
}
