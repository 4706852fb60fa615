package cmd

import (
	"fmt"

	"github.com/sadopc/pomo/internal/logging"
	"github.com/sadopc/pomo/internal/sound"
	"github.com/sadopc/pomo/internal/tui"
)

// TuiCmd opens the full-screen tabbed interface.
type TuiCmd struct{}

func (t *TuiCmd) Run(cli *CLI) error {
	st, err := openStore()
	if err != nil {
		return fmt.Errorf("open data directory: %w", err)
	}

	cfg := st.Config()
	player := sound.NewPlayer(cfg.SoundEnabled, cfg.MusicEnabled)

	logging.Logger.Info("starting tui", "data_dir", st.Dir())
	return tui.Run(st, player)
}
