//go:build darwin

package sound

// playEffect plays notification sounds on macOS using afplay and the
// built-in system sounds.
func playEffect(e Effect) error {
	var candidates []command
	switch e {
	case EffectWorkDone:
		candidates = []command{{"afplay", []string{"/System/Library/Sounds/Glass.aiff"}}}
	case EffectBreakDone:
		candidates = []command{{"afplay", []string{"/System/Library/Sounds/Ping.aiff"}}}
	case EffectStart:
		candidates = []command{{"afplay", []string{"/System/Library/Sounds/Pop.aiff"}}}
	default:
		candidates = []command{{"afplay", []string{"/System/Library/Sounds/Tink.aiff"}}}
	}
	if err := tryCommands(candidates); err != nil {
		return terminalBell()
	}
	return nil
}

func playMusicOnce() error {
	return tryCommands([]command{
		{"afplay", []string{"/System/Library/Sounds/Submarine.aiff"}},
	})
}
