//go:build windows

package sound

// playEffect plays notification sounds on Windows via PowerShell's
// console beep, with distinct pitches per event.
func playEffect(e Effect) error {
	var script string
	switch e {
	case EffectWorkDone:
		script = "[console]::beep(1000,500)"
	case EffectBreakDone:
		script = "[console]::beep(800,400)"
	case EffectStart:
		script = "[console]::beep(600,200)"
	default:
		script = "[console]::beep(700,300)"
	}
	candidates := []command{{"powershell", []string{"-NoProfile", "-Command", script}}}
	if err := tryCommands(candidates); err != nil {
		return terminalBell()
	}
	return nil
}

func playMusicOnce() error {
	return tryCommands([]command{
		{"powershell", []string{"-NoProfile", "-Command", "[console]::beep(500,2000)"}},
	})
}
