//go:build !linux && !darwin && !windows

package sound

func playEffect(Effect) error { return terminalBell() }

func playMusicOnce() error { return errNoPlayer }
