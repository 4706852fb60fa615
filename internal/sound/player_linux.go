//go:build linux

package sound

// playEffect plays notification sounds on Linux using paplay
// (PulseAudio) or aplay (ALSA).
func playEffect(e Effect) error {
	var candidates []command
	switch e {
	case EffectWorkDone:
		candidates = []command{
			{"paplay", []string{"/usr/share/sounds/freedesktop/stereo/complete.oga"}},
			{"aplay", []string{"/usr/share/sounds/freedesktop/stereo/complete.wav"}},
		}
	case EffectBreakDone:
		candidates = []command{
			{"paplay", []string{"/usr/share/sounds/freedesktop/stereo/message.oga"}},
			{"aplay", []string{"/usr/share/sounds/freedesktop/stereo/message.wav"}},
		}
	case EffectStart:
		candidates = []command{
			{"paplay", []string{"/usr/share/sounds/freedesktop/stereo/service-login.oga"}},
			{"aplay", []string{"/usr/share/sounds/freedesktop/stereo/service-login.wav"}},
		}
	default:
		candidates = []command{
			{"paplay", []string{"/usr/share/sounds/freedesktop/stereo/bell.oga"}},
			{"aplay", []string{"/usr/share/sounds/freedesktop/stereo/bell.wav"}},
		}
	}
	if err := tryCommands(candidates); err != nil {
		return terminalBell()
	}
	return nil
}

func playMusicOnce() error {
	return tryCommands([]command{
		{"paplay", []string{"/usr/share/sounds/freedesktop/stereo/audio-channel-front-center.oga"}},
	})
}
