// Package sound plays phase-completion effects and optional background
// music through platform audio tools. Playback is strictly best-effort:
// every failure is swallowed so the timer is never blocked by a missing
// sound asset or audio subsystem.
package sound

import "sync"

// Effect identifies a notification sound.
type Effect int

const (
	EffectStart Effect = iota
	EffectWorkDone
	EffectBreakDone
)

// Player is the audio capability handed to the front ends. It is owned
// by the top-level run loop, not kept as process-global state.
type Player interface {
	PlayEffect(Effect)
	StartMusic()
	StopMusic()
	Close()
}

// NewPlayer returns a platform player, or a silent no-op when sound is
// disabled.
func NewPlayer(soundEnabled, musicEnabled bool) Player {
	if !soundEnabled && !musicEnabled {
		return Nop{}
	}
	return &System{effects: soundEnabled, music: musicEnabled}
}

// Nop is the always-available silent fallback.
type Nop struct{}

func (Nop) PlayEffect(Effect) {}
func (Nop) StartMusic()       {}
func (Nop) StopMusic()        {}
func (Nop) Close()            {}

// System plays through platform commands (see player_*.go).
type System struct {
	effects bool
	music   bool

	mu        sync.Mutex
	musicStop chan struct{}
}

// PlayEffect plays a short notification asynchronously. Errors are
// dropped; the platform players fall back to a terminal bell.
func (s *System) PlayEffect(e Effect) {
	if !s.effects {
		return
	}
	go playEffect(e)
}

// StartMusic begins the background-music loop if enabled. Calling it
// while music is already playing is a no-op.
func (s *System) StartMusic() {
	if !s.music {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.musicStop != nil {
		return
	}
	stop := make(chan struct{})
	s.musicStop = stop
	go musicLoop(stop)
}

func (s *System) StopMusic() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.musicStop != nil {
		close(s.musicStop)
		s.musicStop = nil
	}
}

// Close releases any in-progress audio state.
func (s *System) Close() {
	s.StopMusic()
}
