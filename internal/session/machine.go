package session

import "time"

// Kind classifies a logged record as work or break time.
type Kind string

const (
	KindWork  Kind = "work"
	KindBreak Kind = "break"
)

// Phase is one timed segment of a run.
type Phase int

const (
	PhaseWork Phase = iota
	PhaseShortBreak
	PhaseLongBreak
)

var phaseLabels = map[Phase]string{
	PhaseWork:       "Work",
	PhaseShortBreak: "Short Break",
	PhaseLongBreak:  "Long Break",
}

func (p Phase) String() string { return phaseLabels[p] }

// Kind maps a phase to the record kind it logs.
func (p Phase) Kind() Kind {
	if p == PhaseWork {
		return KindWork
	}
	return KindBreak
}

// State is the run-level state of the machine.
type State int

const (
	StateIdle State = iota
	StateRunning
	StatePaused
	StateAwaitingProceed
	StateStopped
)

// Config holds the per-run phase durations. Immutable for the run's duration.
type Config struct {
	WorkMinutes      int
	BreakMinutes     int
	LongBreakMinutes int
	SessionsPerCycle int
	AutoContinue     bool
}

// normalized clamps out-of-range values so a bad config can't wedge the run.
func (c Config) normalized() Config {
	if c.WorkMinutes < 0 {
		c.WorkMinutes = 0
	}
	if c.BreakMinutes < 0 {
		c.BreakMinutes = 0
	}
	if c.LongBreakMinutes < 0 {
		c.LongBreakMinutes = 0
	}
	if c.SessionsPerCycle < 1 {
		c.SessionsPerCycle = 1
	}
	return c
}

// Record is an immutable fact about one completed (non-skipped) phase.
type Record struct {
	Start    time.Time
	End      time.Time
	Duration int64 // seconds
	Kind     Kind
	Task     string
	Tags     []string
}

// Completion is emitted when a phase ends, naturally or via skip.
// Record is nil for skipped phases.
type Completion struct {
	Phase    Phase
	Record   *Record
	Next     Phase
	Awaiting bool // true when the machine parked waiting for Proceed
}

// Machine drives one timer run through work and break phases.
// Remaining time is always recomputed from the wall clock, never
// decremented per tick.
type Machine struct {
	cfg  Config
	now  func() time.Time
	task string
	tags []string

	state            State
	phase            Phase
	completedInCycle int
	pendingPhase     Phase

	phaseStart time.Time
	pausedAt   time.Time
	pauseGap   time.Duration
}

type Option func(*Machine)

// WithClock injects a time source. Tests use this to drive the machine
// without sleeping.
func WithClock(now func() time.Time) Option {
	return func(m *Machine) { m.now = now }
}

// WithTask attaches a task label and tags to every record this run emits.
func WithTask(task string, tags []string) Option {
	return func(m *Machine) {
		m.task = task
		m.tags = tags
	}
}

func New(cfg Config, opts ...Option) *Machine {
	m := &Machine{
		cfg:   cfg.normalized(),
		now:   time.Now,
		state: StateIdle,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Start begins the run in the Work phase.
func (m *Machine) Start() {
	if m.state != StateIdle {
		return
	}
	m.completedInCycle = 0
	m.enterPhase(PhaseWork)
}

// Tick advances the machine against the wall clock. It returns a
// Completion when the current phase's countdown has reached zero.
func (m *Machine) Tick() *Completion {
	if m.state != StateRunning {
		return nil
	}
	if m.Remaining() > 0 {
		return nil
	}
	return m.complete(false)
}

// TogglePause freezes or resumes the countdown. Calling it while paused
// resumes, and vice versa.
func (m *Machine) TogglePause() {
	switch m.state {
	case StateRunning:
		m.state = StatePaused
		m.pausedAt = m.now()
	case StatePaused:
		m.pauseGap += m.now().Sub(m.pausedAt)
		m.state = StateRunning
	}
}

// Skip ends the current phase immediately without emitting a record, but
// advances the cycle exactly as natural completion would.
func (m *Machine) Skip() *Completion {
	if m.state != StateRunning && m.state != StatePaused {
		return nil
	}
	if m.state == StatePaused {
		m.pauseGap += m.now().Sub(m.pausedAt)
	}
	return m.complete(true)
}

// Proceed starts the next phase after an inter-phase wait.
func (m *Machine) Proceed() {
	if m.state != StateAwaitingProceed {
		return
	}
	m.enterPhase(m.pendingPhase)
}

// Stop terminates the run. No record is emitted for the in-progress phase.
func (m *Machine) Stop() {
	m.state = StateStopped
}

func (m *Machine) enterPhase(p Phase) {
	m.phase = p
	m.phaseStart = m.now()
	m.pauseGap = 0
	m.state = StateRunning
}

func (m *Machine) complete(skipped bool) *Completion {
	ended := m.phase
	var rec *Record
	if !skipped {
		d := m.phaseDuration(ended)
		rec = &Record{
			Start:    m.phaseStart,
			End:      m.phaseStart.Add(d),
			Duration: int64(d / time.Second),
			Kind:     ended.Kind(),
			Task:     m.task,
			Tags:     m.tags,
		}
	}

	var next Phase
	if ended == PhaseWork {
		m.completedInCycle++
		if m.completedInCycle%m.cfg.SessionsPerCycle == 0 {
			next = PhaseLongBreak
		} else {
			next = PhaseShortBreak
		}
	} else {
		if ended == PhaseLongBreak {
			m.completedInCycle = 0
		}
		next = PhaseWork
	}

	if m.cfg.AutoContinue {
		m.enterPhase(next)
	} else {
		m.state = StateAwaitingProceed
		m.pendingPhase = next
	}

	return &Completion{
		Phase:    ended,
		Record:   rec,
		Next:     next,
		Awaiting: m.state == StateAwaitingProceed,
	}
}

func (m *Machine) phaseDuration(p Phase) time.Duration {
	switch p {
	case PhaseShortBreak:
		return time.Duration(m.cfg.BreakMinutes) * time.Minute
	case PhaseLongBreak:
		return time.Duration(m.cfg.LongBreakMinutes) * time.Minute
	default:
		return time.Duration(m.cfg.WorkMinutes) * time.Minute
	}
}

// Remaining returns the time left in the current phase, computed as
// configured duration minus elapsed wall clock since phase start, with
// paused time excluded.
func (m *Machine) Remaining() time.Duration {
	var elapsed time.Duration
	switch m.state {
	case StateRunning:
		elapsed = m.now().Sub(m.phaseStart) - m.pauseGap
	case StatePaused:
		elapsed = m.pausedAt.Sub(m.phaseStart) - m.pauseGap
	default:
		return 0
	}
	remaining := m.phaseDuration(m.phase) - elapsed
	if remaining < 0 {
		remaining = 0
	}
	return remaining
}

// Progress reports phase completion in [0, 1]. A zero-length phase is
// defined as fully complete.
func (m *Machine) Progress() float64 {
	d := m.phaseDuration(m.phase)
	if d == 0 {
		return 1
	}
	p := 1 - float64(m.Remaining())/float64(d)
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	return p
}

func (m *Machine) State() State { return m.state }
func (m *Machine) Phase() Phase { return m.phase }

// NextPhase returns the phase the machine will enter on Proceed.
func (m *Machine) NextPhase() Phase { return m.pendingPhase }

// CompletedInCycle returns work sessions completed toward the next long
// break. It resets to zero after a long break is taken.
func (m *Machine) CompletedInCycle() int { return m.completedInCycle }

func (m *Machine) Config() Config { return m.cfg }
func (m *Machine) Task() string   { return m.task }
func (m *Machine) Tags() []string { return m.tags }

// PhaseDuration exposes the configured duration for a phase, used by the
// front ends to render the upcoming phase while awaiting proceed.
func (m *Machine) PhaseDuration(p Phase) time.Duration { return m.phaseDuration(p) }
