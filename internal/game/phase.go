package game

// Phase is the top level state of a run.
type Phase int

const (
	PhaseInit Phase = iota
	PhaseTitle
	PhasePlaying
	PhaseWon
	PhaseLost
)

func (p Phase) String() string {
	switch p {
	case PhaseInit:
		return "Init"
	case PhaseTitle:
		return "Title"
	case PhasePlaying:
		return "Playing"
	case PhaseWon:
		return "Won"
	case PhaseLost:
		return "Lost"
	default:
		return "Unknown"
	}
}

// Event is what the simulation reports to the state machine for one tick.
type Event int

const (
	EventNone Event = iota
	EventWin
	EventLose
)

// Timing holds the phase thresholds and the fade ramp.
type Timing struct {
	TitleMs   float64
	EndMs     float64
	FadePerMs float64
}

// Transition returns the phase that follows p after elapsedMs in p with the
// given event. It has no side effects. Events only matter while Playing, and a
// lose event beats a win event reported in the same tick.
func Transition(p Phase, elapsedMs float64, ev Event, t Timing) Phase {
	switch p {
	case PhaseInit:
		return PhaseTitle
	case PhaseTitle:
		if elapsedMs >= t.TitleMs {
			return PhasePlaying
		}
	case PhasePlaying:
		switch ev {
		case EventLose:
			return PhaseLost
		case EventWin:
			return PhaseWon
		}
	case PhaseWon, PhaseLost:
		if elapsedMs >= t.EndMs {
			return PhaseInit
		}
	}
	return p
}

// Machine holds the current phase with its fade and timer.
type Machine struct {
	Phase Phase
	Fade  float64 // [0, 1]
	Timer float64 // Milliseconds spent in the current phase

	timing Timing
}

// NewMachine starts a machine in PhaseInit.
func NewMachine(t Timing) *Machine {
	return &Machine{timing: t}
}

// Advance runs one tick: time accumulates in the current phase, the fade of a
// screen phase ramps up, then the transition is evaluated once. Entering a new
// phase resets fade and timer to 0. It returns the phase before the tick.
func (m *Machine) Advance(dtMs float64, ev Event) (prev Phase) {
	prev = m.Phase
	if dtMs < 0 {
		dtMs = 0
	}

	m.Timer += dtMs
	switch m.Phase {
	case PhaseTitle, PhaseWon, PhaseLost:
		m.Fade += m.timing.FadePerMs * dtMs
		if m.Fade > 1 {
			m.Fade = 1
		}
	}

	next := Transition(m.Phase, m.Timer, ev, m.timing)
	if next != m.Phase {
		m.Phase = next
		m.Fade = 0
		m.Timer = 0
	}
	return prev
}
