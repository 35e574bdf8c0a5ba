package game

// Cue is a notable game event a sound layer can react to.
type Cue int

const (
	CueKeyCollected Cue = iota
	CueDoorOpened
	CueLevelStart
	CueWon
	CueLost
)

func (c Cue) String() string {
	switch c {
	case CueKeyCollected:
		return "key_collected"
	case CueDoorOpened:
		return "door_opened"
	case CueLevelStart:
		return "level_start"
	case CueWon:
		return "won"
	case CueLost:
		return "lost"
	default:
		return "unknown"
	}
}

// CuePlayer receives cues. Play is called from the tick and must not block.
type CuePlayer interface {
	Play(c Cue)
}

type nopCuePlayer struct{}

func (nopCuePlayer) Play(Cue) {}
