package actor

import (
	"fmt"

	"rayframe/internal/config"
)

// Kind selects how a sprite reacts to the player.
type Kind int

const (
	KindProp    Kind = iota // Static decoration
	KindKey                 // Hidden on contact; a hidden key unlocks doors
	KindPursuer             // Chases the player; contact loses the game
	KindGoal                // Contact wins the game
)

var kindNames = map[string]Kind{
	"prop":    KindProp,
	"key":     KindKey,
	"pursuer": KindPursuer,
	"goal":    KindGoal,
}

// ParseKind resolves a kind name from a level file.
func ParseKind(name string) (Kind, error) {
	k, ok := kindNames[name]
	if !ok {
		return 0, fmt.Errorf("unknown sprite kind %q", name)
	}
	return k, nil
}

func (k Kind) String() string {
	switch k {
	case KindProp:
		return "prop"
	case KindKey:
		return "key"
	case KindPursuer:
		return "pursuer"
	case KindGoal:
		return "goal"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// State is the visibility of a sprite.
type State int

const (
	StateActive State = iota // Drawn and able to trigger
	StateHidden              // Triggered; no longer drawn
)

// Player is the camera pose. Angle is in radians and kept in [0, 2π).
type Player struct {
	X, Y  float64
	Angle float64
}

// Sprite is a billboard actor. Z only offsets the projection vertically.
type Sprite struct {
	Kind    Kind
	State   State
	Texture int
	X, Y, Z float64
}

// Visible reports whether the sprite should be drawn.
func (s *Sprite) Visible() bool {
	return s.State == StateActive
}

// Intent is one tick of player input. The four movement flags are level
// triggered, Interact is true only on the tick the key went down.
type Intent struct {
	TurnLeft  bool
	TurnRight bool
	Forward   bool
	Backward  bool
	Interact  bool
}

// Trigger is the result of a proximity check.
type Trigger int

const (
	TriggerNone Trigger = iota
	TriggerKeyCollected
	TriggerWon
	TriggerLost
)

func (t Trigger) String() string {
	switch t {
	case TriggerKeyCollected:
		return "key collected"
	case TriggerWon:
		return "won"
	case TriggerLost:
		return "lost"
	default:
		return "none"
	}
}

// Tuning holds the movement constants, with speeds per millisecond.
type Tuning struct {
	MoveSpeed      float64 // World units per ms
	RotSpeed       float64 // Radians per ms
	PlayerMargin   int
	InteractMargin int
	PursuerSpeed   float64 // World units per ms
	PursuerMargin  int
	TriggerRadius  float64
}

// TuningFromConfig reads the movement constants out of the engine config.
func TuningFromConfig(cfg *config.Config) Tuning {
	return Tuning{
		MoveSpeed:      cfg.GetMoveSpeed(),
		RotSpeed:       cfg.GetRotSpeed(),
		PlayerMargin:   cfg.Movement.CollisionMargin,
		InteractMargin: cfg.Movement.InteractMargin,
		PursuerSpeed:   cfg.Actors.PursuerSpeed,
		PursuerMargin:  cfg.Actors.PursuerMargin,
		TriggerRadius:  cfg.Actors.TriggerRadius,
	}
}
