package actor

import (
	"fmt"
	"math"

	"rayframe/internal/collision"
	"rayframe/internal/world"
)

// SpawnSprites builds the live sprite list from a level's spawn table.
func SpawnSprites(spawns []world.SpriteSpawn) ([]Sprite, error) {
	sprites := make([]Sprite, 0, len(spawns))
	for i, sp := range spawns {
		kind, err := ParseKind(sp.Kind)
		if err != nil {
			return nil, fmt.Errorf("sprite %d: %w", i, err)
		}
		state := StateActive
		if sp.Hidden {
			state = StateHidden
		}
		sprites = append(sprites, Sprite{
			Kind:    kind,
			State:   state,
			Texture: sp.Texture,
			X:       sp.X,
			Y:       sp.Y,
			Z:       sp.Z,
		})
	}
	return sprites, nil
}

// Touches reports whether the player stands strictly inside the sprite's
// trigger square.
func (s *Sprite) Touches(p Player, radius float64) bool {
	box := collision.NewTriggerSquare(s.X, s.Y, radius)
	return box.Contains(collision.Point{X: p.X, Y: p.Y})
}

// CheckProximity applies the sprite's contact behavior. It runs whether or not
// the sprite is on screen. A hidden key stays hidden; a hidden goal or pursuer
// no longer triggers.
func (s *Sprite) CheckProximity(p Player, radius float64) Trigger {
	if s.State != StateActive || !s.Touches(p, radius) {
		return TriggerNone
	}
	switch s.Kind {
	case KindKey:
		s.State = StateHidden
		return TriggerKeyCollected
	case KindPursuer:
		return TriggerLost
	case KindGoal:
		return TriggerWon
	}
	return TriggerNone
}

// Chase steps a pursuer toward the player on each axis independently. Each
// axis is probed from the position at the start of the tick, and a step never
// overshoots the player's coordinate on that axis.
func (s *Sprite) Chase(p Player, cs *collision.CollisionSystem, dtMs float64, t Tuning) {
	if s.Kind != KindPursuer || s.State != StateActive || dtMs <= 0 {
		return
	}
	step := t.PursuerSpeed * dtMs
	dx := approach(s.X, p.X, step)
	dy := approach(s.Y, p.Y, step)
	canX := cs.CanStepX(s.X, s.Y, dx, t.PursuerMargin)
	canY := cs.CanStepY(s.X, s.Y, dy, t.PursuerMargin)
	if canX {
		s.X += dx
	}
	if canY {
		s.Y += dy
	}
}

func approach(from, to, step float64) float64 {
	diff := to - from
	if math.Abs(diff) <= step {
		return diff
	}
	return math.Copysign(step, diff)
}

// DoorsUnlocked reports whether every key sprite has been collected. A level
// without keys has its doors unlocked from the start.
func DoorsUnlocked(sprites []Sprite) bool {
	for i := range sprites {
		if sprites[i].Kind == KindKey && sprites[i].State == StateActive {
			return false
		}
	}
	return true
}
