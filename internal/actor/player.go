package actor

import (
	"math"

	"rayframe/internal/collision"
	"rayframe/internal/mathutil"
	"rayframe/internal/world"
)

// Turn rotates the player by the held turn keys and keeps the angle in [0, 2π).
func (p *Player) Turn(intent Intent, dtMs float64, t Tuning) {
	if intent.TurnLeft {
		p.Angle -= t.RotSpeed * dtMs
	}
	if intent.TurnRight {
		p.Angle += t.RotSpeed * dtMs
	}
	p.Angle = mathutil.NormalizeAngle(p.Angle)
}

// Move translates the player along its heading. X and Y are gated separately
// against the tile the collision margin would enter, both probed from the
// position at the start of the tick, so a blocked axis slides along the wall.
func (p *Player) Move(cs *collision.CollisionSystem, intent Intent, dtMs float64, t Tuning) {
	dir := 0.0
	if intent.Forward {
		dir++
	}
	if intent.Backward {
		dir--
	}
	if dir == 0 {
		return
	}

	dx := math.Cos(p.Angle) * t.MoveSpeed * dtMs * dir
	dy := math.Sin(p.Angle) * t.MoveSpeed * dtMs * dir
	canX := cs.CanStepX(p.X, p.Y, dx, t.PlayerMargin)
	canY := cs.CanStepY(p.X, p.Y, dy, t.PlayerMargin)
	if canX {
		p.X += dx
	}
	if canY {
		p.Y += dy
	}
}

// Interact opens the door in front of the player when unlocked is true. It
// returns true only when a closed door actually opened.
func (p *Player) Interact(m *world.Map, cs *collision.CollisionSystem, unlocked bool, t Tuning) bool {
	if !unlocked {
		return false
	}
	tx, ty := cs.ProbeAhead(p.X, p.Y, math.Cos(p.Angle), math.Sin(p.Angle), t.InteractMargin)
	return m.OpenDoor(tx, ty)
}

// Tile returns the tile the player stands in.
func (p *Player) Tile(cs *collision.CollisionSystem) (int, int) {
	return cs.TileOf(p.X, p.Y)
}
