package game

import (
	"rayframe/internal/actor"
	"rayframe/internal/mathutil"
	"rayframe/internal/world"
)

// WorldState is everything the simulation mutates. Each frame phase gets it
// in turn: movement first, then the cast, then rendering.
type WorldState struct {
	Map     *world.Map
	Player  actor.Player
	Sprites []actor.Sprite
}

// reset restores the authored layout of the level: walls, player pose and
// every sprite.
func (ws *WorldState) reset(level *world.Level, sprites []actor.Sprite) {
	ws.Map.RestoreWalls(level.Map)
	ws.Player = actor.Player{
		X:     level.Player.X,
		Y:     level.Player.Y,
		Angle: mathutil.NormalizeAngle(level.Player.Angle),
	}
	ws.Sprites = append(ws.Sprites[:0], sprites...)
}
