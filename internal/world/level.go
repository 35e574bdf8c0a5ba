package world

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// PlayerStart is the authored player pose, restored on every level reset.
type PlayerStart struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Angle float64 `yaml:"angle"` // Radians
}

// SpriteSpawn describes one authored actor. Kind is resolved by the actor
// package ("key", "prop", "pursuer", "goal").
type SpriteSpawn struct {
	Kind    string  `yaml:"kind"`
	Texture int     `yaml:"texture"`
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	Z       float64 `yaml:"z"`
	Hidden  bool    `yaml:"hidden"`
}

// levelFile mirrors the YAML layout of a level on disk.
type levelFile struct {
	Name     string        `yaml:"name"`
	Width    int           `yaml:"width"`
	Height   int           `yaml:"height"`
	DoorID   int           `yaml:"door_id"`
	WinTile  []int         `yaml:"win_tile"`
	Player   PlayerStart   `yaml:"player"`
	Walls    []int         `yaml:"walls"`
	Floors   []int         `yaml:"floors"`
	Ceilings []int         `yaml:"ceilings"`
	Sprites  []SpriteSpawn `yaml:"sprites"`
}

// Level is a validated, authored level. Map holds the initial wall state and
// is never mutated; the engine plays on a clone.
type Level struct {
	Name    string
	Map     *Map
	Player  PlayerStart
	Sprites []SpriteSpawn
	WinTile *[2]int // nil when the level has no win tile
}

// LoadLevel reads and validates a level file. tileSize is the edge length of
// one grid cell in world units, the unit the file authors positions in.
func LoadLevel(path string, tileSize int) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level file %s: %w", path, err)
	}
	level, err := ParseLevel(data, tileSize)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", path, err)
	}
	return level, nil
}

// ParseLevel decodes and validates level YAML.
func ParseLevel(data []byte, tileSize int) (*Level, error) {
	if tileSize <= 0 {
		return nil, fmt.Errorf("%w: tile size %d", ErrBadDimensions, tileSize)
	}
	var lf levelFile
	if err := yaml.Unmarshal(data, &lf); err != nil {
		return nil, fmt.Errorf("failed to parse level: %w", err)
	}

	m, err := NewMap(lf.Width, lf.Height, lf.DoorID, lf.Walls, lf.Floors, lf.Ceilings)
	if err != nil {
		return nil, err
	}

	level := &Level{
		Name:    lf.Name,
		Map:     m,
		Player:  lf.Player,
		Sprites: lf.Sprites,
	}

	sx, sy := int(lf.Player.X)/tileSize, int(lf.Player.Y)/tileSize
	if lf.Player.X < 0 || lf.Player.Y < 0 || !m.InBounds(sx, sy) || m.IsSolid(sx, sy) {
		return nil, fmt.Errorf("%w: (%.1f, %.1f)", ErrStartBlocked, lf.Player.X, lf.Player.Y)
	}

	if len(lf.WinTile) > 0 {
		if len(lf.WinTile) != 2 || !m.InBounds(lf.WinTile[0], lf.WinTile[1]) {
			return nil, fmt.Errorf("win_tile %v is not a tile inside the map", lf.WinTile)
		}
		level.WinTile = &[2]int{lf.WinTile[0], lf.WinTile[1]}
	}

	for i, s := range lf.Sprites {
		if s.Texture < 0 {
			return nil, fmt.Errorf("%w: sprite %d texture %d", ErrNegativeTile, i, s.Texture)
		}
	}

	return level, nil
}
