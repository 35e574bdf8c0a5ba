package world

import "errors"

// Load-time map errors. Constructors wrap these so callers can match them
// with errors.Is.
var (
	ErrBadDimensions = errors.New("map dimensions must be positive")
	ErrGridSize      = errors.New("grid size does not match width*height")
	ErrDoorID        = errors.New("door id must be a positive wall value")
	ErrNegativeTile  = errors.New("tile values must not be negative")
	ErrTextureRange  = errors.New("tile references a texture outside the atlas")
	ErrStartBlocked  = errors.New("player start is outside the map or inside a wall")
)
