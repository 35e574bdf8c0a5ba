package collision

import (
	"rayframe/internal/mathutil"
)

// TileChecker interface for checking if tiles block movement
type TileChecker interface {
	IsTileBlocking(tileX, tileY int) bool
}

// CollisionSystem answers grid collision probes for every moving body. Bodies
// move one axis at a time and each axis is gated by the tile the body's margin
// would enter, so a blocked axis is dropped while the other still applies
// (wall sliding).
type CollisionSystem struct {
	tileChecker TileChecker
	tileSize    int
}

// NewCollisionSystem creates a new collision system
func NewCollisionSystem(tileChecker TileChecker, tileSize int) *CollisionSystem {
	return &CollisionSystem{
		tileChecker: tileChecker,
		tileSize:    tileSize,
	}
}

// TileOf converts a world position to tile coordinates.
func (cs *CollisionSystem) TileOf(x, y float64) (int, int) {
	return mathutil.FloorDiv(int(x), cs.tileSize), mathutil.FloorDiv(int(y), cs.tileSize)
}

// BlockedAt reports whether the tile under a world position blocks movement.
// Positions outside the grid are open, as the tile checker defines them.
func (cs *CollisionSystem) BlockedAt(x, y float64) bool {
	tx, ty := cs.TileOf(x, y)
	return cs.tileChecker.IsTileBlocking(tx, ty)
}

// CanStepX reports whether a body at (x, y) may move along X in direction dir
// (sign only). The probe looks margin units ahead on X in the body's current row.
func (cs *CollisionSystem) CanStepX(x, y, dir float64, margin int) bool {
	if dir == 0 {
		return true
	}
	probeX := mathutil.FloorDiv(int(x)+signed(dir, margin), cs.tileSize)
	_, row := cs.TileOf(x, y)
	return !cs.tileChecker.IsTileBlocking(probeX, row)
}

// CanStepY is the Y-axis counterpart of CanStepX.
func (cs *CollisionSystem) CanStepY(x, y, dir float64, margin int) bool {
	if dir == 0 {
		return true
	}
	col, _ := cs.TileOf(x, y)
	probeY := mathutil.FloorDiv(int(y)+signed(dir, margin), cs.tileSize)
	return !cs.tileChecker.IsTileBlocking(col, probeY)
}

// ProbeAhead returns the tile margin units ahead of (x, y) along the heading
// (cosA, sinA), each axis offset by the sign of its component. A zero
// component probes the positive side.
func (cs *CollisionSystem) ProbeAhead(x, y, cosA, sinA float64, margin int) (int, int) {
	return mathutil.FloorDiv(int(x)+signed(cosA, margin), cs.tileSize),
		mathutil.FloorDiv(int(y)+signed(sinA, margin), cs.tileSize)
}

// signed returns margin with the sign of dir; zero counts as positive.
func signed(dir float64, margin int) int {
	if dir < 0 {
		return -margin
	}
	return margin
}
