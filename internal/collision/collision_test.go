package collision

import "testing"

// mockTileChecker implements TileChecker for testing
type mockTileChecker struct {
	width, height int
	blockingTiles map[int]map[int]bool
}

func newMockTileChecker(width, height int) *mockTileChecker {
	return &mockTileChecker{
		width:         width,
		height:        height,
		blockingTiles: make(map[int]map[int]bool),
	}
}

func (m *mockTileChecker) IsTileBlocking(tileX, tileY int) bool {
	if tileX < 0 || tileX >= m.width || tileY < 0 || tileY >= m.height {
		return false
	}
	if row, ok := m.blockingTiles[tileY]; ok {
		return row[tileX]
	}
	return false
}

func (m *mockTileChecker) setBlocking(tileX, tileY int, blocking bool) {
	if m.blockingTiles[tileY] == nil {
		m.blockingTiles[tileY] = make(map[int]bool)
	}
	m.blockingTiles[tileY][tileX] = blocking
}

func TestCanStepAxisSeparated(t *testing.T) {
	checker := newMockTileChecker(8, 8)
	checker.setBlocking(2, 1, true) // wall east of tile (1,1)
	cs := NewCollisionSystem(checker, 64)

	// Body at x=120 sits in tile 1; with a margin of 20 the probe lands in tile 2.
	if cs.CanStepX(120, 96, 1, 20) {
		t.Error("moving east into the wall should be blocked")
	}
	if !cs.CanStepX(120, 96, -1, 20) {
		t.Error("moving west away from the wall should be allowed")
	}
	if !cs.CanStepY(120, 96, 1, 20) {
		t.Error("Y movement should be unaffected by the wall on X (wall sliding)")
	}
	if !cs.CanStepX(100, 96, 1, 20) {
		t.Error("probe at x=120 is still tile 1 and should pass")
	}
	if !cs.CanStepX(120, 96, 0, 20) {
		t.Error("no movement is never blocked")
	}
}

func TestProbesOutsideGridAreOpen(t *testing.T) {
	checker := newMockTileChecker(4, 4)
	cs := NewCollisionSystem(checker, 64)

	if !cs.CanStepX(5, 32, -1, 20) {
		t.Error("probe left of the grid should be open")
	}
	if tx, _ := cs.TileOf(-5, 0); tx != -1 {
		t.Errorf("TileOf(-5) = %d, want -1", tx)
	}
	if cs.BlockedAt(1000, 1000) {
		t.Error("position far outside the grid should not block")
	}
}

func TestProbeAhead(t *testing.T) {
	cs := NewCollisionSystem(newMockTileChecker(8, 8), 64)
	tests := []struct {
		name       string
		cos, sin   float64
		wantX, wnY int
	}{
		{"east", 1, 0, 5, 4},
		{"west", -1, 0, 4, 4},
		{"north", 0, -1, 5, 3},
		{"south-west", -0.7, 0.7, 4, 4},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// (300, 270) is tile (4, 4); 25 units ahead crosses the east edge at 320
			// and the north edge at 256.
			tx, ty := cs.ProbeAhead(300, 270, tc.cos, tc.sin, 25)
			if tx != tc.wantX || ty != tc.wnY {
				t.Errorf("ProbeAhead = (%d,%d), want (%d,%d)", tx, ty, tc.wantX, tc.wnY)
			}
		})
	}
}

func TestTriggerSquareIsStrict(t *testing.T) {
	box := NewTriggerSquare(100, 100, 30)
	if !box.Contains(Point{X: 129, Y: 71}) {
		t.Error("point inside the square should be contained")
	}
	if box.Contains(Point{X: 130, Y: 100}) {
		t.Error("point on the edge should not be contained")
	}
}
