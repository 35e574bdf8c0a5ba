package world

import "fmt"

// Map is the tile grid the engine renders and collides against. Cell (x, y)
// lives at index y*Width+x in every grid. The wall grid is mutable (doors),
// floor and ceiling grids are fixed after load.
type Map struct {
	Width  int
	Height int
	DoorID int // Flat wall value reserved for doors

	walls    []Tile
	floors   []int
	ceilings []int
}

// NewMap decodes three flat row-major grids into a Map. Every grid must hold
// exactly width*height cells.
func NewMap(width, height, doorID int, walls, floors, ceilings []int) (*Map, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadDimensions, width, height)
	}
	if doorID <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrDoorID, doorID)
	}

	cells := width * height
	grids := []struct {
		name string
		data []int
	}{
		{"walls", walls},
		{"floors", floors},
		{"ceilings", ceilings},
	}
	for _, g := range grids {
		if len(g.data) != cells {
			return nil, fmt.Errorf("%w: %s has %d cells, want %d", ErrGridSize, g.name, len(g.data), cells)
		}
		for i, v := range g.data {
			if v < 0 {
				return nil, fmt.Errorf("%w: %s[%d] = %d", ErrNegativeTile, g.name, i, v)
			}
		}
	}

	m := &Map{
		Width:    width,
		Height:   height,
		DoorID:   doorID,
		walls:    make([]Tile, cells),
		floors:   append([]int(nil), floors...),
		ceilings: append([]int(nil), ceilings...),
	}
	for i, v := range walls {
		m.walls[i] = DecodeTile(v, doorID)
	}
	return m, nil
}

// InBounds reports whether tile (x, y) is part of the grid.
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// TileAt returns the wall cell at (x, y). Cells outside the grid are empty.
func (m *Map) TileAt(x, y int) Tile {
	if !m.InBounds(x, y) {
		return Empty()
	}
	return m.walls[y*m.Width+x]
}

// WallValue returns the flat encoding of the wall cell at (x, y).
func (m *Map) WallValue(x, y int) int {
	return m.TileAt(x, y).Encode(m.DoorID)
}

// IsSolid reports whether (x, y) blocks rays and movement. Probes outside the
// grid are open space.
func (m *Map) IsSolid(x, y int) bool {
	return m.TileAt(x, y).Blocks()
}

// IsTileBlocking implements collision.TileChecker.
func (m *Map) IsTileBlocking(tileX, tileY int) bool {
	return m.IsSolid(tileX, tileY)
}

// FloorAt returns the floor texture index at (x, y), 0 outside the grid.
func (m *Map) FloorAt(x, y int) int {
	if !m.InBounds(x, y) {
		return 0
	}
	return m.floors[y*m.Width+x]
}

// CeilingAt returns the ceiling texture index at (x, y). 0 means open sky.
func (m *Map) CeilingAt(x, y int) int {
	if !m.InBounds(x, y) {
		return 0
	}
	return m.ceilings[y*m.Width+x]
}

// SetTile replaces the wall cell at (x, y). Out of range writes are ignored.
func (m *Map) SetTile(x, y int, t Tile) {
	if !m.InBounds(x, y) {
		return
	}
	m.walls[y*m.Width+x] = t
}

// OpenDoor opens the closed door at (x, y) and reports whether anything changed.
// Opening an open door or a non-door cell is a no-op.
func (m *Map) OpenDoor(x, y int) bool {
	t := m.TileAt(x, y)
	if t.Kind != TileDoor || t.Open {
		return false
	}
	t.Open = true
	m.walls[y*m.Width+x] = t
	return true
}

// Walls returns the wall grid in its flat encoding.
func (m *Map) Walls() []int {
	out := make([]int, len(m.walls))
	for i, t := range m.walls {
		out[i] = t.Encode(m.DoorID)
	}
	return out
}

// Clone returns a deep copy of the map.
func (m *Map) Clone() *Map {
	return &Map{
		Width:    m.Width,
		Height:   m.Height,
		DoorID:   m.DoorID,
		walls:    append([]Tile(nil), m.walls...),
		floors:   append([]int(nil), m.floors...),
		ceilings: append([]int(nil), m.ceilings...),
	}
}

// RestoreWalls copies the wall grid of src into m. Both maps must have been
// cloned from the same level.
func (m *Map) RestoreWalls(src *Map) {
	copy(m.walls, src.walls)
}

// ValidateTextures checks that every wall texture is below wallTextures and
// every floor and ceiling index is below flatTextures.
func (m *Map) ValidateTextures(wallTextures, flatTextures int) error {
	for i, t := range m.walls {
		if t.Kind != TileEmpty && t.Texture >= wallTextures {
			return fmt.Errorf("%w: wall (%d,%d) uses texture %d of %d", ErrTextureRange, i%m.Width, i/m.Width, t.Texture, wallTextures)
		}
	}
	for i := range m.floors {
		if m.floors[i] >= flatTextures {
			return fmt.Errorf("%w: floor (%d,%d) uses texture %d of %d", ErrTextureRange, i%m.Width, i/m.Width, m.floors[i], flatTextures)
		}
		if m.ceilings[i] >= flatTextures {
			return fmt.Errorf("%w: ceiling (%d,%d) uses texture %d of %d", ErrTextureRange, i%m.Width, i/m.Width, m.ceilings[i], flatTextures)
		}
	}
	return nil
}
