package world

// TileKind discriminates what occupies a wall cell.
type TileKind uint8

const (
	TileEmpty TileKind = iota // Walkable, rays pass through
	TileSolid                 // Static wall
	TileDoor                  // Wall that can be opened at runtime
)

// Tile is one cell of the wall grid. Texture indexes the wall atlas and is
// meaningless for empty cells.
type Tile struct {
	Kind    TileKind
	Texture int
	Open    bool // Doors only
}

// Empty returns an open floor cell.
func Empty() Tile {
	return Tile{Kind: TileEmpty}
}

// Solid returns a wall cell drawn with the given texture.
func Solid(texture int) Tile {
	return Tile{Kind: TileSolid, Texture: texture}
}

// Door returns a door cell drawn with the given texture while closed.
func Door(texture int, open bool) Tile {
	return Tile{Kind: TileDoor, Texture: texture, Open: open}
}

// Blocks reports whether the cell stops rays and movement.
func (t Tile) Blocks() bool {
	switch t.Kind {
	case TileSolid:
		return true
	case TileDoor:
		return !t.Open
	default:
		return false
	}
}

// DecodeTile converts the flat map encoding into a Tile: 0 is empty, doorID
// is a closed door and any other positive value v is a wall with texture v-1.
func DecodeTile(v, doorID int) Tile {
	switch {
	case v <= 0:
		return Empty()
	case v == doorID:
		return Door(v-1, false)
	default:
		return Solid(v - 1)
	}
}

// Encode converts the Tile back into the flat map encoding. Open doors encode
// as 0, closed doors as doorID.
func (t Tile) Encode(doorID int) int {
	switch t.Kind {
	case TileSolid:
		return t.Texture + 1
	case TileDoor:
		if t.Open {
			return 0
		}
		return doorID
	default:
		return 0
	}
}
