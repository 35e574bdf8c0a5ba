package collision

// BoundingBox represents a rectangular trigger or collision boundary
type BoundingBox struct {
	X      float64 // Center X coordinate
	Y      float64 // Center Y coordinate
	Width  float64 // Total width
	Height float64 // Total height
}

// NewBoundingBox creates a new bounding box centered at the given position
func NewBoundingBox(x, y, width, height float64) *BoundingBox {
	return &BoundingBox{
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
	}
}

// NewTriggerSquare creates a square box reaching radius units from its center on each axis.
func NewTriggerSquare(x, y, radius float64) *BoundingBox {
	return NewBoundingBox(x, y, radius*2, radius*2)
}

// GetBounds returns the min/max coordinates of the bounding box
func (bb *BoundingBox) GetBounds() (minX, minY, maxX, maxY float64) {
	halfWidth := bb.Width / 2
	halfHeight := bb.Height / 2

	minX = bb.X - halfWidth
	maxX = bb.X + halfWidth
	minY = bb.Y - halfHeight
	maxY = bb.Y + halfHeight

	return minX, minY, maxX, maxY
}

// Contains checks if a point lies strictly inside the bounding box. Points on
// the edge are outside.
func (bb *BoundingBox) Contains(point Point) bool {
	minX, minY, maxX, maxY := bb.GetBounds()
	return point.X > minX && point.X < maxX && point.Y > minY && point.Y < maxY
}

// Point represents a 2D coordinate
type Point struct {
	X, Y float64
}
