package texture

import (
	"errors"
	"fmt"
)

var (
	ErrAtlasSize = errors.New("atlas size mismatch")
	ErrImageSize = errors.New("image size mismatch")
)

// Atlas is a strip of square RGB tiles stored back to back. Texel (u, v) of
// tile t lives at byte offset (t*size*size + v*size + u) * 3.
type Atlas struct {
	size  int
	count int
	pix   []byte
}

// NewAtlas wraps a flat RGB texel array. size is the tile edge in texels and
// must be a power of two so lookups can wrap with a mask.
func NewAtlas(pix []byte, size int) (*Atlas, error) {
	if size <= 0 || size&(size-1) != 0 {
		return nil, fmt.Errorf("%w: tile size %d is not a power of two", ErrAtlasSize, size)
	}
	tileBytes := size * size * 3
	if len(pix) == 0 || len(pix)%tileBytes != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a whole number of %dx%d tiles", ErrAtlasSize, len(pix), size, size)
	}
	return &Atlas{size: size, count: len(pix) / tileBytes, pix: pix}, nil
}

// Size returns the tile edge in texels.
func (a *Atlas) Size() int { return a.size }

// Count returns the number of tiles.
func (a *Atlas) Count() int { return a.count }

// At samples tile t at (u, v). Coordinates wrap to the tile; a tile index
// outside the atlas samples black.
func (a *Atlas) At(t, u, v int) (r, g, b uint8) {
	if t < 0 || t >= a.count {
		return 0, 0, 0
	}
	mask := a.size - 1
	i := (t*a.size*a.size + (v&mask)*a.size + (u & mask)) * 3
	return a.pix[i], a.pix[i+1], a.pix[i+2]
}

// Image is a flat RGB picture used for the sky and the fullscreen screens.
type Image struct {
	W, H int
	pix  []byte
}

// NewImage wraps w*h RGB texels.
func NewImage(w, h int, pix []byte) (*Image, error) {
	if w <= 0 || h <= 0 || len(pix) != w*h*3 {
		return nil, fmt.Errorf("%w: %d bytes for %dx%d", ErrImageSize, len(pix), w, h)
	}
	return &Image{W: w, H: h, pix: pix}, nil
}

// At returns the texel at (x, y), black outside the image.
func (im *Image) At(x, y int) (r, g, b uint8) {
	if x < 0 || y < 0 || x >= im.W || y >= im.H {
		return 0, 0, 0
	}
	i := (y*im.W + x) * 3
	return im.pix[i], im.pix[i+1], im.pix[i+2]
}
