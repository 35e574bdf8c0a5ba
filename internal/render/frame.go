package render

import "math"

// Frame is a caller-owned RGBA pixel buffer, row-major, 4 bytes per pixel.
type Frame struct {
	W, H int
	Pix  []byte
}

// NewFrame allocates a cleared w x h frame.
func NewFrame(w, h int) *Frame {
	return &Frame{W: w, H: h, Pix: make([]byte, w*h*4)}
}

// DrawPixel writes an opaque pixel. Writes outside the frame are dropped.
func (f *Frame) DrawPixel(r, g, b uint8, x, y int) {
	if x < 0 || y < 0 || x >= f.W || y >= f.H {
		return
	}
	i := (y*f.W + x) * 4
	f.Pix[i] = r
	f.Pix[i+1] = g
	f.Pix[i+2] = b
	f.Pix[i+3] = 255
}

// Clear paints the whole frame opaque black.
func (f *Frame) Clear() {
	for i := 0; i < len(f.Pix); i += 4 {
		f.Pix[i], f.Pix[i+1], f.Pix[i+2], f.Pix[i+3] = 0, 0, 0, 255
	}
}

// RGBA returns the pixel at (x, y).
func (f *Frame) RGBA(x, y int) (r, g, b, a uint8) {
	i := (y*f.W + x) * 4
	return f.Pix[i], f.Pix[i+1], f.Pix[i+2], f.Pix[i+3]
}

// DepthBuffer holds one wall distance per screen column. It is rewritten in
// full by every cast before sprites read it.
type DepthBuffer []float64

// NewDepthBuffer creates a buffer for w columns, initialised to the far plane.
func NewDepthBuffer(w int) DepthBuffer {
	d := make(DepthBuffer, w)
	d.Reset()
	return d
}

// Reset pushes every column to the far plane.
func (d DepthBuffer) Reset() {
	for i := range d {
		d[i] = math.Inf(1)
	}
}

func shade(c uint8, f float64) uint8 {
	return uint8(float64(c) * f)
}
