package render

import (
	"math"

	"rayframe/internal/actor"
	"rayframe/internal/mathutil"
	"rayframe/internal/world"
)

const minDistance = 1e-6

// WallSpan is the projected wall band of one column.
type WallSpan struct {
	Height   int     // Visible rows, clipped to the screen
	Offset   int     // First screen row of the band
	TexStart float64 // V coordinate of the first visible row
	TexStep  float64 // V advance per row
}

// ProjectWall computes the wall band for a perpendicular distance. A band
// taller than the screen is clipped symmetrically and sampling starts part way
// down the texture so the visible rows keep their proportions.
func (r *Renderer) ProjectWall(distance float64) WallSpan {
	if distance < minDistance {
		distance = minDistance
	}
	lineH := r.tileSize * float64(r.height) / distance
	step := float64(r.texSize) / lineH
	texOffset := 0.0
	if lineH > float64(r.height) {
		texOffset = (lineH - float64(r.height)) / 2
		lineH = float64(r.height)
	}
	h := int(lineH)
	return WallSpan{
		Height:   h,
		Offset:   r.height/2 - h/2,
		TexStart: texOffset * step,
		TexStep:  step,
	}
}

// drawColumn paints the wall band of one column, then the floor below it and
// the ceiling mirrored above it.
func (r *Renderer) drawColumn(f *Frame, m *world.Map, p actor.Player, col int, hit Hit) {
	span := r.ProjectWall(hit.Distance)

	if hit.Solid() {
		s := 1.0
		if hit.Side == SideVertical {
			s = r.verticalShade
		}
		u := int(hit.U)
		v := span.TexStart
		for y := 0; y < span.Height; y++ {
			cr, cg, cb := r.assets.Tiles.At(hit.Texture, u, int(v))
			f.DrawPixel(shade(cr, s), shade(cg, s), shade(cb, s), col, span.Offset+y)
			v += span.TexStep
		}
	}

	r.drawFlats(f, m, p, col, hit.RayAngle, span.Offset+span.Height)
}

// drawFlats projects each screen row below the wall onto the floor plane and
// reuses the same world point for the ceiling row mirrored about the horizon.
// A ceiling index of 0 leaves the sky visible.
func (r *Renderer) drawFlats(f *Frame, m *world.Map, p actor.Player, col int, ra float64, fromRow int) {
	ratio := float64(r.texSize) / r.tileSize
	fix := math.Cos(mathutil.NormalizeAngle(p.Angle - ra))
	cosRa, sinRa := math.Cos(ra), math.Sin(ra)
	size := float64(r.texSize)

	for y := fromRow; y < r.height; y++ {
		dy := float64(y) - float64(r.height)/2
		if dy <= 0 || fix <= 0 {
			continue
		}
		tx := p.X*ratio + cosRa*r.floorK/dy/fix
		ty := p.Y*ratio + sinRa*r.floorK/dy/fix
		mx := int(math.Floor(tx / size))
		my := int(math.Floor(ty / size))
		u, v := int(math.Floor(tx)), int(math.Floor(ty))

		floor := m.FloorAt(mx, my)
		cr, cg, cb := r.assets.Tiles.At(floor, u, v)
		f.DrawPixel(shade(cr, r.floorShade), shade(cg, r.floorShade), shade(cb, r.floorShade), col, y)

		if ceiling := m.CeilingAt(mx, my); ceiling > 0 {
			cr, cg, cb = r.assets.Tiles.At(ceiling, u, v)
			f.DrawPixel(cr, cg, cb, col, r.height-1-y)
		}
	}
}

// drawSky scrolls the panorama with the view angle, two columns per degree.
func (r *Renderer) drawSky(f *Frame, p actor.Player) {
	sky := r.assets.Sky
	if sky == nil {
		return
	}
	shift := int(mathutil.Degrees(p.Angle) * 2)
	for y := 0; y < r.skyHeight && y < sky.H; y++ {
		for x := 0; x < r.width; x++ {
			cr, cg, cb := sky.At(mathutil.WrapInt(shift+x, sky.W), y)
			f.DrawPixel(cr, cg, cb, x, y)
		}
	}
}
