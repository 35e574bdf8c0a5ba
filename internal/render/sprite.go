package render

import (
	"math"
	"sort"

	"rayframe/internal/actor"
	"rayframe/internal/mathutil"
	"rayframe/internal/texture"
)

// Projection is a sprite transformed into screen space.
type Projection struct {
	ScreenX float64 // Horizontal centre of the billboard
	ScreenY float64 // Row of the billboard's bottom edge
	Scale   float64 // Edge length in pixels, clamped to [0, screen width]
	Depth   float64 // Forward distance in camera space
}

// Visible reports whether the projection has any area in front of the camera.
func (pr Projection) Visible() bool {
	return pr.Depth > 0 && pr.Scale > 0
}

// ProjectSprite rotates a sprite into camera space and projects it. Sprites
// at or behind the camera plane get a scale of 0.
func (r *Renderer) ProjectSprite(s *actor.Sprite, p actor.Player) Projection {
	dx := s.X - p.X
	dy := s.Y - p.Y
	cs, sn := math.Cos(p.Angle), math.Sin(p.Angle)

	lateral := dy*cs - dx*sn
	forward := dx*cs + dy*sn
	if forward <= 0 {
		return Projection{Depth: forward}
	}

	scale := r.spriteScale * float64(r.height) / forward
	if scale < 0 {
		scale = 0
	}
	if scale > float64(r.width) {
		scale = float64(r.width)
	}

	return Projection{
		ScreenX: lateral*r.spriteFocal/forward + float64(r.width)/2,
		ScreenY: s.Z*r.spriteFocal/forward + float64(r.height)/2,
		Scale:   scale,
		Depth:   forward,
	}
}

// DrawSprites draws every visible sprite, farthest first, against the depth
// buffer of the last cast.
func (r *Renderer) DrawSprites(f *Frame, p actor.Player, sprites []actor.Sprite) {
	r.order = r.order[:0]
	projections := make([]Projection, len(sprites))
	for i := range sprites {
		if !sprites[i].Visible() {
			continue
		}
		projections[i] = r.ProjectSprite(&sprites[i], p)
		if projections[i].Visible() {
			r.order = append(r.order, i)
		}
	}
	sort.SliceStable(r.order, func(a, b int) bool {
		return projections[r.order[a]].Depth > projections[r.order[b]].Depth
	})
	for _, i := range r.order {
		r.drawSprite(f, &sprites[i], projections[i])
	}
}

// drawSprite draws one billboard. A column is written only where the sprite
// is nearer than the wall recorded in the depth buffer, and texels matching
// the chroma key are skipped.
func (r *Renderer) drawSprite(f *Frame, s *actor.Sprite, pr Projection) {
	size := float64(r.texSize)
	uStep := (size - 0.5) / pr.Scale
	vStep := size / pr.Scale

	startX := int(pr.ScreenX - pr.Scale/2)
	endX := int(pr.ScreenX + pr.Scale/2)
	rows := int(pr.Scale)
	bottom := int(pr.ScreenY)

	// Columns left of the screen still advance u
	u := 0.0
	if startX < 0 {
		u = float64(-startX) * uStep
	}
	for x := mathutil.IntMax(startX, 0); x < mathutil.IntMin(endX, r.width); x, u = x+1, u+uStep {
		if r.depth[x] <= pr.Depth {
			continue
		}
		v := size - 1
		for y := 0; y < rows; y++ {
			drawY := bottom - y
			cr, cg, cb := r.assets.Sprites.At(s.Texture, int(u), int(v))
			v = math.Max(v-vStep, 0)
			if drawY < 0 || drawY >= r.height {
				continue
			}
			if (texture.RGB{cr, cg, cb}) == r.chromaKey {
				continue
			}
			f.DrawPixel(cr, cg, cb, x, drawY)
		}
	}
}
