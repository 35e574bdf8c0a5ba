package render

import (
	"rayframe/internal/actor"
	"rayframe/internal/config"
	"rayframe/internal/texture"
	"rayframe/internal/world"
)

// Renderer composes the first person view into a Frame: sky, then walls with
// their floor and ceiling, then sprites tested against the depth buffer.
type Renderer struct {
	caster *Caster
	assets *texture.Assets

	width, height int
	tileSize      float64
	texSize       int
	verticalShade float64
	floorShade    float64
	floorK        float64 // Texel distance of the floor row one pixel below the horizon
	skyHeight     int

	spriteFocal float64
	spriteScale float64
	chromaKey   texture.RGB

	hits  []Hit
	depth DepthBuffer
	order []int // Sprite draw order scratch
}

// NewRenderer creates a renderer for the configured logical resolution.
func NewRenderer(cfg *config.Config, assets *texture.Assets) *Renderer {
	r, g, b := cfg.GetChromaKey()
	w := cfg.GetScreenWidth()
	return &Renderer{
		caster:        NewCaster(cfg),
		assets:        assets,
		width:         w,
		height:        cfg.GetScreenHeight(),
		tileSize:      cfg.GetTileSize(),
		texSize:       cfg.Graphics.TextureSize,
		verticalShade: cfg.Graphics.VerticalShade,
		floorShade:    cfg.Graphics.FloorShade,
		floorK:        cfg.Camera.FloorProjection * float64(cfg.Graphics.TextureSize) / 4,
		skyHeight:     cfg.Graphics.SkyHeight,
		spriteFocal:   cfg.Camera.SpriteFocalLength,
		spriteScale:   cfg.Camera.SpriteScale,
		chromaKey:     texture.RGB{r, g, b},
		hits:          make([]Hit, w),
		depth:         NewDepthBuffer(w),
	}
}

// Caster returns the ray caster the renderer uses.
func (r *Renderer) Caster() *Caster { return r.caster }

// Hits returns the per-column hits of the last cast.
func (r *Renderer) Hits() []Hit { return r.hits }

// Depth returns the depth buffer of the last cast.
func (r *Renderer) Depth() DepthBuffer { return r.depth }

// CastWalls runs the ray caster for every column and fills the depth buffer.
func (r *Renderer) CastWalls(m *world.Map, p actor.Player) {
	r.depth.Reset()
	r.caster.Cast(m, p, r.hits, r.depth)
}

// DrawWorld paints the sky and every wall column from the last cast.
func (r *Renderer) DrawWorld(f *Frame, m *world.Map, p actor.Player) {
	f.Clear()
	r.drawSky(f, p)
	for col := range r.hits {
		r.drawColumn(f, m, p, col, r.hits[col])
	}
}

// RenderScene runs the full pipeline for one frame.
func (r *Renderer) RenderScene(f *Frame, m *world.Map, p actor.Player, sprites []actor.Sprite) {
	r.CastWalls(m, p)
	r.DrawWorld(f, m, p)
	r.DrawSprites(f, p, sprites)
}

// RenderScreen draws a fullscreen image with every channel scaled by fade.
func (r *Renderer) RenderScreen(f *Frame, img *texture.Image, fade float64) {
	if fade < 0 {
		fade = 0
	}
	if fade > 1 {
		fade = 1
	}
	for y := 0; y < f.H; y++ {
		for x := 0; x < f.W; x++ {
			cr, cg, cb := img.At(x, y)
			f.DrawPixel(shade(cr, fade), shade(cg, fade), shade(cb, fade), x, y)
		}
	}
}
