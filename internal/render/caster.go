package render

import (
	"math"

	"rayframe/internal/actor"
	"rayframe/internal/config"
	"rayframe/internal/mathutil"
	"rayframe/internal/threading"
	"rayframe/internal/world"
)

// Side tells which family of grid lines a ray hit.
type Side int

const (
	SideHorizontal Side = iota // Hit a line of constant Y
	SideVertical               // Hit a line of constant X
)

// NoHitDistance is the distance reported when neither pass finds a wall.
const NoHitDistance = 1e6

// gridNudge pushes a probe across a grid line so it lands in the next cell.
const gridNudge = 0.0001

// Hit is the result of casting one screen column.
type Hit struct {
	Distance    float64 // Perpendicular, fisheye corrected
	RawDistance float64 // Euclidean distance to the hit point
	Texture     int     // Wall texture index, -1 when nothing was hit
	U           float64 // Texel column in [0, texture size)
	Side        Side
	RayAngle    float64
	HitX, HitY  float64
	TileX       int
	TileY       int
	Steps       [2]int // Grid probes taken per pass, indexed by Side
}

// Solid reports whether the ray reached a wall.
func (h Hit) Solid() bool {
	return h.Texture >= 0
}

// Caster marches rays through the tile grid, one per screen column.
type Caster struct {
	tileSize float64
	texSize  int
	maxDOF   int
	fov      float64
	step     float64
	columns  int
	pool     *threading.WorkerPool // nil casts serially
}

// NewCaster builds a caster from the engine configuration.
func NewCaster(cfg *config.Config) *Caster {
	return &Caster{
		tileSize: cfg.GetTileSize(),
		texSize:  cfg.Graphics.TextureSize,
		maxDOF:   cfg.World.MaxDepthOfField,
		fov:      cfg.GetCameraFOV(),
		step:     cfg.GetRayStep(),
		columns:  cfg.GetScreenWidth(),
	}
}

// RayAngle returns the normalised angle of the ray for a screen column. The
// sweep starts half a field of view left of the facing angle.
func (c *Caster) RayAngle(p actor.Player, column int) float64 {
	return mathutil.NormalizeAngle(p.Angle - c.fov/2 + float64(column)*c.step)
}

// SetWorkerPool makes Cast spread columns over pool. Columns are independent,
// so the result is identical to a serial cast.
func (c *Caster) SetWorkerPool(pool *threading.WorkerPool) {
	c.pool = pool
}

// Cast fills hits and depth for every column. Both slices must hold one
// entry per screen column.
func (c *Caster) Cast(m *world.Map, p actor.Player, hits []Hit, depth DepthBuffer) {
	n := min(c.columns, len(hits))
	castColumn := func(col int) {
		hit := c.CastRay(m, p, c.RayAngle(p, col))
		hits[col] = hit
		if col < len(depth) {
			depth[col] = hit.Distance
		}
	}

	if c.pool == nil {
		for col := 0; col < n; col++ {
			castColumn(col)
		}
		return
	}
	c.pool.ParallelFor(0, n, castColumn)
}

// CastRay finds the nearest wall along one ray. The horizontal and vertical
// grid lines are walked independently and the nearer hit wins; an exact tie
// goes to the horizontal hit.
func (c *Caster) CastRay(m *world.Map, p actor.Player, ra float64) Hit {
	h := c.horizontalPass(m, p, ra)
	v := c.verticalPass(m, p, ra)

	hit := h
	if v.RawDistance < h.RawDistance {
		hit = v
	}
	hit.Steps = [2]int{h.Steps[SideHorizontal], v.Steps[SideVertical]}
	hit.RayAngle = ra

	// Fisheye correction turns the radial distance into a distance from the
	// projection plane.
	if hit.Solid() {
		hit.Distance = hit.RawDistance * math.Cos(mathutil.NormalizeAngle(p.Angle-ra))
		hit.U = c.textureU(hit, ra)
	} else {
		hit.Distance = NoHitDistance
	}
	return hit
}

// horizontalPass walks the lines of constant Y. Rays exactly along the X axis
// never cross one and skip the pass.
func (c *Caster) horizontalPass(m *world.Map, p actor.Player, ra float64) Hit {
	miss := Hit{Texture: -1, Side: SideHorizontal, RawDistance: NoHitDistance}
	if ra == 0 || ra == math.Pi {
		return miss
	}

	aTan := -1 / math.Tan(ra)
	var rx, ry, xo, yo float64
	rowTop := math.Floor(p.Y/c.tileSize) * c.tileSize
	if ra > math.Pi { // Looking towards -Y
		ry = rowTop - gridNudge
		yo = -c.tileSize
	} else {
		ry = rowTop + c.tileSize
		yo = c.tileSize
	}
	rx = (p.Y-ry)*aTan + p.X
	xo = -yo * aTan

	return c.march(m, p, rx, ry, xo, yo, SideHorizontal)
}

// verticalPass walks the lines of constant X. Rays exactly along the Y axis
// never cross one and skip the pass. Rays along the X axis (0 and π) do run
// it: the horizontal pass is the only one they skip, so a player facing a
// wall straight east or west still sees it. Skipping both would leave those
// columns without a wall.
func (c *Caster) verticalPass(m *world.Map, p actor.Player, ra float64) Hit {
	miss := Hit{Texture: -1, Side: SideVertical, RawDistance: NoHitDistance}
	if ra == math.Pi/2 || ra == 3*math.Pi/2 {
		return miss
	}

	nTan := -math.Tan(ra)
	var rx, ry, xo, yo float64
	colLeft := math.Floor(p.X/c.tileSize) * c.tileSize
	if ra > math.Pi/2 && ra < 3*math.Pi/2 { // Looking towards -X
		rx = colLeft - gridNudge
		xo = -c.tileSize
	} else {
		rx = colLeft + c.tileSize
		xo = c.tileSize
	}
	ry = (p.X-rx)*nTan + p.Y
	yo = -xo * nTan

	return c.march(m, p, rx, ry, xo, yo, SideVertical)
}

// march steps along one family of grid lines for at most maxDOF probes.
// Probes outside the grid are open space.
func (c *Caster) march(m *world.Map, p actor.Player, rx, ry, xo, yo float64, side Side) Hit {
	hit := Hit{Texture: -1, Side: side, RawDistance: NoHitDistance}
	for dof := 0; dof < c.maxDOF; dof++ {
		hit.Steps[side]++
		mx := int(math.Floor(rx / c.tileSize))
		my := int(math.Floor(ry / c.tileSize))
		if tile := m.TileAt(mx, my); tile.Blocks() {
			hit.Texture = tile.Texture
			hit.HitX, hit.HitY = rx, ry
			hit.TileX, hit.TileY = mx, my
			hit.RawDistance = math.Hypot(rx-p.X, ry-p.Y)
			return hit
		}
		rx += xo
		ry += yo
	}
	return hit
}

// textureU maps the hit coordinate along the wall to a texel column. Faces
// seen from the +Y side and from the -X side are mirrored so a texture reads
// the same way on every face of a block.
func (c *Caster) textureU(hit Hit, ra float64) float64 {
	ratio := float64(c.texSize) / c.tileSize
	size := float64(c.texSize)

	var u float64
	if hit.Side == SideHorizontal {
		u = math.Mod(hit.HitX*ratio, size)
		if u < 0 {
			u += size
		}
		if ra < math.Pi {
			u = size - 1 - u
		}
	} else {
		u = math.Mod(hit.HitY*ratio, size)
		if u < 0 {
			u += size
		}
		if ra > math.Pi/2 && ra < 3*math.Pi/2 {
			u = size - 1 - u
		}
	}
	return mathutil.Clamp(u, 0, size-1)
}
