package main

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"os"
	"path/filepath"
	"sort"

	"rayframe/internal/actor"
	"rayframe/internal/config"
	"rayframe/internal/mathutil"
	"rayframe/internal/render"
	"rayframe/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	windowWidth  = 1200
	windowHeight = 800
	sidebarWidth = 300
)

type levelInfo struct {
	Path  string
	Level *world.Level
	Err   error
}

// layer selects which of the three grids the panel colours.
type layer int

const (
	layerWalls layer = iota
	layerFloors
	layerCeilings
	layerCount
)

func (l layer) String() string {
	switch l {
	case layerFloors:
		return "floors"
	case layerCeilings:
		return "ceilings"
	default:
		return "walls"
	}
}

type viewer struct {
	levels     []levelInfo
	levelIndex int
	layer      layer
	showRays   bool
	viewAngle  float64 // Preview heading, starts at the authored angle
	cfg        *config.Config
	caster     *render.Caster
	lastErr    string
}

func main() {
	ensureRuntimeCWD()

	cfg := config.MustLoadConfig("config.yaml")

	levels, err := loadLevels(cfg)
	if err != nil {
		log.Printf("Warning: %v", err)
	}

	v := &viewer{
		levels:   levels,
		showRays: true,
		cfg:      cfg,
		caster:   render.NewCaster(cfg),
	}
	if len(levels) == 0 {
		v.lastErr = "no levels loaded"
	}
	v.resetView()

	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle(cfg.Display.WindowTitle + " Level Viewer")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(v); err != nil && err != ebiten.Termination {
		log.Fatal(err)
	}
}

func (v *viewer) current() *levelInfo {
	if len(v.levels) == 0 {
		return nil
	}
	return &v.levels[v.levelIndex]
}

func (v *viewer) resetView() {
	if l := v.current(); l != nil && l.Level != nil {
		v.viewAngle = l.Level.Player.Angle
	}
}

func (v *viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		v.layer = (v.layer + 1) % layerCount
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		v.showRays = !v.showRays
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyRight) || inpututil.IsKeyJustPressed(ebiten.KeyD) {
		if len(v.levels) > 0 {
			v.levelIndex = (v.levelIndex + 1) % len(v.levels)
			v.resetView()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) || inpututil.IsKeyJustPressed(ebiten.KeyA) {
		if len(v.levels) > 0 {
			v.levelIndex--
			if v.levelIndex < 0 {
				v.levelIndex = len(v.levels) - 1
			}
			v.resetView()
		}
	}

	// Q/E turn the preview camera at the configured rotation speed
	const frameMs = 1000.0 / 60
	if ebiten.IsKeyPressed(ebiten.KeyQ) {
		v.viewAngle = mathutil.NormalizeAngle(v.viewAngle + v.cfg.GetRotSpeed()*frameMs)
	}
	if ebiten.IsKeyPressed(ebiten.KeyE) {
		v.viewAngle = mathutil.NormalizeAngle(v.viewAngle - v.cfg.GetRotSpeed()*frameMs)
	}
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{15, 15, 22, 255})

	l := v.current()
	if l == nil {
		ebitenutil.DebugPrintAt(screen, v.lastErr, 16, 16)
		return
	}
	if l.Err != nil {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("level %s failed to load: %v", l.Path, l.Err), 16, 16)
		return
	}

	screenW, screenH := screen.Bounds().Dx(), screen.Bounds().Dy()

	padding := 16
	mapAreaW := screenW - sidebarWidth - padding*3
	mapAreaH := screenH - padding*2
	mapAreaX := padding
	mapAreaY := padding
	sidebarX := mapAreaX + mapAreaW + padding

	v.drawMapPanel(screen, l, mapAreaX, mapAreaY, mapAreaW, mapAreaH)
	v.drawSidebar(screen, l, sidebarX, padding, sidebarWidth, mapAreaH)
}

func (v *viewer) Layout(_, _ int) (int, int) {
	return windowWidth, windowHeight
}

func (v *viewer) drawMapPanel(screen *ebiten.Image, l *levelInfo, x, y, w, h int) {
	drawFilledRect(screen, x, y, w, h, color.RGBA{20, 20, 35, 255})
	drawRectBorder(screen, x, y, w, h, 2, color.RGBA{70, 70, 90, 255})

	m := l.Level.Map
	cell := w / m.Width
	if alt := h / m.Height; alt < cell {
		cell = alt
	}
	if cell < 2 {
		cell = 2
	}

	originX := x + (w-m.Width*cell)/2
	originY := y + (h-m.Height*cell)/2

	for ty := 0; ty < m.Height; ty++ {
		for tx := 0; tx < m.Width; tx++ {
			drawX := originX + tx*cell
			drawY := originY + ty*cell
			vector.DrawFilledRect(screen, float32(drawX), float32(drawY), float32(cell), float32(cell), cellColor(m, v.layer, tx, ty), false)
			drawTileLetter(screen, drawX, drawY, cell, cellLabel(m, v.layer, tx, ty))
		}
	}

	// World units to panel pixels
	scale := float32(cell) / float32(v.cfg.World.TileSize)
	toPanel := func(wx, wy float64) (float32, float32) {
		return float32(originX) + float32(wx)*scale, float32(originY) + float32(wy)*scale
	}

	if wt := l.Level.WinTile; wt != nil {
		vector.StrokeRect(screen, float32(originX+wt[0]*cell)+1, float32(originY+wt[1]*cell)+1,
			float32(cell)-2, float32(cell)-2, 2, color.RGBA{80, 230, 120, 255}, false)
	}

	start := actor.Player{X: l.Level.Player.X, Y: l.Level.Player.Y, Angle: v.viewAngle}
	if v.showRays && v.layer == layerWalls {
		v.drawRayFan(screen, m, start, toPanel)
	}

	for _, s := range l.Level.Sprites {
		sx, sy := toPanel(s.X, s.Y)
		radius := float32(cell) * 0.2
		clr := spriteColor(s.Kind)
		if s.Hidden {
			vector.StrokeCircle(screen, sx, sy, radius, 1, clr, true)
			continue
		}
		vector.DrawFilledCircle(screen, sx, sy, radius, clr, true)
	}

	// Player start and heading
	px, py := toPanel(start.X, start.Y)
	radius := float32(cell) * 0.25
	vector.DrawFilledCircle(screen, px, py, radius, color.RGBA{50, 200, 255, 255}, true)
	vector.StrokeCircle(screen, px, py, radius, 1, color.RGBA{255, 255, 255, 255}, true)
	hx := px + float32(math.Cos(start.Angle))*radius*2
	hy := py + float32(math.Sin(start.Angle))*radius*2
	vector.StrokeLine(screen, px, py, hx, hy, 2, color.RGBA{255, 255, 255, 255}, true)

	v.drawMapHeader(screen, l, x, y)
}

// drawRayFan casts one ray per screen column from the player start and draws
// it up to its hit point.
func (v *viewer) drawRayFan(screen *ebiten.Image, m *world.Map, p actor.Player, toPanel func(float64, float64) (float32, float32)) {
	px, py := toPanel(p.X, p.Y)
	horizontal := color.RGBA{240, 200, 60, 90}
	vertical := color.RGBA{240, 120, 40, 90}
	for col := 0; col < v.cfg.GetScreenWidth(); col++ {
		hit := v.caster.CastRay(m, p, v.caster.RayAngle(p, col))
		if !hit.Solid() {
			continue
		}
		clr := horizontal
		if hit.Side == render.SideVertical {
			clr = vertical
		}
		hx, hy := toPanel(hit.HitX, hit.HitY)
		vector.StrokeLine(screen, px, py, hx, hy, 1, clr, true)
	}
}

func (v *viewer) drawMapHeader(screen *ebiten.Image, l *levelInfo, x, y int) {
	title := l.Path
	if l.Level.Name != "" {
		title = fmt.Sprintf("%s (%s)", l.Level.Name, l.Path)
	}
	ebitenutil.DebugPrintAt(screen, title, x+12, y+8)
	ebitenutil.DebugPrintAt(screen, "Left/Right switch levels, Tab layer, R rays, Q/E turn, Esc quit", x+12, y+24)
}

func (v *viewer) drawSidebar(screen *ebiten.Image, l *levelInfo, x, y, w, h int) {
	drawFilledRect(screen, x, y, w, h, color.RGBA{18, 18, 26, 255})
	drawRectBorder(screen, x, y, w, h, 2, color.RGBA{70, 70, 90, 255})

	m := l.Level.Map
	counts := make(map[string]int)
	for _, s := range l.Level.Sprites {
		counts[s.Kind]++
	}
	kinds := make([]string, 0, len(counts))
	for k := range counts {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)

	doors := 0
	for _, value := range m.Walls() {
		if value == m.DoorID {
			doors++
		}
	}

	lines := []string{
		fmt.Sprintf("Layer: %s", v.layer),
		fmt.Sprintf("Tiles: %dx%d", m.Width, m.Height),
		fmt.Sprintf("Door id: %d (%d doors)", m.DoorID, doors),
		fmt.Sprintf("Start: (%.0f, %.0f) %.0f deg", l.Level.Player.X, l.Level.Player.Y, mathutil.Degrees(l.Level.Player.Angle)),
		fmt.Sprintf("Sprites: %d", len(l.Level.Sprites)),
	}
	for _, k := range kinds {
		lines = append(lines, fmt.Sprintf("  %s: %d", k, counts[k]))
	}
	if wt := l.Level.WinTile; wt != nil {
		lines = append(lines, fmt.Sprintf("Win tile: (%d, %d)", wt[0], wt[1]))
	}
	lines = append(lines, "",
		"Markers:",
		"Cyan: start  Green box: win tile",
		"Yellow: key  Red: pursuer",
		"Grey: prop  Green: goal",
		"Hollow: hidden sprite",
	)

	row := y + 12
	for _, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, x+12, row)
		row += 16
	}
}

// cellColor shades a cell by its texture index so neighbouring textures stay
// distinguishable without loading the atlas.
func cellColor(m *world.Map, l layer, tx, ty int) color.RGBA {
	open := color.RGBA{30, 30, 40, 255}
	switch l {
	case layerFloors:
		return textureTint(m.FloorAt(tx, ty), color.RGBA{60, 90, 60, 255})
	case layerCeilings:
		if m.CeilingAt(tx, ty) == 0 {
			return color.RGBA{40, 70, 120, 255}
		}
		return textureTint(m.CeilingAt(tx, ty), color.RGBA{90, 80, 60, 255})
	}

	t := m.TileAt(tx, ty)
	switch t.Kind {
	case world.TileDoor:
		if t.Open {
			return color.RGBA{90, 60, 30, 255}
		}
		return color.RGBA{160, 100, 40, 255}
	case world.TileSolid:
		return textureTint(t.Texture, color.RGBA{80, 80, 95, 255})
	default:
		return open
	}
}

func cellLabel(m *world.Map, l layer, tx, ty int) string {
	var value int
	switch l {
	case layerFloors:
		value = m.FloorAt(tx, ty)
	case layerCeilings:
		value = m.CeilingAt(tx, ty)
	default:
		value = m.WallValue(tx, ty)
	}
	if value == 0 {
		return ""
	}
	return fmt.Sprint(value)
}

func textureTint(index int, base color.RGBA) color.RGBA {
	step := uint8(index%6) * 18
	return color.RGBA{base.R + step, base.G + step, base.B + step, 255}
}

func spriteColor(kind string) color.RGBA {
	switch kind {
	case "key":
		return color.RGBA{255, 220, 0, 255}
	case "pursuer":
		return color.RGBA{230, 80, 80, 255}
	case "goal":
		return color.RGBA{80, 230, 120, 255}
	default:
		return color.RGBA{170, 170, 170, 255}
	}
}

func loadLevels(cfg *config.Config) ([]levelInfo, error) {
	paths, err := filepath.Glob(filepath.Join("assets", "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("failed to list levels: %w", err)
	}
	sort.Strings(paths)

	var levels []levelInfo
	for _, path := range paths {
		level, err := world.LoadLevel(path, cfg.World.TileSize)
		levels = append(levels, levelInfo{
			Path:  path,
			Level: level,
			Err:   err,
		})
	}
	return levels, nil
}

func drawTileLetter(screen *ebiten.Image, x, y, cell int, letter string) {
	if cell < 16 || letter == "" {
		return
	}
	ebitenutil.DebugPrintAt(screen, letter, x+2, y+1)
}

func drawFilledRect(screen *ebiten.Image, x, y, w, h int, clr color.RGBA) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func drawRectBorder(screen *ebiten.Image, x, y, w, h, thickness int, clr color.RGBA) {
	t := float32(thickness)
	fx := float32(x)
	fy := float32(y)
	fw := float32(w)
	fh := float32(h)
	vector.DrawFilledRect(screen, fx, fy, fw, t, clr, false)
	vector.DrawFilledRect(screen, fx, fy+fh-t, fw, t, clr, false)
	vector.DrawFilledRect(screen, fx, fy, t, fh, clr, false)
	vector.DrawFilledRect(screen, fx+fw-t, fy, t, fh, clr, false)
}

func ensureRuntimeCWD() {
	if _, err := os.Stat("config.yaml"); err == nil {
		return
	}
	exe, err := os.Executable()
	if err != nil {
		return
	}
	_ = os.Chdir(filepath.Dir(exe))
}
