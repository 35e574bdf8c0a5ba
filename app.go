package main

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"rayframe/internal/config"
	"rayframe/internal/game"
	"rayframe/internal/input"
	"rayframe/internal/monitoring"
)

// ebitenGame drives the engine from the ebiten loop. Update advances the
// engine by the wall-clock time since the previous update; Draw only uploads
// the frame the last tick produced.
type ebitenGame struct {
	engine  *game.Engine
	input   *input.Reader
	screen  *ebiten.Image
	width   int
	height  int
	last    time.Time
	monitor *monitoring.PerformanceMonitor

	logEvery time.Duration
	lastLog  time.Time
}

func newEbitenGame(cfg *config.Config, engine *game.Engine, monitor *monitoring.PerformanceMonitor) *ebitenGame {
	w, h := cfg.GetScreenWidth(), cfg.GetScreenHeight()
	return &ebitenGame{
		engine:   engine,
		input:    input.NewReader(),
		screen:   ebiten.NewImage(w, h),
		width:    w,
		height:   h,
		monitor:  monitor,
		logEvery: time.Duration(cfg.Debug.LogIntervalSeconds) * time.Second,
	}
}

func (g *ebitenGame) Update() error {
	if input.QuitRequested() {
		return ebiten.Termination
	}

	now := time.Now()
	var dt time.Duration
	if !g.last.IsZero() {
		dt = now.Sub(g.last)
	}
	g.last = now

	if g.monitor == nil {
		g.engine.Tick(g.input.Read(), dt)
		return nil
	}

	timer := g.monitor.StartFrame()
	g.engine.Tick(g.input.Read(), dt)
	timer.EndFrame()
	g.logPerformance(now)
	return nil
}

func (g *ebitenGame) logPerformance(now time.Time) {
	if g.logEvery <= 0 || now.Sub(g.lastLog) < g.logEvery {
		return
	}
	g.lastLog = now
	log.Printf("Performance after %s: %s", g.monitor.Uptime().Round(time.Second), g.monitor.Summary())
	for _, alert := range g.monitor.CheckPerformanceAlerts() {
		log.Printf("Performance alert [%s]: %s (%.2f, threshold %.2f)", alert.Type, alert.Message, alert.Value, alert.Threshold)
	}
}

func (g *ebitenGame) Draw(screen *ebiten.Image) {
	g.screen.WritePixels(g.engine.Frame().Pix)
	screen.DrawImage(g.screen, nil)
}

// Layout keeps the logical resolution; ebiten scales it to the window.
func (g *ebitenGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
