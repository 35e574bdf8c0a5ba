package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"rayframe/internal/audio"
	"rayframe/internal/config"
	"rayframe/internal/game"
	"rayframe/internal/monitoring"
	"rayframe/internal/texture"
	"rayframe/internal/world"
)

func main() {
	// Load configuration
	cfg := config.MustLoadConfig("config.yaml")

	level, err := world.LoadLevel(cfg.Assets.Level, cfg.World.TileSize)
	if err != nil {
		log.Fatal(err)
	}

	assets, err := texture.LoadAssets(cfg)
	if err != nil {
		log.Fatal(err)
	}

	// Sound is optional, a missing audio device only costs the cues
	sounds := audio.NewSoundManager(cfg.Audio)
	if err := sounds.Initialize(); err != nil {
		log.Printf("Warning: Failed to initialize audio: %v", err)
	}
	defer sounds.Cleanup()

	engine, err := game.NewEngine(cfg, level, assets, sounds)
	if err != nil {
		log.Fatal(err)
	}
	defer engine.Close()

	var monitor *monitoring.PerformanceMonitor
	if cfg.Debug.LogPerformance {
		monitor = monitoring.NewPerformanceMonitor()
		engine.SetMonitor(monitor)
	}

	// Set window properties from config
	ebiten.SetWindowSize(cfg.Display.WindowWidth, cfg.Display.WindowHeight)
	ebiten.SetWindowTitle(cfg.Display.WindowTitle)
	if cfg.Display.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	g := newEbitenGame(cfg, engine, monitor)
	if err := ebiten.RunGame(g); err != nil && err != ebiten.Termination {
		log.Fatal(err)
	}
}
