// Command termview plays a level inside a true-colour terminal.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"rayframe/internal/config"
	"rayframe/internal/game"
	"rayframe/internal/texture"
	"rayframe/internal/world"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the engine configuration")
	levelPath := flag.String("level", "", "level file, overrides the configured level")
	logPath := flag.String("log", "", "write log output to this file")
	fps := flag.Int("fps", 30, "ticks per second")
	flag.Parse()

	if err := run(*configPath, *levelPath, *logPath, *fps); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath, levelPath, logPath string, fps int) error {
	// Log lines would corrupt the terminal screen
	if logPath != "" {
		f, err := os.Create(logPath)
		if err != nil {
			return err
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}
	if levelPath == "" {
		levelPath = cfg.Assets.Level
	}
	level, err := world.LoadLevel(levelPath, cfg.World.TileSize)
	if err != nil {
		return err
	}
	assets, err := texture.LoadAssets(cfg)
	if err != nil {
		return err
	}
	engine, err := game.NewEngine(cfg, level, assets, nil)
	if err != nil {
		return err
	}
	defer engine.Close()
	if fps <= 0 {
		fps = 30
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.HideCursor()

	loop(screen, engine, time.Second/time.Duration(fps))
	return nil
}

func loop(screen tcell.Screen, engine *game.Engine, tick time.Duration) {
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	var keys keyState
	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !keys.press(ev, time.Now()) {
					return
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-ticker.C:
			frame := engine.Tick(keys.intent(now), now.Sub(last))
			last = now
			cols, rows := screen.Size()
			blit(screen, frame, cols, rows)
			screen.Show()
		}
	}
}
