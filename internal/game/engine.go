package game

import (
	"fmt"
	"log"
	"time"

	"rayframe/internal/actor"
	"rayframe/internal/collision"
	"rayframe/internal/config"
	"rayframe/internal/monitoring"
	"rayframe/internal/render"
	"rayframe/internal/texture"
	"rayframe/internal/threading"
	"rayframe/internal/world"
)

// Engine owns the world state and turns one tick of input into one frame.
// It is single threaded: Tick must not be called concurrently.
type Engine struct {
	level     *world.Level
	spawns    []actor.Sprite // Authored sprites, copied on every reset
	winTile   *[2]int
	state     WorldState
	machine   *Machine
	collision *collision.CollisionSystem
	tuning    actor.Tuning
	renderer  *render.Renderer
	assets    *texture.Assets
	frame     *render.Frame
	cues      CuePlayer
	monitor   *monitoring.PerformanceMonitor
	pool      *threading.WorkerPool
}

// NewEngine validates the level against the assets and prepares a run that
// starts in PhaseInit. cues may be nil.
func NewEngine(cfg *config.Config, level *world.Level, assets *texture.Assets, cues CuePlayer) (*Engine, error) {
	if err := level.Map.ValidateTextures(assets.Tiles.Count(), assets.Tiles.Count()); err != nil {
		return nil, err
	}
	spawns, err := actor.SpawnSprites(level.Sprites)
	if err != nil {
		return nil, err
	}
	for i, s := range spawns {
		if s.Texture >= assets.Sprites.Count() {
			return nil, fmt.Errorf("%w: sprite %d uses texture %d of %d", world.ErrTextureRange, i, s.Texture, assets.Sprites.Count())
		}
	}
	if cues == nil {
		cues = nopCuePlayer{}
	}

	live := level.Map.Clone()
	e := &Engine{
		level:     level,
		spawns:    spawns,
		winTile:   level.WinTile,
		state:     WorldState{Map: live},
		collision: collision.NewCollisionSystem(live, cfg.World.TileSize),
		tuning:    actor.TuningFromConfig(cfg),
		renderer:  render.NewRenderer(cfg, assets),
		assets:    assets,
		frame:     render.NewFrame(cfg.GetScreenWidth(), cfg.GetScreenHeight()),
		cues:      cues,
		machine: NewMachine(Timing{
			TitleMs:   cfg.Timing.TitleMs,
			EndMs:     cfg.Timing.EndScreenMs,
			FadePerMs: cfg.Timing.FadePerMs,
		}),
	}
	if n := cfg.Graphics.RenderWorkers; n > 0 {
		e.pool = threading.StartWorkerPool(n)
		e.renderer.Caster().SetWorkerPool(e.pool)
		log.Printf("Casting rays on %d workers", e.pool.Workers())
	}
	e.state.reset(level, spawns)
	return e, nil
}

// Close releases the render workers, if any.
func (e *Engine) Close() {
	if e.pool != nil {
		e.pool.Stop()
		e.pool = nil
		e.renderer.Caster().SetWorkerPool(nil)
	}
}

// SetMonitor attaches a performance monitor; nil detaches it.
func (e *Engine) SetMonitor(pm *monitoring.PerformanceMonitor) {
	e.monitor = pm
}

// Phase returns the current phase.
func (e *Engine) Phase() Phase { return e.machine.Phase }

// Fade returns the fade of the current screen phase.
func (e *Engine) Fade() float64 { return e.machine.Fade }

// World returns the live world state.
func (e *Engine) World() *WorldState { return &e.state }

// Frame returns the frame the last tick drew into.
func (e *Engine) Frame() *render.Frame { return e.frame }

// Tick advances the run by dt and renders the resulting phase. The returned
// frame is reused by the next tick.
func (e *Engine) Tick(intent actor.Intent, dt time.Duration) *render.Frame {
	dtMs := float64(dt) / float64(time.Millisecond)
	if dtMs < 0 {
		dtMs = 0
	}

	ev := EventNone
	if e.machine.Phase == PhasePlaying {
		e.profile(monitoring.StageSimulation, func() {
			ev = e.simulate(intent, dtMs)
		})
	}

	prev := e.machine.Advance(dtMs, ev)
	if next := e.machine.Phase; next != prev {
		e.enter(prev, next)
	}

	e.draw()
	return e.frame
}

// simulate runs one Playing tick: player input, doors, then every sprite's
// proximity check and chase, then the win tile.
func (e *Engine) simulate(intent actor.Intent, dtMs float64) Event {
	p := &e.state.Player
	p.Turn(intent, dtMs, e.tuning)
	p.Move(e.collision, intent, dtMs, e.tuning)

	if intent.Interact {
		unlocked := actor.DoorsUnlocked(e.state.Sprites)
		if p.Interact(e.state.Map, e.collision, unlocked, e.tuning) {
			e.cues.Play(CueDoorOpened)
		}
	}

	ev := EventNone
	for i := range e.state.Sprites {
		s := &e.state.Sprites[i]
		switch s.CheckProximity(*p, e.tuning.TriggerRadius) {
		case actor.TriggerKeyCollected:
			e.cues.Play(CueKeyCollected)
		case actor.TriggerWon:
			if ev == EventNone {
				ev = EventWin
			}
		case actor.TriggerLost:
			ev = EventLose
		}
		s.Chase(*p, e.collision, dtMs, e.tuning)
	}

	if e.winTile != nil && ev == EventNone {
		if tx, ty := p.Tile(e.collision); tx == e.winTile[0] && ty == e.winTile[1] {
			ev = EventWin
		}
	}
	return ev
}

func (e *Engine) enter(prev, next Phase) {
	log.Printf("Game phase: %s -> %s", prev, next)
	switch next {
	case PhasePlaying:
		e.state.reset(e.level, e.spawns)
		e.cues.Play(CueLevelStart)
	case PhaseWon:
		e.cues.Play(CueWon)
	case PhaseLost:
		e.cues.Play(CueLost)
	}
}

func (e *Engine) draw() {
	switch e.machine.Phase {
	case PhaseTitle:
		e.renderer.RenderScreen(e.frame, e.assets.Title, e.machine.Fade)
	case PhaseWon:
		e.renderer.RenderScreen(e.frame, e.assets.Won, e.machine.Fade)
	case PhaseLost:
		e.renderer.RenderScreen(e.frame, e.assets.Lost, e.machine.Fade)
	case PhasePlaying:
		e.profile(monitoring.StageRaycast, func() {
			e.renderer.CastWalls(e.state.Map, e.state.Player)
		})
		e.profile(monitoring.StageWorld, func() {
			e.renderer.DrawWorld(e.frame, e.state.Map, e.state.Player)
		})
		e.profile(monitoring.StageSprites, func() {
			e.renderer.DrawSprites(e.frame, e.state.Player, e.state.Sprites)
		})
	default:
		e.frame.Clear()
	}
}

func (e *Engine) profile(stage string, fn func()) {
	if e.monitor == nil {
		fn()
		return
	}
	e.monitor.ProfiledFunction(stage, fn)
}
