package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"rayframe/internal/actor"
)

// KeySource reports whether a key is held.
type KeySource interface {
	IsKeyPressed(key ebiten.Key) bool
}

type ebitenKeys struct{}

func (ebitenKeys) IsKeyPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

// Bindings maps each intent to the keys that trigger it.
type Bindings struct {
	TurnLeft  []ebiten.Key
	TurnRight []ebiten.Key
	Forward   []ebiten.Key
	Backward  []ebiten.Key
	Interact  []ebiten.Key
}

// DefaultBindings uses the arrow keys with WASD as an alternative, and E to
// open doors.
func DefaultBindings() Bindings {
	return Bindings{
		TurnLeft:  []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA},
		TurnRight: []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD},
		Forward:   []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW},
		Backward:  []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS},
		Interact:  []ebiten.Key{ebiten.KeyE},
	}
}

// Reader samples the keyboard once per tick into an actor.Intent.
type Reader struct {
	src      KeySource
	bindings Bindings
	interact KeyStateTracker
}

// NewReader reads the ebiten keyboard with the default bindings.
func NewReader() *Reader {
	return NewReaderFrom(ebitenKeys{}, DefaultBindings())
}

// NewReaderFrom reads keys from src.
func NewReaderFrom(src KeySource, bindings Bindings) *Reader {
	return &Reader{src: src, bindings: bindings}
}

// Read samples the keys for this tick. Call it exactly once per tick so the
// interact edge is not lost.
func (r *Reader) Read() actor.Intent {
	return actor.Intent{
		TurnLeft:  r.any(r.bindings.TurnLeft),
		TurnRight: r.any(r.bindings.TurnRight),
		Forward:   r.any(r.bindings.Forward),
		Backward:  r.any(r.bindings.Backward),
		Interact:  r.interact.Update(r.any(r.bindings.Interact)),
	}
}

func (r *Reader) any(keys []ebiten.Key) bool {
	for _, k := range keys {
		if r.src.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// QuitRequested reports an Escape press this tick.
func QuitRequested() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}
