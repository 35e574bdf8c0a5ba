package main

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"rayframe/internal/actor"
)

// holdWindow is how long a key counts as held after its last press event.
// Terminals only report presses and auto-repeat, never releases.
const holdWindow = 180 * time.Millisecond

type heldKey int

const (
	holdLeft heldKey = iota
	holdRight
	holdForward
	holdBackward
	holdCount
)

// keyState turns terminal key events into per-tick intents.
type keyState struct {
	lastSeen [holdCount]time.Time
	interact bool
}

// press records one key event. It returns false when the key asks to quit.
func (k *keyState) press(ev *tcell.EventKey, now time.Time) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyLeft:
		k.lastSeen[holdLeft] = now
	case tcell.KeyRight:
		k.lastSeen[holdRight] = now
	case tcell.KeyUp:
		k.lastSeen[holdForward] = now
	case tcell.KeyDown:
		k.lastSeen[holdBackward] = now
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A':
			k.lastSeen[holdLeft] = now
		case 'd', 'D':
			k.lastSeen[holdRight] = now
		case 'w', 'W':
			k.lastSeen[holdForward] = now
		case 's', 'S':
			k.lastSeen[holdBackward] = now
		case 'e', 'E':
			k.interact = true
		case 'q':
			return false
		}
	}
	return true
}

// intent samples the held keys at now. Interact fires once per press.
func (k *keyState) intent(now time.Time) actor.Intent {
	held := func(h heldKey) bool {
		seen := k.lastSeen[h]
		return !seen.IsZero() && now.Sub(seen) < holdWindow
	}
	in := actor.Intent{
		TurnLeft:  held(holdLeft),
		TurnRight: held(holdRight),
		Forward:   held(holdForward),
		Backward:  held(holdBackward),
		Interact:  k.interact,
	}
	k.interact = false
	return in
}
