package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"rayframe/internal/render"
)

func TestKeyHoldDecays(t *testing.T) {
	var k keyState
	t0 := time.Now()
	k.press(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), t0)

	if !k.intent(t0.Add(50 * time.Millisecond)).Forward {
		t.Error("forward should be held right after the press")
	}
	if k.intent(t0.Add(holdWindow + time.Millisecond)).Forward {
		t.Error("forward should be released after the hold window")
	}
}

func TestInteractFiresOnce(t *testing.T) {
	var k keyState
	now := time.Now()
	k.press(tcell.NewEventKey(tcell.KeyRune, 'e', tcell.ModNone), now)

	if !k.intent(now).Interact {
		t.Fatal("first tick after E should interact")
	}
	if k.intent(now).Interact {
		t.Error("interact must not repeat without a new press")
	}
}

func TestQuitKeys(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		keep bool
	}{
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), false},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), false},
		{"left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), true},
		{"wasd", tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var k keyState
			if got := k.press(tc.ev, time.Now()); got != tc.keep {
				t.Errorf("press() = %v, want %v", got, tc.keep)
			}
		})
	}
}

func TestBlitHalfBlocks(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	defer screen.Fini()

	f := render.NewFrame(4, 4)
	for x := 0; x < 4; x++ {
		f.DrawPixel(255, 0, 0, x, 0)
		f.DrawPixel(0, 0, 255, x, 1)
	}
	blit(screen, f, 4, 2)

	mainc, _, style, _ := screen.GetContent(0, 0)
	if mainc != upperHalf {
		t.Fatalf("cell rune = %q, want upper half block", mainc)
	}
	fg, bg, _ := style.Decompose()
	if fg != tcell.NewRGBColor(255, 0, 0) {
		t.Errorf("foreground = %v, want red", fg)
	}
	if bg != tcell.NewRGBColor(0, 0, 255) {
		t.Errorf("background = %v, want blue", bg)
	}
}
