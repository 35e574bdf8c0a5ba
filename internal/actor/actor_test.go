package actor

import (
	"math"
	"testing"

	"rayframe/internal/collision"
	"rayframe/internal/config"
	"rayframe/internal/world"
)

// newTestWorld returns an 8x8 map walled on every border with doors at
// (3,2) and (2,3), plus a collision system over it.
func newTestWorld(t *testing.T) (*world.Map, *collision.CollisionSystem) {
	t.Helper()
	walls := make([]int, 64)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if x == 0 || y == 0 || x == 7 || y == 7 {
				walls[y*8+x] = 1
			}
		}
	}
	walls[2*8+3] = 4
	walls[3*8+2] = 4
	m, err := world.NewMap(8, 8, 4, walls, make([]int, 64), make([]int, 64))
	if err != nil {
		t.Fatalf("NewMap: %v", err)
	}
	return m, collision.NewCollisionSystem(m, 64)
}

func testTuning() Tuning {
	return TuningFromConfig(config.Default())
}

func TestTurnKeepsAngleInRange(t *testing.T) {
	tun := testTuning()
	tests := []struct {
		name   string
		start  float64
		intent Intent
		dt     float64
	}{
		{"left across zero", 0.001, Intent{TurnLeft: true}, 16},
		{"right across 2π", 2*math.Pi - 0.001, Intent{TurnRight: true}, 16},
		{"long left", 1, Intent{TurnLeft: true}, 100000},
		{"long right", 1, Intent{TurnRight: true}, 100000},
		{"both held", 3, Intent{TurnLeft: true, TurnRight: true}, 50},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := Player{X: 100, Y: 100, Angle: tc.start}
			p.Turn(tc.intent, tc.dt, tun)
			if p.Angle < 0 || p.Angle >= 2*math.Pi {
				t.Errorf("angle %v outside [0, 2π)", p.Angle)
			}
		})
	}
}

func TestMoveSlidesAlongWall(t *testing.T) {
	_, cs := newTestWorld(t)
	tun := testTuning()

	// Facing north-west next to the west border: the X probe lands in column 0.
	p := Player{X: 80, Y: 200, Angle: math.Pi * 1.25}
	p.Move(cs, Intent{Forward: true}, 100, tun)
	if p.X != 80 {
		t.Errorf("X should be blocked by the west wall, got %v", p.X)
	}
	if p.Y >= 200 {
		t.Errorf("Y should keep moving north, got %v", p.Y)
	}
}

func TestMoveForwardAndBack(t *testing.T) {
	_, cs := newTestWorld(t)
	tun := testTuning()

	p := Player{X: 300, Y: 300}
	p.Move(cs, Intent{Forward: true}, 10, tun)
	if math.Abs(p.X-302) > 1e-9 || p.Y != 300 {
		t.Errorf("forward: got (%v,%v), want (302,300)", p.X, p.Y)
	}
	p.Move(cs, Intent{Backward: true}, 10, tun)
	if math.Abs(p.X-300) > 1e-9 {
		t.Errorf("backward: got X %v, want 300", p.X)
	}
	p.Move(cs, Intent{Forward: true, Backward: true}, 10, tun)
	if math.Abs(p.X-300) > 1e-9 {
		t.Errorf("opposed keys should cancel, got X %v", p.X)
	}
}

func TestPursuerMovesCloser(t *testing.T) {
	_, cs := newTestWorld(t)
	tun := testTuning()

	player := Player{X: 96 + 64, Y: 5*64 + 32}
	pursuer := Sprite{Kind: KindPursuer, X: player.X + 128, Y: player.Y, Z: 20}
	before := math.Abs(pursuer.X - player.X)
	pursuer.Chase(player, cs, 16, tun)
	after := math.Abs(pursuer.X - player.X)
	if after >= before {
		t.Errorf("pursuer did not close in: %v -> %v", before, after)
	}
	if pursuer.Y != player.Y {
		t.Errorf("pursuer should not drift on Y, got %v", pursuer.Y)
	}
}

func TestPursuerDoesNotOvershoot(t *testing.T) {
	_, cs := newTestWorld(t)
	tun := testTuning()

	player := Player{X: 300, Y: 300}
	pursuer := Sprite{Kind: KindPursuer, X: 301, Y: 300}
	pursuer.Chase(player, cs, 1000, tun)
	if pursuer.X != 300 {
		t.Errorf("pursuer overshot to %v", pursuer.X)
	}
}

func TestPropsDoNotChase(t *testing.T) {
	_, cs := newTestWorld(t)
	prop := Sprite{Kind: KindProp, X: 200, Y: 200}
	prop.Chase(Player{X: 300, Y: 300}, cs, 16, testTuning())
	if prop.X != 200 || prop.Y != 200 {
		t.Error("props must stay put")
	}
}

func TestCheckProximity(t *testing.T) {
	p := Player{X: 100, Y: 100}
	tests := []struct {
		name      string
		sprite    Sprite
		want      Trigger
		wantState State
	}{
		{"key hides", Sprite{Kind: KindKey, X: 110, Y: 90}, TriggerKeyCollected, StateHidden},
		{"pursuer loses", Sprite{Kind: KindPursuer, X: 120, Y: 100}, TriggerLost, StateActive},
		{"goal wins", Sprite{Kind: KindGoal, X: 100, Y: 129}, TriggerWon, StateActive},
		{"prop ignored", Sprite{Kind: KindProp, X: 100, Y: 100}, TriggerNone, StateActive},
		{"edge is outside", Sprite{Kind: KindPursuer, X: 130, Y: 100}, TriggerNone, StateActive},
		{"hidden key stays", Sprite{Kind: KindKey, State: StateHidden, X: 100, Y: 100}, TriggerNone, StateHidden},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := tc.sprite
			if got := s.CheckProximity(p, 30); got != tc.want {
				t.Errorf("trigger = %v, want %v", got, tc.want)
			}
			if s.State != tc.wantState {
				t.Errorf("state = %v, want %v", s.State, tc.wantState)
			}
		})
	}
}

func TestInteractOpensDoorOnce(t *testing.T) {
	m, cs := newTestWorld(t)
	tun := testTuning()

	// Tile (3,3) facing north: the probe 25 units ahead lands in (3,2).
	p := Player{X: 3*64 + 32, Y: 3*64 + 10, Angle: 3 * math.Pi / 2}
	if p.Interact(m, cs, false, tun) {
		t.Fatal("locked doors must not open")
	}
	if !p.Interact(m, cs, true, tun) {
		t.Fatal("door in front should open")
	}
	if m.WallValue(3, 2) != 0 {
		t.Fatalf("door cell = %d, want 0", m.WallValue(3, 2))
	}
	if p.Interact(m, cs, true, tun) {
		t.Error("second interact should be a no-op")
	}
	if m.WallValue(3, 2) != 0 {
		t.Error("open door must stay open")
	}
}

func TestDoorsUnlocked(t *testing.T) {
	sprites := []Sprite{{Kind: KindProp}, {Kind: KindKey}}
	if DoorsUnlocked(sprites) {
		t.Error("active key should lock doors")
	}
	sprites[1].State = StateHidden
	if !DoorsUnlocked(sprites) {
		t.Error("collected key should unlock doors")
	}
	if !DoorsUnlocked(nil) {
		t.Error("levels without keys are unlocked")
	}
}

func TestSpawnSprites(t *testing.T) {
	sprites, err := SpawnSprites([]world.SpriteSpawn{
		{Kind: "key", Texture: 0, X: 1, Y: 2, Z: 20},
		{Kind: "goal", Texture: 3, Hidden: true},
	})
	if err != nil {
		t.Fatalf("SpawnSprites: %v", err)
	}
	if sprites[0].Kind != KindKey || sprites[0].Z != 20 || !sprites[0].Visible() {
		t.Errorf("unexpected key sprite %+v", sprites[0])
	}
	if sprites[1].Visible() {
		t.Error("hidden spawn should start hidden")
	}
	if _, err := SpawnSprites([]world.SpriteSpawn{{Kind: "dragon"}}); err == nil {
		t.Error("unknown kind should fail")
	}
}

func TestKindNames(t *testing.T) {
	for name := range kindNames {
		k, err := ParseKind(name)
		if err != nil {
			t.Fatalf("ParseKind(%q): %v", name, err)
		}
		if k.String() != name {
			t.Errorf("Kind %d String() = %q, want %q", k, k.String(), name)
		}
	}
	if got := Kind(42).String(); got != "Kind(42)" {
		t.Errorf("unknown kind String() = %q", got)
	}
	if _, err := ParseKind("dragon"); err == nil {
		t.Error("unknown kind name should fail to parse")
	}
}
