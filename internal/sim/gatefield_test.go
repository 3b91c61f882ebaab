package sim

import (
	"testing"

	"github.com/vovakirdan/flapgate/internal/config"
	"github.com/vovakirdan/flapgate/internal/core"
)

func newTestField(spawnInterval int) *GateField {
	cfg := testConfig()
	cfg.Gates.SpawnInterval = spawnInterval
	return NewGateField(&scriptedRand{draws: []float64{0.5}}, Dimensions{Width: 400, Height: 600}, cfg)
}

func TestGateFieldSpawnsOnFirstAdvance(t *testing.T) {
	gf := newTestField(120)

	if gf.Countdown() != 120 {
		t.Fatalf("Countdown after reset = %d, expected 120", gf.Countdown())
	}
	if gf.Len() != 0 {
		t.Fatalf("new field should be empty, got %d gates", gf.Len())
	}

	gf.Advance(0)
	if gf.Len() != 1 {
		t.Fatalf("first Advance should spawn, got %d gates", gf.Len())
	}
	if gf.Countdown() != 0 {
		t.Errorf("Countdown after spawn = %d, expected 0", gf.Countdown())
	}
	if x := gf.Gates()[0].X(); x != 398 {
		t.Errorf("spawned gate should move in the same tick, x = %v, expected 398", x)
	}
}

func TestGateFieldSpawnInterval(t *testing.T) {
	gf := newTestField(120)
	gf.Advance(0) // spawn #1, countdown 0

	for i := 0; i < 120; i++ {
		gf.Advance(0)
	}
	if gf.Len() != 1 {
		t.Fatalf("no spawn expected while countdown <= interval, got %d gates", gf.Len())
	}

	gf.Advance(0)
	if gf.Len() != 2 {
		t.Fatalf("spawn expected once countdown exceeds interval, got %d gates", gf.Len())
	}
}

func TestGateFieldCullsOffScreenSameTick(t *testing.T) {
	gf := newTestField(10000)
	gf.Advance(0) // x = 398

	// Gate width 80 at speed 2 reaches x = -80 after 240 moves in total.
	for i := 1; i < 240; i++ {
		gf.Advance(0)
	}
	if gf.Len() != 1 {
		t.Fatalf("gate at x=-80 should survive, got %d gates (x=%v)", gf.Len(), gf.Gates()[0].X())
	}

	gf.Advance(0)
	if gf.Len() != 0 {
		t.Fatalf("gate past -width should be removed within the same Advance, got %d gates", gf.Len())
	}
}

func TestGateFieldCullPreservesOrder(t *testing.T) {
	gf := newTestField(10000)
	field := Dimensions{Width: 400, Height: 600}

	for _, x := range []float64{-79, 50, -79.5, 200, 300} {
		g := NewGate(field, 80, 0.5)
		g.x = x
		gf.gates = append(gf.gates, g)
	}
	gf.countdown = 0
	gf.Advance(0) // speed 2: the two leading-edge gates drop below -80

	var xs []float64
	for _, g := range gf.Gates() {
		xs = append(xs, g.X())
	}
	want := []float64{48, 198, 298}
	if len(xs) != len(want) {
		t.Fatalf("survivors = %v, expected %v", xs, want)
	}
	for i := range want {
		if xs[i] != want[i] {
			t.Errorf("survivor %d x = %v, expected %v", i, xs[i], want[i])
		}
	}
}

func TestGateFieldSpeedSteps(t *testing.T) {
	tests := []struct {
		score int
		speed float64
	}{
		{0, 2.0},
		{4, 2.0},
		{5, 2.15},
		{9, 2.15},
		{10, 2.3},
		{14, 2.3},
	}

	const eps = 1e-9
	for _, tc := range tests {
		gf := newTestField(120)
		gf.Advance(tc.score)
		if d := gf.Speed() - tc.speed; d > eps || d < -eps {
			t.Errorf("Speed at score %d = %v, expected %v", tc.score, gf.Speed(), tc.speed)
		}
	}
}

func TestGateFieldCheckScoreFirstMatch(t *testing.T) {
	gf := newTestField(120)
	field := Dimensions{Width: 400, Height: 600}
	gf.gates = append(gf.gates, passableGate(field), passableGate(field))

	if !gf.CheckScore(80) {
		t.Fatal("first call should score")
	}
	if !gf.gates[0].Passed() || gf.gates[1].Passed() {
		t.Fatal("only the first eligible gate should be marked passed")
	}
	if !gf.CheckScore(80) {
		t.Fatal("second call should score the second gate")
	}
	if gf.CheckScore(80) {
		t.Fatal("no gates left to score")
	}
}

func TestGateFieldCheckCollision(t *testing.T) {
	gf := newTestField(120)
	field := Dimensions{Width: 400, Height: 600}
	g := NewGate(field, 80, 0)
	g.gapCenter = 300
	g.x = 70
	gf.gates = append(gf.gates, g)

	if gf.CheckCollision(core.NewRect(80, 250, 30, 30)) {
		t.Error("flyer inside the gap should not collide")
	}
	if !gf.CheckCollision(core.NewRect(80, 100, 30, 30)) {
		t.Error("flyer in the top segment should collide")
	}
}

func TestGateFieldReset(t *testing.T) {
	gf := newTestField(120)
	for i := 0; i < 300; i++ {
		gf.Advance(12)
	}
	gf.Reset()

	if gf.Len() != 0 {
		t.Errorf("Reset should clear gates, got %d", gf.Len())
	}
	if gf.Countdown() != 120 {
		t.Errorf("Reset countdown = %d, expected spawn interval", gf.Countdown())
	}
	if gf.Speed() != config.DefaultBaseSpeed {
		t.Errorf("Reset speed = %v, expected base", gf.Speed())
	}
}

func TestGateFieldResizeAffectsOnlyNewSpawns(t *testing.T) {
	gf := newTestField(0)
	gf.Advance(0) // spawn at 400, moved to 398
	before := gf.Gates()[0]

	gf.Resize(Dimensions{Width: 800, Height: 200})
	gf.Advance(0) // spawn at 800 with the new height

	old, fresh := gf.Gates()[0], gf.Gates()[1]
	if old.X() != before.X()-2 || old.Gap() != 150 {
		t.Errorf("existing gate changed: x=%v gap=%v", old.X(), old.Gap())
	}
	if fresh.X() != 798 || fresh.Gap() != 50 {
		t.Errorf("new gate should use resized field: x=%v gap=%v", fresh.X(), fresh.Gap())
	}
}

func TestGateFieldResizeClamps(t *testing.T) {
	gf := newTestField(0)
	gf.Resize(Dimensions{Width: -5, Height: 0})
	gf.Advance(0)

	g := gf.Gates()[0]
	if g.TopHeight() < 0 || g.BottomHeight() < 0 {
		t.Errorf("clamped field produced negative segments: %v / %v", g.TopHeight(), g.BottomHeight())
	}
}
