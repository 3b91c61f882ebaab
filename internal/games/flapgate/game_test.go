package flapgate

import (
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/flapgate/internal/core"
	"github.com/vovakirdan/flapgate/internal/registry"
	"github.com/vovakirdan/flapgate/internal/sim"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

type fixedStore struct {
	high      int
	persisted []int
}

func (s *fixedStore) LoadHighScore() (int, error) { return s.high, nil }

func (s *fixedStore) PersistHighScore(score int) error {
	s.persisted = append(s.persisted, score)
	s.high = score
	return nil
}

func TestGameRegistered(t *testing.T) {
	if !registry.Exists(ID) {
		t.Fatalf("game %q is not registered", ID)
	}
	g, err := registry.Create(ID)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if g.Title() != "Flapgate" {
		t.Errorf("Title = %q", g.Title())
	}
}

func TestGameStartsReady(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame())
	}

	if g.Phase() != sim.StateReady {
		t.Errorf("Phase = %s, expected ready", g.Phase())
	}
	if g.Snapshot().Ticks != 0 {
		t.Errorf("Ready game should not tick, got %d ticks", g.Snapshot().Ticks)
	}
}

func TestJumpStartsAndFlaps(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	startY := g.Snapshot().Flyer.Y

	g.Step(input(core.ActionJump))

	if g.Phase() != sim.StatePlaying {
		t.Fatalf("Phase = %s, expected playing", g.Phase())
	}
	f := g.Snapshot().Flyer
	// Lift -5 then one tick of gravity 0.25.
	if math.Abs(f.Y-(startY-4.75)) > 1e-9 {
		t.Errorf("Flyer Y = %v, expected %v", f.Y, startY-4.75)
	}
	if f.RotationHint >= 0 {
		t.Errorf("RotationHint = %v, expected nose up", f.RotationHint)
	}
}

func TestConfirmStartsWithoutFlap(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	startY := g.Snapshot().Flyer.Y

	g.Step(input(core.ActionConfirm))

	if g.Phase() != sim.StatePlaying {
		t.Fatalf("Phase = %s, expected playing", g.Phase())
	}
	if y := g.Snapshot().Flyer.Y; y <= startY {
		t.Errorf("Flyer should fall after a plain start, Y = %v", y)
	}
}

func TestGameOverByFalling(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	g.Step(input(core.ActionConfirm))

	var res core.StepResult
	for i := 0; i < 200 && !res.State.GameOver; i++ {
		res = g.Step(core.NewInputFrame())
	}

	if !res.State.GameOver {
		t.Fatal("Flyer should fall out of the field")
	}
	if res.State.Score != 0 {
		t.Errorf("Score = %d, expected 0", res.State.Score)
	}
}

func TestPauseStopsTicks(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	g.Step(input(core.ActionConfirm))
	g.Step(input(core.ActionPause))

	if !g.State().Paused {
		t.Fatal("Game should be paused")
	}
	ticks := g.Snapshot().Ticks
	for i := 0; i < 20; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.Snapshot().Ticks != ticks {
		t.Errorf("Paused game advanced from %d to %d ticks", ticks, g.Snapshot().Ticks)
	}

	g.Step(input(core.ActionPause))
	if g.State().Paused {
		t.Error("Second pause should resume")
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	g.Step(input(core.ActionConfirm))
	for i := 0; i < 200 && !g.State().GameOver; i++ {
		g.Step(core.NewInputFrame())
	}

	g.Step(input(core.ActionRestart))

	if g.Phase() != sim.StateReady {
		t.Errorf("Phase = %s, expected ready", g.Phase())
	}
	if g.State().GameOver || g.State().Score != 0 {
		t.Errorf("State after restart = %+v", g.State())
	}
	if len(g.Snapshot().Gates) != 0 {
		t.Error("Restart should clear gates")
	}
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 600)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		if i%18 == 0 {
			inputs[i].Set(core.ActionJump)
		}
	}

	run := func() sim.Snapshot {
		g := New()
		g.Reset(testRuntime(12345))
		for _, in := range inputs {
			if g.Step(in).State.GameOver {
				break
			}
		}
		return g.Snapshot()
	}

	a, b := run(), run()
	if a.Score != b.Score || a.Ticks != b.Ticks {
		t.Fatalf("Runs diverged: score %d/%d, ticks %d/%d", a.Score, b.Score, a.Ticks, b.Ticks)
	}
	if len(a.Gates) != len(b.Gates) {
		t.Fatalf("Gate counts differ: %d vs %d", len(a.Gates), len(b.Gates))
	}
	for i := range a.Gates {
		if a.Gates[i] != b.Gates[i] {
			t.Errorf("Gate %d differs: %+v vs %+v", i, a.Gates[i], b.Gates[i])
		}
	}
}

func TestHighScoreFromStore(t *testing.T) {
	store := &fixedStore{high: 7}
	SetHighScoreStore(store)
	t.Cleanup(func() { SetHighScoreStore(nil) })

	g := New()
	g.Reset(testRuntime(1))

	if g.State().HighScore != 7 {
		t.Errorf("HighScore = %d, expected 7", g.State().HighScore)
	}

	g.Step(input(core.ActionConfirm))
	for i := 0; i < 200 && !g.State().GameOver; i++ {
		g.Step(core.NewInputFrame())
	}
	if len(store.persisted) != 0 {
		t.Errorf("Score 0 should not replace best 7, persisted %v", store.persisted)
	}
}

func TestResizeKeepsAspect(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	g.Resize(120, 30)

	field := g.Snapshot().Field
	want, _ := FieldFor(120, 30, field.Height)
	if math.Abs(field.Width-want) > 1e-9 {
		t.Errorf("Field width = %v, expected %v", field.Width, want)
	}
}

func TestFieldFor(t *testing.T) {
	w, h := FieldFor(80, 24, 600)
	if h != 600 || math.Abs(w-1000) > 1e-9 {
		t.Errorf("FieldFor(80, 24, 600) = %v, %v", w, h)
	}
	if w, _ := FieldFor(0, 24, 600); w != 0 {
		t.Errorf("empty screen should yield 0 width, got %v", w)
	}
}

func TestNoseGlyph(t *testing.T) {
	tests := []struct {
		rotation float64
		want     rune
	}{
		{-45, FlyerNoseUp},
		{0, FlyerNoseLevel},
		{10, FlyerNoseLevel},
		{25, FlyerNoseDown},
	}
	for _, tt := range tests {
		if got := noseGlyph(tt.rotation); got != tt.want {
			t.Errorf("noseGlyph(%v) = %q, expected %q", tt.rotation, got, tt.want)
		}
	}
}

func TestRenderOverlays(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	if !strings.Contains(screen.String(), "FLAPGATE") {
		t.Error("Ready screen should show the title")
	}

	g.Step(input(core.ActionConfirm))
	g.Step(input(core.ActionPause))
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("Paused screen should say PAUSED")
	}

	g.Step(input(core.ActionPause))
	for i := 0; i < 200 && !g.State().GameOver; i++ {
		g.Step(core.NewInputFrame())
	}
	g.Render(screen)
	out := screen.String()
	if !strings.Contains(out, "GAME OVER") {
		t.Error("Over screen should say GAME OVER")
	}
	if !strings.Contains(out, "Score: 0") {
		t.Error("HUD should show the score")
	}
}

func TestRenderDrawsFlyer(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	g.Step(input(core.ActionJump))
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	f := g.Snapshot().Flyer
	sc := newScaler(g.Snapshot().Field, 80, 24)
	if screen.Get(sc.col(f.X), sc.row(f.Y)) == ' ' {
		t.Error("Flyer cell should not be blank")
	}
}
