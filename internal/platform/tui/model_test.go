package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flapgate/internal/core"
	"github.com/vovakirdan/flapgate/internal/storage"
)

// scriptedGame ends after a fixed number of steps with a fixed score.
// Input is recorded during Step since the model clears the frame after.
type scriptedGame struct {
	steps    int
	endAfter int
	score    int
	jumps    []bool
	empties  []bool
	resized  [][2]int
	resets   int
}

func (g *scriptedGame) ID() string    { return "scripted" }
func (g *scriptedGame) Title() string { return "Scripted" }

func (g *scriptedGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.steps = 0
}

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	g.jumps = append(g.jumps, in.Has(core.ActionJump))
	g.empties = append(g.empties, in.Empty())
	if in.Has(core.ActionRestart) {
		g.steps = 0
	}
	g.steps++
	return core.StepResult{State: g.State()}
}

func (g *scriptedGame) Render(dst *core.Screen) {
	dst.DrawText(0, 0, "scripted")
}

func (g *scriptedGame) State() core.GameState {
	over := g.steps >= g.endAfter
	return core.GameState{Score: g.score, GameOver: over}
}

func (g *scriptedGame) Resize(cols, rows int) {
	g.resized = append(g.resized, [2]int{cols, rows})
}

func testModel(t *testing.T, g *scriptedGame) (Model, *storage.Store) {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	cfg := core.RuntimeConfig{ScreenW: 40, ScreenH: 20, TickRate: 60, Seed: 1}
	return NewModel(g, store, cfg, nil), store
}

func step(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return out
}

func TestModelReservesHelpRow(t *testing.T) {
	m, _ := testModel(t, &scriptedGame{endAfter: 100})
	if m.screen.Height() != 19 {
		t.Errorf("screen height = %d, expected 19", m.screen.Height())
	}
}

func TestModelInputReachesGameOnce(t *testing.T) {
	g := &scriptedGame{endAfter: 100}
	m, _ := testModel(t, g)

	m = step(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = step(t, m, TickMsg{})
	m = step(t, m, TickMsg{})

	if len(g.jumps) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(g.jumps))
	}
	if !g.jumps[0] {
		t.Error("first step should carry Jump")
	}
	if g.jumps[1] || !g.empties[1] {
		t.Error("input should be cleared after a tick")
	}
}

func TestModelRecordsRunOnce(t *testing.T) {
	g := &scriptedGame{endAfter: 3, score: 17}
	m, store := testModel(t, g)

	for i := 0; i < 10; i++ {
		m = step(t, m, TickMsg{})
	}

	scores, err := store.TopScores("scripted", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 17 {
		t.Fatalf("expected one recorded run of 17, got %+v", scores)
	}

	// Restart, then finish again: a second run is recorded.
	m = step(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	for i := 0; i < 10; i++ {
		m = step(t, m, TickMsg{})
	}
	scores, _ = store.TopScores("scripted", 10)
	if len(scores) != 2 {
		t.Errorf("expected 2 recorded runs, got %d", len(scores))
	}
}

func TestModelSkipsZeroScores(t *testing.T) {
	g := &scriptedGame{endAfter: 1}
	m, store := testModel(t, g)

	m = step(t, m, TickMsg{})
	_ = m

	scores, _ := store.TopScores("scripted", 10)
	if len(scores) != 0 {
		t.Errorf("zero score should not be recorded, got %+v", scores)
	}
}

func TestModelResizeUsesResizer(t *testing.T) {
	g := &scriptedGame{endAfter: 100}
	m, _ := testModel(t, g)

	m = step(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if len(g.resized) != 1 || g.resized[0] != [2]int{100, 29} {
		t.Errorf("resized = %v, expected [[100 29]]", g.resized)
	}
	if g.resets != 0 {
		t.Errorf("a resizable game should not be reset, got %d resets", g.resets)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 29 {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := testModel(t, &scriptedGame{endAfter: 100})

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce QuitMsg")
	}
	if next.(Model).View() != "" {
		t.Error("quitting model should render nothing")
	}
}
