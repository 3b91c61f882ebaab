// Package flapgate adapts the flyer-and-gates simulation to the arcade
// Game interface: it maps platform actions to simulation commands and
// draws snapshots into a character screen.
package flapgate

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flapgate/internal/config"
	"github.com/vovakirdan/flapgate/internal/core"
	"github.com/vovakirdan/flapgate/internal/registry"
	"github.com/vovakirdan/flapgate/internal/sim"
)

// ID is the registry and score-storage identifier.
const ID = "flapgate"

// PopupTicks is how long an achievement banner stays on screen.
const PopupTicks = 150

// cellAspect is the height/width ratio of a terminal cell.
const cellAspect = 2.0

// Game implements registry.Game around a sim.Simulation.
type Game struct {
	sim     *sim.Simulation
	runtime core.RuntimeConfig
	cfg     config.FlapgateConfig

	events     []string // raised during the current Step
	popup      string
	popupTicks int
}

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	highScores       sim.HighScoreStore
	logger           *log.Logger
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names keep the
// config file's settings.
func SetDifficultyPreset(preset string) {
	if config.IsValidPreset(preset) {
		difficultyPreset = config.DifficultyPreset(preset)
		return
	}
	difficultyPreset = ""
}

// SetHighScoreStore sets the store new games load and persist their best from.
func SetHighScoreStore(store sim.HighScoreStore) {
	highScores = store
}

// SetLogger sets the logger handed to new simulations.
func SetLogger(l *log.Logger) {
	logger = l
}

// LoadConfig loads the game config from the configured path and applies
// the difficulty preset. Load errors fall back to the defaults.
func LoadConfig() config.FlapgateConfig {
	cfg, err := config.Load(configPath)
	if err != nil {
		if logger != nil {
			logger.Warn("using default config", "error", err)
		}
		cfg = config.DefaultFlapgateConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
	}
	return cfg
}

// FieldFor returns the logical field size that fills a screen of cols x rows
// cells at the given logical height.
func FieldFor(cols, rows int, height float64) (float64, float64) {
	if cols <= 0 || rows <= 0 {
		return 0, height
	}
	return height * float64(cols) / (float64(rows) * cellAspect), height
}

// New creates a new Flapgate game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flapgate"
}

// Reset builds a fresh simulation sized to the runtime screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg = LoadConfig()

	if w, h := FieldFor(runtime.ScreenW, runtime.ScreenH, g.cfg.Field.Height); w > 0 {
		g.cfg.Field.Width = w
		g.cfg.Field.Height = h
	}

	opts := []sim.Option{
		sim.WithSeed(runtime.Seed),
		sim.WithListener(sim.ListenerFuncs{
			Achievement: g.onAchievement,
		}),
	}
	if highScores != nil {
		opts = append(opts, sim.WithStore(highScores))
	}
	if logger != nil {
		opts = append(opts, sim.WithLogger(logger))
	}

	g.sim = sim.New(g.cfg, opts...)
	g.events = nil
	g.popup = ""
	g.popupTicks = 0
}

func (g *Game) onAchievement(label string) {
	g.events = append(g.events, label)
	g.popup = label
	g.popupTicks = PopupTicks
}

// Resize refits the logical field to a new screen size.
func (g *Game) Resize(cols, rows int) {
	g.runtime.ScreenW = cols
	g.runtime.ScreenH = rows
	if w, h := FieldFor(cols, rows, g.cfg.Field.Height); w > 0 {
		g.sim.Resize(w, h)
	}
}

// Step applies one frame of input and advances the simulation one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = g.events[:0]

	if in.Has(core.ActionRestart) {
		g.sim.Restart()
		g.popup = ""
		g.popupTicks = 0
	}
	if in.Has(core.ActionPause) {
		g.sim.TogglePause()
	}
	if g.sim.State() == sim.StateReady && (in.Has(core.ActionJump) || in.Has(core.ActionConfirm)) {
		g.sim.Start()
	}
	if in.Has(core.ActionJump) {
		g.sim.Flap()
	}

	g.sim.Tick()

	if g.popupTicks > 0 && g.sim.State() != sim.StatePaused {
		g.popupTicks--
		if g.popupTicks == 0 {
			g.popup = ""
		}
	}

	var events []string
	if len(g.events) > 0 {
		events = append(events, g.events...)
	}
	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := g.sim.State()
	return core.GameState{
		Score:     g.sim.Score(),
		HighScore: g.sim.HighScore(),
		GameOver:  st == sim.StateOver,
		Paused:    st == sim.StatePaused,
	}
}

// Phase returns the underlying simulation state.
func (g *Game) Phase() sim.State {
	return g.sim.State()
}

// Snapshot returns the simulation's render state.
func (g *Game) Snapshot() sim.Snapshot {
	return g.sim.Snapshot()
}

// Popup returns the achievement banner currently shown, if any.
func (g *Game) Popup() string {
	return g.popup
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}
