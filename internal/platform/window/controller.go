// Package window runs the simulation in a desktop window through Ebitengine.
package window

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flapgate/internal/config"
	"github.com/vovakirdan/flapgate/internal/sim"
)

// GameID is the score-history key for runs played in the window.
const GameID = "flapgate"

// popupFrames is how long an achievement banner stays on screen.
const popupFrames = 150

// RunRecorder appends finished runs to a score history.
type RunRecorder interface {
	SaveScore(gameID string, score int) (int64, error)
}

// Options configures a window session.
type Options struct {
	Title      string
	Seed       int64
	TPS        int
	HighScores sim.HighScoreStore
	Runs       RunRecorder
	Logger     *log.Logger
}

// Intent is one frame of decoded player input.
type Intent struct {
	Flap    bool // flap, or start-and-flap from Ready
	Start   bool
	Pause   bool
	Restart bool
}

// controller owns the simulation and the banner state. It holds no
// Ebitengine handles.
type controller struct {
	sim        *sim.Simulation
	runs       RunRecorder
	logger     *log.Logger
	popup      string
	popupTicks int
}

func newController(cfg config.FlapgateConfig, opts Options) *controller {
	c := &controller{
		runs:   opts.Runs,
		logger: opts.Logger,
	}
	if c.logger == nil {
		c.logger = log.New(io.Discard)
	}

	simOpts := []sim.Option{
		sim.WithSeed(opts.Seed),
		sim.WithLogger(c.logger),
		sim.WithListener(sim.ListenerFuncs{
			Achievement: c.onAchievement,
			GameOver:    c.onGameOver,
		}),
	}
	if opts.HighScores != nil {
		simOpts = append(simOpts, sim.WithStore(opts.HighScores))
	}
	c.sim = sim.New(cfg, simOpts...)
	return c
}

func (c *controller) onAchievement(label string) {
	c.popup = label
	c.popupTicks = popupFrames
	c.logger.Info("achievement", "label", label)
}

func (c *controller) onGameOver(final, high int) {
	c.logger.Info("game over", "score", final, "high", high)
	if c.runs == nil || final <= 0 {
		return
	}
	if _, err := c.runs.SaveScore(GameID, final); err != nil {
		c.logger.Warn("could not record score", "error", err)
	}
}

// step applies one frame of input and advances the simulation.
func (c *controller) step(in Intent) {
	if in.Restart {
		c.sim.Restart()
		c.popup = ""
		c.popupTicks = 0
	}
	if in.Pause {
		c.sim.TogglePause()
	}
	if (in.Flap || in.Start) && c.sim.State() == sim.StateReady {
		c.sim.Start()
	}
	if in.Flap {
		c.sim.Flap()
	}

	c.sim.Tick()

	if c.popupTicks > 0 && c.sim.State() != sim.StatePaused {
		c.popupTicks--
		if c.popupTicks == 0 {
			c.popup = ""
		}
	}
}

// resize refits the field to the window's logical size.
func (c *controller) resize(width, height int) {
	f := c.sim.Field()
	if float64(width) == f.Width && float64(height) == f.Height {
		return
	}
	c.sim.Resize(float64(width), float64(height))
}
