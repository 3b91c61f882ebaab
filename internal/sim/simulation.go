// Package sim implements the flyer-and-gates simulation: vertical flyer
// physics, gate spawning and motion, AABB collision, scoring, achievements
// and the Ready/Playing/Paused/Over state machine.
//
// The package holds no rendering handles and performs no I/O. Drivers call
// Tick once per frame, send commands, and read snapshots.
package sim

import (
	"io"
	"math/rand"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flapgate/internal/config"
)

// State is the simulation's lifecycle state.
type State string

const (
	StateReady   State = "ready"
	StatePlaying State = "playing"
	StatePaused  State = "paused"
	StateOver    State = "over"
)

// Command is a driver-issued instruction.
type Command int

const (
	CommandStart Command = iota
	CommandFlap
	CommandTogglePause
	CommandRestart
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CommandStart:
		return "start"
	case CommandFlap:
		return "flap"
	case CommandTogglePause:
		return "toggle_pause"
	case CommandRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// minDimension is the smallest field size accepted by Resize.
const minDimension = 1.0

// Dimensions is the logical play-field size.
type Dimensions struct {
	Width  float64
	Height float64
}

func (d Dimensions) clamped() Dimensions {
	if d.Width < minDimension {
		d.Width = minDimension
	}
	if d.Height < minDimension {
		d.Height = minDimension
	}
	return d
}

// Achievement is a score threshold with its celebration message.
type Achievement struct {
	Score int
	Label string
}

// Simulation owns the flyer, the gate field, score and state.
type Simulation struct {
	state     State
	score     int
	highScore int
	ticks     uint64

	field   Dimensions
	gravity float64
	lift    float64

	flyer *Flyer
	gates *GateField

	achievements map[int]string
	awarded      map[int]bool

	rng      RandSource
	store    HighScoreStore
	listener Listener
	logger   *log.Logger
}

// Option configures a Simulation.
type Option func(*Simulation)

// WithRand sets the random source used for gap placement.
func WithRand(r RandSource) Option {
	return func(s *Simulation) { s.rng = r }
}

// WithSeed seeds a math/rand source for gap placement.
func WithSeed(seed int64) Option {
	return func(s *Simulation) { s.rng = rand.New(rand.NewSource(seed)) }
}

// WithStore sets the high-score persistence collaborator.
func WithStore(store HighScoreStore) Option {
	return func(s *Simulation) { s.store = store }
}

// WithListener sets the event listener.
func WithListener(l Listener) Option {
	return func(s *Simulation) { s.listener = l }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(s *Simulation) { s.logger = l }
}

// New creates a simulation in the Ready state. If a store is configured the
// high score is loaded from it; load errors are logged and treated as 0.
func New(cfg config.FlapgateConfig, opts ...Option) *Simulation {
	cfg.Sanitize()

	s := &Simulation{
		state:        StateReady,
		field:        Dimensions{Width: cfg.Field.Width, Height: cfg.Field.Height}.clamped(),
		gravity:      cfg.Physics.Gravity,
		lift:         cfg.Physics.Lift,
		achievements: make(map[int]string, len(cfg.Achievements)),
		awarded:      make(map[int]bool),
	}
	for _, a := range cfg.Achievements {
		s.achievements[a.Score] = a.Label
	}

	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(1))
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}

	s.flyer = NewFlyer(cfg.Flyer.Width, cfg.Flyer.Height, s.field)
	s.gates = NewGateField(s.rng, s.field, cfg)
	s.loadHighScore()

	return s
}

func (s *Simulation) loadHighScore() {
	if s.store == nil {
		return
	}
	hs, err := s.store.LoadHighScore()
	if err != nil {
		s.logger.Warn("could not load high score", "error", err)
		return
	}
	if hs > 0 {
		s.highScore = hs
	}
}

// Handle dispatches a driver command.
func (s *Simulation) Handle(cmd Command) {
	switch cmd {
	case CommandStart:
		s.Start()
	case CommandFlap:
		s.Flap()
	case CommandTogglePause:
		s.TogglePause()
	case CommandRestart:
		s.Restart()
	}
}

// Start begins play. Only valid from Ready.
func (s *Simulation) Start() {
	if s.state != StateReady {
		return
	}
	s.state = StatePlaying
	s.logger.Debug("game started")
}

// Flap gives the flyer an upward impulse. Ignored unless Playing.
func (s *Simulation) Flap() {
	if s.state != StatePlaying {
		return
	}
	s.flyer.Flap(s.lift)
}

// TogglePause switches between Playing and Paused. Ignored in Ready and Over.
func (s *Simulation) TogglePause() {
	switch s.state {
	case StatePlaying:
		s.state = StatePaused
	case StatePaused:
		s.state = StatePlaying
	}
}

// Restart returns to Ready with a fresh flyer, no gates, zero score and no
// awarded achievements. The high score is kept.
func (s *Simulation) Restart() {
	s.state = StateReady
	s.score = 0
	s.ticks = 0
	clear(s.awarded)
	s.flyer.Reset()
	s.gates.Reset()
}

// Resize updates the field dimensions. Non-positive sizes are clamped.
// The flyer and gates in flight keep their positions; new spawns, bounds
// checks and the next reset use the new size.
func (s *Simulation) Resize(width, height float64) {
	s.field = Dimensions{Width: width, Height: height}.clamped()
	s.flyer.Resize(s.field)
	s.gates.Resize(s.field)
}

// Tick advances the simulation by one fixed step. Outside Playing it does
// nothing, so drivers may call it unconditionally every frame.
func (s *Simulation) Tick() {
	if s.state != StatePlaying {
		return
	}
	s.ticks++

	s.flyer.Update(s.gravity)
	s.gates.Advance(s.score)

	if s.gates.CheckCollision(s.flyer.BoundingBox()) || s.flyer.IsOutOfBounds(s.field.Height) {
		s.endGame()
		return
	}

	if s.gates.CheckScore(s.flyer.X()) {
		s.score++
		s.checkAchievements()
	}
}

// endGame transitions to Over exactly once.
func (s *Simulation) endGame() {
	if s.state == StateOver {
		return
	}
	s.state = StateOver

	if s.score > s.highScore {
		s.highScore = s.score
		if s.store != nil {
			if err := s.store.PersistHighScore(s.highScore); err != nil {
				s.logger.Warn("could not persist high score", "score", s.highScore, "error", err)
			}
		}
	}

	s.logger.Debug("game over", "score", s.score, "high", s.highScore, "ticks", s.ticks)
	if s.listener != nil {
		s.listener.OnGameOver(s.score, s.highScore)
	}
}

func (s *Simulation) checkAchievements() {
	label, ok := s.achievements[s.score]
	if !ok || s.awarded[s.score] {
		return
	}
	s.awarded[s.score] = true
	s.logger.Debug("achievement", "score", s.score, "label", label)
	if s.listener != nil {
		s.listener.OnAchievement(label)
	}
}

// State returns the current lifecycle state.
func (s *Simulation) State() State { return s.state }

// Score returns the current score.
func (s *Simulation) Score() int { return s.score }

// HighScore returns the best score seen this session or loaded at startup.
func (s *Simulation) HighScore() int { return s.highScore }

// Ticks returns the number of Playing ticks since the last restart.
func (s *Simulation) Ticks() uint64 { return s.ticks }

// Field returns the current field dimensions.
func (s *Simulation) Field() Dimensions { return s.field }

// Achievements returns the configured thresholds sorted by score.
func (s *Simulation) Achievements() []Achievement {
	out := make([]Achievement, 0, len(s.achievements))
	for score, label := range s.achievements {
		out = append(out, Achievement{Score: score, Label: label})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Score < out[j].Score })
	return out
}

// Awarded reports whether the achievement at score has fired this session.
func (s *Simulation) Awarded(score int) bool { return s.awarded[score] }
