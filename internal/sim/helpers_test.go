package sim

import (
	"errors"

	"github.com/vovakirdan/flapgate/internal/config"
)

// scriptedRand returns the given draws in order, cycling when exhausted.
type scriptedRand struct {
	draws []float64
	i     int
}

func (r *scriptedRand) Float64() float64 {
	if len(r.draws) == 0 {
		return 0
	}
	v := r.draws[r.i%len(r.draws)]
	r.i++
	return v
}

// memStore is an in-memory HighScoreStore.
type memStore struct {
	high      int
	loadErr   error
	saveErr   error
	persisted []int
}

func (m *memStore) LoadHighScore() (int, error) {
	if m.loadErr != nil {
		return 0, m.loadErr
	}
	return m.high, nil
}

func (m *memStore) PersistHighScore(score int) error {
	m.persisted = append(m.persisted, score)
	if m.saveErr != nil {
		return m.saveErr
	}
	m.high = score
	return nil
}

var errDisk = errors.New("disk on fire")

// recorder collects listener events.
type recorder struct {
	achievements []string
	gameOvers    [][2]int
}

func (r *recorder) OnAchievement(label string) {
	r.achievements = append(r.achievements, label)
}

func (r *recorder) OnGameOver(finalScore, highScore int) {
	r.gameOvers = append(r.gameOvers, [2]int{finalScore, highScore})
}

// testConfig returns the default config on a 400x600 field with a 30x30 flyer.
func testConfig() config.FlapgateConfig {
	cfg := config.DefaultFlapgateConfig()
	cfg.Field = config.FieldConfig{Width: 400, Height: 600}
	cfg.Flyer = config.FlyerConfig{Width: 30, Height: 30}
	return cfg
}

// passableGate returns a narrow gate already left of the flyer, so the next
// score check passes it without any collision.
func passableGate(field Dimensions) Gate {
	g := NewGate(field, 10, 0.5)
	g.x = 0
	return g
}
