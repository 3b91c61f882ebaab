package sim

import (
	"github.com/vovakirdan/flapgate/internal/config"
	"github.com/vovakirdan/flapgate/internal/core"
)

// GateField handles spawning, movement, and removal of gates.
type GateField struct {
	gates         []Gate
	rng           RandSource
	field         Dimensions
	gateWidth     float64
	spawnInterval int
	countdown     int
	speed         float64
	schedule      config.SpeedSchedule
}

// NewGateField creates an empty gate field. The first gate spawns on the
// first Advance call.
func NewGateField(rng RandSource, field Dimensions, cfg config.FlapgateConfig) *GateField {
	gf := &GateField{
		gates:         make([]Gate, 0, 8),
		rng:           rng,
		field:         field.clamped(),
		gateWidth:     cfg.Gates.Width,
		spawnInterval: cfg.Gates.SpawnInterval,
		schedule:      config.NewSpeedSchedule(cfg.Difficulty),
	}
	if gf.gateWidth <= 0 {
		gf.gateWidth = config.DefaultGateWidth
	}
	gf.Reset()
	return gf
}

// Reset clears all gates and primes the spawn countdown so that a gate
// appears on the next Advance.
func (gf *GateField) Reset() {
	clear(gf.gates)
	gf.gates = gf.gates[:0]
	gf.countdown = gf.spawnInterval
	gf.speed = gf.schedule.Base()
}

// Resize updates the field dimensions used for future spawns.
// Gates already in flight keep their positions and geometry.
func (gf *GateField) Resize(field Dimensions) {
	gf.field = field.clamped()
}

// Advance runs one tick: spawn if the countdown expired, recompute speed
// from score, move every gate and drop the ones that left the field.
func (gf *GateField) Advance(score int) {
	gf.countdown++
	if gf.countdown > gf.spawnInterval {
		gf.spawn()
		gf.countdown = 0
	}

	gf.speed = gf.schedule.Speed(score)

	for i := range gf.gates {
		gf.gates[i].Advance(gf.speed)
	}

	// Remove gates that have moved off the left side
	valid := gf.gates[:0]
	for _, g := range gf.gates {
		if !g.IsOffScreen() {
			valid = append(valid, g)
		}
	}
	clear(gf.gates[len(valid):])
	gf.gates = valid
}

func (gf *GateField) spawn() {
	gf.gates = append(gf.gates, NewGate(gf.field, gf.gateWidth, gf.rng.Float64()))
}

// CheckCollision tests if the given rectangle collides with any gate.
func (gf *GateField) CheckCollision(rect core.Rect) bool {
	for i := range gf.gates {
		if gf.gates[i].CollidesWith(rect) {
			return true
		}
	}
	return false
}

// CheckScore marks and reports the first gate, in creation order, that the
// flyer has newly passed. At most one gate scores per call.
func (gf *GateField) CheckScore(flyerX float64) bool {
	for i := range gf.gates {
		if gf.gates[i].CheckPassed(flyerX) {
			return true
		}
	}
	return false
}

// Gates returns the active gates in creation order. Callers must not modify
// the returned slice.
func (gf *GateField) Gates() []Gate {
	return gf.gates
}

// Len returns the number of active gates.
func (gf *GateField) Len() int {
	return len(gf.gates)
}

// Speed returns the speed applied on the most recent Advance.
func (gf *GateField) Speed() float64 {
	return gf.speed
}

// Countdown returns the ticks elapsed since the last spawn.
func (gf *GateField) Countdown() int {
	return gf.countdown
}
