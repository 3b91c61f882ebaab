package sim

// FlyerSnapshot is a read-only copy of the flyer for renderers.
type FlyerSnapshot struct {
	X, Y          float64
	Width, Height float64
	RotationHint  float64 // Degrees, negative = nose up
}

// GateSnapshot is a read-only copy of one gate for renderers.
type GateSnapshot struct {
	X            float64
	Width        float64
	TopHeight    float64
	BottomY      float64
	BottomHeight float64
	Passed       bool
}

// Snapshot captures everything a renderer needs for one frame.
type Snapshot struct {
	State     State
	Score     int
	HighScore int
	Ticks     uint64
	Speed     float64
	Field     Dimensions
	Flyer     FlyerSnapshot
	Gates     []GateSnapshot
}

// FlyerSnapshot returns the flyer's current geometry and rotation hint.
func (s *Simulation) FlyerSnapshot() FlyerSnapshot {
	w, h := s.flyer.Size()
	return FlyerSnapshot{
		X:            s.flyer.X(),
		Y:            s.flyer.Y(),
		Width:        w,
		Height:       h,
		RotationHint: s.flyer.RotationHint(),
	}
}

// GateSnapshots returns the active gates in creation order.
func (s *Simulation) GateSnapshots() []GateSnapshot {
	gates := s.gates.Gates()
	out := make([]GateSnapshot, len(gates))
	for i := range gates {
		g := &gates[i]
		out[i] = GateSnapshot{
			X:            g.X(),
			Width:        g.Width(),
			TopHeight:    g.TopHeight(),
			BottomY:      g.BottomY(),
			BottomHeight: g.BottomHeight(),
			Passed:       g.Passed(),
		}
	}
	return out
}

// Snapshot returns the full render state.
func (s *Simulation) Snapshot() Snapshot {
	return Snapshot{
		State:     s.state,
		Score:     s.score,
		HighScore: s.highScore,
		Ticks:     s.ticks,
		Speed:     s.gates.Speed(),
		Field:     s.field,
		Flyer:     s.FlyerSnapshot(),
		Gates:     s.GateSnapshots(),
	}
}
