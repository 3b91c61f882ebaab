package sim

import "github.com/vovakirdan/flapgate/internal/core"

// Gap geometry relative to field height.
const (
	gapDivisor     = 4.0 // gap = fieldHeight / gapDivisor
	gapRangeFactor = 2.5 // width of the gap-center range is fieldHeight - gap*gapRangeFactor
)

// Gate is a pair of top/bottom obstacles with a vertical gap between them.
type Gate struct {
	x           float64
	width       float64
	gap         float64
	gapCenter   float64
	fieldHeight float64
	passed      bool
}

// NewGate creates a gate at the right edge of the field.
// draw must be uniform in [0, 1); it places the gap center in
// [gap, fieldHeight - 1.5*gap), keeping the gap away from both edges.
func NewGate(field Dimensions, width, draw float64) Gate {
	gap := field.Height / gapDivisor
	center := gap + draw*(field.Height-gap*gapRangeFactor)
	return Gate{
		x:           field.Width,
		width:       width,
		gap:         gap,
		gapCenter:   center,
		fieldHeight: field.Height,
	}
}

// Advance moves the gate left by speed.
func (g *Gate) Advance(speed float64) {
	g.x -= speed
}

// IsOffScreen reports whether the gate is entirely past the left edge.
func (g *Gate) IsOffScreen() bool {
	return g.x < -g.width
}

// TopRect returns the collision rectangle of the top segment.
func (g *Gate) TopRect() core.Rect {
	return core.NewRect(g.x, 0, g.width, g.TopHeight())
}

// BottomRect returns the collision rectangle of the bottom segment.
func (g *Gate) BottomRect() core.Rect {
	return core.NewRect(g.x, g.BottomY(), g.width, g.BottomHeight())
}

// CollidesWith reports whether rect overlaps either segment.
func (g *Gate) CollidesWith(rect core.Rect) bool {
	return rect.Intersects(g.TopRect()) || rect.Intersects(g.BottomRect())
}

// CheckPassed marks the gate as passed the first time flyerX is beyond its
// right edge. It returns true only on that first call.
func (g *Gate) CheckPassed(flyerX float64) bool {
	if g.passed || flyerX <= g.x+g.width {
		return false
	}
	g.passed = true
	return true
}

// X returns the gate's left edge.
func (g *Gate) X() float64 { return g.x }

// Width returns the gate width.
func (g *Gate) Width() float64 { return g.width }

// Gap returns the height of the passable gap.
func (g *Gate) Gap() float64 { return g.gap }

// GapCenter returns the vertical center of the gap.
func (g *Gate) GapCenter() float64 { return g.gapCenter }

// Passed reports whether the flyer has already scored on this gate.
func (g *Gate) Passed() bool { return g.passed }

// TopHeight returns the height of the top segment.
func (g *Gate) TopHeight() float64 {
	return g.gapCenter - g.gap/2
}

// BottomY returns the y-coordinate where the bottom segment starts.
func (g *Gate) BottomY() float64 {
	return g.gapCenter + g.gap/2
}

// BottomHeight returns the height of the bottom segment.
func (g *Gate) BottomHeight() float64 {
	return g.fieldHeight - g.BottomY()
}
