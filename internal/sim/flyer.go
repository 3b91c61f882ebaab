package sim

import "github.com/vovakirdan/flapgate/internal/core"

// Rotation hint bounds in degrees, and the velocity-to-degrees factor.
const (
	rotationFactor = 7.0
	rotationMin    = -45.0
	rotationMax    = 25.0
)

// Flyer is the player-controlled entity. It only moves vertically; its
// horizontal lane is fixed at reset.
type Flyer struct {
	x, y     float64
	velocity float64
	width    float64
	height   float64
	field    Dimensions
}

// NewFlyer creates a flyer with the given hitbox, placed at its start position.
func NewFlyer(width, height float64, field Dimensions) *Flyer {
	f := &Flyer{width: width, height: height, field: field}
	f.Reset()
	return f
}

// Update applies one tick of gravity: velocity first, then position.
func (f *Flyer) Update(gravity float64) {
	f.velocity += gravity
	f.y += f.velocity
}

// Flap sets the vertical velocity to lift, discarding the current velocity.
func (f *Flyer) Flap(lift float64) {
	f.velocity = lift
}

// IsOutOfBounds reports whether the flyer has left the field entirely
// through the top, or reached the point where it clips the bottom edge.
func (f *Flyer) IsOutOfBounds(fieldHeight float64) bool {
	return f.y < -f.height || f.y > fieldHeight-f.height
}

// BoundingBox returns the flyer's collision rectangle.
func (f *Flyer) BoundingBox() core.Rect {
	return core.NewRect(f.x, f.y, f.width, f.height)
}

// Reset puts the flyer back at its start position in the current field
// with zero velocity. The hitbox size is kept.
func (f *Flyer) Reset() {
	f.y = f.field.Height / 2
	f.x = f.field.Width / 5
	f.velocity = 0
}

// Resize records new field dimensions for the next Reset. The flyer does
// not move.
func (f *Flyer) Resize(field Dimensions) {
	f.field = field
}

// RotationHint returns a visual tilt in degrees derived from velocity.
// It is not part of the physics state.
func (f *Flyer) RotationHint() float64 {
	return core.ClampF(f.velocity*rotationFactor, rotationMin, rotationMax)
}

// X returns the flyer's horizontal position.
func (f *Flyer) X() float64 { return f.x }

// Y returns the flyer's vertical position (top of hitbox).
func (f *Flyer) Y() float64 { return f.y }

// Velocity returns the current vertical velocity (positive = down).
func (f *Flyer) Velocity() float64 { return f.velocity }

// Size returns the hitbox width and height.
func (f *Flyer) Size() (float64, float64) { return f.width, f.height }
