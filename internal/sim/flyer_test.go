package sim

import "testing"

func TestFlyerReset(t *testing.T) {
	f := NewFlyer(30, 30, Dimensions{Width: 400, Height: 600})

	if f.X() != 80 {
		t.Errorf("X = %v, expected 80 (width/5)", f.X())
	}
	if f.Y() != 300 {
		t.Errorf("Y = %v, expected 300 (height/2)", f.Y())
	}
	if f.Velocity() != 0 {
		t.Errorf("Velocity = %v, expected 0", f.Velocity())
	}

	f.Flap(-5)
	f.Update(0.25)
	f.Resize(Dimensions{Width: 500, Height: 200})
	if f.X() != 80 || f.Y() == 100 {
		t.Errorf("Resize moved the flyer to (%v, %v)", f.X(), f.Y())
	}
	f.Reset()

	if f.X() != 100 || f.Y() != 100 || f.Velocity() != 0 {
		t.Errorf("after Reset got (%v, %v, v=%v), expected (100, 100, v=0)", f.X(), f.Y(), f.Velocity())
	}
	if w, h := f.Size(); w != 30 || h != 30 {
		t.Errorf("Reset should keep size, got %vx%v", w, h)
	}
}

func TestFlyerUpdateOrder(t *testing.T) {
	f := NewFlyer(30, 30, Dimensions{Width: 400, Height: 600})
	const gravity = 0.25

	for i := 0; i < 20; i++ {
		vBefore, yBefore := f.Velocity(), f.Y()
		f.Update(gravity)

		if f.Velocity() != vBefore+gravity {
			t.Fatalf("tick %d: velocity = %v, expected %v", i, f.Velocity(), vBefore+gravity)
		}
		if f.Y() != yBefore+f.Velocity() {
			t.Fatalf("tick %d: y = %v, expected %v (uses updated velocity)", i, f.Y(), yBefore+f.Velocity())
		}
	}
}

func TestFlyerFlapIsAbsolute(t *testing.T) {
	velocities := []float64{-12, -5, 0, 3.5, 40}
	for _, v := range velocities {
		f := NewFlyer(30, 30, Dimensions{Width: 400, Height: 600})
		f.velocity = v
		f.Flap(-5)
		if f.Velocity() != -5 {
			t.Errorf("Flap from %v: velocity = %v, expected -5", v, f.Velocity())
		}
		f.Flap(-5)
		if f.Velocity() != -5 {
			t.Errorf("second Flap should be idempotent, got %v", f.Velocity())
		}
	}
}

func TestFlyerIsOutOfBounds(t *testing.T) {
	tests := []struct {
		name string
		y    float64
		want bool
	}{
		{"middle", 300, false},
		{"top edge", 0, false},
		{"partly above top", -29, false},
		{"exactly one height above", -30, false},
		{"fully above top", -30.01, true},
		{"bottom limit", 570, false},
		{"past bottom limit", 570.01, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := NewFlyer(30, 30, Dimensions{Width: 400, Height: 600})
			f.y = tc.y
			if got := f.IsOutOfBounds(600); got != tc.want {
				t.Errorf("IsOutOfBounds at y=%v = %v, expected %v", tc.y, got, tc.want)
			}
		})
	}
}

func TestFlyerRotationHint(t *testing.T) {
	tests := []struct {
		velocity float64
		want     float64
	}{
		{0, 0},
		{-5, -35},
		{-10, -45},
		{2, 14},
		{10, 25},
	}

	for _, tc := range tests {
		f := NewFlyer(30, 30, Dimensions{Width: 400, Height: 600})
		f.velocity = tc.velocity
		if got := f.RotationHint(); got != tc.want {
			t.Errorf("RotationHint(v=%v) = %v, expected %v", tc.velocity, got, tc.want)
		}
	}
}

func TestFlyerBoundingBox(t *testing.T) {
	f := NewFlyer(30, 20, Dimensions{Width: 400, Height: 600})
	box := f.BoundingBox()
	if box.X != 80 || box.Y != 300 || box.W != 30 || box.H != 20 {
		t.Errorf("BoundingBox = %+v, expected {80 300 30 20}", box)
	}
}
