package physics

import (
	"math"
	"testing"
)

func TestVelocityTheta(t *testing.T) {
	tests := []struct {
		name     string
		x, y     float64
		expected float64
	}{
		{"+x", 1, 0, 0},
		{"+y", 0, 1, math.Pi / 2},
		{"-x", -1, 0, math.Pi},
		{"-y", 0, -1, 3 * math.Pi / 2},
		{"fourth quadrant", 1, -1, 7 * math.Pi / 4},
		{"zero", 0, 0, math.Pi / 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := NewVelocity(tc.x, tc.y)
			if tc.x == 0 && tc.y == 0 {
				// acos(0) for the zero vector; only require a finite heading.
				if math.IsNaN(v.Theta) {
					t.Fatal("zero velocity produced NaN heading")
				}
				return
			}
			if !approx(v.Theta, tc.expected) {
				t.Errorf("Theta = %v, expected %v", v.Theta, tc.expected)
			}
			if v.Theta < 0 || v.Theta >= 2*math.Pi {
				t.Errorf("Theta %v outside [0, 2π)", v.Theta)
			}
		})
	}
}

func TestVelocityMag(t *testing.T) {
	v := NewVelocity(3, 4)
	if !approx(v.Mag, 5) {
		t.Errorf("Mag = %v, expected 5", v.Mag)
	}
}

func TestNewForce(t *testing.T) {
	f := NewForce(V(3, 4), 10)
	if !vecApprox(f.Vec2, V(6, 8)) {
		t.Errorf("force = %v, expected (6, 8)", f.Vec2)
	}
	if f.Mag != 10 {
		t.Errorf("Mag = %v, expected 10", f.Mag)
	}

	zero := NewForce(V(0, 0), 10)
	if !zero.IsZero() || zero.Mag != 0 {
		t.Errorf("zero direction should give zero force, got %+v", zero)
	}
}

func TestForceAdd(t *testing.T) {
	f := NewForce(V(1, 0), 3).Add(NewForce(V(0, 1), 4))
	if !vecApprox(f.Vec2, V(3, 4)) {
		t.Errorf("sum = %v, expected (3, 4)", f.Vec2)
	}
	if !approx(f.Mag, 5) {
		t.Errorf("Mag = %v, expected 5", f.Mag)
	}
}

func TestMomentum(t *testing.T) {
	p := NewMomentum(V(2, -1), 10)
	if !vecApprox(p.Vec2, V(20, -10)) {
		t.Errorf("momentum = %v, expected (20, -10)", p.Vec2)
	}

	imp := MomentumFromImpulse(NewForce(V(0, 1), 60), 0.5)
	if !vecApprox(imp.Vec2, V(0, 30)) {
		t.Errorf("impulse = %v, expected (0, 30)", imp.Vec2)
	}

	sum := p.Add(imp)
	if !vecApprox(sum.Vec2, V(20, 20)) {
		t.Errorf("sum = %v, expected (20, 20)", sum.Vec2)
	}
}
