package physics

import "math"

// G is the gravitational constant in m^3 / (kg s^2).
const G = 6.67408e-11

// Velocity is a velocity vector with its derived magnitude and heading.
type Velocity struct {
	Vec2
	Mag   float64 // Speed
	Theta float64 // Heading from +x in [0, 2π)
}

// NewVelocity builds a Velocity and derives its magnitude and heading.
func NewVelocity(x, y float64) Velocity {
	v := Vec2{X: x, Y: y}
	return Velocity{
		Vec2:  v,
		Mag:   v.Len(),
		Theta: headingOf(v),
	}
}

// headingOf measures the angle of v from the +x axis. acos alone only covers
// [0, π], so vectors below the x axis are reflected to keep the angle
// increasing monotonically through 180°.
func headingOf(v Vec2) float64 {
	angle := AngleBetween(Vec2{X: 1}, v)
	if v.Y < 0 {
		angle = 2*math.Pi - angle
	}
	return angle
}

// Force is a directed vector with a fixed magnitude.
type Force struct {
	Vec2
	Mag float64
}

// NewForce points a force of magnitude mag along dir.
// A zero direction yields the zero force.
func NewForce(dir Vec2, mag float64) Force {
	hyp := dir.Len()
	if hyp == 0 {
		return Force{}
	}
	return Force{Vec2: dir.Scale(mag / hyp), Mag: mag}
}

// Add returns the resultant of two forces.
func (f Force) Add(o Force) Force {
	sum := f.Vec2.Add(o.Vec2)
	return Force{Vec2: sum, Mag: sum.Len()}
}

// Momentum is mass times velocity.
type Momentum struct {
	Vec2
}

// NewMomentum returns the momentum of a body of the given mass moving at vel.
func NewMomentum(vel Vec2, mass float64) Momentum {
	return Momentum{Vec2: vel.Scale(mass)}
}

// MomentumFromImpulse converts a force applied over duration into a momentum delta.
func MomentumFromImpulse(f Force, duration float64) Momentum {
	return Momentum{Vec2: f.Vec2.Scale(duration)}
}

// Add returns the sum of two momenta.
func (p Momentum) Add(o Momentum) Momentum {
	return Momentum{Vec2: p.Vec2.Add(o.Vec2)}
}
