// Package physics provides the vector math, force/momentum value types,
// orbital motion and collision shapes used by the simulation.
// It has no dependencies outside the standard library so that the core
// stays pure and testable.
package physics

import "math"

// Vec2 is a 2D vector. The world uses a y-up coordinate system.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for constructing a Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies both components by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Len returns the magnitude of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Dist returns the Euclidean distance between v and o.
func (v Vec2) Dist(o Vec2) float64 {
	return o.Sub(v).Len()
}

// IsZero reports whether both components are exactly zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// UnitVector returns v scaled to length 1.
// The zero vector maps to the zero vector.
func UnitVector(v Vec2) Vec2 {
	n := v.Len()
	if n > 0 {
		return v.Scale(1 / n)
	}
	return Vec2{}
}

// RotationMatrix returns the 2x2 counter-clockwise rotation matrix for theta.
func RotationMatrix(theta float64) [2][2]float64 {
	sin, cos := math.Sincos(theta)
	return [2][2]float64{
		{cos, -sin},
		{sin, cos},
	}
}

// Rotate rotates v by theta radians using RotationMatrix.
func Rotate(v Vec2, theta float64) Vec2 {
	m := RotationMatrix(theta)
	return Vec2{
		X: m[0][0]*v.X + m[0][1]*v.Y,
		Y: m[1][0]*v.X + m[1][1]*v.Y,
	}
}

// AngleBetween returns the unsigned angle in radians between a and b.
// The cosine is clamped to [-1, 1] so float overshoot never yields NaN.
func AngleBetween(a, b Vec2) float64 {
	return math.Acos(Clamp(UnitVector(a).Dot(UnitVector(b)), -1, 1))
}

// Clamp restricts val to [lo, hi].
func Clamp(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// WrapAngle maps theta into [0, 2π).
func WrapAngle(theta float64) float64 {
	theta = math.Mod(theta, 2*math.Pi)
	if theta < 0 {
		theta += 2 * math.Pi
	}
	return theta
}

// RoundToNearest rounds num to the nearest multiple of step.
func RoundToNearest(num, step float64) float64 {
	if step == 0 {
		return num
	}
	return math.Round(num/step) * step
}
