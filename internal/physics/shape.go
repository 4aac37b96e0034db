package physics

import "math"

// Shape is the closed set of collision shapes: Circle or Rect.
// The unexported method keeps other packages from adding variants, so the
// type switches below cover every case.
type Shape interface {
	shape()
	// Bounds returns the axis-aligned rectangle enclosing the shape.
	Bounds() Rect
}

// Circle is a circle with a center and radius.
type Circle struct {
	Center Vec2
	R      float64
}

// Rect is an axis-aligned rectangle stored as its min and max corners.
type Rect struct {
	Min, Max Vec2
}

func (Circle) shape() {}
func (Rect) shape()   {}

// NewRect builds a rectangle from any two opposite corners,
// e.g. top-left and bottom-right.
func NewRect(a, b Vec2) Rect {
	return Rect{
		Min: Vec2{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y)},
		Max: Vec2{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y)},
	}
}

// Bounds returns the square enclosing the circle.
func (c Circle) Bounds() Rect {
	r := Vec2{X: c.R, Y: c.R}
	return Rect{Min: c.Center.Sub(r), Max: c.Center.Add(r)}
}

// Bounds returns r itself.
func (r Rect) Bounds() Rect {
	return r
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns the vertical extent.
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Inset shrinks r by pad on every side.
func (r Rect) Inset(pad float64) Rect {
	return Rect{
		Min: Vec2{X: r.Min.X + pad, Y: r.Min.Y + pad},
		Max: Vec2{X: r.Max.X - pad, Y: r.Max.Y - pad},
	}
}

// closest returns the point of r nearest to p.
func (r Rect) closest(p Vec2) Vec2 {
	return Vec2{
		X: Clamp(p.X, r.Min.X, r.Max.X),
		Y: Clamp(p.Y, r.Min.Y, r.Max.Y),
	}
}

// Intersects reports whether two shapes overlap. It is symmetric.
func Intersects(a, b Shape) bool {
	switch a := a.(type) {
	case Circle:
		switch b := b.(type) {
		case Circle:
			return a.Center.Dist(b.Center) <= a.R+b.R
		case Rect:
			return circleRectGap(a, b) <= 0
		}
	case Rect:
		switch b := b.(type) {
		case Circle:
			return circleRectGap(b, a) <= 0
		case Rect:
			return rectsOverlap(a, b)
		}
	}
	return false
}

// Distance returns the minimum gap between two shapes, or 0 when they overlap.
func Distance(a, b Shape) float64 {
	switch a := a.(type) {
	case Circle:
		switch b := b.(type) {
		case Circle:
			return math.Max(0, a.Center.Dist(b.Center)-(a.R+b.R))
		case Rect:
			return math.Max(0, circleRectGap(a, b))
		}
	case Rect:
		switch b := b.(type) {
		case Circle:
			return math.Max(0, circleRectGap(b, a))
		case Rect:
			return rectGap(a, b)
		}
	}
	return 0
}

// rectsOverlap is the separating-axis test for two axis-aligned rectangles.
// Rectangles that only share an edge do not overlap.
func rectsOverlap(a, b Rect) bool {
	// One is entirely left of the other
	if a.Min.X >= b.Max.X || b.Min.X >= a.Max.X {
		return false
	}
	// One is entirely above the other
	if a.Min.Y >= b.Max.Y || b.Min.Y >= a.Max.Y {
		return false
	}
	return true
}

// rectGap measures the shortest distance between two rectangles. When they are
// separated on both axes the gap is the corner-to-corner diagonal.
func rectGap(a, b Rect) float64 {
	dx := math.Max(0, math.Max(b.Min.X-a.Max.X, a.Min.X-b.Max.X))
	dy := math.Max(0, math.Max(b.Min.Y-a.Max.Y, a.Min.Y-b.Max.Y))
	return math.Hypot(dx, dy)
}

// circleRectGap is the signed gap between a circle's edge and a rectangle.
func circleRectGap(c Circle, r Rect) float64 {
	return c.Center.Dist(r.closest(c.Center)) - c.R
}
