package physics

import "math"

// adjustProbe is the time slice (seconds) used to look one step ahead when
// tuning orbit directions.
const adjustProbe = 1.0

// Orbit is an axis-aligned ellipse traced by a planet.
type Orbit struct {
	A, B        float64 // Semi-axes along x and y
	Center      Vec2
	Progress    float64 // Phase in radians, kept in [0, 2π)
	AngularStep float64 // Radians per second
	Clockwise   bool    // true: progress increases each step
}

// NewOrbit creates an orbit with progress wrapped into [0, 2π).
func NewOrbit(a, b float64, center Vec2, progress, angularStep float64, clockwise bool) *Orbit {
	return &Orbit{
		A:           a,
		B:           b,
		Center:      center,
		Progress:    WrapAngle(progress),
		AngularStep: angularStep,
		Clockwise:   clockwise,
	}
}

// PositionAt returns the point on the ellipse for the given phase.
func (o *Orbit) PositionAt(progress float64) Vec2 {
	sin, cos := math.Sincos(progress)
	return Vec2{
		X: o.A*cos + o.Center.X,
		Y: o.B*sin + o.Center.Y,
	}
}

// Position returns the current point on the ellipse.
func (o *Orbit) Position() Vec2 {
	return o.PositionAt(o.Progress)
}

// NextPosition advances the phase by AngularStep*dt in the orbit's
// direction and returns the new position.
func (o *Orbit) NextPosition(dt float64) Vec2 {
	delta := o.AngularStep * dt
	if !o.Clockwise {
		delta = -delta
	}
	o.Progress = WrapAngle(o.Progress + delta)
	return o.Position()
}

// PrevPosition undoes NextPosition(dt).
func (o *Orbit) PrevPosition(dt float64) Vec2 {
	return o.NextPosition(-dt)
}

// SetProgress sets the phase, wrapping it into [0, 2π).
func (o *Orbit) SetProgress(p float64) {
	o.Progress = WrapAngle(p)
}

// SetProgressFromPoint derives the phase from the x offset of pt relative to
// the center. Only the upper half of the ellipse is reachable this way.
func (o *Orbit) SetProgressFromPoint(pt Vec2) {
	if o.A == 0 {
		o.Progress = 0
		return
	}
	o.Progress = math.Acos(Clamp((pt.X-o.Center.X)/o.A, -1, 1))
}

// Reset puts the orbit back at phase 0.
func (o *Orbit) Reset() Vec2 {
	o.Progress = 0
	return o.Position()
}

// Bounds returns the rectangle enclosing the whole ellipse.
func (o *Orbit) Bounds() Rect {
	return NewRect(
		Vec2{X: o.Center.X - o.A, Y: o.Center.Y + o.B},
		Vec2{X: o.Center.X + o.A, Y: o.Center.Y - o.B},
	)
}

// OrbitCollection groups the orbits of one scene.
type OrbitCollection struct {
	Orbits []*Orbit
}

// NewOrbitCollection wraps the given orbits.
func NewOrbitCollection(orbits ...*Orbit) *OrbitCollection {
	return &OrbitCollection{Orbits: orbits}
}

// Len returns the number of orbits.
func (c *OrbitCollection) Len() int {
	return len(c.Orbits)
}

// Valid reports whether every distinct pair of orbits is non-overlapping and
// separated by a bounding-box gap within [minDist, maxDist].
func (c *OrbitCollection) Valid(minDist, maxDist float64) bool {
	for i := 0; i < len(c.Orbits); i++ {
		for j := i + 1; j < len(c.Orbits); j++ {
			a, b := c.Orbits[i].Bounds(), c.Orbits[j].Bounds()
			if Intersects(a, b) {
				return false
			}
			gap := Distance(a, b)
			if gap < minDist || gap > maxDist {
				return false
			}
		}
	}
	return true
}

// NonOverlappingPrefix returns the length of the longest prefix of orbits
// whose bounding boxes pairwise do not overlap. It is at least 1 for a
// non-empty collection.
func (c *OrbitCollection) NonOverlappingPrefix() int {
	n := 0
	for i := range c.Orbits {
		for j := 0; j < i; j++ {
			if Intersects(c.Orbits[i].Bounds(), c.Orbits[j].Bounds()) {
				return n
			}
		}
		n++
	}
	return n
}

// AdjustToScreen flips every orbit whose next step would carry its planet
// away from the center of a w x h screen.
func (c *OrbitCollection) AdjustToScreen(w, h float64) {
	c.AdjustToPoint(Vec2{X: w / 2, Y: h / 2})
}

// AdjustToPoint flips every orbit whose next step would carry its planet
// away from pt. Phases are left untouched.
func (c *OrbitCollection) AdjustToPoint(pt Vec2) {
	for _, o := range c.Orbits {
		saved := o.Progress
		current := o.Position().Dist(pt)
		next := o.NextPosition(adjustProbe).Dist(pt)
		o.Progress = saved
		if next > current {
			o.Clockwise = !o.Clockwise
		}
	}
}

// AdjustByHalf sets planets in the left half of a screen of width w to
// clockwise and the rest to counter-clockwise.
func (c *OrbitCollection) AdjustByHalf(w float64) {
	for _, o := range c.Orbits {
		o.Clockwise = o.Position().X <= w/2
	}
}
