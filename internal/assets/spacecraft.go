package assets

import (
	"fmt"
	"math"

	"github.com/vovakirdan/spaceshots/internal/config"
	"github.com/vovakirdan/spaceshots/internal/physics"
)

// ThrustDirection is a thruster axis relative to the spacecraft body.
// +y points along the direction of travel.
type ThrustDirection int

const (
	ThrustNegY ThrustDirection = iota // Retro thrust (brake)
	ThrustPosY                        // Forward thrust
	ThrustNegX                        // Turn left
	ThrustPosX                        // Turn right
)

// offset is the rotation from the body reference vector to the thrust vector.
func (d ThrustDirection) offset() float64 {
	switch d {
	case ThrustNegY:
		return 1.5 * math.Pi
	case ThrustPosY:
		return math.Pi / 2
	case ThrustNegX:
		return math.Pi
	default:
		return 0
	}
}

func (d ThrustDirection) String() string {
	switch d {
	case ThrustNegY:
		return "-y"
	case ThrustPosY:
		return "+y"
	case ThrustNegX:
		return "-x"
	case ThrustPosX:
		return "+x"
	}
	return fmt.Sprintf("ThrustDirection(%d)", int(d))
}

// Fuel and size defaults.
const (
	DefaultGasPerThrust = 1.0 / 1000
	DefaultSize         = 10.0
	gasRounding         = 10
)

// SpacecraftParams configures a new Spacecraft. Zero Width, Length and
// GasPerThrust fall back to the defaults above.
type SpacecraftParams struct {
	Name         string
	Position     physics.Vec2
	Mass         float64 // kg
	Gas          float64 // Initial fuel, rounded to the nearest 10
	Thrust       float64 // Thruster force magnitude (N)
	GasPerThrust float64 // Fuel burned per unit of thrust per tick
	Width        float64
	Length       float64
}

// Spacecraft is the player's ship. Velocity and heading are derived from
// momentum and only change through ApplyMomentum.
type Spacecraft struct {
	Name         string
	Position     physics.Vec2
	Mass         float64
	Gas          float64
	InitialGas   float64
	Thrust       bool
	Direction    ThrustDirection
	ThrustMag    float64
	GasPerThrust float64
	Width        float64
	Length       float64

	theta    float64
	momentum physics.Momentum
	velocity physics.Velocity
	shape    physics.Circle
}

// NewSpacecraft creates a stationary spacecraft.
func NewSpacecraft(p SpacecraftParams) (*Spacecraft, error) {
	if p.Mass <= 0 {
		return nil, fmt.Errorf("%w: spacecraft mass must be positive, got %v", config.ErrInvalidConfig, p.Mass)
	}
	if p.Gas < 0 || p.Thrust < 0 || p.GasPerThrust < 0 {
		return nil, fmt.Errorf("%w: spacecraft gas, thrust and burn rate must not be negative", config.ErrInvalidConfig)
	}
	if p.Width <= 0 {
		p.Width = DefaultSize
	}
	if p.Length <= 0 {
		p.Length = DefaultSize
	}
	if p.GasPerThrust == 0 {
		p.GasPerThrust = DefaultGasPerThrust
	}

	gas := physics.RoundToNearest(p.Gas, gasRounding)
	sc := &Spacecraft{
		Name:         p.Name,
		Position:     p.Position,
		Mass:         p.Mass,
		Gas:          gas,
		InitialGas:   gas,
		Direction:    ThrustNegY,
		ThrustMag:    p.Thrust,
		GasPerThrust: p.GasPerThrust,
		Width:        p.Width,
		Length:       p.Length,
	}
	sc.ApplyMomentum(physics.Momentum{})
	return sc, nil
}

// Momentum returns the current momentum.
func (s *Spacecraft) Momentum() physics.Momentum { return s.momentum }

// Velocity returns the velocity derived from the current momentum.
func (s *Spacecraft) Velocity() physics.Velocity { return s.velocity }

// Theta returns the body heading: velocity heading minus π/2.
func (s *Spacecraft) Theta() float64 { return s.theta }

// Radius returns the effective collision radius.
func (s *Spacecraft) Radius() float64 {
	return s.Width/2 + s.Length/2
}

// Shape returns the collision circle.
func (s *Spacecraft) Shape() physics.Shape {
	return s.shape
}

// ApplyMomentum sets the momentum and updates velocity, heading and collision
// shape together.
func (s *Spacecraft) ApplyMomentum(p physics.Momentum) {
	s.momentum = p
	s.velocity = physics.NewVelocity(p.X/s.Mass, p.Y/s.Mass)
	s.theta = s.velocity.Theta - math.Pi/2
	s.redraw()
}

// GravitationalForce returns the pull of planet on the spacecraft.
// Coincident centers yield the zero force.
func (s *Spacecraft) GravitationalForce(planet *Planet) physics.Force {
	d := planet.Position.Sub(s.Position)
	r := d.Len()
	if r == 0 {
		return physics.Force{}
	}
	return physics.NewForce(d, physics.G*planet.Mass*s.Mass/(r*r))
}

// ClosestPlanet returns the nearest planet, the first one on ties, or nil
// if planets is empty.
func (s *Spacecraft) ClosestPlanet(planets []*Planet) *Planet {
	var closest *Planet
	best := math.Inf(1)
	for _, p := range planets {
		if d := s.Position.Dist(p.Position); d < best {
			closest, best = p, d
		}
	}
	return closest
}

// ThrustImpulse burns fuel for one tick of length dt and returns the thrust
// impulse. With an empty tank thrust is switched off and the impulse is zero.
func (s *Spacecraft) ThrustImpulse(dt float64) physics.Momentum {
	if s.Gas <= 0 {
		s.Gas = 0
		s.Thrust = false
	}
	if !s.Thrust {
		return physics.Momentum{}
	}

	s.Gas -= math.Round(s.ThrustMag * s.GasPerThrust)
	if s.Gas <= 0 {
		s.Gas = 0
		s.Thrust = false
	}

	ref := physics.Vec2{X: 1}
	if !s.velocity.IsZero() {
		ref = physics.Rotate(ref, s.theta)
	}
	dir := physics.Rotate(ref, s.Direction.offset())
	return physics.MomentumFromImpulse(physics.NewForce(dir, s.ThrustMag), dt)
}

// UpdatePos advances the spacecraft by dt: gravity from the closest planet
// (or all planets) plus thrust is added to the momentum, then the position
// moves along the new velocity.
func (s *Spacecraft) UpdatePos(dt float64, planets []*Planet, closestOnly bool) physics.Vec2 {
	var gravity physics.Force
	if closestOnly {
		if p := s.ClosestPlanet(planets); p != nil {
			gravity = s.GravitationalForce(p)
		}
	} else {
		for _, p := range planets {
			gravity = gravity.Add(s.GravitationalForce(p))
		}
	}

	thrust := s.ThrustImpulse(dt)
	external := physics.MomentumFromImpulse(gravity, dt)
	s.ApplyMomentum(s.momentum.Add(thrust).Add(external))

	s.Position = s.Position.Add(s.velocity.Vec2.Scale(dt))
	s.redraw()
	return s.Position
}

// Reset switches thrust off, zeroes momentum and refuels. If start is non-nil
// the spacecraft is also moved there.
func (s *Spacecraft) Reset(start *physics.Vec2) {
	s.Thrust = false
	if start != nil {
		s.Position = *start
	}
	s.Gas = s.InitialGas
	s.ApplyMomentum(physics.Momentum{})
}

func (s *Spacecraft) redraw() {
	s.shape = physics.Circle{Center: s.Position, R: s.Radius()}
}
