// Package assets implements the bodies of the simulation: planets that
// follow fixed orbits, and the thrust-steered spacecraft.
package assets

import (
	"fmt"

	"github.com/vovakirdan/spaceshots/internal/config"
	"github.com/vovakirdan/spaceshots/internal/physics"
)

// DefaultRadiusPerKg converts planet mass to a drawing/collision radius.
const DefaultRadiusPerKg = 45 / 4e16

// Planet is a massive body moving along an Orbit. Planets feel no forces.
type Planet struct {
	Name     string
	Mass     float64
	Radius   float64
	Orbit    *physics.Orbit
	Position physics.Vec2
	shape    physics.Circle
}

// NewPlanet places a planet at its orbit's current position.
// The radius is radiusPerKg * mass; pass 0 to use DefaultRadiusPerKg.
func NewPlanet(name string, mass float64, orbit *physics.Orbit, radiusPerKg float64) (*Planet, error) {
	if mass <= 0 {
		return nil, fmt.Errorf("%w: planet %s mass must be positive, got %v", config.ErrInvalidConfig, name, mass)
	}
	if orbit == nil {
		return nil, fmt.Errorf("%w: planet %s has no orbit", config.ErrInvalidConfig, name)
	}
	if radiusPerKg <= 0 {
		radiusPerKg = DefaultRadiusPerKg
	}
	p := &Planet{
		Name:   name,
		Mass:   mass,
		Radius: radiusPerKg * mass,
		Orbit:  orbit,
	}
	p.redraw()
	return p, nil
}

// Move advances the planet along its orbit by dt seconds.
func (p *Planet) Move(dt float64) physics.Vec2 {
	p.Orbit.NextPosition(dt)
	p.redraw()
	return p.Position
}

// SetProgress puts the planet at orbit phase progress.
func (p *Planet) SetProgress(progress float64) {
	p.Orbit.SetProgress(progress)
	p.redraw()
}

// Shape returns the planet's collision circle.
func (p *Planet) Shape() physics.Shape {
	return p.shape
}

func (p *Planet) redraw() {
	p.Position = p.Orbit.Position()
	p.shape = physics.Circle{Center: p.Position, R: p.Radius}
}
