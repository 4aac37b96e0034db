// Package scene holds one playable level: the bounded world, its planets,
// the spacecraft, the target region and the level's scoring parameters.
package scene

import (
	"fmt"

	"github.com/vovakirdan/spaceshots/internal/assets"
	"github.com/vovakirdan/spaceshots/internal/config"
	"github.com/vovakirdan/spaceshots/internal/physics"
)

// Rounding steps applied to generated parameters.
const (
	velocityRounding = 10
	scoreRounding    = 5
)

// Params configures a new Scene.
type Params struct {
	Width, Height    float64
	Spacecraft       *assets.Spacecraft
	Planets          []*assets.Planet
	WinRegion        WinRegion
	WinVelocity      float64 // Rounded to the nearest 10
	CompletionScore  float64 // Rounded to the nearest 5
	AttemptReduction float64 // Rounded to the nearest 5
	GasBonus         float64 // Rounded to the nearest 5
	ClosestOnly      bool    // Gravity from the nearest planet only
	Tier             config.Tier
	BestEffort       bool // Generation ran out of budget
}

// Scene is one level. The spacecraft's position at construction becomes its
// start pose, and every planet's orbit phase is recorded so that ResetPos
// can restore the initial layout exactly.
type Scene struct {
	Width, Height    float64
	Spacecraft       *assets.Spacecraft
	Planets          []*assets.Planet
	WinRegion        WinRegion
	WinVelocity      float64
	CompletionScore  float64
	AttemptReduction float64
	GasBonus         float64
	ClosestOnly      bool
	Tier             config.Tier
	BestEffort       bool

	Start     physics.Vec2 // Spacecraft start position
	Attempts  int
	Won       bool
	Failed    bool    // Last attempt ended in failure
	FuelAtWin float64 // Spacecraft fuel when the scene was won

	initialProgress []float64
}

// New validates p and builds a scene in its initial layout.
func New(p Params) (*Scene, error) {
	if p.Width <= 0 || p.Height <= 0 {
		return nil, fmt.Errorf("%w: scene size %vx%v", config.ErrInvalidConfig, p.Width, p.Height)
	}
	if p.Spacecraft == nil {
		return nil, fmt.Errorf("%w: scene has no spacecraft", config.ErrInvalidConfig)
	}
	if _, err := p.WinRegion.Side(p.Width, p.Height); err != nil {
		return nil, err
	}

	s := &Scene{
		Width:            p.Width,
		Height:           p.Height,
		Spacecraft:       p.Spacecraft,
		Planets:          p.Planets,
		WinRegion:        NewWinRegion(p.WinRegion.P1, p.WinRegion.P2),
		WinVelocity:      physics.RoundToNearest(p.WinVelocity, velocityRounding),
		CompletionScore:  physics.RoundToNearest(p.CompletionScore, scoreRounding),
		AttemptReduction: physics.RoundToNearest(p.AttemptReduction, scoreRounding),
		GasBonus:         physics.RoundToNearest(p.GasBonus, scoreRounding),
		ClosestOnly:      p.ClosestOnly,
		Tier:             p.Tier,
		BestEffort:       p.BestEffort,
		Start:            p.Spacecraft.Position,
		initialProgress:  make([]float64, len(p.Planets)),
	}
	for i, planet := range p.Planets {
		s.initialProgress[i] = planet.Orbit.Progress
	}
	s.ResetPos()
	return s, nil
}

// UpdateAllPos advances every planet and then the spacecraft by dt.
func (s *Scene) UpdateAllPos(dt float64) {
	for _, p := range s.Planets {
		p.Move(dt)
	}
	s.Spacecraft.UpdatePos(dt, s.Planets, s.ClosestOnly)
}

// ResetPos restores the spacecraft's start pose and fuel and every planet's
// initial orbit phase. Attempts and outcome flags are kept.
func (s *Scene) ResetPos() {
	start := s.Start
	s.Spacecraft.Reset(&start)
	for i, p := range s.Planets {
		p.SetProgress(s.initialProgress[i])
	}
}

// Reset returns the scene to its freshly built state.
func (s *Scene) Reset() {
	s.ResetPos()
	s.Attempts = 0
	s.Won = false
	s.Failed = false
	s.FuelAtWin = 0
}

// MarkWon records a win with the spacecraft's current fuel.
func (s *Scene) MarkWon() {
	s.Won = true
	s.Failed = false
	s.FuelAtWin = s.Spacecraft.Gas
}

// Orbits returns the planets' orbits as a collection.
func (s *Scene) Orbits() *physics.OrbitCollection {
	orbits := make([]*physics.Orbit, len(s.Planets))
	for i, p := range s.Planets {
		orbits[i] = p.Orbit
	}
	return physics.NewOrbitCollection(orbits...)
}

// Bounds returns the world rectangle.
func (s *Scene) Bounds() physics.Rect {
	return physics.NewRect(physics.Vec2{}, physics.Vec2{X: s.Width, Y: s.Height})
}
