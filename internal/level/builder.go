// Package level generates playable scenes from the difficulty tier table by
// bounded rejection sampling, and assembles multi-level runs.
package level

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/spaceshots/internal/assets"
	"github.com/vovakirdan/spaceshots/internal/config"
	"github.com/vovakirdan/spaceshots/internal/physics"
	"github.com/vovakirdan/spaceshots/internal/scene"
)

// repositionSteps is the number of evenly spaced orbit phases tried when
// moving a planet away from the spacecraft spawn.
const repositionSteps = 72

// Builder creates scenes for a fixed world size.
type Builder struct {
	width, height float64
	padding       float64
	tiers         config.TierTable
	rng           *rand.Rand
	budget        Budget
	logger        *log.Logger
}

// BuilderConfig configures a Builder. A nil Logger uses log.Default() and a
// zero Budget uses DefaultBudget.
type BuilderConfig struct {
	Width, Height float64
	Tiers         config.TierTable
	Seed          int64
	Budget        Budget
	Logger        *log.Logger
}

// NewBuilder creates a level builder.
func NewBuilder(cfg BuilderConfig) (*Builder, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: world size %vx%v", config.ErrInvalidConfig, cfg.Width, cfg.Height)
	}
	if cfg.Budget == (Budget{}) {
		cfg.Budget = DefaultBudget
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	return &Builder{
		width:   cfg.Width,
		height:  cfg.Height,
		padding: math.Min(cfg.Width, cfg.Height) / 8,
		tiers:   cfg.Tiers,
		rng:     rand.New(rand.NewSource(cfg.Seed)),
		budget:  cfg.Budget,
		logger:  cfg.Logger,
	}, nil
}

// orbitCandidate is one draw of the orbit-placement loop.
type orbitCandidate struct {
	orbits         *physics.OrbitCollection
	minSep, maxSep float64
}

// Create generates a scene for tier. It only fails on configuration errors;
// an exhausted budget yields a best-effort scene.
func (b *Builder) Create(ctx context.Context, tier config.Tier) (*scene.Scene, error) {
	start := time.Now()
	cfg, err := b.tiers.Get(tier)
	if err != nil {
		return nil, err
	}

	// Orbits
	n := b.intIn(cfg.Planets.Count)
	res := Sample(ctx, b.budget,
		func() orbitCandidate { return b.drawOrbits(cfg.Orbits, n) },
		func(c orbitCandidate) bool { return c.orbits.Valid(c.minSep, c.maxSep) },
	)
	orbits := res.Value.orbits
	bestEffort := !res.Valid
	if bestEffort {
		keep := orbits.NonOverlappingPrefix()
		b.logger.Warn("level generation budget exhausted, using best effort",
			"tier", tier, "attempts", res.Attempts, "orbits", n, "kept", keep)
		orbits = physics.NewOrbitCollection(orbits.Orbits[:keep]...)
	}

	// Spacecraft
	sc, err := b.newSpacecraft(cfg.Spacecraft)
	if err != nil {
		return nil, err
	}

	// Planets
	planets := make([]*assets.Planet, 0, orbits.Len())
	for i, o := range orbits.Orbits {
		p, err := assets.NewPlanet(fmt.Sprintf("planet-%d", i+1), b.in(cfg.Planets.Mass), o, cfg.Planets.RadiusPerKg)
		if err != nil {
			return nil, err
		}
		b.reposition(p, sc)
		planets = append(planets, p)
	}
	switch cfg.Orbits.Direction {
	case config.DirectionSpacecraft:
		orbits.AdjustToPoint(sc.Position)
	case config.DirectionHalf:
		orbits.AdjustByHalf(b.width)
	default:
		orbits.AdjustToScreen(b.width, b.height)
	}

	// Scene
	side := scene.Sides[b.weighted(cfg.Scene.SideWeights)]
	s, err := scene.New(scene.Params{
		Width:            b.width,
		Height:           b.height,
		Spacecraft:       sc,
		Planets:          planets,
		WinRegion:        b.winRegion(side, cfg.Scene.WinRegionLength),
		WinVelocity:      b.in(cfg.Scene.WinVelocity),
		CompletionScore:  b.in(cfg.Scene.CompletionScore),
		AttemptReduction: b.in(cfg.Scene.AttemptReduction),
		GasBonus:         b.in(cfg.Scene.GasBonus),
		ClosestOnly:      cfg.Scene.ClosestOnly,
		Tier:             tier,
		BestEffort:       bestEffort,
	})
	if err != nil {
		return nil, err
	}

	b.logger.Debug("level generated",
		"tier", tier, "planets", len(planets), "side", side,
		"attempts", res.Attempts, "took", time.Since(start))
	return s, nil
}

func (b *Builder) drawOrbits(cfg config.OrbitConfig, n int) orbitCandidate {
	orbits := make([]*physics.Orbit, n)
	for i := range orbits {
		orbits[i] = physics.NewOrbit(
			b.in(cfg.A),
			b.in(cfg.B),
			physics.Vec2{X: b.in(cfg.CenterX), Y: b.in(cfg.CenterY)},
			b.uniform(0, 2*math.Pi),
			b.in(cfg.AngularStep),
			true,
		)
	}
	return orbitCandidate{
		orbits: physics.NewOrbitCollection(orbits...),
		minSep: b.in(cfg.MinSeparation),
		maxSep: b.in(cfg.MaxSeparation),
	}
}

func (b *Builder) newSpacecraft(cfg config.SpacecraftConfig) (*assets.Spacecraft, error) {
	size := b.in(cfg.Size)
	// Effective radius is size/2 + size/2.
	pos := physics.Vec2{
		X: physics.Clamp(b.in(cfg.StartX), size, b.width-size),
		Y: physics.Clamp(b.in(cfg.StartY), size, b.height-size),
	}
	return assets.NewSpacecraft(assets.SpacecraftParams{
		Name:         "spacecraft",
		Position:     pos,
		Mass:         b.in(cfg.Mass),
		Gas:          b.in(cfg.Gas),
		Thrust:       b.in(cfg.Thrust),
		GasPerThrust: cfg.GasPerThrust,
		Width:        size,
		Length:       size,
	})
}

// reposition walks the planet around its orbit and parks it at the phase
// inside the padded play area that is farthest from the spacecraft. The
// sampled phase is kept when no phase qualifies.
func (b *Builder) reposition(p *assets.Planet, sc *assets.Spacecraft) {
	area := physics.NewRect(physics.Vec2{}, physics.Vec2{X: b.width, Y: b.height}).Inset(b.padding)

	best, bestDist := -1.0, -1.0
	for k := 0; k < repositionSteps; k++ {
		phase := 2 * math.Pi * float64(k) / repositionSteps
		pos := p.Orbit.PositionAt(phase)
		if !area.Contains(pos) {
			continue
		}
		if d := pos.Dist(sc.Position); d > bestDist {
			best, bestDist = phase, d
		}
	}
	if best >= 0 {
		p.SetProgress(best)
	}
}

// winRegion places a segment of the sampled length on side.
func (b *Builder) winRegion(side scene.Side, length config.Range) scene.WinRegion {
	w, h := b.width, b.height
	edge := w
	if side.Vertical() {
		edge = h
	}
	var lo, hi float64
	if length.Of == config.BasisSide {
		lo, hi = length.Scale(edge)
	} else {
		lo, hi = length.Resolve(w, h)
	}
	l := b.uniform(lo, hi)

	switch side {
	case scene.SideLeft, scene.SideRight:
		x := 0.0
		if side == scene.SideRight {
			x = w
		}
		y := b.uniform(h/3, h*0.75)
		return scene.NewWinRegion(physics.Vec2{X: x, Y: y}, physics.Vec2{X: x, Y: math.Min(y+l, h)})
	default:
		y := 0.0
		if side == scene.SideTop {
			y = h
		}
		x := b.uniform(0, w/2)
		return scene.NewWinRegion(physics.Vec2{X: x, Y: y}, physics.Vec2{X: math.Min(x+l, w), Y: y})
	}
}

func (b *Builder) uniform(lo, hi float64) float64 {
	return lo + b.rng.Float64()*(hi-lo)
}

// in draws uniformly from r resolved against the world size.
func (b *Builder) in(r config.Range) float64 {
	return b.uniform(r.Resolve(b.width, b.height))
}

func (b *Builder) intIn(r config.IntRange) int {
	return r.Min + b.rng.Intn(r.Max-r.Min+1)
}

// weighted picks an index with probability proportional to its weight.
func (b *Builder) weighted(weights []float64) int {
	var total float64
	for _, w := range weights {
		total += w
	}
	x := b.rng.Float64() * total
	for i, w := range weights {
		if x < w {
			return i
		}
		x -= w
	}
	// Float rounding can leave x just past the last bucket.
	for i := len(weights) - 1; i >= 0; i-- {
		if weights[i] > 0 {
			return i
		}
	}
	return 0
}
