package game

import (
	"encoding/binary"
	"hash/fnv"
	"math"
	"strconv"
	"strings"
)

// PlanetView is the drawable state of a planet and its orbit.
type PlanetView struct {
	X, Y, Radius float64
	OrbitX       float64 // Orbit center
	OrbitY       float64
	A, B         float64
	Clockwise    bool
}

// Snapshot is a read-only projection of the current game state for
// presentation layers. Uses primitive types only.
type Snapshot struct {
	Tick   uint64
	Level  int // Zero-based index of the current scene
	Levels int
	Tier   string
	Done   bool

	Width, Height float64

	// Spacecraft
	X, Y       float64
	VX, VY     float64
	Speed      float64
	Theta      float64
	Radius     float64
	Gas        float64
	InitialGas float64
	Thrust     bool
	Direction  string

	// Target
	WinX1, WinY1 float64
	WinX2, WinY2 float64
	WinSide      string
	WinVelocity  float64

	Attempts   int
	BestEffort bool
	Planets    []PlanetView

	Score    float64
	GasBonus float64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	s := g.Current()
	sc := s.Spacecraft
	vel := sc.Velocity()

	planets := make([]PlanetView, len(s.Planets))
	for i, p := range s.Planets {
		planets[i] = PlanetView{
			X:         p.Position.X,
			Y:         p.Position.Y,
			Radius:    p.Radius,
			OrbitX:    p.Orbit.Center.X,
			OrbitY:    p.Orbit.Center.Y,
			A:         p.Orbit.A,
			B:         p.Orbit.B,
			Clockwise: p.Orbit.Clockwise,
		}
	}

	side := ""
	if sd, err := s.WinRegion.Side(s.Width, s.Height); err == nil {
		side = sd.String()
	}
	score, bonus := g.Score()

	return Snapshot{
		Tick:        g.tick,
		Level:       g.current,
		Levels:      len(g.scenes),
		Tier:        string(s.Tier),
		Done:        g.done,
		Width:       s.Width,
		Height:      s.Height,
		X:           sc.Position.X,
		Y:           sc.Position.Y,
		VX:          vel.X,
		VY:          vel.Y,
		Speed:       vel.Mag,
		Theta:       sc.Theta(),
		Radius:      sc.Radius(),
		Gas:         sc.Gas,
		InitialGas:  sc.InitialGas,
		Thrust:      sc.Thrust,
		Direction:   sc.Direction.String(),
		WinX1:       s.WinRegion.P1.X,
		WinY1:       s.WinRegion.P1.Y,
		WinX2:       s.WinRegion.P2.X,
		WinY2:       s.WinRegion.P2.Y,
		WinSide:     side,
		WinVelocity: s.WinVelocity,
		Attempts:    s.Attempts,
		BestEffort:  s.BestEffort,
		Planets:     planets,
		Score:       score,
		GasBonus:    bonus,
	}
}

// Hash returns a hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	put := func(v float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		h.Write(buf[:])
	}

	binary.LittleEndian.PutUint64(buf[:], snap.Tick)
	h.Write(buf[:])
	put(float64(snap.Level))
	put(float64(snap.Attempts))
	for _, v := range []float64{snap.X, snap.Y, snap.VX, snap.VY, snap.Gas, snap.Score} {
		put(v)
	}
	for _, p := range snap.Planets {
		put(p.X)
		put(p.Y)
	}
	return h.Sum64()
}

// Dump flattens the current scene into a '+'-joined list of numbers:
// size, spacecraft state, target, scoring parameters, then x, y, radius and
// orbit phase for each planet.
func (g *Game) Dump() string {
	s := g.Current()
	sc := s.Spacecraft
	vel := sc.Velocity()

	fields := []float64{
		s.Width, s.Height,
		sc.Position.X, sc.Position.Y, vel.X, vel.Y, sc.Mass, sc.Gas, sc.InitialGas, boolNum(sc.Thrust), float64(sc.Direction),
		s.WinRegion.P1.X, s.WinRegion.P1.Y, s.WinRegion.P2.X, s.WinRegion.P2.Y, s.WinVelocity,
		float64(s.Attempts), boolNum(s.Won), s.CompletionScore, s.AttemptReduction, s.GasBonus,
	}
	for _, p := range s.Planets {
		fields = append(fields, p.Position.X, p.Position.Y, p.Radius, p.Orbit.Progress)
	}

	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strings.Join(parts, "+")
}

func boolNum(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
