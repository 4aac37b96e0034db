package scene

import (
	"errors"
	"math"
	"testing"

	"github.com/vovakirdan/spaceshots/internal/assets"
	"github.com/vovakirdan/spaceshots/internal/config"
	"github.com/vovakirdan/spaceshots/internal/physics"
)

func newTestScene(t *testing.T, closestOnly bool) *Scene {
	t.Helper()
	sc, err := assets.NewSpacecraft(assets.SpacecraftParams{
		Position: physics.V(250, 10),
		Mass:     100,
		Gas:      400,
		Thrust:   3000,
	})
	if err != nil {
		t.Fatal(err)
	}
	p1, err := assets.NewPlanet("a", 4e16, physics.NewOrbit(100, 50, physics.V(250, 300), 1.0, 0.5, true), 0)
	if err != nil {
		t.Fatal(err)
	}
	p2, err := assets.NewPlanet("b", 3e16, physics.NewOrbit(40, 40, physics.V(100, 100), 2.0, 0.3, false), 0)
	if err != nil {
		t.Fatal(err)
	}
	s, err := New(Params{
		Width:            500,
		Height:           500,
		Spacecraft:       sc,
		Planets:          []*assets.Planet{p1, p2},
		WinRegion:        NewWinRegion(physics.V(100, 500), physics.V(300, 500)),
		WinVelocity:      104,
		CompletionScore:  123,
		AttemptReduction: 6,
		GasBonus:         12,
		ClosestOnly:      closestOnly,
		Tier:             config.TierMedium,
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return s
}

func TestNewRoundsParameters(t *testing.T) {
	s := newTestScene(t, false)
	if s.WinVelocity != 100 {
		t.Errorf("WinVelocity = %v, expected 100", s.WinVelocity)
	}
	if s.CompletionScore != 125 || s.AttemptReduction != 5 || s.GasBonus != 10 {
		t.Errorf("scores = %v/%v/%v, expected 125/5/10", s.CompletionScore, s.AttemptReduction, s.GasBonus)
	}
	if s.Start != physics.V(250, 10) {
		t.Errorf("Start = %v, expected spacecraft position", s.Start)
	}
}

func TestNewValidation(t *testing.T) {
	sc, _ := assets.NewSpacecraft(assets.SpacecraftParams{Mass: 1})

	tests := []struct {
		name   string
		params Params
	}{
		{"no spacecraft", Params{Width: 10, Height: 10, WinRegion: NewWinRegion(physics.V(0, 0), physics.V(0, 5))}},
		{"zero size", Params{Spacecraft: sc, WinRegion: NewWinRegion(physics.V(0, 0), physics.V(0, 5))}},
		{"region off edge", Params{Width: 10, Height: 10, Spacecraft: sc, WinRegion: NewWinRegion(physics.V(3, 3), physics.V(3, 5))}},
		{"region across edges", Params{Width: 10, Height: 10, Spacecraft: sc, WinRegion: NewWinRegion(physics.V(0, 5), physics.V(5, 10))}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := New(tc.params); !errors.Is(err, config.ErrInvalidConfig) {
				t.Errorf("error = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestUpdateAllPosMovesEverything(t *testing.T) {
	s := newTestScene(t, false)
	before := []physics.Vec2{s.Planets[0].Position, s.Planets[1].Position}
	scBefore := s.Spacecraft.Position

	s.UpdateAllPos(1.0 / 60)

	for i, p := range s.Planets {
		if p.Position == before[i] {
			t.Errorf("planet %d did not move", i)
		}
	}
	if s.Spacecraft.Position == scBefore {
		t.Error("spacecraft did not move")
	}
}

func TestResetPosIdempotent(t *testing.T) {
	s := newTestScene(t, true)
	initial := []float64{s.Planets[0].Orbit.Progress, s.Planets[1].Orbit.Progress}

	s.Spacecraft.Thrust = true
	for i := 0; i < 120; i++ {
		s.UpdateAllPos(1.0 / 60)
	}
	s.ResetPos()
	first := snapshotOf(s)
	s.ResetPos()
	second := snapshotOf(s)

	if first != second {
		t.Errorf("ResetPos not idempotent: %+v vs %+v", first, second)
	}
	if first.pos != s.Start || first.gas != s.Spacecraft.InitialGas || first.thrust {
		t.Errorf("spacecraft not restored: %+v", first)
	}
	for i, p := range s.Planets {
		if p.Orbit.Progress != initial[i] {
			t.Errorf("planet %d progress = %v, expected %v", i, p.Orbit.Progress, initial[i])
		}
	}
}

type state struct {
	pos    physics.Vec2
	gas    float64
	thrust bool
	p0, p1 physics.Vec2
}

func snapshotOf(s *Scene) state {
	return state{
		pos:    s.Spacecraft.Position,
		gas:    s.Spacecraft.Gas,
		thrust: s.Spacecraft.Thrust,
		p0:     s.Planets[0].Position,
		p1:     s.Planets[1].Position,
	}
}

func TestReset(t *testing.T) {
	s := newTestScene(t, false)
	s.Attempts = 4
	s.MarkWon()
	s.Reset()
	if s.Attempts != 0 || s.Won || s.Failed || s.FuelAtWin != 0 {
		t.Errorf("after Reset: attempts %d won %v failed %v fuel %v", s.Attempts, s.Won, s.Failed, s.FuelAtWin)
	}
}

func TestMarkWonRecordsFuel(t *testing.T) {
	s := newTestScene(t, false)
	s.Spacecraft.Gas = 130
	s.MarkWon()
	if !s.Won || s.FuelAtWin != 130 {
		t.Errorf("won %v fuel %v, expected true 130", s.Won, s.FuelAtWin)
	}
}

func TestGravityPullsDown(t *testing.T) {
	sc, err := assets.NewSpacecraft(assets.SpacecraftParams{Position: physics.V(250, 10), Mass: 100})
	if err != nil {
		t.Fatal(err)
	}
	planetPos := physics.V(250, -500)
	const mass = 4e16
	planet, err := assets.NewPlanet("p", mass, physics.NewOrbit(0, 0, planetPos, 0, 0, true), 0)
	if err != nil {
		t.Fatal(err)
	}
	s, err := New(Params{
		Width: 500, Height: 500,
		Spacecraft: sc,
		Planets:    []*assets.Planet{planet},
		WinRegion:  NewWinRegion(physics.V(0, 100), physics.V(0, 200)),
	})
	if err != nil {
		t.Fatal(err)
	}

	dt := 1.0 / 60
	s.UpdateAllPos(dt)

	r := 510.0
	accel := physics.G * mass / (r * r)
	wantDy := -accel * dt * dt
	gotDy := sc.Position.Y - 10
	if math.Abs(gotDy-wantDy) > 1e-9 {
		t.Errorf("dy = %v, expected %v", gotDy, wantDy)
	}
	if sc.Position.X != 250 {
		t.Errorf("x = %v, expected 250", sc.Position.X)
	}
}

func TestWinRegionSide(t *testing.T) {
	tests := []struct {
		name string
		a, b physics.Vec2
		want Side
	}{
		{"left", physics.V(0, 100), physics.V(0, 300), SideLeft},
		{"right", physics.V(500, 100), physics.V(500, 300), SideRight},
		{"top", physics.V(100, 400), physics.V(300, 400), SideTop},
		{"bottom", physics.V(100, 0), physics.V(300, 0), SideBottom},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NewWinRegion(tc.a, tc.b).Side(500, 400)
			if err != nil {
				t.Fatalf("Side failed: %v", err)
			}
			if got != tc.want {
				t.Errorf("Side = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestWinRegionReached(t *testing.T) {
	top := NewWinRegion(physics.V(300, 500), physics.V(100, 500))
	left := NewWinRegion(physics.V(0, 100), physics.V(0, 200))

	tests := []struct {
		name   string
		region WinRegion
		pos    physics.Vec2
		want   bool
	}{
		{"top on edge", top, physics.V(200, 500), true},
		{"top beyond edge", top, physics.V(100, 520), true},
		{"top outside span", top, physics.V(350, 510), false},
		{"top below edge", top, physics.V(200, 499), false},
		{"left on edge", left, physics.V(0, 150), true},
		{"left beyond", left, physics.V(-3, 200), true},
		{"left inside world", left, physics.V(1, 150), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.region.Reached(tc.pos, 500, 500); got != tc.want {
				t.Errorf("Reached(%v) = %v, expected %v", tc.pos, got, tc.want)
			}
		})
	}
}

func TestNewNormalizesReversedWinRegion(t *testing.T) {
	sc, err := assets.NewSpacecraft(assets.SpacecraftParams{Position: physics.V(1, 150), Mass: 1, Gas: 100})
	if err != nil {
		t.Fatal(err)
	}
	s, err := New(Params{
		Width:       500,
		Height:      500,
		Spacecraft:  sc,
		WinRegion:   WinRegion{P1: physics.V(0, 200), P2: physics.V(0, 100)},
		WinVelocity: 100,
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if s.WinRegion.P1.Y != 100 || s.WinRegion.P2.Y != 200 {
		t.Errorf("WinRegion = %v, expected endpoints ordered by y", s.WinRegion)
	}
	if !s.WinRegion.Reached(physics.V(-2, 150), s.Width, s.Height) {
		t.Error("reversed region not reachable inside its span")
	}
}

func TestWinRegionSpanUnordered(t *testing.T) {
	r := WinRegion{P1: physics.V(400, 0), P2: physics.V(150, 0)}
	lo, hi := r.Span(SideBottom)
	if lo != 150 || hi != 400 {
		t.Errorf("Span = (%v, %v), expected (150, 400)", lo, hi)
	}
	if !r.Reached(physics.V(200, -1), 500, 500) {
		t.Error("unordered region not reached inside its span")
	}
}
