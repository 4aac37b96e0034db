package game

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/spaceshots/internal/assets"
	"github.com/vovakirdan/spaceshots/internal/config"
	"github.com/vovakirdan/spaceshots/internal/physics"
	"github.com/vovakirdan/spaceshots/internal/scene"
)

var leftRegion = scene.NewWinRegion(physics.V(0, 100), physics.V(0, 200))

func newScene(t *testing.T, start physics.Vec2, gas float64, planets ...*assets.Planet) *scene.Scene {
	t.Helper()
	sc, err := assets.NewSpacecraft(assets.SpacecraftParams{
		Position: start,
		Mass:     100,
		Gas:      gas,
		Thrust:   3000,
	})
	if err != nil {
		t.Fatal(err)
	}
	s, err := scene.New(scene.Params{
		Width:            500,
		Height:           500,
		Spacecraft:       sc,
		Planets:          planets,
		WinRegion:        leftRegion,
		WinVelocity:      100,
		CompletionScore:  100,
		AttemptReduction: 5,
		GasBonus:         10,
		Tier:             config.TierEasy,
	})
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func staticPlanet(t *testing.T, mass float64, pos physics.Vec2) *assets.Planet {
	t.Helper()
	p, err := assets.NewPlanet("p", mass, physics.NewOrbit(0, 0, pos, 0, 0, true), 0)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func orbitingPlanet(t *testing.T) *assets.Planet {
	t.Helper()
	p, err := assets.NewPlanet("o", 4e16, physics.NewOrbit(120, 80, physics.V(250, 320), 0.7, 0.4, true), 0)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func newGame(t *testing.T, scenes ...*scene.Scene) *Game {
	t.Helper()
	g, err := New(60, scenes)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return g
}

// launch gives the current spacecraft velocity v.
func launch(g *Game, v physics.Vec2) {
	sc := g.Current().Spacecraft
	sc.ApplyMomentum(physics.NewMomentum(v, sc.Mass))
}

func TestNewValidation(t *testing.T) {
	s := newScene(t, physics.V(250, 250), 100)
	if _, err := New(0, []*scene.Scene{s}); !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("fps 0: error = %v, expected ErrInvalidConfig", err)
	}
	if _, err := New(60, nil); !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("no scenes: error = %v, expected ErrInvalidConfig", err)
	}
}

func TestStepGravityPull(t *testing.T) {
	const mass = 4e16
	planetPos := physics.V(250, -500)
	g := newGame(t, newScene(t, physics.V(250, 10), 0, staticPlanet(t, mass, planetPos)))

	res := g.Step(CommandNone)
	if res.Won || res.Failed {
		t.Fatalf("unexpected outcome: %+v", res)
	}

	dt := 1.0 / 60
	r := 510.0
	wantDy := -physics.G * mass / (r * r) * dt * dt
	gotDy := g.Current().Spacecraft.Position.Y - 10
	if gotDy >= 0 {
		t.Fatalf("spacecraft did not fall: dy = %v", gotDy)
	}
	if math.Abs(gotDy-wantDy) > 1e-9 {
		t.Errorf("dy = %v, expected %v", gotDy, wantDy)
	}
}

func TestStepEmptyTankIgnoresThrust(t *testing.T) {
	planetPos := physics.V(100, 400)
	thrusting := newGame(t, newScene(t, physics.V(250, 250), 0, staticPlanet(t, 4e16, planetPos)))
	coasting := newGame(t, newScene(t, physics.V(250, 250), 0, staticPlanet(t, 4e16, planetPos)))

	thrusting.Step(CommandUp)
	coasting.Step(CommandNone)

	sc := thrusting.Current().Spacecraft
	if sc.Thrust {
		t.Error("thrust should be off with an empty tank")
	}
	if sc.Gas != 0 {
		t.Errorf("Gas = %v, expected 0", sc.Gas)
	}
	if sc.Velocity().Vec2 != coasting.Current().Spacecraft.Velocity().Vec2 {
		t.Errorf("velocity %v differs from gravity-only %v",
			sc.Velocity().Vec2, coasting.Current().Spacecraft.Velocity().Vec2)
	}
}

func TestBoundaryWithoutSpeedIsNeitherWonNorFailed(t *testing.T) {
	g := newGame(t, newScene(t, physics.V(0, 150), 100))

	won, failed, _ := g.checkStatus()
	if won || failed {
		t.Errorf("checkStatus = won %v failed %v, expected neither", won, failed)
	}

	res := g.Step(CommandNone)
	if res.Won || res.Failed {
		t.Errorf("Step = %+v, expected neither won nor failed", res)
	}
	if g.Current().Attempts != 0 {
		t.Errorf("Attempts = %d, expected 0", g.Current().Attempts)
	}
}

func TestControlSetsDirection(t *testing.T) {
	tests := []struct {
		cmd  Command
		dir  assets.ThrustDirection
		on   bool
		name string
	}{
		{CommandUp, assets.ThrustPosY, true, "up"},
		{CommandLeft, assets.ThrustNegX, true, "left"},
		{CommandDown, assets.ThrustNegY, true, "down"},
		{CommandRight, assets.ThrustPosX, true, "right"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newGame(t, newScene(t, physics.V(250, 250), 100))
			g.Control(tc.cmd)
			sc := g.Current().Spacecraft
			if sc.Thrust != tc.on || sc.Direction != tc.dir {
				t.Errorf("thrust %v dir %v, expected %v %v", sc.Thrust, sc.Direction, tc.on, tc.dir)
			}
			g.Control(CommandNone)
			if sc.Thrust {
				t.Error("CommandNone should release thrust")
			}
		})
	}
}

func TestOutOfBoundsFails(t *testing.T) {
	start := physics.V(250, 1)
	g := newGame(t, newScene(t, start, 100))
	launch(g, physics.V(0, -120))

	res := g.Step(CommandNone)
	if !res.Failed || res.Message != MsgOutOfBounds {
		t.Fatalf("Step = %+v, expected out of bounds", res)
	}
	s := g.Current()
	if s.Attempts != 1 || !s.Failed {
		t.Errorf("attempts %d failed %v, expected 1 true", s.Attempts, s.Failed)
	}
	if s.Spacecraft.Position != start || !s.Spacecraft.Velocity().IsZero() {
		t.Error("spacecraft should be back at the start after a failure")
	}
}

func TestCollisionFails(t *testing.T) {
	g := newGame(t, newScene(t, physics.V(250, 60), 100, staticPlanet(t, 4e16, physics.V(250, 100))))

	res := g.Step(CommandNone)
	if !res.Failed || res.Message != MsgCollision {
		t.Fatalf("Step = %+v, expected collision", res)
	}
	if g.Current().Attempts != 1 {
		t.Errorf("Attempts = %d, expected 1", g.Current().Attempts)
	}
}

func TestWinAdvancesAndCompletes(t *testing.T) {
	first := newScene(t, physics.V(5, 150), 400)
	second := newScene(t, physics.V(5, 150), 400)
	g := newGame(t, first, second)

	launch(g, physics.V(-600, 0))
	res := g.Step(CommandNone)
	if !res.Won || res.Done {
		t.Fatalf("first win: %+v", res)
	}
	if g.Index() != 1 {
		t.Fatalf("Index = %d, expected 1", g.Index())
	}
	if !first.Won || first.Attempts != 1 || first.FuelAtWin != 400 {
		t.Errorf("first scene: won %v attempts %d fuel %v", first.Won, first.Attempts, first.FuelAtWin)
	}

	launch(g, physics.V(-600, 0))
	res = g.Step(CommandNone)
	if !res.Won || !res.Done || !g.Done() {
		t.Fatalf("second win: %+v", res)
	}

	tick := g.Tick()
	res = g.Step(CommandUp)
	if !res.Done || res.Won || res.Message != MsgComplete {
		t.Errorf("step after done = %+v", res)
	}
	if g.Tick() != tick {
		t.Error("step after done must not advance the simulation")
	}

	total, bonus := g.Score()
	if total != 220 || bonus != 20 {
		t.Errorf("Score = (%v, %v), expected (220, 20)", total, bonus)
	}
	if g.LevelsWon() != 2 || g.Attempts() != 2 {
		t.Errorf("levels won %d attempts %d", g.LevelsWon(), g.Attempts())
	}
}

func TestWinRequiresSpeed(t *testing.T) {
	g := newGame(t, newScene(t, physics.V(1, 150), 400))
	launch(g, physics.V(-90, 0))

	res := g.Step(CommandNone)
	if res.Won {
		t.Fatal("crossing below the win speed must not win")
	}
	if !res.Failed || res.Message != MsgOutOfBounds {
		t.Errorf("Step = %+v, expected out of bounds", res)
	}
}

func TestScore(t *testing.T) {
	tests := []struct {
		name      string
		attempts  int
		fuel      float64
		won       bool
		wantTotal float64
		wantBonus float64
	}{
		{"first try full tank", 1, 400, true, 110, 10},
		{"third try half tank", 3, 200, true, 95, 5},
		{"not won", 2, 400, false, 0, 0},
		{"floored at zero", 40, 0, true, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newScene(t, physics.V(250, 250), 400)
			g := newGame(t, s)
			s.Attempts = tc.attempts
			s.Won = tc.won
			s.FuelAtWin = tc.fuel

			total, bonus := g.Score()
			if math.Abs(total-tc.wantTotal) > 1e-9 || math.Abs(bonus-tc.wantBonus) > 1e-9 {
				t.Errorf("Score = (%v, %v), expected (%v, %v)", total, bonus, tc.wantTotal, tc.wantBonus)
			}
		})
	}
}

func TestGameReset(t *testing.T) {
	first := newScene(t, physics.V(5, 150), 400)
	second := newScene(t, physics.V(250, 250), 400)
	g := newGame(t, first, second)

	launch(g, physics.V(-600, 0))
	g.Step(CommandNone)
	g.Step(CommandUp)

	g.Reset()
	if g.Index() != 0 || g.Done() || g.Tick() != 0 {
		t.Errorf("index %d done %v tick %d after Reset", g.Index(), g.Done(), g.Tick())
	}
	for i, s := range g.Scenes() {
		if s.Won || s.Attempts != 0 {
			t.Errorf("scene %d: won %v attempts %d after Reset", i, s.Won, s.Attempts)
		}
		if s.Spacecraft.Position != s.Start {
			t.Errorf("scene %d: spacecraft not at start", i)
		}
	}
}

func TestDeterminism(t *testing.T) {
	commands := make([]Command, 300)
	for i := range commands {
		switch {
		case i%40 < 10:
			commands[i] = CommandUp
		case i%40 < 15:
			commands[i] = CommandRight
		case i%40 < 20:
			commands[i] = CommandLeft
		}
	}

	run := func() Snapshot {
		g := newGame(t, newScene(t, physics.V(250, 40), 400, orbitingPlanet(t)))
		for _, cmd := range commands {
			g.Step(cmd)
		}
		return g.Snapshot()
	}

	snap1 := run()
	snap2 := run()
	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.X != snap2.X || snap1.Y != snap2.Y || snap1.Attempts != snap2.Attempts {
		t.Errorf("Determinism failed: spacecraft state differs")
	}
}

func TestSnapshot(t *testing.T) {
	g := newGame(t, newScene(t, physics.V(250, 40), 400, orbitingPlanet(t)))
	g.Step(CommandUp)

	snap := g.Snapshot()
	sc := g.Current().Spacecraft
	if snap.X != sc.Position.X || snap.Y != sc.Position.Y {
		t.Error("snapshot position mismatch")
	}
	if snap.Levels != 1 || snap.Level != 0 || snap.Tier != "easy" {
		t.Errorf("level %d/%d tier %q", snap.Level, snap.Levels, snap.Tier)
	}
	if len(snap.Planets) != 1 || snap.WinSide != "left" {
		t.Errorf("planets %d side %q", len(snap.Planets), snap.WinSide)
	}
	if !snap.Thrust || snap.Direction != "+y" || snap.Gas != 397 {
		t.Errorf("thrust %v dir %s gas %v", snap.Thrust, snap.Direction, snap.Gas)
	}
}

func TestDump(t *testing.T) {
	g := newGame(t, newScene(t, physics.V(250, 40), 400, orbitingPlanet(t)))

	dump := g.Dump()
	parts := strings.Split(dump, "+")
	if len(parts) != 21+4 {
		t.Fatalf("Dump has %d fields, expected 25: %s", len(parts), dump)
	}
	if !strings.HasPrefix(dump, "500+500+250+40+") {
		t.Errorf("Dump = %s", dump)
	}
}

func TestWinThroughReversedRegion(t *testing.T) {
	sc, err := assets.NewSpacecraft(assets.SpacecraftParams{Position: physics.V(1, 150), Mass: 100, Gas: 100})
	if err != nil {
		t.Fatal(err)
	}
	s, err := scene.New(scene.Params{
		Width:       500,
		Height:      500,
		Spacecraft:  sc,
		WinRegion:   scene.WinRegion{P1: physics.V(0, 200), P2: physics.V(0, 100)},
		WinVelocity: 100,
	})
	if err != nil {
		t.Fatal(err)
	}
	g := newGame(t, s)

	launch(g, physics.V(-300, 0))
	if res := g.Step(CommandNone); !res.Won || res.Failed {
		t.Errorf("Step = %+v, expected a win", res)
	}
}
