// Package game runs a sequence of scenes: it feeds control commands to the
// current scene, advances the simulation one tick per Step, and keeps the
// attempt and scoring bookkeeping.
package game

import (
	"fmt"

	"github.com/vovakirdan/spaceshots/internal/assets"
	"github.com/vovakirdan/spaceshots/internal/config"
	"github.com/vovakirdan/spaceshots/internal/physics"
	"github.com/vovakirdan/spaceshots/internal/scene"
)

// Command is a player input for one tick.
type Command int

const (
	CommandNone  Command = iota // Release thrust
	CommandUp                   // Thrust +y
	CommandLeft                 // Thrust -x
	CommandDown                 // Thrust -y
	CommandRight                // Thrust +x
)

// Valid reports whether c is a known command.
func (c Command) Valid() bool {
	return c >= CommandNone && c <= CommandRight
}

func (c Command) String() string {
	switch c {
	case CommandNone:
		return "none"
	case CommandUp:
		return "up"
	case CommandLeft:
		return "left"
	case CommandDown:
		return "down"
	case CommandRight:
		return "right"
	}
	return fmt.Sprintf("Command(%d)", int(c))
}

// Status messages reported in StepResult.
const (
	MsgWon         = "Won!"
	MsgOutOfBounds = "Failed: Out of bounds."
	MsgCollision   = "Failed: Collision."
	MsgComplete    = "Game complete."
)

// StepResult is returned by Step after each tick.
type StepResult struct {
	Won     bool
	Failed  bool
	Done    bool // Every scene has been won
	Message string
}

// Game owns an ordered sequence of scenes.
type Game struct {
	scenes  []*scene.Scene
	current int
	fps     int
	dt      float64
	done    bool
	tick    uint64
}

// New creates a game ticking at fps and resets every scene.
func New(fps int, scenes []*scene.Scene) (*Game, error) {
	if fps <= 0 {
		return nil, fmt.Errorf("%w: game must have a positive fps, got %d", config.ErrInvalidConfig, fps)
	}
	if len(scenes) == 0 {
		return nil, fmt.Errorf("%w: game needs at least one scene", config.ErrInvalidConfig)
	}
	g := &Game{
		scenes: scenes,
		fps:    fps,
		dt:     1 / float64(fps),
	}
	g.Reset()
	return g, nil
}

// Reset resets every scene and starts over from the first.
func (g *Game) Reset() {
	for _, s := range g.scenes {
		s.Reset()
	}
	g.current = 0
	g.done = false
	g.tick = 0
}

// Control applies cmd to the current spacecraft. Unknown commands are ignored.
func (g *Game) Control(cmd Command) {
	sc := g.Current().Spacecraft
	switch cmd {
	case CommandNone:
		sc.Thrust = false
	case CommandUp:
		sc.Thrust, sc.Direction = true, assets.ThrustPosY
	case CommandLeft:
		sc.Thrust, sc.Direction = true, assets.ThrustNegX
	case CommandDown:
		sc.Thrust, sc.Direction = true, assets.ThrustNegY
	case CommandRight:
		sc.Thrust, sc.Direction = true, assets.ThrustPosX
	}
}

// Step applies cmd, advances the current scene by one tick and evaluates the
// outcome. A win moves on to the next scene; a failure restarts the current
// one. After the last scene is won Step does nothing.
func (g *Game) Step(cmd Command) StepResult {
	if g.done {
		return StepResult{Done: true, Message: MsgComplete}
	}

	g.Control(cmd)
	g.Current().UpdateAllPos(g.dt)
	g.tick++

	won, failed, msg := g.checkStatus()
	switch {
	case won:
		g.sceneWon()
	case failed:
		g.sceneFailed()
	}
	return StepResult{Won: won, Failed: failed, Done: g.done, Message: msg}
}

// checkStatus evaluates the current scene without changing it.
func (g *Game) checkStatus() (won, failed bool, msg string) {
	s := g.Current()
	sc := s.Spacecraft
	pos := sc.Position

	if s.WinRegion.Reached(pos, s.Width, s.Height) && sc.Velocity().Mag >= s.WinVelocity {
		return true, false, MsgWon
	}

	// Exactly on an edge is still inside.
	if pos.X < 0 || pos.X > s.Width || pos.Y < 0 || pos.Y > s.Height {
		return false, true, MsgOutOfBounds
	}

	for _, p := range s.Planets {
		if physics.Intersects(sc.Shape(), p.Shape()) {
			return false, true, MsgCollision
		}
	}
	return false, false, ""
}

func (g *Game) sceneWon() {
	s := g.Current()
	s.MarkWon()
	s.Attempts++
	if g.current < len(g.scenes)-1 {
		g.current++
	} else {
		g.done = true
	}
	g.Current().ResetPos()
}

func (g *Game) sceneFailed() {
	s := g.Current()
	s.Failed = true
	s.ResetPos()
	s.Attempts++
}

// Current returns the scene being played.
func (g *Game) Current() *scene.Scene {
	return g.scenes[g.current]
}

// Scenes returns every scene in order.
func (g *Game) Scenes() []*scene.Scene {
	return g.scenes
}

// Index returns the position of the current scene.
func (g *Game) Index() int {
	return g.current
}

// Done reports whether every scene has been won.
func (g *Game) Done() bool {
	return g.done
}

// FPS returns the tick rate.
func (g *Game) FPS() int {
	return g.fps
}

// DT returns the tick length in seconds.
func (g *Game) DT() float64 {
	return g.dt
}

// Tick returns the number of ticks simulated since the last Reset.
func (g *Game) Tick() uint64 {
	return g.tick
}

// LevelsWon counts won scenes.
func (g *Game) LevelsWon() int {
	n := 0
	for _, s := range g.scenes {
		if s.Won {
			n++
		}
	}
	return n
}

// Attempts sums attempts across all scenes.
func (g *Game) Attempts() int {
	n := 0
	for _, s := range g.scenes {
		n += s.Attempts
	}
	return n
}

// MaxTier returns the hardest tier among the scenes.
func (g *Game) MaxTier() config.Tier {
	best := config.TierEasy
	for _, s := range g.scenes {
		if s.Tier.Index() > best.Index() {
			best = s.Tier
		}
	}
	return best
}
