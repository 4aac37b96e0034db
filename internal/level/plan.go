package level

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/spaceshots/internal/config"
	"github.com/vovakirdan/spaceshots/internal/game"
	"github.com/vovakirdan/spaceshots/internal/scene"
)

// Plan returns the tier of each of n levels: the first is always easy, the
// rest are drawn uniformly from the tiers up to maxTier.
func Plan(maxTier config.Tier, n int, rng *rand.Rand) ([]config.Tier, error) {
	maxIdx := maxTier.Index()
	if maxIdx < 0 {
		return nil, fmt.Errorf("%w: unknown tier %q", config.ErrInvalidConfig, maxTier)
	}
	if n <= 0 {
		return nil, fmt.Errorf("%w: level count must be positive, got %d", config.ErrInvalidConfig, n)
	}

	plan := make([]config.Tier, n)
	plan[0] = config.TierEasy
	for i := 1; i < n; i++ {
		plan[i] = config.Tiers[rng.Intn(maxIdx+1)]
	}
	return plan, nil
}

// GameOptions configures CreateGame.
type GameOptions struct {
	Runtime config.RuntimeConfig
	Tiers   config.TierTable
	Logger  *log.Logger
}

// CreateGame plans a run, builds every scene and returns the game ready to
// play. The same seed always yields the same run unless a level had to fall
// back to best effort.
func CreateGame(ctx context.Context, opts GameOptions) (*game.Game, error) {
	rc := opts.Runtime
	if err := rc.Validate(); err != nil {
		return nil, err
	}

	builder, err := NewBuilder(BuilderConfig{
		Width:  float64(rc.ScreenW),
		Height: float64(rc.ScreenH),
		Tiers:  opts.Tiers,
		Seed:   rc.Seed,
		Budget: Budget{Timeout: rc.GenTimeout, MaxAttempts: DefaultBudget.MaxAttempts},
		Logger: opts.Logger,
	})
	if err != nil {
		return nil, err
	}

	plan, err := Plan(rc.MaxTier, rc.Levels, builder.rng)
	if err != nil {
		return nil, err
	}

	scenes := make([]*scene.Scene, 0, len(plan))
	for i, tier := range plan {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("level: building level %d: %w", i+1, err)
		}
		s, err := builder.Create(ctx, tier)
		if err != nil {
			return nil, fmt.Errorf("level: building level %d (%s): %w", i+1, tier, err)
		}
		scenes = append(scenes, s)
	}
	return game.New(rc.FPS, scenes)
}
