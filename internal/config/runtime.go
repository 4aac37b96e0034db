package config

import (
	"fmt"
	"time"
)

// RuntimeConfig contains the parameters of one run, set from CLI flags.
type RuntimeConfig struct {
	ScreenW    int           // World width in simulation units
	ScreenH    int           // World height in simulation units
	FPS        int           // Simulation ticks per second (default 60)
	Seed       int64         // RNG seed; 0 means use current time
	Levels     int           // Number of scenes in a run
	MaxTier    Tier          // Hardest tier a run may contain
	GenTimeout time.Duration // Per-level generation budget
}

// DefaultRuntimeConfig returns a RuntimeConfig with sensible defaults.
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:    800,
		ScreenH:    600,
		FPS:        60,
		Seed:       0,
		Levels:     3,
		MaxTier:    TierHard,
		GenTimeout: 2 * time.Second,
	}
}

// Validate fails fast on values the simulation cannot run with.
func (c RuntimeConfig) Validate() error {
	switch {
	case c.ScreenW <= 0 || c.ScreenH <= 0:
		return fmt.Errorf("%w: screen size %dx%d", ErrInvalidConfig, c.ScreenW, c.ScreenH)
	case c.FPS <= 0:
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalidConfig, c.FPS)
	case c.Levels <= 0:
		return fmt.Errorf("%w: levels must be positive, got %d", ErrInvalidConfig, c.Levels)
	case c.MaxTier.Index() < 0:
		return fmt.Errorf("%w: unknown tier %q", ErrInvalidConfig, c.MaxTier)
	case c.GenTimeout <= 0:
		return fmt.Errorf("%w: generation timeout must be positive", ErrInvalidConfig)
	}
	return nil
}
