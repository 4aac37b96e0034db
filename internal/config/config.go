// Package config provides the YAML-based difficulty tier table used by
// level generation, and the tier selector consumed by the CLI.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidConfig marks every configuration error: bad tier names, invalid
// ranges, non-positive masses and similar fail-fast conditions.
var ErrInvalidConfig = errors.New("invalid configuration")

// Tier represents a named difficulty tier.
type Tier string

const (
	TierEasy   Tier = "easy"
	TierMedium Tier = "medium"
	TierHard   Tier = "hard"
)

// Tiers lists the tiers from easiest to hardest.
var Tiers = []Tier{TierEasy, TierMedium, TierHard}

// Index returns the position of t in Tiers, or -1 if unknown.
func (t Tier) Index() int {
	for i, tier := range Tiers {
		if tier == t {
			return i
		}
	}
	return -1
}

// ParseTier resolves a tier by name (case-insensitive).
func ParseTier(name string) (Tier, error) {
	t := Tier(strings.ToLower(strings.TrimSpace(name)))
	if t.Index() < 0 {
		return "", fmt.Errorf("%w: unknown tier %q", ErrInvalidConfig, name)
	}
	return t, nil
}

// TierTable holds the generation parameters for every tier.
type TierTable struct {
	Tiers map[Tier]TierConfig `yaml:"tiers"`
}

// Get returns the parameters for tier t.
func (tt TierTable) Get(t Tier) (TierConfig, error) {
	cfg, ok := tt.Tiers[t]
	if !ok {
		return TierConfig{}, fmt.Errorf("%w: tier %q not in table", ErrInvalidConfig, t)
	}
	return cfg, nil
}

// TierConfig contains all generation parameters for one tier.
type TierConfig struct {
	Planets    PlanetConfig     `yaml:"planets"`
	Orbits     OrbitConfig      `yaml:"orbits"`
	Spacecraft SpacecraftConfig `yaml:"spacecraft"`
	Scene      SceneConfig      `yaml:"scene"`
}

// PlanetConfig defines how many planets a level has and how heavy they are.
type PlanetConfig struct {
	Count       IntRange `yaml:"count"`
	Mass        Range    `yaml:"mass"`          // kg
	RadiusPerKg float64  `yaml:"radius_per_kg"` // Radius = RadiusPerKg * Mass
}

// OrbitConfig defines the ellipse parameters and spacing of planet orbits.
type OrbitConfig struct {
	A             Range          `yaml:"a"`
	B             Range          `yaml:"b"`
	CenterX       Range          `yaml:"center_x"`
	CenterY       Range          `yaml:"center_y"`
	AngularStep   Range          `yaml:"angular_step"` // rad/s
	MinSeparation Range          `yaml:"min_separation"`
	MaxSeparation Range          `yaml:"max_separation"`
	Direction     OrbitDirection `yaml:"direction,omitempty"`
}

// OrbitDirection picks how the builder turns each orbit once the planets are
// placed. The empty value means DirectionScreen.
type OrbitDirection string

const (
	DirectionScreen     OrbitDirection = "screen"     // Toward the screen center
	DirectionSpacecraft OrbitDirection = "spacecraft" // Toward the spacecraft start
	DirectionHalf       OrbitDirection = "half"       // Clockwise in the left half
)

func (d OrbitDirection) valid() bool {
	switch d {
	case "", DirectionScreen, DirectionSpacecraft, DirectionHalf:
		return true
	}
	return false
}

// SpacecraftConfig defines the spacecraft's physical parameters and spawn area.
type SpacecraftConfig struct {
	Mass         Range   `yaml:"mass"`
	Gas          Range   `yaml:"gas"`
	Thrust       Range   `yaml:"thrust"`
	GasPerThrust float64 `yaml:"gas_per_thrust"`
	Size         Range   `yaml:"size"`
	StartX       Range   `yaml:"start_x"`
	StartY       Range   `yaml:"start_y"`
}

// SceneConfig defines the win region and scoring parameters.
type SceneConfig struct {
	WinRegionLength  Range     `yaml:"win_region_length"`
	WinVelocity      Range     `yaml:"win_velocity"`
	CompletionScore  Range     `yaml:"completion_score"`
	AttemptReduction Range     `yaml:"attempt_reduction"`
	GasBonus         Range     `yaml:"gas_bonus"`
	SideWeights      []float64 `yaml:"side_weights"` // left, top, right, bottom
	ClosestOnly      bool      `yaml:"closest_only"` // Gravity from the nearest planet only
}
