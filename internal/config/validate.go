package config

import (
	"errors"
	"fmt"
)

// ValidationError contains details about a tier table validation failure.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Field, e.Message)
}

// Is makes every ValidationError match ErrInvalidConfig.
func (e ValidationError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// Validate checks that every known tier is present and internally consistent.
func (tt TierTable) Validate() error {
	var errs []error
	for _, t := range Tiers {
		cfg, ok := tt.Tiers[t]
		if !ok {
			errs = append(errs, ValidationError{Field: string(t), Message: "tier missing"})
			continue
		}
		if err := cfg.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("tier %s: %w", t, err))
		}
	}
	return errors.Join(errs...)
}

// Validate checks the parameters of a single tier.
func (c TierConfig) Validate() error {
	var errs []error
	check := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}

	check(c.Planets.Count.validate("planets.count"))
	if c.Planets.Count.Min < 1 {
		check(ValidationError{Field: "planets.count", Message: "at least one planet is required"})
	}
	check(c.Planets.Mass.validate("planets.mass"))
	if c.Planets.Mass.Min <= 0 {
		check(ValidationError{Field: "planets.mass", Message: "mass must be positive"})
	}
	if c.Planets.RadiusPerKg <= 0 {
		check(ValidationError{Field: "planets.radius_per_kg", Message: "must be positive"})
	}

	check(c.Orbits.A.validate("orbits.a"))
	check(c.Orbits.B.validate("orbits.b"))
	check(c.Orbits.CenterX.validate("orbits.center_x"))
	check(c.Orbits.CenterY.validate("orbits.center_y"))
	check(c.Orbits.AngularStep.validate("orbits.angular_step"))
	check(c.Orbits.MinSeparation.validate("orbits.min_separation"))
	check(c.Orbits.MaxSeparation.validate("orbits.max_separation"))
	if !c.Orbits.Direction.valid() {
		check(ValidationError{Field: "orbits.direction", Message: fmt.Sprintf("unknown direction %q", c.Orbits.Direction)})
	}

	check(c.Spacecraft.Mass.validate("spacecraft.mass"))
	if c.Spacecraft.Mass.Min <= 0 {
		check(ValidationError{Field: "spacecraft.mass", Message: "mass must be positive"})
	}
	check(c.Spacecraft.Gas.validate("spacecraft.gas"))
	check(c.Spacecraft.Thrust.validate("spacecraft.thrust"))
	check(c.Spacecraft.Size.validate("spacecraft.size"))
	check(c.Spacecraft.StartX.validate("spacecraft.start_x"))
	check(c.Spacecraft.StartY.validate("spacecraft.start_y"))
	if c.Spacecraft.GasPerThrust < 0 {
		check(ValidationError{Field: "spacecraft.gas_per_thrust", Message: "must not be negative"})
	}

	check(c.Scene.WinRegionLength.validate("scene.win_region_length"))
	check(c.Scene.WinVelocity.validate("scene.win_velocity"))
	check(c.Scene.CompletionScore.validate("scene.completion_score"))
	check(c.Scene.AttemptReduction.validate("scene.attempt_reduction"))
	check(c.Scene.GasBonus.validate("scene.gas_bonus"))
	check(validateWeights(c.Scene.SideWeights))

	return errors.Join(errs...)
}

func validateWeights(w []float64) error {
	if len(w) != 4 {
		return ValidationError{Field: "scene.side_weights", Message: fmt.Sprintf("need 4 weights, got %d", len(w))}
	}
	var sum float64
	for _, v := range w {
		if v < 0 {
			return ValidationError{Field: "scene.side_weights", Message: "weights must not be negative"}
		}
		sum += v
	}
	if sum <= 0 {
		return ValidationError{Field: "scene.side_weights", Message: "at least one side must have weight"}
	}
	return nil
}
