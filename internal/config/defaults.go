package config

import (
	_ "embed"
)

//go:embed defaults/tiers.yaml
var defaultTiersYAML []byte

// DefaultTiersYAML returns the embedded tier table source.
func DefaultTiersYAML() []byte {
	return defaultTiersYAML
}

// DefaultTiers returns the hardcoded tier table used when no YAML source
// can be parsed.
func DefaultTiers() TierTable {
	easy := TierConfig{
		Planets: PlanetConfig{
			Count:       IntRange{Min: 1, Max: 1},
			Mass:        Range{Min: 3e16, Max: 4e16},
			RadiusPerKg: 45 / 4e16,
		},
		Orbits: OrbitConfig{
			A:             Range{Min: 0.25, Max: 0.4, Of: BasisWidth},
			B:             Range{Min: 0.25, Max: 0.4, Of: BasisHeight},
			CenterX:       Range{Min: 0, Max: 1, Of: BasisWidth},
			CenterY:       Range{Min: 0, Max: 0.5, Of: BasisHeight},
			AngularStep:   Range{Min: 0.1, Max: 0.2},
			MinSeparation: Range{Min: 0.02, Max: 0.1, Of: BasisMin},
			MaxSeparation: Range{Min: 0.5, Max: 0.75, Of: BasisDiagonal},
		},
		Spacecraft: SpacecraftConfig{
			Mass:         Range{Min: 100, Max: 125},
			Gas:          Range{Min: 350, Max: 450},
			Thrust:       Fixed(3000),
			GasPerThrust: 1.0 / 1000,
			Size:         Range{Min: 0.03, Max: 0.035, Of: BasisMin},
			StartX:       Range{Min: 0.25, Max: 0.75, Of: BasisWidth},
			StartY:       Range{Min: 0, Max: 0.3, Of: BasisHeight},
		},
		Scene: SceneConfig{
			WinRegionLength:  Range{Min: 0.4, Max: 0.5, Of: BasisSide},
			WinVelocity:      Range{Min: 90, Max: 125},
			CompletionScore:  Range{Min: 50, Max: 100},
			AttemptReduction: Range{Min: 1, Max: 3},
			GasBonus:         Fixed(5),
			SideWeights:      []float64{0.1, 0.8, 0.1, 0},
			ClosestOnly:      false,
		},
	}

	medium := easy
	medium.Planets.Count = IntRange{Min: 1, Max: 2}
	medium.Planets.Mass = Range{Min: 4e16, Max: 5e16}
	medium.Orbits.A = Range{Min: 0.15, Max: 0.35, Of: BasisWidth}
	medium.Orbits.B = Range{Min: 0.15, Max: 0.35, Of: BasisHeight}
	medium.Orbits.CenterY = Range{Min: 0, Max: 1, Of: BasisHeight}
	medium.Orbits.AngularStep = Range{Min: 0.15, Max: 0.3}
	medium.Spacecraft.Gas = Range{Min: 300, Max: 450}
	medium.Spacecraft.Thrust = Range{Min: 3500, Max: 4500}
	medium.Scene = SceneConfig{
		WinRegionLength:  Range{Min: 0.25, Max: 0.35, Of: BasisSide},
		WinVelocity:      Range{Min: 100, Max: 150},
		CompletionScore:  Range{Min: 100, Max: 150},
		AttemptReduction: Range{Min: 5, Max: 7},
		GasBonus:         Range{Min: 10, Max: 15},
		SideWeights:      []float64{1.0 / 3, 1.0 / 3, 1.0 / 3, 0},
		ClosestOnly:      false,
	}

	hard := medium
	hard.Orbits.AngularStep = Range{Min: 0.2, Max: 0.35}
	hard.Spacecraft.StartY = Range{Min: 0.25, Max: 0.75, Of: BasisHeight}
	hard.Scene.SideWeights = []float64{1.0 / 3, 0, 1.0 / 3, 1.0 / 3}

	return TierTable{
		Tiers: map[Tier]TierConfig{
			TierEasy:   easy,
			TierMedium: medium,
			TierHard:   hard,
		},
	}
}
