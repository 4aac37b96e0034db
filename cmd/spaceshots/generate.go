package main

import (
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/spaceshots/internal/config"
	"github.com/vovakirdan/spaceshots/internal/level"
	"github.com/vovakirdan/spaceshots/internal/scene"
)

var flagTier string

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Print a generated level as YAML",
	Long: `Build a single level for the given tier and print its layout as YAML:
spacecraft, planets with their orbits, the target edge segment and the
scoring parameters.

Examples:
  spaceshots generate --tier easy --seed 3
  spaceshots generate --tier hard --width 1200 --height 800`,
	Args: cobra.NoArgs,
	Run:  runGenerate,
}

func init() {
	defaults := config.DefaultRuntimeConfig()
	generateCmd.Flags().StringVar(&flagTier, "tier", string(config.TierEasy), "Tier to generate: easy, medium, hard")
	generateCmd.Flags().IntVar(&flagWidth, "width", defaults.ScreenW, "World width")
	generateCmd.Flags().IntVar(&flagHeight, "height", defaults.ScreenH, "World height")
}

type pointDoc struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type orbitDoc struct {
	Center      pointDoc `yaml:"center"`
	A           float64  `yaml:"a"`
	B           float64  `yaml:"b"`
	Progress    float64  `yaml:"progress"`
	AngularStep float64  `yaml:"angular_step"`
	Clockwise   bool     `yaml:"clockwise"`
}

type planetDoc struct {
	Name     string   `yaml:"name"`
	Mass     float64  `yaml:"mass"`
	Radius   float64  `yaml:"radius"`
	Position pointDoc `yaml:"position"`
	Orbit    orbitDoc `yaml:"orbit"`
}

type spacecraftDoc struct {
	Position     pointDoc `yaml:"position"`
	Mass         float64  `yaml:"mass"`
	Gas          float64  `yaml:"gas"`
	Thrust       float64  `yaml:"thrust"`
	GasPerThrust float64  `yaml:"gas_per_thrust"`
	Radius       float64  `yaml:"radius"`
}

type levelDoc struct {
	Seed             int64         `yaml:"seed"`
	Tier             string        `yaml:"tier"`
	Width            float64       `yaml:"width"`
	Height           float64       `yaml:"height"`
	BestEffort       bool          `yaml:"best_effort,omitempty"`
	Spacecraft       spacecraftDoc `yaml:"spacecraft"`
	Planets          []planetDoc   `yaml:"planets"`
	WinSide          string        `yaml:"win_side"`
	WinRegion        [2]pointDoc   `yaml:"win_region,flow"`
	WinVelocity      float64       `yaml:"win_velocity"`
	CompletionScore  float64       `yaml:"completion_score"`
	AttemptReduction float64       `yaml:"attempt_reduction"`
	GasBonus         float64       `yaml:"gas_bonus"`
	ClosestOnly      bool          `yaml:"closest_only"`
}

func newLevelDoc(seed int64, s *scene.Scene) levelDoc {
	sc := s.Spacecraft
	doc := levelDoc{
		Seed:       seed,
		Tier:       string(s.Tier),
		Width:      s.Width,
		Height:     s.Height,
		BestEffort: s.BestEffort,
		Spacecraft: spacecraftDoc{
			Position:     pointDoc{sc.Position.X, sc.Position.Y},
			Mass:         sc.Mass,
			Gas:          sc.Gas,
			Thrust:       sc.ThrustMag,
			GasPerThrust: sc.GasPerThrust,
			Radius:       sc.Radius(),
		},
		WinRegion: [2]pointDoc{
			{s.WinRegion.P1.X, s.WinRegion.P1.Y},
			{s.WinRegion.P2.X, s.WinRegion.P2.Y},
		},
		WinVelocity:      s.WinVelocity,
		CompletionScore:  s.CompletionScore,
		AttemptReduction: s.AttemptReduction,
		GasBonus:         s.GasBonus,
		ClosestOnly:      s.ClosestOnly,
	}
	if side, err := s.WinRegion.Side(s.Width, s.Height); err == nil {
		doc.WinSide = side.String()
	}
	for _, p := range s.Planets {
		o := p.Orbit
		doc.Planets = append(doc.Planets, planetDoc{
			Name:     p.Name,
			Mass:     p.Mass,
			Radius:   p.Radius,
			Position: pointDoc{p.Position.X, p.Position.Y},
			Orbit: orbitDoc{
				Center:      pointDoc{o.Center.X, o.Center.Y},
				A:           o.A,
				B:           o.B,
				Progress:    o.Progress,
				AngularStep: o.AngularStep,
				Clockwise:   o.Clockwise,
			},
		})
	}
	return doc
}

func runGenerate(cmd *cobra.Command, _ []string) {
	logger := newLogger()

	tier, err := config.ParseTier(flagTier)
	exitOnError(logger, "invalid tier", err)

	rc, err := runtimeConfig(flagWidth, flagHeight)
	exitOnError(logger, "invalid run parameters", err)

	tiers, err := config.LoadTiers(flagConfig)
	exitOnError(logger, "could not load tier table", err)

	builder, err := level.NewBuilder(level.BuilderConfig{
		Width:  float64(rc.ScreenW),
		Height: float64(rc.ScreenH),
		Tiers:  tiers,
		Seed:   rc.Seed,
		Budget: level.Budget{Timeout: rc.GenTimeout, MaxAttempts: level.DefaultBudget.MaxAttempts},
		Logger: logger,
	})
	exitOnError(logger, "invalid builder parameters", err)

	s, err := builder.Create(cmd.Context(), tier)
	exitOnError(logger, "could not generate level", err)

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	exitOnError(logger, "could not encode level", enc.Encode(newLevelDoc(rc.Seed, s)))
	exitOnError(logger, "could not encode level", enc.Close())
}
