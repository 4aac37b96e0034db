// spaceshots is a gravity-slingshot puzzle game for the terminal: steer a
// spacecraft with limited fuel around orbiting planets and leave the screen
// through the target edge fast enough.
//
// Usage:
//
//	spaceshots play                - Generate a run and play it
//	spaceshots simulate            - Run a command script headless
//	spaceshots generate            - Print one generated level as YAML
//	spaceshots scores              - Show the best stored runs
//	spaceshots tiers               - List the difficulty tiers
//
// Global flags:
//
//	--fps <rate>         - Simulation ticks per second (default: 60)
//	--seed <value>       - RNG seed for reproducible runs
//	--levels <n>         - Levels per run (default: 3)
//	--max-tier <tier>    - Hardest tier a run may contain (default: hard)
//	--config <path>      - Tier table YAML
//	--db <path>          - Runs database (default: ~/.spaceshots/runs.db)
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/spaceshots/internal/config"
	"github.com/vovakirdan/spaceshots/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagLevels     int
	flagMaxTier    string
	flagGenTimeout time.Duration
	flagConfig     string
	flagDBPath     string
	flagLogLevel   string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "spaceshots",
	Short: "Spaceshots - gravity slingshot puzzles in your terminal",
	Long: `Spaceshots drops a spacecraft among orbiting planets. Use short bursts
of thrust and the planets' gravity to leave the screen through the
highlighted edge at or above the required speed. Fuel left over is
worth bonus points.

Available commands:
  play      - Generate a run and play it
  simulate  - Run a command script without a terminal UI
  generate  - Print a generated level as YAML
  scores    - View the best runs
  tiers     - List difficulty tiers

Examples:
  spaceshots play
  spaceshots play --levels 5 --max-tier medium --seed 7
  spaceshots simulate --seed 7 --commands "1,1,1,0,0,4" --ticks 600
  spaceshots generate --tier hard
  spaceshots scores`,
	SilenceUsage: true,
}

func init() {
	defaults := config.DefaultRuntimeConfig()

	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", defaults.FPS, "Simulation ticks per second")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().IntVar(&flagLevels, "levels", defaults.Levels, "Number of levels in a run")
	rootCmd.PersistentFlags().StringVar(&flagMaxTier, "max-tier", string(defaults.MaxTier), "Hardest tier: easy, medium, hard")
	rootCmd.PersistentFlags().DurationVar(&flagGenTimeout, "gen-timeout", defaults.GenTimeout, "Generation budget per level")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to tier table YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(tiersCmd)
}

// newLogger builds the command logger writing to stderr.
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "spaceshots",
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// runtimeConfig assembles the run parameters from global flags for a world
// of the given size. A zero seed is replaced with a time-based one.
func runtimeConfig(width, height int) (config.RuntimeConfig, error) {
	tier, err := config.ParseTier(flagMaxTier)
	if err != nil {
		return config.RuntimeConfig{}, err
	}
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rc := config.RuntimeConfig{
		ScreenW:    width,
		ScreenH:    height,
		FPS:        flagFPS,
		Seed:       seed,
		Levels:     flagLevels,
		MaxTier:    tier,
		GenTimeout: flagGenTimeout,
	}
	return rc, rc.Validate()
}

func exitOnError(logger *log.Logger, msg string, err error) {
	if err != nil {
		logger.Error(msg, "err", err)
		os.Exit(1)
	}
}
