package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/spaceshots/internal/config"
	"github.com/vovakirdan/spaceshots/internal/level"
	"github.com/vovakirdan/spaceshots/internal/platform/tui"
	"github.com/vovakirdan/spaceshots/internal/storage"
)

// World units per terminal cell. Cells are roughly twice as tall as wide.
const (
	unitsPerCol = 10
	unitsPerRow = 20
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Generate a run and play it",
	Long: `Generate a run of levels sized to the terminal and play it.

The first level is always easy; later levels are drawn from the tiers up
to --max-tier. Finishing the run records it in the runs database.

Controls:
  Arrows/WASD  - Thrust (held keys keep firing)
  Space        - Cut the engine
  R            - Restart the run
  ?            - Toggle help
  Q/Esc        - Quit

Examples:
  spaceshots play
  spaceshots play --levels 5 --seed 42
  spaceshots play --max-tier easy --log-file /tmp/spaceshots.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file while the UI is running")
}

func runPlay(cmd *cobra.Command, _ []string) {
	logger := newLogger()

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	rc, err := runtimeConfig(width*unitsPerCol, max(height-2, 1)*unitsPerRow)
	exitOnError(logger, "invalid run parameters", err)

	tiers, err := config.LoadTiers(flagConfig)
	exitOnError(logger, "could not load tier table", err)

	logger.Info("generating run", "seed", rc.Seed, "levels", rc.Levels, "max_tier", rc.MaxTier)
	g, err := level.CreateGame(cmd.Context(), level.GameOptions{
		Runtime: rc,
		Tiers:   tiers,
		Logger:  logger,
	})
	exitOnError(logger, "could not generate run", err)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open runs database, this run will not be saved", "err", err)
		store = nil
	}

	// Anything written to the terminal while the alt screen is up would
	// corrupt the display.
	uiLogger := logger.With()
	uiLogger.SetOutput(io.Discard)
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		exitOnError(logger, "could not open log file", err)
		defer f.Close()
		uiLogger.SetOutput(f)
	}

	runErr := tui.Run(tui.Options{
		Game:   g,
		Store:  store,
		Seed:   rc.Seed,
		Logger: uiLogger,
		Width:  width,
		Height: height,
	})

	if store != nil {
		store.Close()
	}
	exitOnError(logger, "error running game", runErr)

	total, _ := g.Score()
	logger.Info("run finished", "score", total, "levels_won", g.LevelsWon(), "levels", len(g.Scenes()))
}
