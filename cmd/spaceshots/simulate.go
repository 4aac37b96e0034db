package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/spaceshots/internal/config"
	"github.com/vovakirdan/spaceshots/internal/game"
	"github.com/vovakirdan/spaceshots/internal/level"
)

var (
	flagCommands string
	flagTicks    int
	flagWidth    int
	flagHeight   int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a command script without a terminal UI",
	Long: `Generate a run and drive it with a fixed command script, one command
per tick. The script repeats until --ticks ticks have run or every level
is won. Wins and failures are logged as they happen; the final score and
the flattened state of the current scene are printed at the end.

Commands are comma separated numbers or names:
  0 none   1 up (+y)   2 left (-x)   3 down (-y)   4 right (+x)

With the same --seed, --commands and world size the output is identical
on every run.

Examples:
  spaceshots simulate --seed 7 --commands "1,1,1,0,0,0" --ticks 1200
  spaceshots simulate --seed 7 --commands "up,up,right,none" --levels 1`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	defaults := config.DefaultRuntimeConfig()
	simulateCmd.Flags().StringVar(&flagCommands, "commands", "0", "Comma separated command script")
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 600, "Maximum ticks to simulate")
	simulateCmd.Flags().IntVar(&flagWidth, "width", defaults.ScreenW, "World width")
	simulateCmd.Flags().IntVar(&flagHeight, "height", defaults.ScreenH, "World height")
}

func runSimulate(cmd *cobra.Command, _ []string) {
	logger := newLogger()

	cmds, err := game.ParseCommands(flagCommands)
	exitOnError(logger, "invalid command script", err)

	rc, err := runtimeConfig(flagWidth, flagHeight)
	exitOnError(logger, "invalid run parameters", err)

	tiers, err := config.LoadTiers(flagConfig)
	exitOnError(logger, "could not load tier table", err)

	g, err := level.CreateGame(cmd.Context(), level.GameOptions{
		Runtime: rc,
		Tiers:   tiers,
		Logger:  logger,
	})
	exitOnError(logger, "could not generate run", err)
	logger.Debug("run generated", "seed", rc.Seed, "levels", rc.Levels)

	game.Replay(g, cmds, flagTicks, func(tick uint64, lvl int, res game.StepResult) {
		switch {
		case res.Won:
			logger.Info(res.Message, "level", lvl+1, "tick", tick, "done", res.Done)
		case res.Failed:
			logger.Warn(res.Message, "level", lvl+1, "tick", tick)
		}
	})

	total, bonus := g.Score()
	snap := g.Snapshot()
	fmt.Printf("seed:       %d\n", rc.Seed)
	fmt.Printf("ticks:      %d\n", g.Tick())
	fmt.Printf("levels won: %d/%d\n", g.LevelsWon(), len(g.Scenes()))
	fmt.Printf("attempts:   %d\n", g.Attempts())
	fmt.Printf("score:      %.2f (gas bonus %.2f)\n", total, bonus)
	fmt.Printf("hash:       %016x\n", snap.Hash())
	fmt.Printf("state:      %s\n", g.Dump())
}
