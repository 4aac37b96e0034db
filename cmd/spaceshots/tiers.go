package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/spaceshots/internal/config"
)

var flagTiersDefaults bool

var tiersCmd = &cobra.Command{
	Use:   "tiers",
	Short: "List difficulty tiers",
	Long: `Shows the difficulty tiers from the loaded tier table.

Use --defaults to print the built-in tier table as YAML, a starting point
for a custom --config file.`,
	Args: cobra.NoArgs,
	Run:  runTiers,
}

func init() {
	tiersCmd.Flags().BoolVar(&flagTiersDefaults, "defaults", false, "Print the built-in tier table YAML")
}

func runTiers(_ *cobra.Command, _ []string) {
	if flagTiersDefaults {
		fmt.Print(string(config.DefaultTiersYAML()))
		return
	}

	logger := newLogger()
	tiers, err := config.LoadTiers(flagConfig)
	exitOnError(logger, "could not load tier table", err)

	fmt.Println("Difficulty tiers:")
	fmt.Println()
	fmt.Printf("  %-6s  %-7s  %-11s  %-8s  %s\n", "Tier", "Planets", "Win speed", "Fuel", "Score")
	fmt.Printf("  %-6s  %-7s  %-11s  %-8s  %s\n", "----", "-------", "---------", "----", "-----")

	for _, t := range config.Tiers {
		cfg, err := tiers.Get(t)
		if err != nil {
			continue
		}
		fmt.Printf("  %-6s  %-7s  %-11s  %-8s  %s\n",
			t,
			fmt.Sprintf("%d-%d", cfg.Planets.Count.Min, cfg.Planets.Count.Max),
			rangeText(cfg.Scene.WinVelocity),
			rangeText(cfg.Spacecraft.Gas),
			rangeText(cfg.Scene.CompletionScore))
	}

	fmt.Println()
	fmt.Println("Run 'spaceshots play --max-tier <tier>' to cap the difficulty.")
}

func rangeText(r config.Range) string {
	s := fmt.Sprintf("%g", r.Min)
	if r.Max != r.Min {
		s += fmt.Sprintf("-%g", r.Max)
	}
	if r.Of != "" {
		s += " ×" + string(r.Of)
	}
	return s
}
