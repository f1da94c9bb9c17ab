package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/gosperlife/hashlife"
	"github.com/gosperlife/hashlife/internal/bigint"
)

var (
	showPattern     string
	showDemo        string
	showRule        string
	showGenerations uint64
	showMinX        int64
	showMinY        int64
	showMaxX        int64
	showMaxY        int64
	showWindowSet   bool
)

func init() {
	cmd := newShowCmd()
	cmd.Flags().StringVar(&showPattern, "pattern", "", "path to an RLE pattern file")
	cmd.Flags().StringVar(&showDemo, "demo", "", "built-in demo pattern (blinker, block, glider, acorn)")
	cmd.Flags().StringVar(&showRule, "rule", "", "B/S rule, e.g. B3/S23 (defaults to the config default)")
	cmd.Flags().Uint64Var(&showGenerations, "generations", 0, "number of generations to look ahead (non-destructive)")
	cmd.Flags().Int64Var(&showMinX, "min-x", 0, "window minimum X (defaults to the config default)")
	cmd.Flags().Int64Var(&showMinY, "min-y", 0, "window minimum Y (defaults to the config default)")
	cmd.Flags().Int64Var(&showMaxX, "max-x", 0, "window maximum X (defaults to the config default)")
	cmd.Flags().Int64Var(&showMaxY, "max-y", 0, "window maximum Y (defaults to the config default)")
	cmd.Flags().BoolVar(&showWindowSet, "window", false, "set to use --min-x/--min-y/--max-x/--max-y instead of the config default window")
	rootCmd.AddCommand(cmd)
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "List the live cells within a window at a future instant, without mutating state",
		Example: `  hashlife-cli show --demo glider --generations 4 --window --min-x -5 --min-y -5 --max-x 5 --max-y 5
  hashlife-cli show --pattern rpentomino.rle --generations 1103`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShowCmd()
		},
	}
}

func runShowCmd() error {
	rule := showRule
	if rule == "" {
		rule = defaultCfg.Rule
	}
	u, err := loadUniverse(showPattern, showDemo, rule)
	if err != nil {
		return err
	}

	minX, minY, maxX, maxY := defaultCfg.Window.MinX, defaultCfg.Window.MinY, defaultCfg.Window.MaxX, defaultCfg.Window.MaxY
	if showWindowSet {
		minX, minY, maxX, maxY = showMinX, showMinY, showMaxX, showMaxY
	}
	w, err := hashlife.NewWindow(bigint.FromInt64(minX), bigint.FromInt64(minY), bigint.FromInt64(maxX), bigint.FromInt64(maxY))
	if err != nil {
		return fmt.Errorf("building window: %w", err)
	}

	if verbose {
		log.Printf("hashlife-cli: exploring window [%d,%d]-[%d,%d] at generation %d", minX, minY, maxX, maxY, showGenerations)
	}

	cells := u.Explore(w, bigint.FromUint64(showGenerations))
	for _, c := range cells {
		fmt.Println(c.X.String() + "," + c.Y.String())
	}
	fmt.Printf("%d live cells\n", len(cells))
	return nil
}
