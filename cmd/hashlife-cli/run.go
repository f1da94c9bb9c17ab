package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

var (
	runPattern     string
	runDemo        string
	runRule        string
	runGenerations uint64
)

func init() {
	cmd := newRunCmd()
	cmd.Flags().StringVar(&runPattern, "pattern", "", "path to an RLE pattern file")
	cmd.Flags().StringVar(&runDemo, "demo", "", "built-in demo pattern (blinker, block, glider, acorn)")
	cmd.Flags().StringVar(&runRule, "rule", "", "B/S rule, e.g. B3/S23 (defaults to the config default)")
	cmd.Flags().Uint64Var(&runGenerations, "generations", 0, "number of generations to advance")
	rootCmd.AddCommand(cmd)
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Advance a pattern and report its final population",
		Example: `  hashlife-cli run --demo acorn --generations 5206
  hashlife-cli run --pattern glider.rle --rule B3/S23 --generations 4`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRunCmd()
		},
	}
}

func runRunCmd() error {
	rule := runRule
	if rule == "" {
		rule = defaultCfg.Rule
	}
	u, err := loadUniverse(runPattern, runDemo, rule)
	if err != nil {
		return err
	}
	if verbose {
		log.Printf("hashlife-cli: loaded pattern, population %s before advancing", u.Population())
	}
	u.Advance(runGenerations)
	fmt.Printf("generation %d: population %s\n", runGenerations, u.Population())
	return nil
}
