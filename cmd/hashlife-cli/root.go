// Command hashlife-cli is a thin cobra wrapper around the hashlife package:
// load a pattern, advance it, and report population or live cells.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
)

var (
	verbose    bool
	cfgFile    string
	defaultCfg cliConfig
)

var rootCmd = &cobra.Command{
	Use:   "hashlife-cli",
	Short: "Run and inspect HashLife cellular-automaton simulations",
	Long: `hashlife-cli loads a pattern (an RLE file or a handful of built-in
demo patterns), advances it under a life-like B/S rule, and reports the
result as a population count or a list of live cells within a window.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		defaultCfg = cfg
		if verbose {
			log.Printf("hashlife-cli: using rule %s", defaultCfg.Rule)
		}
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log what the CLI is doing")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "optional YAML config file (default rule and window)")
}
