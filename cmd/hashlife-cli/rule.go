package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gosperlife/hashlife"
)

func init() {
	rootCmd.AddCommand(newRuleCmd())
}

func newRuleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rule <B.../S...>",
		Short: "Validate a B/S rule string and print its canonical form",
		Example: `  hashlife-cli rule B3/S23
  hashlife-cli rule S23/B3`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := hashlife.ParseRule(args[0])
			if err != nil {
				return err
			}
			fmt.Println(r.String())
			return nil
		},
	}
}
