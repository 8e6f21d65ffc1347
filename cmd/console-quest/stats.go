package main

import (
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show a character",
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, _ []string) error {
	p, err := game.loadPlayer(cmd.Context(), playerID)
	if err != nil {
		return err
	}
	renderStats(game.out, p)
	return nil
}
