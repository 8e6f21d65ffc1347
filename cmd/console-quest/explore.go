package main

import (
	"github.com/spf13/cobra"
)

var exploreCmd = &cobra.Command{
	Use:   "explore",
	Short: "Explore the wilds",
	Long:  `Travel to a random location. If an enemy is waiting there the fight is played out interactively.`,
	RunE:  runExplore,
}

func runExplore(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	p, err := game.loadPlayer(ctx, playerID)
	if err != nil {
		return err
	}

	if err := game.exploreOnce(ctx, p); err != nil {
		return err
	}
	return game.save(ctx, p)
}
