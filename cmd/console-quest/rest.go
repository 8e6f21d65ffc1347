package main

import (
	"github.com/spf13/cobra"
)

var restCmd = &cobra.Command{
	Use:   "rest",
	Short: "Rest to recover health, mana and stamina",
	RunE:  runRest,
}

func runRest(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	p, err := game.loadPlayer(ctx, playerID)
	if err != nil {
		return err
	}

	game.rest(p)
	return game.save(ctx, p)
}
