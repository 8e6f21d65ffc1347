package main

import (
	"github.com/spf13/cobra"
)

var levelUpCmd = &cobra.Command{
	Use:   "levelup",
	Short: "Complete a pending level-up or spend saved attribute points",
	RunE:  runLevelUp,
}

func runLevelUp(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	p, err := game.loadPlayer(ctx, playerID)
	if err != nil {
		return err
	}

	if err := game.levelUp(ctx, p); err != nil {
		return err
	}
	return game.save(ctx, p)
}
