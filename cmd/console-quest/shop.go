package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/hunlreev/console-quest-rpg/internal/entities"
)

var shopCmd = &cobra.Command{
	Use:   "shop",
	Short: "Trade with the shopkeeper",
}

var shopBuyCmd = &cobra.Command{
	Use:   "buy",
	Short: "Buy from today's stock",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return trade(cmd.Context(), game.buy)
	},
}

var shopSellCmd = &cobra.Command{
	Use:   "sell",
	Short: "Sell loot from your inventory",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return trade(cmd.Context(), game.sell)
	},
}

func init() {
	shopCmd.AddCommand(shopBuyCmd)
	shopCmd.AddCommand(shopSellCmd)
}

func trade(ctx context.Context, deal func(context.Context, *entities.Player) error) error {
	p, err := game.loadPlayer(ctx, playerID)
	if err != nil {
		return err
	}

	if err := deal(ctx, p); err != nil {
		return err
	}
	return game.save(ctx, p)
}
