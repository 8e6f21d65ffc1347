package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hunlreev/console-quest-rpg/internal/repositories/player"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved characters",
	RunE:  runList,
}

func runList(cmd *cobra.Command, _ []string) error {
	out, err := game.repo.List(cmd.Context(), player.ListInput{})
	if err != nil {
		return err
	}

	if len(out.Summaries) == 0 {
		fmt.Fprintln(game.out, "No saved characters. Create one with: console-quest new")
	}
	for _, s := range out.Summaries {
		fmt.Fprintf(game.out, "%-44s %-20s level %-3d saved %s\n", s.ID, s.Name, s.Level, s.SavedAt.Local().Format(time.DateTime))
	}

	if len(out.Corrupt) > 0 {
		fmt.Fprintf(game.out, "%d save(s) could not be read. Run: console-quest verify\n", len(out.Corrupt))
	}
	return nil
}
