package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hunlreev/console-quest-rpg/internal/repositories/player"
)

var deleteYes bool

var deleteCmd = &cobra.Command{
	Use:   "delete <player-id>",
	Short: "Delete a saved character",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Delete without asking")
}

func runDelete(cmd *cobra.Command, args []string) error {
	id := args[0]

	if !deleteYes {
		ok, err := game.prompt.confirm(fmt.Sprintf("Delete %s for good?", id))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(game.out, "Kept.")
			return nil
		}
	}

	if _, err := game.repo.Delete(cmd.Context(), player.DeleteInput{ID: id}); err != nil {
		return err
	}
	fmt.Fprintf(game.out, "Deleted %s\n", id)
	return nil
}
