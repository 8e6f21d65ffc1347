package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hunlreev/console-quest-rpg/internal/repositories/player"
)

var verifyFix bool

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Scan saves for unreadable snapshots",
	Long: `Load every save in the configured backend and report the ones that cannot be decoded.
With --fix the unreadable saves are deleted after confirmation.`,
	RunE: runVerify,
}

func init() {
	verifyCmd.Flags().BoolVar(&verifyFix, "fix", false, "Offer to delete unreadable saves")
}

func runVerify(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	fmt.Fprintf(game.out, "Scanning %s saves...\n", game.cfg.Backend)

	out, err := game.repo.List(ctx, player.ListInput{})
	if err != nil {
		return err
	}

	fmt.Fprintf(game.out, "Checked %d saves, found %d unreadable\n", len(out.Summaries)+len(out.Corrupt), len(out.Corrupt))
	if len(out.Corrupt) == 0 {
		return nil
	}

	for _, id := range out.Corrupt {
		fmt.Fprintf(game.out, "  - %s\n", id)
	}
	if !verifyFix {
		fmt.Fprintln(game.out, "Run again with --fix to remove them.")
		return nil
	}

	ok, err := game.prompt.confirm("Delete these saves?")
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(game.out, "Aborted, no changes made")
		return nil
	}

	var failed int
	for _, id := range out.Corrupt {
		if _, err := game.repo.Delete(ctx, player.DeleteInput{ID: id}); err != nil {
			fmt.Fprintf(game.out, "Failed to delete %s: %v\n", id, err)
			failed++
			continue
		}
		fmt.Fprintf(game.out, "Deleted %s\n", id)
	}

	if failed > 0 {
		return fmt.Errorf("%d save(s) could not be deleted", failed)
	}
	return nil
}
