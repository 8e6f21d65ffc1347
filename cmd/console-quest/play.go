package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/hunlreev/console-quest-rpg/internal/entities"
	"github.com/hunlreev/console-quest-rpg/internal/errors"
	"github.com/hunlreev/console-quest-rpg/internal/repositories/player"
	"github.com/hunlreev/console-quest-rpg/internal/services/creation"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play interactively",
	Long:  `Pick or create a character, then explore, rest and trade from a menu. Progress is saved after every action.`,
	RunE:  runPlay,
}

var playMenu = []string{"Explore", "Rest", "Stats", "Level up", "Buy", "Sell", "Quit"}

func runPlay(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	p, err := game.choosePlayer(ctx, playerID)
	if err != nil {
		return err
	}

	err = game.play(ctx, p)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// choosePlayer loads id, or lets the player pick a save or start a new one
func (a *app) choosePlayer(ctx context.Context, id string) (*entities.Player, error) {
	if id != "" {
		return a.loadPlayer(ctx, id)
	}

	list, err := a.repo.List(ctx, player.ListInput{})
	if err != nil {
		return nil, err
	}

	options := make([]string, 0, len(list.Summaries)+1)
	for _, s := range list.Summaries {
		options = append(options, fmt.Sprintf("%s, level %d (%s)", s.Name, s.Level, s.ID))
	}
	options = append(options, "New character")

	idx, err := a.prompt.choose("Who will you play?", options)
	if err != nil {
		return nil, err
	}
	if idx == len(list.Summaries) {
		return a.createPlayer(ctx, &creation.CreateInput{})
	}
	return a.loadPlayer(ctx, list.Summaries[idx].ID)
}

// play runs the menu until the player quits or input ends. Rule
// violations such as buying without gold are shown and the loop goes on.
func (a *app) play(ctx context.Context, p *entities.Player) error {
	fmt.Fprintf(a.out, "Welcome, %s. You are in %s.\n", p.Name, p.Location)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		idx, err := a.prompt.choose("\nWhat next?", playMenu)
		if err != nil {
			return err
		}

		switch playMenu[idx] {
		case "Explore":
			err = a.exploreOnce(ctx, p)
		case "Rest":
			a.rest(p)
		case "Stats":
			renderStats(a.out, p)
			continue
		case "Level up":
			err = a.levelUp(ctx, p)
		case "Buy":
			err = a.buy(ctx, p)
		case "Sell":
			err = a.sell(ctx, p)
		case "Quit":
			fmt.Fprintln(a.out, "Farewell.")
			return nil
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				// the action may have finished before input ran out
				if saveErr := a.save(ctx, p); saveErr != nil {
					return saveErr
				}
				return err
			}
			if !errors.IsRecoverable(err) {
				return err
			}
			fmt.Fprintln(a.out, errors.GetMessage(err))
		}

		if err := a.save(ctx, p); err != nil {
			return err
		}
	}
}
