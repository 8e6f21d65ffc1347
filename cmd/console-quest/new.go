package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hunlreev/console-quest-rpg/internal/services/creation"
)

var (
	newName      string
	newSex       string
	newRace      string
	newBirthsign string
	newClass     string
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a character",
	Long:  `Create a character. Choices not given as flags are asked for interactively.`,
	RunE:  runNew,
}

func init() {
	newCmd.Flags().StringVar(&newName, "name", "", "Character name")
	newCmd.Flags().StringVar(&newSex, "sex", "", "Character sex")
	newCmd.Flags().StringVar(&newRace, "race", "", "Race, such as Human or Elf")
	newCmd.Flags().StringVar(&newBirthsign, "birthsign", "", "Birthsign, such as The Knight")
	newCmd.Flags().StringVar(&newClass, "class", "", "Class, such as Warrior")
}

func runNew(cmd *cobra.Command, _ []string) error {
	p, err := game.createPlayer(cmd.Context(), &creation.CreateInput{
		Name:      newName,
		Sex:       newSex,
		Race:      newRace,
		Birthsign: newBirthsign,
		Class:     newClass,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(game.out, "Created %s. Play with --player %s\n", p.Name, p.ID)
	renderStats(game.out, p)
	return nil
}
