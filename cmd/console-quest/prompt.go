package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hunlreev/console-quest-rpg/internal/entities"
	"github.com/hunlreev/console-quest-rpg/internal/orchestrators/encounter"
)

// prompter reads answers line by line
type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewScanner(in), out: out}
}

// ask prints question and returns the trimmed answer. It returns io.EOF
// once input runs out.
func (p *prompter) ask(question string) (string, error) {
	fmt.Fprint(p.out, question)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// choose lists options and keeps asking until one is picked by number or
// by name
func (p *prompter) choose(title string, options []string) (int, error) {
	fmt.Fprintln(p.out, title)
	for i, option := range options {
		fmt.Fprintf(p.out, "  %d) %s\n", i+1, option)
	}

	for {
		answer, err := p.ask("> ")
		if err != nil {
			return 0, err
		}
		if idx, ok := match(options, answer); ok {
			return idx, nil
		}
		fmt.Fprintln(p.out, "Please pick one of the listed options.")
	}
}

// match finds answer among options by 1-based number or by name
func match(options []string, answer string) (int, bool) {
	if n, err := strconv.Atoi(answer); err == nil && n >= 1 && n <= len(options) {
		return n - 1, true
	}
	for i, option := range options {
		if strings.EqualFold(option, answer) {
			return i, true
		}
	}
	return 0, false
}

// maxQuantity bounds a single trade
const maxQuantity = 999

// quantity asks for a count between one and maxQuantity. A blank answer
// means one.
func (p *prompter) quantity(question string) (int, error) {
	for {
		answer, err := p.ask(question)
		if err != nil {
			return 0, err
		}
		if answer == "" {
			return 1, nil
		}
		if n, err := strconv.Atoi(answer); err == nil && n > 0 && n <= maxQuantity {
			return n, nil
		}
		fmt.Fprintf(p.out, "Please enter a whole number from 1 to %d.\n", maxQuantity)
	}
}

// confirm asks a yes/no question; only "y" or "yes" agree
func (p *prompter) confirm(question string) (bool, error) {
	answer, err := p.ask(question + " (yes/no): ")
	if err != nil {
		return false, err
	}
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes", nil
}

// promptAllocator asks which attribute each level-up point goes to
type promptAllocator struct {
	prompt *prompter
}

func (a *promptAllocator) NextAllocation(_ context.Context, p *entities.Player) (entities.Attribute, bool, error) {
	for {
		answer, err := a.prompt.ask(fmt.Sprintf("%d point(s) left. Attribute to raise (blank keeps the rest): ", p.AttributePoints))
		if err != nil {
			return entities.AttributeUnspecified, false, err
		}
		if answer == "" {
			return entities.AttributeUnspecified, false, nil
		}

		attr, err := entities.ParseAttribute(answer)
		if err != nil {
			fmt.Fprintf(a.prompt.out, "Unknown attribute. Choose from %s.\n", attributeNames())
			continue
		}
		return attr, true, nil
	}
}

// promptActions asks the player what to do each turn
type promptActions struct {
	prompt *prompter
}

var combatMenu = []encounter.Action{encounter.ActionAttack, encounter.ActionCastSpell, encounter.ActionFlee}

func (a *promptActions) NextAction(_ context.Context, enc *encounter.Encounter) (encounter.Action, error) {
	renderCombatants(a.prompt.out, enc)

	options := []string{"Attack", "Cast spell", "Flee"}
	fmt.Fprintln(a.prompt.out, "What will you do?")
	for i, option := range options {
		fmt.Fprintf(a.prompt.out, "  %d) %s\n", i+1, option)
	}

	answer, err := a.prompt.ask("> ")
	if err != nil {
		return encounter.ActionNone, err
	}
	// anything else wastes the turn
	idx, ok := match(options, answer)
	if !ok {
		return encounter.ActionNone, nil
	}
	return combatMenu[idx], nil
}

func attributeNames() string {
	names := make([]string, 0, len(entities.AllAttributes))
	for _, a := range entities.AllAttributes {
		names = append(names, a.String())
	}
	return strings.Join(names, ", ")
}
