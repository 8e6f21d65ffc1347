package main

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/hunlreev/console-quest-rpg/internal/entities"
	"github.com/hunlreev/console-quest-rpg/internal/orchestrators/encounter"
)

func number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func pool(p entities.Pool) string {
	return number(p.Current) + "/" + number(p.Max)
}

func renderStats(w io.Writer, p *entities.Player) {
	fmt.Fprintf(w, "%s (%s)\n", p.Name, p.ID)
	fmt.Fprintf(w, "  %s %s, born under %s\n", p.Race, p.Class, p.Birthsign)
	fmt.Fprintf(w, "  Level %d  Experience %d/%d  Points %d\n", p.Level, p.Experience, p.NextExperience, p.AttributePoints)
	fmt.Fprintf(w, "  Health %s  Mana %s  Stamina %s\n",
		pool(p.Resources.Health), pool(p.Resources.Mana), pool(p.Resources.Stamina))

	for _, a := range entities.AllAttributes {
		fmt.Fprintf(w, "  %-13s %3d\n", a.String(), p.Attributes.Get(a))
	}

	fmt.Fprintf(w, "  Gold %d  Location %s\n", p.Gold, p.Location)
	fmt.Fprintf(w, "  Kills %d  Deaths %d  K/D %s\n", p.Kills, p.Deaths, number(p.KillDeathRatio()))
	renderInventory(w, p)
}

func renderInventory(w io.Writer, p *entities.Player) {
	if len(p.Inventory) == 0 {
		fmt.Fprintln(w, "  Inventory is empty")
		return
	}

	names := make([]string, 0, len(p.Inventory))
	for name := range p.Inventory {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(w, "  Inventory:")
	for _, name := range names {
		fmt.Fprintf(w, "    %s x%d\n", name, p.Inventory[name])
	}
}

func renderCombatants(w io.Writer, enc *encounter.Encounter) {
	p, e := enc.Player, enc.Enemy
	fmt.Fprintf(w, "\n%s  Health %s  Mana %s  Stamina %s\n",
		p.Name, pool(p.Resources.Health), pool(p.Resources.Mana), pool(p.Resources.Stamina))
	fmt.Fprintf(w, "%s (level %d)  Health %s\n", e.Type, e.Level, pool(e.Resources.Health))
}

func renderRun(w io.Writer, out *encounter.RunOutput) {
	switch out.State {
	case encounter.StatePlayerWon:
		fmt.Fprintf(w, "You defeated the %s!\n", out.Encounter.Enemy.Type)
		renderRewards(w, out.Rewards)
	case encounter.StatePlayerLost:
		fmt.Fprintf(w, "You were defeated by the %s.\n", out.Encounter.Enemy.Type)
		if out.Penalty != nil {
			fmt.Fprintf(w, "You lost %d experience and woke with %s health.\n",
				out.Penalty.ExperienceLost, number(out.Penalty.HealthRestored))
		}
	case encounter.StatePlayerFled:
		fmt.Fprintln(w, "You escaped.")
	}
}

func renderRewards(w io.Writer, r *encounter.Rewards) {
	if r == nil {
		return
	}
	fmt.Fprintf(w, "Gained %d experience and %d gold.\n", r.Experience, r.Gold)
	if r.Item != nil {
		fmt.Fprintf(w, "Found %s x%d.\n", r.Item.Name, r.Item.Count)
	}
	for _, lvl := range r.LevelUps {
		fmt.Fprintf(w, "Reached level %d!\n", lvl.Level)
	}
}
