package main

import (
	"context"
	"fmt"

	"github.com/hunlreev/console-quest-rpg/internal/catalog"
	"github.com/hunlreev/console-quest-rpg/internal/entities"
	"github.com/hunlreev/console-quest-rpg/internal/orchestrators/encounter"
	"github.com/hunlreev/console-quest-rpg/internal/services/creation"
	"github.com/hunlreev/console-quest-rpg/internal/services/explore"
	"github.com/hunlreev/console-quest-rpg/internal/services/progression"
	"github.com/hunlreev/console-quest-rpg/internal/services/shop"
)

// createPlayer prompts for any choice left blank in input, then creates
// and saves the character
func (a *app) createPlayer(ctx context.Context, input *creation.CreateInput) (*entities.Player, error) {
	var err error

	if input.Name == "" {
		if input.Name, err = a.prompt.ask("Name: "); err != nil {
			return nil, err
		}
	}
	if input.Race == "" {
		races := a.catalog.Races()
		if input.Race, err = a.pick("Choose a race:", len(races), func(i int) string { return races[i].Name }); err != nil {
			return nil, err
		}
	}
	if input.Birthsign == "" {
		if input.Birthsign, err = a.pickModifier("Choose a birthsign:", a.catalog.Birthsigns()); err != nil {
			return nil, err
		}
	}
	if input.Class == "" {
		if input.Class, err = a.pickModifier("Choose a class:", a.catalog.Classes()); err != nil {
			return nil, err
		}
	}

	out, err := a.creation.Create(ctx, input)
	if err != nil {
		return nil, err
	}
	if err := a.save(ctx, out.Player); err != nil {
		return nil, err
	}
	return out.Player, nil
}

func (a *app) pick(title string, n int, name func(int) string) (string, error) {
	options := make([]string, n)
	for i := range options {
		options[i] = name(i)
	}
	idx, err := a.prompt.choose(title, options)
	if err != nil {
		return "", err
	}
	return options[idx], nil
}

func (a *app) pickModifier(title string, mods []catalog.Modifier) (string, error) {
	return a.pick(title, len(mods), func(i int) string { return mods[i].Name })
}

// rest restores the player's pools
func (a *app) rest(p *entities.Player) {
	res := p.Rest(a.random)
	fmt.Fprintf(a.out, "You rest for %s seconds, recovering %s health, %s mana and %s stamina.\n",
		number(entities.Round2(res.WaitSeconds)), number(res.Health), number(res.Mana), number(res.Stamina))
}

// exploreOnce moves the player and fights whatever is found
func (a *app) exploreOnce(ctx context.Context, p *entities.Player) error {
	out, err := a.explore.Explore(ctx, &explore.ExploreInput{Player: p})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "You set out for the %s (%s).\n", out.Location, out.Duration.Description)
	if !out.Encounter {
		fmt.Fprintln(a.out, "Nothing stirs.")
		return nil
	}

	return a.fight(ctx, p)
}

// fight runs one encounter against a generated enemy
func (a *app) fight(ctx context.Context, p *entities.Player) error {
	out, err := a.encounters.Run(ctx, &encounter.RunInput{
		Player:    p,
		Actions:   &promptActions{prompt: a.prompt},
		Allocator: &promptAllocator{prompt: a.prompt},
	})
	if out != nil {
		renderRun(a.out, out)
	}
	return err
}

// levelUp completes a pending level or spends points kept from earlier
func (a *app) levelUp(ctx context.Context, p *entities.Player) error {
	allocator := &promptAllocator{prompt: a.prompt}

	if a.progression.CanLevelUp(p) {
		out, err := a.progression.LevelUp(ctx, &progression.LevelUpInput{Player: p, Allocator: allocator})
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Reached level %d with %d point(s) to spare.\n", out.Level, out.PointsRemaining)
		return nil
	}

	if p.AttributePoints > 0 {
		out, err := a.progression.SpendPoints(ctx, &progression.SpendPointsInput{Player: p, Allocator: allocator})
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Spent %d point(s); %d left.\n", len(out.Allocated), out.PointsRemaining)
		return nil
	}

	if p.Level >= a.progression.LevelCap() {
		fmt.Fprintln(a.out, "You have reached the level cap.")
		return nil
	}
	fmt.Fprintf(a.out, "You need %d more experience to level up.\n", p.NextExperience-p.Experience)
	return nil
}

// buy shows today's stock and buys the chosen item
func (a *app) buy(ctx context.Context, p *entities.Player) error {
	stock, err := a.shop.Stock(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "You have %d gold.\n", p.Gold)
	offer, ok, err := a.chooseOffer("The shopkeeper shows you:", stock.Offers)
	if err != nil || !ok {
		return err
	}

	qty, err := a.prompt.quantity("How many? ")
	if err != nil {
		return err
	}

	trade, err := a.shop.Buy(ctx, &shop.BuyInput{Player: p, Item: offer.Name, Price: offer.Price, Quantity: qty})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Bought %d %s for %d gold. %d gold left.\n", qty, offer.Name, trade.Total, trade.GoldRemaining)
	return nil
}

// sell prices the player's sellable items and sells the chosen one
func (a *app) sell(ctx context.Context, p *entities.Player) error {
	offers, err := a.shop.Offers(ctx)
	if err != nil {
		return err
	}

	var held []shop.Offer
	for _, o := range offers.Offers {
		if p.Inventory[o.Name] > 0 {
			held = append(held, o)
		}
	}
	if len(held) == 0 {
		fmt.Fprintln(a.out, "You have nothing the shopkeeper wants.")
		return nil
	}

	offer, ok, err := a.chooseOffer("The shopkeeper will buy:", held)
	if err != nil || !ok {
		return err
	}

	qty, err := a.prompt.quantity(fmt.Sprintf("How many (you have %d)? ", p.Inventory[offer.Name]))
	if err != nil {
		return err
	}

	trade, err := a.shop.Sell(ctx, &shop.SellInput{Player: p, Item: offer.Name, Price: offer.Price, Quantity: qty})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Sold %d %s for %d gold. You now have %d gold.\n", qty, offer.Name, trade.Total, trade.GoldRemaining)
	return nil
}

// chooseOffer lists offers plus a way out; ok is false when the player
// leaves
func (a *app) chooseOffer(title string, offers []shop.Offer) (shop.Offer, bool, error) {
	options := make([]string, 0, len(offers)+1)
	for _, o := range offers {
		options = append(options, fmt.Sprintf("%s (%d gold)", o.Name, o.Price))
	}
	options = append(options, "Leave")

	idx, err := a.prompt.choose(title, options)
	if err != nil || idx == len(offers) {
		return shop.Offer{}, false, err
	}
	return offers[idx], true, nil
}
