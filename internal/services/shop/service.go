// Package shop trades items for gold against the catalog price tables
package shop

import (
	"context"
	"log/slog"
	"math"
	"strings"

	"github.com/hunlreev/console-quest-rpg/internal/catalog"
	"github.com/hunlreev/console-quest-rpg/internal/dice"
	"github.com/hunlreev/console-quest-rpg/internal/entities"
	"github.com/hunlreev/console-quest-rpg/internal/errors"
)

// DefaultStockSize is how many items the shop shows at once
const DefaultStockSize = 5

// Service buys and sells
type Service interface {
	// Stock samples the items for sale with today's prices
	Stock(ctx context.Context) (*StockOutput, error)

	// Offers prices every item the shop will buy
	Offers(ctx context.Context) (*OffersOutput, error)

	// Buy moves gold from the player to the shop
	Buy(ctx context.Context, input *BuyInput) (*TradeOutput, error)

	// Sell moves items from the player to the shop
	Sell(ctx context.Context, input *SellInput) (*TradeOutput, error)
}

// Offer is an item and its current unit price
type Offer struct {
	Name  string
	Price int
}

// StockOutput defines the response for listing items for sale
type StockOutput struct {
	Offers []Offer
}

// OffersOutput defines the response for listing what the shop buys
type OffersOutput struct {
	Offers []Offer
}

// BuyInput defines the request for buying
type BuyInput struct {
	Player   *entities.Player
	Item     string
	Price    int
	Quantity int
}

// SellInput defines the request for selling
type SellInput struct {
	Player   *entities.Player
	Item     string
	Price    int
	Quantity int
}

// TradeOutput defines the response for a completed trade
type TradeOutput struct {
	Total         int
	GoldRemaining int
}

// Config holds the dependencies for the shop service
type Config struct {
	Random  dice.Source
	Catalog *catalog.Catalog
	// StockSize defaults to DefaultStockSize when zero
	StockSize int
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Random == nil {
		vb.RequiredField("Random")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.StockSize < 0 {
		vb.InvalidField("StockSize", "must not be negative")
	}

	return vb.Build()
}

type service struct {
	random    dice.Source
	catalog   *catalog.Catalog
	stockSize int
}

// NewService creates a shop service with the provided dependencies
func NewService(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	size := cfg.StockSize
	if size == 0 {
		size = DefaultStockSize
	}

	return &service{
		random:    cfg.Random,
		catalog:   cfg.Catalog,
		stockSize: size,
	}, nil
}

// Stock picks up to stockSize distinct items, then prices each one
func (s *service) Stock(ctx context.Context) (*StockOutput, error) {
	items := s.catalog.ShopInventory()
	n := min(s.stockSize, len(items))

	// partial Fisher-Yates: the first n entries become the sample
	for i := 0; i < n; i++ {
		j := s.random.IntRange(i, len(items)-1)
		items[i], items[j] = items[j], items[i]
	}

	offers := make([]Offer, 0, n)
	for _, item := range items[:n] {
		offers = append(offers, Offer{Name: item.Name, Price: s.random.IntRange(item.Min, item.Max)})
	}

	slog.DebugContext(ctx, "shop stocked", "items", len(offers))

	return &StockOutput{Offers: offers}, nil
}

func (s *service) Offers(ctx context.Context) (*OffersOutput, error) {
	needs := s.catalog.ShopNeeds()

	offers := make([]Offer, 0, len(needs))
	for _, need := range needs {
		offers = append(offers, Offer{Name: need.Name, Price: s.random.IntRange(need.Min, need.Max)})
	}

	slog.DebugContext(ctx, "shop offers priced", "items", len(offers))

	return &OffersOutput{Offers: offers}, nil
}

func (s *service) Buy(ctx context.Context, input *BuyInput) (*TradeOutput, error) {
	if input == nil || input.Player == nil {
		return nil, errors.InvalidArgument("player is required")
	}
	if input.Quantity <= 0 {
		return nil, errors.InvalidArgumentf("quantity must be greater than zero, got %d", input.Quantity)
	}

	item, ok := findPrice(s.catalog.ShopInventory(), input.Item)
	if !ok {
		return nil, errors.NotFoundf("the shop does not sell %q", input.Item)
	}
	if input.Price < item.Min || input.Price > item.Max {
		return nil, errors.InvalidArgumentf("price %d for %s is outside %d-%d", input.Price, item.Name, item.Min, item.Max)
	}

	total, err := tradeTotal(input.Price, input.Quantity)
	if err != nil {
		return nil, err
	}

	p := input.Player
	if p.Gold < total {
		return nil, errors.FailedPreconditionf("not enough gold: need %d, have %d", total, p.Gold)
	}

	p.Gold -= total
	p.AddItem(item.Name, input.Quantity)

	slog.InfoContext(ctx, "item bought",
		"player_id", p.ID,
		"item", item.Name,
		"quantity", input.Quantity,
		"total", total)

	return &TradeOutput{Total: total, GoldRemaining: p.Gold}, nil
}

func (s *service) Sell(ctx context.Context, input *SellInput) (*TradeOutput, error) {
	if input == nil || input.Player == nil {
		return nil, errors.InvalidArgument("player is required")
	}
	if input.Quantity <= 0 {
		return nil, errors.InvalidArgumentf("quantity must be greater than zero, got %d", input.Quantity)
	}

	need, ok := s.catalog.ShopNeed(input.Item)
	if !ok {
		return nil, errors.FailedPreconditionf("the shop does not buy %q", input.Item)
	}
	if input.Price < need.Min || input.Price > need.Max {
		return nil, errors.InvalidArgumentf("price %d for %s is outside %d-%d", input.Price, need.Name, need.Min, need.Max)
	}

	total, err := tradeTotal(input.Price, input.Quantity)
	if err != nil {
		return nil, err
	}
	p := input.Player
	if p.Gold > math.MaxInt-total {
		return nil, errors.InvalidArgumentf("selling %d %s would overflow the purse", input.Quantity, need.Name)
	}
	if err := p.RemoveItem(need.Name, input.Quantity); err != nil {
		return nil, err
	}

	p.Gold += total

	slog.InfoContext(ctx, "item sold",
		"player_id", p.ID,
		"item", need.Name,
		"quantity", input.Quantity,
		"total", total)

	return &TradeOutput{Total: total, GoldRemaining: p.Gold}, nil
}

// tradeTotal multiplies price by quantity, rejecting quantities whose total
// does not fit in an int
func tradeTotal(price, quantity int) (int, error) {
	if quantity > math.MaxInt/max(price, 1) {
		return 0, errors.InvalidArgumentf("quantity %d is too large", quantity)
	}
	return price * quantity, nil
}

func findPrice(prices []catalog.PriceRange, name string) (catalog.PriceRange, bool) {
	for _, p := range prices {
		if strings.EqualFold(p.Name, strings.TrimSpace(name)) {
			return p, true
		}
	}
	return catalog.PriceRange{}, false
}
