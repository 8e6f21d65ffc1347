package shop_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/hunlreev/console-quest-rpg/internal/catalog"
	dicemock "github.com/hunlreev/console-quest-rpg/internal/dice/mock"
	"github.com/hunlreev/console-quest-rpg/internal/entities"
	"github.com/hunlreev/console-quest-rpg/internal/errors"
	"github.com/hunlreev/console-quest-rpg/internal/services/shop"
)

type ServiceTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockRandom *dicemock.MockSource
	service    shop.Service
	ctx        context.Context
	player     *entities.Player
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func (s *ServiceTestSuite) SetupTest() {
	s.reset()
}

func (s *ServiceTestSuite) SetupSubTest() {
	s.reset()
}

func (s *ServiceTestSuite) reset() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRandom = dicemock.NewMockSource(s.ctrl)
	s.ctx = context.Background()

	tables := catalog.Load(fstest.MapFS{
		catalog.ShopInventoryFile: {Data: []byte("Health Potion, 8, 14\nBread, 1, 3\nTorch, 2, 4\n")},
		catalog.ShopNeedsFile:     {Data: []byte("Bone, 1, 3\nImp Horn, 4, 8\n")},
	})

	svc, err := shop.NewService(&shop.Config{
		Random:    s.mockRandom,
		Catalog:   tables,
		StockSize: 2,
	})
	s.Require().NoError(err)
	s.service = svc

	s.player = entities.NewPlayer(entities.PlayerConfig{ID: "player_1", Name: "Ayla"})
	s.player.Gold = 50
}

func (s *ServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ServiceTestSuite) TestStock() {
	gomock.InOrder(
		s.mockRandom.EXPECT().IntRange(0, 2).Return(2),
		s.mockRandom.EXPECT().IntRange(1, 2).Return(1),
		s.mockRandom.EXPECT().IntRange(2, 4).Return(3),
		s.mockRandom.EXPECT().IntRange(1, 3).Return(2),
	)

	out, err := s.service.Stock(s.ctx)
	s.Require().NoError(err)

	s.Equal([]shop.Offer{{Name: "Torch", Price: 3}, {Name: "Bread", Price: 2}}, out.Offers)
}

func (s *ServiceTestSuite) TestStockWithEmptyTable() {
	svc, err := shop.NewService(&shop.Config{Random: s.mockRandom, Catalog: catalog.Load(fstest.MapFS{})})
	s.Require().NoError(err)

	out, err := svc.Stock(s.ctx)
	s.Require().NoError(err)
	s.Empty(out.Offers)
}

func (s *ServiceTestSuite) TestOffers() {
	gomock.InOrder(
		s.mockRandom.EXPECT().IntRange(1, 3).Return(2),
		s.mockRandom.EXPECT().IntRange(4, 8).Return(7),
	)

	out, err := s.service.Offers(s.ctx)
	s.Require().NoError(err)

	s.Equal([]shop.Offer{{Name: "Bone", Price: 2}, {Name: "Imp Horn", Price: 7}}, out.Offers)
}

func (s *ServiceTestSuite) TestBuy() {
	s.Run("deducts gold and adds items", func() {
		out, err := s.service.Buy(s.ctx, &shop.BuyInput{
			Player: s.player, Item: "Health Potion", Price: 10, Quantity: 3,
		})
		s.Require().NoError(err)

		s.Equal(30, out.Total)
		s.Equal(20, out.GoldRemaining)
		s.Equal(20, s.player.Gold)
		s.Equal(3, s.player.Inventory["Health Potion"])
	})

	s.Run("exact gold is enough", func() {
		_, err := s.service.Buy(s.ctx, &shop.BuyInput{
			Player: s.player, Item: "health potion", Price: 10, Quantity: 5,
		})
		s.Require().NoError(err)
		s.Zero(s.player.Gold)
		s.Equal(5, s.player.Inventory["Health Potion"])
	})

	s.Run("not enough gold", func() {
		_, err := s.service.Buy(s.ctx, &shop.BuyInput{
			Player: s.player, Item: "Health Potion", Price: 14, Quantity: 4,
		})
		s.True(errors.IsFailedPrecondition(err))
		s.Equal(50, s.player.Gold)
		s.Empty(s.player.Inventory)
	})

	s.Run("quantity must be positive", func() {
		_, err := s.service.Buy(s.ctx, &shop.BuyInput{
			Player: s.player, Item: "Bread", Price: 1, Quantity: 0,
		})
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("price outside the range", func() {
		_, err := s.service.Buy(s.ctx, &shop.BuyInput{
			Player: s.player, Item: "Bread", Price: 0, Quantity: 1,
		})
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("quantity that overflows the total", func() {
		_, err := s.service.Buy(s.ctx, &shop.BuyInput{
			Player: s.player, Item: "Torch", Price: 4, Quantity: 1 << 62,
		})
		s.True(errors.IsInvalidArgument(err))
		s.Equal(50, s.player.Gold)
		s.Empty(s.player.Inventory)
	})

	s.Run("unknown item", func() {
		_, err := s.service.Buy(s.ctx, &shop.BuyInput{
			Player: s.player, Item: "Sword", Price: 1, Quantity: 1,
		})
		s.True(errors.IsNotFound(err))
	})
}

func (s *ServiceTestSuite) TestSell() {
	s.Run("adds gold and removes items", func() {
		s.player.AddItem("Imp Horn", 3)

		out, err := s.service.Sell(s.ctx, &shop.SellInput{
			Player: s.player, Item: "Imp Horn", Price: 5, Quantity: 2,
		})
		s.Require().NoError(err)

		s.Equal(10, out.Total)
		s.Equal(60, s.player.Gold)
		s.Equal(1, s.player.Inventory["Imp Horn"])
	})

	s.Run("selling everything removes the entry", func() {
		s.player.AddItem("Bone", 2)

		_, err := s.service.Sell(s.ctx, &shop.SellInput{
			Player: s.player, Item: "Bone", Price: 1, Quantity: 2,
		})
		s.Require().NoError(err)

		_, held := s.player.Inventory["Bone"]
		s.False(held)
	})

	s.Run("not enough in inventory", func() {
		s.player.AddItem("Bone", 1)

		_, err := s.service.Sell(s.ctx, &shop.SellInput{
			Player: s.player, Item: "Bone", Price: 1, Quantity: 2,
		})
		s.True(errors.IsFailedPrecondition(err))
		s.Equal(50, s.player.Gold)
		s.Equal(1, s.player.Inventory["Bone"])
	})

	s.Run("quantity that overflows the total", func() {
		s.player.AddItem("Imp Horn", 1<<62)

		_, err := s.service.Sell(s.ctx, &shop.SellInput{
			Player: s.player, Item: "Imp Horn", Price: 8, Quantity: 1 << 62,
		})
		s.True(errors.IsInvalidArgument(err))
		s.Equal(50, s.player.Gold)
		s.Equal(1<<62, s.player.Inventory["Imp Horn"])
	})

	s.Run("shop does not buy the item", func() {
		s.player.AddItem("Bread", 1)

		_, err := s.service.Sell(s.ctx, &shop.SellInput{
			Player: s.player, Item: "Bread", Price: 1, Quantity: 1,
		})
		s.True(errors.IsFailedPrecondition(err))
	})

	s.Run("quantity must be positive", func() {
		_, err := s.service.Sell(s.ctx, &shop.SellInput{
			Player: s.player, Item: "Bone", Price: 1, Quantity: -1,
		})
		s.True(errors.IsInvalidArgument(err))
	})
}
