package explore_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/hunlreev/console-quest-rpg/internal/catalog"
	dicemock "github.com/hunlreev/console-quest-rpg/internal/dice/mock"
	"github.com/hunlreev/console-quest-rpg/internal/entities"
	"github.com/hunlreev/console-quest-rpg/internal/errors"
	"github.com/hunlreev/console-quest-rpg/internal/services/explore"
)

type ServiceTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockRandom *dicemock.MockSource
	service    explore.Service
	ctx        context.Context
	player     *entities.Player
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func (s *ServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRandom = dicemock.NewMockSource(s.ctrl)
	s.ctx = context.Background()

	svc, err := explore.NewService(&explore.Config{
		Random:        s.mockRandom,
		Catalog:       catalog.Default(),
		EncounterRate: explore.DefaultEncounterRate,
	})
	s.Require().NoError(err)
	s.service = svc

	s.player = entities.NewPlayer(entities.PlayerConfig{ID: "player_1", Name: "Ayla"})
}

func (s *ServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ServiceTestSuite) expectRolls(location, duration int, encounter float64) {
	gomock.InOrder(
		s.mockRandom.EXPECT().IntRange(0, 6).Return(location),
		s.mockRandom.EXPECT().IntRange(0, 3).Return(duration),
		s.mockRandom.EXPECT().Float64().Return(encounter),
	)
}

func (s *ServiceTestSuite) TestExploreWithEncounter() {
	s.expectRolls(2, 0, 0.66)

	out, err := s.service.Explore(s.ctx, &explore.ExploreInput{Player: s.player})
	s.Require().NoError(err)

	s.Equal("Desolate Cave", out.Location)
	s.Equal("Desolate Cave", s.player.Location)
	s.Equal(1, out.Duration.Seconds)
	s.True(out.Encounter)
}

func (s *ServiceTestSuite) TestExploreWithoutEncounter() {
	// a roll equal to the rate is not an encounter
	s.expectRolls(6, 3, 0.67)

	out, err := s.service.Explore(s.ctx, &explore.ExploreInput{Player: s.player})
	s.Require().NoError(err)

	s.Equal("Sacked Camp", out.Location)
	s.Equal(4, out.Duration.Seconds)
	s.False(out.Encounter)
}

func (s *ServiceTestSuite) TestExploreRequiresPlayer() {
	_, err := s.service.Explore(s.ctx, &explore.ExploreInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *ServiceTestSuite) TestNewServiceValidation() {
	_, err := explore.NewService(&explore.Config{
		Random:        s.mockRandom,
		Catalog:       catalog.Default(),
		EncounterRate: 1.5,
	})
	s.Require().Error(err)
	s.Contains(err.Error(), "EncounterRate")

	_, err = explore.NewService(&explore.Config{EncounterRate: 0.5})
	s.Require().Error(err)
	s.Contains(err.Error(), "Random")
	s.Contains(err.Error(), "Catalog")
}
