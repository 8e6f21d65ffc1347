package progression_test

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/hunlreev/console-quest-rpg/internal/entities"
	"github.com/hunlreev/console-quest-rpg/internal/errors"
	"github.com/hunlreev/console-quest-rpg/internal/services/progression"
	progressionmock "github.com/hunlreev/console-quest-rpg/internal/services/progression/mock"
)

type ServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockAllocator *progressionmock.MockPointAllocator
	service       progression.Service
	ctx           context.Context
	player        *entities.Player
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
	s.mockAllocator = progressionmock.NewMockPointAllocator(s.ctrl)
	s.ctx = context.Background()

	svc, err := progression.NewService(&progression.Config{})
	s.Require().NoError(err)
	s.service = svc

	s.player = entities.NewPlayer(entities.PlayerConfig{
		ID:   "player_1",
		Name: "Ayla",
		Attributes: entities.Attributes{
			Strength: 40, Endurance: 40, Intelligence: 40, Willpower: 40, Agility: 40, Speed: 40,
		},
	})
	s.player.Experience = 130
}

func (s *ServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ServiceTestSuite) TestNewService() {
	s.Equal(progression.DefaultLevelCap, s.service.LevelCap())

	svc, err := progression.NewService(nil)
	s.Require().NoError(err)
	s.Equal(progression.DefaultLevelCap, svc.LevelCap())

	svc, err = progression.NewService(&progression.Config{LevelCap: 10})
	s.Require().NoError(err)
	s.Equal(10, svc.LevelCap())

	_, err = progression.NewService(&progression.Config{LevelCap: -1})
	s.True(errors.IsInvalidArgument(err))
}

func (s *ServiceTestSuite) TestCanLevelUp() {
	s.Run("experience reached", func() {
		s.True(s.service.CanLevelUp(s.player))
	})

	s.Run("experience short", func() {
		s.player.Experience = 99
		s.False(s.service.CanLevelUp(s.player))
	})

	s.Run("at the cap", func() {
		s.player.Level = progression.DefaultLevelCap
		s.False(s.service.CanLevelUp(s.player))
	})

	s.Run("nil player", func() {
		s.False(s.service.CanLevelUp(nil))
	})
}

func (s *ServiceTestSuite) TestLevelUp() {
	s.Run("spends scripted points and completes the level", func() {
		s.player.Resources.Health.Current = 10

		out, err := s.service.LevelUp(s.ctx, &progression.LevelUpInput{
			Player:    s.player,
			Allocator: progression.NewScriptedAllocator(entities.Strength, entities.Endurance),
		})
		s.Require().NoError(err)

		s.Equal(2, out.Level)
		s.Equal([]entities.Attribute{entities.Strength, entities.Endurance}, out.Allocated)
		s.Zero(out.Rejected)
		s.Equal(3, out.PointsRemaining)

		s.Equal(41, s.player.Attributes.Strength)
		s.Equal(41, s.player.Attributes.Endurance)
		s.Equal(30, s.player.Experience)
		s.Equal(113, s.player.NextExperience)
		s.Equal(3, s.player.AttributePoints)
		// round(41 * (2 + 2*0.025) - 1)
		s.Equal(83.0, s.player.Resources.Health.Max)
		s.Equal(s.player.Resources.Health.Max, s.player.Resources.Health.Current)
	})

	s.Run("capped attribute keeps the point", func() {
		s.player.Attributes.Strength = entities.AttributeMax
		s.player.Recompute()

		out, err := s.service.LevelUp(s.ctx, &progression.LevelUpInput{
			Player:    s.player,
			Allocator: progression.NewScriptedAllocator(entities.Strength, entities.Speed),
		})
		s.Require().NoError(err)

		s.Equal(1, out.Rejected)
		s.Equal([]entities.Attribute{entities.Speed}, out.Allocated)
		s.Equal(4, out.PointsRemaining)
		s.Equal(entities.AttributeMax, s.player.Attributes.Strength)
		s.Equal(41, s.player.Attributes.Speed)
	})

	s.Run("unspecified attribute is ignored", func() {
		out, err := s.service.LevelUp(s.ctx, &progression.LevelUpInput{
			Player:    s.player,
			Allocator: progression.NewScriptedAllocator(entities.AttributeUnspecified, entities.Agility),
		})
		s.Require().NoError(err)

		s.Equal(1, out.Rejected)
		s.Equal(41, s.player.Attributes.Agility)
	})

	s.Run("stops after too many rejections", func() {
		s.player.Attributes = entities.Attributes{
			Strength: 100, Endurance: 100, Intelligence: 100, Willpower: 100, Agility: 100, Speed: 100,
		}
		s.mockAllocator.EXPECT().
			NextAllocation(gomock.Any(), s.player).
			Return(entities.Strength, true, nil).
			Times(progression.MaxRejectedAllocations)

		out, err := s.service.LevelUp(s.ctx, &progression.LevelUpInput{
			Player:    s.player,
			Allocator: s.mockAllocator,
		})
		s.Require().NoError(err)

		s.Equal(progression.MaxRejectedAllocations, out.Rejected)
		s.Equal(entities.LevelUpPoints, out.PointsRemaining)
		s.Equal(2, out.Level)
	})

	s.Run("allocator failure still completes the level", func() {
		gomock.InOrder(
			s.mockAllocator.EXPECT().NextAllocation(gomock.Any(), s.player).Return(entities.Willpower, true, nil),
			s.mockAllocator.EXPECT().NextAllocation(gomock.Any(), s.player).
				Return(entities.AttributeUnspecified, false, stderrors.New("input closed")),
		)

		out, err := s.service.LevelUp(s.ctx, &progression.LevelUpInput{
			Player:    s.player,
			Allocator: s.mockAllocator,
		})

		s.Require().Error(err)
		s.Nil(out)
		s.True(errors.IsInternal(err))
		s.Equal(2, s.player.Level)
		s.Equal(41, s.player.Attributes.Willpower)
		s.Equal(4, s.player.AttributePoints)
	})

	s.Run("no pending level", func() {
		s.player.Experience = 10

		_, err := s.service.LevelUp(s.ctx, &progression.LevelUpInput{
			Player:    s.player,
			Allocator: progression.NewScriptedAllocator(),
		})

		s.True(errors.IsFailedPrecondition(err))
		s.Equal(1, s.player.Level)
		s.Zero(s.player.AttributePoints)
	})

	s.Run("level cap blocks the level up", func() {
		s.player.Level = progression.DefaultLevelCap
		s.player.Experience = 100000

		_, err := s.service.LevelUp(s.ctx, &progression.LevelUpInput{
			Player:    s.player,
			Allocator: progression.NewScriptedAllocator(),
		})

		s.True(errors.IsFailedPrecondition(err))
	})

	s.Run("missing input", func() {
		_, err := s.service.LevelUp(s.ctx, nil)
		s.True(errors.IsInvalidArgument(err))

		_, err = s.service.LevelUp(s.ctx, &progression.LevelUpInput{Player: s.player})
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *ServiceTestSuite) TestSpendPoints() {
	s.Run("spends carried points", func() {
		s.player.AttributePoints = 3

		out, err := s.service.SpendPoints(s.ctx, &progression.SpendPointsInput{
			Player:    s.player,
			Allocator: progression.NewScriptedAllocator(entities.Agility),
		})
		s.Require().NoError(err)

		s.Equal(2, out.PointsRemaining)
		s.Equal(41, s.player.Attributes.Agility)
		s.Equal(1, s.player.Level)
	})

	s.Run("no points", func() {
		_, err := s.service.SpendPoints(s.ctx, &progression.SpendPointsInput{
			Player:    s.player,
			Allocator: progression.NewScriptedAllocator(entities.Agility),
		})
		s.True(errors.IsFailedPrecondition(err))
	})
}

func (s *ServiceTestSuite) TestScriptedAllocator() {
	alloc := progression.NewScriptedAllocator(entities.Speed)

	attr, ok, err := alloc.NextAllocation(s.ctx, s.player)
	s.NoError(err)
	s.True(ok)
	s.Equal(entities.Speed, attr)

	_, ok, err = alloc.NextAllocation(s.ctx, s.player)
	s.NoError(err)
	s.False(ok)
}
