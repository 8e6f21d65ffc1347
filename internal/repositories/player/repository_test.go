package player_test

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/hunlreev/console-quest-rpg/internal/errors"
	"github.com/hunlreev/console-quest-rpg/internal/pkg/clock"
	"github.com/hunlreev/console-quest-rpg/internal/repositories/player"
	"github.com/hunlreev/console-quest-rpg/internal/testutils"
	"github.com/hunlreev/console-quest-rpg/internal/testutils/builders"
)

// opener builds a fresh repository and a hook that writes raw bytes under
// an ID, bypassing Save. The hook is nil when the backend cannot hold
// arbitrary bytes.
type opener func(t *testing.T, c clock.Clock) (player.Repository, func(id string, data []byte))

type RepositoryTestSuite struct {
	suite.Suite
	open    opener
	repo    player.Repository
	corrupt func(id string, data []byte)
	ctx     context.Context
	now     time.Time
}

func TestFileRepository(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{open: func(t *testing.T, c clock.Clock) (player.Repository, func(string, []byte)) {
		dir := t.TempDir()
		repo, err := player.NewFile(player.FileConfig{Dir: dir, Clock: c})
		require.NoError(t, err)
		return repo, func(id string, data []byte) {
			require.NoError(t, os.WriteFile(filepath.Join(dir, id+".json"), data, 0o600))
		}
	}})
}

func TestRedisRepository(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{open: func(t *testing.T, c clock.Clock) (player.Repository, func(string, []byte)) {
		client, mr, cleanup := testutils.CreateTestRedisClient(t)
		t.Cleanup(cleanup)
		repo, err := player.NewRedis(player.RedisConfig{Client: client, Clock: c})
		require.NoError(t, err)
		return repo, func(id string, data []byte) {
			require.NoError(t, mr.Set("player:"+id, string(data)))
			_, err := mr.SAdd("player:index", id)
			require.NoError(t, err)
		}
	}})
}

func TestSQLiteRepository(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{open: func(t *testing.T, c clock.Clock) (player.Repository, func(string, []byte)) {
		path := filepath.Join(t.TempDir(), "saves.db")
		repo, err := player.NewSQLite(player.SQLiteConfig{Path: path, Clock: c})
		require.NoError(t, err)
		return repo, func(id string, data []byte) {
			db, err := sql.Open("sqlite", path)
			require.NoError(t, err)
			defer func() { _ = db.Close() }()
			_, err = db.Exec(`INSERT INTO players (id, name, data, saved_at) VALUES (?, ?, ?, ?)`, id, "broken", data, "")
			require.NoError(t, err)
		}
	}})
}

func TestInMemoryRepository(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{open: func(t *testing.T, c clock.Clock) (player.Repository, func(string, []byte)) {
		return player.NewInMemoryWithClock(c), nil
	}})
}

func (s *RepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.now = time.Date(2024, 5, 4, 18, 30, 0, 0, time.UTC)
	s.repo, s.corrupt = s.open(s.T(), &clock.Fixed{At: s.now})
}

func (s *RepositoryTestSuite) TearDownTest() {
	_ = s.repo.Close()
}

func (s *RepositoryTestSuite) TestSaveLoadRoundTrip() {
	p := builders.NewPlayerBuilder().
		WithExperience(40).
		WithGold(113).
		WithItem("Imp Horn", 3).
		WithHealth(12.5).
		Build()
	p.Kills = 3
	p.Deaths = 1
	p.AttributePoints = 2
	p.Location = "Desolate Cave"
	p.Resources.Mana.Current = 7.25

	saved, err := s.repo.Save(s.ctx, player.SaveInput{Player: p})
	s.Require().NoError(err)
	s.Equal(s.now, saved.SavedAt)
	s.Equal(s.now, p.SavedAt)

	loaded, err := s.repo.Load(s.ctx, player.LoadInput{ID: p.ID})
	s.Require().NoError(err)
	s.Equal(p, loaded.Player)
}

func (s *RepositoryTestSuite) TestSaveStoresACopy() {
	p := testutils.CreateTestPlayer()
	_, err := s.repo.Save(s.ctx, player.SaveInput{Player: p})
	s.Require().NoError(err)

	p.Gold = 9999

	loaded, err := s.repo.Load(s.ctx, player.LoadInput{ID: p.ID})
	s.Require().NoError(err)
	s.Equal(25, loaded.Player.Gold)
}

func (s *RepositoryTestSuite) TestSaveOverwrites() {
	p := testutils.CreateTestPlayer()
	_, err := s.repo.Save(s.ctx, player.SaveInput{Player: p})
	s.Require().NoError(err)

	p.Gold = 7
	_, err = s.repo.Save(s.ctx, player.SaveInput{Player: p})
	s.Require().NoError(err)

	loaded, err := s.repo.Load(s.ctx, player.LoadInput{ID: p.ID})
	s.Require().NoError(err)
	s.Equal(7, loaded.Player.Gold)

	list, err := s.repo.List(s.ctx, player.ListInput{})
	s.Require().NoError(err)
	s.Len(list.Summaries, 1)
}

func (s *RepositoryTestSuite) TestNotFound() {
	_, err := s.repo.Load(s.ctx, player.LoadInput{ID: "missing"})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Delete(s.ctx, player.DeleteInput{ID: "missing"})
	s.True(errors.IsNotFound(err))
}

func (s *RepositoryTestSuite) TestInvalidInput() {
	_, err := s.repo.Save(s.ctx, player.SaveInput{})
	s.True(errors.IsInvalidArgument(err))

	for _, id := range []string{"", "  ", "../escape", `a\b`} {
		s.Run(id, func() {
			_, err := s.repo.Load(s.ctx, player.LoadInput{ID: id})
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *RepositoryTestSuite) TestDelete() {
	p := testutils.CreateTestPlayer()
	_, err := s.repo.Save(s.ctx, player.SaveInput{Player: p})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, player.DeleteInput{ID: p.ID})
	s.Require().NoError(err)

	_, err = s.repo.Load(s.ctx, player.LoadInput{ID: p.ID})
	s.True(errors.IsNotFound(err))

	list, err := s.repo.List(s.ctx, player.ListInput{})
	s.Require().NoError(err)
	s.Empty(list.Summaries)
}

func (s *RepositoryTestSuite) TestListSortsByID() {
	for _, id := range []string{"player_b", "player_a"} {
		p := builders.NewPlayerBuilder().WithID(id).WithName(id).Build()
		_, err := s.repo.Save(s.ctx, player.SaveInput{Player: p})
		s.Require().NoError(err)
	}

	list, err := s.repo.List(s.ctx, player.ListInput{})
	s.Require().NoError(err)
	s.Require().Len(list.Summaries, 2)
	s.Equal(player.Summary{ID: "player_a", Name: "player_a", Level: 1, SavedAt: s.now}, list.Summaries[0])
	s.Equal("player_b", list.Summaries[1].ID)
	s.Empty(list.Corrupt)
}

func (s *RepositoryTestSuite) TestCorruptSnapshots() {
	if s.corrupt == nil {
		s.T().Skip("backend only stores encoded players")
	}

	_, err := s.repo.Save(s.ctx, player.SaveInput{Player: testutils.CreateTestPlayer()})
	s.Require().NoError(err)

	s.corrupt("garbled", []byte("{not json"))
	s.corrupt("hollow", []byte(`{"name":"nobody"}`))

	_, err = s.repo.Load(s.ctx, player.LoadInput{ID: "garbled"})
	s.True(errors.IsDataLoss(err))

	_, err = s.repo.Load(s.ctx, player.LoadInput{ID: "hollow"})
	s.True(errors.IsDataLoss(err))

	list, err := s.repo.List(s.ctx, player.ListInput{})
	s.Require().NoError(err)
	s.Len(list.Summaries, 1)
	s.Equal([]string{"garbled", "hollow"}, list.Corrupt)
}
