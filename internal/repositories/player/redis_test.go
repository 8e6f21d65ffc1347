package player_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hunlreev/console-quest-rpg/internal/repositories/player"
	"github.com/hunlreev/console-quest-rpg/internal/testutils"
)

func TestRedisListDropsStaleIndexEntries(t *testing.T) {
	client, mr, cleanup := testutils.CreateTestRedisClient(t)
	defer cleanup()

	repo, err := player.NewRedis(player.RedisConfig{Client: client})
	require.NoError(t, err)

	ctx := context.Background()
	_, err = repo.Save(ctx, player.SaveInput{Player: testutils.CreateTestPlayer()})
	require.NoError(t, err)

	_, err = mr.SAdd("player:index", "ghost")
	require.NoError(t, err)

	list, err := repo.List(ctx, player.ListInput{})
	require.NoError(t, err)
	require.Len(t, list.Summaries, 1)
	require.Equal(t, testutils.TestPlayerID, list.Summaries[0].ID)

	isMember, err := mr.SIsMember("player:index", "ghost")
	require.NoError(t, err)
	require.False(t, isMember)
}

func TestNewRedisRequiresClient(t *testing.T) {
	_, err := player.NewRedis(player.RedisConfig{})
	require.Error(t, err)
}
