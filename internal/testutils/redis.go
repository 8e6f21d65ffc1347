// Package testutils holds shared test helpers
package testutils

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/hunlreev/console-quest-rpg/internal/redis"
)

// CreateTestRedisClient starts a miniredis server and returns a client for
// it. The returned server lets tests corrupt or inspect keys directly.
func CreateTestRedisClient(t *testing.T) (redis.Client, *miniredis.Miniredis, func()) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to create miniredis")

	client, err := redis.NewClient(mr.Addr(), nil)
	require.NoError(t, err, "failed to create redis client")

	cleanup := func() {
		_ = client.Close()
		mr.Close()
	}

	return client, mr, cleanup
}
