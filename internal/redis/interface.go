package redis

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// Client is the subset of go-redis the player store uses. Snapshots are
// written through a transaction pipeline; reads go straight to the client.
type Client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	SMembers(ctx context.Context, key string) *redis.StringSliceCmd
	SRem(ctx context.Context, key string, members ...any) *redis.IntCmd
	TxPipeline() redis.Pipeliner
	Ping(ctx context.Context) *redis.StatusCmd
	Close() error
}

// every go-redis client flavour can back the store
var _ Client = (redis.UniversalClient)(nil)
