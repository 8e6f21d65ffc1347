package player

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/hunlreev/console-quest-rpg/internal/errors"
	"github.com/hunlreev/console-quest-rpg/internal/pkg/clock"
	redisclient "github.com/hunlreev/console-quest-rpg/internal/redis"
)

const (
	playerKeyPrefix = "player:"
	playerIndexKey  = "player:index"
)

// RedisConfig holds the configuration for the Redis repository
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// RedisRepository stores snapshots under player:<id> with a set of known IDs
type RedisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedis creates a Redis-backed repository
func NewRedis(cfg RedisConfig) (*RedisRepository, error) {
	if cfg.Client == nil {
		return nil, errors.InvalidArgument("redis client is required")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &RedisRepository{client: cfg.Client, clock: c}, nil
}

// Save writes the snapshot and index entry in one transaction
func (r *RedisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateSave(input); err != nil {
		return nil, err
	}

	p := input.Player
	p.SavedAt = r.clock.Now()

	data, err := encode(p)
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, playerKeyPrefix+p.ID, data, 0)
	pipe.SAdd(ctx, playerIndexKey, p.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to save player %s", p.ID)
	}

	slog.DebugContext(ctx, "player saved", "player_id", p.ID, "backend", "redis")

	return &SaveOutput{SavedAt: p.SavedAt}, nil
}

func (r *RedisRepository) Load(ctx context.Context, input LoadInput) (*LoadOutput, error) {
	if err := validateID(input.ID); err != nil {
		return nil, err
	}

	result, err := r.client.Get(ctx, playerKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("player %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get player %s", input.ID)
	}

	p, err := decode(input.ID, []byte(result))
	if err != nil {
		return nil, err
	}

	return &LoadOutput{Player: p}, nil
}

// List walks the index; IDs whose key has vanished are removed from it
func (r *RedisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	ids, err := r.client.SMembers(ctx, playerIndexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get player index")
	}

	out := &ListOutput{Summaries: []Summary{}}
	for _, id := range ids {
		result, err := r.client.Get(ctx, playerKeyPrefix+id).Result()
		if err == redis.Nil {
			r.client.SRem(ctx, playerIndexKey, id)
			continue
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to get player %s", id)
		}

		p, err := decode(id, []byte(result))
		if err != nil {
			slog.WarnContext(ctx, "skipping unreadable save", "player_id", id, "error", err)
			out.Corrupt = append(out.Corrupt, id)
			continue
		}
		out.Summaries = append(out.Summaries, summarize(p))
	}

	sortSummaries(out)
	return out, nil
}

func (r *RedisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if err := validateID(input.ID); err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	del := pipe.Del(ctx, playerKeyPrefix+input.ID)
	pipe.SRem(ctx, playerIndexKey, input.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete player %s", input.ID)
	}
	if del.Val() == 0 {
		return nil, errors.NotFoundf("player %s not found", input.ID)
	}

	slog.InfoContext(ctx, "player deleted", "player_id", input.ID, "backend", "redis")

	return &DeleteOutput{}, nil
}

// Close closes the underlying client
func (r *RedisRepository) Close() error {
	return r.client.Close()
}

var _ Repository = (*RedisRepository)(nil)
