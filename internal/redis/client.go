// Package redis wraps the go-redis client so stores can depend on an
// interface and tests can swap in miniredis.
package redis

import (
	"crypto/tls"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Options configures the client connection pool
type Options struct {
	PoolSize        int
	MinIdleConns    int
	ConnMaxIdleTime time.Duration
	MaxRetries      int
	DB              int
	Password        string
	UseTLS          bool
}

// NewClient creates a client for a single instance at host:port
func NewClient(endpoint string, opts *Options) (Client, error) {
	if strings.TrimSpace(endpoint) == "" {
		return nil, errors.New("redis: endpoint is required")
	}

	if opts == nil {
		opts = &Options{}
	}

	redisOpts := &redis.Options{
		Addr:            endpoint,
		DB:              opts.DB,
		Password:        opts.Password,
		MinIdleConns:    opts.MinIdleConns,
		PoolSize:        opts.PoolSize,
		ConnMaxIdleTime: opts.ConnMaxIdleTime,
		MaxRetries:      opts.MaxRetries,
	}

	if opts.UseTLS {
		redisOpts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	return redis.NewClient(redisOpts), nil
}

// NewClientFromURL accepts redis:// and rediss:// URLs as well as a bare
// host:port
func NewClientFromURL(raw string) (Client, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, errors.New("redis: url is required")
	}
	if !strings.Contains(raw, "://") {
		return NewClient(raw, nil)
	}

	redisOpts, err := redis.ParseURL(raw)
	if err != nil {
		return nil, errors.Join(errors.New("redis: invalid url"), err)
	}

	return redis.NewClient(redisOpts), nil
}
