package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/techstore/storefront-backend/pkg/config"
)

const (
	namespace     = "ts"
	sessionPrefix = "session"
)

// Nil is re-exported so callers can detect missing keys without
// importing the driver directly.
var Nil = goredis.Nil

type cmdable interface {
	Set(ctx context.Context, key string, value any, expiration time.Duration) *goredis.StatusCmd
	Get(ctx context.Context, key string) *goredis.StringCmd
	Del(ctx context.Context, keys ...string) *goredis.IntCmd
	Exists(ctx context.Context, keys ...string) *goredis.IntCmd
	Ping(ctx context.Context) *goredis.StatusCmd
}

// Client namespaces all keys under the service prefix.
type Client struct {
	rdb    cmdable
	closer func() error
}

func New(cfg config.RedisConfig) (*Client, error) {
	opts, err := goredis.ParseURL(cfg.URL)
	if err != nil {
		if cfg.Address == "" {
			return nil, fmt.Errorf("parsing redis url: %w", err)
		}
		opts = &goredis.Options{
			Addr:     cfg.Address,
			Password: cfg.Password,
			DB:       cfg.DB,
		}
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns
	opts.DialTimeout = cfg.DialTimeout
	opts.ReadTimeout = cfg.ReadTimeout
	opts.WriteTimeout = cfg.WriteTimeout

	rdb := goredis.NewClient(opts)
	return &Client{rdb: rdb, closer: rdb.Close}, nil
}

// NewWithCmdable wraps an existing command interface. Used by tests.
func NewWithCmdable(rdb cmdable) *Client {
	return &Client{rdb: rdb, closer: func() error { return nil }}
}

// SessionKey builds the namespaced key for a session record.
func SessionKey(sid string) string {
	return fmt.Sprintf("%s:%s:%s", namespace, sessionPrefix, sid)
}

func (c *Client) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	return c.rdb.Set(ctx, key, value, ttl).Err()
}

func (c *Client) Get(ctx context.Context, key string) (string, error) {
	return c.rdb.Get(ctx, key).Result()
}

func (c *Client) Del(ctx context.Context, keys ...string) error {
	return c.rdb.Del(ctx, keys...).Err()
}

func (c *Client) Exists(ctx context.Context, key string) (bool, error) {
	n, err := c.rdb.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (c *Client) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

func (c *Client) Close() error {
	return c.closer()
}
