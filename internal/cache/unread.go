package cache

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// TTLUnread keeps the counter short-lived; sends and reads invalidate it
// anyway, the TTL only bounds staleness if an invalidation is lost.
const TTLUnread = 1 * time.Minute

const prefixUnread = "unread:"

// UnreadCounter caches per-user unread message counts
type UnreadCounter interface {
	Get(ctx context.Context, username string) (int64, bool)
	Set(ctx context.Context, username string, count int64)
	Invalidate(ctx context.Context, username string)
	IsAvailable() bool
}

type redisUnreadCounter struct {
	client *redis.Client
}

// NewUnreadCounter creates a Redis-backed unread counter cache.
// A nil client yields a cache that reports every key as missing.
func NewUnreadCounter(client *redis.Client) UnreadCounter {
	return &redisUnreadCounter{client: client}
}

// IsAvailable reports whether a Redis connection is configured
func (c *redisUnreadCounter) IsAvailable() bool {
	return c.client != nil
}

// Get returns the cached count for a user, if present
func (c *redisUnreadCounter) Get(ctx context.Context, username string) (int64, bool) {
	if c.client == nil {
		return 0, false
	}
	val, err := c.client.Get(ctx, prefixUnread+username).Result()
	if err != nil {
		return 0, false
	}
	count, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false
	}
	return count, true
}

// Set stores the count for a user
func (c *redisUnreadCounter) Set(ctx context.Context, username string, count int64) {
	if c.client == nil {
		return
	}
	c.client.Set(ctx, prefixUnread+username, strconv.FormatInt(count, 10), TTLUnread)
}

// Invalidate drops the cached count for a user
func (c *redisUnreadCounter) Invalidate(ctx context.Context, username string) {
	if c.client == nil {
		return
	}
	c.client.Del(ctx, prefixUnread+username)
}
