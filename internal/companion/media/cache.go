package media

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kritika-companion/server/internal/companion/model"
	errx "github.com/kritika-companion/server/internal/core/error"
	logx "github.com/kritika-companion/server/pkg/logger"
)

// RedisMediaCache keeps resolved media per (kind, query) with a TTL so
// repeated asks within a session skip the provider round-trips. Lookup and
// store failures are logged and treated as misses.
type RedisMediaCache struct {
	rdb redis.Cmdable
	ttl time.Duration
}

func NewRedisMediaCache(rdb redis.Cmdable, ttl time.Duration) *RedisMediaCache {
	return &RedisMediaCache{rdb: rdb, ttl: ttl}
}

func (c *RedisMediaCache) mediaKey(kind model.MediaKind, query string) string {
	return fmt.Sprintf("media:%s:%s", kind, strings.ToLower(strings.TrimSpace(query)))
}

func (c *RedisMediaCache) Get(ctx context.Context, kind model.MediaKind, query string) (*model.MediaResult, bool) {
	key := c.mediaKey(kind, query)

	b, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logx.Warn().Err(errx.WrapRedis(err)).Str("key", key).Msg("media cache lookup failed")
		}
		return nil, false
	}

	var result model.MediaResult
	if err := json.Unmarshal(b, &result); err != nil {
		logx.Warn().Err(err).Str("key", key).Msg("failed to unmarshal cached media, dropping entry")
		if delErr := c.rdb.Del(ctx, key).Err(); delErr != nil {
			logx.Warn().Err(errx.WrapRedis(delErr)).Str("key", key).Msg("failed to drop bad cache entry")
		}
		return nil, false
	}
	return &result, true
}

func (c *RedisMediaCache) Set(ctx context.Context, query string, result model.MediaResult) {
	b, err := json.Marshal(result)
	if err != nil {
		logx.Warn().Err(err).Str("query", query).Msg("failed to marshal media result")
		return
	}

	key := c.mediaKey(result.Kind, query)
	if err := c.rdb.Set(ctx, key, b, c.ttl).Err(); err != nil {
		logx.Warn().Err(errx.WrapRedis(err)).Str("key", key).Msg("failed to store media result")
	}
}

var _ model.MediaCache = (*RedisMediaCache)(nil)
