package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const contestCachePrefix = "contests:"

// ContestCache 比赛列表的 Redis 缓存。client 为 nil 时所有操作为空操作
type ContestCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewContestCache(rdb *redis.Client, ttl time.Duration, logger *zap.Logger) *ContestCache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ContestCache{rdb: rdb, ttl: ttl, logger: logger}
}

// Get 读取缓存并反序列化到 dst，未命中返回 false
func (c *ContestCache) Get(ctx context.Context, key string, dst interface{}) bool {
	if c == nil || c.rdb == nil {
		return false
	}
	raw, err := c.rdb.Get(ctx, contestCachePrefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("read contest cache failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		c.logger.Warn("decode contest cache failed", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// Set 写入缓存，失败只记录日志
func (c *ContestCache) Set(ctx context.Context, key string, value interface{}) {
	if c == nil || c.rdb == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn("encode contest cache failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.rdb.Set(ctx, contestCachePrefix+key, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("write contest cache failed", zap.String("key", key), zap.Error(err))
	}
}

// Invalidate 比赛数据变化后清空所有比赛缓存
func (c *ContestCache) Invalidate(ctx context.Context) {
	if c == nil || c.rdb == nil {
		return
	}
	keys, err := c.rdb.Keys(ctx, contestCachePrefix+"*").Result()
	if err != nil {
		c.logger.Warn("list contest cache keys failed", zap.Error(err))
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		c.logger.Warn("clear contest cache failed", zap.Error(err))
		return
	}
	c.logger.Debug("cleared contest cache keys", zap.Int("count", len(keys)))
}
