// Package cache 统计快照的Redis缓存层
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/learn-track/server/internal/domain"
	"github.com/learn-track/server/pkg/redis"
)

// ErrCacheMiss 缓存未命中
var ErrCacheMiss = errors.New("cache miss")

// StatsCache 统计快照缓存接口
type StatsCache interface {
	GetSnapshot(ctx context.Context, userID string) (*domain.StatsSnapshot, error)
	SetSnapshot(ctx context.Context, userID string, snapshot *domain.StatsSnapshot) error
	Invalidate(ctx context.Context, userID string) error
}

// RedisStatsCache 基于Redis的统计快照缓存
type RedisStatsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStatsCache 创建统计快照缓存
func NewRedisStatsCache(client *redis.Client, ttl time.Duration) *RedisStatsCache {
	return &RedisStatsCache{client: client, ttl: ttl}
}

func snapshotKey(userID string) string {
	return fmt.Sprintf("stats:snapshot:%s", userID)
}

// GetSnapshot 读取缓存的统计快照
func (c *RedisStatsCache) GetSnapshot(ctx context.Context, userID string) (*domain.StatsSnapshot, error) {
	raw, err := c.client.Get(ctx, snapshotKey(userID))
	if err != nil {
		if errors.Is(err, redis.ErrKeyNotFound) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}

	var snapshot domain.StatsSnapshot
	if err := json.Unmarshal([]byte(raw), &snapshot); err != nil {
		// 缓存数据损坏按未命中处理
		return nil, ErrCacheMiss
	}
	return &snapshot, nil
}

// SetSnapshot 缓存统计快照
func (c *RedisStatsCache) SetSnapshot(ctx context.Context, userID string, snapshot *domain.StatsSnapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, snapshotKey(userID), data, c.ttl)
}

// Invalidate 删除用户的统计快照缓存，每次写入后调用
func (c *RedisStatsCache) Invalidate(ctx context.Context, userID string) error {
	return c.client.Delete(ctx, snapshotKey(userID))
}
