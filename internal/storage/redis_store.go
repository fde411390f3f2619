package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// Redis key
	sessionStatsKey = "pontoon:session:"
	leaderboardKey  = "pontoon:leaderboard"

	// DefaultSessionTTL 会话统计过期时间
	DefaultSessionTTL = 24 * time.Hour
)

// RedisStore keeps session statistics in Redis. Every snapshot expires after
// ttl, and the leaderboard drops sessions whose snapshot has expired.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore 创建 Redis 存储
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &RedisStore{client: client, ttl: ttl}
}

// Save 保存会话统计并更新排行榜
func (rs *RedisStore) Save(ctx context.Context, stats *SessionStats) error {
	if stats == nil {
		return nil
	}

	data, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("marshal session stats: %w", err)
	}

	pipe := rs.client.TxPipeline()
	pipe.Set(ctx, sessionStatsKey+stats.SessionID, data, rs.ttl)
	pipe.ZAdd(ctx, leaderboardKey, redis.Z{
		Score:  float64(stats.PlayerWins),
		Member: stats.SessionID,
	})
	pipe.Expire(ctx, leaderboardKey, rs.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("save session %s: %w", stats.SessionID, err)
	}
	return nil
}

// Load 获取会话统计
func (rs *RedisStore) Load(ctx context.Context, sessionID string) (*SessionStats, error) {
	data, err := rs.client.Get(ctx, sessionStatsKey+sessionID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var stats SessionStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, fmt.Errorf("unmarshal session stats: %w", err)
	}
	return &stats, nil
}

// Top 获取排行榜
func (rs *RedisStore) Top(ctx context.Context, limit int) ([]*LeaderboardEntry, error) {
	if limit <= 0 {
		return nil, nil
	}

	// Over-fetch a little so expired members do not shorten the board.
	results, err := rs.client.ZRevRangeWithScores(ctx, leaderboardKey, 0, int64(limit*2-1)).Result()
	if err != nil {
		return nil, err
	}

	all := make([]*SessionStats, 0, len(results))
	var stale []any
	for _, result := range results {
		sessionID, ok := result.Member.(string)
		if !ok {
			continue
		}
		stats, err := rs.Load(ctx, sessionID)
		if err != nil {
			return nil, err
		}
		if stats == nil {
			stale = append(stale, sessionID)
			continue
		}
		all = append(all, stats)
	}

	if len(stale) > 0 {
		rs.client.ZRem(ctx, leaderboardKey, stale...)
	}
	return rankEntries(all, limit), nil
}

// Close 关闭连接
func (rs *RedisStore) Close() error {
	return rs.client.Close()
}
