package storage

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jwebster45206/battle-engine/pkg/faction"
	"github.com/jwebster45206/battle-engine/pkg/generator"
	"github.com/redis/go-redis/v9"
)

// RecordKey identifies a record by everything that determines its content.
// Sides are the resolved factions, so an override that changes a faction's
// ratings or lists also changes the key.
type RecordKey struct {
	A      faction.Faction  `json:"a"`
	B      faction.Faction  `json:"b"`
	Seed   int64            `json:"seed"`
	Index  int              `json:"index"`
	Config generator.Config `json:"config"`
}

// String is the cache key: a digest of the canonical JSON form.
func (k RecordKey) String() string {
	data, _ := json.Marshal(k)
	sum := sha256.Sum256(data)
	return "battle:" + hex.EncodeToString(sum[:12])
}

// RecordCache stores built records. Records are derived data; a miss means
// rebuild.
type RecordCache interface {
	Ping(ctx context.Context) error
	GetRecord(ctx context.Context, key RecordKey) (*generator.BattleRecord, error)
	PutRecord(ctx context.Context, key RecordKey, rec generator.BattleRecord) error
	Close() error
}

// RedisCache implements RecordCache using Redis
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

var _ RecordCache = (*RedisCache)(nil)

// NewRedisCache connects to redisURL, which may be a redis:// URL or a bare
// host:port.
func NewRedisCache(redisURL string, ttl time.Duration, logger *slog.Logger) (*RedisCache, error) {
	opt, err := redisOptions(redisURL)
	if err != nil {
		return nil, err
	}
	return &RedisCache{client: redis.NewClient(opt), ttl: ttl, logger: logger}, nil
}

func redisOptions(redisURL string) (*redis.Options, error) {
	if redisURL == "" {
		return nil, errors.New("redis url is required")
	}
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return &redis.Options{Addr: redisURL}, nil
	}
	return opt, nil
}

func (c *RedisCache) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

// GetRecord returns nil, nil on a miss.
func (c *RedisCache) GetRecord(ctx context.Context, key RecordKey) (*generator.BattleRecord, error) {
	k := key.String()
	data, err := c.client.Get(ctx, k).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			c.logger.Debug("Record cache miss", "key", k)
			return nil, nil
		}
		return nil, fmt.Errorf("redis get failed: %w", err)
	}
	var rec generator.BattleRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached record: %w", err)
	}
	return &rec, nil
}

func (c *RedisCache) PutRecord(ctx context.Context, key RecordKey, rec generator.BattleRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}
	if err := c.client.Set(ctx, key.String(), data, c.ttl).Err(); err != nil {
		c.logger.Error("Redis SET failed", "key", key.String(), "error", err)
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

// WaitForConnection pings until Redis answers, ctx ends, or the retries run out.
func (c *RedisCache) WaitForConnection(ctx context.Context, retries int, delay time.Duration) error {
	for i := 0; i < retries; i++ {
		if err := c.Ping(ctx); err != nil {
			c.logger.Debug("Redis not ready yet", "error", err, "attempt", i+1)

			select {
			case <-ctx.Done():
				return fmt.Errorf("context cancelled while waiting for redis: %w", ctx.Err())
			case <-time.After(delay):
				continue
			}
		}

		c.logger.Info("Redis connection established")
		return nil
	}
	return fmt.Errorf("redis did not become available after %d attempts", retries)
}

func (c *RedisCache) Close() error {
	if err := c.client.Close(); err != nil {
		c.logger.Error("Failed to close Redis connection", "error", err)
		return err
	}
	return nil
}
