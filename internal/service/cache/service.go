package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/kapu/botkit-go/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// KeyPrefix namespaces every key this bot writes.
const KeyPrefix = "botkit:"

// Key joins parts under KeyPrefix: Key("member", "g1", "u1") == "botkit:member:g1:u1".
func Key(parts ...string) string {
	key := KeyPrefix[:len(KeyPrefix)-1]
	for _, part := range parts {
		key += ":" + part
	}
	return key
}

type Service struct {
	client *redis.Client
	logger *zap.Logger
}

type Config struct {
	Host     string
	Port     int
	Password string
	DB       int
}

func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func NewService(cfg Config, logger *zap.Logger) (*Service, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.NewCacheError("failed to connect to Redis", "ping", "", err)
	}

	logger.Info("Redis connected",
		zap.String("addr", cfg.Addr()),
		zap.Int("db", cfg.DB),
	)

	return NewServiceWithClient(client, logger), nil
}

// NewServiceWithClient wraps an existing client without pinging it.
func NewServiceWithClient(client *redis.Client, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{client: client, logger: logger}
}

// Get decodes the JSON value at key into dest. A missing key reports found == false.
func (c *Service) Get(ctx context.Context, key string, dest any) (bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		c.logger.Error("Cache get failed", zap.String("key", key), zap.Error(err))
		return false, errors.NewCacheError("get failed", "get", key, err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		c.logger.Warn("Cache unmarshal failed", zap.String("key", key), zap.Error(err))
		return false, errors.NewCacheError("unmarshal failed", "get", key, err)
	}
	return true, nil
}

func (c *Service) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errors.NewCacheError("marshal failed", "set", key, err)
	}

	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		c.logger.Error("Cache set failed", zap.String("key", key), zap.Error(err))
		return errors.NewCacheError("set failed", "set", key, err)
	}
	return nil
}

func (c *Service) Del(ctx context.Context, keys ...string) (int64, error) {
	if len(keys) == 0 {
		return 0, nil
	}

	deleted, err := c.client.Del(ctx, keys...).Result()
	if err != nil {
		c.logger.Error("Cache delete failed", zap.Strings("keys", keys), zap.Error(err))
		return 0, errors.NewCacheError("delete failed", "del", keys[0], err)
	}
	return deleted, nil
}

// DelPattern removes every key matching pattern using SCAN.
func (c *Service) DelPattern(ctx context.Context, pattern string) (int64, error) {
	var removed int64
	iter := c.client.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		n, err := c.client.Del(ctx, iter.Val()).Result()
		if err != nil {
			return removed, errors.NewCacheError("delete failed", "del", iter.Val(), err)
		}
		removed += n
	}
	if err := iter.Err(); err != nil {
		return removed, errors.NewCacheError("scan failed", "scan", pattern, err)
	}
	return removed, nil
}

// HSetJSON stores value as JSON under field of the hash at key.
func (c *Service) HSetJSON(ctx context.Context, key, field string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errors.NewCacheError("marshal failed", "hset", key, err)
	}
	if err := c.client.HSet(ctx, key, field, data).Err(); err != nil {
		c.logger.Error("Cache hset failed", zap.String("key", key), zap.String("field", field), zap.Error(err))
		return errors.NewCacheError("hset failed", "hset", key, err)
	}
	return nil
}

// HGetJSON decodes field of the hash at key into dest.
func (c *Service) HGetJSON(ctx context.Context, key, field string, dest any) (bool, error) {
	data, err := c.client.HGet(ctx, key, field).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		c.logger.Error("Cache hget failed", zap.String("key", key), zap.String("field", field), zap.Error(err))
		return false, errors.NewCacheError("hget failed", "hget", key, err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, errors.NewCacheError("unmarshal failed", "hget", key, err)
	}
	return true, nil
}

func (c *Service) HGetAll(ctx context.Context, key string) (map[string]string, error) {
	values, err := c.client.HGetAll(ctx, key).Result()
	if err != nil {
		c.logger.Error("Cache hgetall failed", zap.String("key", key), zap.Error(err))
		return map[string]string{}, errors.NewCacheError("hgetall failed", "hgetall", key, err)
	}
	return values, nil
}

func (c *Service) Expire(ctx context.Context, key string, ttl time.Duration) error {
	if err := c.client.Expire(ctx, key, ttl).Err(); err != nil {
		c.logger.Error("Cache expire failed", zap.String("key", key), zap.Error(err))
		return errors.NewCacheError("expire failed", "expire", key, err)
	}
	return nil
}

func (c *Service) IsConnected(ctx context.Context) bool {
	return c.client.Ping(ctx).Err() == nil
}

func (c *Service) WaitUntilReady(ctx context.Context, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("timeout waiting for Redis to be ready")
		case <-ticker.C:
			if c.IsConnected(ctx) {
				return nil
			}
		}
	}
}

func (c *Service) Close() error {
	if err := c.client.Close(); err != nil {
		c.logger.Error("Failed to close Redis connection", zap.Error(err))
		return err
	}
	c.logger.Info("Redis disconnected")
	return nil
}
