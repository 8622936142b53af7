package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/NickyGee44/TheGambler-sub000/logging"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCache(addr string, ttl time.Duration) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	if _, err := client.Ping(context.Background()).Result(); err != nil {
		return nil, err
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisCache{Client: client, TTL: ttl}, nil
}

func (c *RedisCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := c.Client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		logging.Log.Errorf("CACHE: get %s failed: %v", key, err)
		return false, err
	}
	if err := json.Unmarshal(data, dest); err != nil {
		logging.Log.Errorf("CACHE: failed to unmarshal %s: %v", key, err)
		return false, err
	}
	return true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		logging.Log.Errorf("CACHE: failed to marshal %s: %v", key, err)
		return err
	}
	if err := c.Client.Set(ctx, key, data, c.TTL).Err(); err != nil {
		logging.Log.Errorf("CACHE: set %s failed: %v", key, err)
		return err
	}
	return nil
}

func (c *RedisCache) Invalidate(ctx context.Context, key string) error {
	if err := c.Client.Del(ctx, key).Err(); err != nil {
		logging.Log.Errorf("CACHE: invalidate %s failed: %v", key, err)
		return err
	}
	return nil
}
