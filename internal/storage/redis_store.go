package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "lrpg:state:"

// RedisStore is a BlobStore backed by Redis string keys.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// OpenRedis connects to addr and checks the connection.
func OpenRedis(ctx context.Context, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

func stateKey(key string) string    { return redisKeyPrefix + key }
func previousKey(key string) string { return redisKeyPrefix + key + ":prev" }

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := s.client.Get(ctx, stateKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("redis state get: %w", err)
	}
	return val, true, nil
}

func (s *RedisStore) Put(ctx context.Context, key string, blob []byte) error {
	prev, err := s.client.Get(ctx, stateKey(key)).Bytes()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("redis state put: %w", err)
	}
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		if prev != nil {
			pipe.Set(ctx, previousKey(key), prev, 0)
		}
		pipe.Set(ctx, stateKey(key), blob, 0)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis state put: %w", err)
	}
	return nil
}

func (s *RedisStore) Restore(ctx context.Context, key string) (bool, error) {
	prev, err := s.client.Get(ctx, previousKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("redis state restore: %w", err)
	}
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, stateKey(key), prev, 0)
		pipe.Del(ctx, previousKey(key))
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("redis state restore: %w", err)
	}
	return true, nil
}
