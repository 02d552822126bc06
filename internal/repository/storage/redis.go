package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

type RedisStorage struct {
	Connection *redis.Client
	prefix     string
}

func NewRedisStorage(ctx context.Context, opts *redis.Options, prefix string) (*RedisStorage, error) {
	conn := redis.NewClient(opts)

	_, err := conn.Ping(ctx).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewRedisStorageFromClient(conn, prefix), nil
}

func NewRedisStorageFromClient(conn *redis.Client, prefix string) *RedisStorage {
	return &RedisStorage{Connection: conn, prefix: prefix}
}

func (that *RedisStorage) Get(ctx context.Context, key string) (string, error) {
	response, err := that.Connection.Get(ctx, that.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrKeyNotFound
	}

	if err != nil {
		return "", fmt.Errorf("failed to get %s: %w", key, err)
	}

	return response, nil
}

func (that *RedisStorage) Set(ctx context.Context, key, value string) error {
	if err := that.Connection.Set(ctx, that.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	return nil
}

func (that *RedisStorage) Remove(ctx context.Context, key string) error {
	if err := that.Connection.Del(ctx, that.prefix+key).Err(); err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}

	return nil
}

func (that *RedisStorage) Close() error {
	return that.Connection.Close()
}
