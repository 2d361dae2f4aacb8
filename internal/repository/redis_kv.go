package repository

import (
	"context"
	"errors"
	"time"

	"github.com/nadji40/dolab/pkg/redis"
)

// RedisKV persists keys in Redis without expiration. Cache invalidation
// is explicit through Remove, never TTL-driven.
type RedisKV struct {
	client  *redis.Client
	timeout time.Duration
}

// NewRedisKV wraps an established Redis client
func NewRedisKV(client *redis.Client) *RedisKV {
	return &RedisKV{
		client:  client,
		timeout: 3 * time.Second,
	}
}

// Get returns the value for key, or ErrKeyNotFound
func (r *RedisKV) Get(key string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	value, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrKeyNotFound
		}
		return "", err
	}
	return value, nil
}

// Set writes the value for key without expiration
func (r *RedisKV) Set(key, value string) error {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	return r.client.Set(ctx, key, value, 0).Err()
}

// Remove deletes key
func (r *RedisKV) Remove(key string) error {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	return r.client.Del(ctx, key).Err()
}
