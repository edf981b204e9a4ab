package cache

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisGuard is the Redis-backed submit guard. Acquire is a SETNX with a TTL,
// so overlapping submissions are excluded across frontend replicas and a
// submission that never reports back cannot keep the submit action disabled
// past the TTL.
type RedisGuard struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisGuard(host string, port int, ttl time.Duration) (*RedisGuard, error) {
	client := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%d", host, port),
	})

	// Test connection
	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	log.Println("✅ Connected to Redis")

	return &RedisGuard{
		client: client,
		ttl:    ttl,
	}, nil
}

// Acquire claims the key for one in-flight submission. False means another
// submission already holds it.
func (g *RedisGuard) Acquire(ctx context.Context, key string) (bool, error) {
	ok, err := g.client.SetNX(ctx, key, "1", g.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire guard key: %w", err)
	}
	return ok, nil
}

// Release frees the key once the submission has a definite outcome.
func (g *RedisGuard) Release(ctx context.Context, key string) error {
	if err := g.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to release guard key: %w", err)
	}
	return nil
}

// Close closes the Redis connection
func (g *RedisGuard) Close() error {
	return g.client.Close()
}
