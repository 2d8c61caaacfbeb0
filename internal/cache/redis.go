package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisClient caches user display names for activity responses.
type RedisClient struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisClient(ctx context.Context, redisURL string, ttl time.Duration) (*RedisClient, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)

	// Test connection
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisClient{
		client: client,
		ttl:    ttl,
	}, nil
}

func (r *RedisClient) Close() error {
	return r.client.Close()
}

func userNameKey(userID string) string {
	return fmt.Sprintf("octofit:user_name:%s", userID)
}

// GetUserName reports a cached name; found is false on a cache miss.
func (r *RedisClient) GetUserName(ctx context.Context, userID string) (string, bool, error) {
	name, err := r.client.Get(ctx, userNameKey(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get user name from Redis: %w", err)
	}
	return name, true, nil
}

func (r *RedisClient) SetUserName(ctx context.Context, userID, name string) error {
	if err := r.client.Set(ctx, userNameKey(userID), name, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store user name in Redis: %w", err)
	}
	return nil
}

func (r *RedisClient) DeleteUserName(ctx context.Context, userID string) error {
	return r.client.Del(ctx, userNameKey(userID)).Err()
}

func (r *RedisClient) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
