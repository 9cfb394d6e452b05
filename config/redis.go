package config

import (
	"context"

	"github.com/go-redis/redis/v8"
)

// InitRedis creates a Redis client and verifies the connection.
func InitRedis(ctx context.Context, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, err
	}
	return client, nil
}
