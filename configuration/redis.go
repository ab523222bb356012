package configuration

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// InitRedis connects to the redis server used for session storage,
// retrying a few times before giving up.
func InitRedis(addr string) (*redis.Client, error) {
	var client *redis.Client
	var err error
	MaxRetries := 5
	RetryDelay := time.Second * 5

	for i := 0; i < MaxRetries; i++ {
		client = redis.NewClient(&redis.Options{
			Network: "tcp",
			Addr:    addr,
			DB:      0, // use default DB
		})

		_, err = client.Ping(context.Background()).Result()
		if err == nil {
			return client, nil
		}

		fmt.Printf("Failed to connect to Redis (Attempt %d/%d): %s\n", i+1, MaxRetries, err.Error())
		time.Sleep(RetryDelay)
	}
	return nil, fmt.Errorf("failed to connect to Redis after multiple attempts: %w", err)
}
