package redis

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/convey-dev/convey/core/depend"
)

// Provider declares the Redis client as a singleton dependency: connected
// on first resolution, shared across requests, closed at shutdown.
func Provider(name string, cfg Config) depend.Spec {
	var client *redis.Client
	return depend.Spec{
		Name:  name,
		Scope: depend.ScopeSingleton,
		Factory: func(ctx context.Context) (any, error) {
			c, err := Connect(ctx, cfg)
			if err != nil {
				return nil, err
			}
			client = c
			return c, nil
		},
		Cleanup: func(ctx context.Context) error {
			if client != nil {
				return client.Close()
			}
			return nil
		},
	}
}
