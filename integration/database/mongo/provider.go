package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/convey-dev/convey/core/depend"
)

// Provider declares the MongoDB client as a singleton dependency:
// connected on first resolution, shared across requests, disconnected at
// shutdown.
func Provider(name string, cfg Config) depend.Spec {
	var client *mongo.Client
	return depend.Spec{
		Name:  name,
		Scope: depend.ScopeSingleton,
		Factory: func(ctx context.Context) (any, error) {
			c, err := New(ctx, cfg)
			if err != nil {
				return nil, err
			}
			client = c
			return c, nil
		},
		Cleanup: func(ctx context.Context) error {
			if client != nil {
				return client.Disconnect(ctx)
			}
			return nil
		},
	}
}
