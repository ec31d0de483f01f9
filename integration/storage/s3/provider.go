package s3

import (
	"context"

	"github.com/convey-dev/convey/core/depend"
)

// Provider declares the object store as a singleton dependency. The store
// holds no connection of its own, so no cleanup is needed.
func Provider(name string, cfg Config) depend.Spec {
	return depend.Spec{
		Name:  name,
		Scope: depend.ScopeSingleton,
		Factory: func(ctx context.Context) (any, error) {
			return New(ctx, cfg)
		},
	}
}
