package pg

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/convey-dev/convey/core/depend"
)

// Provider declares the connection pool as a singleton dependency: routes
// naming it share one pool, connected on first resolution and closed at
// shutdown.
//
//	p.Get("/users/:id", showUser,
//		pipeline.WithDependencies(pg.Provider("db", cfg)),
//	)
func Provider(name string, cfg Config) depend.Spec {
	var pool *pgxpool.Pool
	return depend.Spec{
		Name:  name,
		Scope: depend.ScopeSingleton,
		Factory: func(ctx context.Context) (any, error) {
			p, err := Connect(ctx, cfg)
			if err != nil {
				return nil, err
			}
			pool = p
			return p, nil
		},
		Cleanup: func(ctx context.Context) error {
			if pool != nil {
				pool.Close()
			}
			return nil
		},
	}
}
