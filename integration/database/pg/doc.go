// Package pg provides PostgreSQL connection management built on pgx:
// pooled connections with retry logic, goose-based schema migrations,
// health checking, error classification helpers, transaction context
// propagation, and a dependency provider for the request pipeline.
//
//	var cfg pg.Config
//	config.MustLoad(&cfg)
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, cfg, logger); err != nil {
//		log.Fatal(err)
//	}
//
// Routes that need the pool declare it instead of constructing it:
//
//	p.Get("/users/:id", showUser,
//		pipeline.WithDependencies(pg.Provider("db", cfg)),
//	)
//
// Error classification (IsNotFoundError, IsDuplicateKeyError,
// IsForeignKeyViolationError, IsTxClosedError) maps driver errors to
// application decisions without leaking pgconn types upward.
package pg
