// Package redis provides Redis client initialization with connection
// validation, retry logic, and health checking, plus a dependency provider
// for the request pipeline.
//
//	var cfg redis.Config
//	config.MustLoad(&cfg)
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//
// Routes declare the client instead of constructing it:
//
//	p.Get("/cache/:key", showCached,
//		pipeline.WithDependencies(redis.Provider("cache", cfg)),
//	)
package redis
