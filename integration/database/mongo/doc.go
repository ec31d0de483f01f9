// Package mongo provides MongoDB client initialization with retry logic
// and health checking, wrapping the official driver with settings tuned
// for managed deployments, plus a dependency provider for the request
// pipeline.
//
//	var cfg mongo.Config
//	config.MustLoad(&cfg)
//
//	client, err := mongo.New(ctx, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Disconnect(ctx)
//
// Routes declare the client instead of constructing it:
//
//	p.Get("/documents/:id", showDocument,
//		pipeline.WithDependencies(mongo.Provider("mongo", cfg)),
//	)
package mongo
