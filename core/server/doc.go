// Package server provides a graceful HTTP server wrapper around
// http.Server: context-driven start and stop, sane timeout defaults,
// environment-based configuration, optional TLS, and a teardown hook that
// runs after in-flight requests drain.
//
//	p := pipeline.New[*pipeline.Context]()
//	srv := server.New(":8080",
//		server.WithLogger(logger),
//		server.WithTeardown(p.Close),
//	)
//	if err := srv.Start(ctx, p); err != nil {
//		log.Fatal(err)
//	}
//
// Run returns an errgroup-compatible closure for coordinating the server
// with other long-running components.
package server
