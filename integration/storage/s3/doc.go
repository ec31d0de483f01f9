// Package s3 provides object storage on Amazon S3 and S3-compatible
// services (MinIO, Wasabi) with stable error sentinels, public URL
// generation, and a dependency provider for the request pipeline.
//
//	var cfg s3.Config
//	config.MustLoad(&cfg)
//
//	store, err := s3.New(ctx, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	err = store.Put(ctx, "avatars/u123.png", file, "image/png")
//
// Errors from the SDK are classified into package sentinels
// (ErrObjectNotFound, ErrAccessDenied, ErrServiceUnavailable) so callers
// branch with errors.Is.
package s3
