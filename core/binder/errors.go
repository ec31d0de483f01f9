package binder

import "errors"

var (
	// ErrUnsupportedMediaType indicates the Content-Type header names a media
	// type the binder does not support.
	ErrUnsupportedMediaType = errors.New("unsupported media type")

	// ErrFailedToParseJSON indicates the request body is not valid JSON for
	// the target struct.
	ErrFailedToParseJSON = errors.New("failed to parse JSON request body")

	// ErrFailedToParseQuery indicates query parameter conversion failed.
	ErrFailedToParseQuery = errors.New("failed to parse query parameters")

	// ErrFailedToParsePath indicates path parameter conversion failed.
	ErrFailedToParsePath = errors.New("failed to parse path parameters")
)
