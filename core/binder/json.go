package binder

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
)

// JSON creates a binder that decodes an application/json request body into
// the target struct. Requests without a body are a no-op, so the same binder
// chain serves GET and POST routes. A non-JSON Content-Type on a request
// that does carry a body is rejected with ErrUnsupportedMediaType.
func JSON() Binder {
	return func(r *http.Request, v any) error {
		if r.Body == nil || r.ContentLength == 0 {
			return nil
		}

		ct := r.Header.Get("Content-Type")
		if ct != "" {
			mediaType, _, err := mime.ParseMediaType(ct)
			if err != nil || !isJSONMediaType(mediaType) {
				return fmt.Errorf("%w: %s", ErrUnsupportedMediaType, ct)
			}
		}

		dec := json.NewDecoder(r.Body)
		if err := dec.Decode(v); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("%w: %v", ErrFailedToParseJSON, err)
		}
		return nil
	}
}

func isJSONMediaType(mediaType string) bool {
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}
