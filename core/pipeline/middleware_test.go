package pipeline_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/convey-dev/convey/core/handler"
	"github.com/convey-dev/convey/core/pipeline"
	"github.com/convey-dev/convey/core/response"
)

func TestRequestID(t *testing.T) {
	t.Parallel()

	t.Run("generates_id_when_missing", func(t *testing.T) {
		t.Parallel()

		p := pipeline.New[*pipeline.Context]()
		p.Use(pipeline.RequestID[*pipeline.Context]())

		var seen string
		p.Get("/ping", func(ctx *pipeline.Context) handler.Response {
			seen = pipeline.RequestIDFromContext(ctx)
			return response.String("pong")
		})

		rec := httptest.NewRecorder()
		p.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

		require.NotEmpty(t, seen)
		assert.Equal(t, seen, rec.Header().Get(pipeline.RequestIDHeader))
	})

	t.Run("echoes_incoming_id", func(t *testing.T) {
		t.Parallel()

		p := pipeline.New[*pipeline.Context]()
		p.Use(pipeline.RequestID[*pipeline.Context]())
		p.Get("/ping", func(ctx *pipeline.Context) handler.Response {
			return response.String("pong")
		})

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(pipeline.RequestIDHeader, "req-123")
		rec := httptest.NewRecorder()
		p.ServeHTTP(rec, req)

		assert.Equal(t, "req-123", rec.Header().Get(pipeline.RequestIDHeader))
	})
}
