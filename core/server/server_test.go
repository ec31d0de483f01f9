package server_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/convey-dev/convey/core/server"
)

func TestServer_Run(t *testing.T) {
	t.Parallel()

	t.Run("shuts_down_on_context_cancellation", func(t *testing.T) {
		t.Parallel()

		teardownCalled := false
		srv := server.New("127.0.0.1:0",
			server.WithShutdownTimeout(time.Second),
			server.WithTeardown(func(ctx context.Context) error {
				teardownCalled = true
				return nil
			}),
		)

		ctx, cancel := context.WithCancel(context.Background())
		run := srv.Run(ctx, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

		done := make(chan error, 1)
		go func() { done <- run() }()

		// Give the listener a moment to come up, then cancel.
		time.Sleep(50 * time.Millisecond)
		cancel()

		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("server did not shut down")
		}

		assert.True(t, teardownCalled)
	})

	t.Run("second_start_fails", func(t *testing.T) {
		t.Parallel()

		srv := server.New("127.0.0.1:0")

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		go func() {
			_ = srv.Start(ctx, http.NotFoundHandler())
		}()
		time.Sleep(50 * time.Millisecond)

		err := srv.Start(ctx, http.NotFoundHandler())
		require.ErrorIs(t, err, server.ErrAlreadyRunning)
	})
}
