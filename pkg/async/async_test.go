package async_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/convey-dev/convey/pkg/async"
)

func TestAsync(t *testing.T) {
	t.Parallel()

	t.Run("returns_result", func(t *testing.T) {
		t.Parallel()

		f := async.Async(context.Background(), 21, func(ctx context.Context, n int) (int, error) {
			return n * 2, nil
		})

		v, err := f.Await()
		require.NoError(t, err)
		assert.Equal(t, 42, v)
	})

	t.Run("propagates_error", func(t *testing.T) {
		t.Parallel()

		wantErr := errors.New("boom")
		f := async.Async(context.Background(), "x", func(ctx context.Context, s string) (string, error) {
			return "", wantErr
		})

		_, err := f.Await()
		assert.ErrorIs(t, err, wantErr)
	})

	t.Run("canceled_context_skips_execution", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		ran := false
		f := async.Async(ctx, 0, func(ctx context.Context, _ int) (int, error) {
			ran = true
			return 1, nil
		})

		_, err := f.Await()
		assert.ErrorIs(t, err, context.Canceled)
		assert.False(t, ran)
	})

	t.Run("concurrent_awaits_see_same_result", func(t *testing.T) {
		t.Parallel()

		f := async.Async(context.Background(), 0, func(ctx context.Context, _ int) (int, error) {
			time.Sleep(10 * time.Millisecond)
			return 7, nil
		})

		var wg sync.WaitGroup
		for range 5 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				v, err := f.Await()
				assert.NoError(t, err)
				assert.Equal(t, 7, v)
			}()
		}
		wg.Wait()
	})
}

func TestResolved(t *testing.T) {
	t.Parallel()

	f := async.Resolved("done", nil)
	assert.True(t, f.IsComplete())

	v, err := f.Await()
	require.NoError(t, err)
	assert.Equal(t, "done", v)
}

func TestAwaitWithTimeout(t *testing.T) {
	t.Parallel()

	t.Run("times_out", func(t *testing.T) {
		t.Parallel()

		f := async.Async(context.Background(), 0, func(ctx context.Context, _ int) (int, error) {
			time.Sleep(time.Second)
			return 1, nil
		})

		_, err := f.AwaitWithTimeout(10 * time.Millisecond)
		assert.ErrorIs(t, err, async.ErrTimeout)
	})

	t.Run("completes_within_timeout", func(t *testing.T) {
		t.Parallel()

		f := async.Resolved(3, nil)
		v, err := f.AwaitWithTimeout(time.Second)
		require.NoError(t, err)
		assert.Equal(t, 3, v)
	})
}
