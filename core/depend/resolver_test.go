package depend_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/convey-dev/convey/core/depend"
)

func TestResolver_ResolveAll(t *testing.T) {
	t.Parallel()

	t.Run("resolves_in_declaration_order", func(t *testing.T) {
		t.Parallel()

		var order []string
		reg, err := depend.NewRegistry(
			depend.Spec{Name: "a", Factory: func(ctx context.Context) (any, error) {
				order = append(order, "a")
				return "va", nil
			}},
			depend.Spec{Name: "b", Factory: func(ctx context.Context) (any, error) {
				order = append(order, "b")
				return "vb", nil
			}},
		)
		require.NoError(t, err)

		r := depend.NewResolver()
		res, err := r.ResolveAll(context.Background(), reg)
		require.NoError(t, err)

		assert.Equal(t, []string{"a", "b"}, order)

		v, ok := res.Value("a")
		require.True(t, ok)
		assert.Equal(t, "va", v)
	})

	t.Run("factory_failure_stops_resolution_and_cleans_up", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("boom")
		var cleaned []string
		reg, err := depend.NewRegistry(
			depend.Spec{
				Name:    "a",
				Factory: func(ctx context.Context) (any, error) { return "va", nil },
				Cleanup: func(ctx context.Context) error {
					cleaned = append(cleaned, "a")
					return nil
				},
			},
			depend.Spec{
				Name:    "b",
				Factory: func(ctx context.Context) (any, error) { return nil, boom },
			},
			depend.Spec{
				Name: "c",
				Factory: func(ctx context.Context) (any, error) {
					t.Error("factory c must not run after b failed")
					return nil, nil
				},
			},
		)
		require.NoError(t, err)

		r := depend.NewResolver()
		_, err = r.ResolveAll(context.Background(), reg)
		require.Error(t, err)

		var ferr *depend.FactoryError
		require.ErrorAs(t, err, &ferr)
		assert.Equal(t, "b", ferr.Name)
		assert.ErrorIs(t, err, boom)

		// Cleanup of already-resolved values runs before the error surfaces.
		assert.Equal(t, []string{"a"}, cleaned)
	})

	t.Run("factory_survives_request_cancellation", func(t *testing.T) {
		t.Parallel()

		reg, err := depend.NewRegistry(
			depend.Spec{Name: "a", Factory: func(ctx context.Context) (any, error) {
				if err := ctx.Err(); err != nil {
					return nil, err
				}
				return "ok", nil
			}},
		)
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		r := depend.NewResolver()
		res, err := r.ResolveAll(ctx, reg)
		require.NoError(t, err)

		v, _ := res.Value("a")
		assert.Equal(t, "ok", v)
	})
}

func TestResolution_Resolve(t *testing.T) {
	t.Parallel()

	t.Run("request_scope_memoizes_within_a_request", func(t *testing.T) {
		t.Parallel()

		calls := 0
		spec := depend.Spec{
			Name: "conn",
			Factory: func(ctx context.Context) (any, error) {
				calls++
				return calls, nil
			},
		}

		r := depend.NewResolver()
		res := r.NewResolution()

		first, err := res.Resolve(context.Background(), spec)
		require.NoError(t, err)
		second, err := res.Resolve(context.Background(), spec)
		require.NoError(t, err)

		assert.Equal(t, 1, calls)
		assert.Equal(t, first, second)

		// A later request constructs its own value.
		other, err := r.NewResolution().Resolve(context.Background(), spec)
		require.NoError(t, err)
		assert.Equal(t, 2, calls)
		assert.NotEqual(t, first, other)
	})
}

func TestResolution_Cleanup(t *testing.T) {
	t.Parallel()

	newRegistry := func(t *testing.T, cleaned *[]string) *depend.Registry {
		t.Helper()
		track := func(name string) depend.Spec {
			return depend.Spec{
				Name:    name,
				Factory: func(ctx context.Context) (any, error) { return name, nil },
				Cleanup: func(ctx context.Context) error {
					*cleaned = append(*cleaned, name)
					return nil
				},
			}
		}
		reg, err := depend.NewRegistry(track("a"), track("b"), track("c"))
		require.NoError(t, err)
		return reg
	}

	t.Run("runs_in_reverse_resolution_order", func(t *testing.T) {
		t.Parallel()

		var cleaned []string
		r := depend.NewResolver()
		res, err := r.ResolveAll(context.Background(), newRegistry(t, &cleaned))
		require.NoError(t, err)

		require.NoError(t, res.Cleanup(context.Background()))
		assert.Equal(t, []string{"c", "b", "a"}, cleaned)
	})

	t.Run("runs_exactly_once", func(t *testing.T) {
		t.Parallel()

		var cleaned []string
		r := depend.NewResolver()
		res, err := r.ResolveAll(context.Background(), newRegistry(t, &cleaned))
		require.NoError(t, err)

		require.NoError(t, res.Cleanup(context.Background()))
		require.NoError(t, res.Cleanup(context.Background()))
		assert.Len(t, cleaned, 3)
	})

	t.Run("failure_does_not_stop_remaining_cleanups", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("boom")
		var cleaned []string
		reg, err := depend.NewRegistry(
			depend.Spec{
				Name:    "a",
				Factory: func(ctx context.Context) (any, error) { return "a", nil },
				Cleanup: func(ctx context.Context) error {
					cleaned = append(cleaned, "a")
					return nil
				},
			},
			depend.Spec{
				Name:    "b",
				Factory: func(ctx context.Context) (any, error) { return "b", nil },
				Cleanup: func(ctx context.Context) error { return boom },
			},
		)
		require.NoError(t, err)

		r := depend.NewResolver()
		res, err := r.ResolveAll(context.Background(), reg)
		require.NoError(t, err)

		err = res.Cleanup(context.Background())
		require.Error(t, err)

		var cerr *depend.CleanupError
		require.ErrorAs(t, err, &cerr)
		assert.Equal(t, "b", cerr.Name)

		// The earlier dependency's cleanup still ran.
		assert.Equal(t, []string{"a"}, cleaned)
	})
}
