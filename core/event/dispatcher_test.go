package event_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/convey-dev/convey/core/event"
)

func matchName(name string) func(event.Event) bool {
	return func(e event.Event) bool { return e.Name == name }
}

func TestDispatcher_Dispatch(t *testing.T) {
	t.Parallel()

	t.Run("delivers_to_matching_adapter", func(t *testing.T) {
		t.Parallel()

		var got event.Event
		d := event.NewDispatcher()
		d.Register(event.AdapterFunc{
			Match: matchName("user.created"),
			Fn: func(ctx context.Context, e event.Event) (any, error) {
				got = e
				return "ack", nil
			},
		})

		e := event.New("user.created", map[string]string{"id": "42"})
		res, err := d.Dispatch(context.Background(), e)
		require.NoError(t, err)
		assert.Equal(t, "ack", res)
		assert.Equal(t, e.ID, got.ID)
	})

	t.Run("first_matching_adapter_wins", func(t *testing.T) {
		t.Parallel()

		var handled []string
		adapter := func(name string) event.Adapter {
			return event.AdapterFunc{
				Match: func(event.Event) bool { return true },
				Fn: func(ctx context.Context, e event.Event) (any, error) {
					handled = append(handled, name)
					return name, nil
				},
			}
		}

		d := event.NewDispatcher()
		d.Register(adapter("first"), adapter("second"))

		res, err := d.Dispatch(context.Background(), event.New("x", nil))
		require.NoError(t, err)
		assert.Equal(t, "first", res)
		assert.Equal(t, []string{"first"}, handled)
	})

	t.Run("unclaimed_event_returns_err_no_adapter", func(t *testing.T) {
		t.Parallel()

		d := event.NewDispatcher()
		d.Register(event.AdapterFunc{
			Match: matchName("other"),
			Fn:    func(ctx context.Context, e event.Event) (any, error) { return nil, nil },
		})

		res, err := d.Dispatch(context.Background(), event.New("unknown", nil))
		assert.Nil(t, res)
		assert.ErrorIs(t, err, event.ErrNoAdapter)
	})

	t.Run("adapter_error_propagates", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("boom")
		d := event.NewDispatcher()
		d.Register(event.AdapterFunc{
			Match: matchName("x"),
			Fn:    func(ctx context.Context, e event.Event) (any, error) { return nil, boom },
		})

		res, err := d.Dispatch(context.Background(), event.New("x", nil))
		assert.Nil(t, res)
		assert.ErrorIs(t, err, boom)
	})
}

func TestEvent(t *testing.T) {
	t.Parallel()

	t.Run("new_assigns_identity_and_time", func(t *testing.T) {
		t.Parallel()

		e := event.New("order.placed", 7)
		assert.NotEqual(t, [16]byte{}, [16]byte(e.ID))
		assert.False(t, e.Occurred.IsZero())
		assert.Equal(t, 7, e.Payload)
	})

	t.Run("with_metadata_copies", func(t *testing.T) {
		t.Parallel()

		base := event.New("x", nil)
		tagged := base.WithMetadata("trace_id", "abc")

		assert.Empty(t, base.Metadata)
		assert.Equal(t, "abc", tagged.Metadata["trace_id"])
	})
}
