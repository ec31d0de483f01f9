package event

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/convey-dev/convey/pkg/logger"
)

// ErrNoAdapter is returned when no registered adapter claims an event.
var ErrNoAdapter = errors.New("event: no adapter for event")

// Dispatcher routes events to the first registered adapter whose CanHandle
// returns true, in registration order. Registration is safe for concurrent
// use, but in practice adapters are registered at startup and the
// dispatcher serves concurrently afterwards.
type Dispatcher struct {
	mu       sync.RWMutex
	adapters []Adapter
	logger   *slog.Logger
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithLogger sets the logger for dispatch diagnostics.
func WithLogger(logger *slog.Logger) DispatcherOption {
	return func(d *Dispatcher) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// NewDispatcher creates a dispatcher with the given adapters already
// registered, in order.
func NewDispatcher(opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.logger = d.logger.With(logger.Component("event"))
	return d
}

// Register appends adapters to the dispatch order. Earlier adapters win
// when more than one can handle an event.
func (d *Dispatcher) Register(adapters ...Adapter) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, a := range adapters {
		if a != nil {
			d.adapters = append(d.adapters, a)
		}
	}
}

// Dispatch delivers the event to the first adapter that claims it and
// returns the adapter's result. It returns ErrNoAdapter when no adapter
// claims the event.
func (d *Dispatcher) Dispatch(ctx context.Context, e Event) (any, error) {
	d.mu.RLock()
	adapters := d.adapters
	d.mu.RUnlock()

	for _, a := range adapters {
		if !a.CanHandle(e) {
			continue
		}
		res, err := a.Handle(ctx, e)
		if err != nil {
			d.logger.ErrorContext(ctx, "event handling failed",
				"event", e.Name, "event_id", e.ID, logger.Error(err))
			return nil, fmt.Errorf("event %q: %w", e.Name, err)
		}
		return res, nil
	}

	d.logger.WarnContext(ctx, "unhandled event", "event", e.Name, "event_id", e.ID)
	return nil, fmt.Errorf("%w: %q", ErrNoAdapter, e.Name)
}
