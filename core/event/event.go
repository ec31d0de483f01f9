package event

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Event is one unit of work entering the system outside the HTTP request
// path: a WebSocket frame, a queue message, a scheduled tick. Name routes
// the event to an adapter; Payload is adapter-defined.
type Event struct {
	ID       uuid.UUID
	Name     string
	Payload  any
	Metadata map[string]string
	Occurred time.Time
}

// New creates an event with a fresh identifier and the current time.
func New(name string, payload any) Event {
	return Event{
		ID:       uuid.New(),
		Name:     name,
		Payload:  payload,
		Occurred: time.Now().UTC(),
	}
}

// WithMetadata returns a copy of the event carrying the given metadata
// entry, for correlation identifiers and transport details.
func (e Event) WithMetadata(key, value string) Event {
	md := make(map[string]string, len(e.Metadata)+1)
	for k, v := range e.Metadata {
		md[k] = v
	}
	md[key] = value
	e.Metadata = md
	return e
}

// Adapter consumes events it recognizes. CanHandle must be cheap and free
// of side effects; the dispatcher calls it on every registered adapter
// until one claims the event.
type Adapter interface {
	CanHandle(e Event) bool
	Handle(ctx context.Context, e Event) (any, error)
}

// AdapterFunc adapts a handler function and a name predicate into an
// Adapter.
type AdapterFunc struct {
	Match func(e Event) bool
	Fn    func(ctx context.Context, e Event) (any, error)
}

func (a AdapterFunc) CanHandle(e Event) bool { return a.Match != nil && a.Match(e) }

func (a AdapterFunc) Handle(ctx context.Context, e Event) (any, error) { return a.Fn(ctx, e) }
