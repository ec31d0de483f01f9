// Package event routes out-of-band work (WebSocket frames, queue
// messages, timers) to pluggable adapters. A Dispatcher asks registered
// adapters in order whether they can handle an event and delivers it to
// the first that claims it.
package event
