package hooks

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/phkaiser13/peitch/internal/log"
)

// Event names the lifecycle point a handler runs at.
type Event string

// Built-in lifecycle events. The registry accepts other names too.
const (
	PreCommit  Event = "pre-commit"
	PostCommit Event = "post-commit"
	PrePush    Event = "pre-push"
)

// Handler is one hook handler body.
type Handler func(ctx context.Context) error

type registration struct {
	name string
	fn   Handler
}

// Registry maps events to ordered handler lists. Registration order is
// execution order. Not safe for concurrent mutation; build it once at
// startup.
type Registry struct {
	handlers map[Event][]registration
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[Event][]registration)}
}

// Register appends a named handler to an event's list.
func (r *Registry) Register(event Event, name string, fn Handler) {
	r.handlers[event] = append(r.handlers[event], registration{name: name, fn: fn})
}

// Events returns every event with at least one handler, sorted.
func (r *Registry) Events() []Event {
	events := make([]Event, 0, len(r.handlers))
	for e := range r.handlers {
		events = append(events, e)
	}
	sort.Slice(events, func(i, j int) bool { return events[i] < events[j] })
	return events
}

// HandlerNames returns the handler names for an event in execution order.
func (r *Registry) HandlerNames(event Event) []string {
	regs := r.handlers[event]
	names := make([]string, len(regs))
	for i, reg := range regs {
		names[i] = reg.name
	}
	return names
}

// Fire runs every handler registered for event, in registration order,
// on the calling goroutine. A failing handler is logged and does not
// stop its siblings; all failures come back joined. Firing an event
// with no handlers succeeds.
func (r *Registry) Fire(ctx context.Context, event Event) error {
	l := log.FromContext(ctx)
	regs := r.handlers[event]
	if len(regs) == 0 {
		l.Debugf("hooks", "no handlers for %s", event)
		return nil
	}

	var failures []error
	for _, reg := range regs {
		l.Debugf("hooks", "running %s handler %q", event, reg.name)
		if err := reg.fn(ctx); err != nil {
			l.Warnf("hooks", "handler %q failed: %v", reg.name, err)
			failures = append(failures, fmt.Errorf("handler %q: %w", reg.name, err))
		}
	}
	return errors.Join(failures...)
}
