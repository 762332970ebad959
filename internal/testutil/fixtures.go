package testutil

import (
	"sync"

	"github.com/mitchelldurbincs/DevastatingSlash/internal/game/core"
	"github.com/mitchelldurbincs/DevastatingSlash/internal/game/events"
)

// BoardOf builds a board from (q, r) pairs
func BoardOf(coords ...[2]int) *core.Board {
	b := core.NewBoard()
	for _, c := range coords {
		b.Add(core.HexCoord{Q: c[0], R: c[1]})
	}
	return b
}

// NewTestBus returns an event bus that does not log
func NewTestBus() *events.EventBus {
	return events.NewEventBusWithLogger(NopLogger())
}

// EventRecorder is a subscriber that keeps every event it receives
type EventRecorder struct {
	mu     sync.Mutex
	events []events.Event
}

// NewEventRecorder subscribes a recorder to bus
func NewEventRecorder(bus *events.EventBus) *EventRecorder {
	r := &EventRecorder{}
	bus.Subscribe(r)
	return r
}

func (r *EventRecorder) ID() string                 { return "test-recorder" }
func (r *EventRecorder) InterestedIn(_ string) bool { return true }

func (r *EventRecorder) HandleEvent(e events.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

// Events returns a copy of everything recorded so far
func (r *EventRecorder) Events() []events.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]events.Event, len(r.events))
	copy(out, r.events)
	return out
}

// Types returns the type of every recorded event in order
func (r *EventRecorder) Types() []string {
	var types []string
	for _, e := range r.Events() {
		types = append(types, e.Type())
	}
	return types
}

// OfType returns the recorded events with the given type
func (r *EventRecorder) OfType(eventType string) []events.Event {
	var out []events.Event
	for _, e := range r.Events() {
		if e.Type() == eventType {
			out = append(out, e)
		}
	}
	return out
}

// Reset forgets everything recorded so far
func (r *EventRecorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}
