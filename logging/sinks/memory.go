package sinks

import (
	"context"
	"sync"

	"maptool/logging"
)

// MemorySink records events in a bounded ring buffer for assertions in tests.
type MemorySink struct {
	mu     sync.Mutex
	limit  int
	events []logging.Event
}

// NewMemorySink constructs a MemorySink retaining at most limit events
// (0 means unbounded).
func NewMemorySink(limit int) *MemorySink {
	return &MemorySink{limit: limit}
}

// Write implements logging.Sink.
func (s *MemorySink) Write(event logging.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	if s.limit > 0 && len(s.events) > s.limit {
		s.events = s.events[len(s.events)-s.limit:]
	}
	return nil
}

// Close implements logging.Sink.
func (s *MemorySink) Close(context.Context) error {
	return nil
}

// Events returns a copy of the recorded events.
func (s *MemorySink) Events() []logging.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]logging.Event, len(s.events))
	copy(out, s.events)
	return out
}
