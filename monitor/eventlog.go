package monitor

import (
	"sync"

	"github.com/Sharma123-Mohit/ProcessVisualDebugger/model"
)

// EventCapacity bounds the event log, oldest entries evicted first.
const EventCapacity = 100

// EventLog is the bounded, append-only record of everything the core
// derived: state transitions, anomalies and action outcomes.
type EventLog struct {
	mu     sync.RWMutex
	events []model.Event
}

func NewEventLog() *EventLog {
	return &EventLog{}
}

func (l *EventLog) Append(events ...model.Event) {
	if len(events) == 0 {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	l.events = append(l.events, events...)
	if n := len(l.events); n > EventCapacity {
		kept := make([]model.Event, EventCapacity)
		copy(kept, l.events[n-EventCapacity:])
		l.events = kept
	}
}

// Events returns a copy in append order, oldest first.
func (l *EventLog) Events() []model.Event {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]model.Event(nil), l.events...)
}

// Recent returns a copy newest first, the order the dashboard shows.
func (l *EventLog) Recent() []model.Event {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]model.Event, len(l.events))
	for i, ev := range l.events {
		out[len(l.events)-1-i] = ev
	}
	return out
}

func (l *EventLog) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.events)
}
