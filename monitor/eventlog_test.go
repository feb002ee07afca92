package monitor

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sharma123-Mohit/ProcessVisualDebugger/model"
)

func TestEventLogBounded(t *testing.T) {
	l := NewEventLog()
	now := time.Now()

	for i := 0; i < EventCapacity+25; i++ {
		l.Append(model.Event{
			Timestamp: now.Add(time.Duration(i) * time.Second),
			Severity:  model.SeverityInfo,
			Message:   fmt.Sprintf("event %d", i),
		})
	}

	events := l.Events()
	require.Len(t, events, EventCapacity)
	assert.Equal(t, "event 25", events[0].Message, "oldest evicted first")
	assert.Equal(t, fmt.Sprintf("event %d", EventCapacity+24), events[len(events)-1].Message)
}

func TestEventLogRecentIsNewestFirst(t *testing.T) {
	l := NewEventLog()
	l.Append(
		model.Event{Message: "first"},
		model.Event{Message: "second"},
		model.Event{Message: "third"},
	)

	recent := l.Recent()
	require.Len(t, recent, 3)
	assert.Equal(t, "third", recent[0].Message)
	assert.Equal(t, "first", recent[2].Message)
}

func TestEventLogBulkAppendBeyondCapacity(t *testing.T) {
	l := NewEventLog()

	batch := make([]model.Event, EventCapacity+10)
	for i := range batch {
		batch[i] = model.Event{Message: fmt.Sprintf("e%d", i)}
	}
	l.Append(batch...)

	assert.Equal(t, EventCapacity, l.Len())
	assert.Equal(t, "e10", l.Events()[0].Message)
}
