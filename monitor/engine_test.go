package monitor

import (
	"context"
	"io"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sharma123-Mohit/ProcessVisualDebugger/model"
)

// stubSource satisfies proc.Source for engine tests that drive Reconcile
// directly; the loops are not started.
type stubSource struct {
	snapshot model.Snapshot
	metrics  model.SystemMetrics
}

func (s *stubSource) Capture(ctx context.Context) (model.Snapshot, error) {
	return s.snapshot, nil
}

func (s *stubSource) CaptureSystemMetrics(ctx context.Context) (model.SystemMetrics, error) {
	return s.metrics, nil
}

func (s *stubSource) ChildrenOf(ctx context.Context, pid int32) (model.Snapshot, error) {
	return model.Snapshot{}, nil
}

func newTestEngine() *Engine {
	return NewEngine(&stubSource{}, log.New(io.Discard, "", 0))
}

func procSample(pid int32, name string, status model.Status, cpu float64) model.ProcessSample {
	return model.ProcessSample{
		Pid:           pid,
		Name:          name,
		Status:        status,
		CPUPercent:    cpu,
		MemoryPercent: 10,
		CreateTime:    time.Unix(1700000000, 0),
	}
}

func TestReconcileTwoCycles(t *testing.T) {
	e := newTestEngine()
	e.SetOptions(Options{
		Interval:   time.Second,
		Thresholds: Thresholds{CPU: 90, Memory: 80},
	})

	now := time.Now()
	first := model.Snapshot{TakenAt: now, Processes: []model.ProcessSample{
		procSample(100, "worker", model.StatusRunning, 95),
		procSample(200, "idle", model.StatusSleeping, 10),
	}}

	events := e.Reconcile(first, now)
	require.Len(t, events, 1, "first cycle: one anomaly, no transitions on first sighting")
	assert.Equal(t, model.SeverityWarning, events[0].Severity)
	assert.Contains(t, events[0].Message, "High CPU usage detected: worker (PID: 100)")

	later := now.Add(time.Second)
	second := model.Snapshot{TakenAt: later, Processes: []model.ProcessSample{
		procSample(100, "worker", model.StatusSleeping, 95),
		procSample(200, "idle", model.StatusSleeping, 10),
	}}

	events = e.Reconcile(second, later)
	require.Len(t, events, 2, "second cycle: transition plus the still-firing anomaly")
	assert.Contains(t, events[0].Message, "changed state from running to sleeping")
	assert.Contains(t, events[1].Message, "High CPU usage detected")

	h, ok := e.History(100)
	require.True(t, ok)
	assert.Equal(t, 2, h.Len())
	assert.Equal(t, 2, len(h.Statuses))
	assert.Equal(t, 2, len(h.CPU))
	assert.Equal(t, 2, len(h.Memory))

	// Event log accumulated all three, newest first.
	all := e.Events()
	require.Len(t, all, 3)
	assert.Contains(t, all[2].Message, "High CPU usage detected")
}

func TestReconcileIgnoresAbsentPids(t *testing.T) {
	e := newTestEngine()
	now := time.Now()

	e.Reconcile(model.Snapshot{Processes: []model.ProcessSample{
		procSample(1, "a", model.StatusRunning, 1),
		procSample(2, "b", model.StatusRunning, 1),
	}}, now)

	// pid 2 disappears: no event, history untouched.
	events := e.Reconcile(model.Snapshot{Processes: []model.ProcessSample{
		procSample(1, "a", model.StatusRunning, 1),
	}}, now.Add(time.Second))
	assert.Empty(t, events)

	h, ok := e.History(2)
	require.True(t, ok)
	assert.Equal(t, 1, h.Len(), "vanished pid keeps its stale history")
}

func TestOptionsIntervalClamped(t *testing.T) {
	e := newTestEngine()

	e.SetOptions(Options{Interval: 100 * time.Millisecond})
	assert.Equal(t, MinInterval, e.Options().Interval)

	e.SetOptions(Options{Interval: time.Minute})
	assert.Equal(t, MaxInterval, e.Options().Interval)
}

func TestPauseStateExposedToReaders(t *testing.T) {
	e := newTestEngine()
	now := time.Now()

	snap := model.Snapshot{Processes: []model.ProcessSample{procSample(1, "a", model.StatusRunning, 1)}}
	e.Reconcile(snap, now)

	e.Pause(true)
	assert.True(t, e.Paused())
	assert.Len(t, e.Current().Processes, 1, "pausing clears nothing")

	e.Pause(false)
	assert.False(t, e.Paused())
}

func TestLogActionFeedsEventLog(t *testing.T) {
	e := newTestEngine()

	e.LogAction(model.ActionResult{Success: true, Message: "Process x (PID: 1) terminated successfully"})
	e.LogAction(model.ActionResult{Success: false, Message: "Process with PID 2 not found"})

	events := e.Events()
	require.Len(t, events, 2)
	assert.Equal(t, model.SeverityWarning, events[0].Severity, "failures are warnings")
	assert.Equal(t, model.SeverityInfo, events[1].Severity)
}

func TestNotifyPublishesReadModel(t *testing.T) {
	e := newTestEngine()

	var got Update
	e.SetNotify(func(u Update) { got = u })

	e.LogAction(model.ActionResult{Success: true, Message: "done"})
	require.Len(t, got.Events, 1)
	assert.Equal(t, "done", got.Events[0].Message)
}
