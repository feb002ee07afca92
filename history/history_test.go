package history

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sharma123-Mohit/ProcessVisualDebugger/model"
)

func sample(pid int32, status model.Status, cpu, mem float64) model.ProcessSample {
	return model.ProcessSample{
		Pid:           pid,
		Name:          fmt.Sprintf("proc-%d", pid),
		Status:        status,
		CPUPercent:    cpu,
		MemoryPercent: mem,
		CreateTime:    time.Unix(1700000000, 0),
	}
}

func TestUpsertFirstSightingEmitsNoEvent(t *testing.T) {
	s := NewStore()

	_, emitted := s.Upsert(sample(42, model.StatusRunning, 10, 5), time.Now())
	assert.False(t, emitted)

	h, ok := s.Get(sample(42, model.StatusRunning, 10, 5).Key())
	require.True(t, ok)
	assert.Equal(t, 1, h.Len())
}

func TestUpsertDetectsStateTransition(t *testing.T) {
	s := NewStore()
	now := time.Now()

	s.Upsert(sample(42, model.StatusRunning, 10, 5), now)

	ev, emitted := s.Upsert(sample(42, model.StatusSleeping, 10, 5), now.Add(time.Second))
	require.True(t, emitted)
	assert.Equal(t, model.SeverityInfo, ev.Severity)
	assert.Contains(t, ev.Message, "changed state from running to sleeping")
	assert.Contains(t, ev.Message, "PID: 42")

	// Same status again: no event.
	_, emitted = s.Upsert(sample(42, model.StatusSleeping, 10, 5), now.Add(2*time.Second))
	assert.False(t, emitted)
}

func TestProcessHistoryBounded(t *testing.T) {
	s := NewStore()
	start := time.Now()

	for i := 0; i < ProcessCapacity+50; i++ {
		status := model.StatusRunning
		if i%2 == 1 {
			status = model.StatusSleeping
		}
		s.Upsert(sample(7, status, float64(i), 1), start.Add(time.Duration(i)*time.Second))
	}

	h, ok := s.Get(sample(7, model.StatusRunning, 0, 0).Key())
	require.True(t, ok)

	assert.Equal(t, ProcessCapacity, len(h.Timestamps))
	assert.Equal(t, ProcessCapacity, len(h.Statuses))
	assert.Equal(t, ProcessCapacity, len(h.CPU))
	assert.Equal(t, ProcessCapacity, len(h.Memory))

	// Oldest evicted first: the retained window is the most recent 100.
	assert.Equal(t, float64(50), h.CPU[0])
	assert.Equal(t, float64(ProcessCapacity+49), h.CPU[len(h.CPU)-1])
}

func TestSystemHistoryBounded(t *testing.T) {
	s := NewStore()
	start := time.Now()

	for i := 0; i < SystemCapacity+20; i++ {
		s.RecordSystem(model.SystemMetrics{CPUPercent: float64(i)}, start.Add(time.Duration(i)*time.Second))
	}

	sys := s.System()
	require.Equal(t, SystemCapacity, sys.Len())
	assert.Equal(t, SystemCapacity, len(sys.CPU))
	assert.Equal(t, SystemCapacity, len(sys.Memory))

	// Contents are the most recent 300 in call order.
	assert.Equal(t, float64(20), sys.CPU[0])
	assert.Equal(t, float64(SystemCapacity+19), sys.CPU[SystemCapacity-1])
}

func TestPidReuseGetsSeparateHistories(t *testing.T) {
	s := NewStore()
	now := time.Now()

	first := sample(99, model.StatusRunning, 1, 1)
	s.Upsert(first, now)

	// Same pid, different create time: a different process.
	reused := first
	reused.CreateTime = first.CreateTime.Add(time.Hour)
	reused.Status = model.StatusSleeping
	_, emitted := s.Upsert(reused, now.Add(time.Minute))
	assert.False(t, emitted, "reused pid must seed a fresh history, not a transition")

	assert.Equal(t, 2, s.Len())

	h, ok := s.GetByPid(99)
	require.True(t, ok)
	assert.Equal(t, model.StatusSleeping, h.LastStatus(), "GetByPid returns the most recent generation")
}

func TestSweepRemovesStaleHistories(t *testing.T) {
	s := NewStore()
	now := time.Now()

	s.Upsert(sample(1, model.StatusRunning, 1, 1), now.Add(-time.Hour))
	s.Upsert(sample(2, model.StatusRunning, 1, 1), now)

	removed := s.Sweep(now, 10*time.Minute)
	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, s.Len())

	_, ok := s.Get(sample(2, model.StatusRunning, 1, 1).Key())
	assert.True(t, ok)
	_, ok = s.Get(sample(1, model.StatusRunning, 1, 1).Key())
	assert.False(t, ok)
}

func TestReadersGetCopies(t *testing.T) {
	s := NewStore()
	now := time.Now()
	s.Upsert(sample(5, model.StatusRunning, 1, 1), now)

	h, ok := s.Get(sample(5, model.StatusRunning, 1, 1).Key())
	require.True(t, ok)
	h.CPU[0] = 999

	again, _ := s.Get(sample(5, model.StatusRunning, 1, 1).Key())
	assert.Equal(t, float64(1), again.CPU[0])
}
