// Package history owns the bounded per-process and system-wide time series.
// The Store is the single writer; readers always get copies.
package history

import (
	"fmt"
	"sync"
	"time"

	"github.com/Sharma123-Mohit/ProcessVisualDebugger/model"
)

const (
	// ProcessCapacity bounds each per-process series.
	ProcessCapacity = 100
	// SystemCapacity bounds the system series, ~5 minutes at 1s sampling.
	SystemCapacity = 300
)

// ProcessHistory is a per-process time series. The four sequences move in
// lockstep: equal length after every mutation, oldest evicted first.
type ProcessHistory struct {
	Key  model.ProcKey
	Name string

	Timestamps []time.Time
	Statuses   []model.Status
	CPU        []float64
	Memory     []float64

	LastSeen time.Time
}

func (h *ProcessHistory) Len() int { return len(h.Timestamps) }

func (h *ProcessHistory) LastStatus() model.Status {
	if len(h.Statuses) == 0 {
		return model.StatusOther
	}
	return h.Statuses[len(h.Statuses)-1]
}

func (h *ProcessHistory) push(now time.Time, s model.ProcessSample) {
	h.Timestamps = append(h.Timestamps, now)
	h.Statuses = append(h.Statuses, s.Status)
	h.CPU = append(h.CPU, s.CPUPercent)
	h.Memory = append(h.Memory, s.MemoryPercent)

	if len(h.Timestamps) > ProcessCapacity {
		h.Timestamps = trimTimes(h.Timestamps, ProcessCapacity)
		h.Statuses = trimStatuses(h.Statuses, ProcessCapacity)
		h.CPU = trimFloats(h.CPU, ProcessCapacity)
		h.Memory = trimFloats(h.Memory, ProcessCapacity)
	}
}

func (h *ProcessHistory) clone() ProcessHistory {
	out := *h
	out.Timestamps = append([]time.Time(nil), h.Timestamps...)
	out.Statuses = append([]model.Status(nil), h.Statuses...)
	out.CPU = append([]float64(nil), h.CPU...)
	out.Memory = append([]float64(nil), h.Memory...)
	return out
}

// SystemHistory is the singleton system-wide series.
type SystemHistory struct {
	Timestamps []time.Time
	CPU        []float64
	Memory     []float64
}

func (h *SystemHistory) Len() int { return len(h.Timestamps) }

// Store holds every history. All mutation goes through Upsert, RecordSystem
// and Sweep under the write lock, so the two sampling loops can interleave
// freely with readers.
type Store struct {
	mu     sync.RWMutex
	procs  map[model.ProcKey]*ProcessHistory
	system SystemHistory
}

func NewStore() *Store {
	return &Store{procs: make(map[model.ProcKey]*ProcessHistory)}
}

// Upsert records one sample. The first sighting of a process seeds its
// history and emits nothing; later sightings append and emit a state-change
// event when the status differs from the last recorded one.
func (s *Store) Upsert(sample model.ProcessSample, now time.Time) (model.Event, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := sample.Key()
	h, ok := s.procs[key]
	if !ok {
		h = &ProcessHistory{Key: key, Name: sample.Name}
		s.procs[key] = h
	}
	h.Name = sample.Name
	h.LastSeen = now

	var ev model.Event
	emitted := false
	if ok && h.LastStatus() != sample.Status {
		ev = model.Event{
			Timestamp: now,
			Severity:  model.SeverityInfo,
			Message: fmt.Sprintf("Process %s (PID: %d) changed state from %s to %s",
				sample.Name, sample.Pid, h.LastStatus(), sample.Status),
		}
		emitted = true
	}

	h.push(now, sample)
	return ev, emitted
}

// Get returns a copy of one history.
func (s *Store) Get(key model.ProcKey) (ProcessHistory, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	h, ok := s.procs[key]
	if !ok {
		return ProcessHistory{}, false
	}
	return h.clone(), true
}

// GetByPid returns the most recently updated history for a pid. With pid
// reuse there can be several generations; callers that care should use Get
// with the full key.
func (s *Store) GetByPid(pid int32) (ProcessHistory, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var latest *ProcessHistory
	for key, h := range s.procs {
		if key.Pid != pid {
			continue
		}
		if latest == nil || h.LastSeen.After(latest.LastSeen) {
			latest = h
		}
	}
	if latest == nil {
		return ProcessHistory{}, false
	}
	return latest.clone(), true
}

// RecordSystem appends one system-wide reading.
func (s *Store) RecordSystem(m model.SystemMetrics, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.system.Timestamps = append(s.system.Timestamps, now)
	s.system.CPU = append(s.system.CPU, m.CPUPercent)
	s.system.Memory = append(s.system.Memory, m.MemoryPercent)

	if len(s.system.Timestamps) > SystemCapacity {
		s.system.Timestamps = trimTimes(s.system.Timestamps, SystemCapacity)
		s.system.CPU = trimFloats(s.system.CPU, SystemCapacity)
		s.system.Memory = trimFloats(s.system.Memory, SystemCapacity)
	}
}

// System returns a copy of the system series.
func (s *Store) System() SystemHistory {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return SystemHistory{
		Timestamps: append([]time.Time(nil), s.system.Timestamps...),
		CPU:        append([]float64(nil), s.system.CPU...),
		Memory:     append([]float64(nil), s.system.Memory...),
	}
}

// Len reports how many process histories are retained.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.procs)
}

// Sweep drops histories of processes not seen within ttl. A vanished pid
// otherwise just stops being updated, so this is the only place stale
// histories get reclaimed.
func (s *Store) Sweep(now time.Time, ttl time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for key, h := range s.procs {
		if now.Sub(h.LastSeen) > ttl {
			delete(s.procs, key)
			removed++
		}
	}
	return removed
}

func trimTimes(in []time.Time, capacity int) []time.Time {
	out := make([]time.Time, capacity)
	copy(out, in[len(in)-capacity:])
	return out
}

func trimStatuses(in []model.Status, capacity int) []model.Status {
	out := make([]model.Status, capacity)
	copy(out, in[len(in)-capacity:])
	return out
}

func trimFloats(in []float64, capacity int) []float64 {
	out := make([]float64, capacity)
	copy(out, in[len(in)-capacity:])
	return out
}
