package model

import (
	"strings"
	"time"
)

// Status is the closed set of process states we track. Anything the OS
// reports that we don't recognize maps to StatusOther, never dropped.
type Status string

const (
	StatusRunning     Status = "running"
	StatusSleeping    Status = "sleeping"
	StatusStopped     Status = "stopped"
	StatusZombie      Status = "zombie"
	StatusDiskSleep   Status = "disk-sleep"
	StatusTracingStop Status = "tracing-stop"
	StatusDead        Status = "dead"
	StatusWaking      Status = "waking"
	StatusIdle        Status = "idle"
	StatusOther       Status = "other"
)

// ParseStatus normalizes the strings gopsutil returns (short forms like
// "sleep") as well as the long psutil-style names.
func ParseStatus(raw string) Status {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "running", "r":
		return StatusRunning
	case "sleep", "sleeping", "s":
		return StatusSleeping
	case "stop", "stopped", "t":
		return StatusStopped
	case "zombie", "z":
		return StatusZombie
	case "wait", "disk-sleep", "d":
		return StatusDiskSleep
	case "tracing-stop":
		return StatusTracingStop
	case "dead", "x":
		return StatusDead
	case "waking":
		return StatusWaking
	case "idle", "i":
		return StatusIdle
	default:
		return StatusOther
	}
}

// ProcKey identifies a process across samples. The OS reuses pids, so a pid
// alone can conflate two unrelated processes; pairing it with the creation
// time (unix ms) makes the key stable for history purposes.
type ProcKey struct {
	Pid        int32
	CreateTime int64
}

// ProcessSample is one process as observed at a sampling instant.
// It only lives inside a Snapshot.
type ProcessSample struct {
	Pid           int32
	Name          string
	Username      string
	Status        Status
	CPUPercent    float64 // can exceed 100 on multi-core, stored raw
	MemoryPercent float64
	CreateTime    time.Time
	Cmdline       string // may be empty when unreadable
}

func (s ProcessSample) Key() ProcKey {
	return ProcKey{Pid: s.Pid, CreateTime: s.CreateTime.UnixMilli()}
}

// SystemMetrics holds one reading of the system-wide counters.
type SystemMetrics struct {
	CPUPercent    float64
	MemoryPercent float64
	DiskPercent   float64
	BootTime      time.Time
	LoadAvg       [3]float64
}

// Snapshot is an immutable point-in-time capture of the process set,
// optionally carrying system-wide metrics. Pids within one snapshot
// are unique.
type Snapshot struct {
	TakenAt   time.Time
	Processes []ProcessSample
	System    *SystemMetrics
}

// Tasks returns total and running process counts for header display.
func (s Snapshot) Tasks() (total, running int) {
	total = len(s.Processes)
	for _, p := range s.Processes {
		if p.Status == StatusRunning {
			running++
		}
	}
	return
}
