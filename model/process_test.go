package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		raw  string
		want Status
	}{
		{"running", StatusRunning},
		{"sleep", StatusSleeping},
		{"sleeping", StatusSleeping},
		{"stop", StatusStopped},
		{"stopped", StatusStopped},
		{"zombie", StatusZombie},
		{"wait", StatusDiskSleep},
		{"disk-sleep", StatusDiskSleep},
		{"tracing-stop", StatusTracingStop},
		{"dead", StatusDead},
		{"waking", StatusWaking},
		{"idle", StatusIdle},
		{"Running", StatusRunning},
		{"  sleep ", StatusSleeping},
		{"lock", StatusOther},
		{"whatever", StatusOther},
		{"", StatusOther},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseStatus(tt.raw), "raw=%q", tt.raw)
	}
}

func TestProcKeyDistinguishesPidReuse(t *testing.T) {
	created := time.Unix(1700000000, 0)
	a := ProcessSample{Pid: 42, CreateTime: created}
	b := ProcessSample{Pid: 42, CreateTime: created.Add(time.Minute)}

	assert.NotEqual(t, a.Key(), b.Key())
	assert.Equal(t, a.Key(), ProcessSample{Pid: 42, CreateTime: created}.Key())
}

func TestPriorityLevelNice(t *testing.T) {
	for level, want := range map[PriorityLevel]int{
		PriorityLow:      10,
		PriorityNormal:   0,
		PriorityHigh:     -10,
		PriorityRealtime: -20,
	} {
		nice, ok := level.Nice()
		assert.True(t, ok)
		assert.Equal(t, want, nice)
	}

	_, ok := PriorityLevel("urgent").Nice()
	assert.False(t, ok)
}

func TestSnapshotTasks(t *testing.T) {
	snap := Snapshot{Processes: []ProcessSample{
		{Pid: 1, Status: StatusRunning},
		{Pid: 2, Status: StatusSleeping},
		{Pid: 3, Status: StatusRunning},
	}}

	total, running := snap.Tasks()
	assert.Equal(t, 3, total)
	assert.Equal(t, 2, running)
}
