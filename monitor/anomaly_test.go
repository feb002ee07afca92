package monitor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sharma123-Mohit/ProcessVisualDebugger/model"
)

func TestEvaluateHighCPUOnly(t *testing.T) {
	th := Thresholds{CPU: 90, Memory: 80}
	s := model.ProcessSample{Pid: 100, Name: "chrome", CPUPercent: 95, MemoryPercent: 50}

	events := th.Evaluate(s, time.Now())
	require.Len(t, events, 1)
	assert.Equal(t, model.SeverityWarning, events[0].Severity)
	assert.Equal(t, "High CPU usage detected: chrome (PID: 100) at 95.0%", events[0].Message)
}

func TestEvaluateBothFireIndependently(t *testing.T) {
	th := Thresholds{CPU: 90, Memory: 80}
	s := model.ProcessSample{Pid: 100, Name: "chrome", CPUPercent: 95, MemoryPercent: 85}

	events := th.Evaluate(s, time.Now())
	require.Len(t, events, 2)
	assert.Contains(t, events[0].Message, "High CPU usage detected")
	assert.Contains(t, events[1].Message, "High memory usage detected")
	assert.Contains(t, events[1].Message, "at 85.0%")
}

func TestEvaluateThresholdIsExclusive(t *testing.T) {
	th := Thresholds{CPU: 90, Memory: 80}
	s := model.ProcessSample{Pid: 1, Name: "idle", CPUPercent: 90, MemoryPercent: 80}

	assert.Empty(t, th.Evaluate(s, time.Now()), "values exactly at the threshold do not fire")
}

func TestEvaluateMultiCoreCPURaw(t *testing.T) {
	th := DefaultThresholds
	s := model.ProcessSample{Pid: 2, Name: "ffmpeg", CPUPercent: 340.5}

	events := th.Evaluate(s, time.Now())
	require.Len(t, events, 1)
	assert.Contains(t, events[0].Message, "at 340.5%")
}
