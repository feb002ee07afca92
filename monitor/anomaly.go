package monitor

import (
	"fmt"
	"time"

	"github.com/Sharma123-Mohit/ProcessVisualDebugger/model"
)

// Thresholds parameterize anomaly detection. The defaults are the single
// documented pair for the whole application; callers override via config.
type Thresholds struct {
	CPU    float64
	Memory float64
}

var DefaultThresholds = Thresholds{CPU: 90, Memory: 80}

// Evaluate maps one sample to zero or more warning events. The two checks
// are independent: a sample can trip both in the same cycle. Pure, no side
// effects.
func (t Thresholds) Evaluate(sample model.ProcessSample, now time.Time) []model.Event {
	var events []model.Event

	if sample.CPUPercent > t.CPU {
		events = append(events, model.Event{
			Timestamp: now,
			Severity:  model.SeverityWarning,
			Message: fmt.Sprintf("High CPU usage detected: %s (PID: %d) at %.1f%%",
				sample.Name, sample.Pid, sample.CPUPercent),
		})
	}
	if sample.MemoryPercent > t.Memory {
		events = append(events, model.Event{
			Timestamp: now,
			Severity:  model.SeverityWarning,
			Message: fmt.Sprintf("High memory usage detected: %s (PID: %d) at %.1f%%",
				sample.Name, sample.Pid, sample.MemoryPercent),
		})
	}
	return events
}
