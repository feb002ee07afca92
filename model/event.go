package model

import "time"

type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "info"
}

// Event is an immutable log record. The core only appends; readers choose
// their own ordering.
type Event struct {
	Timestamp time.Time
	Severity  Severity
	Message   string
}

// ActionResult is what every debug action returns. OS-level failures never
// cross this boundary as errors, only as Success=false with a message
// suitable for direct display.
type ActionResult struct {
	Success bool
	Message string
}

// PriorityLevel is the closed set of scheduling priorities a user can
// request. Unknown levels are rejected, never silently defaulted.
type PriorityLevel string

const (
	PriorityLow      PriorityLevel = "low"
	PriorityNormal   PriorityLevel = "normal"
	PriorityHigh     PriorityLevel = "high"
	PriorityRealtime PriorityLevel = "realtime"
)

// Nice maps a level to a Unix nice value. Negative values require privilege.
func (p PriorityLevel) Nice() (int, bool) {
	switch p {
	case PriorityLow:
		return 10, true
	case PriorityNormal:
		return 0, true
	case PriorityHigh:
		return -10, true
	case PriorityRealtime:
		return -20, true
	}
	return 0, false
}
