package ui

import (
	"fmt"
	"time"
)

func FormatUptime(d time.Duration) string {
	seconds := int64(d.Seconds())
	days := seconds / 86400
	hours := (seconds % 86400) / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60

	if days > 0 {
		return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
	}
	if hours > 0 {
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, secs)
	}
	return fmt.Sprintf("%dm %ds", minutes, secs)
}

func FormatStarted(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	if time.Since(t) > 24*time.Hour {
		return t.Format("Jan 02")
	}
	return t.Format("15:04:05")
}
