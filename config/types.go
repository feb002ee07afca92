package config

// Config is everything the monitoring core takes from outside: sampling
// cadence, anomaly thresholds, default filters and alert webhooks.
type Config struct {
	UpdateInterval float64 `json:"update_interval"` // seconds, clamped to 1-10

	// Anomaly thresholds. One documented default for the whole app.
	CPUThreshold float64 `json:"cpu_threshold"`
	MemThreshold float64 `json:"mem_threshold"`

	// Snapshot filters applied before reconciliation.
	CPUFilter  float64 `json:"cpu_filter"`
	MemFilter  float64 `json:"mem_filter"`
	NameFilter string  `json:"name_filter"`

	// Histories of processes unseen for this long are reclaimed.
	HistoryTTLMinutes int `json:"history_ttl_minutes"`

	ActiveWebhook string            `json:"active_webhook"`
	Webhooks      map[string]string `json:"webhooks"`
}
