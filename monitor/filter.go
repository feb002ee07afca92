package monitor

import (
	"strings"

	"github.com/Sharma123-Mohit/ProcessVisualDebugger/model"
)

// FilterOptions narrows a snapshot before reconciliation. Zero values mean
// "no filter": a threshold of 0 keeps everything (the boundary is inclusive)
// and an empty name matches everything.
type FilterOptions struct {
	CPUMin    float64
	MemoryMin float64
	Name      string // case-insensitive substring on the process name
}

// Filter returns a new snapshot holding only the samples that pass every
// predicate. The input is not modified.
func Filter(snap model.Snapshot, opts FilterOptions) model.Snapshot {
	out := model.Snapshot{TakenAt: snap.TakenAt, System: snap.System}
	needle := strings.ToLower(opts.Name)

	out.Processes = make([]model.ProcessSample, 0, len(snap.Processes))
	for _, p := range snap.Processes {
		if p.CPUPercent < opts.CPUMin {
			continue
		}
		if p.MemoryPercent < opts.MemoryMin {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(p.Name), needle) {
			continue
		}
		out.Processes = append(out.Processes, p)
	}
	return out
}
