package proc

import (
	"context"

	"github.com/Sharma123-Mohit/ProcessVisualDebugger/model"
)

// Source is how the monitoring core asks the OS for state. Implementations
// must skip processes that vanish or deny access mid-capture instead of
// failing the whole snapshot.
type Source interface {
	Capture(ctx context.Context) (model.Snapshot, error)
	CaptureSystemMetrics(ctx context.Context) (model.SystemMetrics, error)
	ChildrenOf(ctx context.Context, pid int32) (model.Snapshot, error)
}
