package proc

import (
	"context"
	"sync"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/load"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/process"

	"github.com/Sharma123-Mohit/ProcessVisualDebugger/model"
)

const diskRoot = "/"

// Collector is the gopsutil-backed Source. Process handles are kept between
// captures so CPUPercent is computed against the previous capture instead of
// the process's whole lifetime.
type Collector struct {
	mu      sync.Mutex
	tracked map[int32]*process.Process
}

func NewCollector() *Collector {
	return &Collector{tracked: make(map[int32]*process.Process)}
}

func (c *Collector) Capture(ctx context.Context) (model.Snapshot, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return model.Snapshot{}, Classify(0, err)
	}

	samples := make([]model.ProcessSample, 0, len(procs))
	seen := make(map[int32]struct{}, len(procs))

	for _, p := range procs {
		if _, dup := seen[p.Pid]; dup {
			continue
		}
		sample, err := c.sample(ctx, c.track(p))
		if err != nil {
			// Vanished, permission-restricted or zombie mid-read:
			// skip this process, never abort the capture.
			continue
		}
		seen[p.Pid] = struct{}{}
		samples = append(samples, sample)
	}
	c.prune(seen)

	return model.Snapshot{TakenAt: time.Now(), Processes: samples}, nil
}

func (c *Collector) CaptureSystemMetrics(ctx context.Context) (model.SystemMetrics, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return model.SystemMetrics{}, Classify(0, err)
	}

	m := model.SystemMetrics{MemoryPercent: vm.UsedPercent}

	// Non-blocking read, percent since the previous call.
	if pct, err := cpu.PercentWithContext(ctx, 0, false); err == nil && len(pct) > 0 {
		m.CPUPercent = pct[0]
	}
	if du, err := disk.UsageWithContext(ctx, diskRoot); err == nil {
		m.DiskPercent = du.UsedPercent
	}
	if avg, err := load.AvgWithContext(ctx); err == nil {
		m.LoadAvg = [3]float64{avg.Load1, avg.Load5, avg.Load15}
	}
	if boot, err := host.BootTimeWithContext(ctx); err == nil {
		m.BootTime = time.Unix(int64(boot), 0)
	}

	return m, nil
}

func (c *Collector) ChildrenOf(ctx context.Context, pid int32) (model.Snapshot, error) {
	parent, err := process.NewProcessWithContext(ctx, pid)
	if err != nil {
		return model.Snapshot{}, Classify(pid, err)
	}

	children, err := parent.ChildrenWithContext(ctx)
	if err != nil {
		return model.Snapshot{}, Classify(pid, err)
	}

	samples := make([]model.ProcessSample, 0, len(children))
	for _, ch := range children {
		sample, err := c.sample(ctx, ch)
		if err != nil {
			continue
		}
		samples = append(samples, sample)
	}

	return model.Snapshot{TakenAt: time.Now(), Processes: samples}, nil
}

func (c *Collector) sample(ctx context.Context, p *process.Process) (model.ProcessSample, error) {
	name, err := p.NameWithContext(ctx)
	if err != nil {
		return model.ProcessSample{}, Classify(p.Pid, err)
	}

	s := model.ProcessSample{Pid: p.Pid, Name: name}

	// The remaining attributes may be unavailable for permission-restricted
	// processes; fall back per attribute instead of dropping the sample.
	if user, err := p.UsernameWithContext(ctx); err == nil {
		s.Username = user
	} else {
		s.Username = "unknown"
	}

	s.Status = model.StatusOther
	if st, err := p.StatusWithContext(ctx); err == nil && len(st) > 0 {
		s.Status = model.ParseStatus(st[0])
	}

	if pct, err := p.CPUPercentWithContext(ctx); err == nil {
		s.CPUPercent = pct
	}
	if pct, err := p.MemoryPercentWithContext(ctx); err == nil {
		s.MemoryPercent = float64(pct)
	}
	if created, err := p.CreateTimeWithContext(ctx); err == nil {
		s.CreateTime = time.Unix(created/1000, created%1000*int64(time.Millisecond))
	}
	if cmd, err := p.CmdlineWithContext(ctx); err == nil {
		s.Cmdline = cmd
	}

	return s, nil
}

// track returns the retained handle for a pid so CPU deltas span captures.
func (c *Collector) track(p *process.Process) *process.Process {
	c.mu.Lock()
	defer c.mu.Unlock()

	if prev, ok := c.tracked[p.Pid]; ok {
		return prev
	}
	c.tracked[p.Pid] = p
	return p
}

func (c *Collector) prune(seen map[int32]struct{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for pid := range c.tracked {
		if _, ok := seen[pid]; !ok {
			delete(c.tracked, pid)
		}
	}
}
