package proc

import (
	"context"
	"fmt"
	"syscall"
	"time"

	"github.com/shirou/gopsutil/v4/process"

	"github.com/Sharma123-Mohit/ProcessVisualDebugger/model"
)

// Controller is the OS process-control surface consumed by the action
// gateway. Implementations report failures through *Error so the gateway
// can tell a vanished process from a privilege problem.
type Controller interface {
	Name(pid int32) (string, error)
	Status(pid int32) (model.Status, error)
	Terminate(pid int32) error
	Kill(pid int32) error
	Suspend(pid int32) error
	Resume(pid int32) error
	SetPriority(pid int32, nice int) error

	// WaitExit blocks until the process is gone or ctx expires.
	WaitExit(ctx context.Context, pid int32) error
}

const waitPollInterval = 100 * time.Millisecond

// SysController drives real processes: gopsutil for lookups, plain signals
// and setpriority for the mutations.
type SysController struct{}

func NewSysController() *SysController { return &SysController{} }

func (c *SysController) Name(pid int32) (string, error) {
	p, err := process.NewProcess(pid)
	if err != nil {
		return "", Classify(pid, err)
	}
	name, err := p.Name()
	if err != nil {
		return "", Classify(pid, err)
	}
	return name, nil
}

func (c *SysController) Status(pid int32) (model.Status, error) {
	p, err := process.NewProcess(pid)
	if err != nil {
		return model.StatusOther, Classify(pid, err)
	}
	st, err := p.Status()
	if err != nil || len(st) == 0 {
		return model.StatusOther, Classify(pid, err)
	}
	return model.ParseStatus(st[0]), nil
}

func (c *SysController) Terminate(pid int32) error {
	return c.signal(pid, syscall.SIGTERM)
}

func (c *SysController) Kill(pid int32) error {
	return c.signal(pid, syscall.SIGKILL)
}

func (c *SysController) Suspend(pid int32) error {
	return c.signal(pid, syscall.SIGSTOP)
}

func (c *SysController) Resume(pid int32) error {
	return c.signal(pid, syscall.SIGCONT)
}

func (c *SysController) signal(pid int32, sig syscall.Signal) error {
	if pid <= 0 {
		return &Error{Kind: ErrInvalidArgument, Pid: pid, Err: fmt.Errorf("invalid PID: %d", pid)}
	}
	if err := syscall.Kill(int(pid), sig); err != nil {
		return Classify(pid, err)
	}
	return nil
}

// SetPriority changes the nice value of a process.
// nice: -20 (highest priority) to 19 (lowest priority).
// Requires root for negative values or other users' processes.
func (c *SysController) SetPriority(pid int32, nice int) error {
	if pid <= 0 {
		return &Error{Kind: ErrInvalidArgument, Pid: pid, Err: fmt.Errorf("invalid PID: %d", pid)}
	}
	if nice < -20 || nice > 19 {
		return &Error{Kind: ErrInvalidArgument, Pid: pid,
			Err: fmt.Errorf("nice value must be between -20 and 19, got %d", nice)}
	}
	if err := syscall.Setpriority(syscall.PRIO_PROCESS, int(pid), nice); err != nil {
		return Classify(pid, err)
	}
	return nil
}

func (c *SysController) WaitExit(ctx context.Context, pid int32) error {
	ticker := time.NewTicker(waitPollInterval)
	defer ticker.Stop()

	for {
		exists, err := process.PidExistsWithContext(ctx, pid)
		if err == nil && !exists {
			return nil
		}
		select {
		case <-ctx.Done():
			return &Error{Kind: ErrTimeout, Pid: pid, Err: ctx.Err()}
		case <-ticker.C:
		}
	}
}
