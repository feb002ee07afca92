// Package debugger is the gateway for debug actions against a process:
// terminate, suspend/resume and priority changes. Every OS outcome is
// normalized into an ActionResult; nothing here panics or returns an error
// to the caller.
package debugger

import (
	"context"
	"fmt"
	"time"

	"github.com/Sharma123-Mohit/ProcessVisualDebugger/model"
	"github.com/Sharma123-Mohit/ProcessVisualDebugger/proc"
)

// DefaultWaitTimeout is how long Terminate waits for a graceful exit before
// escalating to a forceful kill.
const DefaultWaitTimeout = 3 * time.Second

type Gateway struct {
	ctl         proc.Controller
	waitTimeout time.Duration
}

func New(ctl proc.Controller) *Gateway {
	return &Gateway{ctl: ctl, waitTimeout: DefaultWaitTimeout}
}

// NewWithTimeout is used by tests to shorten the escalation window.
func NewWithTimeout(ctl proc.Controller, waitTimeout time.Duration) *Gateway {
	return &Gateway{ctl: ctl, waitTimeout: waitTimeout}
}

// Terminate requests a graceful termination and waits up to the timeout for
// the process to exit. On timeout it escalates to a forceful kill and says
// so in the message. Cancelling ctx aborts the wait without escalating.
func (g *Gateway) Terminate(ctx context.Context, pid int32) model.ActionResult {
	name, err := g.ctl.Name(pid)
	if err != nil {
		return g.failure("terminate", pid, err)
	}

	if err := g.ctl.Terminate(pid); err != nil {
		return g.failure("terminate", pid, err)
	}

	waitCtx, cancel := context.WithTimeout(ctx, g.waitTimeout)
	defer cancel()

	err = g.ctl.WaitExit(waitCtx, pid)
	if err == nil {
		return success("Process %s (PID: %d) terminated successfully", name, pid)
	}
	if ctx.Err() != nil {
		return model.ActionResult{Message: fmt.Sprintf("Termination of process %d aborted: %v", pid, ctx.Err())}
	}
	if proc.KindOf(err) != proc.ErrTimeout {
		return g.failure("terminate", pid, err)
	}

	if err := g.ctl.Kill(pid); err != nil {
		return g.failure("terminate", pid, err)
	}
	return success("Process %s (PID: %d) killed forcefully", name, pid)
}

// ToggleSuspend resumes a stopped process and suspends anything else.
// The status read and the signal are not atomic with respect to the OS;
// the contract only covers a target that isn't being modified concurrently.
func (g *Gateway) ToggleSuspend(ctx context.Context, pid int32) model.ActionResult {
	name, err := g.ctl.Name(pid)
	if err != nil {
		return g.failure("suspend/resume", pid, err)
	}

	status, err := g.ctl.Status(pid)
	if err != nil {
		return g.failure("suspend/resume", pid, err)
	}

	if status == model.StatusStopped {
		if err := g.ctl.Resume(pid); err != nil {
			return g.failure("suspend/resume", pid, err)
		}
		return success("Process %s (PID: %d) resumed", name, pid)
	}

	if err := g.ctl.Suspend(pid); err != nil {
		return g.failure("suspend/resume", pid, err)
	}
	return success("Process %s (PID: %d) suspended", name, pid)
}

// SetPriority maps the level to a nice value and applies it. An unknown
// level is a distinct failure, never silently defaulted.
func (g *Gateway) SetPriority(ctx context.Context, pid int32, level model.PriorityLevel) model.ActionResult {
	nice, ok := level.Nice()
	if !ok {
		return model.ActionResult{Message: fmt.Sprintf("Invalid priority level: %s", level)}
	}

	name, err := g.ctl.Name(pid)
	if err != nil {
		return g.failure("set priority for", pid, err)
	}

	if err := g.ctl.SetPriority(pid, nice); err != nil {
		return g.failure("set priority for", pid, err)
	}
	return success("Priority for %s (PID: %d) set to %s", name, pid, level)
}

func success(format string, args ...any) model.ActionResult {
	return model.ActionResult{Success: true, Message: fmt.Sprintf(format, args...)}
}

func (g *Gateway) failure(verb string, pid int32, err error) model.ActionResult {
	switch proc.KindOf(err) {
	case proc.ErrNotFound:
		return model.ActionResult{Message: fmt.Sprintf("Process with PID %d not found", pid)}
	case proc.ErrPermissionDenied:
		return model.ActionResult{Message: fmt.Sprintf("Permission denied to %s process %d", verb, pid)}
	case proc.ErrInvalidArgument:
		return model.ActionResult{Message: fmt.Sprintf("Invalid argument for process %d: %v", pid, err)}
	default:
		return model.ActionResult{Message: fmt.Sprintf("Error: %v", err)}
	}
}
