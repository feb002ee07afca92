package proc

import (
	"errors"
	"fmt"
	"os"
	"syscall"

	"github.com/shirou/gopsutil/v4/process"
)

type ErrorKind int

const (
	ErrTransient ErrorKind = iota // single reading unreadable, skip and continue
	ErrNotFound                   // target process vanished
	ErrPermissionDenied           // insufficient privilege
	ErrInvalidArgument            // e.g. unknown priority level
	ErrTimeout                    // graceful termination exceeded its deadline
)

func (k ErrorKind) String() string {
	switch k {
	case ErrNotFound:
		return "not found"
	case ErrPermissionDenied:
		return "permission denied"
	case ErrInvalidArgument:
		return "invalid argument"
	case ErrTimeout:
		return "timeout"
	default:
		return "transient"
	}
}

// Error carries the failure taxonomy for everything that touches the OS.
type Error struct {
	Kind ErrorKind
	Pid  int32
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("pid %d: %s", e.Pid, e.Kind)
	}
	return fmt.Sprintf("pid %d: %s: %v", e.Pid, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Classify wraps an OS-level error with its taxonomy kind.
func Classify(pid int32, err error) *Error {
	return &Error{Kind: KindOf(err), Pid: pid, Err: err}
}

// KindOf maps heterogeneous gopsutil/syscall errors onto the taxonomy.
// Anything unrecognized is treated as transient.
func KindOf(err error) ErrorKind {
	var perr *Error
	if errors.As(err, &perr) {
		return perr.Kind
	}
	switch {
	case errors.Is(err, process.ErrorProcessNotRunning),
		errors.Is(err, syscall.ESRCH),
		errors.Is(err, os.ErrNotExist):
		return ErrNotFound
	case errors.Is(err, os.ErrPermission),
		errors.Is(err, syscall.EPERM),
		errors.Is(err, syscall.EACCES):
		return ErrPermissionDenied
	case errors.Is(err, syscall.EINVAL):
		return ErrInvalidArgument
	}
	return ErrTransient
}
