package proc

import (
	"errors"
	"fmt"
	"os"
	"syscall"
	"testing"

	"github.com/shirou/gopsutil/v4/process"
	"github.com/stretchr/testify/assert"
)

func TestKindOfMapsOSErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{"gopsutil not running", process.ErrorProcessNotRunning, ErrNotFound},
		{"esrch", syscall.ESRCH, ErrNotFound},
		{"wrapped esrch", fmt.Errorf("signal: %w", syscall.ESRCH), ErrNotFound},
		{"eperm", syscall.EPERM, ErrPermissionDenied},
		{"os permission", os.ErrPermission, ErrPermissionDenied},
		{"einval", syscall.EINVAL, ErrInvalidArgument},
		{"anything else", errors.New("short read"), ErrTransient},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestKindOfUnwrapsTypedError(t *testing.T) {
	err := &Error{Kind: ErrTimeout, Pid: 42, Err: errors.New("deadline")}
	assert.Equal(t, ErrTimeout, KindOf(fmt.Errorf("terminate: %w", err)))
}

func TestClassifyKeepsCause(t *testing.T) {
	cause := syscall.EPERM
	err := Classify(7, cause)

	assert.Equal(t, ErrPermissionDenied, err.Kind)
	assert.Equal(t, int32(7), err.Pid)
	assert.True(t, errors.Is(err, syscall.EPERM))
	assert.Contains(t, err.Error(), "permission denied")
}
