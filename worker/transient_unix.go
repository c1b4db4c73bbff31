//go:build !windows
// +build !windows

package worker

import (
	errs "errors"

	"golang.org/x/sys/unix"
)

// isTransient returns true for errors caused by an interrupted or not yet ready system call,
// the operation can be retried.
func isTransient(err error) bool {
	return errs.Is(err, unix.EINTR) || errs.Is(err, unix.EAGAIN)
}
