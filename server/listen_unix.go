//go:build !windows
// +build !windows

package server

import (
	"syscall"

	"golang.org/x/sys/unix"
)

// control allows restarting the server right away while connections of a previous run linger in TIME_WAIT.
func control(network, address string, c syscall.RawConn) error {
	var serr error
	err := c.Control(func(fd uintptr) {
		serr = unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_REUSEADDR, 1)
	})
	if err != nil {
		return err
	}
	return serr
}
