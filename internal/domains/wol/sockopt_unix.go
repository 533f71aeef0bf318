//go:build unix

package wol

import (
	"fmt"
	"syscall"

	"golang.org/x/sys/unix"
)

func enableBroadcast(_, _ string, rawConn syscall.RawConn) (err error) {
	var sockErr error
	if err = rawConn.Control(func(fd uintptr) {
		sockErr = unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_BROADCAST, 1)
	}); err != nil {
		return fmt.Errorf("enableBroadcast: %w", err)
	}

	if sockErr != nil {
		return fmt.Errorf("enableBroadcast: %w", sockErr)
	}

	return nil
}
