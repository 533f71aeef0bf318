//go:build !unix

package wol

import (
	"syscall"
)

// the runtime already enables SO_BROADCAST on UDP sockets for these platforms.
func enableBroadcast(_, _ string, _ syscall.RawConn) error {
	return nil
}
