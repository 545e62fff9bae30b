//go:build unix

package rawio

import "syscall"

func sysRead(fd uintptr, p []byte) (int, error) {
	return syscall.Read(int(fd), p)
}
