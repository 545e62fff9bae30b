// Package rawio copies bytes from a native I/O handle into memory using the
// host platform's read primitive. The strategy is bound once at compile time
// through build tags, so calls carry no platform branching.
package rawio

// Read reads up to len(p) bytes from the native handle fd into p and returns
// the number of bytes actually read. A short read is not an error: callers
// that need all of p filled must check the returned count. OS-level failures
// are swallowed and reported as a zero count; the surrounding decoder is
// expected to re-validate whatever it consumes. Bytes of p beyond the
// returned count are left untouched.
func Read(fd uintptr, p []byte) int {
	n, err := sysRead(fd, p)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
