// Package tlsfplatform provides the host-OS collaborators the allocator
// core treats as opaque: anonymous zero-initialised page mappings and
// portable bit-scan primitives. Nothing here understands blocks, free
// lists, or size classes.
package tlsfplatform

import (
	"errors"
	"unsafe"

	"golang.org/x/sys/unix"
)

// ErrMapFailed is returned when the OS refuses an anonymous mapping request.
var ErrMapFailed = errors.New("tlsfplatform: mmap failed")

// Map requests n bytes of zero-initialised, read-write virtual memory from
// the OS. The returned region is anonymous and not backed by any file.
func Map(n uintptr) (unsafe.Pointer, error) {
	if n == 0 {
		return nil, ErrMapFailed
	}
	b, err := unix.Mmap(-1, 0, int(n), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
	if err != nil {
		return nil, ErrMapFailed
	}
	return unsafe.Pointer(&b[0]), nil
}

// Unmap releases a region previously obtained from Map.
func Unmap(p unsafe.Pointer, n uintptr) error {
	if p == nil || n == 0 {
		return nil
	}
	b := unsafe.Slice((*byte)(p), int(n))
	return unix.Munmap(b)
}
