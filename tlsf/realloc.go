package tlsf

import "unsafe"

// Reallocate obtains a fresh block of newSize bytes, copies
// min(newSize, old payload size) bytes from p, and frees the old block.
// A zero newSize fails with ErrInvalidSize; callers must free explicitly.
// The core does not grow in place into a free neighbour.
func (a *Allocator) Reallocate(p unsafe.Pointer, newSize int) (unsafe.Pointer, error) {
	if newSize <= 0 {
		return nil, ErrInvalidSize
	}

	oldOff := a.pointerToOffset(p) - headerSize
	oldSize := a.blockAt(oldOff).size

	np, err := a.Allocate(newSize)
	if err != nil {
		return nil, err
	}

	n := uintptr(newSize)
	if uintptr(oldSize) < n {
		n = uintptr(oldSize)
	}
	if n > 0 {
		dst := unsafe.Slice((*byte)(np), n)
		src := unsafe.Slice((*byte)(p), n)
		copy(dst, src)
	}

	a.Free(p)
	return np, nil
}
