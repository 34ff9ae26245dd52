package tlsf

import "unsafe"

const ptrSize = int32(unsafe.Sizeof(uintptr(0)))

// AlignedAllocate reserves at least size bytes at a pointer aligned to
// align, which must be a power of two. It works by over-allocating through
// the ordinary allocator and advancing a shadow header to the aligned
// offset, leaving a back-pointer to the real block immediately before it
// (see spec.md §4.6). Room for the shadow header and the back-pointer is
// reserved past the real header, so neither overlaps it.
func (a *Allocator) AlignedAllocate(size int, align int) (unsafe.Pointer, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	if align <= 0 || align&(align-1) != 0 {
		return nil, ErrInvalidSize
	}

	total := size + align - 1 + int(ptrSize) + int(headerSize)
	p, err := a.Allocate(total)
	if err != nil {
		return nil, err
	}

	baseOff := a.pointerToOffset(p) - headerSize
	payloadFirst := uintptr(a.offsetToPointer(baseOff)) + 2*uintptr(headerSize) + uintptr(ptrSize)
	alignedAddr := roundUpUintptr(payloadFirst, uintptr(align))
	alignedOff := a.pointerToOffset(unsafe.Pointer(alignedAddr))
	shadowOff := alignedOff - headerSize

	*a.blockAt(shadowOff) = *a.blockAt(baseOff)

	backPtrOff := shadowOff - ptrSize
	*(*uintptr)(unsafe.Pointer(&a.arena[backPtrOff])) = uintptr(a.offsetToPointer(baseOff))

	a.blockAt(shadowOff).setAligned(true)

	return a.offsetToPointer(alignedOff), nil
}

// resolveAlignedBlock is step 2 of Free (spec.md §4.5): it reads the
// back-pointer stashed before a shadow header, restores the real header's
// content at the original base, and returns the original base's offset so
// coalescing proceeds against real headers only.
func (a *Allocator) resolveAlignedBlock(shadowOff int32) int32 {
	backPtrOff := shadowOff - ptrSize
	basePtr := unsafe.Pointer(*(*uintptr)(unsafe.Pointer(&a.arena[backPtrOff])))
	baseOff := a.pointerToOffset(basePtr)

	*a.blockAt(baseOff) = *a.blockAt(shadowOff)
	a.blockAt(baseOff).setAligned(false)

	return baseOff
}

func roundUpUintptr(x, align uintptr) uintptr {
	return (x + align - 1) &^ (align - 1)
}
