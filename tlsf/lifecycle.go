package tlsf

import "unsafe"

// splitThreshold is the minimum remainder, in bytes, below which a split is
// skipped to avoid wasting space on header overhead and thrashing the index.
const splitThreshold = 10 * 1024

// Allocate reserves at least size bytes and returns a pointer to the
// payload. It fails with ErrInvalidSize for a zero-byte request, or
// ErrOutOfMemory if no class at or above the request's class holds a
// block, or if the block found there is smaller than the request as
// rounded up by searchMapping.
func (a *Allocator) Allocate(size int) (unsafe.Pointer, error) {
	defer a.debug.Enter("Allocate", "size=%d", size)()

	if size <= 0 {
		return nil, ErrInvalidSize
	}

	fl, sl, bytes := searchMapping(uint32(size))
	off, rfl, rsl := a.findSuitable(fl, sl)
	if off == nullOffset {
		return nil, ErrOutOfMemory
	}

	h := a.blockAt(off)
	if h.size < bytes {
		return nil, ErrOutOfMemory
	}

	a.removeHead(rfl, rsl)

	if h.size-bytes > splitThreshold {
		remainder := a.split(off, bytes)
		a.debug.Event("Split", "off=%d remainder=%d", off, remainder)
		rh := a.blockAt(remainder)
		fl2, sl2 := insertionMapping(rh.size)
		a.insert(remainder, fl2, sl2)
	}

	h.setFree(false)
	return a.offsetToPointer(off + headerSize), nil
}

// split carves bytes off the front of the block at off, leaving the
// remainder as a new, still-free block immediately following it. The
// LAST_PHYS flag transfers to the remainder when the original carried it.
// Returns the remainder's offset.
func (a *Allocator) split(off int32, bytes uint32) int32 {
	h := a.blockAt(off)
	remainder := off + headerSize + int32(bytes)
	rh := a.blockAt(remainder)
	*rh = blockHeader{}

	wasLast := h.lastPhys()
	rh.size = h.size - uint32(headerSize) - bytes
	h.size = bytes

	if wasLast {
		rh.setLastPhys(true)
		h.setLastPhys(false)
	}
	rh.setFree(true)
	h.setFree(true)
	rh.prevPhys = off

	return remainder
}

// merge absorbs the block at rightOff into the block at leftOff; leftOff
// must physically precede rightOff with no gap. leftOff survives.
func (a *Allocator) merge(leftOff, rightOff int32) {
	left := a.blockAt(leftOff)
	right := a.blockAt(rightOff)

	wasLast := right.lastPhys()
	absorbed := right.size

	left.size += uint32(headerSize) + absorbed
	if wasLast {
		left.setLastPhys(true)
	} else {
		next := rightOff + headerSize + int32(absorbed)
		a.blockAt(next).prevPhys = leftOff
	}
}

// Free returns the block backing pointer p to the allocator, coalescing it
// eagerly with any free physical neighbours before reinserting it.
func (a *Allocator) Free(p unsafe.Pointer) {
	defer a.debug.Enter("Free", "p=%p", p)()

	off := a.pointerToOffset(p) - headerSize

	if a.blockAt(off).aligned() {
		off = a.resolveAlignedBlock(off)
	}

	h := a.blockAt(off)
	if h.prevPhys != nullOffset {
		prev := a.blockAt(h.prevPhys)
		if prev.free() {
			flp, slp := insertionMapping(prev.size)
			a.remove(h.prevPhys, flp, slp)
			a.merge(h.prevPhys, off)
			a.debug.Event("Coalesce", "left=%d right=%d", h.prevPhys, off)
			off = h.prevPhys
			h = a.blockAt(off)
		}
	}

	if !h.lastPhys() {
		nextOff := a.nextPhysOffset(off)
		next := a.blockAt(nextOff)
		if next.free() {
			fln, sln := insertionMapping(next.size)
			a.remove(nextOff, fln, sln)
			a.merge(off, nextOff)
			a.debug.Event("Coalesce", "left=%d right=%d", off, nextOff)
		}
	}

	fl, sl := insertionMapping(a.blockAt(off).size)
	a.insert(off, fl, sl)
}
