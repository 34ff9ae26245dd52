package tlsf

import "github.com/tlsfgo/tlsf/tlsfplatform"

// findSuitable returns a block from the smallest non-empty class at or
// above (fl, sl), using two constant-time bit scans over the segregated
// bitmap. It returns nullOffset if the pool has no block large enough.
// On success the (fl, sl) actually holding the returned block is reported
// back, since it may differ from the class requested.
func (a *Allocator) findSuitable(fl, sl int) (off int32, rfl, rsl int) {
	masked := a.slBitmap[fl] &^ ((uint32(1) << uint(sl)) - 1)
	if masked != 0 {
		idx, _ := tlsfplatform.BitScanForward32(masked)
		rfl, rsl = fl, idx
		return a.heads[rfl][rsl], rfl, rsl
	}

	maskedFL := a.flBitmap &^ ((uint32(1) << uint(fl+1)) - 1)
	flIdx, ok := tlsfplatform.BitScanForward32(maskedFL)
	if !ok {
		return nullOffset, 0, 0
	}
	slIdx, _ := tlsfplatform.BitScanForward32(a.slBitmap[flIdx])
	return a.heads[flIdx][slIdx], flIdx, slIdx
}

// insert pushes the block at off onto the head of free list (fl, sl),
// flags it FREE, updates the bitmaps, and fixes up the physical
// successor's prevPhys link.
func (a *Allocator) insert(off int32, fl, sl int) {
	h := a.blockAt(off)
	h.nextFree = a.heads[fl][sl]
	h.prevFree = nullOffset
	if h.nextFree != nullOffset {
		a.blockAt(h.nextFree).prevFree = off
	}
	a.heads[fl][sl] = off
	h.setFree(true)

	a.flBitmap |= 1 << uint(fl)
	a.slBitmap[fl] |= 1 << uint(sl)

	if !h.lastPhys() {
		a.blockAt(a.nextPhysOffset(off)).prevPhys = off
	}
}

// removeHead unlinks and returns the current head of free list (fl, sl),
// clearing bitmap bits when the class empties.
func (a *Allocator) removeHead(fl, sl int) int32 {
	off := a.heads[fl][sl]
	h := a.blockAt(off)
	next := h.nextFree

	a.heads[fl][sl] = next
	if next != nullOffset {
		a.blockAt(next).prevFree = nullOffset
	}
	h.nextFree = nullOffset
	h.prevFree = nullOffset
	h.setFree(false)

	if next == nullOffset {
		a.slBitmap[fl] &^= 1 << uint(sl)
		if a.slBitmap[fl] == 0 {
			a.flBitmap &^= 1 << uint(fl)
		}
	}
	return off
}

// remove unlinks an arbitrary free block from free list (fl, sl) by
// splicing its neighbours.
func (a *Allocator) remove(off int32, fl, sl int) {
	h := a.blockAt(off)
	prev, next := h.prevFree, h.nextFree

	if a.heads[fl][sl] == off {
		a.heads[fl][sl] = next
	}
	if next != nullOffset {
		a.blockAt(next).prevFree = prev
	}
	if prev != nullOffset {
		a.blockAt(prev).nextFree = next
	}
	h.nextFree = nullOffset
	h.prevFree = nullOffset
	h.setFree(false)

	if a.heads[fl][sl] == nullOffset {
		a.slBitmap[fl] &^= 1 << uint(sl)
		if a.slBitmap[fl] == 0 {
			a.flBitmap &^= 1 << uint(fl)
		}
	}
}
