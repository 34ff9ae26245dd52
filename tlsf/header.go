package tlsf

import "unsafe"

// nullOffset marks the absence of a block reference. Offset 0 is a valid
// block (the pool's first block always starts there), so -1 is the sentinel.
const nullOffset int32 = -1

const (
	flagFree      uint32 = 1 << 0
	flagLastPhys  uint32 = 1 << 1
	flagAligned   uint32 = 1 << 2
)

// blockHeader is overlaid directly on pool bytes at a block's offset; it
// carries no pointers, only arena-relative offsets, so it is safe to alias
// onto OS-mapped memory that Go's GC never scans.
type blockHeader struct {
	prevPhys int32  // offset of the physically preceding block, nullOffset if none
	size     uint32 // payload size in bytes (header not counted)
	flags    uint32
	nextFree int32 // free-list linkage, valid only while flagFree is set
	prevFree int32
}

const headerSize = int32(unsafe.Sizeof(blockHeader{}))

func (h *blockHeader) free() bool      { return h.flags&flagFree != 0 }
func (h *blockHeader) lastPhys() bool  { return h.flags&flagLastPhys != 0 }
func (h *blockHeader) aligned() bool   { return h.flags&flagAligned != 0 }

func (h *blockHeader) setFree(v bool) {
	if v {
		h.flags |= flagFree
	} else {
		h.flags &^= flagFree
	}
}

func (h *blockHeader) setLastPhys(v bool) {
	if v {
		h.flags |= flagLastPhys
	} else {
		h.flags &^= flagLastPhys
	}
}

func (h *blockHeader) setAligned(v bool) {
	if v {
		h.flags |= flagAligned
	} else {
		h.flags &^= flagAligned
	}
}

// blockAt returns a typed view of the header living at the given
// arena-relative offset. The view aliases the arena directly; mutating it
// mutates pool memory.
func (a *Allocator) blockAt(off int32) *blockHeader {
	return (*blockHeader)(unsafe.Pointer(&a.arena[off]))
}

// pointerToOffset converts an absolute pointer inside the pool into an
// arena-relative offset.
func (a *Allocator) pointerToOffset(p unsafe.Pointer) int32 {
	return int32(uintptr(p) - uintptr(a.poolBase))
}

// offsetToPointer converts an arena-relative offset into an absolute pointer.
func (a *Allocator) offsetToPointer(off int32) unsafe.Pointer {
	return unsafe.Add(a.poolBase, uintptr(off))
}

// nextPhysOffset returns the offset of the block physically following the
// one at off, assuming off is not flagged LAST_PHYS.
func (a *Allocator) nextPhysOffset(off int32) int32 {
	h := a.blockAt(off)
	return off + headerSize + int32(h.size)
}
