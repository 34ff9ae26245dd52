// Package tlsf implements a Two-Level Segregated Fit dynamic memory
// allocator: a segregated free-list index over a pool of OS-obtained
// virtual memory, serving allocation, reallocation, aligned allocation
// and release with bounded, constant-time-modulo-mapping cost per call.
//
// The Allocator is single-threaded cooperative and non-reentrant (see
// spec.md §5): it holds no locks, and callers serializing concurrent
// access must do so themselves (package tlsfmalloc does exactly that for
// its process-wide facade).
package tlsf

import (
	"unsafe"

	"github.com/tlsfgo/tlsf/tlsfdebug"
	"github.com/tlsfgo/tlsf/tlsfplatform"
)

// Allocator owns one pool mapping and the segregated index over it.
//
// The pool is represented as a byte arena with blocks addressed by
// arena-relative int32 offsets rather than raw pointer casts: this is the
// safer re-architecture spec.md §9 calls for, eliminating most unsafe
// pointer-chasing while preserving O(1) physical-neighbour lookup.
type Allocator struct {
	arena    []byte
	poolBase unsafe.Pointer
	poolLen  uintptr

	flBitmap uint32
	slBitmap [flCount]uint32
	heads    [flCount][slCount]int32

	debug *tlsfdebug.Logger
}

// SetDebugLogger attaches l as the trace sink for every subsequent
// operation on a. Pass nil to disable tracing (the default).
func (a *Allocator) SetDebugLogger(l *tlsfdebug.Logger) {
	a.debug = l
}

// New maps (1<<power) bytes of pool memory plus one block header, and
// inserts the whole pool as a single LAST_PHYS free block. power must lie
// in [4, 30]: a smaller pool cannot hold a block of the smallest classified
// size, and a larger one overflows the 32-bit sizes and offsets of block
// headers. Other values fail with ErrInvalidSize.
func New(power uint) (*Allocator, error) {
	if power < jBits || power > 30 {
		return nil, ErrInvalidSize
	}

	poolBytes := uint64(1) << power
	total := poolBytes + uint64(headerSize)
	if total > uint64(^uintptr(0)) {
		return nil, ErrInvalidSize
	}

	base, err := tlsfplatform.Map(uintptr(total))
	if err != nil {
		return nil, ErrMapFailed
	}

	a := &Allocator{
		arena:    unsafe.Slice((*byte)(base), int(total)),
		poolBase: base,
		poolLen:  uintptr(total),
	}
	for fl := range a.heads {
		for sl := range a.heads[fl] {
			a.heads[fl][sl] = nullOffset
		}
	}

	first := a.blockAt(0)
	*first = blockHeader{prevPhys: nullOffset, size: uint32(poolBytes)}
	first.setLastPhys(true)

	fl, sl := insertionMapping(first.size)
	a.insert(0, fl, sl)

	return a, nil
}

// Destroy releases the pool mapping back to the OS. Per spec.md §9 this
// fixes the original implementation's leak, which unmapped only a
// separate control structure and left the pool itself mapped forever.
func (a *Allocator) Destroy() {
	tlsfplatform.Unmap(a.poolBase, a.poolLen) //nolint:errcheck
	a.arena = nil
	a.poolBase = nil
	a.poolLen = 0
}

// Available returns the total free payload bytes currently indexed,
// derived directly from walking the free-list heads (spec.md's Non-goals
// exclude richer statistics, not this).
func (a *Allocator) Available() int {
	total := 0
	for fl := 0; fl < flCount; fl++ {
		for sl := 0; sl < slCount; sl++ {
			off := a.heads[fl][sl]
			for off != nullOffset {
				h := a.blockAt(off)
				total += int(h.size)
				off = h.nextFree
			}
		}
	}
	return total
}
