package tlsf

import "testing"

// checkInvariants walks the control structure and verifies properties
// 1-6 from spec.md §8 after some sequence of allocator operations.
func checkInvariants(t *testing.T, a *Allocator) {
	t.Helper()

	// 1. Bitmap consistency.
	for fl := 0; fl < flCount; fl++ {
		for sl := 0; sl < slCount; sl++ {
			headSet := a.heads[fl][sl] != nullOffset
			bitSet := a.slBitmap[fl]&(1<<uint(sl)) != 0
			if headSet != bitSet {
				t.Fatalf("sl bitmap mismatch at fl=%d sl=%d: head=%v bit=%v", fl, sl, headSet, bitSet)
			}
		}
		flBitSet := a.flBitmap&(1<<uint(fl)) != 0
		if flBitSet != (a.slBitmap[fl] != 0) {
			t.Fatalf("fl bitmap mismatch at fl=%d: flBit=%v slBitmap=%#x", fl, flBitSet, a.slBitmap[fl])
		}
	}

	// 2. Free-list membership + 3. Class correctness.
	seen := map[int32]bool{}
	for fl := 0; fl < flCount; fl++ {
		for sl := 0; sl < slCount; sl++ {
			off := a.heads[fl][sl]
			if off == nullOffset {
				continue
			}
			if a.blockAt(off).prevFree != nullOffset {
				t.Fatalf("head at fl=%d sl=%d has non-null prevFree", fl, sl)
			}
			for off != nullOffset {
				h := a.blockAt(off)
				if !h.free() {
					t.Fatalf("block at offset %d reachable from free list but FREE not set", off)
				}
				if seen[off] {
					t.Fatalf("block at offset %d reachable from more than one free list", off)
				}
				seen[off] = true

				ifl, isl := insertionMapping(h.size)
				if ifl != fl || isl != sl {
					t.Fatalf("block at offset %d has size %d classified as (%d,%d) but lives at (%d,%d)", off, h.size, ifl, isl, fl, sl)
				}
				off = h.nextFree
			}
		}
	}

	// 4. Physical chain + 5. No adjacent free + 6. Coverage.
	visited := map[int32]bool{}
	off := int32(0)
	coverage := 0
	prevFree := false
	for {
		if visited[off] {
			t.Fatalf("physical chain revisits offset %d", off)
		}
		visited[off] = true
		h := a.blockAt(off)
		coverage += int(headerSize) + int(h.size)

		if h.free() {
			if prevFree {
				t.Fatalf("two physically adjacent free blocks at offset %d", off)
			}
			if !seen[off] {
				t.Fatalf("block at offset %d is FREE but not reachable from any free list", off)
			}
		}
		prevFree = h.free()

		if h.lastPhys() {
			break
		}
		off = a.nextPhysOffset(off)
	}

	if coverage != len(a.arena) {
		t.Fatalf("physical chain covers %d bytes, pool is %d bytes", coverage, len(a.arena))
	}
}
