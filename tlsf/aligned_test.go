package tlsf

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

// S5 — aligned allocations land on the requested boundary and the pool
// returns to a single free block once every aligned allocation is freed.
func TestAlignedAllocateSatisfiesAlignment(t *testing.T) {
	a, err := New(16)
	require.NoError(t, err)
	defer a.Destroy()

	for _, align := range []int{16, 64, 256, 4096} {
		p, err := a.AlignedAllocate(128, align)
		require.NoError(t, err, "align=%d", align)
		require.Zero(t, uintptr(p)%uintptr(align), "align=%d", align)

		buf := unsafe.Slice((*byte)(p), 128)
		for i := range buf {
			buf[i] = 0xAB
		}
		for i := range buf {
			require.Equal(t, byte(0xAB), buf[i])
		}

		a.Free(p)
		checkInvariants(t, a)
	}

	first := a.blockAt(0)
	require.True(t, first.free())
	require.True(t, first.lastPhys())
}

func TestAlignedAllocateRejectsNonPowerOfTwo(t *testing.T) {
	a, err := New(16)
	require.NoError(t, err)
	defer a.Destroy()

	_, err = a.AlignedAllocate(64, 3)
	require.ErrorIs(t, err, ErrInvalidSize)
}

// Two aligned allocations held concurrently must not alias each other's
// payload, exercising the shadow-header/back-pointer bookkeeping under
// more than one outstanding aligned block at once.
func TestAlignedAllocateMultipleOutstanding(t *testing.T) {
	a, err := New(16)
	require.NoError(t, err)
	defer a.Destroy()

	p1, err := a.AlignedAllocate(256, 128)
	require.NoError(t, err)
	p2, err := a.AlignedAllocate(256, 512)
	require.NoError(t, err)

	b1 := unsafe.Slice((*byte)(p1), 256)
	b2 := unsafe.Slice((*byte)(p2), 256)
	for i := range b1 {
		b1[i] = 1
	}
	for i := range b2 {
		b2[i] = 2
	}
	for i := range b1 {
		require.EqualValues(t, 1, b1[i])
	}
	for i := range b2 {
		require.EqualValues(t, 2, b2[i])
	}

	a.Free(p1)
	checkInvariants(t, a)
	a.Free(p2)
	checkInvariants(t, a)
}
