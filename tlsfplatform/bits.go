package tlsfplatform

import "math/bits"

// BitScanForward32 returns the index of the least-significant set bit of x
// (the position found by scanning from bit 0 upward). ok is false for x == 0.
func BitScanForward32(x uint32) (idx int, ok bool) {
	if x == 0 {
		return 0, false
	}
	return bits.TrailingZeros32(x), true
}

// BitScanReverse32 returns the index of the most-significant set bit of x.
// ok is false for x == 0.
func BitScanReverse32(x uint32) (idx int, ok bool) {
	if x == 0 {
		return 0, false
	}
	return bits.Len32(x) - 1, true
}
