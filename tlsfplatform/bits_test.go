package tlsfplatform

import "testing"

func TestBitScanForward32(t *testing.T) {
	cases := []struct {
		x    uint32
		idx  int
		ok   bool
		name string
	}{
		{0, 0, false, "zero"},
		{1, 0, true, "bit0"},
		{0x80000000, 31, true, "bit31"},
		{0b10100, 2, true, "lowest-of-multiple"},
	}
	for _, c := range cases {
		idx, ok := BitScanForward32(c.x)
		if ok != c.ok || (ok && idx != c.idx) {
			t.Errorf("%s: BitScanForward32(%#x) = (%d,%v), want (%d,%v)", c.name, c.x, idx, ok, c.idx, c.ok)
		}
	}
}

func TestBitScanReverse32(t *testing.T) {
	cases := []struct {
		x    uint32
		idx  int
		ok   bool
		name string
	}{
		{0, 0, false, "zero"},
		{1, 0, true, "bit0"},
		{0x80000000, 31, true, "bit31"},
		{0b10100, 4, true, "highest-of-multiple"},
	}
	for _, c := range cases {
		idx, ok := BitScanReverse32(c.x)
		if ok != c.ok || (ok && idx != c.idx) {
			t.Errorf("%s: BitScanReverse32(%#x) = (%d,%v), want (%d,%v)", c.name, c.x, idx, ok, c.idx, c.ok)
		}
	}
}
