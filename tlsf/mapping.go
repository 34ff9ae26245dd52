package tlsf

import "github.com/tlsfgo/tlsf/tlsfplatform"

// J controls the number of second-level subclasses per first-level decade
// (SL = 1<<J). FL is the width of the first-level bitmap in bits.
const (
	jBits   = 4
	flCount = 32
	slCount = 1 << jBits
)

// insertionMapping classifies a block of known size n for placement: it
// floors n into the unique (fl, sl) class whose range contains it. Callers
// must only pass sizes that are at least 1<<jBits, which holds for every
// block size that can appear in this allocator (New rejects smaller pools,
// the search mapping below never reports less, and a split remainder is
// always larger than splitThreshold minus one header).
func insertionMapping(n uint32) (fl, sl int) {
	f, _ := tlsfplatform.BitScanReverse32(n)
	fl = f
	sl = int((n >> uint(fl-jBits)) - (1 << jBits))
	return fl, sl
}

// searchMapping maps a requested byte count n to the smallest class whose
// blocks are all guaranteed to satisfy it, i.e. whose lower bound is at
// least n. For n >= 1<<jBits it adds one less than the class width at n's
// first level and classifies the sum; that sum, which lies inside the
// reported class rather than on its lower bound, is returned as the byte
// count the caller must reserve. Smaller n report class (0, n) and
// 1<<jBits bytes.
func searchMapping(n uint32) (fl, sl int, bytes uint32) {
	if n < (1 << jBits) {
		sl = int(n)
		if sl > (1<<jBits)-1 {
			sl = (1 << jBits) - 1
		}
		return 0, sl, 1 << jBits
	}

	f0, _ := tlsfplatform.BitScanReverse32(n)
	n += (1 << uint(f0-jBits)) - 1

	f, _ := tlsfplatform.BitScanReverse32(n)
	sl = int((n >> uint(f-jBits)) - (1 << jBits))
	return f, sl, n
}
