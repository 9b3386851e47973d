package bitvec

import "math/bits"

// SelectInWord returns the position, in [0, 64), of the k-th set bit of w,
// counting from zero. k must be strictly less than bits.OnesCount64(w); for
// any other k the returned position is unspecified (callers must not rely
// on a particular value, only that the precondition holds when they call
// it — see the package-level invariant notes on SelectHintedUnchecked).
//
// The search repeatedly halves the window: at each step it counts the ones
// in the lower half of whatever's left. If that count already covers k, the
// answer is in the lower half and the window shrinks; otherwise k is
// adjusted past those ones, the lower half is discarded, and the position
// accumulator advances. This is the same "narrow to a half, then a
// quarter, ..." shape used to walk down through occupied/runends words a
// byte at a time elsewhere in bit-sampled data structures; it just carries
// the narrowing all the way down to a single bit instead of stopping at a
// byte.
func SelectInWord(w uint64, k int) int {
	pos := 0
	width := 64
	for width > 1 {
		half := width / 2
		lowerMask := uint64(1)<<uint(half) - 1
		lowerCount := bits.OnesCount64(w & lowerMask)
		if k < lowerCount {
			width = half
			continue
		}
		k -= lowerCount
		w >>= uint(half)
		pos += half
		width -= half
	}
	return pos
}
