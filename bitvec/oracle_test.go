package bitvec_test

import "github.com/succinctdata/sux/bitvec"

// naiveRank is the O(n) reference rank used to cross-check every index in
// this package's property tests.
func naiveRank(bv *bitvec.BitVector, p int) int {
	if p < 0 {
		p = 0
	}
	if p > bv.Len() {
		p = bv.Len()
	}
	count := 0
	for i := 0; i < p; i++ {
		if bv.Get(i) {
			count++
		}
	}
	return count
}

// naiveSelect is the O(n) reference select (ones-oriented when
// complement is false, zero-oriented otherwise).
func naiveSelect(bv *bitvec.BitVector, k int, complement bool) (int, bool) {
	seen := 0
	for i := 0; i < bv.Len(); i++ {
		bit := bv.Get(i)
		if complement {
			bit = !bit
		}
		if bit {
			if seen == k {
				return i, true
			}
			seen++
		}
	}
	return 0, false
}
