package bitvec

import "math/bits"

// posInventory is a flat position-sample index: every sampleRate-th one
// (or zero, when built with complement=true) has its absolute bit
// position recorded, so a select query can jump to the nearest sample at
// or before k and finish with a scan via the underlying hinted select
// rather than walking from the start of the bit vector.
//
// This is a deliberately simplified stand-in for the original rank9
// family's nested lower/basic-block walk, which reuses the rank side's
// own counters as select hints instead of sampling positions separately.
// Neither walk is O(1) in the worst case: both are bounded by how many
// words fall between two samples, which tracks local bit density, not a
// fixed constant — a long run of zeros between two sampled ones (or
// ones between two sampled zeros) makes the scan touch every word in
// that run. Select9 and Rank10Sel (the two indices built on top of this
// file) therefore answer select in time bounded by sampleRate consecutive
// set bits' worth of words scanned, not O(1); SelectAdapt's two-level
// design exists specifically to bound this case via its secondary
// inventory instead of relying on sample spacing alone.
type posInventory struct {
	samples    []uint64 // samples[i] = position of the (i*sampleRate)-th one/zero
	sampleRate int
	complement bool
}

// buildPosInventory scans bv once (in the given orientation) and records
// one absolute position per sampleRate set bits. sampleRate must be >= 1.
func buildPosInventory(bv *BitVector, sampleRate int, complement bool) *posInventory {
	if sampleRate < 1 {
		panic("bitvec: sampleRate must be >= 1")
	}
	total := bv.CountOnes()
	if complement {
		total = bv.CountZeros()
	}
	numSamples := (total + sampleRate - 1) / sampleRate
	if numSamples == 0 {
		numSamples = 1
	}
	samples := make([]uint64, 0, numSamples)

	seen := 0
	numWords := len(bv.words)
	for wordIdx := 0; wordIdx < numWords; wordIdx++ {
		w := bv.word(wordIdx, complement)
		for w != 0 {
			tz := bits.TrailingZeros64(w)
			if seen%sampleRate == 0 {
				samples = append(samples, uint64(wordIdx<<6+tz))
			}
			seen++
			w &= w - 1
		}
	}
	if len(samples) == 0 {
		samples = append(samples, 0)
	}
	return &posInventory{samples: samples, sampleRate: sampleRate, complement: complement}
}

// hintFor returns a (hintPos, hintRank) pair at or before the k-th set
// bit, suitable for SelectHintedUnchecked/SelectZeroHintedUnchecked.
func (inv *posInventory) hintFor(k int) (hintPos, hintRank int) {
	idx := k / inv.sampleRate
	if idx >= len(inv.samples) {
		idx = len(inv.samples) - 1
	}
	return int(inv.samples[idx]), idx * inv.sampleRate
}
