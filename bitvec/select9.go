package bitvec

// select9SampleRate is the number of set bits (or zeros, for the zero
// inventory) between successive samples. 512 mirrors Rank9's own block
// size: a cache-line-scale jump followed by a single hinted scan.
const select9SampleRate = 512

// Select9 layers select support on top of a Rank9: it adds two
// posInventory tables, one sampling one-positions and one sampling
// zero-positions, so Select and SelectZero are both answered without
// scanning from the start of the bit vector.
//
// Building both inventories unconditionally (rather than lazily, on
// first use of each orientation) mirrors how the reference bit-vector
// index in this family builds its one-select and zero-select maps
// together in a single construction pass.
type Select9 struct {
	*Rank9
	ones  *posInventory
	zeros *posInventory
}

// NewSelect9 builds a Select9 over bv.
func NewSelect9(bv *BitVector) *Select9 {
	return &Select9{
		Rank9: NewRank9(bv),
		ones:  buildPosInventory(bv, select9SampleRate, false),
		zeros: buildPosInventory(bv, select9SampleRate, true),
	}
}

// Select returns the position of the one of rank k, or ok=false if
// k >= CountOnes().
func (s *Select9) Select(k int) (int, bool) {
	if k < 0 || k >= s.CountOnes() {
		return 0, false
	}
	return s.SelectUnchecked(k), true
}

// SelectUnchecked returns select(k) without the k < CountOnes() check.
func (s *Select9) SelectUnchecked(k int) int {
	hintPos, hintRank := s.ones.hintFor(k)
	return s.bv.SelectHintedUnchecked(k, hintPos, hintRank)
}

// SelectZero returns the position of the zero of rank k, or ok=false if
// k >= CountZeros().
func (s *Select9) SelectZero(k int) (int, bool) {
	if k < 0 || k >= s.CountZeros() {
		return 0, false
	}
	return s.SelectZeroUnchecked(k), true
}

// SelectZeroUnchecked returns select_zero(k) without the k < CountZeros()
// check.
func (s *Select9) SelectZeroUnchecked(k int) int {
	hintPos, hintRank := s.zeros.hintFor(k)
	return s.bv.SelectZeroHintedUnchecked(k, hintPos, hintRank)
}

// Overhead reports this index's extra storage, as a percentage of Len(),
// beyond the bits already charged to the underlying BitVector: Rank9's
// fixed 25% plus the two position inventories.
func (s *Select9) Overhead() float64 {
	if s.bv.Len() == 0 {
		return 0
	}
	extraBits := len(s.ones.samples)*64 + len(s.zeros.samples)*64
	return s.Rank9.Overhead() + float64(extraBits)*100/float64(s.bv.Len())
}
