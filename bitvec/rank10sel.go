package bitvec

// rank10SelSampleRate mirrors select9SampleRate's choice of one sample
// per 512 set (or unset) bits; Rank10Sel's rank side is coarser than
// Rank9's (1024-bit upper blocks) but the select sampling granularity is
// independent of that and kept the same.
const rank10SelSampleRate = 512

// Rank10Sel pairs a RankSmall (fixed at Rank10's 1024-bit upper blocks)
// with the same dual one/zero position inventory Select9 uses, giving a
// combined rank+select structure. Its rank side is heavier than
// Select9's: RankSmall's per-word uint32 counters put Rank10 at 56.25% of
// Len() against Rank9's 25%.
type Rank10Sel struct {
	*RankSmall
	ones  *posInventory
	zeros *posInventory
}

// NewRank10Sel builds a Rank10Sel over bv.
func NewRank10Sel(bv *BitVector) *Rank10Sel {
	return &Rank10Sel{
		RankSmall: NewRank10(bv),
		ones:      buildPosInventory(bv, rank10SelSampleRate, false),
		zeros:     buildPosInventory(bv, rank10SelSampleRate, true),
	}
}

// Select returns the position of the one of rank k, or ok=false if
// k >= CountOnes().
func (r *Rank10Sel) Select(k int) (int, bool) {
	if k < 0 || k >= r.CountOnes() {
		return 0, false
	}
	return r.SelectUnchecked(k), true
}

// SelectUnchecked returns select(k) without the k < CountOnes() check.
func (r *Rank10Sel) SelectUnchecked(k int) int {
	hintPos, hintRank := r.ones.hintFor(k)
	return r.bv.SelectHintedUnchecked(k, hintPos, hintRank)
}

// SelectZero returns the position of the zero of rank k, or ok=false if
// k >= CountZeros().
func (r *Rank10Sel) SelectZero(k int) (int, bool) {
	if k < 0 || k >= r.CountZeros() {
		return 0, false
	}
	return r.SelectZeroUnchecked(k), true
}

// SelectZeroUnchecked returns select_zero(k) without the k < CountZeros()
// check.
func (r *Rank10Sel) SelectZeroUnchecked(k int) int {
	hintPos, hintRank := r.zeros.hintFor(k)
	return r.bv.SelectZeroHintedUnchecked(k, hintPos, hintRank)
}

// Overhead reports this index's extra storage, as a percentage of Len(),
// beyond the bits already charged to the underlying BitVector: Rank10's
// rank-side counters plus the two position inventories.
func (r *Rank10Sel) Overhead() float64 {
	if r.bv.Len() == 0 {
		return 0
	}
	extraBits := len(r.ones.samples)*64 + len(r.zeros.samples)*64
	return r.RankSmall.Overhead() + float64(extraBits)*100/float64(r.bv.Len())
}
