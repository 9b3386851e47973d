package bitvec

/*
The interfaces below describe the rank/select capabilities that the
types in this package expose (BitVector, Rank9, Select9, SelectAdapt,
...), so callers can accept any of them through a common method set.

The indices themselves are not written against these interfaces: each
is built over a concrete *BitVector and reads its word slice directly,
both at build time and, for Rank9 and RankSmall, when answering rank.
*/

// BitLength exposes the length, in bits, of the underlying bit sequence.
type BitLength interface {
	Len() int
}

// BitCount exposes the number of ones and zeros of the underlying bit
// sequence.
type BitCount interface {
	BitLength
	CountOnes() int
	CountZeros() int
}

// Rank answers rank(p): the number of ones in positions [0, p).
type Rank interface {
	BitLength
	// Rank returns the number of ones before p. The bit sequence is
	// virtually zero-extended: if p >= Len(), CountOnes() is returned.
	Rank(p int) int
	// RankUnchecked is Rank without the 0 <= p <= Len() bounds check.
	RankUnchecked(p int) int
}

// RankZero answers rank_zero(p): the number of zeros in positions [0, p).
// It is always derivable from Rank by subtraction, so it carries no extra
// storage.
type RankZero interface {
	Rank
	RankZero(p int) int
	RankZeroUnchecked(p int) int
}

// Select answers select(k): the position of the k-th one (0-indexed).
type Select interface {
	BitCount
	// Select returns the position of the one of rank k, or ok=false if
	// k >= CountOnes().
	Select(k int) (pos int, ok bool)
	// SelectUnchecked is Select without the k < CountOnes() check.
	SelectUnchecked(k int) int
}

// SelectZero is the zero-oriented mirror of Select.
type SelectZero interface {
	BitCount
	SelectZero(k int) (pos int, ok bool)
	SelectZeroUnchecked(k int) int
}

// RankHinted lets a caller resume a rank computation from a known
// (position, rank-at-position) pair instead of scanning from zero.
type RankHinted interface {
	// RankHintedUnchecked returns the number of ones before pos, given
	// that hintPos is word-aligned (a multiple of 64) and at or before
	// pos, and hintRank is the true rank at hintPos.
	RankHintedUnchecked(pos, hintPos, hintRank int) int
}

// SelectHinted lets a caller resume a select computation from a known
// preceding one and its rank.
type SelectHinted interface {
	// SelectHintedUnchecked returns the position of the one of rank k,
	// given that hintPos is the position of a one, hintRank is the rank
	// at hintPos, and hintRank <= k.
	SelectHintedUnchecked(k, hintPos, hintRank int) int
}

// SelectZeroHinted is the zero-oriented mirror of SelectHinted.
type SelectZeroHinted interface {
	SelectZeroHintedUnchecked(k, hintPos, hintRank int) int
}
