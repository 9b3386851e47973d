package bitvec

import "math/bits"

// selectAdaptDenseThreshold is the exclusive upper bound on the bit-width
// of a dense primary span (a span of width 2^16 or more is sparse): an
// offset within the span must fit a uint16, so the bound is fixed at
// 2^16 regardless of s. s tunes the
// secondary sampling granularity (Q2), not this threshold.
const selectAdaptDenseThreshold = uint64(1) << 16

// selectAdaptCore is the shared two-level adaptive select engine behind
// both SelectAdapt and SelectAdaptConst.
//
// A primary inventory samples the position of every (i*q1)-th one (or
// zero, under complement). Each primary span — the run of up to q1 ones
// between two consecutive primary samples — is then classified:
//
//   - dense, if its bit-width is under selectAdaptDenseThreshold: a
//     secondary inventory samples every Q2-th one within the span
//     (Q2 = q1 >> s) and stores each sample's offset from the span's
//     first one as a uint16.
//   - sparse otherwise: a secondary inventory samples every
//     Q2sparse-th one (Q2sparse = 4*Q2, chosen so the sparse
//     sub-inventory's byte budget matches the dense one: a uint64 entry
//     is 4x a uint16 entry, so a quarter as many samples cost the same)
//     and stores each sample's absolute position as a uint64.
//
// select(k) therefore resolves to the nearest secondary sample at or
// before k, with at most Q2-1 (dense) or Q2sparse-1 (sparse) remaining
// ones handed off to the underlying BitVector's hinted select to finish
// — the same sample-then-scan shape as posInventory, just nested inside
// a primary span instead of running over the whole bit vector.
type selectAdaptCore struct {
	bv         *BitVector
	complement bool
	q1         int // ones (or zeros) per primary span
	s          int // log2(q1/Q2): secondary sampling granularity within a dense span

	primary []uint64 // absolute position of span i's first one; len = numSpans+1, last entry is a sentinel = bv.Len()

	denseStart  []int32 // per span, start index into denseArena; -1 if span is sparse
	denseArena  []uint16
	sparseStart []int32 // per span, start index into sparseArena; -1 if span is dense
	sparseArena []uint64
}

func secondaryQuantum(q1, s int) int {
	q2 := q1 >> uint(s)
	if q2 < 1 {
		q2 = 1
	}
	return q2
}

func buildSelectAdaptCore(bv *BitVector, q1, s int, complement bool) *selectAdaptCore {
	if q1 < 1 || q1&(q1-1) != 0 {
		panic("bitvec: q1 must be a power of two")
	}
	if s < 0 {
		panic("bitvec: s must be >= 0")
	}
	q2 := secondaryQuantum(q1, s)
	q2Sparse := q2 * 4
	if q2Sparse < 1 {
		q2Sparse = 1
	}

	total := bv.CountOnes()
	if complement {
		total = bv.CountZeros()
	}
	numSpans := (total + q1 - 1) / q1
	if numSpans == 0 {
		numSpans = 1
	}

	core := &selectAdaptCore{
		bv:          bv,
		complement:  complement,
		q1:          q1,
		s:           s,
		primary:     make([]uint64, 0, numSpans+1),
		denseStart:  make([]int32, numSpans),
		sparseStart: make([]int32, numSpans),
	}

	var spanPositions []uint64
	spanIdx := 0
	onesCovered := 0
	flushSpan := func() {
		if len(spanPositions) == 0 {
			return
		}
		base := spanPositions[0]
		core.primary = append(core.primary, base)
		width := spanPositions[len(spanPositions)-1] - base
		if width < selectAdaptDenseThreshold {
			start := int32(len(core.denseArena))
			core.denseStart[spanIdx] = start
			core.sparseStart[spanIdx] = -1
			for j := 0; j < len(spanPositions); j += q2 {
				core.denseArena = append(core.denseArena, uint16(spanPositions[j]-base))
			}
		} else {
			start := int32(len(core.sparseArena))
			core.sparseStart[spanIdx] = start
			core.denseStart[spanIdx] = -1
			for j := 0; j < len(spanPositions); j += q2Sparse {
				core.sparseArena = append(core.sparseArena, spanPositions[j])
			}
		}
		onesCovered += len(spanPositions)
		spanIdx++
		spanPositions = spanPositions[:0]
	}

	numWords := len(bv.words)
	for wordIdx := 0; wordIdx < numWords; wordIdx++ {
		w := bv.word(wordIdx, complement)
		for w != 0 {
			tz := bits.TrailingZeros64(w)
			spanPositions = append(spanPositions, uint64(wordIdx<<6+tz))
			if len(spanPositions) == q1 {
				flushSpan()
			}
			w &= w - 1
		}
	}
	flushSpan()

	if len(core.primary) == 0 {
		core.primary = append(core.primary, 0)
	}
	core.primary = append(core.primary, uint64(bv.Len()))

	// Build consistency, per the failure model: the primary inventory has
	// one entry per span plus the trailing sentinel, the sentinel is
	// len(bv), and every one/zero scanned landed in exactly one span.
	if len(core.primary) != numSpans+1 {
		panic("bitvec: SelectAdapt primary inventory length invariant violated")
	}
	if core.primary[len(core.primary)-1] != uint64(bv.Len()) {
		panic("bitvec: SelectAdapt primary inventory sentinel invariant violated")
	}
	if onesCovered != total {
		panic("bitvec: SelectAdapt span coverage invariant violated")
	}

	return core
}

func (c *selectAdaptCore) selectUnchecked(k int) int {
	span := k / c.q1
	residual := k % c.q1
	q2 := secondaryQuantum(c.q1, c.s)

	var hintPos, sampleRank, quantum int
	if start := c.denseStart[span]; start >= 0 {
		subIdx := residual / q2
		hintPos = int(c.primary[span]) + int(c.denseArena[int(start)+subIdx])
		sampleRank = span*c.q1 + subIdx*q2
		quantum = q2
	} else {
		q2Sparse := q2 * 4
		if q2Sparse < 1 {
			q2Sparse = 1
		}
		subIdx := residual / q2Sparse
		start := c.sparseStart[span]
		hintPos = int(c.sparseArena[int(start)+subIdx])
		sampleRank = span*c.q1 + subIdx*q2Sparse
		quantum = q2Sparse
	}

	if residual%quantum == 0 {
		return hintPos
	}
	if c.complement {
		return c.bv.SelectZeroHintedUnchecked(k, hintPos, sampleRank)
	}
	return c.bv.SelectHintedUnchecked(k, hintPos, sampleRank)
}

// SelectAdapt answers select queries with runtime-chosen (Q1, s)
// parameters, pinned for the lifetime of the value at construction (Go
// has no const-generic parameters to fix them at the type level, so a
// constructor argument stands in for the const-generic Q1/s of the
// original design — see SelectAdaptConst for the canonical fixed-preset
// variant).
//
// A SelectAdapt eagerly builds both a ones-oriented and a zero-oriented
// core, so both Select and SelectZero are answered without building
// anything lazily on first use of a given orientation.
type SelectAdapt struct {
	bv    *BitVector
	ones  *selectAdaptCore
	zeros *selectAdaptCore
}

// NewSelectAdapt builds a SelectAdapt over bv, sampling a primary span
// every q1 ones (and, independently, every q1 zeros), classifying each
// span dense or sparse against the fixed 2^16 width threshold, and
// sampling a secondary inventory within each dense span every q1>>s ones
// (every 4*(q1>>s) ones within a sparse span; q1>>s is raised to 1 when
// it would be 0).
func NewSelectAdapt(bv *BitVector, q1, s int) *SelectAdapt {
	return &SelectAdapt{
		bv:    bv,
		ones:  buildSelectAdaptCore(bv, q1, s, false),
		zeros: buildSelectAdaptCore(bv, q1, s, true),
	}
}

func (a *SelectAdapt) Len() int        { return a.bv.Len() }
func (a *SelectAdapt) CountOnes() int  { return a.bv.CountOnes() }
func (a *SelectAdapt) CountZeros() int { return a.bv.CountZeros() }

// Select returns the position of the one of rank k, or ok=false if
// k >= CountOnes().
func (a *SelectAdapt) Select(k int) (int, bool) {
	if k < 0 || k >= a.CountOnes() {
		return 0, false
	}
	return a.ones.selectUnchecked(k), true
}

// SelectUnchecked returns select(k) without the k < CountOnes() check.
func (a *SelectAdapt) SelectUnchecked(k int) int { return a.ones.selectUnchecked(k) }

// SelectZero returns the position of the zero of rank k, or ok=false if
// k >= CountZeros().
func (a *SelectAdapt) SelectZero(k int) (int, bool) {
	if k < 0 || k >= a.CountZeros() {
		return 0, false
	}
	return a.zeros.selectUnchecked(k), true
}

// SelectZeroUnchecked returns select_zero(k) without the k < CountZeros()
// check.
func (a *SelectAdapt) SelectZeroUnchecked(k int) int { return a.zeros.selectUnchecked(k) }

// Overhead reports the index's extra storage, as a percentage of len,
// beyond the bits already charged to the underlying BitVector:
// ((extra_bits) * 100) / len, mirroring mem_cost's
// ((mem_size*8 - len) * 100) / len.
func (a *SelectAdapt) Overhead() float64 {
	extraBits := overheadBits(a.ones) + overheadBits(a.zeros)
	if a.bv.Len() == 0 {
		return 0
	}
	return float64(extraBits) * 100 / float64(a.bv.Len())
}

func overheadBits(c *selectAdaptCore) int {
	return len(c.primary)*64 + len(c.denseStart)*32 + len(c.denseArena)*16 +
		len(c.sparseStart)*32 + len(c.sparseArena)*64
}

// SelectAdaptConst is SelectAdapt with (Q1, s) fixed at one of four
// canonical presets instead of an arbitrary runtime pair, mirroring the
// const-generic specializations (SelectAdapt0..SelectAdapt3) the original
// design benchmarks by name. Go cannot fix Q1/s at the type level the way
// a const generic would, so the preset is still a constructor argument —
// but callers reaching for "the standard preset 2 variant" should use
// NewSelectAdaptConst2 rather than hand the raw numbers to
// NewSelectAdaptConst, to keep the preset visible at call sites.
type SelectAdaptConst struct {
	*SelectAdapt
	preset int
}

// selectAdaptConstPresets holds the four canonical (Q1, s) pairs. Q1
// grows across presets (a sparser primary inventory, less primary-side
// memory) while s is chosen to keep the secondary quantum Q2 = Q1>>s at
// a constant 64 ones per secondary sample, so every preset pays the same
// residual-scan bound and differs only in primary inventory density.
var selectAdaptConstPresets = [4][2]int{
	{1 << 8, 2},
	{1 << 10, 4},
	{1 << 12, 6},
	{1 << 14, 8},
}

// NewSelectAdaptConst builds a SelectAdaptConst using preset (0-3).
func NewSelectAdaptConst(bv *BitVector, preset int) *SelectAdaptConst {
	if preset < 0 || preset > 3 {
		panic("bitvec: SelectAdaptConst preset must be in [0,3]")
	}
	p := selectAdaptConstPresets[preset]
	return &SelectAdaptConst{
		SelectAdapt: NewSelectAdapt(bv, p[0], p[1]),
		preset:      preset,
	}
}

// NewSelectAdaptConst0 builds preset 0 (Q1 = 256), the densest primary
// inventory and the largest overhead of the four presets.
func NewSelectAdaptConst0(bv *BitVector) *SelectAdaptConst { return NewSelectAdaptConst(bv, 0) }

// NewSelectAdaptConst1 builds preset 1.
func NewSelectAdaptConst1(bv *BitVector) *SelectAdaptConst { return NewSelectAdaptConst(bv, 1) }

// NewSelectAdaptConst2 builds preset 2.
func NewSelectAdaptConst2(bv *BitVector) *SelectAdaptConst { return NewSelectAdaptConst(bv, 2) }

// NewSelectAdaptConst3 builds preset 3 (Q1 = 16384), the sparsest primary
// inventory and the smallest overhead of the four presets.
func NewSelectAdaptConst3(bv *BitVector) *SelectAdaptConst { return NewSelectAdaptConst(bv, 3) }

// Preset returns which of the four canonical presets this index was
// built with.
func (a *SelectAdaptConst) Preset() int { return a.preset }
