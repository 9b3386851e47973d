package bitvec

import "math/bits"

// Rank9 answers rank queries in O(1) using Sebastiano Vigna's "rank9"
// layout: a two-tier hierarchy of precomputed counters over a BitVector.
//
// Bits are grouped into 512-bit upper blocks (8 words each). Each upper
// block stores an absolute cumulative one-count, plus the running
// one-count before each of its words 1..7 packed as 9-bit fields into a
// single uint64 (9*7 = 63 bits). The first word needs no stored count:
// the running count before it is always zero.
//
// rank(p) therefore touches exactly one rank9Block (two words: the
// absolute counter and the packed relative counters) plus the one data
// word containing p — two cache lines, independent of n.
type Rank9 struct {
	bv      *BitVector
	blocks  []rank9Block
	numOnes int
}

type rank9Block struct {
	absolute uint64
	relative uint64 // 7 fields of 9 bits each, for sub-block indices 1..7
}

func (blk rank9Block) relativeAt(subIdx int) int {
	return int((blk.relative >> uint(9*(subIdx-1))) & 0x1FF)
}

// NewRank9 builds a Rank9 index over bv. bv must not be mutated
// afterwards.
func NewRank9(bv *BitVector) *Rank9 {
	numWords := len(bv.words)
	numBlocks := (numWords + 7) / 8
	if numBlocks == 0 {
		numBlocks = 1
	}
	blocks := make([]rank9Block, numBlocks)

	cum := 0
	for blockIdx := 0; blockIdx < numBlocks; blockIdx++ {
		blocks[blockIdx].absolute = uint64(cum)

		var rel [7]int
		subCum := 0
		for sub := 0; sub < 8; sub++ {
			if sub > 0 {
				rel[sub-1] = subCum
			}
			wordIdx := blockIdx*8 + sub
			if wordIdx < numWords {
				subCum += bits.OnesCount64(bv.words[wordIdx])
			}
		}

		var packed uint64
		for i, c := range rel {
			packed |= uint64(c&0x1FF) << uint(9*i)
		}
		blocks[blockIdx].relative = packed
		cum += subCum
	}

	return &Rank9{bv: bv, blocks: blocks, numOnes: cum}
}

// BitVector returns the bit container this index was built over.
func (r *Rank9) BitVector() *BitVector { return r.bv }

func (r *Rank9) Len() int        { return r.bv.Len() }
func (r *Rank9) CountOnes() int  { return r.numOnes }
func (r *Rank9) CountZeros() int { return r.bv.Len() - r.numOnes }

// Rank returns the number of ones before p, saturating at CountOnes() if
// p >= Len().
func (r *Rank9) Rank(p int) int {
	if p <= 0 {
		return 0
	}
	if p >= r.bv.Len() {
		return r.numOnes
	}
	return r.RankUnchecked(p)
}

// RankUnchecked returns rank(p) without bounds checking.
func (r *Rank9) RankUnchecked(p int) int {
	if p <= 0 {
		return 0
	}
	wordIdx := (p - 1) >> 6
	blockIdx := wordIdx >> 3
	subIdx := wordIdx & 7

	block := r.blocks[blockIdx]
	rel := 0
	if subIdx > 0 {
		rel = block.relativeAt(subIdx)
	}

	rem := uint(p & 63)
	var mask uint64
	if rem == 0 {
		mask = ^uint64(0)
	} else {
		mask = uint64(1)<<rem - 1
	}

	return int(block.absolute) + rel + bits.OnesCount64(r.bv.words[wordIdx]&mask)
}

// RankZero returns the number of zeros before p.
func (r *Rank9) RankZero(p int) int { return p - r.Rank(p) }

// RankZeroUnchecked returns RankZero without bounds checking.
func (r *Rank9) RankZeroUnchecked(p int) int { return p - r.RankUnchecked(p) }

// SelectHintedUnchecked delegates to the underlying BitVector: Rank9 adds
// no select-side data of its own (see Select9, which layers a sampling
// inventory on top of a Rank9).
func (r *Rank9) SelectHintedUnchecked(k, hintPos, hintRank int) int {
	return r.bv.SelectHintedUnchecked(k, hintPos, hintRank)
}

// Overhead reports this index's extra storage, as a percentage of Len(),
// beyond the bits already charged to the underlying BitVector. Rank9's
// two uint64s per 512-bit block give a fixed 128/512 = 25% overhead
// regardless of density.
func (r *Rank9) Overhead() float64 {
	if r.bv.Len() == 0 {
		return 0
	}
	return float64(len(r.blocks)*128) * 100 / float64(r.bv.Len())
}
