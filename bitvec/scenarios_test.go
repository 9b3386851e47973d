package bitvec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/succinctdata/sux/bitvec"
	"github.com/succinctdata/sux/internal/randbits"
)

// structureSet holds one of every rank/select index this package exposes,
// all built by buildAll over the same BitVector, so a scenario can be run
// once and checked against all of them.
type structureSet struct {
	bv      *bitvec.BitVector
	rank9   *bitvec.Rank9
	rank10  *bitvec.RankSmall
	rank11  *bitvec.RankSmall
	select9 *bitvec.Select9
	rank10S *bitvec.Rank10Sel
	adapt   *bitvec.SelectAdapt
	adaptC2 *bitvec.SelectAdaptConst
}

func buildAll(bv *bitvec.BitVector) structureSet {
	return structureSet{
		bv:      bv,
		rank9:   bitvec.NewRank9(bv),
		rank10:  bitvec.NewRank10(bv),
		rank11:  bitvec.NewRank11(bv),
		select9: bitvec.NewSelect9(bv),
		rank10S: bitvec.NewRank10Sel(bv),
		adapt:   bitvec.NewSelectAdapt(bv, 64, 12),
		adaptC2: bitvec.NewSelectAdaptConst2(bv),
	}
}

func TestScenarioS1Select(t *testing.T) {
	// 10110100, LSB-first: ones at {0,2,3,5}.
	bv := bitvec.NewBitVectorFromWords([]uint64{0b00101101}, 8)
	want := []int{0, 2, 3, 5}
	s := buildAll(bv)
	for k, w := range want {
		pos, ok := bv.Select(k)
		require.True(t, ok)
		assert.Equal(t, w, pos, "BitVector.Select(%d)", k)

		pos, ok = s.select9.Select(k)
		require.True(t, ok)
		assert.Equal(t, w, pos, "Select9.Select(%d)", k)

		pos, ok = s.rank10S.Select(k)
		require.True(t, ok)
		assert.Equal(t, w, pos, "Rank10Sel.Select(%d)", k)

		pos, ok = s.adapt.Select(k)
		require.True(t, ok)
		assert.Equal(t, w, pos, "SelectAdapt.Select(%d)", k)
	}
}

func TestScenarioS2Rank(t *testing.T) {
	bv := bitvec.NewBitVectorFromWords([]uint64{0b00101101}, 8)
	s := buildAll(bv)
	cases := []struct {
		p, want int
	}{
		{0, 0}, {1, 1}, {3, 2}, {6, 4}, {100, 4},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, bv.Rank(c.p), "BitVector.Rank(%d)", c.p)
		assert.Equal(t, c.want, s.rank9.Rank(c.p), "Rank9.Rank(%d)", c.p)
		assert.Equal(t, c.want, s.rank10.Rank(c.p), "Rank10.Rank(%d)", c.p)
		assert.Equal(t, c.want, s.rank11.Rank(c.p), "Rank11.Rank(%d)", c.p)
	}
}

func TestScenarioS3AllOnesSelect(t *testing.T) {
	const n = 300_000
	words := make([]uint64, (n+63)/64)
	for i := range words {
		words[i] = ^uint64(0)
	}
	if rem := n % 64; rem != 0 {
		words[len(words)-1] = uint64(1)<<uint(rem) - 1
	}
	bv := bitvec.NewBitVectorFromWords(words, n)
	s := buildAll(bv)

	for _, k := range []int{0, 1, 299_999} {
		pos, ok := bv.Select(k)
		require.True(t, ok)
		assert.Equal(t, k, pos)

		pos, ok = s.select9.Select(k)
		require.True(t, ok)
		assert.Equal(t, k, pos)

		pos, ok = s.adapt.Select(k)
		require.True(t, ok)
		assert.Equal(t, k, pos)
	}
}

func TestScenarioS4AllZerosSelectNone(t *testing.T) {
	const n = 300_000
	bv := bitvec.NewBitVector(n)
	s := buildAll(bv)

	_, ok := bv.Select(0)
	assert.False(t, ok)
	_, ok = s.select9.Select(0)
	assert.False(t, ok)
	_, ok = s.adapt.Select(0)
	assert.False(t, ok)

	pos, ok := bv.SelectZero(0)
	require.True(t, ok)
	assert.Equal(t, 0, pos)
}

func TestScenarioS5SparseSelectAdapt(t *testing.T) {
	const n = 1 << 20
	const numOnes = 64
	step := n / numOnes
	bv := bitvec.NewBitVector(n)
	for i := 0; i < numOnes; i++ {
		bv.Set(i*step, true)
	}
	s := buildAll(bv)

	pos, ok := s.adapt.Select(63)
	require.True(t, ok)
	assert.Equal(t, 63*step, pos)

	pos, ok = s.adaptC2.Select(63)
	require.True(t, ok)
	assert.Equal(t, 63*step, pos)

	pos, ok = s.select9.Select(63)
	require.True(t, ok)
	assert.Equal(t, 63*step, pos)
}

func TestScenarioS6NonUniformDensitySelectAgreesWithNaive(t *testing.T) {
	const n = 1 << 25
	bv := bitvec.NewBitVector(n)
	half := n / 2
	left := randbits.Dense(half, 0.005, 1)
	right := randbits.Dense(n-half, 0.495, 2)
	for i := 0; i < half; i++ {
		bv.Set(i, left.Get(i))
	}
	for i := 0; i < n-half; i++ {
		bv.Set(half+i, right.Get(i))
	}

	s := buildAll(bv)
	numOnes := bv.CountOnes()

	// Cross-check a bounded sample of ranks rather than every one of
	// possibly hundreds of thousands of positions, to keep this scenario
	// fast while still exercising both the dense and sparse halves.
	step := numOnes / 2000
	if step < 1 {
		step = 1
	}
	for k := 0; k < numOnes; k += step {
		want, ok := naiveSelect(bv, k, false)
		require.True(t, ok)

		pos, ok := bv.Select(k)
		require.True(t, ok)
		assert.Equal(t, want, pos, "BitVector.Select(%d)", k)

		pos, ok = s.select9.Select(k)
		require.True(t, ok)
		assert.Equal(t, want, pos, "Select9.Select(%d)", k)

		pos, ok = s.adapt.Select(k)
		require.True(t, ok)
		assert.Equal(t, want, pos, "SelectAdapt.Select(%d)", k)

		pos, ok = s.adaptC2.Select(k)
		require.True(t, ok)
		assert.Equal(t, want, pos, "SelectAdaptConst.Select(%d)", k)
	}
}
