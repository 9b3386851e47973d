package bitvec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/succinctdata/sux/bitvec"
	"github.com/succinctdata/sux/internal/randbits"
)

func TestSelect9ZeroOrientation(t *testing.T) {
	bv := randbits.Dense(5000, 0.2, 7)
	s9 := bitvec.NewSelect9(bv)
	for k := 0; k < bv.CountZeros(); k += 13 {
		want, ok := naiveSelect(bv, k, true)
		require.True(t, ok)
		got, ok := s9.SelectZero(k)
		require.True(t, ok)
		assert.Equal(t, want, got, "k=%d", k)
	}
	assert.Equal(t, bv.CountZeros(), s9.CountZeros())
	assert.Equal(t, bv.CountOnes(), s9.CountOnes())
}

func TestRank10SelZeroOrientation(t *testing.T) {
	bv := randbits.Dense(5000, 0.7, 9)
	r10s := bitvec.NewRank10Sel(bv)
	for k := 0; k < bv.CountZeros(); k += 13 {
		want, ok := naiveSelect(bv, k, true)
		require.True(t, ok)
		got, ok := r10s.SelectZero(k)
		require.True(t, ok)
		assert.Equal(t, want, got, "k=%d", k)
	}
}

func TestRankSmallZeroRank(t *testing.T) {
	bv := randbits.Dense(3000, 0.4, 11)
	rs := bitvec.NewRankSmall(bv, 13)
	for p := 0; p <= bv.Len(); p += 37 {
		assert.Equal(t, naiveRank(bv, p), rs.Rank(p))
		assert.Equal(t, p-naiveRank(bv, p), rs.RankZero(p))
	}
}

func TestRank9OverheadIsFixed25Percent(t *testing.T) {
	bv := randbits.Dense(1<<16, 0.5, 3)
	r9 := bitvec.NewRank9(bv)
	assert.InDelta(t, 25.0, r9.Overhead(), 0.2)
}

func TestRank9OverheadEmptyIsZero(t *testing.T) {
	bv := bitvec.NewBitVector(0)
	r9 := bitvec.NewRank9(bv)
	assert.Equal(t, 0.0, r9.Overhead())
}

func TestSelectAdaptOverheadPositive(t *testing.T) {
	bv := randbits.Dense(1<<15, 0.1, 5)
	a := bitvec.NewSelectAdapt(bv, 64, 12)
	assert.Greater(t, a.Overhead(), 0.0)
}

func TestSelectAdaptConstPresets(t *testing.T) {
	bv := randbits.Dense(1<<15, 0.3, 6)
	for preset := 0; preset < 4; preset++ {
		a := bitvec.NewSelectAdaptConst(bv, preset)
		assert.Equal(t, preset, a.Preset())
		for k := 0; k < bv.CountOnes(); k += 97 {
			want, ok := naiveSelect(bv, k, false)
			require.True(t, ok)
			got, ok := a.Select(k)
			require.True(t, ok)
			assert.Equal(t, want, got, "preset=%d k=%d", preset, k)
		}
	}
	assert.Panics(t, func() { bitvec.NewSelectAdaptConst(bv, 4) })
	assert.Panics(t, func() { bitvec.NewSelectAdaptConst(bv, -1) })
}

func TestSelectAdaptConstOutOfRange(t *testing.T) {
	bv := randbits.Dense(100, 0.3, 8)
	a := bitvec.NewSelectAdaptConst1(bv)
	_, ok := a.Select(bv.CountOnes())
	assert.False(t, ok)
	_, ok = a.Select(-1)
	assert.False(t, ok)
	_, ok = a.SelectZero(bv.CountZeros())
	assert.False(t, ok)
}
