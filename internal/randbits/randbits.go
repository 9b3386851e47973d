// Package randbits generates seeded random bit vectors for use as test
// fixtures. It is kept internal deliberately: random-bit-vector
// generation is an external test-harness concern, not part of the
// public bitvec surface, the same way poly's own random package produces
// fixtures for its sequence-handling tests without being part of the
// public sequence API.
package randbits

import (
	"math/rand"

	"github.com/succinctdata/sux/bitvec"
)

// Dense returns a *bitvec.BitVector of the given length with each bit
// independently set with probability density, using a new rand.Rand
// seeded with seed (so a given (length, density, seed) triple always
// reproduces the same vector).
func Dense(length int, density float64, seed int64) *bitvec.BitVector {
	r := rand.New(rand.NewSource(seed))
	bv := bitvec.NewBitVector(length)
	for i := 0; i < length; i++ {
		if r.Float64() < density {
			bv.Set(i, true)
		}
	}
	return bv
}

// WithOneCount returns a *bitvec.BitVector of the given length with
// exactly ones bits set, at the first ones entries of a random
// permutation of [0, length) seeded with seed. Panics if ones is out of
// [0, length].
func WithOneCount(length, ones int, seed int64) *bitvec.BitVector {
	if ones < 0 || ones > length {
		panic("randbits: ones out of range")
	}
	r := rand.New(rand.NewSource(seed))
	positions := r.Perm(length)[:ones]
	bv := bitvec.NewBitVector(length)
	for _, p := range positions {
		bv.Set(p, true)
	}
	return bv
}
