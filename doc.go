/*
Package sux is a Go library for succinct rank and select queries over
packed bit vectors.

Given a sequence of n bits, sux answers two questions in constant time
after a linear-time build: rank(p), the number of set bits before
position p, and select(k), the position of the k-th set bit. It does
this with an auxiliary index whose size is a fraction of the n bits it
indexes (Rank9 adds 25%; the other indices add more, and SelectAdapt's
share depends on its parameters).

The core container and its auxiliary indices live in the bitvec
subpackage:

  - BitVector: the packed bit container itself, with its own O(1) cached
    popcount and hinted rank/select primitives every other index in this
    package is built from.
  - Rank9, RankSmall (with Rank10/Rank11 presets): hierarchical rank-only
    counters at different space/query tradeoffs.
  - Select9, Rank10Sel: the above rank engines paired with a select-side
    position inventory.
  - SelectAdapt, SelectAdaptConst: a select index that classifies each
    span of the bit vector as dense or sparse and picks a narrow or wide
    encoding accordingly, so a handful of scattered ones don't cost as
    much as a dense run.

This package does not handle dynamic updates after a structure is built,
compression beyond bit packing, multi-dimensional rank, or ranking over
anything but {0,1}. Build a BitVector, build an index over it, and treat
both as read-only from then on.

Browse the bitvec subpackage for the full API:
https://pkg.go.dev/github.com/succinctdata/sux/bitvec
*/
package sux
