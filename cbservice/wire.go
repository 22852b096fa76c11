// Copyright ©2016 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cbservice

import (
	"github.com/liegroup/cblocks/lie"
	"github.com/liegroup/cblocks/scalar"
)

// Weight is the wire form of a dominant integral weight: its coordinates in
// the fundamental-weight basis.
type Weight struct {
	Coords []int32
}

// toLie converts a wire Weight into a lie.Weight, or ErrRankTooLarge if it
// carries more coordinates than lie.Weight can store.
func (w Weight) toLie() (lie.Weight, error) {
	coords := make([]int, len(w.Coords))
	for i, c := range w.Coords {
		coords[i] = int(c)
	}
	return lie.NewWeight(coords...)
}

// LieAlgebraRef names a classical simple Lie algebra by family and rank.
type LieAlgebraRef struct {
	Type lie.Family
	Rank uint32
}

// ConformalBlocksRequest asks for an invariant of the conformal blocks
// bundle with the given marked-point weights and level.
type ConformalBlocksRequest struct {
	Algebra LieAlgebraRef
	Weights []Weight
	Level   uint32
}

// SymConformalBlocksRequest asks for an invariant of the conformal blocks
// bundle whose NumPoints marked points all carry Weight.
type SymConformalBlocksRequest struct {
	Algebra   LieAlgebraRef
	Weight    Weight
	NumPoints uint32
	Level     uint32
}

// IntReply is the wire encoding of a scalar.Int: Result is authoritative
// when BigResult is empty; otherwise BigResult carries the hexadecimal,
// two's-complement-free magnitude, with a leading "-" for negative values.
type IntReply struct {
	Result    int64
	BigResult string
}

func encodeInt(z scalar.Int) IntReply {
	result, hex, _ := z.Encode()
	return IntReply{Result: result, BigResult: hex}
}

// RatReply is the wire encoding of an exact rational number as a reduced
// numerator/denominator pair, each itself an IntReply.
type RatReply struct {
	Numerator   IntReply
	Denominator IntReply
}

// encodeNumber encodes a scalar.Number as a RatReply. Float-mode numbers are
// encoded as the nearest integer over denominator 1: the wire schema only
// round-trips exact rationals, so a float-mode divisor is first rounded.
func encodeNumber(q scalar.Number) RatReply {
	if r, ok := q.Rat(); ok {
		num := scalar.IntFromBig(r.Num())
		den := scalar.IntFromBig(r.Denom())
		return RatReply{Numerator: encodeInt(num), Denominator: encodeInt(den)}
	}
	return RatReply{Numerator: encodeInt(q.Round()), Denominator: encodeInt(scalar.IntFromInt64(1))}
}

// VectorReply is the wire encoding of a divisor coordinate vector.
type VectorReply struct {
	Coords []RatReply
}

func encodeVector(qs []scalar.Number) VectorReply {
	coords := make([]RatReply, len(qs))
	for i, q := range qs {
		coords[i] = encodeNumber(q)
	}
	return VectorReply{Coords: coords}
}
