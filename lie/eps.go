// Copyright ©2016 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lie

import "github.com/liegroup/cblocks/scalar"

// epsCoords is a weight expressed in orthonormal epsilon coordinates. Its
// length is family-dependent (§4.1): rank+1 for A, rank for B and C, rank
// for D with the last two coordinates coupled. Arithmetic on epsCoords
// flows through scalar.Number so that the half-integers arising for B and D
// are carried exactly in exact mode.
type epsCoords []scalar.Number

func (e epsCoords) clone() epsCoords {
	c := make(epsCoords, len(e))
	copy(c, e)
	return c
}

// insertionSortDesc sorts e into descending order in place using insertion
// sort, the same algorithm the source model uses to reflect a weight into
// the dominant chamber. It returns the sign of the permutation performed:
// +1 if an even number of adjacent transpositions were needed, -1 if odd.
func insertionSortDesc(e epsCoords) int {
	parity := 1
	for i := 1; i < len(e); i++ {
		j := i
		for j > 0 && scalar.Cmp(e[j-1], e[j]) < 0 {
			e[j-1], e[j] = e[j], e[j-1]
			parity = -parity
			j--
		}
	}
	return parity
}

// absWithParity replaces every negative entry of e with its negation in
// place, and returns the sign accumulated from doing so (-1 per negation).
func absWithParity(e epsCoords) int {
	parity := 1
	for i := range e {
		if e[i].Sign() < 0 {
			e[i] = scalar.Neg(e[i])
			parity = -parity
		}
	}
	return parity
}
