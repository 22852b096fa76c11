// Copyright ©2016 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lie

import (
	"math/bits"
	"sort"

	"github.com/liegroup/cblocks/scalar"
)

// signMode selects which sign changes of epsilon coordinates are members of
// a family's Weyl group, on top of coordinate permutations.
type signMode int

const (
	signModeNone signMode = iota // A: permutations only, no sign changes
	signModeAll                  // B, C: permutations composed with every subset of sign flips
	signModeEven                 // D: permutations composed with even-cardinality subsets of sign flips
)

// Orbit is a non-restartable iterator over the Weyl group orbit of a weight,
// modeled on gonum's graph/iterator ordered-node iterators: call Next until
// it returns false, reading Weight after each true result.
//
// The orbit is finite, so unlike the source model's streaming generator,
// Orbit materializes the full (deduplicated) orbit once at construction and
// walks it by index; this trades the source's constant per-step memory for
// a simpler, still one-pass iteration contract.
type Orbit struct {
	weights []Weight
	idx     int
}

// newOrbit builds the orbit of the weight whose epsilon coordinates are dom
// (already reflected into the dominant chamber by the caller), under the
// permutation and sign-change group described by mode.
func newOrbit(ops familyOps, dom epsCoords, mode signMode) *Orbit {
	seen := make(map[Weight]bool)
	var weights []Weight
	for _, perm := range distinctPermutations(dom) {
		for _, signed := range signVariants(perm, mode) {
			w := ops.epsToFunds(signed)
			if !seen[w] {
				seen[w] = true
				weights = append(weights, w)
			}
		}
	}
	return &Orbit{weights: weights, idx: -1}
}

// Next advances the iterator and reports whether a Weight is available.
func (o *Orbit) Next() bool {
	o.idx++
	return o.idx < len(o.weights)
}

// Weight returns the current orbit element. It must only be called after a
// call to Next that returned true.
func (o *Orbit) Weight() Weight { return o.weights[o.idx] }

// Len returns the total number of distinct elements in the orbit.
func (o *Orbit) Len() int { return len(o.weights) }

// distinctPermutations returns every distinct permutation of the multiset e,
// via the standard backtracking algorithm that skips repeated values at each
// branch to avoid generating duplicate orderings.
func distinctPermutations(e epsCoords) []epsCoords {
	n := len(e)
	sorted := e.clone()
	sort.Slice(sorted, func(i, j int) bool { return scalar.Cmp(sorted[i], sorted[j]) < 0 })

	var out []epsCoords
	used := make([]bool, n)
	cur := make(epsCoords, n)

	var backtrack func(pos int)
	backtrack = func(pos int) {
		if pos == n {
			out = append(out, cur.clone())
			return
		}
		for i := 0; i < n; i++ {
			if used[i] {
				continue
			}
			if i > 0 && !used[i-1] && scalar.Cmp(sorted[i], sorted[i-1]) == 0 {
				continue
			}
			used[i] = true
			cur[pos] = sorted[i]
			backtrack(pos + 1)
			used[i] = false
		}
	}
	backtrack(0)
	return out
}

// signVariants returns every sign-flip variant of p permitted by mode.
func signVariants(p epsCoords, mode signMode) []epsCoords {
	if mode == signModeNone {
		return []epsCoords{p}
	}

	var nonzero []int
	for i, v := range p {
		if v.Sign() != 0 {
			nonzero = append(nonzero, i)
		}
	}
	k := len(nonzero)

	var out []epsCoords
	for mask := 0; mask < (1 << uint(k)); mask++ {
		if mode == signModeEven && bits.OnesCount(uint(mask))%2 != 0 {
			continue
		}
		c := p.clone()
		for b := 0; b < k; b++ {
			if mask&(1<<uint(b)) != 0 {
				c[nonzero[b]] = scalar.Neg(c[nonzero[b]])
			}
		}
		out = append(out, c)
	}
	return out
}
