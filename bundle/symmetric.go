// Copyright ©2016 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bundle

import (
	"github.com/liegroup/cblocks/lie"
	"github.com/liegroup/cblocks/scalar"
)

// Symmetric is a conformal blocks vector bundle whose marked points all
// carry the same weight. Its divisor and F-curves are computed with
// algorithms specialized to that symmetry, avoiding the combinatorial blowup
// of the general Bundle methods.
type Symmetric struct {
	*Bundle
}

// NewSymmetric constructs a Symmetric bundle with numPoints copies of wt.
func NewSymmetric(alg lie.Algebra, wt lie.Weight, numPoints, level int) (*Symmetric, error) {
	weights := make([]lie.Weight, numPoints)
	for i := range weights {
		weights[i] = wt
	}
	b, err := New(alg, weights, level)
	if err != nil {
		return nil, err
	}
	return &Symmetric{Bundle: b}, nil
}

// SymmetrizedDivisor computes the symmetrized divisor, specialized to the
// case where every marked point carries the same weight: each coordinate is
// reduced to a single weighted-factor recursion instead of an enumeration
// over all subsets of marked points.
func (s *Symmetric) SymmetrizedDivisor() ([]scalar.Number, error) {
	n := len(s.weights)
	exact := s.alg.Exact()
	wt := s.weights[0]

	rank, err := s.Rank()
	if err != nil {
		return nil, err
	}
	casimir := s.alg.CasimirScalar(wt)

	var out []scalar.Number
	for i := 2; i <= n/2; i++ {
		coord := scalar.Mul(scalar.FromInt64(exact, int64(i*(n-i))), rank.AsNumber(exact))
		coord = scalar.Mul(coord, casimir)
		coord = scalar.Quo(coord, scalar.FromInt64(exact, int64(n-1)))

		sum := scalar.Zero(exact)
		rankCache := make(map[lie.Weight]scalar.Int)
		if err := s.weightedFactor(wt, wt, scalar.IntFromInt64(1), i-1, n-i, &sum, rankCache); err != nil {
			return nil, err
		}

		coord = scalar.Sub(coord, sum)
		denom := scalar.FromInt64(exact, int64(2*(s.level+s.alg.DualCoxeter())))
		coord = scalar.Quo(coord, denom)
		out = append(out, coord)
	}
	return out, nil
}

// weightedFactor accumulates into sum the Casimir-weighted rank
// contribution of fusing wt with wt2 (carrying multiplicity mult) for
// wtsRem further rounds, then closing off the remaining ic copies of wt
// into a single (ic+1)-point bundle rank, memoized in rankCache across
// repeated weights reached along different fusion paths.
func (s *Symmetric) weightedFactor(wt, wt2 lie.Weight, mult scalar.Int, wtsRem, ic int, sum *scalar.Number, rankCache map[lie.Weight]scalar.Int) error {
	prod, err := s.alg.Fusion(wt, wt2, s.level)
	if err != nil {
		return err
	}

	for wt3, m := range prod {
		if m.IsZero() {
			continue
		}
		if wtsRem > 1 {
			if err := s.weightedFactor(wt, wt3, scalar.MulInt(mult, m), wtsRem-1, ic, sum, rankCache); err != nil {
				return err
			}
			continue
		}

		r, ok := rankCache[wt3]
		if !ok {
			wtList := make([]lie.Weight, ic, ic+1)
			for i := range wtList {
				wtList[i] = wt
			}
			wtList = append(wtList, wt3)
			r, err = computeRank(s.alg, wtList, s.level)
			if err != nil {
				return err
			}
			rankCache[wt3] = r
		}

		exact := s.alg.Exact()
		term := scalar.Mul(s.alg.CasimirScalar(s.alg.DualWeight(wt3)), mult.AsNumber(exact))
		term = scalar.Mul(term, m.AsNumber(exact))
		term = scalar.Mul(term, r.AsNumber(exact))
		*sum = scalar.Add(*sum, term)
	}
	return nil
}

// NormalizedDivisorRay returns the primitive integer vector in the
// direction of the symmetrized divisor, computed through the
// symmetric-specialized divisor rather than the general enumeration the
// embedded Bundle method would use.
func (s *Symmetric) NormalizedDivisorRay() ([]scalar.Int, error) {
	if !s.alg.Exact() {
		return nil, ErrRequiresExact
	}
	divisor, err := s.SymmetrizedDivisor()
	if err != nil {
		return nil, err
	}
	return normalizeRay(divisor)
}

// SymFCurves returns every F-curve on the moduli space with the bundle's
// number of marked points, up to permutation of the points: since every
// point carries the same weight, only the four part sizes of the partition
// matter, not which points land in which part.
func (s *Symmetric) SymFCurves() []FCurve {
	n := len(s.weights)

	type partition [4]int
	var partitions []partition
	for p1 := ceilDiv(n, 4); p1 <= n-3; p1++ {
		for p2 := ceilDiv(n-p1, 3); p2 <= min(n-p1-2, p1); p2++ {
			for p3 := ceilDiv(n-p1-p2, 2); p3 <= min(n-p1-p2-1, p2); p3++ {
				p4 := n - p1 - p2 - p3
				partitions = append(partitions, partition{p1, p2, p3, p4})
			}
		}
	}

	out := make([]FCurve, len(partitions))
	for i, p := range partitions {
		var fc FCurve
		start := 1
		for j, sz := range p {
			part := make([]int, sz)
			for k := range part {
				part[k] = start + k
			}
			fc[j] = part
			start += sz
		}
		out[i] = fc
	}
	return out
}

func ceilDiv(a, b int) int {
	if a <= 0 {
		return 0
	}
	return (a + b - 1) / b
}
