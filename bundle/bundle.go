// Copyright ©2016 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bundle

import (
	"math/big"

	"github.com/liegroup/cblocks/lie"
	"github.com/liegroup/cblocks/scalar"
)

// Ranker is anything that can compute its own rank: both Bundle and
// Symmetric satisfy it, so callers that only need a rank can stay agnostic
// to which concrete type they hold.
type Ranker interface {
	Rank() (scalar.Int, error)
}

// FCurve is a partition of a bundle's marked points into four non-empty,
// disjoint subsets, 1-indexed as in the moduli-space literature.
type FCurve [4][]int

// Bundle is a conformal blocks vector bundle on the moduli space of stable
// curves with len(weights) marked points, associated to liealg at the given
// level.
type Bundle struct {
	alg     lie.Algebra
	weights []lie.Weight
	level   int

	rank *scalar.Int
}

// New constructs a Bundle. It returns ErrTooFewPoints if fewer than three
// weights are given, or ErrInvalidLevel if level is not positive.
func New(alg lie.Algebra, weights []lie.Weight, level int) (*Bundle, error) {
	if len(weights) < 3 {
		return nil, ErrTooFewPoints
	}
	if level < 1 {
		return nil, ErrInvalidLevel
	}
	return &Bundle{
		alg:     alg,
		weights: append([]lie.Weight(nil), weights...),
		level:   level,
	}, nil
}

// Weights returns the bundle's marked-point weights.
func (b *Bundle) Weights() []lie.Weight { return append([]lie.Weight(nil), b.weights...) }

// Level returns the bundle's level.
func (b *Bundle) Level() int { return b.level }

// Rank computes the rank of the bundle, memoizing the result. The algorithm
// factors the marked points into a pair carrying the smallest- and
// largest-dimensional representations, fused directly, and the remaining
// points, fused via MultiFusion, then pairs the two fusion products through
// the dual weight pairing.
func (b *Bundle) Rank() (scalar.Int, error) {
	if b.rank != nil {
		return *b.rank, nil
	}
	r, err := computeRank(b.alg, b.weights, b.level)
	if err != nil {
		return scalar.Int{}, err
	}
	b.rank = &r
	return r, nil
}

// computeRank computes the rank of the bundle with the given weights and
// level, without requiring a Bundle value; it is used both by Rank and by
// the divisor and F-curve computations, which evaluate it against many
// different weight lists derived from a bundle's own weights.
func computeRank(alg lie.Algebra, weights []lie.Weight, level int) (scalar.Int, error) {
	minDim, err := alg.Dim(weights[0])
	if err != nil {
		return scalar.Int{}, err
	}
	maxDim := minDim
	minIdx, maxIdx := 0, 0
	for i, w := range weights {
		d, err := alg.Dim(w)
		if err != nil {
			return scalar.Int{}, err
		}
		if scalar.Cmp(d, minDim) < 0 {
			minDim, minIdx = d, i
		}
		if scalar.Cmp(d, maxDim) > 0 {
			maxDim, maxIdx = d, i
		}
	}
	if minIdx == maxIdx {
		maxIdx = minIdx + 1
	}

	fusProd, err := alg.Fusion(weights[minIdx], weights[maxIdx], level)
	if err != nil {
		return scalar.Int{}, err
	}

	var factorList []lie.Weight
	for i, w := range weights {
		if i != minIdx && i != maxIdx {
			factorList = append(factorList, w)
		}
	}
	multiFus, err := alg.MultiFusion(factorList, level)
	if err != nil {
		return scalar.Int{}, err
	}

	ret := scalar.IntZero()
	for muStar, mult := range fusProd {
		mu := alg.DualWeight(muStar)
		if m2, ok := multiFus[mu]; ok {
			ret = scalar.AddInt(ret, scalar.MulInt(mult, m2))
		}
	}
	return ret, nil
}

// SymmetrizedDivisor computes the symmetrized divisor of the bundle,
// expressed in the standard basis D_2, D_3, ... of the symmetric nef cone.
func (b *Bundle) SymmetrizedDivisor() ([]scalar.Number, error) {
	n := len(b.weights)
	exact := b.alg.Exact()

	rank, err := b.Rank()
	if err != nil {
		return nil, err
	}

	weightedRank := scalar.Zero(exact)
	for _, w := range b.weights {
		weightedRank = scalar.Add(weightedRank, b.alg.CasimirScalar(w))
	}
	weightedRank = scalar.Mul(rank.AsNumber(exact), weightedRank)
	weightedRank = scalar.Quo(weightedRank, scalar.FromInt64(exact, int64(n*(n-1))))

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	var out []scalar.Number
	for i := 2; i <= n/2; i++ {
		coord := scalar.Mul(scalar.FromInt64(exact, int64(i*(n-i))), weightedRank)

		sum := scalar.Zero(exact)
		for _, subset := range combosOf(idx, i) {
			wtList1, wtList2 := splitByIndices(b.weights, subset)
			prod, err := b.alg.MultiFusion(wtList1, b.level)
			if err != nil {
				return nil, err
			}
			for muStar := range prod {
				mu := b.alg.DualWeight(muStar)
				r1, err := computeRank(b.alg, append(append([]lie.Weight(nil), wtList1...), mu), b.level)
				if err != nil {
					return nil, err
				}
				r2, err := computeRank(b.alg, append(append([]lie.Weight(nil), wtList2...), muStar), b.level)
				if err != nil {
					return nil, err
				}
				term := scalar.Mul(b.alg.CasimirScalar(mu), r1.AsNumber(exact))
				term = scalar.Mul(term, r2.AsNumber(exact))
				sum = scalar.Add(sum, term)
			}
		}

		sum = scalar.Mul(sum, factorial(i).AsNumber(exact))
		sum = scalar.Mul(sum, factorial(n-i).AsNumber(exact))
		sum = scalar.Quo(sum, factorial(n).AsNumber(exact))

		coord = scalar.Sub(coord, sum)
		denom := scalar.FromInt64(exact, int64(2*(b.level+b.alg.DualCoxeter())))
		coord = scalar.Quo(coord, denom)
		out = append(out, coord)
	}
	return out, nil
}

func splitByIndices(weights []lie.Weight, subset []int) (in, out []lie.Weight) {
	inSet := make(map[int]bool, len(subset))
	for _, i := range subset {
		inSet[i] = true
	}
	for i, w := range weights {
		if inSet[i] {
			in = append(in, w)
		} else {
			out = append(out, w)
		}
	}
	return in, out
}

// NormalizedDivisorRay returns the primitive integer vector in the direction
// of the symmetrized divisor, found by clearing denominators and dividing
// through by the GCD. It requires an exact-mode algebra; the divisor's
// floating-point coordinates do not carry the exact denominators this needs.
func (b *Bundle) NormalizedDivisorRay() ([]scalar.Int, error) {
	if !b.alg.Exact() {
		return nil, ErrRequiresExact
	}
	divisor, err := b.SymmetrizedDivisor()
	if err != nil {
		return nil, err
	}
	return normalizeRay(divisor)
}

// normalizeRay clears denominators from a list of exact rational divisor
// coordinates and divides through by their GCD, producing a primitive
// integer ray.
func normalizeRay(divisor []scalar.Number) ([]scalar.Int, error) {
	denomLCM := big.NewInt(1)
	rats := make([]*big.Rat, len(divisor))
	for i, q := range divisor {
		r, ok := q.Rat()
		if !ok {
			return nil, ErrRequiresExact
		}
		rats[i] = r
		denomLCM = lcmBig(denomLCM, r.Denom())
	}

	ints := make([]*big.Int, len(rats))
	for i, r := range rats {
		v := new(big.Rat).Mul(r, new(big.Rat).SetInt(denomLCM))
		if !v.IsInt() {
			return nil, ErrInternal
		}
		ints[i] = new(big.Int).Set(v.Num())
	}

	g := new(big.Int)
	for _, v := range ints {
		g.GCD(nil, nil, g, new(big.Int).Abs(v))
	}

	out := make([]scalar.Int, len(ints))
	for i, v := range ints {
		if g.Sign() > 0 {
			q := new(big.Int).Quo(v, g)
			out[i] = scalar.IntFromBig(q)
		} else {
			out[i] = scalar.IntFromBig(v)
		}
	}
	return out, nil
}

func lcmBig(a, b *big.Int) *big.Int {
	if a.Sign() == 0 || b.Sign() == 0 {
		return new(big.Int)
	}
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(a), new(big.Int).Abs(b))
	q := new(big.Int).Quo(new(big.Int).Abs(a), g)
	return q.Mul(q, new(big.Int).Abs(b))
}

// FCurves returns every F-curve on the moduli space with the bundle's
// number of marked points: every way to partition the points into four
// non-empty subsets. It returns nil for a three-point bundle, which has no
// F-curves (the moduli space is a single point).
func (b *Bundle) FCurves() []FCurve {
	n := len(b.weights)
	if n == 3 {
		return nil
	}

	all := make([]int, n)
	for i := range all {
		all[i] = i + 1
	}

	var out []FCurve
	for r1 := 1; r1 <= n-3; r1++ {
		for _, s1 := range combosOf(all, r1) {
			comp1 := diff(all, s1)
			for r2 := 1; r2 <= n-r1-2; r2++ {
				for _, s2 := range combosOf(comp1, r2) {
					comp2 := diff(comp1, s2)
					for r3 := 1; r3 <= n-r1-r2-1; r3++ {
						for _, s3 := range combosOf(comp2, r3) {
							s4 := diff(comp2, s3)
							out = append(out, FCurve{s1, s2, s3, s4})
						}
					}
				}
			}
		}
	}
	return out
}

// IntersectFCurve computes the intersection number of the bundle's divisor
// with the given F-curve.
func (b *Bundle) IntersectFCurve(fc FCurve) (scalar.Int, error) {
	prods := make([]lie.Decomposition, 4)
	for i, part := range fc {
		wl := make([]lie.Weight, len(part))
		for j, p := range part {
			wl[j] = b.weights[p-1]
		}
		prod, err := b.alg.MultiFusion(wl, b.level)
		if err != nil {
			return scalar.Int{}, err
		}
		prods[i] = prod
	}

	ret := scalar.IntZero()
	for wt1, m1 := range prods[0] {
		if m1.IsZero() {
			continue
		}
		for wt2, m2 := range prods[1] {
			if m2.IsZero() {
				continue
			}
			for wt3, m3 := range prods[2] {
				if m3.IsZero() {
					continue
				}
				muProd, err := b.alg.MultiFusion([]lie.Weight{wt1, wt2, wt3}, b.level)
				if err != nil {
					return scalar.Int{}, err
				}
				for wt4, m4 := range prods[3] {
					if m4.IsZero() {
						continue
					}
					mp, ok := muProd[b.alg.DualWeight(wt4)]
					if !ok || mp.IsZero() {
						continue
					}
					deg, err := b.degree(wt1, wt2, wt3, wt4)
					if err != nil {
						return scalar.Int{}, err
					}
					term := scalar.MulInt(deg, m1)
					term = scalar.MulInt(term, m2)
					term = scalar.MulInt(term, m3)
					term = scalar.MulInt(term, m4)
					ret = scalar.AddInt(ret, term)
				}
			}
		}
	}
	return ret, nil
}

// degree computes the degree of the four-point conformal blocks bundle with
// the given weights, via Fakhruddin's formula.
func (b *Bundle) degree(wt1, wt2, wt3, wt4 lie.Weight) (scalar.Int, error) {
	exact := b.alg.Exact()

	rank4, err := computeRank(b.alg, []lie.Weight{wt1, wt2, wt3, wt4}, b.level)
	if err != nil {
		return scalar.Int{}, err
	}

	casimirSum := scalar.Zero(exact)
	for _, w := range [...]lie.Weight{wt1, wt2, wt3, wt4} {
		casimirSum = scalar.Add(casimirSum, b.alg.CasimirScalar(w))
	}
	ret := scalar.Mul(rank4.AsNumber(exact), casimirSum)

	pairs := [3][2][2]lie.Weight{
		{{wt1, wt2}, {wt3, wt4}},
		{{wt1, wt3}, {wt2, wt4}},
		{{wt1, wt4}, {wt2, wt3}},
	}
	sum := scalar.Zero(exact)
	for _, pr := range pairs {
		prod1, err := b.alg.Fusion(pr[0][0], pr[0][1], b.level)
		if err != nil {
			return scalar.Int{}, err
		}
		prod2, err := b.alg.Fusion(pr[1][0], pr[1][1], b.level)
		if err != nil {
			return scalar.Int{}, err
		}
		for mu, m1 := range prod1 {
			m2, ok := prod2[b.alg.DualWeight(mu)]
			if !ok {
				continue
			}
			term := scalar.Mul(b.alg.CasimirScalar(b.alg.DualWeight(mu)), m1.AsNumber(exact))
			term = scalar.Mul(term, m2.AsNumber(exact))
			sum = scalar.Add(sum, term)
		}
	}
	ret = scalar.Sub(ret, sum)

	denom := scalar.FromInt64(exact, int64(2*(b.level+b.alg.DualCoxeter())))
	ret = scalar.Quo(ret, denom)

	if exact {
		r, _ := ret.Rat()
		if !r.IsInt() {
			return scalar.Int{}, ErrInternal
		}
	}
	return ret.Round(), nil
}
