// Copyright ©2016 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lie

import (
	"sort"

	"github.com/liegroup/cblocks/scalar"
)

// Character is the dominant character of an irreducible representation: the
// multiplicity of each dominant weight appearing in it. Multiplicities are
// always non-negative integers, though Freudenthal's recursion computes them
// through intermediate rational sums.
type Character map[Weight]scalar.Int

// Decomposition is a tensor or fusion product decomposition: the
// multiplicity with which each dominant weight's irreducible representation
// appears in the product.
type Decomposition map[Weight]scalar.Int

// Dim returns the dimension of the irreducible representation with highest
// weight lam, via Weyl's dimension formula, memoizing the result on a.
func (a *algebra) Dim(lam Weight) (scalar.Number, error) {
	if !lam.IsDominant() {
		return scalar.Number{}, ErrNotDominant
	}
	if v, ok := a.repDim[lam]; ok {
		return v, nil
	}

	rho := a.Rho()
	posRoots := a.positiveRoots()

	numer := scalar.FromInt64(a.exact, 1)
	denom := scalar.FromInt64(a.exact, 1)
	for _, r := range posRoots {
		av := a.ops.killingForm(lam, r.wt)
		bv := a.ops.killingForm(rho, r.wt)
		numer = scalar.Mul(numer, scalar.Add(av, bv))
		denom = scalar.Mul(denom, bv)
	}

	dim := scalar.Quo(numer, denom)
	a.repDim[lam] = dim
	return dim, nil
}

// DominantCharacter returns the dominant character of the irreducible
// representation with highest weight highWeight, implementing Freudenthal's
// recursion formula. It returns ErrInternal if exact mode produces a
// non-integral multiplicity, which signals a bug rather than a legitimate
// input, since every multiplicity of a genuine representation is an integer.
func (a *algebra) DominantCharacter(highWeight Weight) (Character, error) {
	if !highWeight.IsDominant() {
		return nil, ErrNotDominant
	}

	posRoots := a.positiveRoots()
	rootLevelDict := make(map[int][]root)
	for _, r := range posRoots {
		lv := r.level()
		rootLevelDict[lv] = append(rootLevelDict[lv], r)
	}

	weightLevelDict := map[int]map[Weight]bool{0: {highWeight: true}}
	domWeights := map[Weight]bool{highWeight: true}

	for level := 0; ; level++ {
		done := true
		for key := range weightLevelDict {
			if level <= key {
				done = false
				break
			}
		}
		if done {
			break
		}

		wts, ok := weightLevelDict[level]
		if !ok {
			continue
		}
		for wt := range wts {
			for rootLev, roots := range rootLevelDict {
				for _, r := range roots {
					newWeight := SubWeight(wt, r.wt)
					if !newWeight.IsDominant() {
						continue
					}
					nl := level + rootLev
					if weightLevelDict[nl] == nil {
						weightLevelDict[nl] = make(map[Weight]bool)
					}
					if !weightLevelDict[nl][newWeight] {
						weightLevelDict[nl][newWeight] = true
						domWeights[newWeight] = true
					}
				}
			}
		}
	}

	levels := make([]int, 0, len(weightLevelDict))
	for lv := range weightLevelDict {
		levels = append(levels, lv)
	}
	sort.Ints(levels)

	domChar := make(map[Weight]scalar.Number)
	for _, lv := range levels {
		for wt := range weightLevelDict[lv] {
			if _, err := a.computeMult(highWeight, wt, posRoots, domWeights, domChar); err != nil {
				return nil, err
			}
		}
	}

	out := make(Character, len(domChar))
	for wt, n := range domChar {
		if a.exact {
			r, _ := n.Rat()
			if !r.IsInt() {
				return nil, ErrInternal
			}
		}
		out[wt] = n.Round()
	}
	return out, nil
}

// computeMult implements Freudenthal's recursion formula for a single
// dominant weight wt in the character of highWeight, memoizing into domChar.
func (a *algebra) computeMult(highWeight, wt Weight, posRoots []root, domWeights map[Weight]bool, domChar map[Weight]scalar.Number) (scalar.Number, error) {
	if v, ok := domChar[wt]; ok {
		return v, nil
	}
	if wt == highWeight {
		v := scalar.FromInt64(a.exact, 1)
		domChar[wt] = v
		return v, nil
	}

	multSum := scalar.Zero(a.exact)
	for _, r := range posRoots {
		av := a.ops.killingForm(wt, r.wt)
		bv := a.ops.killingForm(r.wt, r.wt)

		n := 0
		newWeight := wt
		for {
			n++
			newWeight = AddWeight(newWeight, r.wt)
			newDomWeight := a.ops.reflectToChamber(newWeight)
			if !domWeights[newDomWeight] {
				break
			}
			m, err := a.computeMult(highWeight, newDomWeight, posRoots, domWeights, domChar)
			if err != nil {
				return scalar.Number{}, err
			}
			coeff := scalar.Add(av, scalar.Mul(scalar.FromInt64(a.exact, int64(n)), bv))
			multSum = scalar.Add(multSum, scalar.Mul(coeff, m))
		}
	}

	rho := a.Rho()
	hwLen := a.ops.killingForm(AddWeight(highWeight, rho), AddWeight(highWeight, rho))
	wtLen := a.ops.killingForm(AddWeight(wt, rho), AddWeight(wt, rho))
	denom := scalar.Sub(hwLen, wtLen)

	mult := scalar.Quo(scalar.Mul(scalar.FromInt64(a.exact, 2), multSum), denom)
	domChar[wt] = mult
	return mult, nil
}
