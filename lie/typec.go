// Copyright ©2016 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lie

import "github.com/liegroup/cblocks/scalar"

// typeC implements familyOps for the C_r family (sp(2r)).
type typeC struct {
	rank  int
	exact bool
}

func (t *typeC) family() Family { return C }
func (t *typeC) rnk() int       { return t.rank }
func (t *typeC) isExact() bool  { return t.exact }

func (t *typeC) fundsToEps(w Weight) epsCoords {
	n := t.rank
	e := make(epsCoords, n)
	part := scalar.Zero(t.exact)
	for i := n - 1; i >= 0; i-- {
		part = scalar.Add(part, scalar.FromInt64(t.exact, int64(w.At(i))))
		e[i] = part
	}
	return e
}

func (t *typeC) epsToFunds(e epsCoords) Weight {
	n := len(e)
	coords := make([]int, n)
	for i := 0; i < n-1; i++ {
		coords[i] = int(scalar.Sub(e[i], e[i+1]).Round().Int64())
	}
	coords[n-1] = int(e[n-1].Round().Int64())
	w, _ := NewWeight(coords...)
	return w
}

func (t *typeC) killingForm(wt1, wt2 Weight) scalar.Number {
	e1 := t.fundsToEps(wt1)
	e2 := t.fundsToEps(wt2)
	ret := scalar.Zero(t.exact)
	for i := range e1 {
		ret = scalar.Add(ret, scalar.Mul(e1[i], e2[i]))
	}
	return scalar.Quo(ret, scalar.FromInt64(t.exact, 2))
}

func (t *typeC) dualCoxeter() int { return t.rank + 1 }

func (t *typeC) levelOf(w Weight) int {
	s := 0
	for i := 0; i < w.Len(); i++ {
		s += w.At(i)
	}
	return s
}

func (t *typeC) dualWeightOf(w Weight) Weight { return w }

func (t *typeC) computePositiveRoots() []root {
	n := t.rank
	coords := make([]int, n)
	var roots []root
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			coords[j] = 1
			roots = append(roots, t.newRoot(coords))
		}
		for j := i; j < n; j++ {
			coords[j] = 0
		}
	}
	coords[n-1] = 1
	for i := n - 2; i >= 0; i-- {
		coords[i] = 2
		roots = append(roots, t.newRoot(coords))
		for j := i - 1; j >= 0; j-- {
			coords[j] = 1
			roots = append(roots, t.newRoot(coords))
		}
		for j := i - 1; j >= 0; j-- {
			coords[j] = 0
		}
	}
	return roots
}

func (t *typeC) newRoot(coords []int) root {
	simple := append([]int(nil), coords...)
	n := len(coords)
	var fund []int
	if n == 2 {
		fund = []int{2*coords[0] - 2*coords[1], -coords[0] + 2*coords[1]}
	} else {
		fund = make([]int, n)
		fund[0] = 2*coords[0] - coords[1]
		for i := 1; i < n-2; i++ {
			fund[i] = 2*coords[i] - coords[i+1] - coords[i-1]
		}
		fund[n-2] = 2*coords[n-2] - 2*coords[n-1] - coords[n-3]
		fund[n-1] = 2*coords[n-1] - coords[n-2]
	}
	w, _ := NewWeight(fund...)
	return root{simple: simple, wt: w}
}

func (t *typeC) weightsOfLevel(level int) []Weight {
	raw := cWeightsRec(level, t.rank)
	ws := make([]Weight, len(raw))
	for i, c := range raw {
		ws[i], _ = NewWeight(c...)
	}
	return ws
}

func cWeightsRec(level, rank int) [][]int {
	if rank == 0 {
		return [][]int{{}}
	}
	var out [][]int
	for _, coord := range cWeightsRec(level, rank-1) {
		s := 0
		for _, c := range coord {
			s += c
		}
		for i := 0; i <= level-s; i++ {
			out = append(out, append(append([]int(nil), coord...), i))
		}
	}
	return out
}

func (t *typeC) reflectToChamber(w Weight) Weight {
	e := t.fundsToEps(w)
	absWithParity(e)
	insertionSortDesc(e)
	return t.epsToFunds(e)
}

func (t *typeC) reflectToChamberParity(w Weight) (Weight, int) {
	e := t.fundsToEps(w)
	parity := absWithParity(e)
	parity *= insertionSortDesc(e)
	return t.epsToFunds(e), parity
}

func (t *typeC) reflectToAlcoveParity(w Weight, ell int) (Weight, int) {
	e := t.fundsToEps(w)
	parity := insertionSortDesc(e)
	ellN := scalar.FromInt64(t.exact, int64(ell))
	for scalar.Cmp(e[0], ellN) > 0 {
		e[0] = scalar.Sub(scalar.Mul(scalar.FromInt64(t.exact, 2), ellN), e[0])

		finParity := -1
		finParity *= absWithParity(e)
		finParity *= insertionSortDesc(e)
		parity *= finParity
	}
	return t.epsToFunds(e), parity
}

func (t *typeC) newOrbit(w Weight) *Orbit {
	dom := t.reflectToChamber(w)
	e := t.fundsToEps(dom)
	return newOrbit(t, e, signModeAll)
}
