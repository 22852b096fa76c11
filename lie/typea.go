// Copyright ©2016 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lie

import "github.com/liegroup/cblocks/scalar"

// typeA implements familyOps for the A_r family (su(r+1)).
type typeA struct {
	rank  int
	exact bool
}

func (t *typeA) family() Family { return A }
func (t *typeA) rnk() int       { return t.rank }
func (t *typeA) isExact() bool  { return t.exact }

func (t *typeA) fundsToEps(w Weight) epsCoords {
	n := t.rank
	e := make(epsCoords, n+1)
	e[n] = scalar.Zero(t.exact)
	part := scalar.Zero(t.exact)
	for i := n - 1; i >= 0; i-- {
		part = scalar.Add(part, scalar.FromInt64(t.exact, int64(w.At(i))))
		e[i] = part
	}
	return e
}

func (t *typeA) epsToFunds(e epsCoords) Weight {
	n := len(e) - 1
	coords := make([]int, n)
	for i := 0; i < n; i++ {
		coords[i] = int(scalar.Sub(e[i], e[i+1]).Round().Int64())
	}
	w, _ := NewWeight(coords...)
	return w
}

func (t *typeA) killingForm(wt1, wt2 Weight) scalar.Number {
	e1 := t.fundsToEps(wt1)
	e2 := t.fundsToEps(wt2)
	ret := scalar.Zero(t.exact)
	sum1 := scalar.Zero(t.exact)
	sum2 := scalar.Zero(t.exact)
	for i := range e1 {
		ret = scalar.Add(ret, scalar.Mul(e1[i], e2[i]))
		sum1 = scalar.Add(sum1, e1[i])
		sum2 = scalar.Add(sum2, e2[i])
	}
	corr := scalar.Quo(scalar.Mul(sum1, sum2), scalar.FromInt64(t.exact, int64(t.rank+1)))
	return scalar.Sub(ret, corr)
}

func (t *typeA) dualCoxeter() int { return t.rank + 1 }

func (t *typeA) levelOf(w Weight) int {
	s := 0
	for i := 0; i < w.Len(); i++ {
		s += w.At(i)
	}
	return s
}

func (t *typeA) dualWeightOf(w Weight) Weight {
	n := w.Len()
	coords := make([]int, n)
	for i := 0; i < n; i++ {
		coords[i] = w.At(n - 1 - i)
	}
	wt, _ := NewWeight(coords...)
	return wt
}

func (t *typeA) computePositiveRoots() []root {
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
	return roots
}

// newRoot converts simple-root coordinates into a root whose fundamental
// weight is computed via the A-family Cartan-matrix relation.
func (t *typeA) newRoot(coords []int) root {
	simple := append([]int(nil), coords...)
	n := len(coords)
	var fund []int
	if n == 1 {
		fund = []int{2 * coords[0]}
	} else {
		fund = make([]int, n)
		fund[0] = 2*coords[0] - coords[1]
		for i := 1; i < n-1; i++ {
			fund[i] = 2*coords[i] - coords[i+1] - coords[i-1]
		}
		fund[n-1] = 2*coords[n-1] - coords[n-2]
	}
	w, _ := NewWeight(fund...)
	return root{simple: simple, wt: w}
}

func (t *typeA) weightsOfLevel(level int) []Weight {
	raw := aWeightsRec(level, t.rank)
	ws := make([]Weight, len(raw))
	for i, c := range raw {
		ws[i], _ = NewWeight(c...)
	}
	return ws
}

func aWeightsRec(level, rank int) [][]int {
	if rank == 1 {
		out := make([][]int, 0, level+1)
		for i := 0; i <= level; i++ {
			out = append(out, []int{i})
		}
		return out
	}
	var out [][]int
	for _, coord := range aWeightsRec(level, rank-1) {
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

func (t *typeA) reflectToChamber(w Weight) Weight {
	e := t.fundsToEps(w)
	insertionSortDesc(e)
	last := e[len(e)-1]
	for i := range e {
		e[i] = scalar.Sub(e[i], last)
	}
	return t.epsToFunds(e)
}

func (t *typeA) reflectToChamberParity(w Weight) (Weight, int) {
	e := t.fundsToEps(w)
	parity := insertionSortDesc(e)
	last := e[len(e)-1]
	for i := range e {
		e[i] = scalar.Sub(e[i], last)
	}
	return t.epsToFunds(e), parity
}

func (t *typeA) reflectToAlcoveParity(w Weight, ell int) (Weight, int) {
	e := t.fundsToEps(w)
	parity := insertionSortDesc(e)
	normalize := func() {
		last := e[len(e)-1]
		for i := range e {
			e[i] = scalar.Sub(e[i], last)
		}
	}
	normalize()
	ellN := scalar.FromInt64(t.exact, int64(ell))
	for scalar.Cmp(e[0], ellN) > 0 {
		e[len(e)-1] = scalar.Sub(e[0], ellN)
		e[0] = ellN
		finParity := insertionSortDesc(e)
		normalize()
		parity *= -1 * finParity
	}
	return t.epsToFunds(e), parity
}

func (t *typeA) newOrbit(w Weight) *Orbit {
	dom := t.reflectToChamber(w)
	e := t.fundsToEps(dom)
	return newOrbit(t, e, signModeNone)
}
