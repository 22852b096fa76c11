// Copyright ©2016 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lie

import "github.com/liegroup/cblocks/scalar"

// typeB implements familyOps for the B_r family (so(2r+1)).
type typeB struct {
	rank  int
	exact bool
}

func (t *typeB) family() Family { return B }
func (t *typeB) rnk() int       { return t.rank }
func (t *typeB) isExact() bool  { return t.exact }

func (t *typeB) fundsToEps(w Weight) epsCoords {
	n := t.rank
	e := make(epsCoords, n)
	part := scalar.Quo(scalar.FromInt64(t.exact, int64(w.At(n-1))), scalar.FromInt64(t.exact, 2))
	e[n-1] = part
	for i := n - 2; i >= 0; i-- {
		part = scalar.Add(part, scalar.FromInt64(t.exact, int64(w.At(i))))
		e[i] = part
	}
	return e
}

func (t *typeB) epsToFunds(e epsCoords) Weight {
	n := len(e)
	coords := make([]int, n)
	for i := 0; i < n-1; i++ {
		coords[i] = int(scalar.Sub(e[i], e[i+1]).Round().Int64())
	}
	coords[n-1] = int(scalar.Mul(e[n-1], scalar.FromInt64(t.exact, 2)).Round().Int64())
	w, _ := NewWeight(coords...)
	return w
}

func (t *typeB) killingForm(wt1, wt2 Weight) scalar.Number {
	e1 := t.fundsToEps(wt1)
	e2 := t.fundsToEps(wt2)
	ret := scalar.Zero(t.exact)
	for i := range e1 {
		ret = scalar.Add(ret, scalar.Mul(e1[i], e2[i]))
	}
	return ret
}

func (t *typeB) dualCoxeter() int { return 2*t.rank - 1 }

func (t *typeB) levelOf(w Weight) int {
	n := w.Len()
	if n == 2 {
		return w.At(0) + w.At(1)
	}
	ret := w.At(0) + w.At(n-1)
	for i := 1; i < n-1; i++ {
		ret += 2 * w.At(i)
	}
	return ret
}

func (t *typeB) dualWeightOf(w Weight) Weight { return w }

func (t *typeB) computePositiveRoots() []root {
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
	for i := n - 1; i > 0; i-- {
		coords[i] = 2
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

func (t *typeB) newRoot(coords []int) root {
	simple := append([]int(nil), coords...)
	n := len(coords)
	var fund []int
	if n == 2 {
		fund = []int{2*coords[0] - coords[1], -2*coords[0] + 2*coords[1]}
	} else {
		fund = make([]int, n)
		fund[0] = 2*coords[0] - coords[1]
		for i := 1; i < n-1; i++ {
			fund[i] = 2*coords[i] - coords[i+1] - coords[i-1]
		}
		fund[n-1] = 2*coords[n-1] - 2*coords[n-2]
	}
	w, _ := NewWeight(fund...)
	return root{simple: simple, wt: w}
}

func (t *typeB) weightsOfLevel(level int) []Weight {
	var out [][]int
	for a1 := 0; a1 <= level; a1++ {
		for _, rest := range bWeightsRec(level-a1, t.rank-1) {
			out = append(out, append([]int{a1}, rest...))
		}
	}
	ws := make([]Weight, len(out))
	for i, c := range out {
		ws[i], _ = NewWeight(c...)
	}
	return ws
}

func bWeightsRec(level, rank int) [][]int {
	if rank == 1 {
		out := make([][]int, 0, level+1)
		for i := 0; i <= level; i++ {
			out = append(out, []int{i})
		}
		return out
	}
	var out [][]int
	for ai := 0; ai <= level/2; ai++ {
		for _, rest := range bWeightsRec(level-2*ai, rank-1) {
			out = append(out, append([]int{ai}, rest...))
		}
	}
	return out
}

func (t *typeB) reflectToChamber(w Weight) Weight {
	e := t.fundsToEps(w)
	absWithParity(e)
	insertionSortDesc(e)
	return t.epsToFunds(e)
}

func (t *typeB) reflectToChamberParity(w Weight) (Weight, int) {
	e := t.fundsToEps(w)
	parity := absWithParity(e)
	parity *= insertionSortDesc(e)
	return t.epsToFunds(e), parity
}

func (t *typeB) reflectToAlcoveParity(w Weight, ell int) (Weight, int) {
	e := t.fundsToEps(w)
	parity := insertionSortDesc(e)
	ellN := scalar.FromInt64(t.exact, int64(ell))
	for scalar.Cmp(scalar.Add(e[0], e[1]), ellN) > 0 {
		e0, e1 := e[0], e[1]
		e[0] = scalar.Sub(ellN, e1)
		e[1] = scalar.Sub(ellN, e0)

		finParity := -1
		finParity *= absWithParity(e)
		finParity *= insertionSortDesc(e)
		parity *= finParity
	}
	return t.epsToFunds(e), parity
}

func (t *typeB) newOrbit(w Weight) *Orbit {
	dom := t.reflectToChamber(w)
	e := t.fundsToEps(dom)
	return newOrbit(t, e, signModeAll)
}
