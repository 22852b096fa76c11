// Copyright ©2016 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lie

import "github.com/liegroup/cblocks/scalar"

// typeD implements familyOps for the D_r family (so(2r)).
type typeD struct {
	rank  int
	exact bool
}

func (t *typeD) family() Family { return D }
func (t *typeD) rnk() int       { return t.rank }
func (t *typeD) isExact() bool  { return t.exact }

func (t *typeD) fundsToEps(w Weight) epsCoords {
	n := t.rank
	e := make(epsCoords, n)
	two := scalar.FromInt64(t.exact, 2)
	cn1 := scalar.FromInt64(t.exact, int64(w.At(n-2)))
	cn := scalar.FromInt64(t.exact, int64(w.At(n-1)))
	e[n-1] = scalar.Quo(scalar.Sub(cn, cn1), two)
	e[n-2] = scalar.Quo(scalar.Add(cn1, cn), two)
	part := e[n-2]
	for i := n - 3; i >= 0; i-- {
		part = scalar.Add(part, scalar.FromInt64(t.exact, int64(w.At(i))))
		e[i] = part
	}
	return e
}

func (t *typeD) epsToFunds(e epsCoords) Weight {
	n := len(e)
	coords := make([]int, n)
	for i := 0; i < n-2; i++ {
		coords[i] = int(scalar.Sub(e[i], e[i+1]).Round().Int64())
	}
	coords[n-2] = int(scalar.Sub(e[n-2], e[n-1]).Round().Int64())
	coords[n-1] = int(scalar.Add(e[n-2], e[n-1]).Round().Int64())
	w, _ := NewWeight(coords...)
	return w
}

func (t *typeD) killingForm(wt1, wt2 Weight) scalar.Number {
	e1 := t.fundsToEps(wt1)
	e2 := t.fundsToEps(wt2)
	ret := scalar.Zero(t.exact)
	for i := range e1 {
		ret = scalar.Add(ret, scalar.Mul(e1[i], e2[i]))
	}
	return ret
}

func (t *typeD) dualCoxeter() int { return 2*t.rank - 2 }

func (t *typeD) levelOf(w Weight) int {
	n := w.Len()
	ret := w.At(0)
	for i := 1; i < n-2; i++ {
		ret += 2 * w.At(i)
	}
	ret += w.At(n-2) + w.At(n-1)
	return ret
}

func (t *typeD) dualWeightOf(w Weight) Weight {
	if t.rank%2 == 0 {
		return w
	}
	n := w.Len()
	coords := w.Coords()
	coords[n-2], coords[n-1] = coords[n-1], coords[n-2]
	wt, _ := NewWeight(coords...)
	return wt
}

func (t *typeD) computePositiveRoots() []root {
	n := t.rank
	coords := make([]int, n)
	var roots []root

	for i := 0; i < n-2; i++ {
		for j := i; j < n-2; j++ {
			coords[j] = 1
			roots = append(roots, t.newRoot(coords))
		}
		coords[n-2] = 1
		roots = append(roots, t.newRoot(coords))
		coords[n-2] = 0
		coords[n-1] = 1
		roots = append(roots, t.newRoot(coords))

		for j := i; j < n; j++ {
			coords[j] = 0
		}
	}

	coords[n-2] = 1
	roots = append(roots, t.newRoot(coords))
	coords[n-2] = 0
	coords[n-1] = 1
	roots = append(roots, t.newRoot(coords))
	coords[n-2] = 1

	for i := n - 3; i >= 0; i-- {
		for j := i; j >= 0; j-- {
			coords[j] = 1
			roots = append(roots, t.newRoot(coords))
		}
		for j := i; j >= 0; j-- {
			coords[j] = 0
		}
		coords[i] = 2
	}

	return roots
}

func (t *typeD) newRoot(coords []int) root {
	simple := append([]int(nil), coords...)
	n := len(coords)
	var fund []int
	if t.rank == 3 {
		fund = []int{
			2*coords[n-3] - coords[n-2] - coords[n-1],
			-coords[n-3] + 2*coords[n-2],
			-coords[n-3] + 2*coords[n-1],
		}
	} else {
		fund = make([]int, n)
		fund[0] = 2*coords[0] - coords[1]
		for i := 1; i < n-3; i++ {
			fund[i] = -coords[i-1] + 2*coords[i] - coords[i+1]
		}
		fund[n-3] = -coords[n-4] + 2*coords[n-3] - coords[n-2] - coords[n-1]
		fund[n-2] = -coords[n-3] + 2*coords[n-2]
		fund[n-1] = -coords[n-3] + 2*coords[n-1]
	}
	w, _ := NewWeight(fund...)
	return root{simple: simple, wt: w}
}

func (t *typeD) weightsOfLevel(level int) []Weight {
	var out [][]int
	for i := 0; i <= level; i++ {
		for j := 0; j <= level-i; j++ {
			for _, coord := range dWeightsRec(level-i-j, t.rank-2) {
				out = append(out, append(append([]int(nil), coord...), i, j))
			}
		}
	}
	ws := make([]Weight, len(out))
	for k, c := range out {
		ws[k], _ = NewWeight(c...)
	}
	return ws
}

func dWeightsRec(level, rank int) [][]int {
	if rank == 1 {
		out := make([][]int, 0, level+1)
		for i := 0; i <= level; i++ {
			out = append(out, []int{i})
		}
		return out
	}
	var out [][]int
	for _, coord := range dWeightsRec(level, rank-1) {
		rest := 0
		for _, c := range coord[1:] {
			rest += c
		}
		bound := (level-coord[0]-2*rest)/2 + 1
		for i := 0; i < bound; i++ {
			out = append(out, append(append([]int(nil), coord...), i))
		}
	}
	return out
}

// reflectEpsToChamberParity makes every entry of e non-negative except
// possibly the last (smallest) one, which absorbs the accumulated sign, then
// sorts descending. It returns only the sort's permutation parity: an even
// number of coordinate sign changes always has determinant +1 in the D_n
// Weyl group, so the sign-change step never contributes to parity.
func reflectEpsToChamberParity(e epsCoords) int {
	sign := 1
	for i := range e {
		if e[i].Sign() < 0 {
			e[i] = scalar.Neg(e[i])
			sign *= -1
		}
	}
	parity := insertionSortDesc(e)
	e[len(e)-1] = scalar.Mul(e[len(e)-1], scalar.FromInt64(e[0].Exact(), int64(sign)))
	return parity
}

func (t *typeD) reflectToChamber(w Weight) Weight {
	e := t.fundsToEps(w)
	reflectEpsToChamberParity(e)
	return t.epsToFunds(e)
}

func (t *typeD) reflectToChamberParity(w Weight) (Weight, int) {
	e := t.fundsToEps(w)
	parity := reflectEpsToChamberParity(e)
	return t.epsToFunds(e), parity
}

func (t *typeD) reflectToAlcoveParity(w Weight, ell int) (Weight, int) {
	e := t.fundsToEps(w)
	parity := reflectEpsToChamberParity(e)
	ellN := scalar.FromInt64(t.exact, int64(ell))
	for scalar.Cmp(scalar.Add(e[0], e[1]), ellN) > 0 {
		e0, e1 := e[0], e[1]
		e[0] = scalar.Sub(ellN, e1)
		e[1] = scalar.Sub(ellN, e0)

		chamberParity := reflectEpsToChamberParity(e)
		parity *= -1 * chamberParity
	}
	return t.epsToFunds(e), parity
}

func (t *typeD) newOrbit(w Weight) *Orbit {
	dom := t.reflectToChamber(w)
	e := t.fundsToEps(dom)
	mode := signModeEven
	if e[len(e)-1].IsZero() {
		mode = signModeAll
	}
	return newOrbit(t, e, mode)
}
