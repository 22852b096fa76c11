// Copyright ©2016 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lie

import "github.com/liegroup/cblocks/scalar"

// Tensor computes the decomposition of the tensor product of the
// irreducible representations with highest weights wt1 and wt2, via the
// Brauer-Klimyk/Racah formula: traverse the Weyl orbit of every weight in
// the smaller representation's dominant character, reflecting each shifted
// sum back into the dominant chamber and accumulating signed multiplicities.
func (a *algebra) Tensor(wt1, wt2 Weight) (Decomposition, error) {
	d1, err := a.Dim(wt1)
	if err != nil {
		return nil, err
	}
	d2, err := a.Dim(wt2)
	if err != nil {
		return nil, err
	}
	if scalar.Cmp(d1, d2) < 0 {
		wt1, wt2 = wt2, wt1
	}

	rho := a.Rho()
	domChar, err := a.DominantCharacter(wt2)
	if err != nil {
		return nil, err
	}
	lamRhoSum := AddWeight(wt1, rho)

	ret := make(Decomposition)
	for domWeight, mult := range domChar {
		orb := a.Orbit(domWeight)
		for orb.Next() {
			newSum := AddWeight(lamRhoSum, orb.Weight())
			newDomWeight, parity := a.ops.reflectToChamberParity(newSum)
			newDomWeight = SubWeight(newDomWeight, rho)
			if !newDomWeight.IsDominant() {
				continue
			}
			contrib := mult
			if parity < 0 {
				contrib = scalar.NegInt(contrib)
			}
			ret[newDomWeight] = scalar.AddInt(ret[newDomWeight], contrib)
		}
	}
	return ret, nil
}
