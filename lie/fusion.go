// Copyright ©2016 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lie

import "github.com/liegroup/cblocks/scalar"

// Fusion computes the level-ell fusion product decomposition of the
// irreducible representations with highest weights wt1 and wt2: the tensor
// decomposition folded through the affine Weyl group, discarding terms on
// the ell+1 wall and reflecting the rest into the level-ell alcove. Results
// are memoized on a when the fusion cache is enabled.
func (a *algebra) Fusion(wt1, wt2 Weight, ell int) (Decomposition, error) {
	key := fusionKey{a: wt1, b: wt2, level: ell}
	if a.storeFusion {
		if v, ok := a.fusionCache[key]; ok {
			return v, nil
		}
	}

	tenDecom, err := a.Tensor(wt1, wt2)
	if err != nil {
		return nil, err
	}

	rho := a.Rho()
	rhoLevel := a.Level(rho)
	ret := make(Decomposition)

	for wt, mult := range tenDecom {
		if a.Level(wt) == ell+1 {
			continue
		}
		wtRho := AddWeight(wt, rho)
		newWeight, parity := a.ops.reflectToAlcoveParity(wtRho, ell+rhoLevel+1)
		levEllWeight := SubWeight(newWeight, rho)
		if !levEllWeight.IsDominant() || a.Level(levEllWeight) > ell {
			continue
		}
		contrib := mult
		if parity < 0 {
			contrib = scalar.NegInt(contrib)
		}
		ret[levEllWeight] = scalar.AddInt(ret[levEllWeight], contrib)
	}

	if a.storeFusion {
		a.fusionCache[key] = ret
	}
	return ret, nil
}

// MultiFusion computes the fusion product of a sequence of representations
// at the given level, folding pairwise fusion left-to-right from the end of
// wts, matching the associative-fold definition of the multi-point fusion
// product.
func (a *algebra) MultiFusion(wts []Weight, level int) (Decomposition, error) {
	if len(wts) == 0 {
		return make(Decomposition), nil
	}

	rem := append([]Weight(nil), wts...)
	curWt := rem[len(rem)-1]
	rem = rem[:len(rem)-1]

	wtDict := Decomposition{curWt: scalar.IntFromInt64(1)}

	for len(rem) > 0 {
		curWt = rem[len(rem)-1]
		rem = rem[:len(rem)-1]

		newWtDict := make(Decomposition)
		for wt, coeff := range wtDict {
			prod, err := a.Fusion(curWt, wt, level)
			if err != nil {
				return nil, err
			}
			for wt2, m := range prod {
				newWtDict[wt2] = scalar.AddInt(newWtDict[wt2], scalar.MulInt(coeff, m))
			}
		}
		wtDict = newWtDict
	}
	return wtDict, nil
}
