// Copyright ©2016 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cbservice

import (
	"github.com/liegroup/cblocks/bundle"
	"github.com/liegroup/cblocks/lie"
)

// validateWeight converts a wire Weight against alg and checks it is
// dominant (non-negative coordinates), of the algebra's rank, and of level
// no greater than ell.
func validateWeight(alg lie.Algebra, w Weight, ell int) (lie.Weight, *Error) {
	lw, err := w.toLie()
	if err != nil {
		return lie.Weight{}, classify(err)
	}
	if lw.Len() != alg.Rank() {
		return lie.Weight{}, &Error{Kind: InvalidWeight, Err: lie.ErrWrongLength}
	}
	if !lw.IsDominant() {
		return lie.Weight{}, &Error{Kind: InvalidWeight, Err: lie.ErrNotDominant}
	}
	if alg.Level(lw) > ell {
		return lie.Weight{}, &Error{Kind: InvalidWeight, Err: ErrWeightLevel}
	}
	return lw, nil
}

// validateLevel checks that level is positive; rank/family validity is
// deferred to Algebra construction, so this only checks the level shared by
// every request shape.
func validateLevel(level uint32) (int, *Error) {
	if level < 1 {
		return 0, &Error{Kind: InvalidBundle, Err: bundle.ErrInvalidLevel}
	}
	return int(level), nil
}
