// Copyright ©2016 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bundle computes invariants of conformal blocks vector bundles on
// the moduli space of stable pointed curves: rank by factorization through
// the fusion product, the symmetrized divisor (general and symmetric-point
// cases), F-curves, and F-curve intersection numbers via Fakhruddin's
// formula for the degree of a four-point bundle.
package bundle // import "github.com/liegroup/cblocks/bundle"
