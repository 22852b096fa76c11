// Copyright ©2016 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lie implements the representation theory of the four classical
// families of simple Lie algebras (A, B, C, D): weights and roots in the
// fundamental-weight basis, the Killing form and its derived invariants,
// Weyl-orbit enumeration, Weyl's dimension formula, Freudenthal's recursion
// for dominant characters, tensor-product decomposition via Brauer-Klimyk,
// and the fusion product obtained by folding tensor decomposition through
// the affine Weyl group at a fixed level.
package lie // import "github.com/liegroup/cblocks/lie"
