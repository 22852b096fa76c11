// Copyright ©2018 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scalar provides the exact-or-floating numeric abstraction used
// throughout the representation-theory kernel: every arithmetic path in the
// kernel is written once against Number and Int, and the caller chooses at
// construction time whether intermediate scalars are exact rationals or
// float64 approximations.
package scalar // import "github.com/liegroup/cblocks/scalar"
