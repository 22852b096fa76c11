// Copyright ©2016 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cbservice defines the request/response contract for computing
// conformal blocks bundle invariants as a service: wire-shaped Go structs,
// validation, big-integer-safe reply encoding, and a worker pool that
// amortizes an Algebra's memoization caches across requests for the same
// (family, rank, exactness). No RPC transport is implemented; this package
// is the contract, exercised directly by its own tests.
package cbservice // import "github.com/liegroup/cblocks/cbservice"
