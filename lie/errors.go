// Copyright ©2014 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lie

import "errors"

// ErrRankTooLarge is returned by NewWeight when more coordinates are
// supplied than the inline Weight capacity allows.
var ErrRankTooLarge = errors.New("lie: rank exceeds maximum supported weight length")

// ErrInvalidAlgebra is returned by New when the family is unrecognized or
// the rank is out of the family's valid range.
var ErrInvalidAlgebra = errors.New("lie: invalid algebra family or rank")

// ErrWrongLength is returned when a Weight's length does not match the
// rank of the algebra operating on it.
var ErrWrongLength = errors.New("lie: weight length does not match algebra rank")

// ErrNotDominant is returned when an operation that requires a dominant
// weight is given one that is not.
var ErrNotDominant = errors.New("lie: weight is not dominant")

// ErrInternal signals that an arithmetic invariant of the kernel was
// violated — e.g. a Freudenthal recursion denominator of zero outside the
// expected diagonal, or a non-integral result in exact mode where
// integrality is guaranteed by construction. These indicate a bug in the
// kernel, not a recoverable input error.
var ErrInternal = errors.New("lie: internal invariant violated")
