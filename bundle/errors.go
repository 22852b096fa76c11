// Copyright ©2016 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bundle

import "errors"

// ErrTooFewPoints is returned by New when fewer than three weights are
// supplied; a conformal blocks bundle is only defined for three or more
// marked points.
var ErrTooFewPoints = errors.New("bundle: fewer than three weights")

// ErrInvalidLevel is returned by New when level is less than one.
var ErrInvalidLevel = errors.New("bundle: level must be positive")

// ErrRequiresExact is returned by operations that only make sense against
// exact rational arithmetic, such as clearing denominators to find a
// normalized divisor ray.
var ErrRequiresExact = errors.New("bundle: operation requires an exact-mode algebra")

// ErrInternal signals that an arithmetic invariant was violated, such as a
// four-point bundle degree that failed to come out integral.
var ErrInternal = errors.New("bundle: internal invariant violated")
