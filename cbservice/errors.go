// Copyright ©2016 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cbservice

import (
	"errors"
	"fmt"

	"github.com/liegroup/cblocks/bundle"
	"github.com/liegroup/cblocks/lie"
)

// ErrorKind classifies a service-level failure into the status code a
// transport would surface to a caller.
type ErrorKind int

const (
	// Internal signals an arithmetic invariant was violated — a bug in the
	// kernel, not a client mistake. There is no recovery.
	Internal ErrorKind = iota
	// InvalidAlgebra signals an unknown family or an out-of-range rank.
	InvalidAlgebra
	// InvalidWeight signals a negative coordinate, a length mismatch against
	// the algebra's rank, or a weight whose level exceeds the request level.
	InvalidWeight
	// InvalidBundle signals fewer than three points or a non-positive level.
	InvalidBundle
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidAlgebra:
		return "InvalidAlgebra"
	case InvalidWeight:
		return "InvalidWeight"
	case InvalidBundle:
		return "InvalidBundle"
	default:
		return "Internal"
	}
}

// ErrWeightLevel is the cause recorded when a request weight's level
// exceeds the request level.
var ErrWeightLevel = errors.New("cbservice: weight level exceeds request level")

// Error is a service-boundary error: a classification plus the underlying
// cause from the lie or bundle package, if any.
type Error struct {
	Kind ErrorKind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return "cbservice: " + e.Kind.String()
	}
	return fmt.Sprintf("cbservice: %s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// classify maps a sentinel error from lie or bundle onto the ErrorKind a
// caller at the service boundary should see. Errors that are not recognized
// sentinels are classified Internal.
func classify(err error) *Error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, lie.ErrInvalidAlgebra):
		return &Error{Kind: InvalidAlgebra, Err: err}
	case errors.Is(err, lie.ErrWrongLength), errors.Is(err, lie.ErrNotDominant), errors.Is(err, lie.ErrRankTooLarge):
		return &Error{Kind: InvalidWeight, Err: err}
	case errors.Is(err, bundle.ErrTooFewPoints), errors.Is(err, bundle.ErrInvalidLevel), errors.Is(err, bundle.ErrRequiresExact):
		return &Error{Kind: InvalidBundle, Err: err}
	case errors.Is(err, lie.ErrInternal), errors.Is(err, bundle.ErrInternal):
		return &Error{Kind: Internal, Err: err}
	default:
		return &Error{Kind: Internal, Err: err}
	}
}
