// Copyright ©2016 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cbservice

import (
	"github.com/liegroup/cblocks/bundle"
	"github.com/liegroup/cblocks/lie"
)

// ComputeRank computes the rank of the conformal blocks bundle named by
// req, using the pooled Algebra for req.Algebra.
func (p *Pool) ComputeRank(req ConformalBlocksRequest) (IntReply, *Error) {
	level, verr := validateLevel(req.Level)
	if verr != nil {
		return IntReply{}, verr
	}

	var reply IntReply
	err := p.withAlgebra(req.Algebra, true, func(alg lie.Algebra) error {
		weights, verr := validateWeights(alg, req.Weights, level)
		if verr != nil {
			return verr
		}
		b, err := bundle.New(alg, weights, level)
		if err != nil {
			return err
		}
		rank, err := b.Rank()
		if err != nil {
			return err
		}
		reply = encodeInt(rank)
		return nil
	})
	return reply, asError(err)
}

// SymComputeRank computes the rank of the symmetric conformal blocks bundle
// named by req: req.Weight replicated req.NumPoints times.
func (p *Pool) SymComputeRank(req SymConformalBlocksRequest) (IntReply, *Error) {
	level, verr := validateLevel(req.Level)
	if verr != nil {
		return IntReply{}, verr
	}
	if req.NumPoints < 3 {
		return IntReply{}, &Error{Kind: InvalidBundle, Err: bundle.ErrTooFewPoints}
	}

	var reply IntReply
	err := p.withAlgebra(req.Algebra, true, func(alg lie.Algebra) error {
		wt, verr := validateWeight(alg, req.Weight, level)
		if verr != nil {
			return verr
		}
		sb, err := bundle.NewSymmetric(alg, wt, int(req.NumPoints), level)
		if err != nil {
			return err
		}
		rank, err := sb.Rank()
		if err != nil {
			return err
		}
		reply = encodeInt(rank)
		return nil
	})
	return reply, asError(err)
}

// SymComputeDivisor computes the symmetrized divisor of the symmetric
// conformal blocks bundle named by req.
func (p *Pool) SymComputeDivisor(req SymConformalBlocksRequest) (VectorReply, *Error) {
	level, verr := validateLevel(req.Level)
	if verr != nil {
		return VectorReply{}, verr
	}
	if req.NumPoints < 3 {
		return VectorReply{}, &Error{Kind: InvalidBundle, Err: bundle.ErrTooFewPoints}
	}

	var reply VectorReply
	err := p.withAlgebra(req.Algebra, true, func(alg lie.Algebra) error {
		wt, verr := validateWeight(alg, req.Weight, level)
		if verr != nil {
			return verr
		}
		sb, err := bundle.NewSymmetric(alg, wt, int(req.NumPoints), level)
		if err != nil {
			return err
		}
		divisor, err := sb.SymmetrizedDivisor()
		if err != nil {
			return err
		}
		reply = encodeVector(divisor)
		return nil
	})
	return reply, asError(err)
}

// validateWeights validates every weight in ws against alg and level,
// converting them to lie.Weight in the same order.
func validateWeights(alg lie.Algebra, ws []Weight, level int) ([]lie.Weight, *Error) {
	out := make([]lie.Weight, len(ws))
	for i, w := range ws {
		lw, verr := validateWeight(alg, w, level)
		if verr != nil {
			return nil, verr
		}
		out[i] = lw
	}
	return out, nil
}

// asError converts an error returned from inside a withAlgebra closure back
// into an *Error: an already-classified *Error is returned as is, and any
// other error is passed through classify.
func asError(err error) *Error {
	if err == nil {
		return nil
	}
	if e, ok := err.(*Error); ok {
		return e
	}
	return classify(err)
}
