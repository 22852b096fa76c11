// Copyright ©2016 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cbservice

import (
	"sync"

	"github.com/liegroup/cblocks/lie"
)

// poolKey identifies an Algebra configuration worth sharing across
// requests: its memoization caches (rep-dimension, fusion) only pay off
// when repeated requests hit the same family, rank and numeric mode.
type poolKey struct {
	family lie.Family
	rank   int
	exact  bool
}

// entry pairs a pooled Algebra with the mutex that serializes access to it.
// An Algebra's caches are insert-only maps with no internal locking, so
// every request against a pooled instance must hold entry.mu for as long as
// it calls into the algebra.
type entry struct {
	mu  sync.Mutex
	alg lie.Algebra
}

// Pool amortizes Algebra construction and memoization across requests that
// share a (family, rank, exactness) configuration. A Pool is safe for
// concurrent use; requests against distinct keys proceed concurrently, and
// requests against the same key are serialized.
type Pool struct {
	mu      sync.Mutex
	entries map[poolKey]*entry
}

// NewPool returns an empty Pool.
func NewPool() *Pool {
	return &Pool{entries: make(map[poolKey]*entry)}
}

// get returns the entry for key, constructing one if this is the first
// request to see it.
func (p *Pool) get(key poolKey) (*entry, error) {
	p.mu.Lock()
	e, ok := p.entries[key]
	if !ok {
		alg, err := lie.New(key.family, key.rank, lie.WithExact(key.exact))
		if err != nil {
			p.mu.Unlock()
			return nil, err
		}
		e = &entry{alg: alg}
		p.entries[key] = e
	}
	p.mu.Unlock()
	return e, nil
}

// withAlgebra runs fn against the pooled Algebra for ref, holding that
// algebra's entry lock for fn's duration so the caches it mutates are never
// touched concurrently.
func (p *Pool) withAlgebra(ref LieAlgebraRef, exact bool, fn func(lie.Algebra) error) error {
	e, err := p.get(poolKey{family: ref.Type, rank: int(ref.Rank), exact: exact})
	if err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.alg)
}
