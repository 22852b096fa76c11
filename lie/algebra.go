// Copyright ©2016 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lie

import "github.com/liegroup/cblocks/scalar"

// Family names one of the four classical simple Lie algebra families.
type Family int

const (
	A Family = iota
	B
	C
	D
)

func (f Family) String() string {
	switch f {
	case A:
		return "A"
	case B:
		return "B"
	case C:
		return "C"
	case D:
		return "D"
	default:
		return "unknown"
	}
}

// minRank is the smallest valid rank for each family.
func minRank(f Family) int {
	switch f {
	case A:
		return 1
	case B, C:
		return 2
	case D:
		return 3
	default:
		return -1
	}
}

// Option configures an Algebra at construction time.
type Option func(*config)

type config struct {
	storeFusion bool
	exact       bool
}

// WithFusionCache enables or disables the fusion memoization cache. An
// algebra with caching disabled is suitable for one-shot use; one with
// caching enabled amortizes cost across repeated requests at the expense of
// unbounded (for the lifetime of the instance) memory growth.
func WithFusionCache(enabled bool) Option {
	return func(c *config) { c.storeFusion = enabled }
}

// WithExact selects exact rational arithmetic (the default) or float64
// arithmetic for every Number computed by the algebra.
func WithExact(exact bool) Option {
	return func(c *config) { c.exact = exact }
}

// familyOps is the small set of primitives that differ across the four
// classical families. The representation-theoretic algorithms in
// character.go, tensor.go and fusion.go are written once, against this
// interface, and shared by every family.
type familyOps interface {
	family() Family
	rnk() int
	isExact() bool

	killingForm(a, b Weight) scalar.Number
	dualCoxeter() int
	levelOf(w Weight) int
	dualWeightOf(w Weight) Weight
	computePositiveRoots() []root
	weightsOfLevel(level int) []Weight

	reflectToChamber(w Weight) Weight
	reflectToChamberParity(w Weight) (Weight, int)
	reflectToAlcoveParity(w Weight, ell int) (Weight, int)

	fundsToEps(w Weight) epsCoords
	epsToFunds(e epsCoords) Weight

	newOrbit(dominant Weight) *Orbit
}

// Algebra is a simple Lie algebra of one of the four classical families,
// together with its memoization caches. An Algebra instance is not safe
// for concurrent use: every method may mutate the insert-only rep-dimension
// and fusion caches, so interleaved calls from multiple goroutines require
// external serialization (see cbservice.Pool).
type Algebra interface {
	Family() Family
	Rank() int
	Exact() bool

	KillingForm(a, b Weight) scalar.Number
	CasimirScalar(w Weight) scalar.Number
	DualCoxeter() int
	Level(w Weight) int
	DualWeight(w Weight) Weight
	Rho() Weight

	Weights(level int) []Weight
	ReflectToChamber(w Weight) Weight
	ReflectToChamberParity(w Weight) (Weight, int)
	ReflectToAlcoveParity(w Weight, ell int) (Weight, int)
	Orbit(w Weight) *Orbit

	Dim(w Weight) (scalar.Number, error)
	DominantCharacter(w Weight) (Character, error)
	Tensor(a, b Weight) (Decomposition, error)
	Fusion(a, b Weight, level int) (Decomposition, error)
	MultiFusion(ws []Weight, level int) (Decomposition, error)

	RepDimCacheLen() int
	FusionCacheLen() int
}

// algebra is the common state shared by every family: configuration and
// the three caches described in §3 (pos_roots, rep_dim, fusion). Per-family
// behavior is supplied entirely through ops.
type algebra struct {
	ops         familyOps
	rank        int
	exact       bool
	storeFusion bool

	posRoots []root // lazily computed, never invalidated

	repDim      map[Weight]scalar.Number
	fusionCache map[fusionKey]Decomposition
}

type fusionKey struct {
	a, b  Weight
	level int
}

// New constructs an Algebra of the given family and rank. It returns
// ErrInvalidAlgebra if the family is unrecognized or the rank is below the
// family's minimum (A: ≥1, B/C: ≥2, D: ≥3).
func New(family Family, rank int, opts ...Option) (Algebra, error) {
	if rank < minRank(family) {
		return nil, ErrInvalidAlgebra
	}

	cfg := config{storeFusion: true, exact: true}
	for _, o := range opts {
		o(&cfg)
	}

	var ops familyOps
	switch family {
	case A:
		ops = &typeA{rank: rank, exact: cfg.exact}
	case B:
		ops = &typeB{rank: rank, exact: cfg.exact}
	case C:
		ops = &typeC{rank: rank, exact: cfg.exact}
	case D:
		ops = &typeD{rank: rank, exact: cfg.exact}
	default:
		return nil, ErrInvalidAlgebra
	}

	a := &algebra{
		ops:         ops,
		rank:        rank,
		exact:       cfg.exact,
		storeFusion: cfg.storeFusion,
		repDim:      make(map[Weight]scalar.Number),
	}
	if cfg.storeFusion {
		a.fusionCache = make(map[fusionKey]Decomposition)
	}
	return a, nil
}

func (a *algebra) Family() Family { return a.ops.family() }
func (a *algebra) Rank() int      { return a.rank }
func (a *algebra) Exact() bool    { return a.exact }

func (a *algebra) KillingForm(x, y Weight) scalar.Number { return a.ops.killingForm(x, y) }
func (a *algebra) DualCoxeter() int                      { return a.ops.dualCoxeter() }
func (a *algebra) Level(w Weight) int                    { return a.ops.levelOf(w) }
func (a *algebra) DualWeight(w Weight) Weight            { return a.ops.dualWeightOf(w) }
func (a *algebra) Rho() Weight                           { return rho(a.rank) }

// CasimirScalar returns ⟨w, w+2ρ⟩ under the Killing form.
func (a *algebra) CasimirScalar(w Weight) scalar.Number {
	twoRho := rho(a.rank)
	for i := 0; i < a.rank; i++ {
		twoRho.coords[i] = 2
	}
	return a.ops.killingForm(w, AddWeight(w, twoRho))
}

func (a *algebra) Weights(level int) []Weight { return a.ops.weightsOfLevel(level) }

func (a *algebra) ReflectToChamber(w Weight) Weight { return a.ops.reflectToChamber(w) }

func (a *algebra) ReflectToChamberParity(w Weight) (Weight, int) {
	return a.ops.reflectToChamberParity(w)
}

func (a *algebra) ReflectToAlcoveParity(w Weight, ell int) (Weight, int) {
	return a.ops.reflectToAlcoveParity(w, ell)
}

// Orbit returns a fresh, non-restartable iterator over the Weyl orbit of w.
// w need not already be dominant; the family implementation reflects it
// into the chamber before enumerating.
func (a *algebra) Orbit(w Weight) *Orbit { return a.ops.newOrbit(w) }

func (a *algebra) positiveRoots() []root {
	if a.posRoots == nil {
		a.posRoots = a.ops.computePositiveRoots()
	}
	return a.posRoots
}

func (a *algebra) RepDimCacheLen() int { return len(a.repDim) }
func (a *algebra) FusionCacheLen() int { return len(a.fusionCache) }
