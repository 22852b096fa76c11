// Copyright ©2016 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bundle

import (
	"testing"

	"github.com/liegroup/cblocks/lie"
	"github.com/liegroup/cblocks/scalar"
)

func mustAlgebra(t *testing.T, f lie.Family, rank int, opts ...lie.Option) lie.Algebra {
	t.Helper()
	a, err := lie.New(f, rank, opts...)
	if err != nil {
		t.Fatalf("lie.New(%v, %d): %v", f, rank, err)
	}
	return a
}

func rankOf(t *testing.T, b *Bundle) int64 {
	t.Helper()
	r, err := b.Rank()
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}
	return r.Int64()
}

func TestRankSymmetryUnderPermutation(t *testing.T) {
	// Rank must not depend on the order of the marked points.
	a := mustAlgebra(t, lie.A, 2)
	w1 := lie.MustWeight(1, 0)
	w2 := lie.MustWeight(0, 1)
	w3 := lie.MustWeight(1, 1)
	level := 3

	orig, err := New(a, []lie.Weight{w1, w2, w3}, level)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	perm, err := New(a, []lie.Weight{w3, w1, w2}, level)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if got, want := rankOf(t, perm), rankOf(t, orig); got != want {
		t.Errorf("permuted rank = %d, want %d", got, want)
	}
}

func TestThreePointRankIsFusionCoefficient(t *testing.T) {
	// Rank([w1, w2, w3], level) = fusion(w1, w2, level)[dual(w3)].
	a := mustAlgebra(t, lie.A, 2)
	w1 := lie.MustWeight(1, 0)
	w2 := lie.MustWeight(0, 1)
	w3 := lie.MustWeight(1, 1)
	level := 3

	b, err := New(a, []lie.Weight{w1, w2, w3}, level)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got := rankOf(t, b)

	prod, err := a.Fusion(w1, w2, level)
	if err != nil {
		t.Fatalf("Fusion: %v", err)
	}
	want := prod[a.DualWeight(w3)].Int64()

	if got != want {
		t.Errorf("Rank = %d, want fusion coefficient %d", got, want)
	}
}

func TestRankViaTensorAtLargeLevel(t *testing.T) {
	// When the level is large enough that fusion coincides with the
	// ordinary tensor product, rank must agree with tensor(w1,w2)[dual(w3)].
	a := mustAlgebra(t, lie.A, 2)
	w1 := lie.MustWeight(1, 0)
	w2 := lie.MustWeight(0, 1)
	w3 := lie.MustWeight(1, 1)
	level := 100

	b, err := New(a, []lie.Weight{w1, w2, w3}, level)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got := rankOf(t, b)

	ten, err := a.Tensor(w1, w2)
	if err != nil {
		t.Fatalf("Tensor: %v", err)
	}
	want := ten[a.DualWeight(w3)].Int64()

	if got != want {
		t.Errorf("Rank at large level = %d, want tensor coefficient %d", got, want)
	}
}

func TestNewRejectsTooFewPoints(t *testing.T) {
	a := mustAlgebra(t, lie.A, 1)
	w := lie.MustWeight(0)
	if _, err := New(a, []lie.Weight{w, w}, 1); err != ErrTooFewPoints {
		t.Errorf("New with 2 weights: got err %v, want ErrTooFewPoints", err)
	}
}

func TestNewRejectsInvalidLevel(t *testing.T) {
	a := mustAlgebra(t, lie.A, 1)
	w := lie.MustWeight(0)
	if _, err := New(a, []lie.Weight{w, w, w}, 0); err != ErrInvalidLevel {
		t.Errorf("New with level 0: got err %v, want ErrInvalidLevel", err)
	}
}

func TestFCurvesEmptyForThreePoints(t *testing.T) {
	a := mustAlgebra(t, lie.A, 1)
	w := lie.MustWeight(0)
	b, err := New(a, []lie.Weight{w, w, w}, 1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := b.FCurves(); got != nil {
		t.Errorf("FCurves on 3-point bundle = %v, want nil", got)
	}
}

func TestFCurvesPartitionAllPoints(t *testing.T) {
	a := mustAlgebra(t, lie.A, 1)
	w := lie.MustWeight(0)
	b, err := New(a, []lie.Weight{w, w, w, w, w}, 1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for _, fc := range b.FCurves() {
		seen := make(map[int]bool)
		total := 0
		for _, part := range fc {
			if len(part) == 0 {
				t.Errorf("F-curve %v has an empty part", fc)
			}
			for _, p := range part {
				if seen[p] {
					t.Errorf("F-curve %v: point %d appears in more than one part", fc, p)
				}
				seen[p] = true
				total++
			}
		}
		if total != 5 {
			t.Errorf("F-curve %v covers %d points, want 5", fc, total)
		}
	}
}

func TestDivisorRayIsPrimitive(t *testing.T) {
	// The normalized symmetric divisor ray has GCD 1.
	a := mustAlgebra(t, lie.A, 2)
	wt := lie.MustWeight(1, 0)
	level := 1

	sb, err := NewSymmetric(a, wt, 6, level)
	if err != nil {
		t.Fatalf("NewSymmetric: %v", err)
	}
	ray, err := sb.NormalizedDivisorRay()
	if err != nil {
		t.Fatalf("NormalizedDivisorRay: %v", err)
	}
	if len(ray) == 0 {
		return
	}

	g := ray[0]
	for _, v := range ray[1:] {
		g = scalar.GCD(g, v)
	}
	if got := g.Int64(); got != 1 {
		t.Errorf("GCD of normalized divisor ray = %d, want 1", got)
	}
}

func TestFourPointRankTypeA1(t *testing.T) {
	// Four marked points of weight (1) on the sl2 line: a single block at
	// level 1, a second one appearing as soon as the level admits (2).
	a := mustAlgebra(t, lie.A, 1)
	w := lie.MustWeight(1)
	weights := []lie.Weight{w, w, w, w}

	b1, err := New(a, weights, 1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := rankOf(t, b1); got != 1 {
		t.Errorf("rank at level 1 = %d, want 1", got)
	}

	b2, err := New(a, weights, 2)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := rankOf(t, b2); got != 2 {
		t.Errorf("rank at level 2 = %d, want 2", got)
	}
}

func TestThreePointRankTypeA2LevelOne(t *testing.T) {
	// Three copies of the standard representation of sl3 at level 1: the
	// fusion product 3*3 truncates to the dual and the rank is 1.
	a := mustAlgebra(t, lie.A, 2)
	w := lie.MustWeight(1, 0)
	b, err := New(a, []lie.Weight{w, w, w}, 1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := rankOf(t, b); got != 1 {
		t.Errorf("rank = %d, want 1", got)
	}
}

func TestThreePointRankTypeB3(t *testing.T) {
	// Two vector representations and the adjoint of so7 at level 3: the
	// adjoint appears once in v (x) v, so the rank is exactly 1.
	a := mustAlgebra(t, lie.B, 3)
	v := lie.MustWeight(1, 0, 0)
	adj := lie.MustWeight(0, 1, 0)
	b, err := New(a, []lie.Weight{v, v, adj}, 3)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := rankOf(t, b); got != 1 {
		t.Errorf("rank = %d, want 1", got)
	}
}

func TestThreePointRankTypeD4Spinors(t *testing.T) {
	// The two half-spin representations of so8 fuse into the vector
	// representation with multiplicity one; with even rank every weight is
	// self-dual, so the three-point rule pairs them directly.
	a := mustAlgebra(t, lie.D, 4)
	s := lie.MustWeight(0, 0, 1, 0)
	c := lie.MustWeight(0, 0, 0, 1)
	v := lie.MustWeight(1, 0, 0, 0)
	level := 2

	for _, w := range []lie.Weight{s, c, v} {
		if got := a.DualWeight(a.DualWeight(w)); got != w {
			t.Errorf("DualWeight is not an involution on %v: got %v", w, got)
		}
	}

	b, err := New(a, []lie.Weight{s, c, v}, level)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got := rankOf(t, b)

	prod, err := a.Fusion(s, c, level)
	if err != nil {
		t.Fatalf("Fusion: %v", err)
	}
	if want := prod[a.DualWeight(v)].Int64(); got != want {
		t.Errorf("rank = %d, want fusion coefficient %d", got, want)
	}
	if got != 1 {
		t.Errorf("rank = %d, want 1", got)
	}
}

func TestExactAndFloatRankAgree(t *testing.T) {
	exact := mustAlgebra(t, lie.A, 2, lie.WithExact(true))
	flt := mustAlgebra(t, lie.A, 2, lie.WithExact(false))
	w1 := lie.MustWeight(1, 0)
	w2 := lie.MustWeight(0, 1)
	w3 := lie.MustWeight(1, 1)
	level := 3

	be, err := New(exact, []lie.Weight{w1, w2, w3}, level)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	bf, err := New(flt, []lie.Weight{w1, w2, w3}, level)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if got, want := rankOf(t, bf), rankOf(t, be); got != want {
		t.Errorf("float rank = %d, want exact rank %d", got, want)
	}
}
