// Copyright ©2016 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bundle

import (
	"testing"

	"github.com/liegroup/cblocks/lie"
	"github.com/liegroup/cblocks/scalar"
)

func TestSymmetricRankMatchesGeneralBundle(t *testing.T) {
	a := mustAlgebra(t, lie.A, 2)
	wt := lie.MustWeight(1, 0)
	level := 3

	sb, err := NewSymmetric(a, wt, 5, level)
	if err != nil {
		t.Fatalf("NewSymmetric: %v", err)
	}
	gen, err := New(a, []lie.Weight{wt, wt, wt, wt, wt}, level)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if got, want := rankOf(t, sb.Bundle), rankOf(t, gen); got != want {
		t.Errorf("symmetric rank = %d, want general-bundle rank %d", got, want)
	}
}

func TestSymmetricDivisorMatchesGeneralDivisor(t *testing.T) {
	a := mustAlgebra(t, lie.A, 2)
	wt := lie.MustWeight(1, 0)
	level := 3

	sb, err := NewSymmetric(a, wt, 6, level)
	if err != nil {
		t.Fatalf("NewSymmetric: %v", err)
	}
	gen, err := New(a, []lie.Weight{wt, wt, wt, wt, wt, wt}, level)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	symDiv, err := sb.SymmetrizedDivisor()
	if err != nil {
		t.Fatalf("symmetric SymmetrizedDivisor: %v", err)
	}
	genDiv, err := gen.SymmetrizedDivisor()
	if err != nil {
		t.Fatalf("general SymmetrizedDivisor: %v", err)
	}
	if len(symDiv) != len(genDiv) {
		t.Fatalf("divisor lengths differ: %d vs %d", len(symDiv), len(genDiv))
	}
	for i := range symDiv {
		if scalar.Cmp(symDiv[i], genDiv[i]) != 0 {
			t.Errorf("coordinate %d: symmetric=%v general=%v", i, symDiv[i].Float64(), genDiv[i].Float64())
		}
	}
}

func TestSymmetricAdjointRankProbe(t *testing.T) {
	// Five copies of the sl3 adjoint weight at level 2, the integration
	// probe for the symmetric path: the symmetric bundle must agree with
	// the general bundle, in exact and in float mode.
	wt := lie.MustWeight(1, 1)
	level := 2

	var ranks [2]int64
	for i, exact := range []bool{true, false} {
		a := mustAlgebra(t, lie.A, 2, lie.WithExact(exact))
		sb, err := NewSymmetric(a, wt, 5, level)
		if err != nil {
			t.Fatalf("NewSymmetric: %v", err)
		}
		gen, err := New(a, []lie.Weight{wt, wt, wt, wt, wt}, level)
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		got, want := rankOf(t, sb.Bundle), rankOf(t, gen)
		if got != want {
			t.Errorf("exact=%v: symmetric rank = %d, want general-bundle rank %d", exact, got, want)
		}
		if got <= 0 {
			t.Errorf("exact=%v: rank = %d, want > 0", exact, got)
		}
		ranks[i] = got
	}
	if ranks[0] != ranks[1] {
		t.Errorf("exact rank %d disagrees with float rank %d", ranks[0], ranks[1])
	}
}

func TestSymmetricDivisorTypeA3SixPoints(t *testing.T) {
	// Six copies of the standard weight of sl4 at level 3: the symmetric
	// divisor has floor(6/2)-1 = 2 coordinates, all non-negative.
	a := mustAlgebra(t, lie.A, 3)
	wt := lie.MustWeight(1, 0, 0)

	sb, err := NewSymmetric(a, wt, 6, 3)
	if err != nil {
		t.Fatalf("NewSymmetric: %v", err)
	}
	divisor, err := sb.SymmetrizedDivisor()
	if err != nil {
		t.Fatalf("SymmetrizedDivisor: %v", err)
	}
	if len(divisor) != 2 {
		t.Fatalf("divisor has %d coordinates, want 2", len(divisor))
	}
	for i, q := range divisor {
		if q.Sign() < 0 {
			t.Errorf("coordinate %d = %v, want >= 0", i, q)
		}
	}
}

func TestSymFCurvesAreNonNegativeAgainstDivisor(t *testing.T) {
	// A divisor that is actually nef must intersect every F-curve
	// non-negatively; this is a necessary condition, checked here as a
	// sanity test rather than a proof of nefness.
	a := mustAlgebra(t, lie.B, 3)
	wt := lie.MustWeight(1, 0, 0)
	level := 3

	sb, err := NewSymmetric(a, wt, 5, level)
	if err != nil {
		t.Fatalf("NewSymmetric: %v", err)
	}
	for _, fc := range sb.SymFCurves() {
		got, err := sb.IntersectFCurve(fc)
		if err != nil {
			t.Fatalf("IntersectFCurve(%v): %v", fc, err)
		}
		if got.Sign() < 0 {
			t.Errorf("F-curve %v: intersection = %v, want >= 0", fc, got)
		}
	}
}

func TestSymFCurvesPartitionAllPoints(t *testing.T) {
	a := mustAlgebra(t, lie.A, 1)
	wt := lie.MustWeight(0)
	sb, err := NewSymmetric(a, wt, 7, 1)
	if err != nil {
		t.Fatalf("NewSymmetric: %v", err)
	}
	for _, fc := range sb.SymFCurves() {
		total := 0
		for _, part := range fc {
			if len(part) == 0 {
				t.Errorf("F-curve %v has an empty part", fc)
			}
			total += len(part)
		}
		if total != 7 {
			t.Errorf("F-curve %v covers %d points, want 7", fc, total)
		}
	}
}
