// Copyright ©2018 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scalar

import "testing"

func TestAddExact(t *testing.T) {
	a := FromRat(1, 2)
	b := FromRat(1, 3)
	got := Add(a, b)
	want := FromRat(5, 6)
	if Cmp(got, want) != 0 {
		t.Errorf("Add(1/2, 1/3) = %v, want %v", got, want)
	}
}

func TestArithmeticFloatMode(t *testing.T) {
	a := FromFloat(0.5)
	b := FromFloat(0.25)
	if got := Add(a, b).Float64(); got != 0.75 {
		t.Errorf("Add(0.5, 0.25) = %v, want 0.75", got)
	}
	if got := Mul(a, b).Float64(); got != 0.125 {
		t.Errorf("Mul(0.5, 0.25) = %v, want 0.125", got)
	}
}

func TestMixedModePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Add did not panic on mixed modes")
		}
	}()
	Add(FromRat(1, 2), FromFloat(0.5))
}

func TestQuoExact(t *testing.T) {
	got := Quo(FromRat(1, 2), FromRat(1, 4))
	want := FromInt64(true, 2)
	if Cmp(got, want) != 0 {
		t.Errorf("Quo(1/2, 1/4) = %v, want %v", got, want)
	}
}

func TestRoundExactIntegral(t *testing.T) {
	n := FromRat(6, 3)
	got := n.Round()
	if got.Int64() != 2 {
		t.Errorf("Round(6/3) = %v, want 2", got)
	}
}

func TestSignAndIsZero(t *testing.T) {
	z := Zero(true)
	if !z.IsZero() {
		t.Error("Zero(true) is not reported as zero")
	}
	neg := FromRat(-1, 3)
	if neg.Sign() != -1 {
		t.Errorf("Sign(-1/3) = %d, want -1", neg.Sign())
	}
}
