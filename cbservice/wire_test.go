// Copyright ©2016 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cbservice

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/liegroup/cblocks/scalar"
)

func TestEncodeIntSmallValues(t *testing.T) {
	for _, n := range []int64{0, 1, -1, 42, math.MaxInt64, math.MinInt64} {
		got := encodeInt(scalar.IntFromInt64(n))
		want := IntReply{Result: n, BigResult: ""}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("encodeInt(%d): mismatch (-want +got):\n%s", n, diff)
		}
	}
}

func TestEncodeIntBigValue(t *testing.T) {
	big := scalar.MulInt(scalar.IntFromInt64(math.MaxInt64), scalar.IntFromInt64(math.MaxInt64))
	got := encodeInt(big)
	if got.BigResult == "" {
		t.Fatalf("encodeInt of a value exceeding int64 range: BigResult is empty")
	}
	if got.Result != 0 {
		t.Errorf("encodeInt of a big value: Result = %d, want 0 (BigResult is authoritative)", got.Result)
	}

	back, err := scalar.DecodeInt(got.Result, got.BigResult)
	if err != nil {
		t.Fatalf("DecodeInt: %v", err)
	}
	if scalar.CmpInt(back, big) != 0 {
		t.Errorf("round-trip through IntReply did not preserve value")
	}
}

func TestEncodeNumberReducesToLowestTerms(t *testing.T) {
	q := scalar.FromRat(6, 4)
	got := encodeNumber(q)
	want := RatReply{
		Numerator:   IntReply{Result: 3},
		Denominator: IntReply{Result: 2},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("encodeNumber(6/4): mismatch (-want +got):\n%s", diff)
	}
}
