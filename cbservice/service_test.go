// Copyright ©2016 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cbservice

import (
	"testing"

	"github.com/liegroup/cblocks/lie"
)

func a2Ref() LieAlgebraRef { return LieAlgebraRef{Type: lie.A, Rank: 2} }

func TestComputeRankMatchesBundle(t *testing.T) {
	p := NewPool()
	req := ConformalBlocksRequest{
		Algebra: a2Ref(),
		Weights: []Weight{
			{Coords: []int32{1, 0}},
			{Coords: []int32{0, 1}},
			{Coords: []int32{1, 1}},
		},
		Level: 3,
	}
	reply, err := p.ComputeRank(req)
	if err != nil {
		t.Fatalf("ComputeRank: %v", err)
	}
	if reply.BigResult != "" {
		t.Fatalf("unexpected BigResult %q for a small rank", reply.BigResult)
	}
	if reply.Result <= 0 {
		t.Errorf("ComputeRank = %d, want > 0", reply.Result)
	}
}

func TestComputeRankRejectsUnknownFamily(t *testing.T) {
	p := NewPool()
	req := ConformalBlocksRequest{
		Algebra: LieAlgebraRef{Type: lie.Family(99), Rank: 2},
		Weights: []Weight{{Coords: []int32{0, 0}}, {Coords: []int32{0, 0}}, {Coords: []int32{0, 0}}},
		Level:   1,
	}
	_, err := p.ComputeRank(req)
	if err == nil || err.Kind != InvalidAlgebra {
		t.Errorf("ComputeRank with unknown family: got %v, want InvalidAlgebra", err)
	}
}

func TestComputeRankRejectsNegativeCoordinate(t *testing.T) {
	p := NewPool()
	req := ConformalBlocksRequest{
		Algebra: a2Ref(),
		Weights: []Weight{
			{Coords: []int32{-1, 0}},
			{Coords: []int32{0, 1}},
			{Coords: []int32{1, 1}},
		},
		Level: 3,
	}
	_, err := p.ComputeRank(req)
	if err == nil || err.Kind != InvalidWeight {
		t.Errorf("ComputeRank with negative coordinate: got %v, want InvalidWeight", err)
	}
}

func TestComputeRankRejectsWrongWeightLength(t *testing.T) {
	p := NewPool()
	req := ConformalBlocksRequest{
		Algebra: a2Ref(),
		Weights: []Weight{
			{Coords: []int32{1, 0, 0}},
			{Coords: []int32{0, 1}},
			{Coords: []int32{1, 1}},
		},
		Level: 3,
	}
	_, err := p.ComputeRank(req)
	if err == nil || err.Kind != InvalidWeight {
		t.Errorf("ComputeRank with wrong weight length: got %v, want InvalidWeight", err)
	}
}

func TestComputeRankRejectsLevelTooLowForWeight(t *testing.T) {
	p := NewPool()
	req := ConformalBlocksRequest{
		Algebra: a2Ref(),
		Weights: []Weight{
			{Coords: []int32{5, 0}},
			{Coords: []int32{0, 1}},
			{Coords: []int32{1, 1}},
		},
		Level: 1,
	}
	_, err := p.ComputeRank(req)
	if err == nil || err.Kind != InvalidWeight {
		t.Errorf("ComputeRank with weight level exceeding request level: got %v, want InvalidWeight", err)
	}
}

func TestComputeRankRejectsInvalidLevel(t *testing.T) {
	p := NewPool()
	req := ConformalBlocksRequest{
		Algebra: a2Ref(),
		Weights: []Weight{
			{Coords: []int32{0, 0}},
			{Coords: []int32{0, 0}},
			{Coords: []int32{0, 0}},
		},
		Level: 0,
	}
	_, err := p.ComputeRank(req)
	if err == nil || err.Kind != InvalidBundle {
		t.Errorf("ComputeRank with level 0: got %v, want InvalidBundle", err)
	}
}

func TestSymComputeRankRejectsTooFewPoints(t *testing.T) {
	p := NewPool()
	req := SymConformalBlocksRequest{
		Algebra:   a2Ref(),
		Weight:    Weight{Coords: []int32{1, 0}},
		NumPoints: 2,
		Level:     3,
	}
	_, err := p.SymComputeRank(req)
	if err == nil || err.Kind != InvalidBundle {
		t.Errorf("SymComputeRank with 2 points: got %v, want InvalidBundle", err)
	}
}

func TestSymComputeRankAndDivisorSucceed(t *testing.T) {
	p := NewPool()
	req := SymConformalBlocksRequest{
		Algebra:   a2Ref(),
		Weight:    Weight{Coords: []int32{1, 0}},
		NumPoints: 5,
		Level:     3,
	}
	rankReply, err := p.SymComputeRank(req)
	if err != nil {
		t.Fatalf("SymComputeRank: %v", err)
	}
	// Five copies of (1,0) have total triality 5 mod 3 != 0, so the tensor
	// product holds no invariant and the rank is 0.
	if rankReply.Result != 0 {
		t.Errorf("SymComputeRank = %d, want 0", rankReply.Result)
	}

	divReply, err := p.SymComputeDivisor(req)
	if err != nil {
		t.Fatalf("SymComputeDivisor: %v", err)
	}
	if len(divReply.Coords) != 1 {
		t.Errorf("SymComputeDivisor on 5 points: got %d coordinates, want 1", len(divReply.Coords))
	}
}

func TestPoolReusesAlgebraAcrossRequests(t *testing.T) {
	p := NewPool()
	req := ConformalBlocksRequest{
		Algebra: a2Ref(),
		Weights: []Weight{
			{Coords: []int32{1, 0}},
			{Coords: []int32{0, 1}},
			{Coords: []int32{1, 1}},
		},
		Level: 3,
	}
	if _, err := p.ComputeRank(req); err != nil {
		t.Fatalf("first ComputeRank: %v", err)
	}

	var cacheLen int
	err := p.withAlgebra(req.Algebra, true, func(alg lie.Algebra) error {
		cacheLen = alg.FusionCacheLen()
		return nil
	})
	if err != nil {
		t.Fatalf("withAlgebra: %v", err)
	}
	if cacheLen == 0 {
		t.Error("expected the fusion cache to retain entries across requests")
	}
}
