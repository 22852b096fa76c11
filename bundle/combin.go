// Copyright ©2013 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bundle

import "github.com/liegroup/cblocks/scalar"

// combinations returns every k-element subset of {0, 1, ..., n-1}, each as
// an ascending slice of indices, generated in lexicographic order by the
// same odometer gonum's stat/combin package uses for CombinationGenerator.
func combinations(n, k int) [][]int {
	if k <= 0 || k > n {
		return nil
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}

	var out [][]int
	for {
		out = append(out, append([]int(nil), idx...))

		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			break
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
	return out
}

// combosOf returns every k-element subset of xs, preserving relative order.
func combosOf(xs []int, k int) [][]int {
	idxSets := combinations(len(xs), k)
	out := make([][]int, len(idxSets))
	for i, idx := range idxSets {
		sub := make([]int, len(idx))
		for j, p := range idx {
			sub[j] = xs[p]
		}
		out[i] = sub
	}
	return out
}

// diff returns the elements of a not present in b.
func diff(a, b []int) []int {
	in := make(map[int]bool, len(b))
	for _, v := range b {
		in[v] = true
	}
	var out []int
	for _, v := range a {
		if !in[v] {
			out = append(out, v)
		}
	}
	return out
}

// factorial returns n! as an Int.
func factorial(n int) scalar.Int {
	f := scalar.IntFromInt64(1)
	for i := 2; i <= n; i++ {
		f = scalar.MulInt(f, scalar.IntFromInt64(int64(i)))
	}
	return f
}
