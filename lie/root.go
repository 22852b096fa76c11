// Copyright ©2016 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lie

// root is a positive root of a classical Lie algebra. It carries its
// coordinates in the simple-root basis, used only to compute its root
// level (the sum of those coordinates, used to bucket Freudenthal's
// recursion), and the equivalent fundamental-weight tuple, used for all
// arithmetic against weights.
type root struct {
	simple []int
	wt     Weight
}

// level returns the sum of the simple-root coordinates of r.
func (r root) level() int {
	s := 0
	for _, c := range r.simple {
		s += c
	}
	return s
}
