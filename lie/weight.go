// Copyright ©2016 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lie

// maxRank bounds the inline storage of a Weight. It is comfortably above
// any rank the four classical families are practically constructed with;
// NewWeight reports ErrRankTooLarge rather than silently truncating beyond
// it.
const maxRank = 24

// Weight is an ordered tuple of integers in the fundamental-weight basis.
// It is a plain comparable value — equal weights compare equal with == —
// so Weight is usable directly as a map key, and copying a Weight copies
// its whole tuple.
type Weight struct {
	n      int8
	coords [maxRank]int32
}

// NewWeight returns a Weight with the given fundamental-weight coordinates.
func NewWeight(coords ...int) (Weight, error) {
	if len(coords) > maxRank {
		return Weight{}, ErrRankTooLarge
	}
	var w Weight
	w.n = int8(len(coords))
	for i, c := range coords {
		w.coords[i] = int32(c)
	}
	return w, nil
}

// MustWeight is like NewWeight but panics on error. It is intended for use
// with weight literals known to be valid, such as in tests.
func MustWeight(coords ...int) Weight {
	w, err := NewWeight(coords...)
	if err != nil {
		panic(err)
	}
	return w
}

// Len returns the number of coordinates in w.
func (w Weight) Len() int { return int(w.n) }

// At returns the i'th coordinate of w.
func (w Weight) At(i int) int { return int(w.coords[i]) }

// Coords returns the coordinates of w as a freshly allocated slice.
func (w Weight) Coords() []int {
	c := make([]int, w.n)
	for i := range c {
		c[i] = int(w.coords[i])
	}
	return c
}

// IsDominant reports whether every coordinate of w is non-negative.
func (w Weight) IsDominant() bool {
	for i := 0; i < int(w.n); i++ {
		if w.coords[i] < 0 {
			return false
		}
	}
	return true
}

// IsZero reports whether every coordinate of w is zero.
func (w Weight) IsZero() bool {
	for i := 0; i < int(w.n); i++ {
		if w.coords[i] != 0 {
			return false
		}
	}
	return true
}

// AddWeight returns the coordinatewise sum of a and b. a and b must have
// the same length.
func AddWeight(a, b Weight) Weight {
	var z Weight
	z.n = a.n
	for i := 0; i < int(a.n); i++ {
		z.coords[i] = a.coords[i] + b.coords[i]
	}
	return z
}

// SubWeight returns the coordinatewise difference a-b. a and b must have
// the same length.
func SubWeight(a, b Weight) Weight {
	var z Weight
	z.n = a.n
	for i := 0; i < int(a.n); i++ {
		z.coords[i] = a.coords[i] - b.coords[i]
	}
	return z
}

// rho returns the all-ones weight of length n, representing one-half the
// sum of the positive roots in the fundamental-weight basis — this is the
// same closed form for every classical family.
func rho(n int) Weight {
	var z Weight
	z.n = int8(n)
	for i := 0; i < n; i++ {
		z.coords[i] = 1
	}
	return z
}
