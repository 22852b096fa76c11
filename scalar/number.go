// Copyright ©2018 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scalar

import (
	"fmt"
	"math"
	"math/big"
)

const badMode = "scalar: mixed exact/float operands"

// Number is a scalar that is either an exact rational or a float64
// approximation, chosen once at construction and preserved through every
// arithmetic operation. The kernel packages (lie, bundle) are written
// entirely against Number so that the same formula produces bit-exact
// rational results in exact mode and rounded float64 results in float mode.
type Number struct {
	exact bool
	rat   big.Rat // valid only when exact
	flt   float64 // valid only when !exact
}

// Zero returns the additive identity in the given mode.
func Zero(exact bool) Number {
	return Number{exact: exact}
}

// FromInt64 returns n represented in the given mode.
func FromInt64(exact bool, n int64) Number {
	if exact {
		var z Number
		z.exact = true
		z.rat.SetInt64(n)
		return z
	}
	return Number{exact: false, flt: float64(n)}
}

// FromRat returns an exact Number equal to p/q.
func FromRat(p, q int64) Number {
	var z Number
	z.exact = true
	z.rat.SetFrac64(p, q)
	return z
}

// FromFloat returns a float-mode Number.
func FromFloat(f float64) Number {
	return Number{exact: false, flt: f}
}

// Exact reports whether z carries an exact rational value.
func (z Number) Exact() bool { return z.exact }

func checkMode(a, b Number) {
	if a.exact != b.exact {
		panic(badMode)
	}
}

// Add returns a+b. Add panics if a and b are not in the same mode.
func Add(a, b Number) Number {
	checkMode(a, b)
	if a.exact {
		var z Number
		z.exact = true
		z.rat.Add(&a.rat, &b.rat)
		return z
	}
	return Number{flt: a.flt + b.flt}
}

// Sub returns a-b. Sub panics if a and b are not in the same mode.
func Sub(a, b Number) Number {
	checkMode(a, b)
	if a.exact {
		var z Number
		z.exact = true
		z.rat.Sub(&a.rat, &b.rat)
		return z
	}
	return Number{flt: a.flt - b.flt}
}

// Mul returns a*b. Mul panics if a and b are not in the same mode.
func Mul(a, b Number) Number {
	checkMode(a, b)
	if a.exact {
		var z Number
		z.exact = true
		z.rat.Mul(&a.rat, &b.rat)
		return z
	}
	return Number{flt: a.flt * b.flt}
}

// Quo returns a/b. Quo panics if a and b are not in the same mode, or if b
// is zero in exact mode (big.Rat's own division-by-zero panic surfaces).
func Quo(a, b Number) Number {
	checkMode(a, b)
	if a.exact {
		var z Number
		z.exact = true
		z.rat.Quo(&a.rat, &b.rat)
		return z
	}
	return Number{flt: a.flt / b.flt}
}

// Neg returns -a.
func Neg(a Number) Number {
	if a.exact {
		var z Number
		z.exact = true
		z.rat.Neg(&a.rat)
		return z
	}
	return Number{flt: -a.flt}
}

// Cmp compares a and b, returning -1, 0 or 1. Cmp panics if a and b are not
// in the same mode.
func Cmp(a, b Number) int {
	checkMode(a, b)
	if a.exact {
		return a.rat.Cmp(&b.rat)
	}
	switch {
	case a.flt < b.flt:
		return -1
	case a.flt > b.flt:
		return 1
	default:
		return 0
	}
}

// Sign returns -1, 0 or 1 depending on the sign of a.
func (a Number) Sign() int {
	if a.exact {
		return a.rat.Sign()
	}
	switch {
	case a.flt < 0:
		return -1
	case a.flt > 0:
		return 1
	default:
		return 0
	}
}

// IsZero reports whether a is the additive identity.
func (a Number) IsZero() bool { return a.Sign() == 0 }

// Float64 returns a float64 approximation of a regardless of mode.
func (a Number) Float64() float64 {
	if a.exact {
		f, _ := a.rat.Float64()
		return f
	}
	return a.flt
}

// Rat returns the exact rational value of a and true, or (nil, false) if a
// is a float-mode Number.
func (a Number) Rat() (*big.Rat, bool) {
	if !a.exact {
		return nil, false
	}
	r := new(big.Rat).Set(&a.rat)
	return r, true
}

// Round returns the nearest Int to a. Callers that require integrality in
// exact mode must check Rat().IsInt() before rounding and raise an Internal
// error on failure; Round itself never errors.
func (a Number) Round() Int {
	if a.exact {
		n := new(big.Int).Set(a.rat.Num())
		if a.rat.IsInt() {
			return Int{v: n}
		}
		// Non-integral in exact mode: round half away from zero, the same
		// convention float mode uses, but the caller should treat this as
		// an invariant violation when integrality was assumed.
		return FromFloat64Rounded(a.Float64())
	}
	return FromFloat64Rounded(a.flt)
}

// FromFloat64Rounded rounds f to the nearest integer (half away from zero)
// and returns it as an Int.
func FromFloat64Rounded(f float64) Int {
	r := math.Round(f)
	bi, _ := big.NewFloat(r).Int(nil)
	return Int{v: bi}
}

func (a Number) String() string {
	if a.exact {
		return a.rat.RatString()
	}
	return fmt.Sprintf("%g", a.flt)
}
