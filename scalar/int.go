// Copyright ©2018 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scalar

import (
	"math/big"
)

// Int is an arbitrary-precision integer, used for weight multiplicities,
// tensor/fusion decomposition coefficients and bundle ranks.
// These quantities are always exactly integral regardless of the Number
// mode in effect (see Number.Round), so Int does not carry an exact/float
// flag of its own.
type Int struct {
	v *big.Int
}

// IntFromInt64 returns n as an Int.
func IntFromInt64(n int64) Int {
	return Int{v: big.NewInt(n)}
}

// IntZero returns the Int 0.
func IntZero() Int { return Int{v: new(big.Int)} }

// IntFromBig returns v as an Int. The caller retains ownership of v; IntFromBig
// copies it.
func IntFromBig(v *big.Int) Int { return Int{v: new(big.Int).Set(v)} }

// GCD returns the non-negative greatest common divisor of a and b.
func GCD(a, b Int) Int {
	return Int{v: new(big.Int).GCD(nil, nil, new(big.Int).Abs(a.big()), new(big.Int).Abs(b.big()))}
}

// LCM returns the non-negative least common multiple of a and b. LCM
// returns 0 if either argument is 0.
func LCM(a, b Int) Int {
	if a.IsZero() || b.IsZero() {
		return IntZero()
	}
	g := GCD(a, b)
	q := new(big.Int).Quo(new(big.Int).Abs(a.big()), g.big())
	return Int{v: new(big.Int).Mul(q, new(big.Int).Abs(b.big()))}
}

func (z Int) big() *big.Int {
	if z.v == nil {
		return new(big.Int)
	}
	return z.v
}

// AddInt returns a+b.
func AddInt(a, b Int) Int {
	return Int{v: new(big.Int).Add(a.big(), b.big())}
}

// SubInt returns a-b.
func SubInt(a, b Int) Int {
	return Int{v: new(big.Int).Sub(a.big(), b.big())}
}

// MulInt returns a*b.
func MulInt(a, b Int) Int {
	return Int{v: new(big.Int).Mul(a.big(), b.big())}
}

// NegInt returns -a.
func NegInt(a Int) Int {
	return Int{v: new(big.Int).Neg(a.big())}
}

// CmpInt compares a and b, returning -1, 0 or 1.
func CmpInt(a, b Int) int {
	return a.big().Cmp(b.big())
}

// Sign returns -1, 0 or 1 depending on the sign of z.
func (z Int) Sign() int { return z.big().Sign() }

// IsZero reports whether z is zero.
func (z Int) IsZero() bool { return z.Sign() == 0 }

// Int64 returns z as an int64. The result is undefined if z does not fit.
func (z Int) Int64() int64 { return z.big().Int64() }

// IsInt64 reports whether z fits in an int64.
func (z Int) IsInt64() bool { return z.big().IsInt64() }

// AsNumber lifts z into Number arithmetic in the given mode.
func (z Int) AsNumber(exact bool) Number {
	if exact {
		var n Number
		n.exact = true
		n.rat.SetInt(z.big())
		return n
	}
	f := new(big.Float).SetInt(z.big())
	v, _ := f.Float64()
	return Number{flt: v}
}

func (z Int) String() string { return z.big().String() }

// Encode splits z into the IntReply wire encoding: small reports whether z
// fits in an int64. If it does, result holds z and hexMagnitude is empty;
// otherwise result is 0 and hexMagnitude is the two's-complement-free
// hexadecimal magnitude with a leading "-" for negative z.
func (z Int) Encode() (result int64, hexMagnitude string, small bool) {
	b := z.big()
	if b.IsInt64() {
		return b.Int64(), "", true
	}
	mag := new(big.Int).Abs(b)
	hex := mag.Text(16)
	if b.Sign() < 0 {
		hex = "-" + hex
	}
	return 0, hex, false
}

// DecodeInt parses the IntReply wire encoding back into an Int.
func DecodeInt(result int64, hexMagnitude string) (Int, error) {
	if hexMagnitude == "" {
		return IntFromInt64(result), nil
	}
	neg := false
	s := hexMagnitude
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		return Int{}, ErrMalformedBigInt
	}
	if neg {
		v.Neg(v)
	}
	return Int{v: v}, nil
}
