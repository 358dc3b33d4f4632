// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package decimal implements an arbitrary-precision decimal number.
// A Decimal is an unscaled big integer 'digits' and an integer 'scale',
// so that the value is digits * 10^(-scale).
// All computations are exact, except for division and explicit rounding,
// which round half away from zero.
//
// Values are immutable: every operation returns a new value, so Decimals
// can be freely shared between goroutines.
// Note, that repeated multiplications make the underlying integer grow without bounds.
package decimal

import (
	"math/big"

	mu "github.com/avdva/decimal/internal/mathutil"
)

const (
	// DefaultDivPlaces is the maximum number of decimal places Div produces.
	DefaultDivPlaces = 20
)

var (
	zero Decimal
)

// Decimal is an arbitrary-precision decimal number.
// It is always kept in canonical form: digits has no trailing zeros, and zero has zero scale.
// This makes two Decimals equal iff their digits and scales are equal.
// The zero value is 0. Use Eq to compare values, not ==.
type Decimal struct {
	digits *big.Int // nil is zero.
	scale  int
}

// New returns digits * 10^(-scale).
// digits is copied and never modified.
func New(digits *big.Int, scale int) (Decimal, error) {
	if digits == nil {
		return zero, invalidArgf("digits must be an arbitrary-precision integer")
	}
	return normalized(digits, scale), nil
}

// MustNew is like New, but panics on error.
func MustNew(digits *big.Int, scale int) Decimal {
	d, err := New(digits, scale)
	if err != nil {
		panic(err)
	}
	return d
}

// NewFromInt64 returns v * 10^(-scale).
func NewFromInt64(v int64, scale int) Decimal {
	return normalized(big.NewInt(v), scale)
}

// Parse parses a decimal literal, like "-123.456e-7".
// Whitespaces, underscores and group separators are not allowed.
// The exponent is limited to ±(2^31-1). Note, that String and ToFixed of a value
// take time and memory proportional to its exponent: "1e-2000000000" is accepted,
// but its String is two gigabytes long. See DivDP for division.
func Parse(s string) (Decimal, error) {
	digits, scale, err := parseDecimal(s)
	if err != nil {
		return zero, err
	}
	return fromOwned(digits, scale), nil
}

// MustParse is like Parse, but panics on error.
func MustParse(s string) Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// normalized returns a canonical Decimal, 'digits' is not modified.
func normalized(digits *big.Int, scale int) Decimal {
	if digits.Sign() == 0 {
		return zero
	}
	d, s := mu.TrimZeros(digits, scale)
	return Decimal{digits: d, scale: s}
}

// fromOwned is like normalized, but may reuse 'digits' if it is already canonical.
// The caller must not use 'digits' afterwards.
func fromOwned(digits *big.Int, scale int) Decimal {
	if digits.Sign() == 0 {
		return zero
	}
	if digits.Bit(0) == 1 { // odd numbers have no trailing zeros
		return Decimal{digits: digits, scale: scale}
	}
	return normalized(digits, scale)
}

func (d Decimal) coef() *big.Int {
	if d.digits == nil {
		return mu.Zero()
	}
	return d.digits
}

// Digits returns a copy of the unscaled digits.
func (d Decimal) Digits() *big.Int {
	return new(big.Int).Set(d.coef())
}

// Scale returns the power of ten by which the digits are divided.
// Scale is negative for integers with trailing zeros.
func (d Decimal) Scale() int {
	return d.scale
}

// DP returns the number of decimal places.
func (d Decimal) DP() int {
	if d.scale < 0 {
		return 0
	}
	return d.scale
}

// Sign returns -1 if d < 0, 0 if d == 0, 1 if d > 0.
func (d Decimal) Sign() int {
	return d.coef().Sign()
}

// IsInt returns true if d has no fractional part.
func (d Decimal) IsInt() bool {
	return d.scale <= 0
}

// IsNeg returns true if d < 0.
func (d Decimal) IsNeg() bool {
	return d.Sign() < 0
}

// IsPos returns true if d > 0.
func (d Decimal) IsPos() bool {
	return d.Sign() > 0
}

// IsZero returns true if d == 0.
func (d Decimal) IsZero() bool {
	return d.Sign() == 0
}

// IsOne returns true if d == 1.
func (d Decimal) IsOne() bool {
	return d.scale == 0 && mu.IsOne(d.coef())
}
