// Copyright 2020 Aleksandr Demakin. All rights reserved.

package decimal

import (
	"math/big"

	mu "github.com/avdva/decimal/internal/mathutil"
)

// Eq returns true if both values represent the same number.
func (d Decimal) Eq(other Decimal) bool {
	return d.scale == other.scale && d.coef().Cmp(other.coef()) == 0
}

// Cmp compares two values.
// Returns -1 if a < b, 0 if a == b, 1 if a > b
func (d Decimal) Cmp(other Decimal) int {
	s1, s2 := d.Sign(), other.Sign()
	if s1 == 0 || s2 == 0 {
		if s1 != 0 {
			return s1
		}
		return -s2
	}
	if s1 != s2 {
		return s1
	}
	if d.scale == other.scale {
		return mu.Cmp(d.coef(), other.coef())
	}
	d1, d2, _ := toEqualScale(d, other)
	return mu.Cmp(d1, d2)
}

// Lt returns d < other.
func (d Decimal) Lt(other Decimal) bool {
	return d.Cmp(other) < 0
}

// Le returns d <= other.
func (d Decimal) Le(other Decimal) bool {
	return d.Cmp(other) <= 0
}

// Gt returns d > other.
func (d Decimal) Gt(other Decimal) bool {
	return d.Cmp(other) > 0
}

// Ge returns d >= other.
func (d Decimal) Ge(other Decimal) bool {
	return d.Cmp(other) >= 0
}

// Neg returns -d.
func (d Decimal) Neg() Decimal {
	if d.IsZero() {
		return zero
	}
	return Decimal{digits: new(big.Int).Neg(d.digits), scale: d.scale}
}

// Abs returns |d|.
func (d Decimal) Abs() Decimal {
	if d.IsNeg() {
		return d.Neg()
	}
	return d
}

// Add returns d + other.
func (d Decimal) Add(other Decimal) Decimal {
	if other.IsZero() {
		return d
	}
	if d.IsZero() {
		return other
	}
	l, r, scale := toEqualScale(d, other)
	return fromOwned(l.Add(l, r), scale)
}

// Sub returns d - other.
func (d Decimal) Sub(other Decimal) Decimal {
	if other.IsZero() {
		return d
	}
	l, r, scale := toEqualScale(d, other)
	return fromOwned(l.Sub(l, r), scale)
}

// Mul returns d * other.
func (d Decimal) Mul(other Decimal) Decimal {
	if d.IsZero() || other.IsZero() {
		return zero
	}
	// a*10^-s1 * b*10^-s2 = a*b * 10^-(s1+s2)
	return fromOwned(new(big.Int).Mul(d.digits, other.digits), d.scale+other.scale)
}

// Rem returns the remainder of d / other, so that d = other * q + rem, where q is an integer,
// truncated toward zero. The remainder has the sign of d.
// Returns ErrDivisionByZero if other is zero.
func (d Decimal) Rem(other Decimal) (Decimal, error) {
	if other.IsZero() {
		return zero, ErrDivisionByZero
	}
	l, r, scale := toEqualScale(d, other)
	return fromOwned(l.Rem(l, r), scale), nil
}

// Half returns d / 2. It is faster, than Div(2).
func (d Decimal) Half() Decimal {
	switch {
	case d.IsZero():
		return zero
	case mu.IsEven(d.digits):
		return fromOwned(mu.Half(d.digits), d.scale)
	default: // x/2 = 5x/10
		return Decimal{digits: mu.MulFive(d.digits), scale: d.scale + 1}
	}
}

// toEqualScale returns the digits of a and b brought to the larger of the two scales.
// Both returned integers are new and can be modified by the caller.
func toEqualScale(a, b Decimal) (ad, bd *big.Int, scale int) {
	switch {
	case a.scale < b.scale:
		return mu.MulPow10(a.coef(), b.scale-a.scale), new(big.Int).Set(b.coef()), b.scale
	case a.scale > b.scale:
		return new(big.Int).Set(a.coef()), mu.MulPow10(b.coef(), a.scale-b.scale), a.scale
	default:
		return new(big.Int).Set(a.coef()), new(big.Int).Set(b.coef()), a.scale
	}
}
