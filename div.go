// Copyright 2020 Aleksandr Demakin. All rights reserved.

package decimal

import (
	"math/big"

	mu "github.com/avdva/decimal/internal/mathutil"
)

var (
	bigTen = big.NewInt(10)
)

// Div returns d / other with at most DefaultDivPlaces decimal places.
// See DivDP.
func (d Decimal) Div(other Decimal) (Decimal, error) {
	return d.DivDP(other, DefaultDivPlaces)
}

// DivDP returns d / other with at most dp decimal places.
// If the quotient has more decimal places, it is rounded half away from zero.
// If d is zero or other is one, d is returned as is.
// When the quotient needs more digits than the operands have, they are produced one by one,
// so dividing a value with a huge negative scale, like 1e2000000000, is slow.
// Returns ErrDivisionByZero if other is zero, and ErrRange for a negative dp.
func (d Decimal) DivDP(other Decimal, dp int) (Decimal, error) {
	if err := validateDP(dp, "dp"); err != nil {
		return zero, err
	}
	if other.IsZero() {
		return zero, ErrDivisionByZero
	}
	if d.IsZero() || other.IsOne() {
		return d, nil
	}
	// a*10^-s1 / b*10^-s2 = (a/b) * 10^-(s1-s2)
	scale := d.scale - other.scale
	if mu.CmpAbs(d.digits, other.digits) == 0 {
		return NewFromInt64(int64(d.Sign()*other.Sign()), scale), nil
	}
	return longDiv(d.digits, other.digits, scale, dp), nil
}

// longDiv divides numer by denom digit by digit, producing at most dp decimal places.
func longDiv(numer, denom *big.Int, scale, dp int) Decimal {
	neg := numer.Sign() != denom.Sign()
	numer, denom = new(big.Int).Abs(numer), new(big.Int).Abs(denom)

	// shift numer until it is not less than denom, so that the first quotient digit is not zero.
	for numer.Cmp(denom) < 0 {
		numer.Mul(numer, bigTen)
		scale++
	}

	quo, rem := mu.DivRem(numer, denom)
	digit, next := new(big.Int), new(big.Int)

	if scale > dp {
		// too many digits already, cut them off. only the most significant cut digit is kept for rounding.
		if cut := scale - dp - 1; cut >= mu.DecimalDigits(quo) {
			quo.SetInt64(0)
		} else if cut > 0 {
			quo.Quo(quo, mu.Pow10(cut))
		}
		quo.QuoRem(quo, bigTen, digit)
		scale = dp
		quo = addRoundingTerm(quo, digit, bigTen)
	} else {
		rem.Mul(rem, bigTen)
		for rem.Sign() != 0 && scale < dp {
			digit.QuoRem(rem, denom, next)
			quo.Mul(quo, bigTen)
			quo.Add(quo, digit)
			rem, next = next.Mul(next, bigTen), rem
			scale++
		}
		if rem.Sign() != 0 {
			// rem is already shifted by one place, so the next digit is rem/denom.
			quo = addRoundingTerm(quo, rem.Quo(rem, bigTen), denom)
		}
	}

	if neg {
		quo.Neg(quo)
	}
	return fromOwned(quo, scale)
}

// addRoundingTerm rounds 'quo' half away from zero, according to the discarded remainder.
func addRoundingTerm(quo, rem, den *big.Int) *big.Int {
	return mu.AddInt64(quo, int64(mu.RoundingTerm(rem, den)))
}
