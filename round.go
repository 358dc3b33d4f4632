package decimal

import (
	"math/big"
	"strconv"

	mu "github.com/avdva/decimal/internal/mathutil"
)

// RoundDP returns d rounded half away from zero to dp decimal places.
// The whole discarded fraction is compared with one half, not only its leading digit,
// so 1.007 rounds to 1.0 at one place and 1.05 rounds to 1.1.
// Returns ErrRange for a negative dp.
func (d Decimal) RoundDP(dp int) (Decimal, error) {
	if err := validateDP(dp, "dp"); err != nil {
		return zero, err
	}
	return d.roundDP(dp), nil
}

// MustRoundDP is like RoundDP, but panics on error.
func (d Decimal) MustRoundDP(dp int) Decimal {
	r, err := d.RoundDP(dp)
	if err != nil {
		panic(err)
	}
	return r
}

func (d Decimal) roundDP(dp int) Decimal {
	if dp >= d.scale {
		return d
	}
	return fromOwned(roundedQuo(d.digits, d.scale-dp), dp)
}

// roundedQuo returns digits / 10^pow rounded half away from zero.
func roundedQuo(digits *big.Int, pow int) *big.Int {
	factor := mu.Pow10(pow)
	q, r := mu.DivRem(digits, factor)
	return mu.AddInt64(q, int64(mu.RoundingTerm(r, factor)))
}

// BigInt returns d rounded half away from zero to an integer, see RoundDP.
func (d Decimal) BigInt() *big.Int {
	switch {
	case d.scale == 0:
		return d.Digits()
	case d.scale < 0:
		return mu.MulPow10(d.digits, -d.scale)
	default:
		return roundedQuo(d.digits, d.scale)
	}
}

// Float64 returns the nearest float64 value.
// Values too large for a float64 are returned as infinities.
func (d Decimal) Float64() float64 {
	f, _ := strconv.ParseFloat(d.String(), 64)
	return f
}
