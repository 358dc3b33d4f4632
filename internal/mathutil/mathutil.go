// Package mathutil contains helpers for arbitrary-precision integers.
// None of the functions modify their arguments.
package mathutil

import (
	"math/big"
)

const cachedPowers = 64

var (
	bigZero = big.NewInt(0)
	bigOne  = big.NewInt(1)
	bigTwo  = big.NewInt(2)
	bigFive = big.NewInt(5)
	bigTen  = big.NewInt(10)

	// decimalFactorTable holds 10^0..10^63. Its values must never be modified.
	decimalFactorTable = makeFactorTable(cachedPowers)
)

func makeFactorTable(size int) []*big.Int {
	table := make([]*big.Int, size)
	table[0] = big.NewInt(1)
	for i := 1; i < size; i++ {
		table[i] = new(big.Int).Mul(table[i-1], bigTen)
	}
	return table
}

// Pow10 returns 10^pow. pow must be >= 0.
// The result may be shared and must not be modified.
func Pow10(pow int) *big.Int {
	if pow < 0 {
		panic("negative power of ten")
	}
	if pow < len(decimalFactorTable) {
		return decimalFactorTable[pow]
	}
	return new(big.Int).Exp(bigTen, big.NewInt(int64(pow)), nil)
}

// MulPow10 returns x*10^pow as a new integer.
func MulPow10(x *big.Int, pow int) *big.Int {
	if pow == 0 {
		return new(big.Int).Set(x)
	}
	return new(big.Int).Mul(x, Pow10(pow))
}

// IsIntLiteral checks that s is an optional sign followed by one or more ASCII digits.
func IsIntLiteral(s string) bool {
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// ParseInt parses a strict integer literal, see IsIntLiteral.
func ParseInt(s string) (*big.Int, bool) {
	if !IsIntLiteral(s) {
		return nil, false
	}
	return new(big.Int).SetString(s, 10)
}

// DivRem performs truncating division: the quotient is truncated toward zero,
// the remainder has the sign of the numerator.
func DivRem(numer, denom *big.Int) (quo, rem *big.Int) {
	return new(big.Int).QuoRem(numer, denom, new(big.Int))
}

// Cmp compares x and y.
// Returns -1 if x < y, 0 if x == y, 1 if x > y
func Cmp(x, y *big.Int) int {
	return x.Cmp(y)
}

// CmpAbs compares |x| and |y|.
func CmpAbs(x, y *big.Int) int {
	return x.CmpAbs(y)
}

// IsEven reports whether x is divisible by 2.
func IsEven(x *big.Int) bool {
	return x.Bit(0) == 0
}

// Half returns x/2 for an even x.
func Half(x *big.Int) *big.Int {
	return new(big.Int).Quo(x, bigTwo)
}

// MulFive returns 5*x.
func MulFive(x *big.Int) *big.Int {
	return new(big.Int).Mul(x, bigFive)
}

// IsOne reports whether x == 1.
func IsOne(x *big.Int) bool {
	return x.Cmp(bigOne) == 0
}

// TrimZeros removes trailing decimal zeros from m, decreasing scale by one for each removed zero,
// so that m * 10^(-scale) is unchanged. Zero is returned as (0, 0).
func TrimZeros(m *big.Int, scale int) (*big.Int, int) {
	if m.Sign() == 0 {
		return new(big.Int), 0
	}
	m = new(big.Int).Set(m)
	q, r := new(big.Int), new(big.Int)
	for {
		q.QuoRem(m, bigTen, r)
		if r.Sign() != 0 {
			break
		}
		m, q = q, m
		scale--
	}
	return m, scale
}

// DecimalDigits returns the number of decimal digits in |value|.
func DecimalDigits(value *big.Int) int {
	if value.Sign() == 0 {
		return 1
	}
	s := value.String()
	if s[0] == '-' {
		return len(s) - 1
	}
	return len(s)
}

// AbsString returns the decimal representation of |value|.
func AbsString(value *big.Int) string {
	s := value.String()
	if s[0] == '-' {
		return s[1:]
	}
	return s
}

// RoundingTerm returns the correction which rounds a truncated quotient half away from zero.
// rem is the discarded remainder, den is the divisor it was taken against.
// The term is non-zero if the leading digit of |rem|/|den| is 5 or greater,
// its sign is the sign of rem.
func RoundingTerm(rem, den *big.Int) int {
	if rem.Sign() == 0 {
		return 0
	}
	doubled := new(big.Int).Lsh(new(big.Int).Abs(rem), 1)
	if doubled.CmpAbs(den) < 0 {
		return 0
	}
	return rem.Sign()
}

// AddInt64 returns x + v.
func AddInt64(x *big.Int, v int64) *big.Int {
	if v == 0 {
		return new(big.Int).Set(x)
	}
	return new(big.Int).Add(x, big.NewInt(v))
}

// Zero returns a shared zero integer, it must not be modified.
func Zero() *big.Int {
	return bigZero
}
