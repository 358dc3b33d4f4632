package decimal

import (
	"math"
	"math/big"
	"strings"

	mu "github.com/avdva/decimal/internal/mathutil"
)

// ParseBigInt parses an integer literal: an optional sign followed by one or more ASCII digits.
// Returns *ParseIntError for anything else.
func ParseBigInt(s string) (*big.Int, error) {
	v, ok := mu.ParseInt(s)
	if !ok {
		return nil, &ParseIntError{Input: s}
	}
	return v, nil
}

// parseDecimal splits a decimal literal into digits and scale.
func parseDecimal(s string) (digits *big.Int, scale int, err error) {
	mantissa, exp := s, 0
	if pos := strings.IndexAny(s, "eE"); pos >= 0 {
		mantissa = s[:pos]
		expStr := s[pos+1:]
		if len(expStr) == 0 {
			return nil, 0, &ParseError{Input: s, Reason: ReasonEmptyExponent}
		}
		if exp, err = parseExponent(expStr); err != nil {
			return nil, 0, err
		}
	}
	if len(mantissa) == 0 {
		return nil, 0, &ParseError{Input: s, Reason: ReasonEmptyMantissa}
	}

	digitStr, fracLen := mantissa, 0
	if dot := strings.IndexByte(mantissa, '.'); dot >= 0 {
		trailing := mantissa[dot+1:]
		digitStr = mantissa[:dot] + trailing
		fracLen = len(trailing)
	}

	digits, ok := mu.ParseInt(digitStr)
	if !ok {
		return nil, 0, &ParseError{Input: digitStr, Reason: ReasonInvalidDigits}
	}
	return digits, fracLen - exp, nil
}

// parseExponent parses a strict integer exponent. Its magnitude is limited to math.MaxInt32.
func parseExponent(s string) (int, error) {
	v, ok := mu.ParseInt(s)
	if !ok || !v.IsInt64() || v.Int64() > math.MaxInt32 || v.Int64() < -math.MaxInt32 {
		return 0, &ParseError{Input: s, Reason: ReasonInvalidExponent}
	}
	return int(v.Int64()), nil
}
