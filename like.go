package decimal

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
)

const (
	maxSafeInteger = 1<<53 - 1
)

// Components is the structural form of a decimal: Digits * 10^(-Scale).
type Components struct {
	Digits *big.Int `json:"digits"`
	Scale  int      `json:"scale"`
}

// componenter is implemented by Decimal and by Decimals from other copies of this package.
type componenter interface {
	Digits() *big.Int
	Scale() int
}

// From converts a decimal-like value into a Decimal.
// Supported values are:
//	- Decimal, *Decimal, Components, *Components;
//	- anything with 'Digits() *big.Int' and 'Scale() int' methods;
//	- string, parsed with Parse;
//	- *big.Int, big.Int and all integer types;
//	- float32 and float64, which must be finite;
//	- shopspring's decimal.Decimal and *inf.Dec.
// As a last resort, a fmt.Stringer is parsed from its String().
// Returns ErrInvalidArgument for values of other types.
func From(v interface{}) (Decimal, error) {
	switch v := v.(type) {
	case Decimal:
		return v, nil
	case *Decimal:
		if v == nil {
			return zero, invalidArgf("nil *Decimal")
		}
		return *v, nil
	case Components:
		return New(v.Digits, v.Scale)
	case *Components:
		if v == nil {
			return zero, invalidArgf("nil *Components")
		}
		return New(v.Digits, v.Scale)
	case string:
		return Parse(v)
	case *big.Int:
		if v == nil {
			return zero, invalidArgf("nil *big.Int")
		}
		return New(v, 0)
	case big.Int:
		return New(&v, 0)
	case int:
		return NewFromInt64(int64(v), 0), nil
	case int8:
		return NewFromInt64(int64(v), 0), nil
	case int16:
		return NewFromInt64(int64(v), 0), nil
	case int32:
		return NewFromInt64(int64(v), 0), nil
	case int64:
		return NewFromInt64(v, 0), nil
	case uint:
		return fromUint64(uint64(v)), nil
	case uint8:
		return fromUint64(uint64(v)), nil
	case uint16:
		return fromUint64(uint64(v)), nil
	case uint32:
		return fromUint64(uint64(v)), nil
	case uint64:
		return fromUint64(v), nil
	case float64:
		return NewFromFloat64(v)
	case float32:
		return NewFromFloat32(v)
	case componenter:
		return New(v.Digits(), v.Scale())
	}
	if d, ok, err := fromForeign(v); ok {
		return d, err
	}
	if s, ok := v.(fmt.Stringer); ok {
		repr := s.String()
		d, err := Parse(repr)
		if err != nil {
			return zero, fmt.Errorf("%w: cannot convert '%s' to a Decimal: %v", ErrInvalidArgument, repr, err)
		}
		return d, nil
	}
	return zero, invalidArgf("cannot convert %T to a Decimal", v)
}

// MustFrom is like From, but panics on error.
func MustFrom(v interface{}) Decimal {
	d, err := From(v)
	if err != nil {
		panic(err)
	}
	return d
}

func fromUint64(v uint64) Decimal {
	return fromOwned(new(big.Int).SetUint64(v), 0)
}

// NewFromFloat64 returns a value for the given float64.
// Integers up to 2^53-1 are converted directly, other numbers are
// converted from their shortest exponential representation.
// Returns ErrNotFinite for infinities and not-a-numbers.
func NewFromFloat64(f float64) (Decimal, error) {
	return newFromFloat(f, 64)
}

// NewFromFloat32 is like NewFromFloat64, but uses the shortest float32 representation.
func NewFromFloat32(f float32) (Decimal, error) {
	return newFromFloat(float64(f), 32)
}

func newFromFloat(f float64, bitSize int) (Decimal, error) {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return zero, fmt.Errorf("%w: %v", ErrNotFinite, f)
	}
	if f == math.Trunc(f) && math.Abs(f) <= maxSafeInteger {
		return NewFromInt64(int64(f), 0), nil
	}
	return Parse(strconv.FormatFloat(f, 'e', -1, bitSize))
}

// MustFromFloat64 is like NewFromFloat64, but panics on error.
func MustFromFloat64(f float64) Decimal {
	d, err := NewFromFloat64(f)
	if err != nil {
		panic(err)
	}
	return d
}

// Equals checks if d is equal to a decimal-like value, see From.
func (d Decimal) Equals(v interface{}) (bool, error) {
	other, err := From(v)
	if err != nil {
		return false, err
	}
	return d.Eq(other), nil
}

// Compare compares d with a decimal-like value, see From.
// Returns -1 if d < v, 0 if d == v, 1 if d > v
func (d Decimal) Compare(v interface{}) (int, error) {
	other, err := From(v)
	if err != nil {
		return 0, err
	}
	return d.Cmp(other), nil
}
