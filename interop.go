package decimal

import (
	"fmt"
	"math"

	ssd "github.com/shopspring/decimal"
	"gopkg.in/inf.v0"
)

// fromForeign converts decimals of other libraries. ok is false for unknown types.
func fromForeign(v interface{}) (d Decimal, ok bool, err error) {
	switch v := v.(type) {
	case ssd.Decimal:
		return FromShopspring(v), true, nil
	case *ssd.Decimal:
		if v == nil {
			return zero, true, invalidArgf("nil *decimal.Decimal")
		}
		return FromShopspring(*v), true, nil
	case *inf.Dec:
		if v == nil {
			return zero, true, invalidArgf("nil *inf.Dec")
		}
		return FromInf(v), true, nil
	}
	return zero, false, nil
}

// FromShopspring converts a github.com/shopspring/decimal value.
func FromShopspring(v ssd.Decimal) Decimal {
	return fromOwned(v.Coefficient(), -int(v.Exponent()))
}

// Shopspring converts d into a github.com/shopspring/decimal value.
// Returns ErrRange if the scale does not fit shopspring's int32 exponent.
func (d Decimal) Shopspring() (ssd.Decimal, error) {
	if d.scale > math.MaxInt32 || -d.scale > math.MaxInt32 {
		return ssd.Zero, invalidScale(d.scale)
	}
	return ssd.NewFromBigInt(d.Digits(), int32(-d.scale)), nil
}

// FromInf converts a gopkg.in/inf.v0 value.
func FromInf(v *inf.Dec) Decimal {
	return normalized(v.UnscaledBig(), int(v.Scale()))
}

// Inf converts d into a gopkg.in/inf.v0 value.
// Returns ErrRange if the scale does not fit inf's int32 scale.
func (d Decimal) Inf() (*inf.Dec, error) {
	if d.scale > math.MaxInt32 || d.scale < math.MinInt32 {
		return nil, invalidScale(d.scale)
	}
	return inf.NewDecBig(d.Digits(), inf.Scale(d.scale)), nil
}

func invalidScale(scale int) error {
	return fmt.Errorf("%w: scale %d does not fit int32", ErrRange, scale)
}
