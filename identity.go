package decimal

import (
	"fmt"
	"strings"
)

const (
	// Version is the version of the package. It is a part of the identity marker.
	Version = "1.0.0"

	markerName = "github.com/avdva/decimal:Decimal"
)

var (
	marker = markerName + "@" + Version
)

type marked interface {
	DecimalMarker() string
}

// DecimalMarker returns the identity marker of the type, like "github.com/avdva/decimal:Decimal@1.0.0".
func (Decimal) DecimalMarker() string {
	return marker
}

// IsDecimal returns true if v is a Decimal of any version of this package,
// including copies vendored under other import paths.
// The check relies on the DecimalMarker method, not on the concrete type.
func IsDecimal(v interface{}) bool {
	m, ok := v.(marked)
	if !ok {
		return false
	}
	name := m.DecimalMarker()
	return strings.HasPrefix(name, markerName+"@") && len(name) > len(markerName)+1
}

// Hint tells ToPrimitive which primitive is expected.
type Hint int

const (
	// HintDefault means no preference, a string is returned.
	HintDefault Hint = iota
	// HintString requests a string.
	HintString
	// HintNumber requests a float64.
	HintNumber
)

func (h Hint) String() string {
	switch h {
	case HintDefault:
		return "default"
	case HintString:
		return "string"
	case HintNumber:
		return "number"
	default:
		return fmt.Sprintf("Hint(%d)", int(h))
	}
}

// ParseHint returns a Hint by its name: "default", "string" or "number".
// An empty name is HintDefault.
func ParseHint(s string) (Hint, error) {
	switch s {
	case "", "default":
		return HintDefault, nil
	case "string":
		return HintString, nil
	case "number":
		return HintNumber, nil
	default:
		return 0, invalidArgf("unknown hint '%s'", s)
	}
}

// PrimitiveKind is the kind of value in a Primitive.
type PrimitiveKind int

const (
	// KindString means Primitive.Str is set.
	KindString PrimitiveKind = iota + 1
	// KindNumber means Primitive.Num is set.
	KindNumber
)

// Primitive holds either a string or a float64.
type Primitive struct {
	Kind PrimitiveKind
	Str  string
	Num  float64
}

// Value returns the underlying string or float64.
func (p Primitive) Value() interface{} {
	if p.Kind == KindNumber {
		return p.Num
	}
	return p.Str
}

// ToPrimitive converts d to a primitive according to the hint.
// Default and string hints produce the canonical string, the number hint produces Float64.
// Returns ErrInvalidArgument for unknown hints.
func (d Decimal) ToPrimitive(hint Hint) (Primitive, error) {
	switch hint {
	case HintDefault, HintString:
		return Primitive{Kind: KindString, Str: d.String()}, nil
	case HintNumber:
		return Primitive{Kind: KindNumber, Num: d.Float64()}, nil
	default:
		return Primitive{}, invalidArgf("unknown hint %v", hint)
	}
}
