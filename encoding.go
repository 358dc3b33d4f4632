package decimal

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

var (
	jsonNull = []byte("null")
)

// Components returns the digits and the scale of d.
func (d Decimal) Components() Components {
	return Components{Digits: d.Digits(), Scale: d.scale}
}

// MarshalJSON marshals d as a string with the canonical representation, like `"1234.5678"`.
func (d Decimal) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('"')
	d.writeString(&b)
	b.WriteByte('"')
	return b.Bytes(), nil
}

// UnmarshalJSON unmarshals a string, a number, or an object like `{"digits":-314,"scale":2}`.
// Digits in an object can also be a string. null is a no-op.
func (d *Decimal) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("%w: empty json", ErrInvalidArgument)
	}
	if bytes.Equal(data, jsonNull) {
		return nil
	}
	var (
		value Decimal
		err   error
	)
	switch data[0] {
	case '{':
		value, err = unmarshalComponents(data)
	case '"':
		var s string
		if err = json.Unmarshal(data, &s); err == nil {
			value, err = Parse(s)
		}
	default:
		value, err = Parse(string(data))
	}
	if err != nil {
		return err
	}
	*d = value
	return nil
}

func unmarshalComponents(data []byte) (Decimal, error) {
	var raw struct {
		Digits json.RawMessage `json:"digits"`
		Scale  json.RawMessage `json:"scale"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return zero, err
	}
	if len(raw.Digits) == 0 || len(raw.Scale) == 0 {
		return zero, invalidArgf("both 'digits' and 'scale' are required")
	}
	digitsStr := string(raw.Digits)
	if raw.Digits[0] == '"' {
		if err := json.Unmarshal(raw.Digits, &digitsStr); err != nil {
			return zero, err
		}
	}
	digits, err := ParseBigInt(digitsStr)
	if err != nil {
		return zero, fmt.Errorf("%w: digits must be an arbitrary-precision integer: %v", ErrInvalidArgument, err)
	}
	scale, err := strconv.Atoi(string(raw.Scale))
	if err != nil {
		return zero, invalidArgf("scale must be an integer, got %s", raw.Scale)
	}
	return fromOwned(digits, scale), nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Decimal) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Decimal) UnmarshalText(data []byte) error {
	value, err := Parse(string(data))
	if err != nil {
		return err
	}
	*d = value
	return nil
}
