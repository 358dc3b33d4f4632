// Copyright 2020 Aleksandr Demakin. All rights reserved.

package decimal

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned for structurally wrong inputs:
	// a value of an unsupported type, nil digits, a non-integer scale.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrRange is returned for arguments outside of their domain.
	ErrRange = errors.New("argument out of range")
	// ErrNotFinite is returned when a NaN or an infinity is converted into a Decimal.
	// It matches ErrRange as well.
	ErrNotFinite = fmt.Errorf("%w: not finite", ErrRange)
	// ErrDivisionByZero is returned by Div and Rem if the divisor is zero.
	ErrDivisionByZero = errors.New("division by zero")
)

// ParseErrorReason tells why a decimal literal was rejected.
type ParseErrorReason int

const (
	// ReasonEmptyMantissa means there is nothing before the exponent mark.
	ReasonEmptyMantissa ParseErrorReason = iota + 1
	// ReasonEmptyExponent means there is nothing after the exponent mark.
	ReasonEmptyExponent
	// ReasonInvalidExponent means the exponent is not an integer.
	ReasonInvalidExponent
	// ReasonInvalidDigits means the mantissa without its point is not an integer.
	ReasonInvalidDigits
)

func (r ParseErrorReason) String() string {
	switch r {
	case ReasonEmptyMantissa:
		return "empty mantissa"
	case ReasonEmptyExponent:
		return "empty exponent"
	case ReasonInvalidExponent:
		return "invalid exponent"
	case ReasonInvalidDigits:
		return "invalid digits"
	default:
		return fmt.Sprintf("ParseErrorReason(%d)", int(r))
	}
}

// ParseError is returned when a string is not a valid decimal literal.
type ParseError struct {
	// Input is the offending part of the literal.
	Input  string
	Reason ParseErrorReason
}

func (pe *ParseError) Error() string {
	switch pe.Reason {
	case ReasonEmptyMantissa:
		return "cannot parse empty mantissa: " + pe.Input
	case ReasonEmptyExponent:
		return "cannot parse empty exponent: " + pe.Input
	case ReasonInvalidExponent:
		return "cannot parse integer exponent: " + pe.Input
	case ReasonInvalidDigits:
		return "cannot parse integer digits: " + pe.Input
	default:
		return "cannot parse decimal: " + pe.Input
	}
}

// ParseIntError is returned when a string is not a valid integer literal.
type ParseIntError struct {
	Input string
}

func (pe *ParseIntError) Error() string {
	return "cannot parse integer: " + pe.Input
}

// placesError is returned for a negative number of decimal places.
type placesError struct {
	arg string
	dp  int
}

func (e placesError) Error() string {
	return fmt.Sprintf("argument '%s' must be >= 0, got %d", e.arg, e.dp)
}

// Is matches both ErrRange and ErrInvalidArgument.
func (e placesError) Is(target error) bool {
	return target == ErrRange || target == ErrInvalidArgument
}

func validateDP(dp int, arg string) error {
	if dp < 0 {
		return placesError{arg: arg, dp: dp}
	}
	return nil
}

func invalidArgf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrInvalidArgument}, args...)...)
}
