// Copyright 2020 Aleksandr Demakin. All rights reserved.

package decimal

import (
	"fmt"
	"io"
	"math/big"
	"strconv"
	"strings"

	mu "github.com/avdva/decimal/internal/mathutil"
	su "github.com/avdva/decimal/internal/strutil"
)

// String returns the canonical representation of d, like "-123.456".
// Exponents are never used, so the result can be long for very large or very small values.
func (d Decimal) String() string {
	if d.IsZero() {
		return "0"
	}
	var builder strings.Builder
	d.writeString(&builder)
	return builder.String()
}

func (d Decimal) writeString(w io.Writer) {
	su.WriteFixed(w, d.IsNeg(), mu.AbsString(d.coef()), d.scale, 0)
}

// ToFixed returns d in fixed-point notation with exactly dp decimal places.
// The value is rounded like RoundDP does, or padded with zeros.
// Returns ErrRange for a negative dp.
func (d Decimal) ToFixed(dp int) (string, error) {
	if err := validateDP(dp, "dp"); err != nil {
		return "", err
	}
	var builder strings.Builder
	d.writeFixed(&builder, dp)
	return builder.String(), nil
}

func (d Decimal) writeFixed(w io.Writer, dp int) {
	digits, scale := d.coef(), d.scale
	if dp < scale {
		digits, scale = roundedQuo(digits, scale-dp), dp
	}
	su.WriteFixed(w, digits.Sign() < 0, mu.AbsString(digits), scale, dp)
}

// Exponential returns d in exponential notation, like "1.23456e-7",
// using as many digits as needed to represent d exactly.
func (d Decimal) Exponential() string {
	var builder strings.Builder
	d.writeExponential(&builder, -1)
	return builder.String()
}

// ToExponential returns d in exponential notation with exactly dp digits after the decimal point.
// The value is rounded half away from zero, or padded with zeros.
// Returns ErrRange for a negative dp.
func (d Decimal) ToExponential(dp int) (string, error) {
	if err := validateDP(dp, "dp"); err != nil {
		return "", err
	}
	var builder strings.Builder
	d.writeExponential(&builder, dp)
	return builder.String(), nil
}

// writeExponential writes d as d.ddde±N. A negative dp means the natural precision.
func (d Decimal) writeExponential(w io.Writer, dp int) {
	if d.IsZero() {
		su.WriteExponential(w, false, "0", 0, dp)
		return
	}
	digits := mu.AbsString(d.digits)
	exp := mu.DecimalDigits(d.digits) - 1 - d.scale
	if toCut := len(digits) - 1 - dp; dp >= 0 && toCut > 0 {
		digits = roundedQuo(new(big.Int).Abs(d.digits), toCut).String()
		if len(digits) > dp+1 { // 9.99 -> 10.0, only zeros are dropped.
			digits = digits[:dp+1]
			exp++
		}
	}
	su.WriteExponential(w, d.IsNeg(), digits, exp, dp)
}

// Format implements fmt.Formatter.
// Supported verbs are:
//	%s, %v  canonical string
//	%q      quoted canonical string
//	%f, %F  fixed-point, precision sets decimal places
//	%e, %E  exponential, precision sets decimal places
//	%d      integer, rounded half away from zero
// Width is supported, the '-' flag pads on the right.
func (d Decimal) Format(fs fmt.State, c rune) {
	var builder strings.Builder
	prec, hasPrec := fs.Precision()
	switch c {
	case 's', 'v':
		d.writeString(&builder)
	case 'q':
		builder.WriteString(strconv.Quote(d.String()))
	case 'f', 'F':
		if hasPrec {
			d.writeFixed(&builder, prec)
		} else {
			d.writeString(&builder)
		}
	case 'e', 'E':
		if !hasPrec {
			prec = -1
		}
		d.writeExponential(&builder, prec)
	case 'd':
		builder.WriteString(d.BigInt().String())
	default:
		fmt.Fprintf(fs, "%%!%c(decimal.Decimal=%s)", c, d.String())
		return
	}
	s := builder.String()
	if c == 'E' {
		s = strings.ToUpper(s)
	}
	writePadded(fs, s)
}

func writePadded(fs fmt.State, s string) {
	width, ok := fs.Width()
	if !ok || width <= len(s) {
		io.WriteString(fs, s)
		return
	}
	pad := strings.Repeat(" ", width-len(s))
	if fs.Flag('-') {
		io.WriteString(fs, s+pad)
	} else {
		io.WriteString(fs, pad+s)
	}
}

// GoString returns the canonical string, it is used by %#v.
func (d Decimal) GoString() string {
	return d.String()
}
