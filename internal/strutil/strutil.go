// Package strutil renders decimal digit strings. Output is ASCII only and does not depend on locale.
package strutil

import (
	"bytes"
	"io"
	"strconv"
)

const (
	// Delim is the decimal point.
	Delim = '.'
	// ExpMark separates a mantissa from its exponent.
	ExpMark = 'e'
)

var (
	manyZeros = bytes.Repeat([]byte{'0'}, 256)
)

// WriteFixed writes |v| = digits * 10^(-scale) in fixed-point notation.
// digits must be a non-empty string of ASCII digits without a sign.
// If the fractional part is shorter than minFrac, it is padded with zeros.
// No delimiter is written if there is no fractional part.
func WriteFixed(w io.Writer, neg bool, digits string, scale, minFrac int) {
	if neg {
		w.Write([]byte{'-'})
	}
	fracLen := 0
	switch l := len(digits); {
	case scale <= 0: // integer, append -scale zeros
		w.Write([]byte(digits))
		if digits != "0" {
			w.Write(ZeroBytes(-scale))
		}
	case scale >= l: // add leading zeros and a delimiter
		w.Write([]byte{'0', Delim})
		w.Write(ZeroBytes(scale - l))
		w.Write([]byte(digits))
		fracLen = scale
	default: // insert a delimiter
		w.Write([]byte(digits[:l-scale]))
		w.Write([]byte{Delim})
		w.Write([]byte(digits[l-scale:]))
		fracLen = scale
	}
	if pad := minFrac - fracLen; pad > 0 {
		if fracLen == 0 {
			w.Write([]byte{Delim})
		}
		w.Write(ZeroBytes(pad))
	}
}

// WriteExponential writes d.ddde±N, where the mantissa digits are 'digits'
// with the delimiter after the first one.
// If the fractional part is shorter than minFrac, it is padded with zeros.
func WriteExponential(w io.Writer, neg bool, digits string, exp, minFrac int) {
	if neg {
		w.Write([]byte{'-'})
	}
	w.Write([]byte(digits[:1]))
	frac := digits[1:]
	if len(frac) > 0 || minFrac > 0 {
		w.Write([]byte{Delim})
		w.Write([]byte(frac))
		if pad := minFrac - len(frac); pad > 0 {
			w.Write(ZeroBytes(pad))
		}
	}
	w.Write([]byte{ExpMark})
	w.Write([]byte(strconv.Itoa(exp)))
}

// ZeroBytes returns a slice of count zeros. The result must not be modified.
func ZeroBytes(count int) []byte {
	if count <= 0 {
		return nil
	}
	if count <= len(manyZeros) {
		return manyZeros[:count]
	}
	result := bytes.Repeat(manyZeros, count/len(manyZeros))
	if rem := count % len(manyZeros); rem > 0 {
		result = append(result, manyZeros[:rem]...)
	}
	return result
}
