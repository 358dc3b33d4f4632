package mathutil

import (
	"fmt"
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func bi(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("bad test integer " + s)
	}
	return v
}

func TestIsIntLiteral(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		s  string
		ok bool
	}{
		{"0", true},
		{"123", true},
		{"+123", true},
		{"-0", true},
		{"007", true},
		{"", false},
		{"+", false},
		{"-", false},
		{" 1", false},
		{"1 ", false},
		{"1_000", false},
		{"1.0", false},
		{"0x10", false},
		{"--1", false},
		{"1e3", false},
		{"١٢", false},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.ok, IsIntLiteral(test.s), test.s)
			v, ok := ParseInt(test.s)
			a.Equal(test.ok, ok, test.s)
			if ok {
				a.Equal(0, v.Cmp(bi(strings.TrimPrefix(test.s, "+"))))
			}
		})
	}
}

func TestDivRem(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		n, d, q, r int64
	}{
		{7, 2, 3, 1},
		{-7, 2, -3, -1},
		{7, -2, -3, 1},
		{-7, -2, 3, -1},
		{0, 5, 0, 0},
		{10, 10, 1, 0},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			n, d := big.NewInt(test.n), big.NewInt(test.d)
			q, r := DivRem(n, d)
			a.Equal(test.q, q.Int64())
			a.Equal(test.r, r.Int64())
			// the sign convention matches native division.
			a.Equal(test.n/test.d, q.Int64())
			a.Equal(test.n%test.d, r.Int64())
			a.Equal(test.n, n.Int64(), "arguments must stay untouched")
			a.Equal(test.d, d.Int64(), "arguments must stay untouched")
		})
	}
}

func TestCmp(t *testing.T) {
	a := assert.New(t)
	a.Equal(0, Cmp(bi("123456789012345678901234567890"), bi("123456789012345678901234567890")))
	a.Equal(-1, Cmp(bi("-5"), bi("3")))
	a.Equal(1, Cmp(bi("5"), bi("-30")))
	a.Equal(-1, CmpAbs(bi("5"), bi("-30")))
	a.Equal(0, CmpAbs(bi("-7"), bi("7")))
}

func TestPow10(t *testing.T) {
	a := assert.New(t)
	for _, p := range []int{0, 1, 19, 20, cachedPowers - 1, cachedPowers, 100} {
		a.Equal("1"+strings.Repeat("0", p), Pow10(p).String())
	}
	a.Panics(func() {
		Pow10(-1)
	})
	a.Equal("-1200", MulPow10(big.NewInt(-12), 2).String())
	x := big.NewInt(7)
	a.Equal("7", MulPow10(x, 0).String())
	a.NotSame(x, MulPow10(x, 0))
}

func TestTrimZeros(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		m      string
		scale  int
		rm     string
		rscale int
	}{
		{"0", 5, "0", 0},
		{"1", 0, "1", 0},
		{"100", 0, "1", -2},
		{"-12300", -3, "-123", -5},
		{"10" + strings.Repeat("0", 70), 70, "1", -1},
		{"101", 2, "101", 2},
		{"1500", 3, "15", 1},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			in := bi(test.m)
			m, scale := TrimZeros(in, test.scale)
			a.Equal(test.rm, m.String())
			a.Equal(test.rscale, scale)
			a.Equal(test.m, in.String())
		})
	}
}

func TestRoundingTerm(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		r, d string
		term int
	}{
		{"0", "10", 0},
		{"4", "10", 0},
		{"5", "10", 1},
		{"9", "10", 1},
		{"-5", "10", -1},
		{"-4", "10", 0},
		{"7", "100", 0},
		{"50", "100", 1},
		{"49", "100", 0},
		{"1", "3", 0},
		{"2", "3", 1},
		{"-2", "-3", -1},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.term, RoundingTerm(bi(test.r), bi(test.d)))
		})
	}
}

func TestDigits(t *testing.T) {
	a := assert.New(t)
	a.Equal(1, DecimalDigits(bi("0")))
	a.Equal(3, DecimalDigits(bi("-123")))
	a.Equal(25, DecimalDigits(bi("1"+strings.Repeat("0", 24))))
	a.Equal("123", AbsString(bi("-123")))
	a.Equal("0", AbsString(bi("0")))
	a.True(IsEven(bi("-4")))
	a.False(IsEven(bi("7")))
	a.Equal("-2", Half(bi("-4")).String())
	a.Equal("-35", MulFive(bi("-7")).String())
	a.True(IsOne(bi("1")))
	a.False(IsOne(bi("-1")))
	a.Equal("0", AddInt64(bi("-1"), 1).String())
	a.Equal(0, Zero().Sign())
}

func BenchmarkTrimZeros(b *testing.B) {
	m := bi("123456789" + strings.Repeat("0", 40))
	for i := 0; i < b.N; i++ {
		TrimZeros(m, 0)
	}
}
