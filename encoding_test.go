package decimal

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarshalJSON(t *testing.T) {
	a := assert.New(t)
	data, err := json.Marshal(MustParse("0.00123"))
	a.NoError(err)
	a.Equal(`"0.00123"`, string(data))

	data, err = json.Marshal(struct {
		Price Decimal  `json:"price"`
		Qty   *Decimal `json:"qty,omitempty"`
	}{Price: MustParse("-1.2345")})
	a.NoError(err)
	a.Equal(`{"price":"-1.2345"}`, string(data))

	data, err = json.Marshal(MustParse("-3.14").Components())
	a.NoError(err)
	a.Equal(`{"digits":-314,"scale":2}`, string(data))
}

func TestUnmarshalJSON(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		data string
		res  string
	}{
		{`"1.2345"`, "1.2345"},
		{`1.2345`, "1.2345"},
		{`-1e3`, "-1000"},
		{` 42 `, "42"},
		{`{"digits":-314,"scale":2}`, "-3.14"},
		{`{"digits":"123456789012345678901234567890","scale":-2}`, "12345678901234567890123456789000"},
		{`{"scale":0,"digits":7}`, "7"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			var d Decimal
			if a.NoError(json.Unmarshal([]byte(test.data), &d), test.data) {
				a.Equal(test.res, d.String())
			}
		})
	}

	d := MustParse("5")
	a.NoError(json.Unmarshal([]byte("null"), &d))
	a.Equal("5", d.String())
}

func TestUnmarshalJSONErrors(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		data        string
		invalidArg  bool
		parseErr    bool
		unmarshaled bool
	}{
		{data: `"1e"`, parseErr: true},
		{data: `"abc"`, parseErr: true},
		{data: `{"digits":1.5,"scale":0}`, invalidArg: true},
		{data: `{"digits":"x","scale":0}`, invalidArg: true},
		{data: `{"digits":1,"scale":1.5}`, invalidArg: true},
		{data: `{"digits":1,"scale":"1"}`, invalidArg: true},
		{data: `{"digits":1}`, invalidArg: true},
		{data: `{}`, invalidArg: true},
		{data: `true`, parseErr: true},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			d := MustParse("1")
			err := d.UnmarshalJSON([]byte(test.data))
			a.Error(err, test.data)
			if test.invalidArg {
				a.True(errors.Is(err, ErrInvalidArgument), "%s: %v", test.data, err)
			}
			if test.parseErr {
				var pe *ParseError
				a.True(errors.As(err, &pe), "%s: %v", test.data, err)
			}
			a.Equal("1", d.String())
		})
	}
	var d Decimal
	a.True(errors.Is(d.UnmarshalJSON(nil), ErrInvalidArgument))
}

func TestJSONRoundTrip(t *testing.T) {
	a := assert.New(t)
	type order struct {
		Price Decimal            `json:"price"`
		Sizes map[string]Decimal `json:"sizes"`
	}
	in := order{
		Price: MustParse("123456789.000000001"),
		Sizes: map[string]Decimal{"a": MustParse("-0.5"), "b": {}},
	}
	data, err := json.Marshal(in)
	a.NoError(err)
	var out order
	a.NoError(json.Unmarshal(data, &out))
	a.True(in.Price.Eq(out.Price))
	a.Len(out.Sizes, 2)
	a.True(in.Sizes["a"].Eq(out.Sizes["a"]))
	a.True(out.Sizes["b"].IsZero())
}

func TestText(t *testing.T) {
	a := assert.New(t)
	d := MustParse("-0.25")
	text, err := d.MarshalText()
	a.NoError(err)
	a.Equal("-0.25", string(text))

	var out Decimal
	a.NoError(out.UnmarshalText(text))
	a.True(out.Eq(d))
	a.Error(out.UnmarshalText([]byte("1.2.3")))
	a.True(out.Eq(d))

	// text keys are used for maps.
	data, err := json.Marshal(map[Decimal]int{MustParse("1.5"): 1})
	a.NoError(err)
	a.Equal(`{"1.5":1}`, string(data))
}

func TestComponents(t *testing.T) {
	a := assert.New(t)
	d := MustParse("1.50")
	c := d.Components()
	a.Equal("15", c.Digits.String())
	a.Equal(1, c.Scale)
	c.Digits.SetInt64(0)
	a.Equal("1.5", d.String())
	a.Equal("1.5", MustFrom(Components{Digits: big.NewInt(15), Scale: 1}).String())

	var z Decimal
	a.Equal(0, z.Components().Digits.Sign())
}
