package radix

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertFrom_Hex(t *testing.T) {
	q, ok := ConvertFrom(Hexadecimal, "FF")
	require.True(t, ok)
	assert.Equal(t, Quadruple{Hex: "FF", Dec: "255", Oct: "377", Bin: "11111111"}, q)
}

func TestConvertFrom_KeepsRawInput(t *testing.T) {
	// lowercase input is echoed as typed, not re-canonicalized
	q, ok := ConvertFrom(Hexadecimal, "ff")
	require.True(t, ok)
	assert.Equal(t, "ff", q.Hex)
	assert.Equal(t, "255", q.Dec)

	q, ok = ConvertFrom(Decimal, "+10")
	require.True(t, ok)
	assert.Equal(t, "+10", q.Dec)
	assert.Equal(t, "A", q.Hex)
}

func TestConvertFrom_Failures(t *testing.T) {
	tests := []struct {
		name string
		base Base
		text string
	}{
		{"Empty", Decimal, ""},
		{"BadHexDigit", Hexadecimal, "FG"},
		{"BadOctalDigit", Octal, "778"},
		{"BadBinaryDigit", Binary, "102"},
		{"Prefix", Hexadecimal, "0xFF"},
		{"Overflow", Decimal, "9223372036854775808"},
		{"HexOverflow", Hexadecimal, "FFFFFFFFFFFFFFFF"},
		{"Spaces", Decimal, " 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, ok := ConvertFrom(tt.base, tt.text)
			assert.False(t, ok)

			want := Quadruple{}
			want.set(tt.base, tt.text)
			assert.Equal(t, want, q)
		})
	}
}

func TestFormatParse_RoundTrip(t *testing.T) {
	values := []int64{0, 1, -1, 7, 8, 255, -255, 1 << 31, 1<<53 + 1, math.MaxInt64, math.MinInt64}
	for _, n := range values {
		for _, b := range []Base{Hexadecimal, Decimal, Octal, Binary} {
			got, err := Parse(Format(n, b), b)
			require.NoError(t, err, "n=%d base=%s", n, b)
			assert.Equal(t, n, got, "n=%d base=%s", n, b)
		}
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "7FFFFFFFFFFFFFFF", Format(math.MaxInt64, Hexadecimal))
	assert.Equal(t, "-8000000000000000", Format(math.MinInt64, Hexadecimal))
	assert.Equal(t, "-377", Format(-255, Octal))
	assert.Equal(t, "1010", Format(10, Binary))
}

func TestParseBase(t *testing.T) {
	tests := []struct {
		name string
		want Base
	}{
		{"hex", Hexadecimal},
		{"dec", Decimal},
		{"oct", Octal},
		{"bin", Binary},
		{"HEX", Hexadecimal},
	}

	for _, tt := range tests {
		b, err := ParseBase(tt.name)
		require.NoError(t, err)
		assert.Equal(t, tt.want, b)
	}

	assert.Equal(t, "oct", Octal.String())

	_, err := ParseBase("base64")
	assert.ErrorIs(t, err, ErrUnknownBase)
}
