package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	tests := map[string]string{
		"1+2*3":     "7",
		"(1+2)*3":   "9",
		"7/2":       "3.5",
		"10/2":      "5",
		"7 % 3":     "1",
		"2^10":      "1024",
		"-4 + 1.25": "-2.75",
		"0.1 + 0.2": "0.30000000000000004",
		" 42 ":      "42",
		"-(0.0)":    "0",
		"2**3":      "8",
		"7.5 % 2":   "1.5",
		"1.5e3":     "1500",

		"3000000000*4000000000": "12000000000000000000",
		"9223372036854775807+1": "9223372036854775808",
		"99999999999999999999":  "100000000000000000000",
	}
	for in, want := range tests {
		got, err := Evaluate(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestEvaluate_Errors(t *testing.T) {
	tests := map[string]error{
		"":       ErrEmptyExpression,
		"   ":    ErrEmptyExpression,
		"1/0":    ErrNotFinite,
		"0/0":    ErrNotFinite,
		"7 % 0":  ErrNotFinite,
		"1 == 1": ErrUnsupportedToken,
		"'a'":    ErrUnsupportedToken,

		"3 > 2 ? 1 : 0": ErrUnsupportedToken,
		"4 // 2":        ErrUnsupportedToken,
		"4 /* 2 */":     ErrUnsupportedToken,
		"x + 1":         ErrUnsupportedToken,
		"abs(-1)":       ErrUnsupportedToken,
		"0x10":          ErrUnsupportedToken,
		"1 .. 3":        ErrUnsupportedToken,
		"!1":            ErrUnsupportedToken,
	}
	for in, want := range tests {
		_, err := Evaluate(in)
		assert.ErrorIs(t, err, want, in)
	}

	for _, in := range []string{"1+", "1 +* 2", "(1", "1 2"} {
		_, err := Evaluate(in)
		assert.Error(t, err, in)
	}
}

func TestResult(t *testing.T) {
	assert.Equal(t, "7", Result("1+2*3"))
	assert.Equal(t, "", Result("1/0"))
	assert.Equal(t, "", Result("1+"))
}
