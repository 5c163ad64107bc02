package radix

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Base is one of the four supported radixes.
type Base int

const (
	Binary      Base = 2
	Octal       Base = 8
	Decimal     Base = 10
	Hexadecimal Base = 16
)

// ErrUnknownBase is returned for a field name other than hex, dec, oct or bin.
var ErrUnknownBase = errors.New("unknown base")

// ParseBase maps a field name to its base.
func ParseBase(name string) (Base, error) {
	switch strings.ToLower(name) {
	case "hex":
		return Hexadecimal, nil
	case "dec":
		return Decimal, nil
	case "oct":
		return Octal, nil
	case "bin":
		return Binary, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownBase, name)
}

// String returns the field name of the base.
func (b Base) String() string {
	switch b {
	case Hexadecimal:
		return "hex"
	case Decimal:
		return "dec"
	case Octal:
		return "oct"
	case Binary:
		return "bin"
	}
	return "base" + strconv.Itoa(int(b))
}

// Quadruple holds the same integer written in all four bases.
type Quadruple struct {
	Hex string `json:"hex"`
	Dec string `json:"dec"`
	Oct string `json:"oct"`
	Bin string `json:"bin"`
}

func (q *Quadruple) set(b Base, v string) {
	switch b {
	case Hexadecimal:
		q.Hex = v
	case Decimal:
		q.Dec = v
	case Octal:
		q.Oct = v
	case Binary:
		q.Bin = v
	}
}

// Format writes n in base b without prefix or padding. Hex digits are uppercase and
// negative values carry a leading minus sign.
func Format(n int64, b Base) string {
	s := strconv.FormatInt(n, int(b))
	if b == Hexadecimal {
		return strings.ToUpper(s)
	}
	return s
}

// Parse reads text as a signed 64-bit integer in base b.
func Parse(text string, b Base) (int64, error) {
	return strconv.ParseInt(text, int(b), 64)
}

// ConvertFrom parses text in base and derives the other three representations.
// The field for base always holds text verbatim; when text does not parse the other
// three fields are empty.
func ConvertFrom(base Base, text string) (Quadruple, bool) {
	var q Quadruple

	n, err := Parse(text, base)
	if err == nil {
		for _, b := range []Base{Hexadecimal, Decimal, Octal, Binary} {
			q.set(b, Format(n, b))
		}
	}
	q.set(base, text)

	return q, err == nil
}
