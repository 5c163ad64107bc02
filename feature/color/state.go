package color

import (
	"fmt"
	"io"
)

// State is the color helper as shown.
type State struct {
	Hex  string `json:"hex"`
	RGB  string `json:"rgb"`
	CMYK string `json:"cmyk"`
}

// Of returns the fully derived state of c.
func Of(c RGB) State {
	return State{Hex: c.Hex(), RGB: c.CSV(), CMYK: c.CMYK().String()}
}

// FromHex applies an edit of the hex field. On failure the other fields are kept.
func FromHex(s State, text string) (State, bool) {
	s.Hex = text
	c, err := ParseHex(text)
	if err != nil {
		return s, false
	}
	s.RGB = c.CSV()
	s.CMYK = c.CMYK().String()
	return s, true
}

// FromRGB applies an edit of the rgb field. On failure the other fields are kept.
func FromRGB(s State, text string) (State, bool) {
	s.RGB = text
	c, err := ParseRGB(text)
	if err != nil {
		return s, false
	}
	s.Hex = c.Hex()
	s.CMYK = c.CMYK().String()
	return s, true
}

// FromCMYK applies an edit of the cmyk field. On failure the other fields are kept.
func FromCMYK(s State, text string) (State, bool) {
	s.CMYK = text
	k, err := ParseCMYK(text)
	if err != nil {
		return s, false
	}
	c := k.RGB()
	s.RGB = c.CSV()
	s.Hex = c.Hex()
	return s, true
}

// apply runs f on the current hex color and feeds the result through the rgb pipeline.
// The state is returned untouched when the hex field does not parse.
func apply(s State, f func(RGB) RGB) (State, bool) {
	c, err := ParseHex(s.Hex)
	if err != nil {
		return s, false
	}
	return FromRGB(s, f(c).CSV())
}

// Darker takes a quarter off each channel.
func Darker(s State) (State, bool) {
	return apply(s, func(c RGB) RGB {
		scale := func(v uint8) uint8 { return toByte(float32(v) - float32(v)*0.25) }
		return RGB{R: scale(c.R), G: scale(c.G), B: scale(c.B)}
	})
}

// Lighter adds a quarter to each channel, saturating at 255. A zero red channel sets
// all three channels to 4 regardless of green and blue.
func Lighter(s State) (State, bool) {
	return apply(s, func(c RGB) RGB {
		if c.R == 0 {
			return RGB{R: 4, G: 4, B: 4}
		}
		scale := func(v uint8) uint8 { return toByte(float32(v) + float32(v)*0.25) }
		return RGB{R: scale(c.R), G: scale(c.G), B: scale(c.B)}
	})
}

// Complement maps each channel to 255 − v.
func Complement(s State) (State, bool) {
	return apply(s, func(c RGB) RGB {
		return RGB{R: 255 - c.R, G: 255 - c.G, B: 255 - c.B}
	})
}

// Random replaces the color with three bytes read from entropy.
func Random(s State, entropy io.Reader) (State, error) {
	var buf [3]byte
	if _, err := io.ReadFull(entropy, buf[:]); err != nil {
		return s, fmt.Errorf("failed to read entropy: %w", err)
	}
	next, _ := FromRGB(s, RGB{R: buf[0], G: buf[1], B: buf[2]}.CSV())
	return next, nil
}
