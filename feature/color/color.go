package color

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrInvalidHex is returned for anything but six hex digits.
	ErrInvalidHex = errors.New("hex color must be exactly six hex digits")
	// ErrInvalidRGB is returned for anything but three comma-separated bytes.
	ErrInvalidRGB = errors.New("rgb color must be three comma-separated values 0-255")
	// ErrInvalidCMYK is returned for anything but four comma-separated floats.
	ErrInvalidCMYK = errors.New("cmyk color must be four comma-separated numbers")
)

// RGB is a 24-bit color.
type RGB struct {
	R, G, B uint8
}

// Hex returns the uppercase RRGGBB form.
func (c RGB) Hex() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

// CSV returns the "r,g,b" form.
func (c RGB) CSV() string {
	return fmt.Sprintf("%d,%d,%d", c.R, c.G, c.B)
}

// CMYK converts to the subtractive model with k = 1 − max(r,g,b).
func (c RGB) CMYK() CMYK {
	rn := float32(c.R) / 255
	gn := float32(c.G) / 255
	bn := float32(c.B) / 255

	k := 1 - max(rn, gn, bn)
	if k == 1 {
		return CMYK{K: 1}
	}
	return CMYK{
		C: (1 - rn - k) / (1 - k),
		M: (1 - gn - k) / (1 - k),
		Y: (1 - bn - k) / (1 - k),
		K: k,
	}
}

// CMYK holds normalized cyan, magenta, yellow and key components.
type CMYK struct {
	C, M, Y, K float32
}

// String returns "c,m,y,k" with each component in its shortest form.
func (c CMYK) String() string {
	return strings.Join([]string{
		formatComponent(c.C),
		formatComponent(c.M),
		formatComponent(c.Y),
		formatComponent(c.K),
	}, ",")
}

// RGB converts back with r = 255·(1−c)·(1−k), truncating each channel.
func (c CMYK) RGB() RGB {
	return RGB{
		R: toByte(float32(255*(1-c.C)) * (1 - c.K)),
		G: toByte(float32(255*(1-c.M)) * (1 - c.K)),
		B: toByte(float32(255*(1-c.Y)) * (1 - c.K)),
	}
}

// formatComponent prints the shortest float32 representation, keeping a ".0" on whole numbers.
func formatComponent(v float32) string {
	s := strconv.FormatFloat(float64(v), 'f', -1, 32)
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}
	return s
}

// toByte truncates toward zero and saturates at the uint8 bounds. NaN maps to 0.
func toByte(v float32) uint8 {
	switch {
	case math.IsNaN(float64(v)) || v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v)
	}
}

// ParseHex decodes RRGGBB, case-insensitively.
func ParseHex(text string) (RGB, error) {
	if len(text) != 6 {
		return RGB{}, ErrInvalidHex
	}
	var ch [3]uint8
	for i := range ch {
		v, err := strconv.ParseUint(text[i*2:i*2+2], 16, 8)
		if err != nil {
			return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, text)
		}
		ch[i] = uint8(v)
	}
	return RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// ParseRGB decodes "r,g,b".
func ParseRGB(text string) (RGB, error) {
	parts := strings.Split(text, ",")
	if len(parts) != 3 {
		return RGB{}, ErrInvalidRGB
	}
	var ch [3]uint8
	for i, p := range parts {
		v, err := strconv.ParseUint(p, 10, 8)
		if err != nil {
			return RGB{}, fmt.Errorf("%w: %q", ErrInvalidRGB, text)
		}
		ch[i] = uint8(v)
	}
	return RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// ParseCMYK decodes "c,m,y,k". Components are not range checked.
func ParseCMYK(text string) (CMYK, error) {
	parts := strings.Split(text, ",")
	if len(parts) != 4 {
		return CMYK{}, ErrInvalidCMYK
	}
	var v [4]float32
	for i, p := range parts {
		f, err := strconv.ParseFloat(p, 32)
		if err != nil {
			return CMYK{}, fmt.Errorf("%w: %q", ErrInvalidCMYK, text)
		}
		v[i] = float32(f)
	}
	return CMYK{C: v[0], M: v[1], Y: v[2], K: v[3]}, nil
}
