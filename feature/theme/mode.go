package theme

import (
	"errors"
	"fmt"
	"regexp"
)

var (
	// ErrInvalidMode is returned when a mode is not one of Modes.
	ErrInvalidMode = errors.New("invalid theme mode")
	// ErrInvalidKey is returned for a preference key that cannot be stored.
	ErrInvalidKey = errors.New("invalid preference key")
)

// Mode is the page theme.
type Mode string

const (
	// Automatic follows the client's color scheme preference.
	Automatic Mode = "Automatic"
	DarkMode  Mode = "DarkMode"
	LightMode Mode = "LightMode"
)

// Modes lists every valid mode.
var Modes = []Mode{Automatic, DarkMode, LightMode}

// DefaultKey is used when a request names no key.
const DefaultKey = "default"

var keyPattern = regexp.MustCompile(`^[A-Za-z0-9._-]{1,128}$`)

// ParseMode validates s.
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
}

// modeOrDefault maps stored values back to a Mode. Anything unknown reads as Automatic.
func modeOrDefault(s string) Mode {
	m, err := ParseMode(s)
	if err != nil {
		return Automatic
	}
	return m
}

// ValidateKey checks that key is 1-128 characters of letters, digits, '.', '_' or '-'.
func ValidateKey(key string) error {
	if !keyPattern.MatchString(key) {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return nil
}
