package ipv4

import (
	"errors"
	"fmt"
	"net/netip"
	"strconv"
	"strings"
)

var (
	// ErrNotIPv4 is returned for dotted input that is not a plain IPv4 literal.
	ErrNotIPv4 = errors.New("not an IPv4 address")
	// ErrSegmentCount is returned for binary input with zero or more than four groups.
	ErrSegmentCount = errors.New("binary address needs 1 to 4 groups")
)

// State holds the three representations of one address as shown to the user.
type State struct {
	Dotted  string `json:"dotted"`
	Integer string `json:"integer"`
	Binary  string `json:"binary"`
}

// ParseDotted parses a dotted-decimal IPv4 literal ("192.168.1.1").
func ParseDotted(text string) (uint32, error) {
	addr, err := netip.ParseAddr(text)
	if err != nil {
		return 0, err
	}
	if !addr.Is4() {
		return 0, fmt.Errorf("%w: %q", ErrNotIPv4, text)
	}
	b := addr.As4()
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3]), nil
}

// ParseInteger parses an unsigned decimal that fits in 32 bits.
func ParseInteger(text string) (uint32, error) {
	v, err := strconv.ParseUint(text, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}

// ParseBinary parses dot-separated 8-bit binary groups. Fewer than four groups
// leave the trailing octets zero ("11000000.10101000" is 192.168.0.0).
func ParseBinary(text string) (uint32, error) {
	groups := strings.Split(text, ".")
	if len(groups) > 4 {
		return 0, ErrSegmentCount
	}

	var octets [4]byte
	for i, g := range groups {
		v, err := strconv.ParseUint(g, 2, 8)
		if err != nil {
			return 0, fmt.Errorf("group %d: %w", i+1, err)
		}
		octets[i] = byte(v)
	}
	return uint32(octets[0])<<24 | uint32(octets[1])<<16 | uint32(octets[2])<<8 | uint32(octets[3]), nil
}

func octets(v uint32) [4]byte {
	return [4]byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}
}

// FormatDotted writes v as a dotted-decimal literal.
func FormatDotted(v uint32) string {
	return netip.AddrFrom4(octets(v)).String()
}

// FormatInteger writes v as an unsigned decimal.
func FormatInteger(v uint32) string {
	return strconv.FormatUint(uint64(v), 10)
}

// FormatBinary writes v as four zero-padded 8-bit groups joined by dots.
func FormatBinary(v uint32) string {
	o := octets(v)
	return fmt.Sprintf("%08b.%08b.%08b.%08b", o[0], o[1], o[2], o[3])
}

// FromDotted applies an edit of the dotted field. Invalid input clears the other fields.
func FromDotted(s State, text string) (State, bool) {
	v, err := ParseDotted(text)
	if err != nil {
		return State{Dotted: text}, false
	}
	return State{Dotted: text, Integer: FormatInteger(v), Binary: FormatBinary(v)}, true
}

// FromInteger applies an edit of the integer field. Invalid input leaves the other fields as they were.
func FromInteger(s State, text string) (State, bool) {
	s.Integer = text
	v, err := ParseInteger(text)
	if err != nil {
		return s, false
	}
	s.Dotted = FormatDotted(v)
	s.Binary = FormatBinary(v)
	return s, true
}

// FromBinary applies an edit of the binary field. Invalid input leaves the other fields as they were.
func FromBinary(s State, text string) (State, bool) {
	s.Binary = text
	v, err := ParseBinary(text)
	if err != nil {
		return s, false
	}
	s.Dotted = FormatDotted(v)
	s.Integer = FormatInteger(v)
	return s, true
}

// FromLookup fills all three fields from an address reported by the host.
// An address that does not parse clears everything.
func FromLookup(addr string) (State, bool) {
	v, err := ParseDotted(addr)
	if err != nil {
		return State{}, false
	}
	return State{Dotted: addr, Integer: FormatInteger(v), Binary: FormatBinary(v)}, true
}
