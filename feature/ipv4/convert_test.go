package ipv4

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromDotted(t *testing.T) {
	s, ok := FromDotted(State{}, "192.168.1.1")
	require.True(t, ok)
	assert.Equal(t, State{
		Dotted:  "192.168.1.1",
		Integer: "3232235777",
		Binary:  "11000000.10101000.00000001.00000001",
	}, s)
}

func TestFromDotted_InvalidClears(t *testing.T) {
	prev := State{Dotted: "10.0.0.1", Integer: "167772161", Binary: "00001010.00000000.00000000.00000001"}

	for _, text := range []string{"", "10.0.0", "10.0.0.256", "10.0.0.a", "10.0.0.1.5", "::1", "01.2.3.4"} {
		s, ok := FromDotted(prev, text)
		assert.False(t, ok, text)
		assert.Equal(t, State{Dotted: text}, s, text)
	}
}

func TestFromInteger(t *testing.T) {
	s, ok := FromInteger(State{}, "3232235777")
	require.True(t, ok)
	assert.Equal(t, "192.168.1.1", s.Dotted)
	assert.Equal(t, "11000000.10101000.00000001.00000001", s.Binary)

	s, ok = FromInteger(State{}, "4294967295")
	require.True(t, ok)
	assert.Equal(t, "255.255.255.255", s.Dotted)
}

func TestFromInteger_InvalidKeepsStale(t *testing.T) {
	prev := State{Dotted: "0.0.0.1", Integer: "1", Binary: "00000000.00000000.00000000.00000001"}

	for _, text := range []string{"4294967296", "-1", "abc", ""} {
		s, ok := FromInteger(prev, text)
		assert.False(t, ok, text)
		assert.Equal(t, prev.Dotted, s.Dotted)
		assert.Equal(t, prev.Binary, s.Binary)
		assert.Equal(t, text, s.Integer)
	}
}

func TestFromBinary(t *testing.T) {
	s, ok := FromBinary(State{}, "11000000.10101000.00000001.00000001")
	require.True(t, ok)
	assert.Equal(t, "192.168.1.1", s.Dotted)
	assert.Equal(t, "3232235777", s.Integer)
}

func TestFromBinary_ZeroFillsMissingGroups(t *testing.T) {
	s, ok := FromBinary(State{}, "11000000.10101000")
	require.True(t, ok)
	assert.Equal(t, "192.168.0.0", s.Dotted)

	s, ok = FromBinary(State{}, "1")
	require.True(t, ok)
	assert.Equal(t, "1.0.0.0", s.Dotted)
}

func TestFromBinary_InvalidKeepsStale(t *testing.T) {
	prev := State{Dotted: "1.2.3.4", Integer: "16909060", Binary: "x"}

	for _, text := range []string{"", "2", "100000000", "1.1.1.1.1", "1..1"} {
		s, ok := FromBinary(prev, text)
		assert.False(t, ok, text)
		assert.Equal(t, State{Dotted: "1.2.3.4", Integer: "16909060", Binary: text}, s)
	}
}

func TestFromLookup(t *testing.T) {
	s, ok := FromLookup("8.8.8.8")
	require.True(t, ok)
	assert.Equal(t, "134744072", s.Integer)

	s, ok = FromLookup("")
	assert.False(t, ok)
	assert.Equal(t, State{}, s)
}

func TestRoundTrips(t *testing.T) {
	for _, addr := range []string{"0.0.0.0", "127.0.0.1", "192.168.1.1", "10.255.0.42", "255.255.255.255"} {
		v, err := ParseDotted(addr)
		require.NoError(t, err)

		n, err := ParseInteger(FormatInteger(v))
		require.NoError(t, err)
		assert.Equal(t, addr, FormatDotted(n))

		b, err := ParseBinary(FormatBinary(v))
		require.NoError(t, err)
		assert.Equal(t, addr, FormatDotted(b))
	}
}
