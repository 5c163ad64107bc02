package chmod

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewState(t *testing.T) {
	s := NewState()

	assert.Equal(t, Permissions{}, s.Bits)
	assert.Equal(t, "000", s.Octal)
	assert.Equal(t, "---------", s.Text)
	assert.Equal(t, "chmod 000", s.Command)
}

func TestToggle(t *testing.T) {
	s := Toggle(NewState(), ClassOwner, PermRead)
	assert.Equal(t, "400", s.Octal)
	assert.Equal(t, "r--------", s.Text)

	s = Toggle(s, ClassPublic, PermExecute)
	assert.Equal(t, "401", s.Octal)
	assert.Equal(t, "r-------x", s.Text)
	assert.Equal(t, "chmod 401", s.Command)

	s = Toggle(s, ClassOwner, PermRead)
	assert.Equal(t, "001", s.Octal)
}

func TestSetOctal_PartialInputKeepsGrid(t *testing.T) {
	start := StateOf(Permissions{Owner: Triad{Read: true}})

	s, ok := SetOctal(start, "7")
	assert.False(t, ok)
	assert.Equal(t, "7", s.Octal)
	assert.Equal(t, start.Bits, s.Bits)
	assert.Equal(t, "r--------", s.Text)

	s, ok = SetOctal(s, "755")
	assert.True(t, ok)
	assert.Equal(t, "rwxr-xr-x", s.Text)
	assert.Equal(t, "chmod 755", s.Command)
}

func TestSetText(t *testing.T) {
	s, ok := SetText(NewState(), "rw-r--r--")
	assert.True(t, ok)
	assert.Equal(t, "644", s.Octal)

	s, ok = SetText(s, "rw-r--r-")
	assert.False(t, ok)
	assert.Equal(t, "rw-r--r-", s.Text)
	assert.Equal(t, "644", s.Octal)
}

func TestParseBit(t *testing.T) {
	c, p, err := ParseBit("group", "write")
	require.NoError(t, err)
	assert.Equal(t, ClassGroup, c)
	assert.Equal(t, PermWrite, p)

	_, _, err = ParseBit("other", "write")
	assert.ErrorIs(t, err, ErrUnknownBit)

	_, _, err = ParseBit("owner", "sticky")
	assert.ErrorIs(t, err, ErrUnknownBit)
}
