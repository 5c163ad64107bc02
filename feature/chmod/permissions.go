package chmod

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidOctal is returned for anything but exactly three octal digits.
	ErrInvalidOctal = errors.New("octal permissions must be exactly three digits 0-7")
	// ErrInvalidText is returned for a symbolic string that is not nine r/w/x/- characters in slot order.
	ErrInvalidText = errors.New("symbolic permissions must be nine characters of rwx or -")
)

// Triad is the read/write/execute bits of one class.
type Triad struct {
	Read    bool `json:"read"`
	Write   bool `json:"write"`
	Execute bool `json:"execute"`
}

// Digit returns the octal digit 4·read + 2·write + 1·execute.
func (t Triad) Digit() byte {
	var d byte
	if t.Read {
		d |= 4
	}
	if t.Write {
		d |= 2
	}
	if t.Execute {
		d |= 1
	}
	return d
}

// TriadFromDigit decodes bits 2/1/0 of an octal digit into read/write/execute.
func TriadFromDigit(d byte) Triad {
	return Triad{Read: d&4 != 0, Write: d&2 != 0, Execute: d&1 != 0}
}

func (t Triad) symbolic() string {
	b := []byte("---")
	if t.Read {
		b[0] = 'r'
	}
	if t.Write {
		b[1] = 'w'
	}
	if t.Execute {
		b[2] = 'x'
	}
	return string(b)
}

// Permissions is the full 3×3 permission grid.
type Permissions struct {
	Owner  Triad `json:"owner"`
	Group  Triad `json:"group"`
	Public Triad `json:"public"`
}

func (p Permissions) triads() [3]Triad {
	return [3]Triad{p.Owner, p.Group, p.Public}
}

// Octal returns the three-digit octal form ("755").
func (p Permissions) Octal() string {
	var b [3]byte
	for i, t := range p.triads() {
		b[i] = '0' + t.Digit()
	}
	return string(b[:])
}

// Text returns the nine-character symbolic form ("rwxr-xr-x").
func (p Permissions) Text() string {
	var sb strings.Builder
	for _, t := range p.triads() {
		sb.WriteString(t.symbolic())
	}
	return sb.String()
}

// Command returns the shell command applying these permissions.
func (p Permissions) Command() string {
	return "chmod " + p.Octal()
}

// ParseOctal decodes exactly three octal digits.
func ParseOctal(text string) (Permissions, error) {
	if len(text) != 3 {
		return Permissions{}, ErrInvalidOctal
	}
	var t [3]Triad
	for i := 0; i < 3; i++ {
		c := text[i]
		if c < '0' || c > '7' {
			return Permissions{}, fmt.Errorf("%w: %q", ErrInvalidOctal, text)
		}
		t[i] = TriadFromDigit(c - '0')
	}
	return Permissions{Owner: t[0], Group: t[1], Public: t[2]}, nil
}

var slots = [3]byte{'r', 'w', 'x'}

// IsValidText reports whether text is nine characters where each is '-' or the
// letter for its slot, cycling r, w, x.
func IsValidText(text string) bool {
	if len(text) != 9 {
		return false
	}
	for i := 0; i < len(text); i++ {
		if c := text[i]; c != '-' && c != slots[i%3] {
			return false
		}
	}
	return true
}

// ParseText decodes a symbolic permission string.
func ParseText(text string) (Permissions, error) {
	if !IsValidText(text) {
		return Permissions{}, fmt.Errorf("%w: %q", ErrInvalidText, text)
	}
	var t [3]Triad
	for i := range t {
		t[i] = Triad{
			Read:    text[i*3] == 'r',
			Write:   text[i*3+1] == 'w',
			Execute: text[i*3+2] == 'x',
		}
	}
	return Permissions{Owner: t[0], Group: t[1], Public: t[2]}, nil
}
