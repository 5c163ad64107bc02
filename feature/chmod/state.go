package chmod

import (
	"errors"
	"fmt"
)

// ErrUnknownBit is returned by ParseBit for an unknown class or permission name.
var ErrUnknownBit = errors.New("unknown permission bit")

// Class selects one triad of the grid.
type Class string

const (
	ClassOwner  Class = "owner"
	ClassGroup  Class = "group"
	ClassPublic Class = "public"
)

// Perm selects one bit of a triad.
type Perm string

const (
	PermRead    Perm = "read"
	PermWrite   Perm = "write"
	PermExecute Perm = "execute"
)

// ParseBit validates a class/permission pair.
func ParseBit(who, perm string) (Class, Perm, error) {
	c := Class(who)
	switch c {
	case ClassOwner, ClassGroup, ClassPublic:
	default:
		return "", "", fmt.Errorf("%w: class %q", ErrUnknownBit, who)
	}
	p := Perm(perm)
	switch p {
	case PermRead, PermWrite, PermExecute:
	default:
		return "", "", fmt.Errorf("%w: permission %q", ErrUnknownBit, perm)
	}
	return c, p, nil
}

// State is the calculator as shown: the grid plus its three derived strings.
type State struct {
	Bits    Permissions `json:"bits"`
	Octal   string      `json:"octal"`
	Text    string      `json:"text"`
	Command string      `json:"command"`
}

// NewState returns the initial all-clear state (000 / --------- / chmod 000).
func NewState() State {
	return derive(Permissions{})
}

// StateOf returns the state for a given grid.
func StateOf(p Permissions) State {
	return derive(p)
}

func derive(p Permissions) State {
	return State{Bits: p, Octal: p.Octal(), Text: p.Text(), Command: p.Command()}
}

// Toggle flips one bit and re-derives every string.
func Toggle(s State, who Class, perm Perm) State {
	p := s.Bits
	var t *Triad
	switch who {
	case ClassOwner:
		t = &p.Owner
	case ClassGroup:
		t = &p.Group
	case ClassPublic:
		t = &p.Public
	default:
		return s
	}
	switch perm {
	case PermRead:
		t.Read = !t.Read
	case PermWrite:
		t.Write = !t.Write
	case PermExecute:
		t.Execute = !t.Execute
	default:
		return s
	}
	return derive(p)
}

// SetOctal applies an edit of the octal field. Input that is not three octal digits
// is echoed in the octal field and everything else is kept.
func SetOctal(s State, text string) (State, bool) {
	p, err := ParseOctal(text)
	if err != nil {
		s.Octal = text
		return s, false
	}
	return derive(p), true
}

// SetText applies an edit of the symbolic field with the same rules as SetOctal.
func SetText(s State, text string) (State, bool) {
	p, err := ParseText(text)
	if err != nil {
		s.Text = text
		return s, false
	}
	return derive(p), true
}
