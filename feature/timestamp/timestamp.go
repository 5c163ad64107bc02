package timestamp

import (
	"errors"
	"fmt"
	"net/mail"
	"strconv"
	"time"

	"github.com/ncruces/go-strftime"
)

// ErrUnknownFormat is returned for a pattern outside Formats.
var ErrUnknownFormat = errors.New("unknown timestamp format")

// Format is one of the supported strftime patterns.
type Format string

const (
	FormatISO8601 Format = "%Y-%m-%dT%H:%M:%SZ"
	FormatSQL     Format = "%Y-%m-%d %H:%M:%S"
	FormatRFC2822 Format = "%a, %e %b %Y %T"

	DefaultFormat = FormatISO8601
)

// Formats lists the supported patterns in display order.
var Formats = []Format{FormatISO8601, FormatSQL, FormatRFC2822}

// maxEpoch is 9999-12-31T23:59:59Z.
const maxEpoch = 253402300799

// ParseFormat validates a pattern against Formats.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Render formats t in UTC.
func (f Format) Render(t time.Time) string {
	return strftime.Format(string(f), t.UTC())
}

// Read parses value as a UTC time under the pattern.
func (f Format) Read(value string) (time.Time, error) {
	t, err := strftime.Parse(string(f), value)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// ParseEpoch decodes a non-negative count of seconds since 1970-01-01T00:00:00Z.
func ParseEpoch(text string) (time.Time, error) {
	secs, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		return time.Time{}, err
	}
	if secs > maxEpoch {
		return time.Time{}, fmt.Errorf("epoch %d is past year 9999", secs)
	}
	return time.Unix(int64(secs), 0).UTC(), nil
}

// State is the timestamp converter as shown. An empty Format means DefaultFormat.
type State struct {
	Epoch  string `json:"epoch"`
	Human  string `json:"human"`
	Format Format `json:"format"`
}

// NewState returns the initial state: both fields empty, default pattern.
func NewState() State {
	return State{Format: DefaultFormat}
}

func (s State) pattern() Format {
	if s.Format == "" {
		return DefaultFormat
	}
	return s.Format
}

// FromEpoch applies an edit of the epoch field. On failure the human field is kept.
func FromEpoch(s State, text string) (State, bool) {
	s.Format = s.pattern()
	s.Epoch = text
	t, err := ParseEpoch(text)
	if err != nil {
		return s, false
	}
	s.Human = s.Format.Render(t)
	return s, true
}

// FromHuman applies an edit of the human field under the current pattern.
// On failure the epoch field is kept.
func FromHuman(s State, text string) (State, bool) {
	s.Format = s.pattern()
	s.Human = text
	t, err := s.Format.Read(text)
	if err != nil {
		return s, false
	}
	s.Epoch = strconv.FormatInt(t.Unix(), 10)
	return s, true
}

// WithFormat switches the pattern. When the epoch field holds a valid value the
// human field is re-rendered and the epoch is rewritten in canonical form.
func WithFormat(s State, f Format) State {
	s.Format = f
	t, err := ParseEpoch(s.Epoch)
	if err != nil {
		return s
	}
	s.Epoch = strconv.FormatInt(t.Unix(), 10)
	s.Human = f.Render(t)
	return s
}

// Now sets both fields from a host clock reading in RFC 2822 form.
// An unparsable reading leaves the state unchanged.
func Now(s State, clock string) (State, bool) {
	t, err := mail.ParseDate(clock)
	if err != nil {
		return s, false
	}
	s.Format = s.pattern()
	s.Epoch = strconv.FormatInt(t.Unix(), 10)
	s.Human = s.Format.Render(t)
	return s, true
}
