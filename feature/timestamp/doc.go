// Package timestamp implements the UNIX timestamp converter widget.
//
// The state holds an epoch string (seconds since 1970-01-01T00:00:00Z), a human string
// and one of three strftime patterns:
//
//	%Y-%m-%dT%H:%M:%SZ   1970-01-01T00:00:00Z (default)
//	%Y-%m-%d %H:%M:%S    1970-01-01 00:00:00
//	%a, %e %b %Y %T      Thu,  1 Jan 1970 00:00:00
//
// Everything is rendered and parsed in UTC. Editing one field re-derives the other when
// the input is valid and leaves it alone otherwise. "Now" reads the host clock, which
// reports RFC 2822 time ("Thu, 01 Jan 1970 00:00:00 GMT").
package timestamp
