// Package radix implements the numeral converter widget.
//
// One signed 64-bit integer is shown in four bases: hexadecimal (uppercase, no prefix),
// decimal, octal and binary. Editing any field re-derives the other three; when the edit
// does not parse in its base (empty, bad digit, overflow) the other three are cleared and
// the edited field keeps the raw text.
//
// # HTTP Endpoints
//
//   - POST /radix/:field : field is hex, dec, oct or bin; body {"value": "..."}.
package radix
