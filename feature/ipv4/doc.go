// Package ipv4 implements the IPv4 address converter widget.
//
// An address is shown as a dotted-decimal literal, an unsigned 32-bit integer and four
// dot-separated 8-bit binary groups. All three round-trip exactly.
//
// Edits differ in how they treat invalid input:
//   - dotted: the other two fields are cleared.
//   - integer, binary: the other two fields keep their previous values.
//
// Binary input with fewer than four groups zero-fills the missing octets.
//
// # HTTP Endpoints
//
//   - POST /ipv4/:field : field is dotted, integer or binary;
//     body {"state": {...}, "value": "..."}.
//   - POST /ipv4/myip : fills all fields from the host's public address lookup.
package ipv4
