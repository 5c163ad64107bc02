// Package hostenv models the host environment as injected capabilities.
//
// The conversion widgets never reach the outside world directly. The few host queries
// they need are one-method interfaces:
//
//   - Clock: the current UTC time as an RFC-1123 string (timestamp "Now").
//   - IPLookup: the caller's public IPv4 address (IPv4 "My IP").
//   - Entropy: cryptographically strong random bytes (color "Random").
//
// New wires the production implementations: the system clock, an HTTP lookup made with
// the Fiber client (optionally behind a TTL cache with singleflight), and crypto/rand.
// Tests substitute ClockFunc, LookupFunc, a bytes.Reader or the testify mocks.
package hostenv
