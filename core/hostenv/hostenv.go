package hostenv

import (
	"context"
	"crypto/rand"
	"io"
	"net/http"
	"time"
)

// Clock returns the current UTC time as an RFC-1123 string
// ("Mon, 02 Jan 2006 15:04:05 GMT").
type Clock interface {
	Now() string
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() string

func (f ClockFunc) Now() string { return f() }

// SystemClock reads the host wall clock.
type SystemClock struct{}

func (SystemClock) Now() string {
	return time.Now().UTC().Format(http.TimeFormat)
}

// IPLookup returns the caller's public IPv4 address in dotted-decimal form.
type IPLookup interface {
	MyIP(ctx context.Context) (string, error)
}

// LookupFunc adapts a function to IPLookup.
type LookupFunc func(ctx context.Context) (string, error)

func (f LookupFunc) MyIP(ctx context.Context) (string, error) { return f(ctx) }

// Entropy fills buffers with cryptographically strong random bytes.
type Entropy = io.Reader

// Env bundles the capabilities a toolbox service may call into.
type Env struct {
	Clock   Clock
	IP      IPLookup
	Entropy Entropy
}

// New builds the host environment from configuration.
func New(cfg Config) *Env {
	var ip IPLookup = NewHTTPLookup(cfg.IPLookupURL, time.Duration(cfg.IPLookupTimeoutSeconds)*time.Second)
	if cfg.IPCacheTTLSeconds > 0 {
		ip = NewCachedLookup(ip, time.Duration(cfg.IPCacheTTLSeconds)*time.Second)
	}
	return &Env{
		Clock:   SystemClock{},
		IP:      ip,
		Entropy: rand.Reader,
	}
}
