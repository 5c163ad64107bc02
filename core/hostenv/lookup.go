package hostenv

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// ErrEmptyAddress is returned when the lookup service answered without an address.
var ErrEmptyAddress = errors.New("ip lookup returned no address")

// HTTPLookup queries a JSON "what is my IP" endpoint with the Fiber client.
type HTTPLookup struct {
	url     string
	timeout time.Duration
}

// NewHTTPLookup creates a lookup against url. A non-positive timeout means 5 seconds.
func NewHTTPLookup(url string, timeout time.Duration) *HTTPLookup {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &HTTPLookup{url: url, timeout: timeout}
}

type lookupResponse struct {
	IPAddress string `json:"ipAddress"`
}

// MyIP performs one lookup request.
func (l *HTTPLookup) MyIP(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	timeout := l.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}

	agent := fiber.Get(l.url).Timeout(timeout)

	var body lookupResponse
	code, _, errs := agent.Struct(&body)
	if len(errs) > 0 {
		return "", fmt.Errorf("ip lookup request failed: %w", errors.Join(errs...))
	}
	if code != fiber.StatusOK {
		return "", fmt.Errorf("ip lookup returned status %d", code)
	}

	addr := strings.TrimSpace(body.IPAddress)
	if addr == "" {
		return "", ErrEmptyAddress
	}
	return addr, nil
}
