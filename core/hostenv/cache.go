package hostenv

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// CachedLookup reuses a successful IP lookup for a fixed TTL.
// Concurrent misses share one upstream request. Failures are not cached.
type CachedLookup struct {
	next IPLookup
	ttl  time.Duration
	now  func() time.Time

	mu      sync.RWMutex
	addr    string
	fetched time.Time

	sf singleflight.Group
}

// NewCachedLookup wraps next with a TTL cache.
func NewCachedLookup(next IPLookup, ttl time.Duration) *CachedLookup {
	return &CachedLookup{next: next, ttl: ttl, now: time.Now}
}

func (c *CachedLookup) fresh() (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.addr == "" || c.ttl <= 0 {
		return "", false
	}
	return c.addr, c.now().Sub(c.fetched) <= c.ttl
}

// MyIP returns the cached address or refreshes it. The shared refresh is detached
// from the caller's cancellation; it is bounded by the upstream lookup's own timeout.
func (c *CachedLookup) MyIP(ctx context.Context) (string, error) {
	if addr, ok := c.fresh(); ok {
		return addr, nil
	}

	shared := context.WithoutCancel(ctx)
	ch := c.sf.DoChan("myip", func() (interface{}, error) {
		// Double-check after winning the flight
		if addr, ok := c.fresh(); ok {
			return addr, nil
		}

		addr, err := c.next.MyIP(shared)
		if err != nil {
			return "", err
		}

		c.mu.Lock()
		c.addr = addr
		c.fetched = c.now()
		c.mu.Unlock()

		return addr, nil
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		return res.Val.(string), nil
	}
}

// Invalidate drops the cached address.
func (c *CachedLookup) Invalidate() {
	c.mu.Lock()
	c.addr = ""
	c.mu.Unlock()
}
