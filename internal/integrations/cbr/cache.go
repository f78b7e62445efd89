package cbr

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Cache memoizes the key rate of an upstream provider. A cron job calls
// Refresh periodically, a cold cache is filled synchronously on first use.
type Cache struct {
	upstream interface {
		KeyRate() (float64, error)
	}
	log *logrus.Logger

	mu        sync.RWMutex
	rate      float64
	fetchedAt time.Time
}

// NewCache wraps a key-rate provider with a cache
func NewCache(upstream *Client, log *logrus.Logger) *Cache {
	return &Cache{upstream: upstream, log: log}
}

// KeyRate returns the cached rate, fetching it when nothing is cached yet
func (c *Cache) KeyRate() (float64, error) {
	c.mu.RLock()
	if !c.fetchedAt.IsZero() {
		rate := c.rate
		c.mu.RUnlock()
		return rate, nil
	}
	c.mu.RUnlock()

	return c.refresh()
}

// Refresh re-fetches the rate and logs failures without dropping the
// previously cached value
func (c *Cache) Refresh() {
	if _, err := c.refresh(); err != nil {
		c.log.Errorf("Failed to refresh key rate: %v", err)
	}
}

func (c *Cache) refresh() (float64, error) {
	rate, err := c.upstream.KeyRate()
	if err != nil {
		return 0, err
	}

	c.mu.Lock()
	c.rate = rate
	c.fetchedAt = time.Now()
	c.mu.Unlock()
	return rate, nil
}
