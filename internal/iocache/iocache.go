// Package iocache keeps the dog names registry in memory, so it is
// downloaded at most once per process no matter how many commands or
// goroutines ask for it.
package iocache

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/gnames/gnfmt"
	"github.com/gnames/wuff/pkg/dog"
	"github.com/gnames/wuff/pkg/lifecycle"
	"golang.org/x/sync/singleflight"
)

const key = "dogs"

// Cache holds the registry retrieved from a DataSource.
// Concurrent first callers share one retrieval. A failed retrieval is
// not remembered, the next call tries again.
type Cache struct {
	src   lifecycle.DataSource
	group singleflight.Group

	mu   sync.RWMutex
	dogs *dog.Collection
}

// New creates an empty Cache for src.
func New(src lifecycle.DataSource) *Cache {
	return &Cache{src: src}
}

// Dogs returns the cached registry, retrieving it on the first call.
func (c *Cache) Dogs(ctx context.Context) (*dog.Collection, error) {
	if res := c.cached(); res != nil {
		return res, nil
	}

	v, err, shared := c.group.Do(key, func() (any, error) {
		if res := c.cached(); res != nil {
			return res, nil
		}

		start := time.Now()
		res, err := c.src.Retrieve(ctx)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.dogs = res
		c.mu.Unlock()

		slog.Info("Dog data retrieved",
			"records", res.Len(),
			"duration", gnfmt.TimeString(time.Since(start).Seconds()),
		)
		return res, nil
	})
	if err != nil {
		return nil, err
	}
	if shared {
		slog.Debug("Shared dog data retrieval with another caller")
	}
	return v.(*dog.Collection), nil
}

func (c *Cache) cached() *dog.Collection {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.dogs
}
