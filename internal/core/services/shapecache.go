package services

import (
	"context"
	"sync"
	"time"

	"github.com/mkbabb/sheetrange/internal/core/domain"
	"github.com/mkbabb/sheetrange/internal/core/ports/driven"
)

// Ensure ShapeCache implements the interface.
var _ driven.ShapeProvider = (*ShapeCache)(nil)

// ShapeCache memoises sheet shapes from an underlying provider for a bounded
// TTL. It is an explicit object handed to whoever needs shape lookups, never
// a package-level singleton, so tests control staleness deterministically.
type ShapeCache struct {
	mu       sync.RWMutex
	provider driven.ShapeProvider
	ttl      time.Duration
	entries  map[string]shapeEntry

	now func() time.Time
}

type shapeEntry struct {
	shape     domain.SheetShape
	fetchedAt time.Time
}

// NewShapeCache wraps a provider with a TTL cache. A non-positive TTL
// disables caching and every lookup hits the provider.
func NewShapeCache(provider driven.ShapeProvider, ttl time.Duration) *ShapeCache {
	return &ShapeCache{
		provider: provider,
		ttl:      ttl,
		entries:  make(map[string]shapeEntry),
		now:      time.Now,
	}
}

// GetShape returns the cached shape when fresh, fetching from the underlying
// provider otherwise.
func (c *ShapeCache) GetShape(ctx context.Context, spreadsheetID, sheet string) (domain.SheetShape, error) {
	key := spreadsheetID + "\x00" + sheet

	if c.ttl > 0 {
		c.mu.RLock()
		entry, ok := c.entries[key]
		c.mu.RUnlock()
		if ok && c.now().Sub(entry.fetchedAt) < c.ttl {
			return entry.shape, nil
		}
	}

	shape, err := c.provider.GetShape(ctx, spreadsheetID, sheet)
	if err != nil {
		return domain.SheetShape{}, err
	}

	if c.ttl > 0 {
		c.mu.Lock()
		c.entries[key] = shapeEntry{shape: shape, fetchedAt: c.now()}
		c.mu.Unlock()
	}
	return shape, nil
}

// Invalidate drops the cached shape for one sheet.
func (c *ShapeCache) Invalidate(spreadsheetID, sheet string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, spreadsheetID+"\x00"+sheet)
}

// InvalidateAll drops every cached shape.
func (c *ShapeCache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]shapeEntry)
}
