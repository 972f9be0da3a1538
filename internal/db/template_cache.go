package db

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/udisondev/itemforge/internal/metrics"
	"github.com/udisondev/itemforge/internal/model"
)

// BaseLoader loads base templates from storage.
type BaseLoader interface {
	GetBase(ctx context.Context, entry int32) (*model.ItemTemplate, error)
}

// TemplateCache is an in-memory LRU of base templates with time-based expiration.
// Cached templates are never handed out directly: callers get a copy they may mutate.
type TemplateCache struct {
	loader BaseLoader
	lru    *expirable.LRU[int32, *model.ItemTemplate]
}

// NewTemplateCache creates a cache holding up to size templates for ttl.
func NewTemplateCache(loader BaseLoader, size int, ttl time.Duration) *TemplateCache {
	return &TemplateCache{
		loader: loader,
		lru:    expirable.NewLRU[int32, *model.ItemTemplate](size, nil, ttl),
	}
}

// GetBase returns a copy of the base template, loading it on a miss.
// Errors are not cached.
func (c *TemplateCache) GetBase(ctx context.Context, entry int32) (*model.ItemTemplate, error) {
	if tmpl, ok := c.lru.Get(entry); ok {
		metrics.TemplateCacheHits.Inc()
		cp := *tmpl
		return &cp, nil
	}
	metrics.TemplateCacheMisses.Inc()

	tmpl, err := c.loader.GetBase(ctx, entry)
	if err != nil {
		return nil, err
	}
	cp := *tmpl
	c.lru.Add(entry, &cp)
	return tmpl, nil
}

// Invalidate removes a template from the cache.
// Useful when the base template row is updated.
func (c *TemplateCache) Invalidate(entry int32) {
	c.lru.Remove(entry)
}

// Clear removes all entries from the cache.
func (c *TemplateCache) Clear() {
	c.lru.Purge()
}

// Len returns the number of cached templates.
func (c *TemplateCache) Len() int {
	return c.lru.Len()
}
