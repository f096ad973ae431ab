package domain

import (
	"context"
	"time"
)

// ProductFilter is a compiled search predicate over catalog records.
// A nil ProductFilter matches every record.
type ProductFilter func(p *Product) bool

// CatalogRepository defines what the search engine requires from the catalog
// store. Enumeration order is unspecified; the engine imposes its own total
// order. Implementations must honor context cancellation at record
// granularity so large scans can be abandoned promptly.
type CatalogRepository interface {
	// Enumerate yields all records matching the filter.
	Enumerate(ctx context.Context, filter ProductFilter) ([]Product, error)

	// Count returns the number of records matching the filter.
	Count(ctx context.Context, filter ProductFilter) (int, error)

	// CategoryCounts groups matching records by category and counts them.
	CategoryCounts(ctx context.Context, filter ProductFilter) (map[string]int, error)

	// GetByID fetches a single record.
	GetByID(ctx context.Context, id string) (*Product, error)

	// Insert adds a new record, assigning ID/Slug/CreatedAt when unset.
	Insert(ctx context.Context, p *Product) error

	// IncrementCounter atomically bumps an engagement counter by one and
	// returns the new value. At most one increment happens per call.
	IncrementCounter(ctx context.Context, id string, counter Counter) (int64, error)
}

// CacheRepository defines the interface for caching serialized responses.
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}
