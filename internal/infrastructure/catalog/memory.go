package catalog

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/shopsearch/backend/internal/domain"
)

// MemoryCatalog is a thread-safe in-memory catalog store. It backs local
// development and tests, and doubles as the reference implementation of the
// CatalogRepository contract.
type MemoryCatalog struct {
	mu       sync.RWMutex
	products map[string]domain.Product
	seq      int
}

// NewMemoryCatalog creates an empty in-memory catalog.
func NewMemoryCatalog() *MemoryCatalog {
	return &MemoryCatalog{products: make(map[string]domain.Product)}
}

// Enumerate yields all records matching the filter. A nil filter matches
// everything. Cancellation is checked at each record so large scans can be
// abandoned promptly.
func (c *MemoryCatalog) Enumerate(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	results := make([]domain.Product, 0, len(c.products))
	for _, p := range c.products {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		if filter == nil || filter(&p) {
			results = append(results, p)
		}
	}
	return results, nil
}

// Count returns the number of records matching the filter.
func (c *MemoryCatalog) Count(ctx context.Context, filter domain.ProductFilter) (int, error) {
	matched, err := c.Enumerate(ctx, filter)
	if err != nil {
		return 0, err
	}
	return len(matched), nil
}

// CategoryCounts groups matching records by category.
func (c *MemoryCatalog) CategoryCounts(ctx context.Context, filter domain.ProductFilter) (map[string]int, error) {
	matched, err := c.Enumerate(ctx, filter)
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int)
	for i := range matched {
		counts[matched[i].Category]++
	}
	return counts, nil
}

// GetByID fetches a single record by ID.
func (c *MemoryCatalog) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	p, ok := c.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return &p, nil
}

// Insert adds a record, assigning ID, slug, and creation time when unset.
func (c *MemoryCatalog) Insert(ctx context.Context, p *domain.Product) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if p.ID == "" {
		c.seq++
		p.ID = fmt.Sprintf("prod-%06d", c.seq)
	}
	if p.Slug == "" {
		p.Slug = slugify(p.Name)
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}

	c.products[p.ID] = *p
	return nil
}

// IncrementCounter atomically bumps an engagement counter and returns the
// new value.
func (c *MemoryCatalog) IncrementCounter(ctx context.Context, id string, counter domain.Counter) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	p, ok := c.products[id]
	if !ok {
		return 0, domain.ErrProductNotFound
	}

	var value int64
	switch counter {
	case domain.CounterLikes:
		p.Likes++
		value = p.Likes
	case domain.CounterSaves:
		p.Saves++
		value = p.Saves
	default:
		return 0, fmt.Errorf("%w: %q", domain.ErrUnknownCounter, counter)
	}

	c.products[id] = p
	return value, nil
}

// Size returns the current number of records (for debugging/monitoring).
func (c *MemoryCatalog) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.products)
}

// slugify lowercases the name and joins its words with hyphens.
func slugify(name string) string {
	fields := strings.Fields(strings.ToLower(name))
	return strings.Join(fields, "-")
}
