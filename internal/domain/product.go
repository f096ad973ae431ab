package domain

import (
	"fmt"
	"time"
)

// Categories is the fixed set of product categories the catalog accepts.
var Categories = []string{"Electronics", "Clothing", "Books", "Home Appliances", "Beauty"}

// IsValidCategory checks whether the given category belongs to the fixed set.
func IsValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

// Variant represents a purchasable variation of a product (size, color, ...).
type Variant struct {
	SKU   string `json:"sku"`
	Label string `json:"label,omitempty"`
}

// Product represents a single catalog record. Products are immutable from the
// search engine's perspective during a single call; only the engagement
// counters (likes, saves) are ever mutated, and never by the search path.
type Product struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	Brand         string    `json:"brand,omitempty"`
	Price         float64   `json:"price"`
	AverageRating float64   `json:"averageRating"`
	Images        []string  `json:"images"`
	Slug          string    `json:"slug"`
	Variants      []Variant `json:"variants,omitempty"`
	Likes         int64     `json:"likes"`
	Saves         int64     `json:"saves"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Validate checks the invariants the catalog schema enforces on new products.
func (p *Product) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidRequest)
	}
	if p.Description == "" {
		return fmt.Errorf("%w: description is required", ErrInvalidRequest)
	}
	if !IsValidCategory(p.Category) {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidRequest, p.Category)
	}
	if p.Price < 0 {
		return fmt.Errorf("%w: price must be non-negative", ErrInvalidRequest)
	}
	if len(p.Images) == 0 {
		return fmt.Errorf("%w: at least one image is required", ErrInvalidRequest)
	}
	return nil
}

// Counter names a mutable engagement counter on a product.
type Counter string

const (
	CounterLikes Counter = "likes"
	CounterSaves Counter = "saves"
)

// ParseCounter maps a raw counter name to a known Counter.
func ParseCounter(name string) (Counter, bool) {
	switch Counter(name) {
	case CounterLikes, CounterSaves:
		return Counter(name), true
	}
	return "", false
}
