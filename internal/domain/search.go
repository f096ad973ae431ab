package domain

// SortMode selects the ordering applied to search results.
type SortMode string

const (
	SortRelevance SortMode = "relevance"
	SortPriceAsc  SortMode = "price-asc"
	SortPriceDesc SortMode = "price-desc"
	SortNewest    SortMode = "newest"
	SortRating    SortMode = "rating"
)

// IsValidSort checks whether the given sort string is a recognized sort mode.
func IsValidSort(s string) bool {
	switch SortMode(s) {
	case SortRelevance, SortPriceAsc, SortPriceDesc, SortNewest, SortRating:
		return true
	}
	return false
}

// SearchRequest is a normalized, validated search query. Page and Limit are
// always >= 1; MinPrice/MaxPrice are nil when absent or unparsable.
type SearchRequest struct {
	Term     string
	MinPrice *float64
	MaxPrice *float64
	Category string
	Sort     SortMode
	Page     int
	Limit    int
}

// ScoredProduct is a candidate product annotated with its relevance score and
// exact-match flag.
type ScoredProduct struct {
	Product
	RelevanceScore int
	ExactMatch     bool
}

// ProductView is the projection of a scored product returned by search.
type ProductView struct {
	Name           string   `json:"name"`
	Price          float64  `json:"price"`
	Images         []string `json:"images"`
	Category       string   `json:"category"`
	Brand          string   `json:"brand,omitempty"`
	AverageRating  float64  `json:"averageRating"`
	Slug           string   `json:"slug"`
	RelevanceScore int      `json:"relevanceScore"`
}

// CategoryCount is a single category facet entry.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// PriceBucket is a single price histogram entry. Bucket is the decimal lower
// boundary of the half-open range, or "Other" for the catch-all.
type PriceBucket struct {
	Bucket string `json:"bucket"`
	Count  int    `json:"count"`
}

// SearchResponse is a single page of ranked results plus facets computed over
// the full filtered set.
type SearchResponse struct {
	Products   []ProductView   `json:"products"`
	Total      int             `json:"total"`
	Categories []CategoryCount `json:"categories"`
	PriceRange []PriceBucket   `json:"priceRange"`
	Page       int             `json:"page"`
	TotalPages int             `json:"totalPages"`
}

// Suggestion is a single autocomplete entry. Score is 2 for a name prefix
// match, 1 for a substring-only match.
type Suggestion struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Score    int    `json:"score"`
}
