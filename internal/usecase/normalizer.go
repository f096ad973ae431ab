package usecase

import (
	"math"
	"strconv"

	"github.com/shopsearch/backend/internal/domain"
)

// Pagination defaults applied when the caller omits the parameters.
const (
	defaultPage  = 1
	defaultLimit = 10
)

// RawSearchQuery carries the unparsed query parameters of a search request.
type RawSearchQuery struct {
	Term     string
	Page     string
	Limit    string
	MinPrice string
	MaxPrice string
	Category string
	SortBy   string
}

// NormalizeSearchRequest turns a raw parameter bag into a validated
// SearchRequest. Malformed input never fails: unparsable numbers are dropped,
// out-of-range page/limit are clamped, and unknown sort modes fall back to
// relevance.
func NormalizeSearchRequest(raw RawSearchQuery) domain.SearchRequest {
	req := domain.SearchRequest{
		Term:     raw.Term,
		Category: raw.Category,
		Sort:     domain.SortRelevance,
		Page:     parsePositiveInt(raw.Page, defaultPage),
		Limit:    parsePositiveInt(raw.Limit, defaultLimit),
	}

	req.MinPrice = parseOptionalFloat(raw.MinPrice)
	req.MaxPrice = parseOptionalFloat(raw.MaxPrice)

	if domain.IsValidSort(raw.SortBy) {
		req.Sort = domain.SortMode(raw.SortBy)
	}

	return req
}

// parsePositiveInt parses s, falling back to def when missing or unparsable
// and clamping parsed values to a minimum of 1.
func parsePositiveInt(s string, def int) int {
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	if v < 1 {
		return 1
	}
	return v
}

// parseOptionalFloat parses s into a price bound, or nil when the value is
// absent or not a number.
func parseOptionalFloat(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) {
		return nil
	}
	return &v
}
