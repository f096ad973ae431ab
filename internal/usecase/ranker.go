package usecase

import (
	"sort"

	"github.com/shopsearch/backend/internal/domain"
)

// Rank orders the full candidate set in place according to the sort mode.
// Every mode resolves remaining ties by product ID ascending, so an identical
// request against an unchanged catalog always yields an identical order.
func Rank(items []domain.ScoredProduct, mode domain.SortMode) {
	sort.Slice(items, func(i, j int) bool {
		return rankLess(&items[i], &items[j], mode)
	})
}

func rankLess(a, b *domain.ScoredProduct, mode domain.SortMode) bool {
	switch mode {
	case domain.SortPriceAsc:
		if a.Price != b.Price {
			return a.Price < b.Price
		}
	case domain.SortPriceDesc:
		if a.Price != b.Price {
			return a.Price > b.Price
		}
	case domain.SortNewest:
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
	case domain.SortRating:
		if a.AverageRating != b.AverageRating {
			return a.AverageRating > b.AverageRating
		}
	default: // relevance: exact matches first, then score descending
		if a.ExactMatch != b.ExactMatch {
			return a.ExactMatch
		}
		if a.RelevanceScore != b.RelevanceScore {
			return a.RelevanceScore > b.RelevanceScore
		}
	}
	return a.ID < b.ID
}
