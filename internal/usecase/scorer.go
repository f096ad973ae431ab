package usecase

import (
	"strings"

	"github.com/shopsearch/backend/internal/domain"
)

// Field weights for relevance scoring. Contributions are additive and
// independent: a record can score on several fields at once.
const (
	weightName        = 10
	weightDescription = 5
	weightCategory    = 3
	weightBrand       = 2
)

// ScoreProduct computes the relevance score and exact-match flag for a single
// candidate. An empty term makes every substring test true, so every record
// scores the full sum of weights; that degenerate case is intentional and
// matches the sort behavior for unfiltered queries.
func ScoreProduct(p *domain.Product, term string) domain.ScoredProduct {
	lowered := strings.ToLower(term)

	score := 0
	if strings.Contains(strings.ToLower(p.Name), lowered) {
		score += weightName
	}
	if strings.Contains(strings.ToLower(p.Description), lowered) {
		score += weightDescription
	}
	if strings.Contains(strings.ToLower(p.Category), lowered) {
		score += weightCategory
	}
	if strings.Contains(strings.ToLower(p.Brand), lowered) {
		score += weightBrand
	}

	return domain.ScoredProduct{
		Product:        *p,
		RelevanceScore: score,
		ExactMatch:     p.Name == term,
	}
}
