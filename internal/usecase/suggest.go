package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/shopsearch/backend/internal/domain"
)

// Suggestion scoring and limits.
const (
	minSuggestionTermLen = 2
	maxSuggestions       = 10
	scoreNamePrefix      = 2
	scoreSubstringOnly   = 1
)

// Suggest returns up to ten autocomplete entries for the term. Terms shorter
// than two runes yield an empty list, not an error. Candidates are records
// whose name contains the term or whose category starts with it; a name
// prefix match scores 2, anything else 1. Results are ordered by score
// descending then name ascending.
func (s *SearchService) Suggest(ctx context.Context, term string) ([]domain.Suggestion, error) {
	if utf8.RuneCountInString(term) < minSuggestionTermLen {
		return []domain.Suggestion{}, nil
	}

	lowered := strings.ToLower(term)
	filter := func(p *domain.Product) bool {
		return strings.Contains(strings.ToLower(p.Name), lowered) ||
			strings.HasPrefix(strings.ToLower(p.Category), lowered)
	}

	candidates, err := s.catalog.Enumerate(ctx, filter)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}

	suggestions := make([]domain.Suggestion, 0, len(candidates))
	for i := range candidates {
		score := scoreSubstringOnly
		if strings.HasPrefix(strings.ToLower(candidates[i].Name), lowered) {
			score = scoreNamePrefix
		}
		suggestions = append(suggestions, domain.Suggestion{
			Name:     candidates[i].Name,
			Category: candidates[i].Category,
			Score:    score,
		})
	}

	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].Score != suggestions[j].Score {
			return suggestions[i].Score > suggestions[j].Score
		}
		return suggestions[i].Name < suggestions[j].Name
	})

	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions, nil
}
