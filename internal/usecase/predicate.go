package usecase

import (
	"strings"

	"github.com/shopsearch/backend/internal/domain"
)

// BuildFilter compiles a normalized request into a catalog predicate:
// (text OR-group) AND (min price) AND (max price) AND (category equality).
// Absent conjuncts are omitted entirely. The user term is matched as literal
// text, never interpreted as a pattern. Returns nil when every conjunct is
// absent, which catalog stores treat as match-all.
func BuildFilter(req domain.SearchRequest) domain.ProductFilter {
	conds := make([]domain.ProductFilter, 0, 4)

	if req.Term != "" {
		term := strings.ToLower(req.Term)
		conds = append(conds, func(p *domain.Product) bool {
			return matchesText(p, term)
		})
	}

	if req.MinPrice != nil {
		min := *req.MinPrice
		conds = append(conds, func(p *domain.Product) bool {
			return p.Price >= min
		})
	}

	if req.MaxPrice != nil {
		max := *req.MaxPrice
		conds = append(conds, func(p *domain.Product) bool {
			return p.Price <= max
		})
	}

	if req.Category != "" {
		category := req.Category
		conds = append(conds, func(p *domain.Product) bool {
			return p.Category == category
		})
	}

	if len(conds) == 0 {
		return nil
	}
	if len(conds) == 1 {
		return conds[0]
	}
	return func(p *domain.Product) bool {
		for _, cond := range conds {
			if !cond(p) {
				return false
			}
		}
		return true
	}
}

// matchesText implements the text OR-group: the lowercased term is a
// substring of name, description, category, or any variant SKU.
func matchesText(p *domain.Product, term string) bool {
	if strings.Contains(strings.ToLower(p.Name), term) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Description), term) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Category), term) {
		return true
	}
	for _, v := range p.Variants {
		if strings.Contains(strings.ToLower(v.SKU), term) {
			return true
		}
	}
	return false
}
