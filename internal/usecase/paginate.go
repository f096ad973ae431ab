package usecase

import (
	"fmt"

	"github.com/shopsearch/backend/internal/domain"
)

// Paginate slices the ranked sequence into the requested page window and
// returns the window plus the total page count (0 when the set is empty).
// A page or limit below 1 here means the normalizer failed to do its job;
// that is a defect, so the call is aborted instead of wrapping around.
func Paginate(ranked []domain.ScoredProduct, page, limit int) ([]domain.ScoredProduct, int, error) {
	if page < 1 || limit < 1 {
		return nil, 0, fmt.Errorf("paginate: invalid window page=%d limit=%d", page, limit)
	}

	total := len(ranked)
	totalPages := 0
	if total > 0 {
		totalPages = (total + limit - 1) / limit
	}

	skip := (page - 1) * limit
	if skip >= total {
		return ranked[:0], totalPages, nil
	}

	end := skip + limit
	if end > total {
		end = total
	}
	return ranked[skip:end], totalPages, nil
}
