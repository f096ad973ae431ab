package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/shopsearch/backend/internal/domain"
)

// EngagementService mutates the like/save counters on catalog records. It is
// deliberately separate from the read-only search pipeline.
type EngagementService struct {
	catalog domain.CatalogRepository
	logger  *zap.Logger
}

// NewEngagementService creates an engagement service.
func NewEngagementService(catalog domain.CatalogRepository, logger *zap.Logger) *EngagementService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EngagementService{catalog: catalog, logger: logger}
}

// Increment bumps the named counter on a product by exactly one and returns
// the new value. Unknown counter names are rejected before touching the store.
func (s *EngagementService) Increment(ctx context.Context, productID, counterName string) (int64, error) {
	counter, ok := domain.ParseCounter(counterName)
	if !ok {
		return 0, fmt.Errorf("%w: %q", domain.ErrUnknownCounter, counterName)
	}

	value, err := s.catalog.IncrementCounter(ctx, productID, counter)
	if err != nil {
		return 0, err
	}

	s.logger.Debug("counter incremented",
		zap.String("productId", productID),
		zap.String("counter", counterName),
		zap.Int64("value", value))
	return value, nil
}
