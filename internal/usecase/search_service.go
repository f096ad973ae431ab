package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/shopsearch/backend/internal/domain"
)

// SearchServiceConfig holds configuration for the search service
type SearchServiceConfig struct {
	CacheTTL time.Duration
}

// SearchService runs the faceted search and suggestion pipelines over an
// injected catalog store. The service itself is stateless; concurrent calls
// share nothing but the catalog and the response cache.
type SearchService struct {
	catalog  domain.CatalogRepository
	cache    domain.CacheRepository
	logger   *zap.Logger
	cacheTTL time.Duration
}

// NewSearchService creates a search service with dependencies. The cache is
// optional; pass nil to disable response caching.
func NewSearchService(
	catalog domain.CatalogRepository,
	cache domain.CacheRepository,
	logger *zap.Logger,
	config SearchServiceConfig,
) *SearchService {
	cacheTTL := config.CacheTTL
	if cacheTTL <= 0 {
		cacheTTL = time.Minute
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &SearchService{
		catalog:  catalog,
		cache:    cache,
		logger:   logger,
		cacheTTL: cacheTTL,
	}
}

// Search executes the full pipeline: normalize, filter, score, rank, facet,
// paginate. Facets are computed over the same filtered set as the result
// list, independent of the page requested. The call fails atomically on a
// catalog fault; no partial facets are ever returned.
func (s *SearchService) Search(ctx context.Context, raw RawSearchQuery) (*domain.SearchResponse, error) {
	req := NormalizeSearchRequest(raw)

	cacheKey := searchCacheKey(req)
	if cached := s.getCachedResponse(ctx, cacheKey); cached != nil {
		return cached, nil
	}

	candidates, err := s.catalog.Enumerate(ctx, BuildFilter(req))
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}

	scored := make([]domain.ScoredProduct, 0, len(candidates))
	for i := range candidates {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		scored = append(scored, ScoreProduct(&candidates[i], req.Term))
	}

	// Ranking and faceting are independent reductions over the filtered set,
	// so they run concurrently. The facet pass reads the candidate slice
	// while Rank permutes its own scored copies.
	var (
		categories []domain.CategoryCount
		priceRange []domain.PriceBucket
		wg         sync.WaitGroup
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		categories, priceRange = AggregateFacets(candidates)
	}()
	Rank(scored, req.Sort)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	window, totalPages, err := Paginate(scored, req.Page, req.Limit)
	if err != nil {
		return nil, err
	}

	products := make([]domain.ProductView, 0, len(window))
	for i := range window {
		products = append(products, projectView(&window[i]))
	}

	resp := &domain.SearchResponse{
		Products:   products,
		Total:      len(candidates),
		Categories: categories,
		PriceRange: priceRange,
		Page:       req.Page,
		TotalPages: totalPages,
	}

	s.putCachedResponse(ctx, cacheKey, resp)
	return resp, nil
}

func projectView(sp *domain.ScoredProduct) domain.ProductView {
	images := sp.Images
	if images == nil {
		images = []string{}
	}
	return domain.ProductView{
		Name:           sp.Name,
		Price:          sp.Price,
		Images:         images,
		Category:       sp.Category,
		Brand:          sp.Brand,
		AverageRating:  sp.AverageRating,
		Slug:           sp.Slug,
		RelevanceScore: sp.RelevanceScore,
	}
}

// searchCacheKey derives a cache key from every field of the normalized
// request. Term case is preserved because exact-match scoring is
// case-sensitive.
func searchCacheKey(req domain.SearchRequest) string {
	var b strings.Builder
	b.WriteString("search:")
	b.WriteString(req.Term)
	b.WriteByte('|')
	b.WriteString(req.Category)
	b.WriteByte('|')
	b.WriteString(string(req.Sort))
	fmt.Fprintf(&b, "|%d|%d", req.Page, req.Limit)
	if req.MinPrice != nil {
		fmt.Fprintf(&b, "|min=%g", *req.MinPrice)
	}
	if req.MaxPrice != nil {
		fmt.Fprintf(&b, "|max=%g", *req.MaxPrice)
	}
	return b.String()
}

func (s *SearchService) getCachedResponse(ctx context.Context, key string) *domain.SearchResponse {
	if s.cache == nil {
		return nil
	}
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrCacheMiss) {
			s.logger.Warn("search cache read failed", zap.String("key", key), zap.Error(err))
		}
		return nil
	}
	var resp domain.SearchResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		s.logger.Warn("search cache entry corrupt", zap.String("key", key), zap.Error(err))
		return nil
	}
	return &resp
}

func (s *SearchService) putCachedResponse(ctx context.Context, key string, resp *domain.SearchResponse) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(resp)
	if err != nil {
		s.logger.Warn("search response marshal failed", zap.Error(err))
		return
	}
	if err := s.cache.Set(ctx, key, data, s.cacheTTL); err != nil {
		// A cache write failure never fails the search.
		s.logger.Warn("search cache write failed", zap.String("key", key), zap.Error(err))
	}
}
