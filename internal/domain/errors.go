package domain

import "errors"

var (
	// ErrProductNotFound is returned when a product does not exist in the catalog
	ErrProductNotFound = errors.New("product not found")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrUnknownCounter is returned for an unrecognized engagement counter name
	ErrUnknownCounter = errors.New("unknown engagement counter")

	// ErrCatalogUnavailable is returned when the catalog store is unreachable or faults
	ErrCatalogUnavailable = errors.New("catalog store unavailable")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrCacheUnavailable is returned when the cache service is unavailable
	ErrCacheUnavailable = errors.New("cache service unavailable")
)
