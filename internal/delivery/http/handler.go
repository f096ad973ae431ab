package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shopsearch/backend/internal/domain"
	"github.com/shopsearch/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	search  *usecase.SearchService
	engage  *usecase.EngagementService
	catalog domain.CatalogRepository
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler
func NewHandler(
	search *usecase.SearchService,
	engage *usecase.EngagementService,
	catalog domain.CatalogRepository,
	logger *zap.Logger,
) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{search: search, engage: engage, catalog: catalog, logger: logger}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "shopsearch-backend",
		"version": "1.0.0",
	})
}

// Search handles faceted product search requests
func (h *Handler) Search(c *gin.Context) {
	raw := usecase.RawSearchQuery{
		Term:     c.Query("q"),
		Page:     c.Query("page"),
		Limit:    c.Query("limit"),
		MinPrice: c.Query("minPrice"),
		MaxPrice: c.Query("maxPrice"),
		Category: c.Query("category"),
		SortBy:   c.Query("sortBy"),
	}

	resp, err := h.search.Search(c.Request.Context(), raw)
	if err != nil {
		h.internalError(c, "search failed", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Suggestions handles autocomplete requests
func (h *Handler) Suggestions(c *gin.Context) {
	suggestions, err := h.search.Suggest(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.internalError(c, "suggestions failed", err)
		return
	}

	c.JSON(http.StatusOK, suggestions)
}

// ListProducts returns every product in the catalog
func (h *Handler) ListProducts(c *gin.Context) {
	products, err := h.catalog.Enumerate(c.Request.Context(), nil)
	if err != nil {
		h.internalError(c, "list products failed", err)
		return
	}

	c.JSON(http.StatusOK, products)
}

// CreateProduct adds a new product to the catalog
func (h *Handler) CreateProduct(c *gin.Context) {
	var product domain.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := product.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.catalog.Insert(c.Request.Context(), &product); err != nil {
		h.internalError(c, "create product failed", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Product added successfully",
		"product": product,
	})
}

// LikeProduct increments a product's like counter
func (h *Handler) LikeProduct(c *gin.Context) {
	h.incrementCounter(c, domain.CounterLikes)
}

// SaveProduct increments a product's save counter
func (h *Handler) SaveProduct(c *gin.Context) {
	h.incrementCounter(c, domain.CounterSaves)
}

func (h *Handler) incrementCounter(c *gin.Context, counter domain.Counter) {
	productID := c.Param("productId")

	value, err := h.engage.Increment(c.Request.Context(), productID, string(counter))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		case errors.Is(err, domain.ErrUnknownCounter):
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown counter"})
		default:
			h.internalError(c, "increment counter failed", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"productId": productID,
		"counter":   string(counter),
		"value":     value,
	})
}

// internalError logs the detailed failure and returns a generic message.
// Diagnostics never reach the response payload.
func (h *Handler) internalError(c *gin.Context, msg string, err error) {
	h.logger.Error(msg,
		zap.String("path", c.FullPath()),
		zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
