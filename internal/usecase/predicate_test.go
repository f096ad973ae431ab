package usecase

import (
	"testing"

	"github.com/shopsearch/backend/internal/domain"
)

func floatPtr(v float64) *float64 { return &v }

func TestBuildFilter(t *testing.T) {
	shoes := domain.Product{
		ID:          "a",
		Name:        "Red Shoes",
		Description: "Comfortable running shoes",
		Category:    "Clothing",
		Price:       30,
		Variants:    []domain.Variant{{SKU: "SHOE-RED-42"}},
	}

	t.Run("returns nil when every conjunct is absent", func(t *testing.T) {
		if BuildFilter(domain.SearchRequest{}) != nil {
			t.Error("BuildFilter() != nil for an empty request")
		}
	})

	t.Run("matches term against name case-insensitively", func(t *testing.T) {
		filter := BuildFilter(domain.SearchRequest{Term: "red"})
		if !filter(&shoes) {
			t.Error("filter rejected a name substring match")
		}
	})

	t.Run("matches term against description", func(t *testing.T) {
		filter := BuildFilter(domain.SearchRequest{Term: "running"})
		if !filter(&shoes) {
			t.Error("filter rejected a description substring match")
		}
	})

	t.Run("matches term against category", func(t *testing.T) {
		filter := BuildFilter(domain.SearchRequest{Term: "cloth"})
		if !filter(&shoes) {
			t.Error("filter rejected a category substring match")
		}
	})

	t.Run("matches term against variant SKU", func(t *testing.T) {
		filter := BuildFilter(domain.SearchRequest{Term: "shoe-red"})
		if !filter(&shoes) {
			t.Error("filter rejected a SKU substring match")
		}
	})

	t.Run("rejects a term matching nothing", func(t *testing.T) {
		filter := BuildFilter(domain.SearchRequest{Term: "laptop"})
		if filter(&shoes) {
			t.Error("filter accepted a non-matching term")
		}
	})

	t.Run("treats regex metacharacters as literal text", func(t *testing.T) {
		filter := BuildFilter(domain.SearchRequest{Term: ".*"})
		if filter(&shoes) {
			t.Error("filter interpreted the term as a pattern")
		}
	})

	t.Run("price bounds are inclusive", func(t *testing.T) {
		atMin := BuildFilter(domain.SearchRequest{MinPrice: floatPtr(30)})
		if !atMin(&shoes) {
			t.Error("min bound should be inclusive")
		}
		atMax := BuildFilter(domain.SearchRequest{MaxPrice: floatPtr(30)})
		if !atMax(&shoes) {
			t.Error("max bound should be inclusive")
		}
		above := BuildFilter(domain.SearchRequest{MinPrice: floatPtr(30.01)})
		if above(&shoes) {
			t.Error("filter accepted a price below the floor")
		}
	})

	t.Run("category filter is exact equality", func(t *testing.T) {
		exact := BuildFilter(domain.SearchRequest{Category: "Clothing"})
		if !exact(&shoes) {
			t.Error("filter rejected an exact category match")
		}
		differentCase := BuildFilter(domain.SearchRequest{Category: "clothing"})
		if differentCase(&shoes) {
			t.Error("category equality must be case-sensitive")
		}
	})

	t.Run("conjuncts combine with AND", func(t *testing.T) {
		filter := BuildFilter(domain.SearchRequest{
			Term:     "red",
			MinPrice: floatPtr(50),
		})
		if filter(&shoes) {
			t.Error("filter accepted a record failing one conjunct")
		}
	})

	t.Run("empty term imposes no text condition", func(t *testing.T) {
		filter := BuildFilter(domain.SearchRequest{MinPrice: floatPtr(20)})
		if !filter(&shoes) {
			t.Error("filter with no term rejected a record passing the price floor")
		}
	})
}
