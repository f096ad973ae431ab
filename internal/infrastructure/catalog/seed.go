package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopsearch/backend/internal/domain"
)

// LoadSeedFile reads a JSON array of products and inserts them into the
// repository. Returns the number of products loaded.
func LoadSeedFile(ctx context.Context, repo domain.CatalogRepository, path string) (int, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return 0, fmt.Errorf("read seed file: %w", err)
	}

	var products []domain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return 0, fmt.Errorf("parse seed file: %w", err)
	}

	for i := range products {
		if err := products[i].Validate(); err != nil {
			return 0, fmt.Errorf("seed product %d: %w", i, err)
		}
		if err := repo.Insert(ctx, &products[i]); err != nil {
			return 0, fmt.Errorf("insert seed product %q: %w", products[i].Name, err)
		}
	}
	return len(products), nil
}
