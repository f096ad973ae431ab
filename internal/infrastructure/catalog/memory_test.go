package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/shopsearch/backend/internal/domain"
)

func seedCatalog(t *testing.T) *MemoryCatalog {
	t.Helper()
	repo := NewMemoryCatalog()
	ctx := context.Background()

	products := []domain.Product{
		{Name: "Red Shoes", Category: "Clothing", Price: 30},
		{Name: "Blue Shoes", Category: "Clothing", Price: 80},
		{Name: "Red Hat", Category: "Accessories", Price: 15},
	}
	for i := range products {
		if err := repo.Insert(ctx, &products[i]); err != nil {
			t.Fatalf("Insert() error = %v", err)
		}
	}
	return repo
}

func TestMemoryCatalog_Insert(t *testing.T) {
	repo := NewMemoryCatalog()
	ctx := context.Background()

	p := domain.Product{Name: "Red Shoes", Category: "Clothing", Price: 30}
	if err := repo.Insert(ctx, &p); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	if p.ID == "" {
		t.Error("Insert() did not assign an ID")
	}
	if p.Slug != "red-shoes" {
		t.Errorf("Slug = %q, want %q", p.Slug, "red-shoes")
	}
	if p.CreatedAt.IsZero() {
		t.Error("Insert() did not set CreatedAt")
	}

	got, err := repo.GetByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Name != p.Name {
		t.Errorf("GetByID().Name = %q, want %q", got.Name, p.Name)
	}
}

func TestMemoryCatalog_Insert_SequentialIDs(t *testing.T) {
	repo := NewMemoryCatalog()
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 3; i++ {
		p := domain.Product{Name: fmt.Sprintf("Item %d", i), Category: "Books"}
		if err := repo.Insert(ctx, &p); err != nil {
			t.Fatalf("Insert() error = %v", err)
		}
		if !strings.HasPrefix(p.ID, "prod-") {
			t.Errorf("ID = %q, want prod- prefix", p.ID)
		}
		if seen[p.ID] {
			t.Errorf("duplicate ID %q", p.ID)
		}
		seen[p.ID] = true
	}
}

func TestMemoryCatalog_Enumerate(t *testing.T) {
	repo := seedCatalog(t)
	ctx := context.Background()

	t.Run("nil filter returns everything", func(t *testing.T) {
		got, err := repo.Enumerate(ctx, nil)
		if err != nil {
			t.Fatalf("Enumerate() error = %v", err)
		}
		if len(got) != 3 {
			t.Errorf("len = %d, want 3", len(got))
		}
	})

	t.Run("filter narrows the result", func(t *testing.T) {
		got, err := repo.Enumerate(ctx, func(p *domain.Product) bool {
			return p.Category == "Clothing"
		})
		if err != nil {
			t.Fatalf("Enumerate() error = %v", err)
		}
		if len(got) != 2 {
			t.Errorf("len = %d, want 2", len(got))
		}
		for _, p := range got {
			if p.Category != "Clothing" {
				t.Errorf("leaked category %q", p.Category)
			}
		}
	})

	t.Run("cancelled context aborts the scan", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		_, err := repo.Enumerate(cancelled, nil)
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Enumerate() error = %v, want context.Canceled", err)
		}
	})
}

func TestMemoryCatalog_Count(t *testing.T) {
	repo := seedCatalog(t)
	ctx := context.Background()

	n, err := repo.Count(ctx, func(p *domain.Product) bool { return p.Price < 50 })
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if n != 2 {
		t.Errorf("Count() = %d, want 2", n)
	}
}

func TestMemoryCatalog_CategoryCounts(t *testing.T) {
	repo := seedCatalog(t)
	ctx := context.Background()

	counts, err := repo.CategoryCounts(ctx, nil)
	if err != nil {
		t.Fatalf("CategoryCounts() error = %v", err)
	}
	if counts["Clothing"] != 2 || counts["Accessories"] != 1 {
		t.Errorf("CategoryCounts() = %v, want Clothing:2 Accessories:1", counts)
	}
}

func TestMemoryCatalog_GetByID_NotFound(t *testing.T) {
	repo := NewMemoryCatalog()

	_, err := repo.GetByID(context.Background(), "missing")
	if !errors.Is(err, domain.ErrProductNotFound) {
		t.Errorf("GetByID() error = %v, want ErrProductNotFound", err)
	}
}

func TestMemoryCatalog_IncrementCounter(t *testing.T) {
	ctx := context.Background()

	t.Run("likes and saves increment independently", func(t *testing.T) {
		repo := NewMemoryCatalog()
		p := domain.Product{Name: "Red Shoes", Category: "Clothing"}
		if err := repo.Insert(ctx, &p); err != nil {
			t.Fatalf("Insert() error = %v", err)
		}

		for want := int64(1); want <= 3; want++ {
			got, err := repo.IncrementCounter(ctx, p.ID, domain.CounterLikes)
			if err != nil {
				t.Fatalf("IncrementCounter() error = %v", err)
			}
			if got != want {
				t.Errorf("likes = %d, want %d", got, want)
			}
		}

		got, err := repo.IncrementCounter(ctx, p.ID, domain.CounterSaves)
		if err != nil {
			t.Fatalf("IncrementCounter() error = %v", err)
		}
		if got != 1 {
			t.Errorf("saves = %d, want 1", got)
		}
	})

	t.Run("missing product", func(t *testing.T) {
		repo := NewMemoryCatalog()
		_, err := repo.IncrementCounter(ctx, "missing", domain.CounterLikes)
		if !errors.Is(err, domain.ErrProductNotFound) {
			t.Errorf("IncrementCounter() error = %v, want ErrProductNotFound", err)
		}
	})

	t.Run("unknown counter", func(t *testing.T) {
		repo := NewMemoryCatalog()
		p := domain.Product{Name: "Red Shoes", Category: "Clothing"}
		if err := repo.Insert(ctx, &p); err != nil {
			t.Fatalf("Insert() error = %v", err)
		}
		_, err := repo.IncrementCounter(ctx, p.ID, domain.Counter("views"))
		if !errors.Is(err, domain.ErrUnknownCounter) {
			t.Errorf("IncrementCounter() error = %v, want ErrUnknownCounter", err)
		}
	})
}

func TestMemoryCatalog_Concurrent(t *testing.T) {
	repo := NewMemoryCatalog()
	ctx := context.Background()

	p := domain.Product{Name: "Red Shoes", Category: "Clothing"}
	if err := repo.Insert(ctx, &p); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	done := make(chan bool)
	for i := 0; i < 10; i++ {
		go func() {
			if _, err := repo.IncrementCounter(ctx, p.ID, domain.CounterLikes); err != nil {
				t.Errorf("Concurrent IncrementCounter() error = %v", err)
			}
			done <- true
		}()
	}
	for i := 0; i < 10; i++ {
		<-done
	}

	got, err := repo.GetByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Likes != 10 {
		t.Errorf("Likes = %d, want 10", got.Likes)
	}
}
