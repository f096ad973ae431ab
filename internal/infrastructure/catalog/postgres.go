package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shopsearch/backend/internal/domain"
)

const productColumns = `id, name, description, category, brand, price,
	average_rating, images, slug, skus, likes, saves, created_at`

// PostgresCatalog is a catalog store backed by Postgres. Compiled predicates
// are Go closures, so filtering happens while streaming rows; the store makes
// no indexing promises beyond plain enumeration, matching the contract.
type PostgresCatalog struct {
	pool *pgxpool.Pool
}

// NewPostgresCatalog connects a catalog store to the given database URL.
func NewPostgresCatalog(ctx context.Context, dbURL string) (*PostgresCatalog, error) {
	config, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		return nil, fmt.Errorf("parse postgres config: %w", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	return &PostgresCatalog{pool: pool}, nil
}

// Close releases the connection pool.
func (c *PostgresCatalog) Close() {
	c.pool.Close()
}

// Ping checks connectivity.
func (c *PostgresCatalog) Ping(ctx context.Context) error {
	return c.pool.Ping(ctx)
}

// Enumerate yields all records matching the filter, applying it row by row
// while scanning. Row iteration respects context cancellation via pgx.
func (c *PostgresCatalog) Enumerate(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products`, productColumns)
	rows, err := c.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	var results []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		if filter == nil || filter(p) {
			results = append(results, *p)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scan products: %w", err)
	}
	if results == nil {
		results = []domain.Product{}
	}
	return results, nil
}

// Count returns the number of records matching the filter.
func (c *PostgresCatalog) Count(ctx context.Context, filter domain.ProductFilter) (int, error) {
	if filter == nil {
		var count int
		err := c.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&count)
		if err != nil {
			return 0, fmt.Errorf("count products: %w", err)
		}
		return count, nil
	}

	matched, err := c.Enumerate(ctx, filter)
	if err != nil {
		return 0, err
	}
	return len(matched), nil
}

// CategoryCounts groups matching records by category.
func (c *PostgresCatalog) CategoryCounts(ctx context.Context, filter domain.ProductFilter) (map[string]int, error) {
	if filter == nil {
		rows, err := c.pool.Query(ctx, `SELECT category, COUNT(*) FROM products GROUP BY category`)
		if err != nil {
			return nil, fmt.Errorf("group products: %w", err)
		}
		defer rows.Close()

		counts := make(map[string]int)
		for rows.Next() {
			var category string
			var count int
			if err := rows.Scan(&category, &count); err != nil {
				return nil, fmt.Errorf("scan group row: %w", err)
			}
			counts[category] = count
		}
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("scan groups: %w", err)
		}
		return counts, nil
	}

	matched, err := c.Enumerate(ctx, filter)
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int)
	for i := range matched {
		counts[matched[i].Category]++
	}
	return counts, nil
}

// GetByID fetches a single record by ID.
func (c *PostgresCatalog) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products WHERE id = $1`, productColumns)
	rows, err := c.pool.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("query product: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		return nil, domain.ErrProductNotFound
	}
	return scanProduct(rows)
}

// Insert adds a record, assigning ID, slug, and creation time when unset.
func (c *PostgresCatalog) Insert(ctx context.Context, p *domain.Product) error {
	if p.Slug == "" {
		p.Slug = slugify(p.Name)
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}

	skus := make([]string, 0, len(p.Variants))
	for _, v := range p.Variants {
		skus = append(skus, v.SKU)
	}

	if p.ID == "" {
		err := c.pool.QueryRow(ctx,
			`INSERT INTO products
				(name, description, category, brand, price, average_rating, images, slug, skus, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			 RETURNING id`,
			p.Name, p.Description, p.Category, p.Brand, p.Price,
			p.AverageRating, p.Images, p.Slug, skus, p.CreatedAt,
		).Scan(&p.ID)
		if err != nil {
			return fmt.Errorf("insert product: %w", err)
		}
		return nil
	}

	_, err := c.pool.Exec(ctx,
		`INSERT INTO products
			(id, name, description, category, brand, price, average_rating, images, slug, skus, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		p.ID, p.Name, p.Description, p.Category, p.Brand, p.Price,
		p.AverageRating, p.Images, p.Slug, skus, p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// IncrementCounter atomically bumps an engagement counter and returns the
// new value. The counter name maps to a whitelisted column, never to raw SQL
// from the caller.
func (c *PostgresCatalog) IncrementCounter(ctx context.Context, id string, counter domain.Counter) (int64, error) {
	var column string
	switch counter {
	case domain.CounterLikes:
		column = "likes"
	case domain.CounterSaves:
		column = "saves"
	default:
		return 0, fmt.Errorf("%w: %q", domain.ErrUnknownCounter, counter)
	}

	query := fmt.Sprintf(`UPDATE products SET %s = %s + 1 WHERE id = $1 RETURNING %s`, column, column, column)

	var value int64
	if err := c.pool.QueryRow(ctx, query, id).Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrProductNotFound
		}
		return 0, fmt.Errorf("increment %s: %w", column, err)
	}
	return value, nil
}

func scanProduct(rows pgx.Rows) (*domain.Product, error) {
	var p domain.Product
	var skus []string
	err := rows.Scan(
		&p.ID, &p.Name, &p.Description, &p.Category, &p.Brand, &p.Price,
		&p.AverageRating, &p.Images, &p.Slug, &skus, &p.Likes, &p.Saves, &p.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("scan product row: %w", err)
	}
	for _, sku := range skus {
		p.Variants = append(p.Variants, domain.Variant{SKU: sku})
	}
	return &p, nil
}
