package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nationaltraders/plumbing-crm/internal/domain/entity"
	"github.com/nationaltraders/plumbing-crm/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implements ProductRepository (usable with pool or tx).
// Variants are stored as a jsonb document on the product row. The position
// column preserves catalog order from the seed file.
type ProductRepo struct {
	q Querier
}

// NewProductRepository builds the adapter. Pass a pool or tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, system, category, name, unit, length_m, variants`

// ListAll returns the whole catalog in seed order.
func (r *ProductRepo) ListAll() ([]*entity.CatalogProduct, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY position`
	return r.list(query)
}

// ListBySystem returns one system's products in seed order. Unknown systems
// yield an empty slice.
func (r *ProductRepo) ListBySystem(system string) ([]*entity.CatalogProduct, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE system = $1 ORDER BY position`
	return r.list(query, system)
}

// ReplaceAll wipes the catalog and loads the given products. Seed tool only;
// run it inside a transaction so readers never see a half-loaded catalog.
func (r *ProductRepo) ReplaceAll(products []*entity.CatalogProduct) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM products`); err != nil {
		return fmt.Errorf("clear products: %w", err)
	}
	query := `
		INSERT INTO products (id, system, category, name, unit, length_m, variants, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	for i, p := range products {
		variants, err := json.Marshal(p.Variants)
		if err != nil {
			return fmt.Errorf("marshal variants: %w", err)
		}
		if _, err := r.q.Exec(ctx, query,
			p.ID, p.System, p.Category, p.Name, p.Unit, p.LengthM, variants, i,
		); err != nil {
			return fmt.Errorf("insert product: %w", err)
		}
	}
	return nil
}

func (r *ProductRepo) list(query string, args ...any) ([]*entity.CatalogProduct, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.CatalogProduct
	for rows.Next() {
		var p entity.CatalogProduct
		var variants []byte
		if err := rows.Scan(&p.ID, &p.System, &p.Category, &p.Name, &p.Unit, &p.LengthM, &variants); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		if err := json.Unmarshal(variants, &p.Variants); err != nil {
			return nil, fmt.Errorf("unmarshal variants: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
