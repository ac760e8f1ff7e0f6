package repository

import "github.com/nationaltraders/plumbing-crm/internal/domain/entity"

// ProductRepository read access to the catalog. The application never writes
// through this interface; ReplaceAll exists for the seed tool only.
type ProductRepository interface {
	ListAll() ([]*entity.CatalogProduct, error)
	ListBySystem(system string) ([]*entity.CatalogProduct, error)
	ReplaceAll(products []*entity.CatalogProduct) error
}
