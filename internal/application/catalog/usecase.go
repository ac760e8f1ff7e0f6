// Package catalog serves the read-only product catalog: the CPVC, UPVC and
// SWR pipe systems with their size/price variants. The catalog is reference
// data loaded by the seed tool; the API never mutates it.
package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/nationaltraders/plumbing-crm/internal/application/dto"
	"github.com/nationaltraders/plumbing-crm/internal/domain"
	"github.com/nationaltraders/plumbing-crm/internal/domain/entity"
	"github.com/nationaltraders/plumbing-crm/internal/domain/repository"
)

// UseCase catalog queries.
type UseCase struct {
	productRepo repository.ProductRepository
}

// NewUseCase builds the use case.
func NewUseCase(productRepo repository.ProductRepository) *UseCase {
	return &UseCase{productRepo: productRepo}
}

// ListSystems returns the whole catalog grouped by system, systems in
// first-appearance order and products in store order within each system.
func (uc *UseCase) ListSystems(ctx context.Context) ([]dto.SystemDTO, error) {
	products, err := uc.productRepo.ListAll()
	if err != nil {
		return nil, err
	}
	return groupBySystem(products), nil
}

// GetSystem returns one system's products. The system name is matched
// case-insensitively; an unknown system is ErrNotFound.
func (uc *UseCase) GetSystem(ctx context.Context, system string) (*dto.SystemDTO, error) {
	if system == "" {
		return nil, fmt.Errorf("%w: system is required", domain.ErrValidation)
	}
	products, err := uc.productRepo.ListBySystem(strings.ToUpper(system))
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, domain.ErrNotFound
	}
	groups := groupBySystem(products)
	return &groups[0], nil
}

func groupBySystem(products []*entity.CatalogProduct) []dto.SystemDTO {
	index := make(map[string]int)
	var groups []dto.SystemDTO
	for _, p := range products {
		i, seen := index[p.System]
		if !seen {
			i = len(groups)
			index[p.System] = i
			groups = append(groups, dto.SystemDTO{System: p.System})
		}
		groups[i].Products = append(groups[i].Products, toProductDTO(p))
	}
	return groups
}

func toProductDTO(p *entity.CatalogProduct) dto.ProductDTO {
	variants := make([]dto.VariantDTO, 0, len(p.Variants))
	for _, v := range p.Variants {
		variants = append(variants, dto.VariantDTO{Size: v.Size, Price: v.Price})
	}
	return dto.ProductDTO{
		ID:       p.ID,
		Category: p.Category,
		Name:     p.Name,
		Unit:     p.Unit,
		LengthM:  p.LengthM,
		Variants: variants,
	}
}
