package main

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/nationaltraders/plumbing-crm/internal/domain/entity"
	"github.com/nationaltraders/plumbing-crm/internal/domain/repository"
	"github.com/nationaltraders/plumbing-crm/internal/infrastructure/postgres"
	"github.com/nationaltraders/plumbing-crm/pkg/config"
)

//go:embed products.json
var productsJSON []byte

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Replace the product catalog with the embedded price list",
	RunE:  runCatalog,
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}

// seedSystem mirrors the price-list JSON layout: systems at the top level,
// each with its products and size/price variants.
type seedSystem struct {
	System   string        `json:"system"`
	Products []seedProduct `json:"products"`
}

type seedProduct struct {
	Category string           `json:"category,omitempty"`
	Name     string           `json:"name"`
	Unit     string           `json:"unit,omitempty"`
	LengthM  *decimal.Decimal `json:"length_m,omitempty"`
	Variants []seedVariant    `json:"variants"`
}

type seedVariant struct {
	Size  string          `json:"size"`
	Price decimal.Decimal `json:"price"`
}

func runCatalog(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	log := newLogger(cfg)

	var systems []seedSystem
	if err := json.Unmarshal(productsJSON, &systems); err != nil {
		return fmt.Errorf("parse embedded price list: %w", err)
	}

	var products []*entity.CatalogProduct
	for _, s := range systems {
		for _, p := range s.Products {
			variants := make([]entity.Variant, 0, len(p.Variants))
			for _, v := range p.Variants {
				variants = append(variants, entity.Variant{Size: v.Size, Price: v.Price})
			}
			products = append(products, &entity.CatalogProduct{
				ID:       uuid.New().String(),
				System:   s.System,
				Category: p.Category,
				Name:     p.Name,
				Unit:     p.Unit,
				LengthM:  p.LengthM,
				Variants: variants,
			})
		}
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return fmt.Errorf("connect to PostgreSQL: %w", err)
	}
	defer pool.Close()

	txRunner := postgres.NewTxRunner(pool)
	err = txRunner.RunCatalog(ctx, func(productRepo repository.ProductRepository) error {
		return productRepo.ReplaceAll(products)
	})
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	log.Info().
		Int("systems", len(systems)).
		Int("products", len(products)).
		Msg("catalog loaded")
	return nil
}
