package dto

import "github.com/shopspring/decimal"

// VariantDTO one size/price combination of a catalog product.
type VariantDTO struct {
	Size  string          `json:"size"`
	Price decimal.Decimal `json:"price"`
}

// ProductDTO one catalog entry within a system group.
type ProductDTO struct {
	ID       string           `json:"id"`
	Category string           `json:"category,omitempty"`
	Name     string           `json:"name"`
	Unit     string           `json:"unit,omitempty"`
	LengthM  *decimal.Decimal `json:"length_m,omitempty"`
	Variants []VariantDTO     `json:"variants"`
}

// SystemDTO one pipe system (CPVC, UPVC, SWR) with its products, as served by
// GET /api/products.
type SystemDTO struct {
	System   string       `json:"system"`
	Products []ProductDTO `json:"products"`
}
