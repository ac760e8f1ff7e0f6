package entity

import "github.com/shopspring/decimal"

// CatalogProduct is one entry of the read-only product catalog, grouped by
// pipe system (CPVC, UPVC, SWR). The application never mutates the catalog;
// it is loaded by the seed tool from the supplier price list.
type CatalogProduct struct {
	ID       string
	System   string // grouping, e.g. pipe standard
	Category string
	Name     string
	Unit     string
	LengthM  *decimal.Decimal // optional pipe length in metres
	Variants []Variant        // ordered as published in the price list
}

// Variant is a specific size/price combination of a catalog product.
// Size is either a millimetre value ("25") or a label ("3/4 inch").
type Variant struct {
	Size  string          `json:"size"`
	Price decimal.Decimal `json:"price"`
}
