// Package pricing computes line and invoice amounts. Pure functions, exact
// decimals: rounding to 2 places happens at the presentation and persistence
// edges, never here.
package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/nationaltraders/plumbing-crm/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// Line computes the gross and discounted amount for one invoice line.
//
//	base   = qty * price
//	amount = base - base*discountPct/100
//
// Returns domain.ErrValidation if qty <= 0, price < 0 or discountPct is
// outside [0,100].
func Line(qty int64, price, discountPct decimal.Decimal) (base, amount decimal.Decimal, err error) {
	if qty <= 0 {
		return decimal.Zero, decimal.Zero, fmt.Errorf("%w: qty must be positive, got %d", domain.ErrValidation, qty)
	}
	if price.IsNegative() {
		return decimal.Zero, decimal.Zero, fmt.Errorf("%w: price must not be negative, got %s", domain.ErrValidation, price)
	}
	if discountPct.IsNegative() || discountPct.GreaterThan(hundred) {
		return decimal.Zero, decimal.Zero, fmt.Errorf("%w: discountPct must be in [0,100], got %s", domain.ErrValidation, discountPct)
	}

	base = decimal.NewFromInt(qty).Mul(price)
	amount = base.Sub(base.Mul(discountPct).Div(hundred))
	return base, amount, nil
}

// LineTotals carries the invoice-level sums derived from a priced item list.
type LineTotals struct {
	SubTotal      decimal.Decimal // sum of base amounts
	Total         decimal.Decimal // sum of discounted amounts
	TotalDiscount decimal.Decimal // SubTotal - Total
}

// Amounts is the minimal view of a priced line needed for totals.
type Amounts struct {
	BaseAmount decimal.Decimal
	Amount     decimal.Decimal
}

// Totals sums the per-line amounts. Deterministic: the same item list always
// yields the same result.
func Totals(items []Amounts) LineTotals {
	var sub, total decimal.Decimal
	for _, it := range items {
		sub = sub.Add(it.BaseAmount)
		total = total.Add(it.Amount)
	}
	return LineTotals{
		SubTotal:      sub,
		Total:         total,
		TotalDiscount: sub.Sub(total),
	}
}
