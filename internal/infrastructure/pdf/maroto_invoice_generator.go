// Package pdf renders the printable shop invoice with Maroto v2.
//
// A4 page layout:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Shop name + address + owner  │  Invoice N° + date   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  BILLED TO: customer name + mobile                           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLE: # | Particulars | Qty | Rate | Gross | Disc% | Amt   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALS: Subtotal / Total discount / TOTAL                   │
//	│  PAYMENT: status, mode, amount received, balance             │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	marotocfg "github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	appbilling "github.com/nationaltraders/plumbing-crm/internal/application/billing"
	"github.com/nationaltraders/plumbing-crm/internal/domain/entity"
	"github.com/nationaltraders/plumbing-crm/pkg/config"
)

var _ appbilling.InvoicePDFGenerator = (*MarotoInvoiceGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 13, Green: 71, Blue: 161}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

const maxParticularsLen = 38

// MarotoInvoiceGenerator implements billing.InvoicePDFGenerator using Maroto v2.
type MarotoInvoiceGenerator struct{}

// NewMarotoInvoiceGenerator builds the generator.
func NewMarotoInvoiceGenerator() *MarotoInvoiceGenerator { return &MarotoInvoiceGenerator{} }

// GenerateInvoicePDF renders the invoice and returns its bytes.
func (g *MarotoInvoiceGenerator) GenerateInvoicePDF(
	_ context.Context,
	invoice *entity.Invoice,
	shop config.ShopConfig,
) ([]byte, error) {
	cfg := marotocfg.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Invoice "+invoice.Number, true).
		WithAuthor(shop.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(invoice, shop))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(invoice))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(invoice.Items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(invoice))
	m.AddRows(line.NewRow(2))
	for _, r := range paymentRows(invoice) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: shop identity (left) and invoice number + date (right).
func headerRow(invoice *entity.Invoice, shop config.ShopConfig) core.Row {
	date := invoice.CreatedAt.Format("02/01/2006")

	return row.New(20).Add(
		col.New(7).Add(
			text.New(shop.Name, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New(shop.Address, props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
			text.New(shop.Owner+"  |  "+shop.Phone, props.Text{
				Size: 8, Top: 14, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("INVOICE", props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(invoice.Number, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Date: "+date, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// customerRow: billed-to snapshot taken at invoice creation.
func customerRow(invoice *entity.Invoice) core.Row {
	return row.New(13).Add(
		col.New(12).Add(
			text.New("BILLED TO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(invoice.CustomerName, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New("Mobile: "+invoice.CustomerMobile, props.Text{
				Size: 8, Top: 11, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: item table header.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("#", 1, align.Center),
		h("Particulars", 3, align.Left),
		h("Qty", 1, align.Center),
		h("Rate", 2, align.Right),
		h("Gross", 2, align.Right),
		h("Disc%", 1, align.Center),
		h("Amount", 2, align.Right),
	)
}

// tableItemRows: one row per invoice line.
func tableItemRows(items []entity.InvoiceItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for i, item := range items {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", i+1),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(3).Add(text.New(
				truncate(item.ProductKey(), maxParticularsLen),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", item.Qty),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				formatMoney(item.Price),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				formatMoney(item.BaseAmount),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				item.DiscountPct.StringFixed(0),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				formatMoney(item.Amount),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: totals block aligned right.
func totalsRow(invoice *entity.Invoice) core.Row {
	discount := invoice.SubTotal.Sub(invoice.Total)

	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}

	return row.New(22).Add(
		col.New(4),
		col.New(4).Add(
			label("Subtotal:"),
			text.New("Total discount:", props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: 5,
			}),
			text.New("TOTAL:", props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right,
				Color: colorPrimary, Right: 2, Top: 11,
			}),
		),
		col.New(4).Add(
			value("Rs. "+formatMoney(invoice.SubTotal)),
			text.New("Rs. "+formatMoney(discount), props.Text{
				Size: 9, Align: align.Right, Right: 1, Top: 5,
			}),
			text.New("Rs. "+formatMoney(invoice.Total), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right,
				Color: colorPrimary, Right: 1, Top: 11,
			}),
		),
	)
}

// paymentRows: payment record section. The shop keys payments in by hand, so
// the block is informational, not a receipt.
func paymentRows(invoice *entity.Invoice) []core.Row {
	mode := invoice.PaymentMode
	if mode == "" {
		mode = "-"
	}
	paymentDate := "-"
	if invoice.PaymentDate != nil {
		paymentDate = invoice.PaymentDate.Format("02/01/2006")
	}

	return []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("PAYMENT RECORD", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
		)),
		row.New(6).Add(col.New(12).Add(
			text.New(fmt.Sprintf("Status: %s   |   Mode: %s   |   Date: %s",
				invoice.PaymentStatus, mode, paymentDate,
			), props.Text{Size: 8, Top: 1, Color: colorGray}),
		)),
		row.New(6).Add(col.New(12).Add(
			text.New(fmt.Sprintf("Amount received: Rs. %s   |   Balance: Rs. %s",
				formatMoney(invoice.AmountRecorded), formatMoney(invoice.BalanceAmount),
			), props.Text{Size: 8, Top: 1, Color: colorGray}),
		)),
		row.New(8).Add(col.New(12).Add(
			text.New("Amounts recorded for shop bookkeeping. This invoice is not a payment receipt.",
				props.Text{Size: 6.5, Color: colorGray, Top: 3}),
		)),
	}
}

// ── helpers ───────────────────────────────────────────────────────────────────

var moneyPrinter = message.NewPrinter(language.MustParse("en-IN"))

// formatMoney renders an amount with Indian digit grouping and two decimals.
// E.g. 123456.7 → "1,23,456.70"
func formatMoney(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return moneyPrinter.Sprintf("%v", number.Decimal(f,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// truncate shortens s to max runes, appending "..." when cut.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
