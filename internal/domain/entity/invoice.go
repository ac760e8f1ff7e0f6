package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment record states. Informational only: no settlement happens behind them.
const (
	PaymentStatusRecorded = "Recorded"
	PaymentStatusPending  = "Pending"
)

// Accepted payment modes ("" = not specified).
const (
	PaymentModeCash  = "Cash"
	PaymentModeUPI   = "UPI"
	PaymentModeCard  = "Card"
	PaymentModeOther = "Other"
)

// Invoice is a persisted invoice document. CustomerName and CustomerMobile are
// a snapshot taken at billing time, not a live reference: historical invoices
// keep the customer info as it was when billed. Items and totals are immutable
// after creation; only the payment record fields may change.
type Invoice struct {
	ID             string
	Number         string // short unique code, e.g. AB01234; assigned once
	CustomerName   string
	CustomerMobile string
	Items          []InvoiceItem
	SubTotal       decimal.Decimal // sum of item BaseAmount
	Total          decimal.Decimal // sum of item Amount
	PaymentStatus  string          // Recorded | Pending
	PaymentMode    string          // Cash | UPI | Card | Other | ""
	AmountRecorded decimal.Decimal
	BalanceAmount  decimal.Decimal // Total - AmountRecorded while Pending; 0 once Recorded
	PaymentDate    *time.Time
	CreatedAt      time.Time
}

// InvoiceItem is one product/size/quantity line within an invoice.
// BaseAmount = Qty * Price; Amount = BaseAmount * (1 - DiscountPct/100).
type InvoiceItem struct {
	ProductName string          `json:"productName"`
	Size        string          `json:"size"`
	Qty         int64           `json:"qty"`
	Price       decimal.Decimal `json:"price"`
	DiscountPct decimal.Decimal `json:"discountPct"`
	BaseAmount  decimal.Decimal `json:"baseAmount"`
	Amount      decimal.Decimal `json:"amount"`
}

// ProductKey is the grouping key used by product revenue reports and the PDF
// particulars column: "name (size)".
func (it InvoiceItem) ProductKey() string {
	return it.ProductName + " (" + it.Size + ")"
}
