package dto

import "github.com/shopspring/decimal"

// CreateCustomerRequest body for POST /api/customers.
type CreateCustomerRequest struct {
	Name   string `json:"name"`
	Mobile string `json:"mobile"`
}

// CustomerResponse customer in responses.
type CustomerResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Mobile    string `json:"mobile"`
	CreatedAt string `json:"createdAt"`
}

// CustomerStats billing statistics shown on the customer detail page.
// TotalBilled is the gross (sum of invoice subtotals) formatted to 2 decimals.
type CustomerStats struct {
	TotalInvoices int    `json:"totalInvoices"`
	TotalBilled   string `json:"totalBilled"`
}

// CustomerDetailResponse response for GET /api/customers/:mobile:
// the customer plus invoice history (newest first) and stats.
type CustomerDetailResponse struct {
	Customer CustomerResponse  `json:"customer"`
	Invoices []InvoiceResponse `json:"invoices"`
	Stats    CustomerStats     `json:"stats"`
}

// InvoiceItemRequest one line of POST /api/invoices.
type InvoiceItemRequest struct {
	ProductName string          `json:"productName"`
	Size        string          `json:"size"`
	Qty         int64           `json:"qty"`
	Price       decimal.Decimal `json:"price"`
	DiscountPct decimal.Decimal `json:"discountPct"`
}

// CreateInvoiceRequest body for POST /api/invoices. The invoice number and id
// are server-assigned. Payment fields are optional; omitted means Pending
// with nothing recorded.
type CreateInvoiceRequest struct {
	CustomerName   string               `json:"customerName"`
	CustomerMobile string               `json:"customerMobile"`
	Items          []InvoiceItemRequest `json:"items"`
	PaymentStatus  string               `json:"paymentStatus,omitempty"`
	PaymentMode    string               `json:"paymentMode,omitempty"`
	AmountRecorded decimal.Decimal      `json:"amountRecorded,omitempty"`
}

// UpdatePaymentRequest body for PATCH /api/invoices/:id/payment.
// PaymentDate is optional RFC 3339; empty means "now".
type UpdatePaymentRequest struct {
	PaymentStatus  string          `json:"paymentStatus"`
	PaymentMode    string          `json:"paymentMode"`
	AmountRecorded decimal.Decimal `json:"amountRecorded"`
	PaymentDate    string          `json:"paymentDate,omitempty"`
}

// InvoiceItemResponse one priced line in invoice responses.
type InvoiceItemResponse struct {
	ProductName string          `json:"productName"`
	Size        string          `json:"size"`
	Qty         int64           `json:"qty"`
	Price       decimal.Decimal `json:"price"`
	DiscountPct decimal.Decimal `json:"discountPct"`
	BaseAmount  decimal.Decimal `json:"baseAmount"`
	Amount      decimal.Decimal `json:"amount"`
}

// InvoiceResponse full invoice document. All currency fields are rounded to
// 2 decimals.
type InvoiceResponse struct {
	ID             string                `json:"id"`
	Number         string                `json:"invoiceNumber"`
	CustomerName   string                `json:"customerName"`
	CustomerMobile string                `json:"customerMobile"`
	Items          []InvoiceItemResponse `json:"items"`
	SubTotal       decimal.Decimal       `json:"subTotal"`
	Total          decimal.Decimal       `json:"total"`
	TotalDiscount  decimal.Decimal       `json:"totalDiscount"`
	PaymentStatus  string                `json:"paymentStatus"`
	PaymentMode    string                `json:"paymentMode"`
	AmountRecorded decimal.Decimal       `json:"amountRecorded"`
	BalanceAmount  decimal.Decimal       `json:"balanceAmount"`
	PaymentDate    string                `json:"paymentDate,omitempty"`
	CreatedAt      string                `json:"createdAt"`
}
