package dto

import "github.com/shopspring/decimal"

// TrendPointDTO one time bucket of GET /api/reports/sales-trends.
// Date is YYYY-MM-DD for daily/weekly buckets and YYYY-MM for monthly.
type TrendPointDTO struct {
	Date   string          `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

// RevenueRowDTO one row of the revenue-by-customer / revenue-by-product
// rankings (top 10, descending).
type RevenueRowDTO struct {
	Name    string          `json:"name"`
	Revenue decimal.Decimal `json:"revenue"`
}

// PaymentStatusSummaryDTO response of GET /api/reports/payment-status.
// CollectionRatePct = paidCount/totalInvoices*100, 0 when there are no invoices.
type PaymentStatusSummaryDTO struct {
	TotalInvoices     int             `json:"totalInvoices"`
	PaidCount         int             `json:"paidCount"`
	BalanceCount      int             `json:"balanceCount"`
	PaidAmount        decimal.Decimal `json:"paidAmount"`
	PendingAmount     decimal.Decimal `json:"pendingAmount"`
	CollectionRatePct decimal.Decimal `json:"collectionRatePct"`
}

// TopCustomerDTO one of the top-5 customers by revenue.
type TopCustomerDTO struct {
	Name     string          `json:"name"`
	Invoices int             `json:"invoices"`
	Revenue  decimal.Decimal `json:"revenue"`
}

// CustomerMetricsDTO response of GET /api/reports/customer-metrics.
type CustomerMetricsDTO struct {
	TotalCustomers    int              `json:"totalCustomers"`
	TotalInvoices     int              `json:"totalInvoices"`
	TotalRevenue      decimal.Decimal  `json:"totalRevenue"`
	AverageOrderValue decimal.Decimal  `json:"averageOrderValue"`
	TopCustomers      []TopCustomerDTO `json:"topCustomers"`
}
