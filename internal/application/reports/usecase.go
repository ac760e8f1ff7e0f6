// Package reports derives summary views from the full invoice set. Every
// operation is read-only and recomputed on each call: no incremental state,
// so results always reflect the latest committed writes at the cost of one
// full scan per request.
package reports

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nationaltraders/plumbing-crm/internal/application/dto"
	"github.com/nationaltraders/plumbing-crm/internal/domain"
	"github.com/nationaltraders/plumbing-crm/internal/domain/entity"
	"github.com/nationaltraders/plumbing-crm/internal/domain/repository"
)

// Sales-trend bucket periods.
const (
	PeriodDaily   = "daily"
	PeriodWeekly  = "weekly"
	PeriodMonthly = "monthly"
)

const (
	topRevenueRows     = 10 // revenue-by-customer / revenue-by-product rankings
	topMetricCustomers = 5  // customer-metrics widget
)

// UseCase reporting aggregator over the invoice and customer stores.
type UseCase struct {
	invoiceRepo  repository.InvoiceRepository
	customerRepo repository.CustomerRepository
}

// NewUseCase builds the aggregator.
func NewUseCase(invoiceRepo repository.InvoiceRepository, customerRepo repository.CustomerRepository) *UseCase {
	return &UseCase{invoiceRepo: invoiceRepo, customerRepo: customerRepo}
}

// SalesTrends buckets invoice totals by day, calendar week (Sunday start,
// UTC) or month. Empty period defaults to daily.
func (uc *UseCase) SalesTrends(ctx context.Context, period string) ([]dto.TrendPointDTO, error) {
	if period == "" {
		period = PeriodDaily
	}
	if period != PeriodDaily && period != PeriodWeekly && period != PeriodMonthly {
		return nil, fmt.Errorf("%w: period must be daily, weekly or monthly", domain.ErrValidation)
	}

	invoices, err := uc.invoiceRepo.ListAll()
	if err != nil {
		return nil, err
	}

	sums := make(map[string]decimal.Decimal)
	var order []string
	for _, inv := range invoices {
		key := bucketKey(inv.CreatedAt, period)
		if _, seen := sums[key]; !seen {
			order = append(order, key)
		}
		sums[key] = sums[key].Add(inv.Total)
	}

	out := make([]dto.TrendPointDTO, 0, len(order))
	for _, key := range order {
		out = append(out, dto.TrendPointDTO{Date: key, Amount: sums[key].Round(2)})
	}
	return out, nil
}

// bucketKey formats the grouping key for a creation time, in UTC.
func bucketKey(t time.Time, period string) string {
	t = t.UTC()
	switch period {
	case PeriodWeekly:
		weekStart := t.AddDate(0, 0, -int(t.Weekday())) // back to Sunday
		return weekStart.Format("2006-01-02")
	case PeriodMonthly:
		return t.Format("2006-01")
	default:
		return t.Format("2006-01-02")
	}
}

// RevenueByCustomer sums invoice totals per customer name, descending,
// top 10. Ties keep first-appearance order.
func (uc *UseCase) RevenueByCustomer(ctx context.Context) ([]dto.RevenueRowDTO, error) {
	invoices, err := uc.invoiceRepo.ListAll()
	if err != nil {
		return nil, err
	}
	return rankRevenue(invoices, func(inv *entity.Invoice, add func(key string, amount decimal.Decimal)) {
		add(inv.CustomerName, inv.Total)
	}), nil
}

// RevenueByProduct sums line amounts per "productName (size)" key across all
// invoices' items, descending, top 10.
func (uc *UseCase) RevenueByProduct(ctx context.Context) ([]dto.RevenueRowDTO, error) {
	invoices, err := uc.invoiceRepo.ListAll()
	if err != nil {
		return nil, err
	}
	return rankRevenue(invoices, func(inv *entity.Invoice, add func(key string, amount decimal.Decimal)) {
		for _, item := range inv.Items {
			add(item.ProductKey(), item.Amount)
		}
	}), nil
}

// rankRevenue accumulates amounts per exact-string key and returns the top
// rows sorted non-increasing. sort.SliceStable preserves insertion order on
// ties.
func rankRevenue(invoices []*entity.Invoice, collect func(*entity.Invoice, func(string, decimal.Decimal))) []dto.RevenueRowDTO {
	sums := make(map[string]decimal.Decimal)
	var order []string
	add := func(key string, amount decimal.Decimal) {
		if _, seen := sums[key]; !seen {
			order = append(order, key)
		}
		sums[key] = sums[key].Add(amount)
	}
	for _, inv := range invoices {
		collect(inv, add)
	}

	rows := make([]dto.RevenueRowDTO, 0, len(order))
	for _, key := range order {
		rows = append(rows, dto.RevenueRowDTO{Name: key, Revenue: sums[key].Round(2)})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Revenue.GreaterThan(rows[j].Revenue)
	})
	if len(rows) > topRevenueRows {
		rows = rows[:topRevenueRows]
	}
	return rows
}

// PaymentStatus counts and sums invoice totals for the Recorded vs Pending
// groups. Collection rate is paidCount/totalInvoices*100, 0 with no invoices.
func (uc *UseCase) PaymentStatus(ctx context.Context) (*dto.PaymentStatusSummaryDTO, error) {
	invoices, err := uc.invoiceRepo.ListAll()
	if err != nil {
		return nil, err
	}

	summary := &dto.PaymentStatusSummaryDTO{TotalInvoices: len(invoices)}
	paid, pending := decimal.Zero, decimal.Zero
	for _, inv := range invoices {
		if inv.PaymentStatus == entity.PaymentStatusRecorded {
			summary.PaidCount++
			paid = paid.Add(inv.Total)
		} else {
			summary.BalanceCount++
			pending = pending.Add(inv.Total)
		}
	}
	summary.PaidAmount = paid.Round(2)
	summary.PendingAmount = pending.Round(2)
	summary.CollectionRatePct = decimal.Zero
	if summary.TotalInvoices > 0 {
		summary.CollectionRatePct = decimal.NewFromInt(int64(summary.PaidCount)).
			Mul(decimal.NewFromInt(100)).
			Div(decimal.NewFromInt(int64(summary.TotalInvoices))).
			Round(2)
	}
	return summary, nil
}

// CustomerMetrics overall counts, total revenue, average order value and the
// top-5 customers by revenue with per-customer invoice counts. Customers are
// keyed by the mobile snapshot so renames between invoices do not split them.
func (uc *UseCase) CustomerMetrics(ctx context.Context) (*dto.CustomerMetricsDTO, error) {
	invoices, err := uc.invoiceRepo.ListAll()
	if err != nil {
		return nil, err
	}
	totalCustomers, err := uc.customerRepo.Count()
	if err != nil {
		return nil, err
	}

	type acc struct {
		name     string
		invoices int
		revenue  decimal.Decimal
	}
	byMobile := make(map[string]*acc)
	var order []string
	revenue := decimal.Zero
	for _, inv := range invoices {
		revenue = revenue.Add(inv.Total)
		a, seen := byMobile[inv.CustomerMobile]
		if !seen {
			a = &acc{name: inv.CustomerName}
			byMobile[inv.CustomerMobile] = a
			order = append(order, inv.CustomerMobile)
		}
		a.invoices++
		a.revenue = a.revenue.Add(inv.Total)
	}

	metrics := &dto.CustomerMetricsDTO{
		TotalCustomers:    totalCustomers,
		TotalInvoices:     len(invoices),
		TotalRevenue:      revenue.Round(2),
		AverageOrderValue: decimal.Zero,
		TopCustomers:      []dto.TopCustomerDTO{},
	}
	if len(invoices) > 0 {
		metrics.AverageOrderValue = revenue.Div(decimal.NewFromInt(int64(len(invoices)))).Round(2)
	}

	top := make([]dto.TopCustomerDTO, 0, len(order))
	for _, mobile := range order {
		a := byMobile[mobile]
		top = append(top, dto.TopCustomerDTO{Name: a.name, Invoices: a.invoices, Revenue: a.revenue.Round(2)})
	}
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Revenue.GreaterThan(top[j].Revenue)
	})
	if len(top) > topMetricCustomers {
		top = top[:topMetricCustomers]
	}
	metrics.TopCustomers = top

	return metrics, nil
}
