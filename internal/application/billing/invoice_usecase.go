package billing

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nationaltraders/plumbing-crm/internal/application/dto"
	"github.com/nationaltraders/plumbing-crm/internal/domain"
	"github.com/nationaltraders/plumbing-crm/internal/domain/entity"
	"github.com/nationaltraders/plumbing-crm/internal/domain/pricing"
	"github.com/nationaltraders/plumbing-crm/internal/domain/repository"
)

var mobilePattern = regexp.MustCompile(`^[0-9]{10}$`)

// InvoiceUseCase creates and reads invoices. Creation is atomic: the invoice
// is persisted with its full item list or not at all, and the customer
// snapshot (name, mobile) is frozen at billing time.
type InvoiceUseCase struct {
	customerRepo repository.CustomerRepository
	invoiceRepo  repository.InvoiceRepository
	numbers      *NumberGenerator
}

// NewInvoiceUseCase builds the use case.
func NewInvoiceUseCase(
	customerRepo repository.CustomerRepository,
	invoiceRepo repository.InvoiceRepository,
	numbers *NumberGenerator,
) *InvoiceUseCase {
	return &InvoiceUseCase{
		customerRepo: customerRepo,
		invoiceRepo:  invoiceRepo,
		numbers:      numbers,
	}
}

// Create validates and prices the request, assigns an invoice number, and
// persists the invoice. The customer is registered on first invoice if not
// already known. A duplicate-number conflict from a concurrent insert
// renumbers and retries, bounded at numberMaxAttempts.
func (uc *InvoiceUseCase) Create(ctx context.Context, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if in.CustomerName == "" {
		return nil, fmt.Errorf("%w: customerName is required", domain.ErrValidation)
	}
	if !mobilePattern.MatchString(in.CustomerMobile) {
		return nil, fmt.Errorf("%w: customerMobile must be exactly 10 digits", domain.ErrValidation)
	}
	if len(in.Items) == 0 {
		return nil, fmt.Errorf("%w: at least one item is required", domain.ErrValidation)
	}

	items := make([]entity.InvoiceItem, 0, len(in.Items))
	amounts := make([]pricing.Amounts, 0, len(in.Items))
	for _, it := range in.Items {
		if it.ProductName == "" {
			return nil, fmt.Errorf("%w: item productName is required", domain.ErrValidation)
		}
		base, amount, err := pricing.Line(it.Qty, it.Price, it.DiscountPct)
		if err != nil {
			return nil, err
		}
		items = append(items, entity.InvoiceItem{
			ProductName: it.ProductName,
			Size:        it.Size,
			Qty:         it.Qty,
			Price:       it.Price,
			DiscountPct: it.DiscountPct,
			BaseAmount:  base,
			Amount:      amount,
		})
		amounts = append(amounts, pricing.Amounts{BaseAmount: base, Amount: amount})
	}
	totals := pricing.Totals(amounts)

	status := in.PaymentStatus
	if status == "" {
		status = entity.PaymentStatusPending
	}
	if err := validatePayment(status, in.PaymentMode, in.AmountRecorded); err != nil {
		return nil, err
	}

	now := time.Now()
	inv := &entity.Invoice{
		ID:             uuid.New().String(),
		CustomerName:   in.CustomerName,
		CustomerMobile: in.CustomerMobile,
		Items:          items,
		SubTotal:       totals.SubTotal,
		Total:          totals.Total,
		PaymentStatus:  status,
		PaymentMode:    in.PaymentMode,
		AmountRecorded: in.AmountRecorded,
		CreatedAt:      now,
	}
	applyBalance(inv, now)

	if err := uc.ensureCustomer(in.CustomerName, in.CustomerMobile, now); err != nil {
		return nil, err
	}

	for attempt := 0; attempt < numberMaxAttempts; attempt++ {
		number, err := uc.numbers.Next(uc.invoiceRepo)
		if err != nil {
			return nil, err
		}
		inv.Number = number

		err = uc.invoiceRepo.Create(inv)
		if errors.Is(err, domain.ErrConflict) {
			// A concurrent insert took the number between check and insert.
			continue
		}
		if err != nil {
			return nil, err
		}
		return toInvoiceResponse(inv), nil
	}
	return nil, domain.ErrNumberGeneration
}

// GetByID returns the full invoice document.
func (uc *InvoiceUseCase) GetByID(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	return toInvoiceResponse(inv), nil
}

// List returns all invoices, newest first.
func (uc *InvoiceUseCase) List(ctx context.Context) ([]*dto.InvoiceResponse, error) {
	invoices, err := uc.invoiceRepo.ListAll()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, toInvoiceResponse(inv))
	}
	return out, nil
}

// ensureCustomer registers the customer on first invoice. A conflict from a
// concurrent registration is fine: the customer exists either way.
func (uc *InvoiceUseCase) ensureCustomer(name, mobile string, now time.Time) error {
	existing, err := uc.customerRepo.GetByMobile(mobile)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}
	err = uc.customerRepo.Create(&entity.Customer{
		ID:        uuid.New().String(),
		Name:      name,
		Mobile:    mobile,
		CreatedAt: now,
	})
	if errors.Is(err, domain.ErrConflict) {
		return nil
	}
	return err
}

func validatePayment(status, mode string, amountRecorded decimal.Decimal) error {
	if status != entity.PaymentStatusRecorded && status != entity.PaymentStatusPending {
		return fmt.Errorf("%w: paymentStatus must be Recorded or Pending", domain.ErrValidation)
	}
	switch mode {
	case "", entity.PaymentModeCash, entity.PaymentModeUPI, entity.PaymentModeCard, entity.PaymentModeOther:
	default:
		return fmt.Errorf("%w: paymentMode must be Cash, UPI, Card, Other or empty", domain.ErrValidation)
	}
	if amountRecorded.IsNegative() {
		return fmt.Errorf("%w: amountRecorded must not be negative", domain.ErrValidation)
	}
	return nil
}

// applyBalance derives BalanceAmount and PaymentDate from the payment status.
// Recorded invoices carry no balance; marking Recorded without an amount
// records the full total.
func applyBalance(inv *entity.Invoice, now time.Time) {
	if inv.PaymentStatus == entity.PaymentStatusRecorded {
		if inv.AmountRecorded.IsZero() {
			inv.AmountRecorded = inv.Total
		}
		inv.BalanceAmount = decimal.Zero
		if inv.PaymentDate == nil {
			inv.PaymentDate = &now
		}
		return
	}
	inv.BalanceAmount = inv.Total.Sub(inv.AmountRecorded)
}

func toInvoiceResponse(inv *entity.Invoice) *dto.InvoiceResponse {
	resp := &dto.InvoiceResponse{
		ID:             inv.ID,
		Number:         inv.Number,
		CustomerName:   inv.CustomerName,
		CustomerMobile: inv.CustomerMobile,
		Items:          make([]dto.InvoiceItemResponse, 0, len(inv.Items)),
		SubTotal:       inv.SubTotal.Round(2),
		Total:          inv.Total.Round(2),
		TotalDiscount:  inv.SubTotal.Sub(inv.Total).Round(2),
		PaymentStatus:  inv.PaymentStatus,
		PaymentMode:    inv.PaymentMode,
		AmountRecorded: inv.AmountRecorded.Round(2),
		BalanceAmount:  inv.BalanceAmount.Round(2),
		CreatedAt:      inv.CreatedAt.Format(time.RFC3339),
	}
	if inv.PaymentDate != nil {
		resp.PaymentDate = inv.PaymentDate.Format(time.RFC3339)
	}
	for _, it := range inv.Items {
		resp.Items = append(resp.Items, dto.InvoiceItemResponse{
			ProductName: it.ProductName,
			Size:        it.Size,
			Qty:         it.Qty,
			Price:       it.Price,
			DiscountPct: it.DiscountPct,
			BaseAmount:  it.BaseAmount.Round(2),
			Amount:      it.Amount.Round(2),
		})
	}
	return resp
}
