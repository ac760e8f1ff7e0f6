package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nationaltraders/plumbing-crm/internal/application/dto"
	"github.com/nationaltraders/plumbing-crm/internal/domain"
	"github.com/nationaltraders/plumbing-crm/internal/domain/entity"
	"github.com/nationaltraders/plumbing-crm/internal/domain/repository"
)

// CustomerUseCase customer registration, listing and detail.
type CustomerUseCase struct {
	customerRepo repository.CustomerRepository
	invoiceRepo  repository.InvoiceRepository
}

// NewCustomerUseCase builds the use case.
func NewCustomerUseCase(customerRepo repository.CustomerRepository, invoiceRepo repository.InvoiceRepository) *CustomerUseCase {
	return &CustomerUseCase{customerRepo: customerRepo, invoiceRepo: invoiceRepo}
}

// Create registers a customer explicitly. Mobile is the unique key and must
// be exactly 10 digits.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if !mobilePattern.MatchString(in.Mobile) {
		return nil, fmt.Errorf("%w: mobile must be exactly 10 digits", domain.ErrValidation)
	}
	existing, err := uc.customerRepo.GetByMobile(in.Mobile)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrConflict
	}
	customer := &entity.Customer{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Mobile:    in.Mobile,
		CreatedAt: time.Now(),
	}
	if err := uc.customerRepo.Create(customer); err != nil {
		return nil, err
	}
	resp := toCustomerResponse(customer)
	return &resp, nil
}

// List returns all customers.
func (uc *CustomerUseCase) List(ctx context.Context) ([]dto.CustomerResponse, error) {
	customers, err := uc.customerRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, toCustomerResponse(c))
	}
	return out, nil
}

// GetDetails returns the customer, their invoice history (newest first) and
// billing stats. TotalBilled is the gross: the sum of invoice subtotals
// before discount.
func (uc *CustomerUseCase) GetDetails(ctx context.Context, mobile string) (*dto.CustomerDetailResponse, error) {
	if !mobilePattern.MatchString(mobile) {
		return nil, fmt.Errorf("%w: mobile must be exactly 10 digits", domain.ErrValidation)
	}
	customer, err := uc.customerRepo.GetByMobile(mobile)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	invoices, err := uc.invoiceRepo.ListByCustomer(mobile)
	if err != nil {
		return nil, err
	}

	totalBilled := decimal.Zero
	history := make([]dto.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		totalBilled = totalBilled.Add(inv.SubTotal)
		history = append(history, *toInvoiceResponse(inv))
	}

	return &dto.CustomerDetailResponse{
		Customer: toCustomerResponse(customer),
		Invoices: history,
		Stats: dto.CustomerStats{
			TotalInvoices: len(invoices),
			TotalBilled:   totalBilled.StringFixed(2),
		},
	}, nil
}

func toCustomerResponse(c *entity.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Mobile:    c.Mobile,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}
