package billing_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nationaltraders/plumbing-crm/internal/application/billing"
	"github.com/nationaltraders/plumbing-crm/internal/application/dto"
	"github.com/nationaltraders/plumbing-crm/internal/domain"
)

func TestCustomerCreate_Valid(t *testing.T) {
	customers := &fakeCustomerRepo{}
	uc := billing.NewCustomerUseCase(customers, &fakeInvoiceRepo{})

	resp, err := uc.Create(context.Background(), dto.CreateCustomerRequest{
		Name:   "Suresh Kale",
		Mobile: "1234567890",
	})
	require.NoError(t, err)
	assert.Equal(t, "Suresh Kale", resp.Name)
	assert.Equal(t, "1234567890", resp.Mobile)
	assert.NotEmpty(t, resp.ID)
	assert.NotEmpty(t, resp.CreatedAt)
}

func TestCustomerCreate_MobileValidation(t *testing.T) {
	uc := billing.NewCustomerUseCase(&fakeCustomerRepo{}, &fakeInvoiceRepo{})

	for _, mobile := range []string{"", "12345", "12345678901", "12345abcde", "123 456 78"} {
		t.Run(mobile, func(t *testing.T) {
			_, err := uc.Create(context.Background(), dto.CreateCustomerRequest{
				Name:   "Anyone",
				Mobile: mobile,
			})
			assert.ErrorIs(t, err, domain.ErrValidation, "mobile %q must be rejected", mobile)
		})
	}
}

func TestCustomerCreate_DuplicateMobile(t *testing.T) {
	uc := billing.NewCustomerUseCase(&fakeCustomerRepo{}, &fakeInvoiceRepo{})

	_, err := uc.Create(context.Background(), dto.CreateCustomerRequest{Name: "First", Mobile: "1234567890"})
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), dto.CreateCustomerRequest{Name: "Second", Mobile: "1234567890"})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestCustomerGetDetails_HistoryAndStats(t *testing.T) {
	customers := &fakeCustomerRepo{}
	invoices := &fakeInvoiceRepo{}
	customerUC := billing.NewCustomerUseCase(customers, invoices)
	invoiceUC := newInvoiceUseCase(customers, invoices)

	_, err := invoiceUC.Create(context.Background(), sampleRequest())
	require.NoError(t, err)
	second, err := invoiceUC.Create(context.Background(), sampleRequest())
	require.NoError(t, err)

	detail, err := customerUC.GetDetails(context.Background(), "9876543210")
	require.NoError(t, err)

	assert.Equal(t, "Ramesh Pawar", detail.Customer.Name)
	require.Len(t, detail.Invoices, 2)
	assert.Equal(t, second.ID, detail.Invoices[0].ID, "history is newest first")

	assert.Equal(t, 2, detail.Stats.TotalInvoices)
	// Gross stat: subtotals before discount, 500 each.
	assert.Equal(t, "1000.00", detail.Stats.TotalBilled)
}

func TestCustomerGetDetails_NotFound(t *testing.T) {
	uc := billing.NewCustomerUseCase(&fakeCustomerRepo{}, &fakeInvoiceRepo{})

	_, err := uc.GetDetails(context.Background(), "9999999999")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCustomerList_NewestFirst(t *testing.T) {
	customers := &fakeCustomerRepo{}
	uc := billing.NewCustomerUseCase(customers, &fakeInvoiceRepo{})

	_, err := uc.Create(context.Background(), dto.CreateCustomerRequest{Name: "First", Mobile: "1111111111"})
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), dto.CreateCustomerRequest{Name: "Second", Mobile: "2222222222"})
	require.NoError(t, err)

	list, err := uc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Second", list[0].Name)
}
