package billing_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nationaltraders/plumbing-crm/internal/application/billing"
	"github.com/nationaltraders/plumbing-crm/internal/application/dto"
	"github.com/nationaltraders/plumbing-crm/internal/domain"
	"github.com/nationaltraders/plumbing-crm/internal/domain/entity"
)

func newInvoiceUseCase(customers *fakeCustomerRepo, invoices *fakeInvoiceRepo) *billing.InvoiceUseCase {
	return billing.NewInvoiceUseCase(customers, invoices, billing.NewNumberGenerator())
}

func sampleRequest() dto.CreateInvoiceRequest {
	return dto.CreateInvoiceRequest{
		CustomerName:   "Ramesh Pawar",
		CustomerMobile: "9876543210",
		Items: []dto.InvoiceItemRequest{
			{ProductName: "CPVC Pipe SDR-11", Size: "25", Qty: 10, Price: d("50"), DiscountPct: d("10")},
		},
	}
}

func TestCreateInvoice_PricesAndDefaults(t *testing.T) {
	customers := &fakeCustomerRepo{}
	invoices := &fakeInvoiceRepo{}
	uc := newInvoiceUseCase(customers, invoices)

	resp, err := uc.Create(context.Background(), sampleRequest())
	require.NoError(t, err)

	// qty 10 * price 50 = 500 gross, minus 10% = 450.
	assert.True(t, d("500").Equal(resp.SubTotal), "subTotal, got %s", resp.SubTotal)
	assert.True(t, d("450").Equal(resp.Total), "total, got %s", resp.Total)
	assert.True(t, d("50").Equal(resp.TotalDiscount))
	require.Len(t, resp.Items, 1)
	assert.True(t, d("500").Equal(resp.Items[0].BaseAmount))
	assert.True(t, d("450").Equal(resp.Items[0].Amount))

	// Defaults: Pending, nothing recorded, full balance outstanding.
	assert.Equal(t, entity.PaymentStatusPending, resp.PaymentStatus)
	assert.True(t, resp.AmountRecorded.IsZero())
	assert.True(t, d("450").Equal(resp.BalanceAmount))
	assert.Empty(t, resp.PaymentDate)

	assert.Regexp(t, regexp.MustCompile(`^[A-Z0-9]{2}[0-9]{5}$`), resp.Number)
}

func TestCreateInvoice_AutoRegistersCustomer(t *testing.T) {
	customers := &fakeCustomerRepo{}
	invoices := &fakeInvoiceRepo{}
	uc := newInvoiceUseCase(customers, invoices)

	_, err := uc.Create(context.Background(), sampleRequest())
	require.NoError(t, err)

	c, err := customers.GetByMobile("9876543210")
	require.NoError(t, err)
	require.NotNil(t, c, "first invoice must register the customer")
	assert.Equal(t, "Ramesh Pawar", c.Name)

	// A second invoice for the same mobile must not duplicate the customer.
	_, err = uc.Create(context.Background(), sampleRequest())
	require.NoError(t, err)
	n, _ := customers.Count()
	assert.Equal(t, 1, n)
}

func TestCreateInvoice_RenumbersOnConflict(t *testing.T) {
	customers := &fakeCustomerRepo{}
	invoices := &fakeInvoiceRepo{conflictsLeft: 3}
	uc := newInvoiceUseCase(customers, invoices)

	resp, err := uc.Create(context.Background(), sampleRequest())
	require.NoError(t, err, "insert conflicts within the attempt budget must be retried")
	assert.NotEmpty(t, resp.Number)

	all, _ := invoices.ListAll()
	assert.Len(t, all, 1)
}

func TestCreateInvoice_GivesUpAfterMaxConflicts(t *testing.T) {
	customers := &fakeCustomerRepo{}
	invoices := &fakeInvoiceRepo{conflictsLeft: 1000}
	uc := newInvoiceUseCase(customers, invoices)

	_, err := uc.Create(context.Background(), sampleRequest())
	assert.ErrorIs(t, err, domain.ErrNumberGeneration)

	all, _ := invoices.ListAll()
	assert.Empty(t, all, "no invoice may be persisted when numbering fails")
}

func TestCreateInvoice_Validation(t *testing.T) {
	uc := newInvoiceUseCase(&fakeCustomerRepo{}, &fakeInvoiceRepo{})

	cases := []struct {
		name   string
		mutate func(*dto.CreateInvoiceRequest)
	}{
		{"missing name", func(r *dto.CreateInvoiceRequest) { r.CustomerName = "" }},
		{"short mobile", func(r *dto.CreateInvoiceRequest) { r.CustomerMobile = "12345" }},
		{"long mobile", func(r *dto.CreateInvoiceRequest) { r.CustomerMobile = "12345678901" }},
		{"non-digit mobile", func(r *dto.CreateInvoiceRequest) { r.CustomerMobile = "12345abcde" }},
		{"no items", func(r *dto.CreateInvoiceRequest) { r.Items = nil }},
		{"item without name", func(r *dto.CreateInvoiceRequest) { r.Items[0].ProductName = "" }},
		{"zero qty", func(r *dto.CreateInvoiceRequest) { r.Items[0].Qty = 0 }},
		{"negative price", func(r *dto.CreateInvoiceRequest) { r.Items[0].Price = d("-1") }},
		{"discount over 100", func(r *dto.CreateInvoiceRequest) { r.Items[0].DiscountPct = d("101") }},
		{"bad status", func(r *dto.CreateInvoiceRequest) { r.PaymentStatus = "Paid" }},
		{"bad mode", func(r *dto.CreateInvoiceRequest) { r.PaymentMode = "Cheque" }},
		{"negative amount recorded", func(r *dto.CreateInvoiceRequest) { r.AmountRecorded = d("-10") }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := sampleRequest()
			tc.mutate(&in)
			_, err := uc.Create(context.Background(), in)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestCreateInvoice_RecordedDefaultsToFullAmount(t *testing.T) {
	uc := newInvoiceUseCase(&fakeCustomerRepo{}, &fakeInvoiceRepo{})

	in := sampleRequest()
	in.PaymentStatus = entity.PaymentStatusRecorded
	in.PaymentMode = entity.PaymentModeCash

	resp, err := uc.Create(context.Background(), in)
	require.NoError(t, err)

	assert.True(t, d("450").Equal(resp.AmountRecorded),
		"Recorded with no amount must record the full total")
	assert.True(t, resp.BalanceAmount.IsZero())
	assert.NotEmpty(t, resp.PaymentDate)
}

func TestGetByID_NotFound(t *testing.T) {
	uc := newInvoiceUseCase(&fakeCustomerRepo{}, &fakeInvoiceRepo{})

	_, err := uc.GetByID(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestList_NewestFirst(t *testing.T) {
	customers := &fakeCustomerRepo{}
	invoices := &fakeInvoiceRepo{}
	uc := newInvoiceUseCase(customers, invoices)

	first, err := uc.Create(context.Background(), sampleRequest())
	require.NoError(t, err)
	second, err := uc.Create(context.Background(), sampleRequest())
	require.NoError(t, err)

	list, err := uc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
}

func TestUpdatePayment_RecordsPayment(t *testing.T) {
	customers := &fakeCustomerRepo{}
	invoices := &fakeInvoiceRepo{}
	uc := newInvoiceUseCase(customers, invoices)

	created, err := uc.Create(context.Background(), sampleRequest())
	require.NoError(t, err)
	require.Equal(t, entity.PaymentStatusPending, created.PaymentStatus)

	resp, err := uc.UpdatePayment(context.Background(), created.ID, dto.UpdatePaymentRequest{
		PaymentStatus: entity.PaymentStatusRecorded,
		PaymentMode:   entity.PaymentModeUPI,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.PaymentStatusRecorded, resp.PaymentStatus)
	assert.Equal(t, entity.PaymentModeUPI, resp.PaymentMode)
	assert.True(t, d("450").Equal(resp.AmountRecorded))
	assert.True(t, resp.BalanceAmount.IsZero())
	assert.NotEmpty(t, resp.PaymentDate)

	// Items, totals and number stay untouched.
	assert.Equal(t, created.Number, resp.Number)
	assert.True(t, created.Total.Equal(resp.Total))
	assert.Equal(t, len(created.Items), len(resp.Items))
}

func TestUpdatePayment_PartialKeepsBalance(t *testing.T) {
	customers := &fakeCustomerRepo{}
	invoices := &fakeInvoiceRepo{}
	uc := newInvoiceUseCase(customers, invoices)

	created, err := uc.Create(context.Background(), sampleRequest())
	require.NoError(t, err)

	resp, err := uc.UpdatePayment(context.Background(), created.ID, dto.UpdatePaymentRequest{
		PaymentStatus:  entity.PaymentStatusPending,
		PaymentMode:    entity.PaymentModeCash,
		AmountRecorded: d("200"),
	})
	require.NoError(t, err)

	assert.True(t, d("200").Equal(resp.AmountRecorded))
	assert.True(t, d("250").Equal(resp.BalanceAmount), "balance = total - recorded")
}

func TestUpdatePayment_Errors(t *testing.T) {
	customers := &fakeCustomerRepo{}
	invoices := &fakeInvoiceRepo{}
	uc := newInvoiceUseCase(customers, invoices)

	_, err := uc.UpdatePayment(context.Background(), "missing", dto.UpdatePaymentRequest{
		PaymentStatus: entity.PaymentStatusRecorded,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	created, err := uc.Create(context.Background(), sampleRequest())
	require.NoError(t, err)

	_, err = uc.UpdatePayment(context.Background(), created.ID, dto.UpdatePaymentRequest{
		PaymentStatus: "Settled",
	})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = uc.UpdatePayment(context.Background(), created.ID, dto.UpdatePaymentRequest{
		PaymentStatus: entity.PaymentStatusRecorded,
		PaymentDate:   "31-12-2025",
	})
	assert.ErrorIs(t, err, domain.ErrValidation, "payment date must be RFC 3339")
}

func TestCreateInvoice_RoundsMoneyInResponse(t *testing.T) {
	uc := newInvoiceUseCase(&fakeCustomerRepo{}, &fakeInvoiceRepo{})

	in := sampleRequest()
	// 3 * 9.99 = 29.97; 12.5% off = 26.22375, rounded to 26.22 at the edge.
	in.Items = []dto.InvoiceItemRequest{
		{ProductName: "CPVC Elbow 90", Size: "20", Qty: 3, Price: d("9.99"), DiscountPct: d("12.5")},
	}

	resp, err := uc.Create(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, "26.22", resp.Total.String())
	assert.Equal(t, "26.22", resp.Items[0].Amount.String())
	assert.Equal(t, "29.97", resp.SubTotal.String())
}
