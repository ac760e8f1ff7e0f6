package pdf_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nationaltraders/plumbing-crm/internal/domain/entity"
	"github.com/nationaltraders/plumbing-crm/internal/infrastructure/pdf"
	"github.com/nationaltraders/plumbing-crm/pkg/config"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func sampleInvoice() *entity.Invoice {
	paymentDate := time.Date(2025, 6, 2, 11, 30, 0, 0, time.UTC)
	return &entity.Invoice{
		ID:             "00000000-0000-0000-0000-000000000010",
		Number:         "AB01234",
		CustomerName:   "Ramesh Pawar",
		CustomerMobile: "9876543210",
		Items: []entity.InvoiceItem{
			{
				ProductName: "CPVC Pipe SDR-11", Size: "25", Qty: 10,
				Price: d("452"), DiscountPct: d("10"),
				BaseAmount: d("4520"), Amount: d("4068"),
			},
			{
				ProductName: "SWR Nahani Trap with an unusually long catalog description", Size: "110", Qty: 2,
				Price: d("145"), DiscountPct: decimal.Zero,
				BaseAmount: d("290"), Amount: d("290"),
			},
		},
		SubTotal:       d("4810"),
		Total:          d("4358"),
		PaymentStatus:  entity.PaymentStatusRecorded,
		PaymentMode:    entity.PaymentModeUPI,
		AmountRecorded: d("4358"),
		BalanceAmount:  decimal.Zero,
		PaymentDate:    &paymentDate,
		CreatedAt:      time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC),
	}
}

func testShop() config.ShopConfig {
	return config.ShopConfig{
		Name:    "National Traders",
		Address: "Behind High School Ground, Pathri - 431506",
		Owner:   "Mujahid Shaikh",
		Phone:   "9595918751",
	}
}

func TestGenerateInvoicePDF_ProducesDocument(t *testing.T) {
	gen := pdf.NewMarotoInvoiceGenerator()

	bytes, err := gen.GenerateInvoicePDF(context.Background(), sampleInvoice(), testShop())
	require.NoError(t, err)
	require.NotEmpty(t, bytes)

	assert.Equal(t, "%PDF", string(bytes[:4]), "output must be a PDF document")
}

func TestGenerateInvoicePDF_Deterministic(t *testing.T) {
	gen := pdf.NewMarotoInvoiceGenerator()
	inv := sampleInvoice()
	shop := testShop()

	first, err := gen.GenerateInvoicePDF(context.Background(), inv, shop)
	require.NoError(t, err)
	second, err := gen.GenerateInvoicePDF(context.Background(), inv, shop)
	require.NoError(t, err)

	assert.Equal(t, len(first), len(second),
		"rendering the same invoice twice must produce the same layout")
}

func TestGenerateInvoicePDF_PendingInvoice(t *testing.T) {
	gen := pdf.NewMarotoInvoiceGenerator()

	inv := sampleInvoice()
	inv.PaymentStatus = entity.PaymentStatusPending
	inv.PaymentMode = ""
	inv.AmountRecorded = decimal.Zero
	inv.BalanceAmount = inv.Total
	inv.PaymentDate = nil

	bytes, err := gen.GenerateInvoicePDF(context.Background(), inv, testShop())
	require.NoError(t, err)
	assert.NotEmpty(t, bytes)
}
