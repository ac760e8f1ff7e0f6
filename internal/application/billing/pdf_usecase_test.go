package billing_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nationaltraders/plumbing-crm/internal/application/billing"
	"github.com/nationaltraders/plumbing-crm/internal/domain"
	"github.com/nationaltraders/plumbing-crm/internal/domain/entity"
	"github.com/nationaltraders/plumbing-crm/pkg/config"
)

// fakePDFGenerator records whether it was invoked.
type fakePDFGenerator struct {
	calls int
	fail  error
}

func (g *fakePDFGenerator) GenerateInvoicePDF(_ context.Context, _ *entity.Invoice, _ config.ShopConfig) ([]byte, error) {
	g.calls++
	if g.fail != nil {
		return nil, g.fail
	}
	return []byte("%PDF-fake"), nil
}

func TestDownloadInvoicePDF_NamesFileAfterNumber(t *testing.T) {
	customers := &fakeCustomerRepo{}
	invoices := &fakeInvoiceRepo{}
	invoiceUC := newInvoiceUseCase(customers, invoices)

	created, err := invoiceUC.Create(context.Background(), sampleRequest())
	require.NoError(t, err)

	gen := &fakePDFGenerator{}
	uc := billing.NewPDFUseCase(invoices, gen, config.ShopConfig{Name: "National Traders"})

	pdfBytes, filename, err := uc.DownloadInvoicePDF(context.Background(), created.ID)
	require.NoError(t, err)

	assert.NotEmpty(t, pdfBytes)
	assert.Equal(t, "invoice_"+created.Number+".pdf", filename)
	assert.Equal(t, 1, gen.calls)
}

func TestDownloadInvoicePDF_MissingInvoice(t *testing.T) {
	gen := &fakePDFGenerator{}
	uc := billing.NewPDFUseCase(&fakeInvoiceRepo{}, gen, config.ShopConfig{})

	_, _, err := uc.DownloadInvoicePDF(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Zero(t, gen.calls, "missing invoice must not reach the generator")
}

func TestDownloadInvoicePDF_RenderFailure(t *testing.T) {
	customers := &fakeCustomerRepo{}
	invoices := &fakeInvoiceRepo{}
	invoiceUC := newInvoiceUseCase(customers, invoices)

	created, err := invoiceUC.Create(context.Background(), sampleRequest())
	require.NoError(t, err)

	gen := &fakePDFGenerator{fail: assert.AnError}
	uc := billing.NewPDFUseCase(invoices, gen, config.ShopConfig{})

	_, _, err = uc.DownloadInvoicePDF(context.Background(), created.ID)
	assert.ErrorIs(t, err, domain.ErrRender)
}
