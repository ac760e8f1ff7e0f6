package billing

import (
	"context"
	"fmt"

	"github.com/nationaltraders/plumbing-crm/internal/domain"
	"github.com/nationaltraders/plumbing-crm/internal/domain/repository"
	"github.com/nationaltraders/plumbing-crm/pkg/config"
)

// PDFUseCase produces the printable PDF of a persisted invoice.
type PDFUseCase struct {
	invoiceRepo repository.InvoiceRepository
	generator   InvoicePDFGenerator
	shop        config.ShopConfig
}

// NewPDFUseCase builds the use case.
func NewPDFUseCase(invoiceRepo repository.InvoiceRepository, generator InvoicePDFGenerator, shop config.ShopConfig) *PDFUseCase {
	return &PDFUseCase{invoiceRepo: invoiceRepo, generator: generator, shop: shop}
}

// DownloadInvoicePDF loads the invoice and renders it.
//
// Returns:
//   - (pdfBytes, filename, nil) on success.
//   - domain.ErrNotFound if the invoice does not exist (no document emitted).
//   - domain.ErrRender if layout fails; fatal for this request, not retried.
func (uc *PDFUseCase) DownloadInvoicePDF(ctx context.Context, invoiceID string) (pdfBytes []byte, filename string, err error) {
	inv, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: load invoice: %w", err)
	}
	if inv == nil {
		return nil, "", domain.ErrNotFound
	}

	pdfBytes, err = uc.generator.GenerateInvoicePDF(ctx, inv, uc.shop)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %s", domain.ErrRender, err)
	}

	filename = fmt.Sprintf("invoice_%s.pdf", inv.Number)
	return pdfBytes, filename, nil
}
