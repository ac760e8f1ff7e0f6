package billing

import (
	"context"

	"github.com/nationaltraders/plumbing-crm/internal/domain/entity"
	"github.com/nationaltraders/plumbing-crm/pkg/config"
)

// InvoicePDFGenerator renders the fixed invoice template for a persisted
// invoice. Shop identity comes from configuration, not business data.
// Implemented by the maroto adapter in internal/infrastructure/pdf.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, invoice *entity.Invoice, shop config.ShopConfig) ([]byte, error)
}
