package repository

import "github.com/nationaltraders/plumbing-crm/internal/domain/entity"

// InvoiceRepository persistence contract for invoice documents.
//
// Create is all-or-nothing: the invoice is persisted with its full item list
// or not at all. A duplicate invoice number surfaces as domain.ErrConflict so
// the caller can renumber and retry. Lookups return (nil, nil) on no match.
// UpdatePayment touches the payment record fields only; items, totals and the
// number are immutable after creation.
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	GetByID(id string) (*entity.Invoice, error)
	GetByNumber(number string) (*entity.Invoice, error)
	ListByCustomer(mobile string) ([]*entity.Invoice, error) // newest first
	ListAll() ([]*entity.Invoice, error)                     // newest first
	UpdatePayment(invoice *entity.Invoice) error
}
