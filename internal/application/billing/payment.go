package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/nationaltraders/plumbing-crm/internal/application/dto"
	"github.com/nationaltraders/plumbing-crm/internal/domain"
)

// UpdatePayment changes the payment record of an existing invoice
// (PATCH /api/invoices/:id/payment). Items, totals and the invoice number are
// immutable; only the payment record fields move, typically Pending -> Recorded.
func (uc *InvoiceUseCase) UpdatePayment(ctx context.Context, id string, in dto.UpdatePaymentRequest) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}

	if err := validatePayment(in.PaymentStatus, in.PaymentMode, in.AmountRecorded); err != nil {
		return nil, err
	}

	now := time.Now()
	paymentDate := &now
	if in.PaymentDate != "" {
		t, err := time.Parse(time.RFC3339, in.PaymentDate)
		if err != nil {
			return nil, fmt.Errorf("%w: paymentDate must be RFC 3339", domain.ErrValidation)
		}
		paymentDate = &t
	}

	inv.PaymentStatus = in.PaymentStatus
	inv.PaymentMode = in.PaymentMode
	inv.AmountRecorded = in.AmountRecorded
	inv.PaymentDate = paymentDate
	applyBalance(inv, now)

	if err := uc.invoiceRepo.UpdatePayment(inv); err != nil {
		return nil, err
	}
	return toInvoiceResponse(inv), nil
}
