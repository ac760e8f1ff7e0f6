package billing_test

import (
	"github.com/shopspring/decimal"

	"github.com/nationaltraders/plumbing-crm/internal/domain"
	"github.com/nationaltraders/plumbing-crm/internal/domain/entity"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

// fakeCustomerRepo in-memory CustomerRepository.
type fakeCustomerRepo struct {
	customers []*entity.Customer
}

func (r *fakeCustomerRepo) Create(c *entity.Customer) error {
	if existing, _ := r.GetByMobile(c.Mobile); existing != nil {
		return domain.ErrConflict
	}
	r.customers = append(r.customers, c)
	return nil
}

func (r *fakeCustomerRepo) GetByMobile(mobile string) (*entity.Customer, error) {
	for _, c := range r.customers {
		if c.Mobile == mobile {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCustomerRepo) List() ([]*entity.Customer, error) {
	out := make([]*entity.Customer, len(r.customers))
	for i, c := range r.customers {
		out[len(r.customers)-1-i] = c
	}
	return out, nil
}

func (r *fakeCustomerRepo) Count() (int, error) { return len(r.customers), nil }

// fakeInvoiceRepo in-memory InvoiceRepository. conflictsLeft forces Create to
// fail with ErrConflict that many times first, simulating a concurrent insert
// taking the number between check and insert.
type fakeInvoiceRepo struct {
	invoices      []*entity.Invoice
	conflictsLeft int
}

func (r *fakeInvoiceRepo) Create(inv *entity.Invoice) error {
	if r.conflictsLeft > 0 {
		r.conflictsLeft--
		return domain.ErrConflict
	}
	if existing, _ := r.GetByNumber(inv.Number); existing != nil {
		return domain.ErrConflict
	}
	clone := *inv
	r.invoices = append(r.invoices, &clone)
	return nil
}

func (r *fakeInvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	for _, inv := range r.invoices {
		if inv.ID == id {
			clone := *inv
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeInvoiceRepo) GetByNumber(number string) (*entity.Invoice, error) {
	for _, inv := range r.invoices {
		if inv.Number == number {
			clone := *inv
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeInvoiceRepo) ListByCustomer(mobile string) ([]*entity.Invoice, error) {
	var out []*entity.Invoice
	for i := len(r.invoices) - 1; i >= 0; i-- {
		if r.invoices[i].CustomerMobile == mobile {
			out = append(out, r.invoices[i])
		}
	}
	return out, nil
}

func (r *fakeInvoiceRepo) ListAll() ([]*entity.Invoice, error) {
	out := make([]*entity.Invoice, len(r.invoices))
	for i, inv := range r.invoices {
		out[len(r.invoices)-1-i] = inv
	}
	return out, nil
}

func (r *fakeInvoiceRepo) UpdatePayment(inv *entity.Invoice) error {
	for i, existing := range r.invoices {
		if existing.ID == inv.ID {
			clone := *inv
			r.invoices[i] = &clone
			return nil
		}
	}
	return domain.ErrNotFound
}
