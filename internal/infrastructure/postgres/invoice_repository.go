package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/nationaltraders/plumbing-crm/internal/domain"
	"github.com/nationaltraders/plumbing-crm/internal/domain/entity"
	"github.com/nationaltraders/plumbing-crm/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implements InvoiceRepository (usable with pool or tx).
// Line items are stored as a jsonb document on the invoice row: they are
// written once at creation and always read back whole.
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository builds the adapter. Pass a pool or tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Create persists the invoice. A duplicate invoice number is
// domain.ErrConflict so the use case can renumber and retry.
func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	items, err := json.Marshal(invoice.Items)
	if err != nil {
		return fmt.Errorf("marshal invoice items: %w", err)
	}
	query := `
		INSERT INTO invoices (id, number, customer_name, customer_mobile, items,
		                      sub_total, total, payment_status, payment_mode,
		                      amount_recorded, balance_amount, payment_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err = r.q.Exec(context.Background(), query,
		invoice.ID, invoice.Number, invoice.CustomerName, invoice.CustomerMobile, items,
		invoice.SubTotal, invoice.Total, invoice.PaymentStatus, invoice.PaymentMode,
		invoice.AmountRecorded, invoice.BalanceAmount, invoice.PaymentDate, invoice.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

const invoiceColumns = `id, number, customer_name, customer_mobile, items,
		sub_total, total, payment_status, payment_mode,
		amount_recorded, balance_amount, payment_date, created_at`

// GetByID returns the invoice with that ID, or (nil, nil).
func (r *InvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1`
	inv, err := scanInvoice(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return inv, nil
}

// GetByNumber returns the invoice with that number, or (nil, nil).
func (r *InvoiceRepo) GetByNumber(number string) (*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE number = $1`
	inv, err := scanInvoice(r.q.QueryRow(context.Background(), query, number))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice by number: %w", err)
	}
	return inv, nil
}

// ListByCustomer returns a customer's invoices, newest first.
func (r *InvoiceRepo) ListByCustomer(mobile string) ([]*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE customer_mobile = $1 ORDER BY created_at DESC`
	return r.list(query, mobile)
}

// ListAll returns every invoice, newest first.
func (r *InvoiceRepo) ListAll() ([]*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices ORDER BY created_at DESC`
	return r.list(query)
}

// UpdatePayment updates only the payment fields; items, totals and the number
// never change after creation.
func (r *InvoiceRepo) UpdatePayment(invoice *entity.Invoice) error {
	query := `
		UPDATE invoices
		SET payment_status  = $2,
		    payment_mode    = $3,
		    amount_recorded = $4,
		    balance_amount  = $5,
		    payment_date    = $6
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		invoice.ID, invoice.PaymentStatus, invoice.PaymentMode,
		invoice.AmountRecorded, invoice.BalanceAmount, invoice.PaymentDate,
	)
	if err != nil {
		return fmt.Errorf("update invoice payment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *InvoiceRepo) list(query string, args ...any) ([]*entity.Invoice, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	var list []*entity.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, inv)
	}
	return list, rows.Err()
}

// pgxScanner abstracts pgx.Row and pgx.Rows so scanInvoice serves both.
type pgxScanner interface {
	Scan(dest ...any) error
}

func scanInvoice(row pgxScanner) (*entity.Invoice, error) {
	var inv entity.Invoice
	var items []byte
	var paymentDate *time.Time
	err := row.Scan(
		&inv.ID, &inv.Number, &inv.CustomerName, &inv.CustomerMobile, &items,
		&inv.SubTotal, &inv.Total, &inv.PaymentStatus, &inv.PaymentMode,
		&inv.AmountRecorded, &inv.BalanceAmount, &paymentDate, &inv.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(items, &inv.Items); err != nil {
		return nil, fmt.Errorf("unmarshal invoice items: %w", err)
	}
	inv.PaymentDate = paymentDate
	return &inv, nil
}
