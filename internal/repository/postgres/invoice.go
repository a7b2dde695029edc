package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/stewardly/stewardly/internal/domain/invoice"
	ierr "github.com/stewardly/stewardly/internal/errors"
	"github.com/stewardly/stewardly/internal/logger"
	"github.com/stewardly/stewardly/internal/postgres"
	"github.com/stewardly/stewardly/internal/types"
)

type invoiceRepository struct {
	client postgres.IClient
	logger *logger.Logger
}

// NewInvoiceRepository creates a new invoice repository
func NewInvoiceRepository(client postgres.IClient, logger *logger.Logger) invoice.Repository {
	return &invoiceRepository{client: client, logger: logger}
}

const invoiceColumns = `
	id, invoice_number, customer_id, job_id, invoice_status, payment_status,
	currency, subtotal, tax_amount, discount, total_amount, balance_due,
	due_date, memo, metadata,
	tenant_id, status, created_at, updated_at, created_by, updated_by`

const lineItemColumns = `
	id, invoice_id, description, quantity, unit_price, is_taxable, tax_rate, amount,
	tenant_id, status, created_at, updated_at, created_by, updated_by`

func (r *invoiceRepository) CreateWithLineItems(ctx context.Context, inv *invoice.Invoice) error {
	r.logger.Debugw("creating invoice",
		"invoice_id", inv.ID,
		"invoice_number", inv.InvoiceNumber,
		"line_items", len(inv.LineItems),
	)

	query := `
	INSERT INTO invoices (` + invoiceColumns + `
	) VALUES (
		$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
		$16, $17, $18, $19, $20, $21
	)`

	_, err := r.client.Querier(ctx).ExecContext(ctx, query,
		inv.ID, inv.InvoiceNumber, inv.CustomerID, inv.JobID, inv.InvoiceStatus, inv.PaymentStatus,
		inv.Currency, inv.Subtotal, inv.TaxAmount, inv.Discount, inv.TotalAmount, inv.BalanceDue,
		inv.DueDate, inv.Memo, inv.Metadata,
		inv.TenantID, inv.Status, inv.CreatedAt, inv.UpdatedAt, inv.CreatedBy, inv.UpdatedBy,
	)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create invoice").
			WithReportableDetails(map[string]any{
				"invoice_id":     inv.ID,
				"invoice_number": inv.InvoiceNumber,
			}).
			Mark(ierr.ErrDatabase)
	}

	return r.insertLineItems(ctx, inv.LineItems)
}

func (r *invoiceRepository) insertLineItems(ctx context.Context, items []*invoice.LineItem) error {
	query := `
	INSERT INTO invoice_line_items (` + lineItemColumns + `
	) VALUES (
		$1, $2, $3, $4, $5, $6, $7, $8,
		$9, $10, $11, $12, $13, $14
	)`

	for _, item := range items {
		_, err := r.client.Querier(ctx).ExecContext(ctx, query,
			item.ID, item.InvoiceID, item.Description, item.Quantity,
			item.UnitPrice, item.IsTaxable, item.TaxRate, item.Amount,
			item.TenantID, item.Status, item.CreatedAt, item.UpdatedAt,
			item.CreatedBy, item.UpdatedBy,
		)
		if err != nil {
			return ierr.WithError(err).
				WithHint("Failed to create invoice line item").
				WithReportableDetails(map[string]any{
					"invoice_id":   item.InvoiceID,
					"line_item_id": item.ID,
				}).
				Mark(ierr.ErrDatabase)
		}
	}

	return nil
}

func (r *invoiceRepository) Get(ctx context.Context, id string) (*invoice.Invoice, error) {
	query := `
	SELECT ` + invoiceColumns + `
	FROM invoices
	WHERE id = $1 AND tenant_id = $2 AND status = $3`

	var inv invoice.Invoice
	err := sqlx.GetContext(ctx, r.client.Querier(ctx), &inv, query,
		id, types.GetTenantID(ctx), types.StatusPublished)
	if err != nil {
		if ierr.Is(err, sql.ErrNoRows) {
			return nil, ierr.NewErrorf("invoice %s not found", id).
				WithHint("Invoice not found").
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get invoice").
			Mark(ierr.ErrDatabase)
	}

	itemsQuery := `
	SELECT ` + lineItemColumns + `
	FROM invoice_line_items
	WHERE invoice_id = $1 AND tenant_id = $2 AND status = $3
	ORDER BY created_at, id`

	err = sqlx.SelectContext(ctx, r.client.Querier(ctx), &inv.LineItems, itemsQuery,
		id, types.GetTenantID(ctx), types.StatusPublished)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to get invoice line items").
			Mark(ierr.ErrDatabase)
	}

	return &inv, nil
}

// Update persists the invoice header and replaces its line item set. The
// previous items are soft-deleted so the replacement and the totals snapshot
// commit atomically with the caller's transaction.
func (r *invoiceRepository) Update(ctx context.Context, inv *invoice.Invoice) error {
	query := `
	UPDATE invoices SET
		invoice_status = $1, payment_status = $2, subtotal = $3, tax_amount = $4,
		discount = $5, total_amount = $6, balance_due = $7, due_date = $8,
		memo = $9, metadata = $10, updated_at = $11, updated_by = $12
	WHERE id = $13 AND tenant_id = $14 AND status = $15`

	result, err := r.client.Querier(ctx).ExecContext(ctx, query,
		inv.InvoiceStatus, inv.PaymentStatus, inv.Subtotal, inv.TaxAmount,
		inv.Discount, inv.TotalAmount, inv.BalanceDue, inv.DueDate,
		inv.Memo, inv.Metadata, inv.UpdatedAt, inv.UpdatedBy,
		inv.ID, types.GetTenantID(ctx), types.StatusPublished,
	)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update invoice").
			Mark(ierr.ErrDatabase)
	}
	if err := requireRowsAffected(result, "invoice", inv.ID); err != nil {
		return err
	}

	deleteQuery := `
	UPDATE invoice_line_items SET status = $1, updated_at = NOW(), updated_by = $2
	WHERE invoice_id = $3 AND tenant_id = $4 AND status = $5`

	_, err = r.client.Querier(ctx).ExecContext(ctx, deleteQuery,
		types.StatusDeleted, types.GetUserID(ctx),
		inv.ID, types.GetTenantID(ctx), types.StatusPublished,
	)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to replace invoice line items").
			Mark(ierr.ErrDatabase)
	}

	return r.insertLineItems(ctx, inv.LineItems)
}

func (r *invoiceRepository) Delete(ctx context.Context, id string) error {
	query := `
	UPDATE invoices SET status = $1, updated_at = NOW(), updated_by = $2
	WHERE id = $3 AND tenant_id = $4 AND status = $5`

	result, err := r.client.Querier(ctx).ExecContext(ctx, query,
		types.StatusDeleted, types.GetUserID(ctx),
		id, types.GetTenantID(ctx), types.StatusPublished,
	)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to delete invoice").
			Mark(ierr.ErrDatabase)
	}

	return requireRowsAffected(result, "invoice", id)
}

// CountNumbersWithPrefix counts all rows regardless of status so deleted
// invoices still occupy their number
func (r *invoiceRepository) CountNumbersWithPrefix(ctx context.Context, prefix string) (int64, error) {
	query := `
	SELECT COUNT(*) FROM invoices
	WHERE tenant_id = $1 AND invoice_number LIKE $2 || '%'`

	var count int64
	err := sqlx.GetContext(ctx, r.client.Querier(ctx), &count, query,
		types.GetTenantID(ctx), prefix)
	if err != nil {
		return 0, ierr.WithError(err).
			WithHint("Failed to count invoice numbers").
			Mark(ierr.ErrDatabase)
	}

	return count, nil
}

func (r *invoiceRepository) MaxNumberWithPrefix(ctx context.Context, prefix string) (string, error) {
	query := `
	SELECT COALESCE(MAX(invoice_number), '') FROM invoices
	WHERE tenant_id = $1 AND invoice_number LIKE $2 || '%'`

	var max string
	err := sqlx.GetContext(ctx, r.client.Querier(ctx), &max, query,
		types.GetTenantID(ctx), prefix)
	if err != nil {
		return "", ierr.WithError(err).
			WithHint("Failed to get max invoice number").
			Mark(ierr.ErrDatabase)
	}

	return max, nil
}
