package invoice

import "context"

// Repository defines the interface for invoice persistence operations
type Repository interface {
	// CreateWithLineItems creates an invoice together with its line items
	CreateWithLineItems(ctx context.Context, invoice *Invoice) error

	// Get retrieves an invoice by ID including its line items
	Get(ctx context.Context, id string) (*Invoice, error)

	// Update updates an existing invoice and replaces its line items
	Update(ctx context.Context, invoice *Invoice) error

	// Delete soft-deletes an invoice
	Delete(ctx context.Context, id string) error

	// CountNumbersWithPrefix counts invoices in the current tenant whose
	// invoice number starts with prefix
	CountNumbersWithPrefix(ctx context.Context, prefix string) (int64, error)

	// MaxNumberWithPrefix returns the greatest invoice number in the current
	// tenant matching prefix, or "" when none exists
	MaxNumberWithPrefix(ctx context.Context, prefix string) (string, error)
}
