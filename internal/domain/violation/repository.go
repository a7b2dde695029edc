package violation

import "context"

// Repository defines the interface for violation persistence operations
type Repository interface {
	// Create creates a new violation
	Create(ctx context.Context, violation *Violation) error

	// Get retrieves a violation by ID
	Get(ctx context.Context, id string) (*Violation, error)

	// Update updates an existing violation
	Update(ctx context.Context, violation *Violation) error

	// Delete soft-deletes a violation
	Delete(ctx context.Context, id string) error

	// CountNumbersWithPrefix counts violations in the current tenant whose
	// violation number starts with prefix
	CountNumbersWithPrefix(ctx context.Context, prefix string) (int64, error)

	// MaxNumberWithPrefix returns the greatest violation number in the
	// current tenant matching prefix, or "" when none exists
	MaxNumberWithPrefix(ctx context.Context, prefix string) (string, error)
}
