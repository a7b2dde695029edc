package signature

import (
	"context"
	"time"
)

// Repository defines the interface for signature persistence operations
type Repository interface {
	// Create creates a new signature
	Create(ctx context.Context, signature *Signature) error

	// Get retrieves a signature by ID
	Get(ctx context.Context, id string) (*Signature, error)

	// Delete removes a signature row
	Delete(ctx context.Context, id string) error

	// ListExpired returns signatures whose ExpiresAt is before the cutoff,
	// across all tenants, for the scheduled cleanup
	ListExpired(ctx context.Context, cutoff time.Time, limit int) ([]*Signature, error)
}
