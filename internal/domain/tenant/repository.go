package tenant

import "context"

// Repository defines the interface for tenant persistence operations
type Repository interface {
	// Create creates a new tenant
	Create(ctx context.Context, tenant *Tenant) error

	// Get retrieves a tenant by ID
	Get(ctx context.Context, id string) (*Tenant, error)

	// Exists reports whether a tenant with the given ID exists
	Exists(ctx context.Context, id string) (bool, error)
}
