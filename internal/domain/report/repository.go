package report

import "context"

// Repository defines the interface for report execution persistence operations
type Repository interface {
	// Create creates a new report execution
	Create(ctx context.Context, execution *Execution) error

	// Get retrieves a report execution by ID
	Get(ctx context.Context, id string) (*Execution, error)

	// Update updates an existing report execution
	Update(ctx context.Context, execution *Execution) error
}
