package job

import "context"

// Repository defines the interface for job persistence operations
type Repository interface {
	// Create creates a new job
	Create(ctx context.Context, job *Job) error

	// Get retrieves a job by ID
	Get(ctx context.Context, id string) (*Job, error)

	// Update updates an existing job
	Update(ctx context.Context, job *Job) error

	// Delete soft-deletes a job
	Delete(ctx context.Context, id string) error

	// CountNumbersWithPrefix counts jobs in the current tenant whose job
	// number starts with prefix
	CountNumbersWithPrefix(ctx context.Context, prefix string) (int64, error)

	// MaxNumberWithPrefix returns the greatest job number in the current
	// tenant matching prefix, or "" when none exists
	MaxNumberWithPrefix(ctx context.Context, prefix string) (string, error)
}
