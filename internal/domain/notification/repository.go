package notification

import "context"

// Repository defines the interface for notification persistence operations
type Repository interface {
	// Create creates a new notification
	Create(ctx context.Context, notification *Notification) error

	// Get retrieves a notification by ID
	Get(ctx context.Context, id string) (*Notification, error)

	// Update updates an existing notification
	Update(ctx context.Context, notification *Notification) error
}
