package checklist

import "context"

// Repository defines the interface for checklist persistence operations
type Repository interface {
	// CreateWithItems creates a checklist together with its items
	CreateWithItems(ctx context.Context, checklist *Checklist) error

	// Get retrieves a checklist by ID including its items
	Get(ctx context.Context, id string) (*Checklist, error)

	// AddItems appends items to an existing checklist
	AddItems(ctx context.Context, checklistID string, items []*Item) error

	// UpdateItem updates a single checklist item
	UpdateItem(ctx context.Context, item *Item) error

	// Delete soft-deletes a checklist and its items
	Delete(ctx context.Context, id string) error
}
