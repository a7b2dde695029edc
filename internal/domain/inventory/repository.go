package inventory

import "context"

// StockScope identifies one stock level row
type StockScope struct {
	ItemID       string
	LocationID   string
	LotNumber    *string
	SerialNumber *string
}

// Repository defines the interface for inventory persistence operations
type Repository interface {
	// GetItem retrieves an inventory item by ID
	GetItem(ctx context.Context, id string) (*Item, error)

	// CreateItem creates a new inventory item
	CreateItem(ctx context.Context, item *Item) error

	// GetStockLevel retrieves the stock level for a scope, or a not-found
	// error when no row exists
	GetStockLevel(ctx context.Context, scope StockScope) (*StockLevel, error)

	// CreateStockLevel creates a new stock level row
	CreateStockLevel(ctx context.Context, level *StockLevel) error

	// UpdateStockLevel persists mutated quantities of an existing level
	UpdateStockLevel(ctx context.Context, level *StockLevel) error

	// CreateUsageRecord creates a usage record
	CreateUsageRecord(ctx context.Context, record *UsageRecord) error

	// GetUsageRecord retrieves a usage record by ID
	GetUsageRecord(ctx context.Context, id string) (*UsageRecord, error)

	// DeleteUsageRecord removes a usage record
	DeleteUsageRecord(ctx context.Context, id string) error
}
