package testutil

import (
	"context"

	"github.com/stewardly/stewardly/internal/domain/inventory"
	ierr "github.com/stewardly/stewardly/internal/errors"
)

// InMemoryInventoryStore implements inventory.Repository
type InMemoryInventoryStore struct {
	items   *InMemoryStore[*inventory.Item]
	levels  *InMemoryStore[*inventory.StockLevel]
	records *InMemoryStore[*inventory.UsageRecord]
}

// NewInMemoryInventoryStore creates a new in-memory inventory store
func NewInMemoryInventoryStore() *InMemoryInventoryStore {
	return &InMemoryInventoryStore{
		items:   NewInMemoryStore[*inventory.Item](),
		levels:  NewInMemoryStore[*inventory.StockLevel](),
		records: NewInMemoryStore[*inventory.UsageRecord](),
	}
}

// Clear removes all items, levels and records
func (s *InMemoryInventoryStore) Clear() {
	s.items.Clear()
	s.levels.Clear()
	s.records.Clear()
}

func copyStockLevel(level *inventory.StockLevel) *inventory.StockLevel {
	if level == nil {
		return nil
	}
	out := *level
	return &out
}

func (s *InMemoryInventoryStore) GetItem(ctx context.Context, id string) (*inventory.Item, error) {
	item, err := s.items.Get(ctx, id)
	if err != nil || !visibleInTenant(ctx, item.BaseModel) {
		return nil, ierr.NewErrorf("inventory item %s not found", id).
			WithHint("Inventory item not found").
			Mark(ierr.ErrNotFound)
	}
	out := *item
	out.Metadata = copyMetadata(item.Metadata)
	return &out, nil
}

func (s *InMemoryInventoryStore) CreateItem(ctx context.Context, item *inventory.Item) error {
	if item == nil {
		return ierr.NewError("inventory item cannot be nil").Mark(ierr.ErrValidation)
	}
	itemCopy := *item
	itemCopy.Metadata = copyMetadata(item.Metadata)
	return s.items.Create(ctx, item.ID, &itemCopy)
}

func scopeMatches(level *inventory.StockLevel, scope inventory.StockScope) bool {
	return level.ItemID == scope.ItemID &&
		level.LocationID == scope.LocationID &&
		stringPtrEqual(level.LotNumber, scope.LotNumber) &&
		stringPtrEqual(level.SerialNumber, scope.SerialNumber)
}

func stringPtrEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func (s *InMemoryInventoryStore) GetStockLevel(ctx context.Context, scope inventory.StockScope) (*inventory.StockLevel, error) {
	matches, err := s.levels.List(ctx, func(ctx context.Context, level *inventory.StockLevel) bool {
		return visibleInTenant(ctx, level.BaseModel) && scopeMatches(level, scope)
	}, nil)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, ierr.NewErrorf("no stock level for item %s at location %s", scope.ItemID, scope.LocationID).
			WithHint("Stock level not found").
			Mark(ierr.ErrNotFound)
	}
	return copyStockLevel(matches[0]), nil
}

func (s *InMemoryInventoryStore) CreateStockLevel(ctx context.Context, level *inventory.StockLevel) error {
	if level == nil {
		return ierr.NewError("stock level cannot be nil").Mark(ierr.ErrValidation)
	}
	return s.levels.Create(ctx, level.ID, copyStockLevel(level))
}

func (s *InMemoryInventoryStore) UpdateStockLevel(ctx context.Context, level *inventory.StockLevel) error {
	existing, err := s.levels.Get(ctx, level.ID)
	if err != nil || !visibleInTenant(ctx, existing.BaseModel) {
		return ierr.NewErrorf("stock level %s not found", level.ID).
			WithHint("Stock level not found").
			Mark(ierr.ErrNotFound)
	}
	return s.levels.Update(ctx, level.ID, copyStockLevel(level))
}

func (s *InMemoryInventoryStore) CreateUsageRecord(ctx context.Context, record *inventory.UsageRecord) error {
	if record == nil {
		return ierr.NewError("usage record cannot be nil").Mark(ierr.ErrValidation)
	}
	recordCopy := *record
	return s.records.Create(ctx, record.ID, &recordCopy)
}

func (s *InMemoryInventoryStore) GetUsageRecord(ctx context.Context, id string) (*inventory.UsageRecord, error) {
	record, err := s.records.Get(ctx, id)
	if err != nil || !visibleInTenant(ctx, record.BaseModel) {
		return nil, ierr.NewErrorf("usage record %s not found", id).
			WithHint("Usage record not found").
			Mark(ierr.ErrNotFound)
	}
	out := *record
	return &out, nil
}

func (s *InMemoryInventoryStore) DeleteUsageRecord(ctx context.Context, id string) error {
	record, err := s.GetUsageRecord(ctx, id)
	if err != nil {
		return err
	}
	markDeleted(ctx, &record.BaseModel)
	return s.records.Update(ctx, id, record)
}
