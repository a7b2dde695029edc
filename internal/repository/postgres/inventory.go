package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/stewardly/stewardly/internal/domain/inventory"
	ierr "github.com/stewardly/stewardly/internal/errors"
	"github.com/stewardly/stewardly/internal/logger"
	"github.com/stewardly/stewardly/internal/postgres"
	"github.com/stewardly/stewardly/internal/types"
)

type inventoryRepository struct {
	client postgres.IClient
	logger *logger.Logger
}

// NewInventoryRepository creates a new inventory repository
func NewInventoryRepository(client postgres.IClient, logger *logger.Logger) inventory.Repository {
	return &inventoryRepository{client: client, logger: logger}
}

const inventoryItemColumns = `
	id, name, sku, unit, metadata,
	tenant_id, status, created_at, updated_at, created_by, updated_by`

const stockLevelColumns = `
	id, item_id, location_id, lot_number, serial_number,
	quantity_on_hand, quantity_available,
	tenant_id, status, created_at, updated_at, created_by, updated_by`

const usageRecordColumns = `
	id, item_id, location_id, job_id, lot_number, serial_number,
	quantity, used_at, used_by,
	tenant_id, status, created_at, updated_at, created_by, updated_by`

func (r *inventoryRepository) GetItem(ctx context.Context, id string) (*inventory.Item, error) {
	query := `
	SELECT ` + inventoryItemColumns + `
	FROM inventory_items
	WHERE id = $1 AND tenant_id = $2 AND status = $3`

	var item inventory.Item
	err := sqlx.GetContext(ctx, r.client.Querier(ctx), &item, query,
		id, types.GetTenantID(ctx), types.StatusPublished)
	if err != nil {
		if ierr.Is(err, sql.ErrNoRows) {
			return nil, ierr.NewErrorf("inventory item %s not found", id).
				WithHint("Inventory item not found").
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get inventory item").
			Mark(ierr.ErrDatabase)
	}

	return &item, nil
}

func (r *inventoryRepository) CreateItem(ctx context.Context, item *inventory.Item) error {
	r.logger.Debugw("creating inventory item", "item_id", item.ID, "sku", item.SKU)

	query := `
	INSERT INTO inventory_items (` + inventoryItemColumns + `
	) VALUES (
		$1, $2, $3, $4, $5,
		$6, $7, $8, $9, $10, $11
	)`

	_, err := r.client.Querier(ctx).ExecContext(ctx, query,
		item.ID, item.Name, item.SKU, item.Unit, item.Metadata,
		item.TenantID, item.Status, item.CreatedAt, item.UpdatedAt, item.CreatedBy, item.UpdatedBy,
	)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create inventory item").
			WithReportableDetails(map[string]any{
				"item_id": item.ID,
				"sku":     item.SKU,
			}).
			Mark(ierr.ErrDatabase)
	}

	return nil
}

// GetStockLevel matches the lot and serial scope exactly; a NULL lot or
// serial in the scope only matches NULL rows
func (r *inventoryRepository) GetStockLevel(ctx context.Context, scope inventory.StockScope) (*inventory.StockLevel, error) {
	query := `
	SELECT ` + stockLevelColumns + `
	FROM stock_levels
	WHERE item_id = $1 AND location_id = $2
		AND lot_number IS NOT DISTINCT FROM $3
		AND serial_number IS NOT DISTINCT FROM $4
		AND tenant_id = $5 AND status = $6`

	var level inventory.StockLevel
	err := sqlx.GetContext(ctx, r.client.Querier(ctx), &level, query,
		scope.ItemID, scope.LocationID, scope.LotNumber, scope.SerialNumber,
		types.GetTenantID(ctx), types.StatusPublished)
	if err != nil {
		if ierr.Is(err, sql.ErrNoRows) {
			return nil, ierr.NewErrorf("stock level for item %s at location %s not found", scope.ItemID, scope.LocationID).
				WithHint("Stock level not found").
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get stock level").
			Mark(ierr.ErrDatabase)
	}

	return &level, nil
}

func (r *inventoryRepository) CreateStockLevel(ctx context.Context, level *inventory.StockLevel) error {
	query := `
	INSERT INTO stock_levels (` + stockLevelColumns + `
	) VALUES (
		$1, $2, $3, $4, $5,
		$6, $7,
		$8, $9, $10, $11, $12, $13
	)`

	_, err := r.client.Querier(ctx).ExecContext(ctx, query,
		level.ID, level.ItemID, level.LocationID, level.LotNumber, level.SerialNumber,
		level.QuantityOnHand, level.QuantityAvailable,
		level.TenantID, level.Status, level.CreatedAt, level.UpdatedAt, level.CreatedBy, level.UpdatedBy,
	)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create stock level").
			WithReportableDetails(map[string]any{
				"item_id":     level.ItemID,
				"location_id": level.LocationID,
			}).
			Mark(ierr.ErrDatabase)
	}

	return nil
}

func (r *inventoryRepository) UpdateStockLevel(ctx context.Context, level *inventory.StockLevel) error {
	query := `
	UPDATE stock_levels SET
		quantity_on_hand = $1, quantity_available = $2,
		updated_at = NOW(), updated_by = $3
	WHERE id = $4 AND tenant_id = $5 AND status = $6`

	result, err := r.client.Querier(ctx).ExecContext(ctx, query,
		level.QuantityOnHand, level.QuantityAvailable, types.GetUserID(ctx),
		level.ID, types.GetTenantID(ctx), types.StatusPublished,
	)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update stock level").
			Mark(ierr.ErrDatabase)
	}

	return requireRowsAffected(result, "stock level", level.ID)
}

func (r *inventoryRepository) CreateUsageRecord(ctx context.Context, record *inventory.UsageRecord) error {
	query := `
	INSERT INTO usage_records (` + usageRecordColumns + `
	) VALUES (
		$1, $2, $3, $4, $5, $6,
		$7, $8, $9,
		$10, $11, $12, $13, $14, $15
	)`

	_, err := r.client.Querier(ctx).ExecContext(ctx, query,
		record.ID, record.ItemID, record.LocationID, record.JobID, record.LotNumber, record.SerialNumber,
		record.Quantity, record.UsedAt, record.UsedBy,
		record.TenantID, record.Status, record.CreatedAt, record.UpdatedAt, record.CreatedBy, record.UpdatedBy,
	)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create usage record").
			WithReportableDetails(map[string]any{
				"usage_record_id": record.ID,
				"item_id":         record.ItemID,
			}).
			Mark(ierr.ErrDatabase)
	}

	return nil
}

func (r *inventoryRepository) GetUsageRecord(ctx context.Context, id string) (*inventory.UsageRecord, error) {
	query := `
	SELECT ` + usageRecordColumns + `
	FROM usage_records
	WHERE id = $1 AND tenant_id = $2 AND status = $3`

	var record inventory.UsageRecord
	err := sqlx.GetContext(ctx, r.client.Querier(ctx), &record, query,
		id, types.GetTenantID(ctx), types.StatusPublished)
	if err != nil {
		if ierr.Is(err, sql.ErrNoRows) {
			return nil, ierr.NewErrorf("usage record %s not found", id).
				WithHint("Usage record not found").
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get usage record").
			Mark(ierr.ErrDatabase)
	}

	return &record, nil
}

func (r *inventoryRepository) DeleteUsageRecord(ctx context.Context, id string) error {
	query := `
	UPDATE usage_records SET status = $1, updated_at = NOW(), updated_by = $2
	WHERE id = $3 AND tenant_id = $4 AND status = $5`

	result, err := r.client.Querier(ctx).ExecContext(ctx, query,
		types.StatusDeleted, types.GetUserID(ctx),
		id, types.GetTenantID(ctx), types.StatusPublished,
	)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to delete usage record").
			Mark(ierr.ErrDatabase)
	}

	return requireRowsAffected(result, "usage record", id)
}
