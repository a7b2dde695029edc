package inventory

import (
	"github.com/shopspring/decimal"
	ierr "github.com/stewardly/stewardly/internal/errors"
)

// ApplyStockDelta applies a quantity delta to both on-hand and available
// quantities of the level. A negative delta (usage) fails with an
// insufficient-stock error when the available quantity would go negative,
// leaving the level untouched. A positive delta (reversal, receipt) never
// fails. The caller must invoke this inside the same transaction that writes
// the usage or reversal record.
func ApplyStockDelta(level *StockLevel, delta decimal.Decimal) error {
	newAvailable := level.QuantityAvailable.Add(delta)
	if delta.IsNegative() && newAvailable.IsNegative() {
		return ierr.NewErrorf(
			"insufficient stock for item %s at location %s: available %s, requested %s",
			level.ItemID, level.LocationID,
			level.QuantityAvailable.String(), delta.Neg().String(),
		).
			WithHint("Insufficient stock").
			WithReportableDetails(map[string]any{
				"item_id":            level.ItemID,
				"location_id":        level.LocationID,
				"quantity_available": level.QuantityAvailable.String(),
				"requested":          delta.Neg().String(),
			}).
			Mark(ierr.ErrInsufficientStock)
	}

	level.QuantityOnHand = level.QuantityOnHand.Add(delta)
	level.QuantityAvailable = newAvailable
	return nil
}

// NewStockLevel creates an empty level for the given scope, used when a
// reversal or receipt targets a level that does not exist yet
func NewStockLevel(itemID, locationID string, lotNumber, serialNumber *string) *StockLevel {
	return &StockLevel{
		ItemID:            itemID,
		LocationID:        locationID,
		LotNumber:         lotNumber,
		SerialNumber:      serialNumber,
		QuantityOnHand:    decimal.Zero,
		QuantityAvailable: decimal.Zero,
	}
}
