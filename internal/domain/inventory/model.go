package inventory

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/stewardly/stewardly/internal/types"
)

// Item is a stocked inventory item
type Item struct {
	ID       string         `db:"id" json:"id"`
	Name     string         `db:"name" json:"name"`
	SKU      string         `db:"sku" json:"sku"`
	Unit     string         `db:"unit" json:"unit"`
	Metadata types.Metadata `db:"metadata" json:"metadata,omitempty"`
	types.BaseModel
}

// StockLevel tracks on-hand and available quantities of an item at a
// location, optionally narrowed to a lot or serial number.
// Invariant: QuantityAvailable <= QuantityOnHand at all times.
type StockLevel struct {
	ID                string          `db:"id" json:"id"`
	ItemID            string          `db:"item_id" json:"item_id"`
	LocationID        string          `db:"location_id" json:"location_id"`
	LotNumber         *string         `db:"lot_number" json:"lot_number,omitempty"`
	SerialNumber      *string         `db:"serial_number" json:"serial_number,omitempty"`
	QuantityOnHand    decimal.Decimal `db:"quantity_on_hand" json:"quantity_on_hand"`
	QuantityAvailable decimal.Decimal `db:"quantity_available" json:"quantity_available"`
	types.BaseModel
}

// UsageRecord records consumption of stock, typically against a job.
// The stock delta and the usage record commit or roll back together.
type UsageRecord struct {
	ID           string          `db:"id" json:"id"`
	ItemID       string          `db:"item_id" json:"item_id"`
	LocationID   string          `db:"location_id" json:"location_id"`
	JobID        *string         `db:"job_id" json:"job_id,omitempty"`
	LotNumber    *string         `db:"lot_number" json:"lot_number,omitempty"`
	SerialNumber *string         `db:"serial_number" json:"serial_number,omitempty"`
	Quantity     decimal.Decimal `db:"quantity" json:"quantity"`
	UsedAt       time.Time       `db:"used_at" json:"used_at"`
	UsedBy       string          `db:"used_by" json:"used_by"`
	types.BaseModel
}
