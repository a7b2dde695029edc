package dto

import (
	"github.com/shopspring/decimal"
	ierr "github.com/stewardly/stewardly/internal/errors"
	"github.com/stewardly/stewardly/internal/validator"
)

type RecordUsageRequest struct {
	ItemID       string          `json:"item_id" validate:"required"`
	LocationID   string          `json:"location_id" validate:"required"`
	JobID        *string         `json:"job_id,omitempty"`
	LotNumber    *string         `json:"lot_number,omitempty"`
	SerialNumber *string         `json:"serial_number,omitempty"`
	Quantity     decimal.Decimal `json:"quantity" validate:"required"`
}

func (r *RecordUsageRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if !r.Quantity.IsPositive() {
		return ierr.NewError("quantity must be positive").
			WithHint("Usage quantity must be greater than zero").
			Mark(ierr.ErrValidation)
	}
	return nil
}

type ReverseUsageRequest struct {
	UsageRecordID string `json:"usage_record_id" validate:"required"`
}

func (r *ReverseUsageRequest) Validate() error {
	return validator.ValidateRequest(r)
}

type AdjustStockRequest struct {
	ItemID       string          `json:"item_id" validate:"required"`
	LocationID   string          `json:"location_id" validate:"required"`
	LotNumber    *string         `json:"lot_number,omitempty"`
	SerialNumber *string         `json:"serial_number,omitempty"`
	Delta        decimal.Decimal `json:"delta" validate:"required"`
	Reason       string          `json:"reason,omitempty"`
}

func (r *AdjustStockRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.Delta.IsZero() {
		return ierr.NewError("delta must be non-zero").
			WithHint("Adjustment delta must be non-zero").
			Mark(ierr.ErrValidation)
	}
	return nil
}
