package service

import (
	"context"
	"time"

	"github.com/stewardly/stewardly/internal/api/dto"
	"github.com/stewardly/stewardly/internal/domain/inventory"
	ierr "github.com/stewardly/stewardly/internal/errors"
	"github.com/stewardly/stewardly/internal/types"
)

// InventoryService handles inventory workflow invocations
type InventoryService interface {
	Execute(ctx context.Context, input dto.WorkflowInput) dto.WorkflowResult
}

type inventoryService struct {
	ServiceParams
	handlers map[types.WorkflowAction]func(ctx context.Context, input dto.WorkflowInput) (dto.WorkflowResult, error)
}

func NewInventoryService(params ServiceParams) InventoryService {
	s := &inventoryService{ServiceParams: params}
	s.handlers = map[types.WorkflowAction]func(ctx context.Context, input dto.WorkflowInput) (dto.WorkflowResult, error){
		types.ActionInventoryRecordUsage:  s.recordUsage,
		types.ActionInventoryReverseUsage: s.reverseUsage,
		types.ActionInventoryAdjust:       s.adjust,
	}
	return s
}

func (s *inventoryService) Execute(ctx context.Context, input dto.WorkflowInput) dto.WorkflowResult {
	if err := input.Validate(); err != nil {
		return dto.FailureResult(err.Error())
	}

	handler, ok := s.handlers[input.Action]
	if !ok {
		return dto.FailureResult(unknownActionError(input.Action))
	}

	result, err := handler(actorContext(ctx, input), input)
	if err != nil {
		return dto.FailureResult(resolveError(err, s.Sentry))
	}
	return result
}

// recordUsage consumes stock against a job. Availability is checked inside
// the transaction so two concurrent usages cannot both pass a stale check.
func (s *inventoryService) recordUsage(ctx context.Context, input dto.WorkflowInput) (dto.WorkflowResult, error) {
	req, err := decodeRequest[dto.RecordUsageRequest](input.Data)
	if err != nil {
		return dto.WorkflowResult{}, err
	}

	record := &inventory.UsageRecord{
		ID:           types.GenerateUUIDWithPrefix(types.UUID_PREFIX_USAGE_RECORD),
		ItemID:       req.ItemID,
		LocationID:   req.LocationID,
		JobID:        req.JobID,
		LotNumber:    req.LotNumber,
		SerialNumber: req.SerialNumber,
		Quantity:     req.Quantity,
		UsedAt:       time.Now().UTC(),
		UsedBy:       input.ActorID,
	}

	err = s.DB.WithTenantTx(ctx, input.TenantID, "inventory.record_usage", func(ctx context.Context) error {
		if _, err := s.InventoryRepo.GetItem(ctx, req.ItemID); err != nil {
			return err
		}

		level, err := s.InventoryRepo.GetStockLevel(ctx, inventory.StockScope{
			ItemID:       req.ItemID,
			LocationID:   req.LocationID,
			LotNumber:    req.LotNumber,
			SerialNumber: req.SerialNumber,
		})
		if err != nil {
			if ierr.IsNotFound(err) {
				return ierr.NewErrorf("no stock of item %s at location %s", req.ItemID, req.LocationID).
					WithHint("Insufficient stock").
					Mark(ierr.ErrInsufficientStock)
			}
			return err
		}

		if err := inventory.ApplyStockDelta(level, req.Quantity.Neg()); err != nil {
			return err
		}

		record.BaseModel = types.GetDefaultBaseModel(ctx)
		if err := s.InventoryRepo.CreateUsageRecord(ctx, record); err != nil {
			return err
		}
		return s.InventoryRepo.UpdateStockLevel(ctx, level)
	})
	if err != nil {
		return dto.WorkflowResult{}, err
	}

	s.Logger.Infow("recorded inventory usage",
		"tenant_id", input.TenantID,
		"usage_record_id", record.ID,
		"item_id", req.ItemID,
		"quantity", req.Quantity.String(),
	)

	return dto.SuccessResult(record.ID), nil
}

// reverseUsage restores the quantities a usage record consumed and removes
// the record, as a single transaction.
func (s *inventoryService) reverseUsage(ctx context.Context, input dto.WorkflowInput) (dto.WorkflowResult, error) {
	req, err := decodeRequest[dto.ReverseUsageRequest](input.Data)
	if err != nil {
		return dto.WorkflowResult{}, err
	}

	err = s.DB.WithTenantTx(ctx, input.TenantID, "inventory.reverse_usage", func(ctx context.Context) error {
		record, err := s.InventoryRepo.GetUsageRecord(ctx, req.UsageRecordID)
		if err != nil {
			return err
		}

		scope := inventory.StockScope{
			ItemID:       record.ItemID,
			LocationID:   record.LocationID,
			LotNumber:    record.LotNumber,
			SerialNumber: record.SerialNumber,
		}
		level, err := s.InventoryRepo.GetStockLevel(ctx, scope)
		if err != nil {
			if !ierr.IsNotFound(err) {
				return err
			}
			// The level row was removed since the usage; restore into a
			// fresh one
			level = inventory.NewStockLevel(record.ItemID, record.LocationID, record.LotNumber, record.SerialNumber)
			level.ID = types.GenerateUUIDWithPrefix(types.UUID_PREFIX_STOCK_LEVEL)
			level.BaseModel = types.GetDefaultBaseModel(ctx)
			if err := inventory.ApplyStockDelta(level, record.Quantity); err != nil {
				return err
			}
			if err := s.InventoryRepo.CreateStockLevel(ctx, level); err != nil {
				return err
			}
			return s.InventoryRepo.DeleteUsageRecord(ctx, record.ID)
		}

		if err := inventory.ApplyStockDelta(level, record.Quantity); err != nil {
			return err
		}
		if err := s.InventoryRepo.UpdateStockLevel(ctx, level); err != nil {
			return err
		}
		return s.InventoryRepo.DeleteUsageRecord(ctx, record.ID)
	})
	if err != nil {
		return dto.WorkflowResult{}, err
	}

	return dto.SuccessResult(req.UsageRecordID), nil
}

// adjust applies a manual stock correction, positive or negative
func (s *inventoryService) adjust(ctx context.Context, input dto.WorkflowInput) (dto.WorkflowResult, error) {
	req, err := decodeRequest[dto.AdjustStockRequest](input.Data)
	if err != nil {
		return dto.WorkflowResult{}, err
	}

	var levelID string
	err = s.DB.WithTenantTx(ctx, input.TenantID, "inventory.adjust", func(ctx context.Context) error {
		if _, err := s.InventoryRepo.GetItem(ctx, req.ItemID); err != nil {
			return err
		}

		scope := inventory.StockScope{
			ItemID:       req.ItemID,
			LocationID:   req.LocationID,
			LotNumber:    req.LotNumber,
			SerialNumber: req.SerialNumber,
		}
		level, err := s.InventoryRepo.GetStockLevel(ctx, scope)
		if err != nil {
			if !ierr.IsNotFound(err) {
				return err
			}
			level = inventory.NewStockLevel(req.ItemID, req.LocationID, req.LotNumber, req.SerialNumber)
			level.ID = types.GenerateUUIDWithPrefix(types.UUID_PREFIX_STOCK_LEVEL)
			level.BaseModel = types.GetDefaultBaseModel(ctx)
			if err := inventory.ApplyStockDelta(level, req.Delta); err != nil {
				return err
			}
			levelID = level.ID
			return s.InventoryRepo.CreateStockLevel(ctx, level)
		}

		if err := inventory.ApplyStockDelta(level, req.Delta); err != nil {
			return err
		}
		levelID = level.ID
		return s.InventoryRepo.UpdateStockLevel(ctx, level)
	})
	if err != nil {
		return dto.WorkflowResult{}, err
	}

	s.Logger.Infow("adjusted stock level",
		"tenant_id", input.TenantID,
		"stock_level_id", levelID,
		"item_id", req.ItemID,
		"delta", req.Delta.String(),
		"reason", req.Reason,
	)

	return dto.SuccessResult(levelID), nil
}
