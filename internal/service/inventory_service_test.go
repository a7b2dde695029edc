package service

import (
	"testing"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stewardly/stewardly/internal/api/dto"
	"github.com/stewardly/stewardly/internal/domain/inventory"
	"github.com/stewardly/stewardly/internal/testutil"
	"github.com/stewardly/stewardly/internal/types"
	"github.com/stretchr/testify/suite"
)

type InventoryServiceSuite struct {
	testutil.BaseServiceTestSuite
	service InventoryService
	item    *inventory.Item
	level   *inventory.StockLevel
}

func TestInventoryService(t *testing.T) {
	suite.Run(t, new(InventoryServiceSuite))
}

func (s *InventoryServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewInventoryService(testServiceParams(&s.BaseServiceTestSuite))

	s.item = &inventory.Item{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_INVENTORY_ITEM),
		Name:      "Irrigation valve",
		SKU:       "VALVE-100",
		Unit:      "each",
		BaseModel: types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().InventoryRepo.CreateItem(s.GetContext(), s.item))

	s.level = inventory.NewStockLevel(s.item.ID, "loc_warehouse", nil, nil)
	s.level.ID = types.GenerateUUIDWithPrefix(types.UUID_PREFIX_STOCK_LEVEL)
	s.level.QuantityOnHand = decimal.NewFromInt(10)
	s.level.QuantityAvailable = decimal.NewFromInt(8)
	s.level.BaseModel = types.GetDefaultBaseModel(s.GetContext())
	s.NoError(s.GetStores().InventoryRepo.CreateStockLevel(s.GetContext(), s.level))
}

func (s *InventoryServiceSuite) getLevel() *inventory.StockLevel {
	level, err := s.GetStores().InventoryRepo.GetStockLevel(s.GetContext(), inventory.StockScope{
		ItemID:     s.item.ID,
		LocationID: "loc_warehouse",
	})
	s.NoError(err)
	return level
}

func (s *InventoryServiceSuite) recordUsage(quantity decimal.Decimal) dto.WorkflowResult {
	input := workflowInput(types.ActionInventoryRecordUsage, "", dto.RecordUsageRequest{
		ItemID:     s.item.ID,
		LocationID: "loc_warehouse",
		JobID:      lo.ToPtr("job_01"),
		Quantity:   quantity,
	})
	return s.service.Execute(s.GetContext(), input)
}

func (s *InventoryServiceSuite) TestRecordUsage() {
	result := s.recordUsage(decimal.NewFromInt(3))

	s.True(result.Success, result.Error)
	s.NotEmpty(result.EntityID)

	level := s.getLevel()
	s.True(level.QuantityOnHand.Equal(decimal.NewFromInt(7)), level.QuantityOnHand.String())
	s.True(level.QuantityAvailable.Equal(decimal.NewFromInt(5)), level.QuantityAvailable.String())

	record, err := s.GetStores().InventoryRepo.GetUsageRecord(s.GetContext(), result.EntityID)
	s.NoError(err)
	s.Equal(s.item.ID, record.ItemID)
	s.True(record.Quantity.Equal(decimal.NewFromInt(3)))
	s.Equal(types.DefaultUserID, record.UsedBy)
}

// A usage exceeding availability fails and leaves the level exactly as it
// was, with no usage record written.
func (s *InventoryServiceSuite) TestRecordUsageInsufficientStock() {
	result := s.recordUsage(decimal.NewFromInt(9))

	s.False(result.Success)
	s.Contains(result.Error, "insufficient stock")

	level := s.getLevel()
	s.True(level.QuantityOnHand.Equal(decimal.NewFromInt(10)))
	s.True(level.QuantityAvailable.Equal(decimal.NewFromInt(8)))
}

func (s *InventoryServiceSuite) TestRecordUsageNoStockLevel() {
	input := workflowInput(types.ActionInventoryRecordUsage, "", dto.RecordUsageRequest{
		ItemID:     s.item.ID,
		LocationID: "loc_truck",
		Quantity:   decimal.NewFromInt(1),
	})
	result := s.service.Execute(s.GetContext(), input)

	s.False(result.Success)
	s.Contains(result.Error, "no stock of item")
}

func (s *InventoryServiceSuite) TestRecordUsageRejectsNonPositiveQuantity() {
	result := s.recordUsage(decimal.NewFromInt(-2))

	s.False(result.Success)
	s.Contains(result.Error, "quantity must be positive")
}

func (s *InventoryServiceSuite) TestReverseUsageRestoresQuantities() {
	usage := s.recordUsage(decimal.NewFromInt(3))
	s.True(usage.Success, usage.Error)

	input := workflowInput(types.ActionInventoryReverseUsage, "", dto.ReverseUsageRequest{
		UsageRecordID: usage.EntityID,
	})
	result := s.service.Execute(s.GetContext(), input)

	s.True(result.Success, result.Error)

	level := s.getLevel()
	s.True(level.QuantityOnHand.Equal(decimal.NewFromInt(10)))
	s.True(level.QuantityAvailable.Equal(decimal.NewFromInt(8)))

	_, err := s.GetStores().InventoryRepo.GetUsageRecord(s.GetContext(), usage.EntityID)
	s.Error(err)
}

// When the level row vanished since the usage, reversal restores into a
// fresh row rather than failing.
func (s *InventoryServiceSuite) TestReverseUsageRecreatesMissingLevel() {
	usage := s.recordUsage(decimal.NewFromInt(3))
	s.True(usage.Success, usage.Error)

	drained := s.getLevel()
	drained.Status = types.StatusDeleted
	s.NoError(s.GetStores().InventoryRepo.UpdateStockLevel(s.GetContext(), drained))

	input := workflowInput(types.ActionInventoryReverseUsage, "", dto.ReverseUsageRequest{
		UsageRecordID: usage.EntityID,
	})
	result := s.service.Execute(s.GetContext(), input)

	s.True(result.Success, result.Error)

	level := s.getLevel()
	s.NotEqual(s.level.ID, level.ID)
	s.True(level.QuantityOnHand.Equal(decimal.NewFromInt(3)))
	s.True(level.QuantityAvailable.Equal(decimal.NewFromInt(3)))
}

func (s *InventoryServiceSuite) TestReverseUnknownUsageRecord() {
	input := workflowInput(types.ActionInventoryReverseUsage, "", dto.ReverseUsageRequest{
		UsageRecordID: "usage_missing",
	})
	result := s.service.Execute(s.GetContext(), input)

	s.False(result.Success)
	s.Contains(result.Error, "not found")
}

func (s *InventoryServiceSuite) adjust(locationID string, delta decimal.Decimal) dto.WorkflowResult {
	input := workflowInput(types.ActionInventoryAdjust, "", dto.AdjustStockRequest{
		ItemID:     s.item.ID,
		LocationID: locationID,
		Delta:      delta,
		Reason:     "cycle count",
	})
	return s.service.Execute(s.GetContext(), input)
}

func (s *InventoryServiceSuite) TestAdjustExistingLevel() {
	result := s.adjust("loc_warehouse", decimal.NewFromInt(5))

	s.True(result.Success, result.Error)
	s.Equal(s.level.ID, result.EntityID)

	level := s.getLevel()
	s.True(level.QuantityOnHand.Equal(decimal.NewFromInt(15)))
	s.True(level.QuantityAvailable.Equal(decimal.NewFromInt(13)))
}

func (s *InventoryServiceSuite) TestAdjustCreatesMissingLevel() {
	result := s.adjust("loc_truck", decimal.NewFromInt(4))

	s.True(result.Success, result.Error)
	s.NotEmpty(result.EntityID)

	level, err := s.GetStores().InventoryRepo.GetStockLevel(s.GetContext(), inventory.StockScope{
		ItemID:     s.item.ID,
		LocationID: "loc_truck",
	})
	s.NoError(err)
	s.True(level.QuantityOnHand.Equal(decimal.NewFromInt(4)))
	s.True(level.QuantityAvailable.Equal(decimal.NewFromInt(4)))
}

func (s *InventoryServiceSuite) TestAdjustBelowAvailableFails() {
	result := s.adjust("loc_warehouse", decimal.NewFromInt(-9))

	s.False(result.Success)
	s.Contains(result.Error, "insufficient stock")

	level := s.getLevel()
	s.True(level.QuantityOnHand.Equal(decimal.NewFromInt(10)))
	s.True(level.QuantityAvailable.Equal(decimal.NewFromInt(8)))
}

func (s *InventoryServiceSuite) TestAdjustRejectsZeroDelta() {
	result := s.adjust("loc_warehouse", decimal.Zero)

	s.False(result.Success)
	s.Contains(result.Error, "non-zero")
}

func (s *InventoryServiceSuite) TestUnknownAction() {
	result := s.service.Execute(s.GetContext(), workflowInput("transfer", "", nil))

	s.False(result.Success)
	s.Equal("Unknown action: transfer", result.Error)
}
