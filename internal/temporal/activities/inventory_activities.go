package activities

import (
	"context"

	"github.com/stewardly/stewardly/internal/api/dto"
	"github.com/stewardly/stewardly/internal/service"
)

// InventoryActivities contains all inventory-related activities
type InventoryActivities struct {
	inventoryService service.InventoryService
}

// NewInventoryActivities creates a new InventoryActivities instance
func NewInventoryActivities(inventoryService service.InventoryService) *InventoryActivities {
	return &InventoryActivities{inventoryService: inventoryService}
}

// ExecuteInventoryAction dispatches one inventory action to the service layer
func (a *InventoryActivities) ExecuteInventoryAction(ctx context.Context, input dto.WorkflowInput) (*dto.WorkflowResult, error) {
	result := a.inventoryService.Execute(ctx, input)
	return &result, nil
}
