package activities

import (
	"context"

	"github.com/stewardly/stewardly/internal/api/dto"
	"github.com/stewardly/stewardly/internal/service"
)

// ViolationActivities contains all violation-related activities
type ViolationActivities struct {
	violationService service.ViolationService
}

// NewViolationActivities creates a new ViolationActivities instance
func NewViolationActivities(violationService service.ViolationService) *ViolationActivities {
	return &ViolationActivities{violationService: violationService}
}

// ExecuteViolationAction dispatches one violation action to the service layer
func (a *ViolationActivities) ExecuteViolationAction(ctx context.Context, input dto.WorkflowInput) (*dto.ViolationWorkflowResult, error) {
	result := a.violationService.Execute(ctx, input)
	return &result, nil
}
