package activities

import (
	"context"

	"github.com/stewardly/stewardly/internal/api/dto"
	"github.com/stewardly/stewardly/internal/service"
)

// ChecklistActivities contains all checklist-related activities
type ChecklistActivities struct {
	checklistService service.ChecklistService
}

// NewChecklistActivities creates a new ChecklistActivities instance
func NewChecklistActivities(checklistService service.ChecklistService) *ChecklistActivities {
	return &ChecklistActivities{checklistService: checklistService}
}

// ExecuteChecklistAction dispatches one checklist action to the service layer
func (a *ChecklistActivities) ExecuteChecklistAction(ctx context.Context, input dto.WorkflowInput) (*dto.ChecklistWorkflowResult, error) {
	result := a.checklistService.Execute(ctx, input)
	return &result, nil
}
