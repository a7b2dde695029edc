package workflows

import (
	"github.com/stewardly/stewardly/internal/api/dto"
	"github.com/stewardly/stewardly/internal/temporal/models"
	"go.temporal.io/sdk/workflow"
)

// InventoryWorkflow runs one inventory action as a durable execution. Stock
// deltas and their usage records commit atomically inside the activity, so a
// retried activity either sees the committed state or none of it.
func InventoryWorkflow(ctx workflow.Context, input dto.WorkflowInput) (*dto.WorkflowResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	logger := workflow.GetLogger(ctx)
	logger.Info("Starting inventory workflow", "action", input.Action, "tenant_id", input.TenantID)

	status := "dispatching"
	if err := workflow.SetQueryHandler(ctx, models.QueryWorkflowStatus, func() (string, error) {
		return status, nil
	}); err != nil {
		return nil, err
	}

	ctx = workflow.WithActivityOptions(ctx, defaultActivityOptions())

	var result dto.WorkflowResult
	if err := workflow.ExecuteActivity(ctx, models.ActivityExecuteInventoryAction, input).Get(ctx, &result); err != nil {
		status = "failed"
		logger.Error("Inventory workflow failed", "action", input.Action, "error", err)
		return nil, err
	}

	status = "completed"
	return &result, nil
}
