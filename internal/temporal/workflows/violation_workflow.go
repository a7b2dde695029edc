package workflows

import (
	"github.com/stewardly/stewardly/internal/api/dto"
	"github.com/stewardly/stewardly/internal/temporal/models"
	"go.temporal.io/sdk/workflow"
)

// ViolationWorkflow runs one violation action as a durable execution
func ViolationWorkflow(ctx workflow.Context, input dto.WorkflowInput) (*dto.ViolationWorkflowResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	logger := workflow.GetLogger(ctx)
	logger.Info("Starting violation workflow", "action", input.Action, "tenant_id", input.TenantID)

	status := "dispatching"
	if err := workflow.SetQueryHandler(ctx, models.QueryWorkflowStatus, func() (string, error) {
		return status, nil
	}); err != nil {
		return nil, err
	}

	ctx = workflow.WithActivityOptions(ctx, defaultActivityOptions())

	var result dto.ViolationWorkflowResult
	if err := workflow.ExecuteActivity(ctx, models.ActivityExecuteViolationAction, input).Get(ctx, &result); err != nil {
		status = "failed"
		logger.Error("Violation workflow failed", "action", input.Action, "error", err)
		return nil, err
	}

	status = "completed"
	return &result, nil
}
