package workflows

import (
	"github.com/stewardly/stewardly/internal/api/dto"
	"github.com/stewardly/stewardly/internal/temporal/models"
	"go.temporal.io/sdk/workflow"
)

// JobWorkflow runs one job action as a durable execution
func JobWorkflow(ctx workflow.Context, input dto.WorkflowInput) (*dto.JobWorkflowResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	logger := workflow.GetLogger(ctx)
	logger.Info("Starting job workflow", "action", input.Action, "tenant_id", input.TenantID)

	status := "dispatching"
	if err := workflow.SetQueryHandler(ctx, models.QueryWorkflowStatus, func() (string, error) {
		return status, nil
	}); err != nil {
		return nil, err
	}

	ctx = workflow.WithActivityOptions(ctx, defaultActivityOptions())

	var result dto.JobWorkflowResult
	if err := workflow.ExecuteActivity(ctx, models.ActivityExecuteJobAction, input).Get(ctx, &result); err != nil {
		status = "failed"
		logger.Error("Job workflow failed", "action", input.Action, "error", err)
		return nil, err
	}

	status = "completed"
	return &result, nil
}
