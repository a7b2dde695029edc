package workflows

import (
	"github.com/stewardly/stewardly/internal/api/dto"
	"github.com/stewardly/stewardly/internal/temporal/models"
	"go.temporal.io/sdk/workflow"
)

// NotificationWorkflow runs one notification action as a durable execution
func NotificationWorkflow(ctx workflow.Context, input dto.WorkflowInput) (*dto.NotificationWorkflowResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	logger := workflow.GetLogger(ctx)
	logger.Info("Starting notification workflow", "action", input.Action, "tenant_id", input.TenantID)

	status := "dispatching"
	if err := workflow.SetQueryHandler(ctx, models.QueryWorkflowStatus, func() (string, error) {
		return status, nil
	}); err != nil {
		return nil, err
	}

	ctx = workflow.WithActivityOptions(ctx, defaultActivityOptions())

	var result dto.NotificationWorkflowResult
	if err := workflow.ExecuteActivity(ctx, models.ActivityExecuteNotificationAction, input).Get(ctx, &result); err != nil {
		status = "failed"
		logger.Error("Notification workflow failed", "action", input.Action, "error", err)
		return nil, err
	}

	status = "completed"
	return &result, nil
}
