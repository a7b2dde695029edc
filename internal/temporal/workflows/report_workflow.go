package workflows

import (
	"fmt"
	"time"

	"github.com/stewardly/stewardly/internal/api/dto"
	"github.com/stewardly/stewardly/internal/temporal/models"
	"github.com/stewardly/stewardly/internal/types"
	enumspb "go.temporal.io/api/enums/v1"
	"go.temporal.io/sdk/workflow"
)

// defaultGenerationDelay stands in for the rendering work of a report run
const defaultGenerationDelay = time.Second * 30

// ReportWorkflow runs one report action as a durable execution. A successful
// start hands off to a detached generation workflow so the dispatch returns
// immediately while the pending -> running -> completed transitions proceed
// durably.
func ReportWorkflow(ctx workflow.Context, input dto.WorkflowInput) (*dto.ReportWorkflowResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	logger := workflow.GetLogger(ctx)
	logger.Info("Starting report workflow", "action", input.Action, "tenant_id", input.TenantID)

	status := "dispatching"
	if err := workflow.SetQueryHandler(ctx, models.QueryWorkflowStatus, func() (string, error) {
		return status, nil
	}); err != nil {
		return nil, err
	}

	ctx = workflow.WithActivityOptions(ctx, defaultActivityOptions())

	var result dto.ReportWorkflowResult
	if err := workflow.ExecuteActivity(ctx, models.ActivityExecuteReportAction, input).Get(ctx, &result); err != nil {
		status = "failed"
		logger.Error("Report workflow failed", "action", input.Action, "error", err)
		return nil, err
	}

	if input.Action == types.ActionReportStart && result.Success {
		childCtx := workflow.WithChildOptions(ctx, workflow.ChildWorkflowOptions{
			WorkflowID:        fmt.Sprintf("report-generation-%s", result.EntityID),
			ParentClosePolicy: enumspb.PARENT_CLOSE_POLICY_ABANDON,
		})
		generationInput := models.ReportGenerationInput{
			TenantID:        input.TenantID,
			ActorID:         input.ActorID,
			ExecutionID:     result.EntityID,
			GenerationDelay: defaultGenerationDelay,
		}
		child := workflow.ExecuteChildWorkflow(childCtx, models.WorkflowReportGeneration, generationInput)
		if err := child.GetChildWorkflowExecution().Get(ctx, nil); err != nil {
			status = "failed"
			return nil, err
		}
	}

	status = "completed"
	return &result, nil
}

// ReportGenerationWorkflow drives one report execution to a terminal state.
// The sleep is a durable timer, so a worker restart resumes the run instead
// of stranding the execution in running.
func ReportGenerationWorkflow(ctx workflow.Context, input models.ReportGenerationInput) (*models.ReportGenerationResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	logger := workflow.GetLogger(ctx)
	logger.Info("Starting report generation", "execution_id", input.ExecutionID)

	ctx = workflow.WithActivityOptions(ctx, defaultActivityOptions())

	if err := workflow.ExecuteActivity(ctx, models.ActivityMarkReportRunning, input).Get(ctx, nil); err != nil {
		// A canceled execution stops the generation without failing the run
		logger.Info("Report generation not started", "execution_id", input.ExecutionID, "error", err)
		return &models.ReportGenerationResult{
			ExecutionID: input.ExecutionID,
			Status:      "skipped",
			CompletedAt: workflow.Now(ctx),
		}, nil
	}

	delay := input.GenerationDelay
	if delay <= 0 {
		delay = defaultGenerationDelay
	}
	if err := workflow.Sleep(ctx, delay); err != nil {
		return nil, err
	}

	if err := workflow.ExecuteActivity(ctx, models.ActivityCompleteReport, input).Get(ctx, nil); err != nil {
		logger.Error("Report completion failed", "execution_id", input.ExecutionID, "error", err)
		failInput := input
		failInput.FileURL = ""
		if failErr := workflow.ExecuteActivity(ctx, models.ActivityFailReport, failInput).Get(ctx, nil); failErr != nil {
			logger.Error("Failed to mark report as failed", "execution_id", input.ExecutionID, "error", failErr)
		}
		return &models.ReportGenerationResult{
			ExecutionID: input.ExecutionID,
			Status:      "failed",
			CompletedAt: workflow.Now(ctx),
		}, nil
	}

	return &models.ReportGenerationResult{
		ExecutionID: input.ExecutionID,
		Status:      "completed",
		CompletedAt: workflow.Now(ctx),
	}, nil
}
