package activities

import (
	"context"
	"fmt"

	"github.com/stewardly/stewardly/internal/api/dto"
	"github.com/stewardly/stewardly/internal/service"
	"github.com/stewardly/stewardly/internal/temporal/models"
	"github.com/stewardly/stewardly/internal/types"
)

// ReportActivities contains all report-related activities
type ReportActivities struct {
	reportService service.ReportService
}

// NewReportActivities creates a new ReportActivities instance
func NewReportActivities(reportService service.ReportService) *ReportActivities {
	return &ReportActivities{reportService: reportService}
}

// ExecuteReportAction dispatches one report action to the service layer
func (a *ReportActivities) ExecuteReportAction(ctx context.Context, input dto.WorkflowInput) (*dto.ReportWorkflowResult, error) {
	result := a.reportService.Execute(ctx, input)
	return &result, nil
}

func (a *ReportActivities) actorContext(ctx context.Context, input models.ReportGenerationInput) context.Context {
	ctx = types.SetTenantID(ctx, input.TenantID)
	return types.SetUserID(ctx, input.ActorID)
}

// MarkReportRunning moves the execution from pending to running
func (a *ReportActivities) MarkReportRunning(ctx context.Context, input models.ReportGenerationInput) error {
	if err := input.Validate(); err != nil {
		return err
	}
	return a.reportService.MarkRunning(a.actorContext(ctx, input), input.TenantID, input.ExecutionID)
}

// CompleteReport finishes the execution with its generated file URL
func (a *ReportActivities) CompleteReport(ctx context.Context, input models.ReportGenerationInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	fileURL := input.FileURL
	if fileURL == "" {
		fileURL = fmt.Sprintf("reports/%s", input.ExecutionID)
	}
	return a.reportService.Complete(a.actorContext(ctx, input), input.TenantID, input.ExecutionID, fileURL)
}

// FailReport marks the execution as failed
func (a *ReportActivities) FailReport(ctx context.Context, input models.ReportGenerationInput) error {
	if err := input.Validate(); err != nil {
		return err
	}
	return a.reportService.Fail(a.actorContext(ctx, input), input.TenantID, input.ExecutionID, "report generation failed")
}
