package service

import (
	"context"
	"time"

	"github.com/samber/lo"
	"github.com/stewardly/stewardly/internal/api/dto"
	ierr "github.com/stewardly/stewardly/internal/errors"
	"github.com/stewardly/stewardly/internal/types"
)

// ReportService handles report execution workflow invocations. Executions
// transition pending -> running -> completed/failed via durable workflow
// steps; the transition methods below are invoked from activities.
type ReportService interface {
	Execute(ctx context.Context, input dto.WorkflowInput) dto.ReportWorkflowResult

	// MarkRunning moves a pending execution to running. Canceled executions
	// return a business rule error so the workflow stops generating.
	MarkRunning(ctx context.Context, tenantID, executionID string) error

	// Complete finishes a running execution with the generated file URL.
	// Executions already in a terminal state are left untouched.
	Complete(ctx context.Context, tenantID, executionID, fileURL string) error

	// Fail marks an execution as failed with the given message.
	// Executions already in a terminal state are left untouched.
	Fail(ctx context.Context, tenantID, executionID, message string) error
}

type reportService struct {
	ServiceParams
	handlers map[types.WorkflowAction]func(ctx context.Context, input dto.WorkflowInput) (dto.ReportWorkflowResult, error)
}

func NewReportService(params ServiceParams) ReportService {
	s := &reportService{ServiceParams: params}
	s.handlers = map[types.WorkflowAction]func(ctx context.Context, input dto.WorkflowInput) (dto.ReportWorkflowResult, error){
		types.ActionReportStart:     s.start,
		types.ActionReportCancel:    s.cancel,
		types.ActionReportGetStatus: s.getStatus,
	}
	return s
}

func (s *reportService) Execute(ctx context.Context, input dto.WorkflowInput) dto.ReportWorkflowResult {
	if err := input.Validate(); err != nil {
		return dto.ReportWorkflowResult{WorkflowResult: dto.FailureResult(err.Error())}
	}

	handler, ok := s.handlers[input.Action]
	if !ok {
		return dto.ReportWorkflowResult{WorkflowResult: dto.FailureResult(unknownActionError(input.Action))}
	}

	result, err := handler(actorContext(ctx, input), input)
	if err != nil {
		return dto.ReportWorkflowResult{WorkflowResult: dto.FailureResult(resolveError(err, s.Sentry))}
	}
	return result
}

func (s *reportService) start(ctx context.Context, input dto.WorkflowInput) (dto.ReportWorkflowResult, error) {
	req, err := decodeRequest[dto.StartReportRequest](input.Data)
	if err != nil {
		return dto.ReportWorkflowResult{}, err
	}

	execution := req.ToExecution(input.ActorID, types.GetDefaultBaseModel(ctx))

	err = s.DB.WithTenantTx(ctx, input.TenantID, "report.start", func(ctx context.Context) error {
		return s.ReportRepo.Create(ctx, execution)
	})
	if err != nil {
		return dto.ReportWorkflowResult{}, err
	}

	s.Logger.Infow("started report execution",
		"tenant_id", input.TenantID,
		"report_execution_id", execution.ID,
		"report_key", execution.ReportKey,
		"format", execution.Format,
	)

	return dto.ReportWorkflowResult{
		WorkflowResult: dto.SuccessResult(execution.ID),
		Status:         string(execution.State),
	}, nil
}

func (s *reportService) cancel(ctx context.Context, input dto.WorkflowInput) (dto.ReportWorkflowResult, error) {
	if err := requireEntityID(input); err != nil {
		return dto.ReportWorkflowResult{}, err
	}

	var canceledAt time.Time
	err := s.DB.WithTenantTx(ctx, input.TenantID, "report.cancel", func(ctx context.Context) error {
		existing, err := s.ReportRepo.Get(ctx, input.EntityID)
		if err != nil {
			return err
		}
		if existing.State.IsTerminal() {
			return ierr.NewErrorf("report execution %s is already %s", existing.ID, existing.State).
				WithHint("Only pending or running executions can be canceled").
				Mark(ierr.ErrInvalidOperation)
		}

		canceledAt = time.Now().UTC()
		existing.State = types.ReportExecutionStatusCanceled
		existing.CompletedAt = &canceledAt
		existing.UpdatedAt = canceledAt
		existing.UpdatedBy = input.ActorID
		return s.ReportRepo.Update(ctx, existing)
	})
	if err != nil {
		return dto.ReportWorkflowResult{}, err
	}

	return dto.ReportWorkflowResult{
		WorkflowResult: dto.SuccessResult(input.EntityID),
		Status:         string(types.ReportExecutionStatusCanceled),
		Timestamp:      &canceledAt,
	}, nil
}

func (s *reportService) getStatus(ctx context.Context, input dto.WorkflowInput) (dto.ReportWorkflowResult, error) {
	if err := requireEntityID(input); err != nil {
		return dto.ReportWorkflowResult{}, err
	}

	execution, err := s.ReportRepo.Get(ctx, input.EntityID)
	if err != nil {
		return dto.ReportWorkflowResult{}, err
	}

	timestamp := lo.CoalesceOrEmpty(execution.CompletedAt, execution.StartedAt)
	return dto.ReportWorkflowResult{
		WorkflowResult: dto.SuccessResult(execution.ID),
		Status:         string(execution.State),
		Timestamp:      timestamp,
	}, nil
}

func (s *reportService) MarkRunning(ctx context.Context, tenantID, executionID string) error {
	return s.DB.WithTenantTx(ctx, tenantID, "report.mark_running", func(ctx context.Context) error {
		existing, err := s.ReportRepo.Get(ctx, executionID)
		if err != nil {
			return err
		}
		if existing.State != types.ReportExecutionStatusPending {
			return ierr.NewErrorf("report execution %s is %s, not pending", existing.ID, existing.State).
				WithHint("Execution is no longer pending").
				Mark(ierr.ErrInvalidOperation)
		}

		now := time.Now().UTC()
		existing.State = types.ReportExecutionStatusRunning
		existing.StartedAt = &now
		existing.UpdatedAt = now
		return s.ReportRepo.Update(ctx, existing)
	})
}

func (s *reportService) Complete(ctx context.Context, tenantID, executionID, fileURL string) error {
	return s.DB.WithTenantTx(ctx, tenantID, "report.complete", func(ctx context.Context) error {
		existing, err := s.ReportRepo.Get(ctx, executionID)
		if err != nil {
			return err
		}
		// A cancel that raced the generation wins
		if existing.State.IsTerminal() {
			return nil
		}

		now := time.Now().UTC()
		existing.State = types.ReportExecutionStatusCompleted
		existing.CompletedAt = &now
		existing.FileURL = &fileURL
		existing.UpdatedAt = now
		return s.ReportRepo.Update(ctx, existing)
	})
}

func (s *reportService) Fail(ctx context.Context, tenantID, executionID, message string) error {
	return s.DB.WithTenantTx(ctx, tenantID, "report.fail", func(ctx context.Context) error {
		existing, err := s.ReportRepo.Get(ctx, executionID)
		if err != nil {
			return err
		}
		if existing.State.IsTerminal() {
			return nil
		}

		now := time.Now().UTC()
		existing.State = types.ReportExecutionStatusFailed
		existing.CompletedAt = &now
		existing.ErrorMessage = &message
		existing.UpdatedAt = now
		return s.ReportRepo.Update(ctx, existing)
	})
}
