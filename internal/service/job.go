package service

import (
	"context"
	"time"

	"github.com/stewardly/stewardly/internal/api/dto"
	"github.com/stewardly/stewardly/internal/domain/job"
	"github.com/stewardly/stewardly/internal/sequence"
	"github.com/stewardly/stewardly/internal/types"
)

// JobService handles field-service job workflow invocations
type JobService interface {
	Execute(ctx context.Context, input dto.WorkflowInput) dto.JobWorkflowResult
}

type jobService struct {
	ServiceParams
	allocator *sequence.Allocator
	handlers  map[types.WorkflowAction]func(ctx context.Context, input dto.WorkflowInput) (dto.JobWorkflowResult, error)
}

func NewJobService(params ServiceParams) JobService {
	s := &jobService{
		ServiceParams: params,
		allocator: sequence.NewAllocator(
			newSequenceSource(params.JobRepo, params.InvoiceRepo, params.ViolationRepo),
			params.Logger,
		),
	}
	s.handlers = map[types.WorkflowAction]func(ctx context.Context, input dto.WorkflowInput) (dto.JobWorkflowResult, error){
		types.ActionJobCreate: s.create,
		types.ActionJobUpdate: s.update,
		types.ActionJobDelete: s.delete,
	}
	return s
}

func (s *jobService) Execute(ctx context.Context, input dto.WorkflowInput) dto.JobWorkflowResult {
	if err := input.Validate(); err != nil {
		return dto.JobWorkflowResult{WorkflowResult: dto.FailureResult(err.Error())}
	}

	handler, ok := s.handlers[input.Action]
	if !ok {
		return dto.JobWorkflowResult{WorkflowResult: dto.FailureResult(unknownActionError(input.Action))}
	}

	result, err := handler(actorContext(ctx, input), input)
	if err != nil {
		return dto.JobWorkflowResult{WorkflowResult: dto.FailureResult(resolveError(err, s.Sentry))}
	}
	return result
}

func (s *jobService) create(ctx context.Context, input dto.WorkflowInput) (dto.JobWorkflowResult, error) {
	req, err := decodeRequest[dto.CreateJobRequest](input.Data)
	if err != nil {
		return dto.JobWorkflowResult{}, err
	}

	newJob := req.ToJob(types.GetDefaultBaseModel(ctx))

	// Number allocation and insert share one transaction; a concurrent
	// creation in the same scope surfaces as a unique-constraint violation
	err = s.DB.WithTenantTx(ctx, input.TenantID, "job.create", func(ctx context.Context) error {
		number, err := s.allocator.Allocate(ctx, types.DocumentKindJob, req.Year)
		if err != nil {
			return err
		}
		newJob.JobNumber = number
		return s.JobRepo.Create(ctx, newJob)
	})
	if err != nil {
		return dto.JobWorkflowResult{}, err
	}

	s.Logger.Infow("created job",
		"tenant_id", input.TenantID,
		"job_id", newJob.ID,
		"job_number", newJob.JobNumber,
	)

	return dto.JobWorkflowResult{
		WorkflowResult: dto.SuccessResult(newJob.ID),
		JobNumber:      newJob.JobNumber,
	}, nil
}

func (s *jobService) update(ctx context.Context, input dto.WorkflowInput) (dto.JobWorkflowResult, error) {
	if err := requireEntityID(input); err != nil {
		return dto.JobWorkflowResult{}, err
	}

	req, err := decodeRequest[dto.UpdateJobRequest](input.Data)
	if err != nil {
		return dto.JobWorkflowResult{}, err
	}

	err = s.DB.WithTenantTx(ctx, input.TenantID, "job.update", func(ctx context.Context) error {
		existing, err := s.JobRepo.Get(ctx, input.EntityID)
		if err != nil {
			return err
		}
		applyJobUpdate(existing, req)
		existing.UpdatedAt = time.Now().UTC()
		existing.UpdatedBy = input.ActorID
		return s.JobRepo.Update(ctx, existing)
	})
	if err != nil {
		return dto.JobWorkflowResult{}, err
	}

	return dto.JobWorkflowResult{WorkflowResult: dto.SuccessResult(input.EntityID)}, nil
}

func (s *jobService) delete(ctx context.Context, input dto.WorkflowInput) (dto.JobWorkflowResult, error) {
	if err := requireEntityID(input); err != nil {
		return dto.JobWorkflowResult{}, err
	}

	err := s.DB.WithTenantTx(ctx, input.TenantID, "job.delete", func(ctx context.Context) error {
		if _, err := s.JobRepo.Get(ctx, input.EntityID); err != nil {
			return err
		}
		return s.JobRepo.Delete(ctx, input.EntityID)
	})
	if err != nil {
		return dto.JobWorkflowResult{}, err
	}

	return dto.JobWorkflowResult{WorkflowResult: dto.SuccessResult(input.EntityID)}, nil
}

func applyJobUpdate(existing *job.Job, req *dto.UpdateJobRequest) {
	if req.Title != nil {
		existing.Title = *req.Title
	}
	if req.Description != nil {
		existing.Description = *req.Description
	}
	if req.AssigneeID != nil {
		existing.AssigneeID = req.AssigneeID
	}
	if req.JobStatus != nil {
		existing.JobStatus = *req.JobStatus
		if *req.JobStatus == types.JobStatusCompleted && existing.CompletedAt == nil {
			now := time.Now().UTC()
			existing.CompletedAt = &now
		}
	}
	if req.Priority != nil {
		existing.Priority = *req.Priority
	}
	if req.ScheduledFor != nil {
		existing.ScheduledFor = req.ScheduledFor
	}
	if req.Metadata != nil {
		existing.Metadata = req.Metadata
	}
}
