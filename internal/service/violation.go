package service

import (
	"context"
	"time"

	"github.com/stewardly/stewardly/internal/api/dto"
	"github.com/stewardly/stewardly/internal/domain/violation"
	"github.com/stewardly/stewardly/internal/sequence"
	"github.com/stewardly/stewardly/internal/types"
)

// ViolationService handles HOA violation workflow invocations
type ViolationService interface {
	Execute(ctx context.Context, input dto.WorkflowInput) dto.ViolationWorkflowResult
}

type violationService struct {
	ServiceParams
	allocator *sequence.Allocator
	handlers  map[types.WorkflowAction]func(ctx context.Context, input dto.WorkflowInput) (dto.ViolationWorkflowResult, error)
}

func NewViolationService(params ServiceParams) ViolationService {
	s := &violationService{
		ServiceParams: params,
		allocator: sequence.NewAllocator(
			newSequenceSource(params.JobRepo, params.InvoiceRepo, params.ViolationRepo),
			params.Logger,
		),
	}
	s.handlers = map[types.WorkflowAction]func(ctx context.Context, input dto.WorkflowInput) (dto.ViolationWorkflowResult, error){
		types.ActionViolationCreate: s.create,
		types.ActionViolationUpdate: s.update,
		types.ActionViolationDelete: s.delete,
	}
	return s
}

func (s *violationService) Execute(ctx context.Context, input dto.WorkflowInput) dto.ViolationWorkflowResult {
	if err := input.Validate(); err != nil {
		return dto.ViolationWorkflowResult{WorkflowResult: dto.FailureResult(err.Error())}
	}

	handler, ok := s.handlers[input.Action]
	if !ok {
		return dto.ViolationWorkflowResult{WorkflowResult: dto.FailureResult(unknownActionError(input.Action))}
	}

	result, err := handler(actorContext(ctx, input), input)
	if err != nil {
		return dto.ViolationWorkflowResult{WorkflowResult: dto.FailureResult(resolveError(err, s.Sentry))}
	}
	return result
}

func (s *violationService) create(ctx context.Context, input dto.WorkflowInput) (dto.ViolationWorkflowResult, error) {
	req, err := decodeRequest[dto.CreateViolationRequest](input.Data)
	if err != nil {
		return dto.ViolationWorkflowResult{}, err
	}

	newViolation := req.ToViolation(types.GetDefaultBaseModel(ctx))

	// Violation numbers use max-suffix allocation so numbers of deleted
	// violations are never reissued
	err = s.DB.WithTenantTx(ctx, input.TenantID, "violation.create", func(ctx context.Context) error {
		number, err := s.allocator.Allocate(ctx, types.DocumentKindViolation, req.Year)
		if err != nil {
			return err
		}
		newViolation.ViolationNumber = number
		return s.ViolationRepo.Create(ctx, newViolation)
	})
	if err != nil {
		return dto.ViolationWorkflowResult{}, err
	}

	s.Logger.Infow("created violation",
		"tenant_id", input.TenantID,
		"violation_id", newViolation.ID,
		"violation_number", newViolation.ViolationNumber,
	)

	return dto.ViolationWorkflowResult{
		WorkflowResult:  dto.SuccessResult(newViolation.ID),
		ViolationNumber: newViolation.ViolationNumber,
	}, nil
}

func (s *violationService) update(ctx context.Context, input dto.WorkflowInput) (dto.ViolationWorkflowResult, error) {
	if err := requireEntityID(input); err != nil {
		return dto.ViolationWorkflowResult{}, err
	}

	req, err := decodeRequest[dto.UpdateViolationRequest](input.Data)
	if err != nil {
		return dto.ViolationWorkflowResult{}, err
	}

	err = s.DB.WithTenantTx(ctx, input.TenantID, "violation.update", func(ctx context.Context) error {
		existing, err := s.ViolationRepo.Get(ctx, input.EntityID)
		if err != nil {
			return err
		}
		applyViolationUpdate(existing, req)
		existing.UpdatedAt = time.Now().UTC()
		existing.UpdatedBy = input.ActorID
		return s.ViolationRepo.Update(ctx, existing)
	})
	if err != nil {
		return dto.ViolationWorkflowResult{}, err
	}

	return dto.ViolationWorkflowResult{WorkflowResult: dto.SuccessResult(input.EntityID)}, nil
}

func (s *violationService) delete(ctx context.Context, input dto.WorkflowInput) (dto.ViolationWorkflowResult, error) {
	if err := requireEntityID(input); err != nil {
		return dto.ViolationWorkflowResult{}, err
	}

	err := s.DB.WithTenantTx(ctx, input.TenantID, "violation.delete", func(ctx context.Context) error {
		if _, err := s.ViolationRepo.Get(ctx, input.EntityID); err != nil {
			return err
		}
		return s.ViolationRepo.Delete(ctx, input.EntityID)
	})
	if err != nil {
		return dto.ViolationWorkflowResult{}, err
	}

	return dto.ViolationWorkflowResult{WorkflowResult: dto.SuccessResult(input.EntityID)}, nil
}

func applyViolationUpdate(existing *violation.Violation, req *dto.UpdateViolationRequest) {
	if req.Description != nil {
		existing.Description = *req.Description
	}
	if req.Severity != nil {
		existing.Severity = *req.Severity
	}
	if req.ViolationStatus != nil {
		existing.ViolationStatus = *req.ViolationStatus
		if *req.ViolationStatus == types.ViolationStatusResolved && existing.ResolvedAt == nil {
			now := time.Now().UTC()
			existing.ResolvedAt = &now
		}
	}
	if req.ResolvedAt != nil {
		existing.ResolvedAt = req.ResolvedAt
	}
	if req.Metadata != nil {
		existing.Metadata = req.Metadata
	}
}
