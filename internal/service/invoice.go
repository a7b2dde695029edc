package service

import (
	"context"
	"time"

	"github.com/samber/lo"
	"github.com/stewardly/stewardly/internal/api/dto"
	"github.com/stewardly/stewardly/internal/domain/invoice"
	ierr "github.com/stewardly/stewardly/internal/errors"
	"github.com/stewardly/stewardly/internal/sequence"
	"github.com/stewardly/stewardly/internal/types"
)

// InvoiceService handles invoice workflow invocations
type InvoiceService interface {
	Execute(ctx context.Context, input dto.WorkflowInput) dto.InvoiceWorkflowResult
}

type invoiceService struct {
	ServiceParams
	allocator *sequence.Allocator
	handlers  map[types.WorkflowAction]func(ctx context.Context, input dto.WorkflowInput) (dto.InvoiceWorkflowResult, error)
}

func NewInvoiceService(params ServiceParams) InvoiceService {
	s := &invoiceService{
		ServiceParams: params,
		allocator: sequence.NewAllocator(
			newSequenceSource(params.JobRepo, params.InvoiceRepo, params.ViolationRepo),
			params.Logger,
		),
	}
	s.handlers = map[types.WorkflowAction]func(ctx context.Context, input dto.WorkflowInput) (dto.InvoiceWorkflowResult, error){
		types.ActionInvoiceCreate:      s.create,
		types.ActionInvoiceUpdateLines: s.updateLines,
		types.ActionInvoiceDelete:      s.delete,
	}
	return s
}

func (s *invoiceService) Execute(ctx context.Context, input dto.WorkflowInput) dto.InvoiceWorkflowResult {
	if err := input.Validate(); err != nil {
		return dto.InvoiceWorkflowResult{WorkflowResult: dto.FailureResult(err.Error())}
	}

	handler, ok := s.handlers[input.Action]
	if !ok {
		return dto.InvoiceWorkflowResult{WorkflowResult: dto.FailureResult(unknownActionError(input.Action))}
	}

	result, err := handler(actorContext(ctx, input), input)
	if err != nil {
		return dto.InvoiceWorkflowResult{WorkflowResult: dto.FailureResult(resolveError(err, s.Sentry))}
	}
	return result
}

func (s *invoiceService) create(ctx context.Context, input dto.WorkflowInput) (dto.InvoiceWorkflowResult, error) {
	req, err := decodeRequest[dto.CreateInvoiceRequest](input.Data)
	if err != nil {
		return dto.InvoiceWorkflowResult{}, err
	}

	inv := req.ToInvoice(types.GetDefaultBaseModel(ctx))

	err = s.DB.WithTenantTx(ctx, input.TenantID, "invoice.create", func(ctx context.Context) error {
		number, err := s.allocator.Allocate(ctx, types.DocumentKindInvoice, req.Year)
		if err != nil {
			return err
		}
		inv.InvoiceNumber = number
		return s.InvoiceRepo.CreateWithLineItems(ctx, inv)
	})
	if err != nil {
		return dto.InvoiceWorkflowResult{}, err
	}

	s.Logger.Infow("created invoice",
		"tenant_id", input.TenantID,
		"invoice_id", inv.ID,
		"invoice_number", inv.InvoiceNumber,
		"total_amount", inv.TotalAmount.String(),
	)

	return dto.InvoiceWorkflowResult{
		WorkflowResult: dto.SuccessResult(inv.ID),
		InvoiceNumber:  inv.InvoiceNumber,
	}, nil
}

func (s *invoiceService) updateLines(ctx context.Context, input dto.WorkflowInput) (dto.InvoiceWorkflowResult, error) {
	if err := requireEntityID(input); err != nil {
		return dto.InvoiceWorkflowResult{}, err
	}

	req, err := decodeRequest[dto.UpdateInvoiceLinesRequest](input.Data)
	if err != nil {
		return dto.InvoiceWorkflowResult{}, err
	}

	var invoiceNumber string
	err = s.DB.WithTenantTx(ctx, input.TenantID, "invoice.update_lines", func(ctx context.Context) error {
		existing, err := s.InvoiceRepo.Get(ctx, input.EntityID)
		if err != nil {
			return err
		}
		if existing.InvoiceStatus != types.InvoiceStatusDraft {
			return ierr.NewErrorf("invoice %s is %s and cannot be modified", existing.InvoiceNumber, existing.InvoiceStatus).
				WithHint("Only draft invoices can be modified").
				Mark(ierr.ErrInvalidOperation)
		}

		base := types.GetDefaultBaseModel(ctx)
		existing.LineItems = lo.Map(req.Lines, func(line *dto.InvoiceLineItemRequest, _ int) *invoice.LineItem {
			return line.ToLineItem(existing.ID, base)
		})
		if req.Discount != nil {
			existing.Discount = *req.Discount
		}

		// The totals snapshot is recomputed in full; the balance keeps any
		// payments already applied by shifting with the total's delta
		previousTotal := existing.TotalAmount
		existing.RefreshTotals()
		existing.BalanceDue = existing.BalanceDue.Add(existing.TotalAmount.Sub(previousTotal))

		existing.UpdatedAt = time.Now().UTC()
		existing.UpdatedBy = input.ActorID
		invoiceNumber = existing.InvoiceNumber
		return s.InvoiceRepo.Update(ctx, existing)
	})
	if err != nil {
		return dto.InvoiceWorkflowResult{}, err
	}

	return dto.InvoiceWorkflowResult{
		WorkflowResult: dto.SuccessResult(input.EntityID),
		InvoiceNumber:  invoiceNumber,
	}, nil
}

func (s *invoiceService) delete(ctx context.Context, input dto.WorkflowInput) (dto.InvoiceWorkflowResult, error) {
	if err := requireEntityID(input); err != nil {
		return dto.InvoiceWorkflowResult{}, err
	}

	err := s.DB.WithTenantTx(ctx, input.TenantID, "invoice.delete", func(ctx context.Context) error {
		existing, err := s.InvoiceRepo.Get(ctx, input.EntityID)
		if err != nil {
			return err
		}
		if existing.InvoiceStatus != types.InvoiceStatusDraft {
			return ierr.NewErrorf("invoice %s is %s and cannot be deleted", existing.InvoiceNumber, existing.InvoiceStatus).
				WithHint("Only draft invoices can be deleted").
				Mark(ierr.ErrInvalidOperation)
		}
		if existing.BalanceDue.LessThan(existing.TotalAmount) {
			return ierr.NewError("invoice has payments applied and cannot be deleted").
				WithHint("Invoices with payments cannot be deleted").
				Mark(ierr.ErrInvalidOperation)
		}
		return s.InvoiceRepo.Delete(ctx, input.EntityID)
	})
	if err != nil {
		return dto.InvoiceWorkflowResult{}, err
	}

	return dto.InvoiceWorkflowResult{WorkflowResult: dto.SuccessResult(input.EntityID)}, nil
}
