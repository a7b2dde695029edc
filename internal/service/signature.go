package service

import (
	"context"
	"time"

	"github.com/stewardly/stewardly/internal/api/dto"
	"github.com/stewardly/stewardly/internal/types"
)

// SignatureService handles signature workflow invocations and the scheduled
// cleanup of expired signatures.
type SignatureService interface {
	Execute(ctx context.Context, input dto.WorkflowInput) dto.WorkflowResult

	// CleanupExpired removes signatures past their expiry together with
	// their stored images. A failure on one signature is logged and skipped
	// so the rest of the batch still proceeds. Returns the number removed.
	CleanupExpired(ctx context.Context, cutoff time.Time, limit int) (int, error)
}

type signatureService struct {
	ServiceParams
	handlers map[types.WorkflowAction]func(ctx context.Context, input dto.WorkflowInput) (dto.WorkflowResult, error)
}

func NewSignatureService(params ServiceParams) SignatureService {
	s := &signatureService{ServiceParams: params}
	s.handlers = map[types.WorkflowAction]func(ctx context.Context, input dto.WorkflowInput) (dto.WorkflowResult, error){
		types.ActionSignatureCapture: s.capture,
		types.ActionSignatureDelete:  s.delete,
	}
	return s
}

func (s *signatureService) Execute(ctx context.Context, input dto.WorkflowInput) dto.WorkflowResult {
	if err := input.Validate(); err != nil {
		return dto.FailureResult(err.Error())
	}

	handler, ok := s.handlers[input.Action]
	if !ok {
		return dto.FailureResult(unknownActionError(input.Action))
	}

	result, err := handler(actorContext(ctx, input), input)
	if err != nil {
		return dto.FailureResult(resolveError(err, s.Sentry))
	}
	return result
}

func (s *signatureService) capture(ctx context.Context, input dto.WorkflowInput) (dto.WorkflowResult, error) {
	req, err := decodeRequest[dto.CaptureSignatureRequest](input.Data)
	if err != nil {
		return dto.WorkflowResult{}, err
	}

	sig := req.ToSignature(types.GetDefaultBaseModel(ctx))

	err = s.DB.WithTenantTx(ctx, input.TenantID, "signature.capture", func(ctx context.Context) error {
		return s.SignatureRepo.Create(ctx, sig)
	})
	if err != nil {
		return dto.WorkflowResult{}, err
	}

	s.Logger.Infow("captured signature",
		"tenant_id", input.TenantID,
		"signature_id", sig.ID,
		"object_key", sig.ObjectKey,
	)

	return dto.SuccessResult(sig.ID), nil
}

func (s *signatureService) delete(ctx context.Context, input dto.WorkflowInput) (dto.WorkflowResult, error) {
	if err := requireEntityID(input); err != nil {
		return dto.WorkflowResult{}, err
	}

	var objectKey string
	err := s.DB.WithTenantTx(ctx, input.TenantID, "signature.delete", func(ctx context.Context) error {
		existing, err := s.SignatureRepo.Get(ctx, input.EntityID)
		if err != nil {
			return err
		}
		objectKey = existing.ObjectKey
		return s.SignatureRepo.Delete(ctx, input.EntityID)
	})
	if err != nil {
		return dto.WorkflowResult{}, err
	}

	// The row is gone either way; object deletion failing only leaves an
	// orphaned image for the cleanup to ignore
	if s.S3 != nil && objectKey != "" {
		if err := s.S3.DeleteObject(ctx, objectKey); err != nil {
			s.Logger.Errorw("failed to delete signature object",
				"signature_id", input.EntityID,
				"object_key", objectKey,
				"error", err,
			)
		}
	}

	return dto.SuccessResult(input.EntityID), nil
}

func (s *signatureService) CleanupExpired(ctx context.Context, cutoff time.Time, limit int) (int, error) {
	expired, err := s.SignatureRepo.ListExpired(ctx, cutoff, limit)
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, sig := range expired {
		if s.S3 != nil && sig.ObjectKey != "" {
			if err := s.S3.DeleteObject(ctx, sig.ObjectKey); err != nil {
				s.Logger.Errorw("skipping expired signature, object deletion failed",
					"signature_id", sig.ID,
					"object_key", sig.ObjectKey,
					"error", err,
				)
				continue
			}
		}

		// The listing spans tenants; scope the deletion to the row's tenant
		tenantCtx := types.SetTenantID(ctx, sig.TenantID)
		if err := s.SignatureRepo.Delete(tenantCtx, sig.ID); err != nil {
			s.Logger.Errorw("skipping expired signature, row deletion failed",
				"signature_id", sig.ID,
				"error", err,
			)
			continue
		}
		removed++
	}

	s.Logger.Infow("expired signature cleanup finished",
		"expired", len(expired),
		"removed", removed,
	)

	return removed, nil
}
