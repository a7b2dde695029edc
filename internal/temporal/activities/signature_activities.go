package activities

import (
	"context"
	"time"

	"github.com/stewardly/stewardly/internal/api/dto"
	"github.com/stewardly/stewardly/internal/service"
	"github.com/stewardly/stewardly/internal/temporal/models"
)

// SignatureActivities contains all signature-related activities
type SignatureActivities struct {
	signatureService service.SignatureService
}

// NewSignatureActivities creates a new SignatureActivities instance
func NewSignatureActivities(signatureService service.SignatureService) *SignatureActivities {
	return &SignatureActivities{signatureService: signatureService}
}

// ExecuteSignatureAction dispatches one signature action to the service layer
func (a *SignatureActivities) ExecuteSignatureAction(ctx context.Context, input dto.WorkflowInput) (*dto.WorkflowResult, error) {
	result := a.signatureService.Execute(ctx, input)
	return &result, nil
}

// CleanupExpiredSignatures runs one bounded sweep over expired signatures
func (a *SignatureActivities) CleanupExpiredSignatures(ctx context.Context, input models.SignatureCleanupInput) (*models.SignatureCleanupResult, error) {
	removed, err := a.signatureService.CleanupExpired(ctx, time.Now().UTC(), input.BatchLimit)
	if err != nil {
		return nil, err
	}

	return &models.SignatureCleanupResult{
		Removed:     removed,
		CompletedAt: time.Now().UTC(),
	}, nil
}
