package models

import (
	"time"

	ierr "github.com/stewardly/stewardly/internal/errors"
)

// ReportGenerationInput drives the durable report generation workflow. The
// delay stands in for the actual rendering work; the completion transition
// survives worker restarts because it is a workflow step, not a process
// timer.
type ReportGenerationInput struct {
	TenantID        string        `json:"tenant_id"`
	ActorID         string        `json:"actor_id"`
	ExecutionID     string        `json:"execution_id"`
	FileURL         string        `json:"file_url"`
	GenerationDelay time.Duration `json:"generation_delay"`
}

func (i *ReportGenerationInput) Validate() error {
	if i.TenantID == "" {
		return ierr.NewError("tenant ID is required").
			WithHint("Tenant ID is required").
			Mark(ierr.ErrValidation)
	}
	if i.ExecutionID == "" {
		return ierr.NewError("execution ID is required").
			WithHint("Execution ID is required").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// ReportGenerationResult is the terminal state of a report generation run
type ReportGenerationResult struct {
	ExecutionID string    `json:"execution_id"`
	Status      string    `json:"status"`
	CompletedAt time.Time `json:"completed_at"`
}

// SignatureCleanupInput bounds one cleanup sweep
type SignatureCleanupInput struct {
	BatchLimit int `json:"batch_limit"`
}

// SignatureCleanupResult reports one cleanup sweep
type SignatureCleanupResult struct {
	Removed     int       `json:"removed"`
	CompletedAt time.Time `json:"completed_at"`
}

// DefaultCleanupBatchLimit caps how many expired signatures one scheduled
// sweep processes
const DefaultCleanupBatchLimit = 100
