package dto

import (
	"time"

	"github.com/stewardly/stewardly/internal/domain/violation"
	"github.com/stewardly/stewardly/internal/types"
	"github.com/stewardly/stewardly/internal/validator"
)

type CreateViolationRequest struct {
	PropertyID  string                  `json:"property_id" validate:"required"`
	OwnerID     *string                 `json:"owner_id,omitempty"`
	Category    string                  `json:"category" validate:"required"`
	Description string                  `json:"description,omitempty"`
	Severity    types.ViolationSeverity `json:"severity,omitempty"`
	ObservedAt  *time.Time              `json:"observed_at,omitempty"`
	Year        int                     `json:"year,omitempty"`
	Metadata    types.Metadata          `json:"metadata,omitempty"`
}

func (r *CreateViolationRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// ToViolation builds the domain violation; the violation number is assigned
// by the sequence allocator inside the creation transaction.
func (r *CreateViolationRequest) ToViolation(baseModel types.BaseModel) *violation.Violation {
	severity := r.Severity
	if severity == "" {
		severity = types.ViolationSeverityMinor
	}

	observedAt := time.Now().UTC()
	if r.ObservedAt != nil {
		observedAt = *r.ObservedAt
	}

	return &violation.Violation{
		ID:              types.GenerateUUIDWithPrefix(types.UUID_PREFIX_VIOLATION),
		PropertyID:      r.PropertyID,
		OwnerID:         r.OwnerID,
		Category:        r.Category,
		Description:     r.Description,
		Severity:        severity,
		ViolationStatus: types.ViolationStatusOpen,
		ObservedAt:      observedAt,
		Metadata:        r.Metadata,
		BaseModel:       baseModel,
	}
}

type UpdateViolationRequest struct {
	Description     *string                  `json:"description,omitempty"`
	Severity        *types.ViolationSeverity `json:"severity,omitempty"`
	ViolationStatus *types.ViolationStatus   `json:"violation_status,omitempty"`
	ResolvedAt      *time.Time               `json:"resolved_at,omitempty"`
	Metadata        types.Metadata           `json:"metadata,omitempty"`
}

func (r *UpdateViolationRequest) Validate() error {
	return validator.ValidateRequest(r)
}
