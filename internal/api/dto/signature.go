package dto

import (
	"time"

	"github.com/stewardly/stewardly/internal/domain/signature"
	"github.com/stewardly/stewardly/internal/types"
	"github.com/stewardly/stewardly/internal/validator"
)

type CaptureSignatureRequest struct {
	SignerName string     `json:"signer_name" validate:"required"`
	ObjectKey  string     `json:"object_key" validate:"required"`
	DocumentID *string    `json:"document_id,omitempty"`
	JobID      *string    `json:"job_id,omitempty"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
}

func (r *CaptureSignatureRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *CaptureSignatureRequest) ToSignature(baseModel types.BaseModel) *signature.Signature {
	return &signature.Signature{
		ID:         types.GenerateUUIDWithPrefix(types.UUID_PREFIX_SIGNATURE),
		DocumentID: r.DocumentID,
		JobID:      r.JobID,
		SignerName: r.SignerName,
		ObjectKey:  r.ObjectKey,
		CapturedAt: time.Now().UTC(),
		ExpiresAt:  r.ExpiresAt,
		BaseModel:  baseModel,
	}
}
