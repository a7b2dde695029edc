package signature

import (
	"time"

	"github.com/stewardly/stewardly/internal/types"
)

// Signature is a captured e-signature whose image lives in object storage
// under ObjectKey. Rows past ExpiresAt are removed by the scheduled cleanup
// together with their stored object.
type Signature struct {
	ID         string     `db:"id" json:"id"`
	DocumentID *string    `db:"document_id" json:"document_id,omitempty"`
	JobID      *string    `db:"job_id" json:"job_id,omitempty"`
	SignerName string     `db:"signer_name" json:"signer_name"`
	ObjectKey  string     `db:"object_key" json:"object_key"`
	CapturedAt time.Time  `db:"captured_at" json:"captured_at"`
	ExpiresAt  *time.Time `db:"expires_at" json:"expires_at,omitempty"`
	types.BaseModel
}
