package violation

import (
	"time"

	"github.com/stewardly/stewardly/internal/types"
)

// Violation represents an HOA covenant violation recorded against a property
type Violation struct {
	ID              string                  `db:"id" json:"id"`
	ViolationNumber string                  `db:"violation_number" json:"violation_number"`
	PropertyID      string                  `db:"property_id" json:"property_id"`
	OwnerID         *string                 `db:"owner_id" json:"owner_id,omitempty"`
	Category        string                  `db:"category" json:"category"`
	Description     string                  `db:"description" json:"description,omitempty"`
	Severity        types.ViolationSeverity `db:"severity" json:"severity"`
	ViolationStatus types.ViolationStatus   `db:"violation_status" json:"violation_status"`
	ObservedAt      time.Time               `db:"observed_at" json:"observed_at"`
	ResolvedAt      *time.Time              `db:"resolved_at" json:"resolved_at,omitempty"`
	Metadata        types.Metadata          `db:"metadata" json:"metadata,omitempty"`
	types.BaseModel
}
