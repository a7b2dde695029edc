package job

import (
	"time"

	"github.com/stewardly/stewardly/internal/types"
)

// Job represents a field-service work order scheduled against a property
type Job struct {
	ID           string            `db:"id" json:"id"`
	JobNumber    string            `db:"job_number" json:"job_number"`
	Title        string            `db:"title" json:"title"`
	Description  string            `db:"description" json:"description,omitempty"`
	PropertyID   string            `db:"property_id" json:"property_id"`
	AssigneeID   *string           `db:"assignee_id" json:"assignee_id,omitempty"`
	JobStatus    types.JobStatus   `db:"job_status" json:"job_status"`
	Priority     types.JobPriority `db:"priority" json:"priority"`
	ScheduledFor *time.Time        `db:"scheduled_for" json:"scheduled_for,omitempty"`
	CompletedAt  *time.Time        `db:"completed_at" json:"completed_at,omitempty"`
	Metadata     types.Metadata    `db:"metadata" json:"metadata,omitempty"`
	types.BaseModel
}
