package report

import (
	"time"

	"github.com/stewardly/stewardly/internal/types"
)

// Execution is one run of a report. Completion is finalized by a durable
// workflow step, never by an in-process timer, so a worker restart cannot
// lose the status transition.
type Execution struct {
	ID           string                      `db:"id" json:"id"`
	ReportKey    string                      `db:"report_key" json:"report_key"`
	Format       types.ReportFormat          `db:"format" json:"format"`
	State        types.ReportExecutionStatus `db:"state" json:"state"`
	Parameters   types.Metadata              `db:"parameters" json:"parameters,omitempty"`
	RequestedBy  string                      `db:"requested_by" json:"requested_by"`
	StartedAt    *time.Time                  `db:"started_at" json:"started_at,omitempty"`
	CompletedAt  *time.Time                  `db:"completed_at" json:"completed_at,omitempty"`
	FileURL      *string                     `db:"file_url" json:"file_url,omitempty"`
	ErrorMessage *string                     `db:"error_message" json:"error_message,omitempty"`
	types.BaseModel
}
