package types

import ierr "github.com/stewardly/stewardly/internal/errors"

// ReportFormat is the output format of a report execution
type ReportFormat string

const (
	ReportFormatPDF  ReportFormat = "pdf"
	ReportFormatCSV  ReportFormat = "csv"
	ReportFormatXLSX ReportFormat = "xlsx"
)

func (f ReportFormat) Validate() error {
	switch f {
	case ReportFormatPDF, ReportFormatCSV, ReportFormatXLSX:
		return nil
	default:
		return ierr.NewErrorf("unsupported report format: %s", f).
			WithHintf("valid formats are: %s, %s, %s", ReportFormatPDF, ReportFormatCSV, ReportFormatXLSX).
			Mark(ierr.ErrInvalidOperation)
	}
}

// ReportExecutionStatus is the lifecycle status of a report execution
type ReportExecutionStatus string

const (
	ReportExecutionStatusPending   ReportExecutionStatus = "pending"
	ReportExecutionStatusRunning   ReportExecutionStatus = "running"
	ReportExecutionStatusCompleted ReportExecutionStatus = "completed"
	ReportExecutionStatusFailed    ReportExecutionStatus = "failed"
	ReportExecutionStatusCanceled  ReportExecutionStatus = "canceled"
)

// IsTerminal reports whether the execution can no longer be canceled
func (s ReportExecutionStatus) IsTerminal() bool {
	switch s {
	case ReportExecutionStatusCompleted, ReportExecutionStatusFailed, ReportExecutionStatusCanceled:
		return true
	default:
		return false
	}
}
