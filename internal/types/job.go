package types

import ierr "github.com/stewardly/stewardly/internal/errors"

// JobStatus is the scheduling status of a field-service job
type JobStatus string

const (
	JobStatusScheduled  JobStatus = "scheduled"
	JobStatusInProgress JobStatus = "in_progress"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusCanceled   JobStatus = "canceled"
)

func (s JobStatus) Validate() error {
	switch s {
	case JobStatusScheduled, JobStatusInProgress, JobStatusCompleted, JobStatusCanceled:
		return nil
	default:
		return ierr.NewErrorf("invalid job status: %s", s).
			WithHint("Invalid job status").
			Mark(ierr.ErrValidation)
	}
}

// JobPriority is the urgency of a job
type JobPriority string

const (
	JobPriorityLow    JobPriority = "low"
	JobPriorityMedium JobPriority = "medium"
	JobPriorityHigh   JobPriority = "high"
	JobPriorityUrgent JobPriority = "urgent"
)
