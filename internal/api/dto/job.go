package dto

import (
	"time"

	"github.com/stewardly/stewardly/internal/domain/job"
	"github.com/stewardly/stewardly/internal/types"
	"github.com/stewardly/stewardly/internal/validator"
)

type CreateJobRequest struct {
	Title        string            `json:"title" validate:"required"`
	Description  string            `json:"description,omitempty"`
	PropertyID   string            `json:"property_id" validate:"required"`
	AssigneeID   *string           `json:"assignee_id,omitempty"`
	Priority     types.JobPriority `json:"priority,omitempty"`
	ScheduledFor *time.Time        `json:"scheduled_for,omitempty"`
	Year         int               `json:"year,omitempty"`
	Metadata     types.Metadata    `json:"metadata,omitempty"`
}

func (r *CreateJobRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// ToJob builds the domain job; the job number is assigned by the sequence
// allocator inside the creation transaction.
func (r *CreateJobRequest) ToJob(baseModel types.BaseModel) *job.Job {
	priority := r.Priority
	if priority == "" {
		priority = types.JobPriorityMedium
	}

	return &job.Job{
		ID:           types.GenerateUUIDWithPrefix(types.UUID_PREFIX_JOB),
		Title:        r.Title,
		Description:  r.Description,
		PropertyID:   r.PropertyID,
		AssigneeID:   r.AssigneeID,
		JobStatus:    types.JobStatusScheduled,
		Priority:     priority,
		ScheduledFor: r.ScheduledFor,
		Metadata:     r.Metadata,
		BaseModel:    baseModel,
	}
}

type UpdateJobRequest struct {
	Title        *string            `json:"title,omitempty"`
	Description  *string            `json:"description,omitempty"`
	AssigneeID   *string            `json:"assignee_id,omitempty"`
	JobStatus    *types.JobStatus   `json:"job_status,omitempty"`
	Priority     *types.JobPriority `json:"priority,omitempty"`
	ScheduledFor *time.Time         `json:"scheduled_for,omitempty"`
	Metadata     types.Metadata     `json:"metadata,omitempty"`
}

func (r *UpdateJobRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.JobStatus != nil {
		return r.JobStatus.Validate()
	}
	return nil
}
