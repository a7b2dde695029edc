package activities

import (
	"context"

	"github.com/stewardly/stewardly/internal/api/dto"
	"github.com/stewardly/stewardly/internal/service"
)

// JobActivities contains all job-related activities
type JobActivities struct {
	jobService service.JobService
}

// NewJobActivities creates a new JobActivities instance
func NewJobActivities(jobService service.JobService) *JobActivities {
	return &JobActivities{jobService: jobService}
}

// ExecuteJobAction dispatches one job action to the service layer. Business
// failures come back inside the result, so the workflow never retries them.
func (a *JobActivities) ExecuteJobAction(ctx context.Context, input dto.WorkflowInput) (*dto.JobWorkflowResult, error) {
	result := a.jobService.Execute(ctx, input)
	return &result, nil
}
