package service

import (
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stewardly/stewardly/internal/api/dto"
	"github.com/stewardly/stewardly/internal/testutil"
	"github.com/stewardly/stewardly/internal/types"
	"github.com/stretchr/testify/suite"
)

type JobServiceSuite struct {
	testutil.BaseServiceTestSuite
	service JobService
}

func TestJobService(t *testing.T) {
	suite.Run(t, new(JobServiceSuite))
}

func (s *JobServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewJobService(testServiceParams(&s.BaseServiceTestSuite))
}

func (s *JobServiceSuite) createJob(title string) dto.JobWorkflowResult {
	input := workflowInput(types.ActionJobCreate, "", dto.CreateJobRequest{
		Title:      title,
		PropertyID: "prop_1",
		Year:       2025,
	})
	return s.service.Execute(s.GetContext(), input)
}

func (s *JobServiceSuite) TestCreateJob() {
	result := s.createJob("Fix irrigation leak")

	s.True(result.Success, result.Error)
	s.Equal("JOB-2025-00001", result.JobNumber)
	s.NotEmpty(result.EntityID)

	created, err := s.GetStores().JobRepo.Get(s.GetContext(), result.EntityID)
	s.NoError(err)
	s.Equal("Fix irrigation leak", created.Title)
	s.Equal(types.JobStatusScheduled, created.JobStatus)
	s.Equal(types.JobPriorityMedium, created.Priority)
	s.Equal(types.DefaultTenantID, created.TenantID)
}

func (s *JobServiceSuite) TestCreateJobSequentialNumbers() {
	first := s.createJob("First")
	second := s.createJob("Second")

	s.Equal("JOB-2025-00001", first.JobNumber)
	s.Equal("JOB-2025-00002", second.JobNumber)
}

func (s *JobServiceSuite) TestCreateJobValidation() {
	input := workflowInput(types.ActionJobCreate, "", dto.CreateJobRequest{
		PropertyID: "prop_1",
	})

	result := s.service.Execute(s.GetContext(), input)

	s.False(result.Success)
	s.NotEmpty(result.Error)
}

func (s *JobServiceSuite) TestUpdateJob() {
	created := s.createJob("Trim hedges")

	completed := types.JobStatusCompleted
	input := workflowInput(types.ActionJobUpdate, created.EntityID, dto.UpdateJobRequest{
		Title:     lo.ToPtr("Trim hedges, north side"),
		JobStatus: &completed,
	})
	result := s.service.Execute(s.GetContext(), input)

	s.True(result.Success, result.Error)

	updated, err := s.GetStores().JobRepo.Get(s.GetContext(), created.EntityID)
	s.NoError(err)
	s.Equal("Trim hedges, north side", updated.Title)
	s.Equal(types.JobStatusCompleted, updated.JobStatus)
	s.NotNil(updated.CompletedAt)
	s.WithinDuration(time.Now().UTC(), *updated.CompletedAt, time.Minute)
}

func (s *JobServiceSuite) TestUpdateJobRequiresEntityID() {
	input := workflowInput(types.ActionJobUpdate, "", dto.UpdateJobRequest{
		Title: lo.ToPtr("No target"),
	})

	result := s.service.Execute(s.GetContext(), input)

	s.False(result.Success)
	s.Contains(result.Error, "entity_id is required")
}

func (s *JobServiceSuite) TestUpdateMissingJob() {
	input := workflowInput(types.ActionJobUpdate, "job_missing", dto.UpdateJobRequest{
		Title: lo.ToPtr("Ghost"),
	})

	result := s.service.Execute(s.GetContext(), input)

	s.False(result.Success)
	s.Contains(result.Error, "not found")
}

func (s *JobServiceSuite) TestDeleteJob() {
	created := s.createJob("Replace pool filter")

	result := s.service.Execute(s.GetContext(), workflowInput(types.ActionJobDelete, created.EntityID, nil))
	s.True(result.Success, result.Error)

	_, err := s.GetStores().JobRepo.Get(s.GetContext(), created.EntityID)
	s.Error(err)
}

// Soft-deleted jobs still occupy their number: the count-based sequence sees
// them and the next creation moves on.
func (s *JobServiceSuite) TestDeletedJobNumberNotReissued() {
	first := s.createJob("First")
	s.Equal("JOB-2025-00001", first.JobNumber)

	deleted := s.service.Execute(s.GetContext(), workflowInput(types.ActionJobDelete, first.EntityID, nil))
	s.True(deleted.Success, deleted.Error)

	second := s.createJob("Second")
	s.Equal("JOB-2025-00002", second.JobNumber)
}

func (s *JobServiceSuite) TestUnknownAction() {
	result := s.service.Execute(s.GetContext(), workflowInput("explode", "", nil))

	s.False(result.Success)
	s.Equal("Unknown action: explode", result.Error)
}

func (s *JobServiceSuite) TestMissingTenant() {
	input := workflowInput(types.ActionJobCreate, "", dto.CreateJobRequest{
		Title:      "No tenant",
		PropertyID: "prop_1",
	})
	input.TenantID = ""

	result := s.service.Execute(s.GetContext(), input)

	s.False(result.Success)
	s.Contains(result.Error, "tenant_id is required")
}
