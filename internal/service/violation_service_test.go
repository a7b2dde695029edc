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

type ViolationServiceSuite struct {
	testutil.BaseServiceTestSuite
	service ViolationService
}

func TestViolationService(t *testing.T) {
	suite.Run(t, new(ViolationServiceSuite))
}

func (s *ViolationServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewViolationService(testServiceParams(&s.BaseServiceTestSuite))
}

func (s *ViolationServiceSuite) createViolation(category string) dto.ViolationWorkflowResult {
	input := workflowInput(types.ActionViolationCreate, "", dto.CreateViolationRequest{
		PropertyID: "prop_1",
		Category:   category,
		Year:       2025,
	})
	return s.service.Execute(s.GetContext(), input)
}

func (s *ViolationServiceSuite) TestCreateViolation() {
	result := s.createViolation("landscaping")

	s.True(result.Success, result.Error)
	s.Equal("VIO-2025-000001", result.ViolationNumber)

	created, err := s.GetStores().ViolationRepo.Get(s.GetContext(), result.EntityID)
	s.NoError(err)
	s.Equal("landscaping", created.Category)
	s.Equal(types.ViolationStatusOpen, created.ViolationStatus)
	s.Equal(types.ViolationSeverityMinor, created.Severity)
	s.WithinDuration(time.Now().UTC(), created.ObservedAt, time.Minute)
}

func (s *ViolationServiceSuite) TestCreateViolationValidation() {
	input := workflowInput(types.ActionViolationCreate, "", dto.CreateViolationRequest{
		Category: "parking",
	})

	result := s.service.Execute(s.GetContext(), input)

	s.False(result.Success)
	s.NotEmpty(result.Error)
}

func (s *ViolationServiceSuite) TestUpdateViolationResolution() {
	created := s.createViolation("parking")

	resolved := types.ViolationStatusResolved
	input := workflowInput(types.ActionViolationUpdate, created.EntityID, dto.UpdateViolationRequest{
		ViolationStatus: &resolved,
	})
	result := s.service.Execute(s.GetContext(), input)

	s.True(result.Success, result.Error)

	updated, err := s.GetStores().ViolationRepo.Get(s.GetContext(), created.EntityID)
	s.NoError(err)
	s.Equal(types.ViolationStatusResolved, updated.ViolationStatus)
	s.NotNil(updated.ResolvedAt)
}

func (s *ViolationServiceSuite) TestUpdateViolationSeverity() {
	created := s.createViolation("noise")

	major := types.ViolationSeverityMajor
	input := workflowInput(types.ActionViolationUpdate, created.EntityID, dto.UpdateViolationRequest{
		Severity:    &major,
		Description: lo.ToPtr("Repeated complaints from neighbors"),
	})
	result := s.service.Execute(s.GetContext(), input)

	s.True(result.Success, result.Error)

	updated, err := s.GetStores().ViolationRepo.Get(s.GetContext(), created.EntityID)
	s.NoError(err)
	s.Equal(types.ViolationSeverityMajor, updated.Severity)
	s.Equal("Repeated complaints from neighbors", updated.Description)
	s.Nil(updated.ResolvedAt)
}

func (s *ViolationServiceSuite) TestDeleteViolation() {
	created := s.createViolation("trash")

	result := s.service.Execute(s.GetContext(), workflowInput(types.ActionViolationDelete, created.EntityID, nil))
	s.True(result.Success, result.Error)

	_, err := s.GetStores().ViolationRepo.Get(s.GetContext(), created.EntityID)
	s.Error(err)
}

// Violation numbers come from the max suffix, so a deleted violation's
// number is never reissued.
func (s *ViolationServiceSuite) TestDeletedViolationNumberNeverReissued() {
	first := s.createViolation("landscaping")
	s.Equal("VIO-2025-000001", first.ViolationNumber)

	deleted := s.service.Execute(s.GetContext(), workflowInput(types.ActionViolationDelete, first.EntityID, nil))
	s.True(deleted.Success, deleted.Error)

	second := s.createViolation("parking")
	s.Equal("VIO-2025-000002", second.ViolationNumber)
}

func (s *ViolationServiceSuite) TestUnknownAction() {
	result := s.service.Execute(s.GetContext(), workflowInput("escalate", "", nil))

	s.False(result.Success)
	s.Equal("Unknown action: escalate", result.Error)
}
