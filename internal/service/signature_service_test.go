package service

import (
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stewardly/stewardly/internal/api/dto"
	"github.com/stewardly/stewardly/internal/domain/signature"
	"github.com/stewardly/stewardly/internal/testutil"
	"github.com/stewardly/stewardly/internal/types"
	"github.com/stretchr/testify/suite"
)

type SignatureServiceSuite struct {
	testutil.BaseServiceTestSuite
	service SignatureService
}

func TestSignatureService(t *testing.T) {
	suite.Run(t, new(SignatureServiceSuite))
}

func (s *SignatureServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewSignatureService(testServiceParams(&s.BaseServiceTestSuite))
}

func (s *SignatureServiceSuite) capture(objectKey string) dto.WorkflowResult {
	input := workflowInput(types.ActionSignatureCapture, "", dto.CaptureSignatureRequest{
		SignerName: "Pat Rivera",
		ObjectKey:  objectKey,
		JobID:      lo.ToPtr("job_01"),
	})
	return s.service.Execute(s.GetContext(), input)
}

func (s *SignatureServiceSuite) TestCaptureSignature() {
	result := s.capture("signatures/tenant/sig-1.png")

	s.True(result.Success, result.Error)
	s.NotEmpty(result.EntityID)

	sig, err := s.GetStores().SignatureRepo.Get(s.GetContext(), result.EntityID)
	s.NoError(err)
	s.Equal("Pat Rivera", sig.SignerName)
	s.Equal("signatures/tenant/sig-1.png", sig.ObjectKey)
	s.False(sig.CapturedAt.IsZero())
}

func (s *SignatureServiceSuite) TestCaptureRequiresObjectKey() {
	input := workflowInput(types.ActionSignatureCapture, "", dto.CaptureSignatureRequest{
		SignerName: "Pat Rivera",
	})
	result := s.service.Execute(s.GetContext(), input)

	s.False(result.Success)
	s.Contains(result.Error, "validation")
}

func (s *SignatureServiceSuite) TestDeleteSignature() {
	s.GetS3().PutObject("signatures/tenant/sig-1.png", []byte("png"))
	captured := s.capture("signatures/tenant/sig-1.png")
	s.True(captured.Success, captured.Error)

	result := s.service.Execute(s.GetContext(), workflowInput(types.ActionSignatureDelete, captured.EntityID, nil))

	s.True(result.Success, result.Error)
	s.False(s.GetS3().HasObject("signatures/tenant/sig-1.png"))

	_, err := s.GetStores().SignatureRepo.Get(s.GetContext(), captured.EntityID)
	s.Error(err)
}

// Object deletion failing must not resurrect the row; the orphaned image is
// left for a later cleanup.
func (s *SignatureServiceSuite) TestDeleteSignatureObjectFailureStillDeletesRow() {
	s.GetS3().PutObject("signatures/tenant/sig-1.png", []byte("png"))
	s.GetS3().FailKey("signatures/tenant/sig-1.png")
	captured := s.capture("signatures/tenant/sig-1.png")
	s.True(captured.Success, captured.Error)

	result := s.service.Execute(s.GetContext(), workflowInput(types.ActionSignatureDelete, captured.EntityID, nil))

	s.True(result.Success, result.Error)

	_, err := s.GetStores().SignatureRepo.Get(s.GetContext(), captured.EntityID)
	s.Error(err)
}

func (s *SignatureServiceSuite) TestDeleteRequiresEntityID() {
	result := s.service.Execute(s.GetContext(), workflowInput(types.ActionSignatureDelete, "", nil))

	s.False(result.Success)
	s.Contains(result.Error, "entity_id is required")
}

func (s *SignatureServiceSuite) seedExpired(objectKey string, expiresAt time.Time) *signature.Signature {
	sig := &signature.Signature{
		ID:         types.GenerateUUIDWithPrefix(types.UUID_PREFIX_SIGNATURE),
		SignerName: "Pat Rivera",
		ObjectKey:  objectKey,
		CapturedAt: expiresAt.Add(-24 * time.Hour),
		ExpiresAt:  lo.ToPtr(expiresAt),
		BaseModel:  types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().SignatureRepo.Create(s.GetContext(), sig))
	s.GetS3().PutObject(objectKey, []byte("png"))
	return sig
}

func (s *SignatureServiceSuite) TestCleanupExpired() {
	cutoff := s.GetNow()
	first := s.seedExpired("signatures/expired-1.png", cutoff.Add(-2*time.Hour))
	second := s.seedExpired("signatures/expired-2.png", cutoff.Add(-1*time.Hour))
	current := s.seedExpired("signatures/current.png", cutoff.Add(time.Hour))

	removed, err := s.service.CleanupExpired(s.GetContext(), cutoff, 100)
	s.NoError(err)
	s.Equal(2, removed)

	_, err = s.GetStores().SignatureRepo.Get(s.GetContext(), first.ID)
	s.Error(err)
	_, err = s.GetStores().SignatureRepo.Get(s.GetContext(), second.ID)
	s.Error(err)
	s.False(s.GetS3().HasObject("signatures/expired-1.png"))
	s.False(s.GetS3().HasObject("signatures/expired-2.png"))

	kept, err := s.GetStores().SignatureRepo.Get(s.GetContext(), current.ID)
	s.NoError(err)
	s.Equal(current.ID, kept.ID)
	s.True(s.GetS3().HasObject("signatures/current.png"))
}

// One failing object deletion is skipped; its row survives and the rest of
// the batch still proceeds.
func (s *SignatureServiceSuite) TestCleanupExpiredSkipsFailedObject() {
	cutoff := s.GetNow()
	first := s.seedExpired("signatures/expired-1.png", cutoff.Add(-3*time.Hour))
	stuck := s.seedExpired("signatures/expired-2.png", cutoff.Add(-2*time.Hour))
	third := s.seedExpired("signatures/expired-3.png", cutoff.Add(-1*time.Hour))
	s.GetS3().FailKey("signatures/expired-2.png")

	removed, err := s.service.CleanupExpired(s.GetContext(), cutoff, 100)
	s.NoError(err)
	s.Equal(2, removed)

	_, err = s.GetStores().SignatureRepo.Get(s.GetContext(), first.ID)
	s.Error(err)
	_, err = s.GetStores().SignatureRepo.Get(s.GetContext(), third.ID)
	s.Error(err)

	kept, err := s.GetStores().SignatureRepo.Get(s.GetContext(), stuck.ID)
	s.NoError(err)
	s.Equal(stuck.ID, kept.ID)
}

func (s *SignatureServiceSuite) TestCleanupExpiredHonorsLimit() {
	cutoff := s.GetNow()
	s.seedExpired("signatures/expired-1.png", cutoff.Add(-3*time.Hour))
	s.seedExpired("signatures/expired-2.png", cutoff.Add(-2*time.Hour))
	s.seedExpired("signatures/expired-3.png", cutoff.Add(-1*time.Hour))

	removed, err := s.service.CleanupExpired(s.GetContext(), cutoff, 2)
	s.NoError(err)
	s.Equal(2, removed)
}

func (s *SignatureServiceSuite) TestUnknownAction() {
	result := s.service.Execute(s.GetContext(), workflowInput("countersign", "", nil))

	s.False(result.Success)
	s.Equal("Unknown action: countersign", result.Error)
}
