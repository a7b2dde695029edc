package service

import (
	"testing"

	"github.com/stewardly/stewardly/internal/api/dto"
	"github.com/stewardly/stewardly/internal/domain/notification"
	"github.com/stewardly/stewardly/internal/testutil"
	"github.com/stewardly/stewardly/internal/types"
	"github.com/stretchr/testify/suite"
)

type NotificationServiceSuite struct {
	testutil.BaseServiceTestSuite
	service NotificationService
}

func TestNotificationService(t *testing.T) {
	suite.Run(t, new(NotificationServiceSuite))
}

func (s *NotificationServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewNotificationService(testServiceParams(&s.BaseServiceTestSuite))
}

func (s *NotificationServiceSuite) send() dto.NotificationWorkflowResult {
	input := workflowInput(types.ActionNotificationSend, "", dto.SendNotificationRequest{
		RecipientID: "user_42",
		Channel:     types.NotificationChannelEmail,
		Subject:     "Invoice finalized",
		Body:        "Invoice INV-2025-000001 has been finalized.",
	})
	return s.service.Execute(s.GetContext(), input)
}

func (s *NotificationServiceSuite) TestSendNotification() {
	result := s.send()

	s.True(result.Success, result.Error)
	s.NotEmpty(result.EntityID)
	s.NotNil(result.Timestamp)

	sent, err := s.GetStores().NotificationRepo.Get(s.GetContext(), result.EntityID)
	s.NoError(err)
	s.Equal(types.NotificationStatusSent, sent.State)
	s.NotNil(sent.SentAt)
	s.Equal(*result.Timestamp, *sent.SentAt)
	s.Nil(sent.ReadAt)
}

func (s *NotificationServiceSuite) TestSendValidation() {
	input := workflowInput(types.ActionNotificationSend, "", dto.SendNotificationRequest{
		RecipientID: "user_42",
		Channel:     types.NotificationChannelEmail,
	})
	result := s.service.Execute(s.GetContext(), input)

	s.False(result.Success)
	s.Contains(result.Error, "validation")
}

func (s *NotificationServiceSuite) TestMarkRead() {
	sent := s.send()
	s.True(sent.Success, sent.Error)

	result := s.service.Execute(s.GetContext(), workflowInput(types.ActionNotificationMarkRead, sent.EntityID, nil))

	s.True(result.Success, result.Error)
	s.NotNil(result.Timestamp)

	read, err := s.GetStores().NotificationRepo.Get(s.GetContext(), sent.EntityID)
	s.NoError(err)
	s.Equal(types.NotificationStatusRead, read.State)
	s.NotNil(read.ReadAt)
	s.Equal(*result.Timestamp, *read.ReadAt)
}

// A second mark-read succeeds but keeps the original read timestamp
func (s *NotificationServiceSuite) TestMarkReadIdempotent() {
	sent := s.send()
	s.True(sent.Success, sent.Error)

	first := s.service.Execute(s.GetContext(), workflowInput(types.ActionNotificationMarkRead, sent.EntityID, nil))
	s.True(first.Success, first.Error)

	second := s.service.Execute(s.GetContext(), workflowInput(types.ActionNotificationMarkRead, sent.EntityID, nil))
	s.True(second.Success, second.Error)
	s.Equal(*first.Timestamp, *second.Timestamp)

	read, err := s.GetStores().NotificationRepo.Get(s.GetContext(), sent.EntityID)
	s.NoError(err)
	s.Equal(*first.Timestamp, *read.ReadAt)
}

func (s *NotificationServiceSuite) TestMarkReadPendingRejected() {
	pending := &notification.Notification{
		ID:          types.GenerateUUIDWithPrefix(types.UUID_PREFIX_NOTIFICATION),
		RecipientID: "user_42",
		Channel:     types.NotificationChannelInApp,
		Subject:     "Queued",
		State:       types.NotificationStatusPending,
		BaseModel:   types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().NotificationRepo.Create(s.GetContext(), pending))

	result := s.service.Execute(s.GetContext(), workflowInput(types.ActionNotificationMarkRead, pending.ID, nil))

	s.False(result.Success)
	s.Contains(result.Error, "has not been sent")

	unchanged, err := s.GetStores().NotificationRepo.Get(s.GetContext(), pending.ID)
	s.NoError(err)
	s.Equal(types.NotificationStatusPending, unchanged.State)
	s.Nil(unchanged.ReadAt)
}

func (s *NotificationServiceSuite) TestMarkReadRequiresEntityID() {
	result := s.service.Execute(s.GetContext(), workflowInput(types.ActionNotificationMarkRead, "", nil))

	s.False(result.Success)
	s.Contains(result.Error, "entity_id is required")
}

func (s *NotificationServiceSuite) TestMarkReadMissingNotification() {
	result := s.service.Execute(s.GetContext(), workflowInput(types.ActionNotificationMarkRead, "notif_missing", nil))

	s.False(result.Success)
	s.Contains(result.Error, "not found")
}

func (s *NotificationServiceSuite) TestUnknownAction() {
	result := s.service.Execute(s.GetContext(), workflowInput("broadcast", "", nil))

	s.False(result.Success)
	s.Equal("Unknown action: broadcast", result.Error)
}
