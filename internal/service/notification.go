package service

import (
	"context"
	"time"

	"github.com/stewardly/stewardly/internal/api/dto"
	ierr "github.com/stewardly/stewardly/internal/errors"
	"github.com/stewardly/stewardly/internal/types"
)

// NotificationService handles notification workflow invocations
type NotificationService interface {
	Execute(ctx context.Context, input dto.WorkflowInput) dto.NotificationWorkflowResult
}

type notificationService struct {
	ServiceParams
	handlers map[types.WorkflowAction]func(ctx context.Context, input dto.WorkflowInput) (dto.NotificationWorkflowResult, error)
}

func NewNotificationService(params ServiceParams) NotificationService {
	s := &notificationService{ServiceParams: params}
	s.handlers = map[types.WorkflowAction]func(ctx context.Context, input dto.WorkflowInput) (dto.NotificationWorkflowResult, error){
		types.ActionNotificationSend:     s.send,
		types.ActionNotificationMarkRead: s.markRead,
	}
	return s
}

func (s *notificationService) Execute(ctx context.Context, input dto.WorkflowInput) dto.NotificationWorkflowResult {
	if err := input.Validate(); err != nil {
		return dto.NotificationWorkflowResult{WorkflowResult: dto.FailureResult(err.Error())}
	}

	handler, ok := s.handlers[input.Action]
	if !ok {
		return dto.NotificationWorkflowResult{WorkflowResult: dto.FailureResult(unknownActionError(input.Action))}
	}

	result, err := handler(actorContext(ctx, input), input)
	if err != nil {
		return dto.NotificationWorkflowResult{WorkflowResult: dto.FailureResult(resolveError(err, s.Sentry))}
	}
	return result
}

func (s *notificationService) send(ctx context.Context, input dto.WorkflowInput) (dto.NotificationWorkflowResult, error) {
	req, err := decodeRequest[dto.SendNotificationRequest](input.Data)
	if err != nil {
		return dto.NotificationWorkflowResult{}, err
	}

	newNotification := req.ToNotification(types.GetDefaultBaseModel(ctx))
	sentAt := time.Now().UTC()
	newNotification.State = types.NotificationStatusSent
	newNotification.SentAt = &sentAt

	err = s.DB.WithTenantTx(ctx, input.TenantID, "notification.send", func(ctx context.Context) error {
		return s.NotificationRepo.Create(ctx, newNotification)
	})
	if err != nil {
		return dto.NotificationWorkflowResult{}, err
	}

	s.Logger.Infow("sent notification",
		"tenant_id", input.TenantID,
		"notification_id", newNotification.ID,
		"channel", newNotification.Channel,
		"recipient_id", newNotification.RecipientID,
	)

	return dto.NotificationWorkflowResult{
		WorkflowResult: dto.SuccessResult(newNotification.ID),
		Timestamp:      &sentAt,
	}, nil
}

func (s *notificationService) markRead(ctx context.Context, input dto.WorkflowInput) (dto.NotificationWorkflowResult, error) {
	if err := requireEntityID(input); err != nil {
		return dto.NotificationWorkflowResult{}, err
	}

	var readAt time.Time
	err := s.DB.WithTenantTx(ctx, input.TenantID, "notification.mark_read", func(ctx context.Context) error {
		existing, err := s.NotificationRepo.Get(ctx, input.EntityID)
		if err != nil {
			return err
		}
		if existing.State == types.NotificationStatusPending {
			return ierr.NewErrorf("notification %s has not been sent", existing.ID).
				WithHint("Only sent notifications can be marked read").
				Mark(ierr.ErrInvalidOperation)
		}

		// Already read, keep the original timestamp
		if existing.ReadAt != nil {
			readAt = *existing.ReadAt
			return nil
		}

		readAt = time.Now().UTC()
		existing.State = types.NotificationStatusRead
		existing.ReadAt = &readAt
		existing.UpdatedAt = readAt
		existing.UpdatedBy = input.ActorID
		return s.NotificationRepo.Update(ctx, existing)
	})
	if err != nil {
		return dto.NotificationWorkflowResult{}, err
	}

	return dto.NotificationWorkflowResult{
		WorkflowResult: dto.SuccessResult(input.EntityID),
		Timestamp:      &readAt,
	}, nil
}
