package dto

import (
	"github.com/stewardly/stewardly/internal/domain/notification"
	"github.com/stewardly/stewardly/internal/types"
	"github.com/stewardly/stewardly/internal/validator"
)

type SendNotificationRequest struct {
	RecipientID string                    `json:"recipient_id" validate:"required"`
	Channel     types.NotificationChannel `json:"channel" validate:"required"`
	Subject     string                    `json:"subject" validate:"required"`
	Body        string                    `json:"body,omitempty"`
}

func (r *SendNotificationRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *SendNotificationRequest) ToNotification(baseModel types.BaseModel) *notification.Notification {
	return &notification.Notification{
		ID:          types.GenerateUUIDWithPrefix(types.UUID_PREFIX_NOTIFICATION),
		RecipientID: r.RecipientID,
		Channel:     r.Channel,
		Subject:     r.Subject,
		Body:        r.Body,
		State:       types.NotificationStatusPending,
		BaseModel:   baseModel,
	}
}
