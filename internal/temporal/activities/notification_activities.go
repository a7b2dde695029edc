package activities

import (
	"context"

	"github.com/stewardly/stewardly/internal/api/dto"
	"github.com/stewardly/stewardly/internal/service"
)

// NotificationActivities contains all notification-related activities
type NotificationActivities struct {
	notificationService service.NotificationService
}

// NewNotificationActivities creates a new NotificationActivities instance
func NewNotificationActivities(notificationService service.NotificationService) *NotificationActivities {
	return &NotificationActivities{notificationService: notificationService}
}

// ExecuteNotificationAction dispatches one notification action to the service layer
func (a *NotificationActivities) ExecuteNotificationAction(ctx context.Context, input dto.WorkflowInput) (*dto.NotificationWorkflowResult, error) {
	result := a.notificationService.Execute(ctx, input)
	return &result, nil
}
