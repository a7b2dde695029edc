package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/stewardly/stewardly/internal/domain/notification"
	ierr "github.com/stewardly/stewardly/internal/errors"
	"github.com/stewardly/stewardly/internal/logger"
	"github.com/stewardly/stewardly/internal/postgres"
	"github.com/stewardly/stewardly/internal/types"
)

type notificationRepository struct {
	client postgres.IClient
	logger *logger.Logger
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(client postgres.IClient, logger *logger.Logger) notification.Repository {
	return &notificationRepository{client: client, logger: logger}
}

const notificationColumns = `
	id, recipient_id, channel, subject, body, state, sent_at, read_at,
	tenant_id, status, created_at, updated_at, created_by, updated_by`

func (r *notificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	r.logger.Debugw("creating notification",
		"notification_id", n.ID,
		"channel", n.Channel,
	)

	query := `
	INSERT INTO notifications (` + notificationColumns + `
	) VALUES (
		$1, $2, $3, $4, $5, $6, $7, $8,
		$9, $10, $11, $12, $13, $14
	)`

	_, err := r.client.Querier(ctx).ExecContext(ctx, query,
		n.ID, n.RecipientID, n.Channel, n.Subject, n.Body, n.State, n.SentAt, n.ReadAt,
		n.TenantID, n.Status, n.CreatedAt, n.UpdatedAt, n.CreatedBy, n.UpdatedBy,
	)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create notification").
			WithReportableDetails(map[string]any{
				"notification_id": n.ID,
			}).
			Mark(ierr.ErrDatabase)
	}

	return nil
}

func (r *notificationRepository) Get(ctx context.Context, id string) (*notification.Notification, error) {
	query := `
	SELECT ` + notificationColumns + `
	FROM notifications
	WHERE id = $1 AND tenant_id = $2 AND status = $3`

	var n notification.Notification
	err := sqlx.GetContext(ctx, r.client.Querier(ctx), &n, query,
		id, types.GetTenantID(ctx), types.StatusPublished)
	if err != nil {
		if ierr.Is(err, sql.ErrNoRows) {
			return nil, ierr.NewErrorf("notification %s not found", id).
				WithHint("Notification not found").
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get notification").
			Mark(ierr.ErrDatabase)
	}

	return &n, nil
}

func (r *notificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	query := `
	UPDATE notifications SET
		state = $1, sent_at = $2, read_at = $3, updated_at = $4, updated_by = $5
	WHERE id = $6 AND tenant_id = $7 AND status = $8`

	result, err := r.client.Querier(ctx).ExecContext(ctx, query,
		n.State, n.SentAt, n.ReadAt, n.UpdatedAt, n.UpdatedBy,
		n.ID, types.GetTenantID(ctx), types.StatusPublished,
	)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update notification").
			Mark(ierr.ErrDatabase)
	}

	return requireRowsAffected(result, "notification", n.ID)
}
