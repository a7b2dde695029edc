package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/stewardly/stewardly/internal/domain/checklist"
	ierr "github.com/stewardly/stewardly/internal/errors"
	"github.com/stewardly/stewardly/internal/logger"
	"github.com/stewardly/stewardly/internal/postgres"
	"github.com/stewardly/stewardly/internal/types"
)

type checklistRepository struct {
	client postgres.IClient
	logger *logger.Logger
}

// NewChecklistRepository creates a new checklist repository
func NewChecklistRepository(client postgres.IClient, logger *logger.Logger) checklist.Repository {
	return &checklistRepository{client: client, logger: logger}
}

const checklistColumns = `
	id, job_id, name, metadata,
	tenant_id, status, created_at, updated_at, created_by, updated_by`

const checklistItemColumns = `
	id, checklist_id, title, position, completed_at, completed_by,
	tenant_id, status, created_at, updated_at, created_by, updated_by`

func (r *checklistRepository) CreateWithItems(ctx context.Context, cl *checklist.Checklist) error {
	r.logger.Debugw("creating checklist",
		"checklist_id", cl.ID,
		"items", len(cl.Items),
	)

	query := `
	INSERT INTO checklists (` + checklistColumns + `
	) VALUES (
		$1, $2, $3, $4,
		$5, $6, $7, $8, $9, $10
	)`

	_, err := r.client.Querier(ctx).ExecContext(ctx, query,
		cl.ID, cl.JobID, cl.Name, cl.Metadata,
		cl.TenantID, cl.Status, cl.CreatedAt, cl.UpdatedAt, cl.CreatedBy, cl.UpdatedBy,
	)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create checklist").
			WithReportableDetails(map[string]any{
				"checklist_id": cl.ID,
			}).
			Mark(ierr.ErrDatabase)
	}

	return r.AddItems(ctx, cl.ID, cl.Items)
}

func (r *checklistRepository) Get(ctx context.Context, id string) (*checklist.Checklist, error) {
	query := `
	SELECT ` + checklistColumns + `
	FROM checklists
	WHERE id = $1 AND tenant_id = $2 AND status = $3`

	var cl checklist.Checklist
	err := sqlx.GetContext(ctx, r.client.Querier(ctx), &cl, query,
		id, types.GetTenantID(ctx), types.StatusPublished)
	if err != nil {
		if ierr.Is(err, sql.ErrNoRows) {
			return nil, ierr.NewErrorf("checklist %s not found", id).
				WithHint("Checklist not found").
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get checklist").
			Mark(ierr.ErrDatabase)
	}

	itemsQuery := `
	SELECT ` + checklistItemColumns + `
	FROM checklist_items
	WHERE checklist_id = $1 AND tenant_id = $2 AND status = $3
	ORDER BY position, id`

	err = sqlx.SelectContext(ctx, r.client.Querier(ctx), &cl.Items, itemsQuery,
		id, types.GetTenantID(ctx), types.StatusPublished)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to get checklist items").
			Mark(ierr.ErrDatabase)
	}

	return &cl, nil
}

func (r *checklistRepository) AddItems(ctx context.Context, checklistID string, items []*checklist.Item) error {
	query := `
	INSERT INTO checklist_items (` + checklistItemColumns + `
	) VALUES (
		$1, $2, $3, $4, $5, $6,
		$7, $8, $9, $10, $11, $12
	)`

	for _, item := range items {
		_, err := r.client.Querier(ctx).ExecContext(ctx, query,
			item.ID, checklistID, item.Title, item.Position, item.CompletedAt, item.CompletedBy,
			item.TenantID, item.Status, item.CreatedAt, item.UpdatedAt, item.CreatedBy, item.UpdatedBy,
		)
		if err != nil {
			return ierr.WithError(err).
				WithHint("Failed to create checklist item").
				WithReportableDetails(map[string]any{
					"checklist_id": checklistID,
					"item_id":      item.ID,
				}).
				Mark(ierr.ErrDatabase)
		}
	}

	return nil
}

func (r *checklistRepository) UpdateItem(ctx context.Context, item *checklist.Item) error {
	query := `
	UPDATE checklist_items SET
		title = $1, position = $2, completed_at = $3, completed_by = $4,
		updated_at = $5, updated_by = $6
	WHERE id = $7 AND tenant_id = $8 AND status = $9`

	result, err := r.client.Querier(ctx).ExecContext(ctx, query,
		item.Title, item.Position, item.CompletedAt, item.CompletedBy,
		item.UpdatedAt, item.UpdatedBy,
		item.ID, types.GetTenantID(ctx), types.StatusPublished,
	)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update checklist item").
			Mark(ierr.ErrDatabase)
	}

	return requireRowsAffected(result, "checklist item", item.ID)
}

func (r *checklistRepository) Delete(ctx context.Context, id string) error {
	query := `
	UPDATE checklists SET status = $1, updated_at = NOW(), updated_by = $2
	WHERE id = $3 AND tenant_id = $4 AND status = $5`

	result, err := r.client.Querier(ctx).ExecContext(ctx, query,
		types.StatusDeleted, types.GetUserID(ctx),
		id, types.GetTenantID(ctx), types.StatusPublished,
	)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to delete checklist").
			Mark(ierr.ErrDatabase)
	}
	if err := requireRowsAffected(result, "checklist", id); err != nil {
		return err
	}

	itemsQuery := `
	UPDATE checklist_items SET status = $1, updated_at = NOW(), updated_by = $2
	WHERE checklist_id = $3 AND tenant_id = $4 AND status = $5`

	_, err = r.client.Querier(ctx).ExecContext(ctx, itemsQuery,
		types.StatusDeleted, types.GetUserID(ctx),
		id, types.GetTenantID(ctx), types.StatusPublished,
	)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to delete checklist items").
			Mark(ierr.ErrDatabase)
	}

	return nil
}
