package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/stewardly/stewardly/internal/domain/tenant"
	ierr "github.com/stewardly/stewardly/internal/errors"
	"github.com/stewardly/stewardly/internal/logger"
	"github.com/stewardly/stewardly/internal/postgres"
)

type tenantRepository struct {
	client postgres.IClient
	logger *logger.Logger
}

// NewTenantRepository creates a new tenant repository
func NewTenantRepository(client postgres.IClient, logger *logger.Logger) tenant.Repository {
	return &tenantRepository{client: client, logger: logger}
}

func (r *tenantRepository) Create(ctx context.Context, t *tenant.Tenant) error {
	r.logger.Debugw("creating tenant", "tenant_id", t.ID, "name", t.Name)

	query := `
	INSERT INTO tenants (id, name, status, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5)`

	_, err := r.client.Querier(ctx).ExecContext(ctx, query,
		t.ID, t.Name, t.Status, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create tenant").
			WithReportableDetails(map[string]any{
				"tenant_id": t.ID,
				"name":      t.Name,
			}).
			Mark(ierr.ErrDatabase)
	}

	return nil
}

func (r *tenantRepository) Get(ctx context.Context, id string) (*tenant.Tenant, error) {
	query := `
	SELECT id, name, status, created_at, updated_at
	FROM tenants
	WHERE id = $1`

	var t tenant.Tenant
	err := sqlx.GetContext(ctx, r.client.Querier(ctx), &t, query, id)
	if err != nil {
		if ierr.Is(err, sql.ErrNoRows) {
			return nil, ierr.NewErrorf("tenant %s not found", id).
				WithHint("Tenant not found").
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get tenant").
			Mark(ierr.ErrDatabase)
	}

	return &t, nil
}

func (r *tenantRepository) Exists(ctx context.Context, id string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM tenants WHERE id = $1)`

	var exists bool
	err := sqlx.GetContext(ctx, r.client.Querier(ctx), &exists, query, id)
	if err != nil {
		return false, ierr.WithError(err).
			WithHint("Failed to check tenant existence").
			Mark(ierr.ErrDatabase)
	}

	return exists, nil
}
