package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/stewardly/stewardly/internal/domain/violation"
	ierr "github.com/stewardly/stewardly/internal/errors"
	"github.com/stewardly/stewardly/internal/logger"
	"github.com/stewardly/stewardly/internal/postgres"
	"github.com/stewardly/stewardly/internal/types"
)

type violationRepository struct {
	client postgres.IClient
	logger *logger.Logger
}

// NewViolationRepository creates a new violation repository
func NewViolationRepository(client postgres.IClient, logger *logger.Logger) violation.Repository {
	return &violationRepository{client: client, logger: logger}
}

const violationColumns = `
	id, violation_number, property_id, owner_id, category, description,
	severity, violation_status, observed_at, resolved_at, metadata,
	tenant_id, status, created_at, updated_at, created_by, updated_by`

func (r *violationRepository) Create(ctx context.Context, v *violation.Violation) error {
	r.logger.Debugw("creating violation",
		"violation_id", v.ID,
		"violation_number", v.ViolationNumber,
	)

	query := `
	INSERT INTO violations (` + violationColumns + `
	) VALUES (
		$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11,
		$12, $13, $14, $15, $16, $17
	)`

	_, err := r.client.Querier(ctx).ExecContext(ctx, query,
		v.ID, v.ViolationNumber, v.PropertyID, v.OwnerID, v.Category, v.Description,
		v.Severity, v.ViolationStatus, v.ObservedAt, v.ResolvedAt, v.Metadata,
		v.TenantID, v.Status, v.CreatedAt, v.UpdatedAt, v.CreatedBy, v.UpdatedBy,
	)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create violation").
			WithReportableDetails(map[string]any{
				"violation_id":     v.ID,
				"violation_number": v.ViolationNumber,
			}).
			Mark(ierr.ErrDatabase)
	}

	return nil
}

func (r *violationRepository) Get(ctx context.Context, id string) (*violation.Violation, error) {
	query := `
	SELECT ` + violationColumns + `
	FROM violations
	WHERE id = $1 AND tenant_id = $2 AND status = $3`

	var v violation.Violation
	err := sqlx.GetContext(ctx, r.client.Querier(ctx), &v, query,
		id, types.GetTenantID(ctx), types.StatusPublished)
	if err != nil {
		if ierr.Is(err, sql.ErrNoRows) {
			return nil, ierr.NewErrorf("violation %s not found", id).
				WithHint("Violation not found").
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get violation").
			Mark(ierr.ErrDatabase)
	}

	return &v, nil
}

func (r *violationRepository) Update(ctx context.Context, v *violation.Violation) error {
	query := `
	UPDATE violations SET
		description = $1, severity = $2, violation_status = $3,
		resolved_at = $4, metadata = $5, updated_at = $6, updated_by = $7
	WHERE id = $8 AND tenant_id = $9 AND status = $10`

	result, err := r.client.Querier(ctx).ExecContext(ctx, query,
		v.Description, v.Severity, v.ViolationStatus,
		v.ResolvedAt, v.Metadata, v.UpdatedAt, v.UpdatedBy,
		v.ID, types.GetTenantID(ctx), types.StatusPublished,
	)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update violation").
			Mark(ierr.ErrDatabase)
	}

	return requireRowsAffected(result, "violation", v.ID)
}

func (r *violationRepository) Delete(ctx context.Context, id string) error {
	query := `
	UPDATE violations SET status = $1, updated_at = NOW(), updated_by = $2
	WHERE id = $3 AND tenant_id = $4 AND status = $5`

	result, err := r.client.Querier(ctx).ExecContext(ctx, query,
		types.StatusDeleted, types.GetUserID(ctx),
		id, types.GetTenantID(ctx), types.StatusPublished,
	)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to delete violation").
			Mark(ierr.ErrDatabase)
	}

	return requireRowsAffected(result, "violation", id)
}

func (r *violationRepository) CountNumbersWithPrefix(ctx context.Context, prefix string) (int64, error) {
	query := `
	SELECT COUNT(*) FROM violations
	WHERE tenant_id = $1 AND violation_number LIKE $2 || '%'`

	var count int64
	err := sqlx.GetContext(ctx, r.client.Querier(ctx), &count, query,
		types.GetTenantID(ctx), prefix)
	if err != nil {
		return 0, ierr.WithError(err).
			WithHint("Failed to count violation numbers").
			Mark(ierr.ErrDatabase)
	}

	return count, nil
}

// MaxNumberWithPrefix scans all rows regardless of status; the allocator
// relies on this so numbers of deleted violations are never reissued
func (r *violationRepository) MaxNumberWithPrefix(ctx context.Context, prefix string) (string, error) {
	query := `
	SELECT COALESCE(MAX(violation_number), '') FROM violations
	WHERE tenant_id = $1 AND violation_number LIKE $2 || '%'`

	var max string
	err := sqlx.GetContext(ctx, r.client.Querier(ctx), &max, query,
		types.GetTenantID(ctx), prefix)
	if err != nil {
		return "", ierr.WithError(err).
			WithHint("Failed to get max violation number").
			Mark(ierr.ErrDatabase)
	}

	return max, nil
}
