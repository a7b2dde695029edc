package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/stewardly/stewardly/internal/domain/job"
	ierr "github.com/stewardly/stewardly/internal/errors"
	"github.com/stewardly/stewardly/internal/logger"
	"github.com/stewardly/stewardly/internal/postgres"
	"github.com/stewardly/stewardly/internal/types"
)

type jobRepository struct {
	client postgres.IClient
	logger *logger.Logger
}

// NewJobRepository creates a new job repository
func NewJobRepository(client postgres.IClient, logger *logger.Logger) job.Repository {
	return &jobRepository{client: client, logger: logger}
}

const jobColumns = `
	id, job_number, title, description, property_id, assignee_id,
	job_status, priority, scheduled_for, completed_at, metadata,
	tenant_id, status, created_at, updated_at, created_by, updated_by`

func (r *jobRepository) Create(ctx context.Context, j *job.Job) error {
	r.logger.Debugw("creating job", "job_id", j.ID, "job_number", j.JobNumber)

	query := `
	INSERT INTO jobs (` + jobColumns + `
	) VALUES (
		$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11,
		$12, $13, $14, $15, $16, $17
	)`

	_, err := r.client.Querier(ctx).ExecContext(ctx, query,
		j.ID, j.JobNumber, j.Title, j.Description, j.PropertyID, j.AssigneeID,
		j.JobStatus, j.Priority, j.ScheduledFor, j.CompletedAt, j.Metadata,
		j.TenantID, j.Status, j.CreatedAt, j.UpdatedAt, j.CreatedBy, j.UpdatedBy,
	)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create job").
			WithReportableDetails(map[string]any{
				"job_id":     j.ID,
				"job_number": j.JobNumber,
			}).
			Mark(ierr.ErrDatabase)
	}

	return nil
}

func (r *jobRepository) Get(ctx context.Context, id string) (*job.Job, error) {
	query := `
	SELECT ` + jobColumns + `
	FROM jobs
	WHERE id = $1 AND tenant_id = $2 AND status = $3`

	var j job.Job
	err := sqlx.GetContext(ctx, r.client.Querier(ctx), &j, query,
		id, types.GetTenantID(ctx), types.StatusPublished)
	if err != nil {
		if ierr.Is(err, sql.ErrNoRows) {
			return nil, ierr.NewErrorf("job %s not found", id).
				WithHint("Job not found").
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get job").
			Mark(ierr.ErrDatabase)
	}

	return &j, nil
}

func (r *jobRepository) Update(ctx context.Context, j *job.Job) error {
	query := `
	UPDATE jobs SET
		title = $1, description = $2, property_id = $3, assignee_id = $4,
		job_status = $5, priority = $6, scheduled_for = $7, completed_at = $8,
		metadata = $9, updated_at = $10, updated_by = $11
	WHERE id = $12 AND tenant_id = $13 AND status = $14`

	result, err := r.client.Querier(ctx).ExecContext(ctx, query,
		j.Title, j.Description, j.PropertyID, j.AssigneeID,
		j.JobStatus, j.Priority, j.ScheduledFor, j.CompletedAt,
		j.Metadata, j.UpdatedAt, j.UpdatedBy,
		j.ID, types.GetTenantID(ctx), types.StatusPublished,
	)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update job").
			Mark(ierr.ErrDatabase)
	}

	return requireRowsAffected(result, "job", j.ID)
}

func (r *jobRepository) Delete(ctx context.Context, id string) error {
	query := `
	UPDATE jobs SET status = $1, updated_at = NOW(), updated_by = $2
	WHERE id = $3 AND tenant_id = $4 AND status = $5`

	result, err := r.client.Querier(ctx).ExecContext(ctx, query,
		types.StatusDeleted, types.GetUserID(ctx),
		id, types.GetTenantID(ctx), types.StatusPublished,
	)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to delete job").
			Mark(ierr.ErrDatabase)
	}

	return requireRowsAffected(result, "job", id)
}

// CountNumbersWithPrefix counts all rows regardless of status so deleted
// jobs still occupy their number
func (r *jobRepository) CountNumbersWithPrefix(ctx context.Context, prefix string) (int64, error) {
	query := `
	SELECT COUNT(*) FROM jobs
	WHERE tenant_id = $1 AND job_number LIKE $2 || '%'`

	var count int64
	err := sqlx.GetContext(ctx, r.client.Querier(ctx), &count, query,
		types.GetTenantID(ctx), prefix)
	if err != nil {
		return 0, ierr.WithError(err).
			WithHint("Failed to count job numbers").
			Mark(ierr.ErrDatabase)
	}

	return count, nil
}

func (r *jobRepository) MaxNumberWithPrefix(ctx context.Context, prefix string) (string, error) {
	query := `
	SELECT COALESCE(MAX(job_number), '') FROM jobs
	WHERE tenant_id = $1 AND job_number LIKE $2 || '%'`

	var max string
	err := sqlx.GetContext(ctx, r.client.Querier(ctx), &max, query,
		types.GetTenantID(ctx), prefix)
	if err != nil {
		return "", ierr.WithError(err).
			WithHint("Failed to get max job number").
			Mark(ierr.ErrDatabase)
	}

	return max, nil
}
