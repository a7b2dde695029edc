package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/stewardly/stewardly/internal/domain/report"
	ierr "github.com/stewardly/stewardly/internal/errors"
	"github.com/stewardly/stewardly/internal/logger"
	"github.com/stewardly/stewardly/internal/postgres"
	"github.com/stewardly/stewardly/internal/types"
)

type reportRepository struct {
	client postgres.IClient
	logger *logger.Logger
}

// NewReportRepository creates a new report execution repository
func NewReportRepository(client postgres.IClient, logger *logger.Logger) report.Repository {
	return &reportRepository{client: client, logger: logger}
}

const reportColumns = `
	id, report_key, format, state, parameters, requested_by,
	started_at, completed_at, file_url, error_message,
	tenant_id, status, created_at, updated_at, created_by, updated_by`

func (r *reportRepository) Create(ctx context.Context, execution *report.Execution) error {
	r.logger.Debugw("creating report execution",
		"report_execution_id", execution.ID,
		"report_key", execution.ReportKey,
	)

	query := `
	INSERT INTO report_executions (` + reportColumns + `
	) VALUES (
		$1, $2, $3, $4, $5, $6,
		$7, $8, $9, $10,
		$11, $12, $13, $14, $15, $16
	)`

	_, err := r.client.Querier(ctx).ExecContext(ctx, query,
		execution.ID, execution.ReportKey, execution.Format, execution.State, execution.Parameters, execution.RequestedBy,
		execution.StartedAt, execution.CompletedAt, execution.FileURL, execution.ErrorMessage,
		execution.TenantID, execution.Status, execution.CreatedAt, execution.UpdatedAt, execution.CreatedBy, execution.UpdatedBy,
	)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create report execution").
			WithReportableDetails(map[string]any{
				"report_execution_id": execution.ID,
				"report_key":          execution.ReportKey,
			}).
			Mark(ierr.ErrDatabase)
	}

	return nil
}

func (r *reportRepository) Get(ctx context.Context, id string) (*report.Execution, error) {
	query := `
	SELECT ` + reportColumns + `
	FROM report_executions
	WHERE id = $1 AND tenant_id = $2 AND status = $3`

	var execution report.Execution
	err := sqlx.GetContext(ctx, r.client.Querier(ctx), &execution, query,
		id, types.GetTenantID(ctx), types.StatusPublished)
	if err != nil {
		if ierr.Is(err, sql.ErrNoRows) {
			return nil, ierr.NewErrorf("report execution %s not found", id).
				WithHint("Report execution not found").
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get report execution").
			Mark(ierr.ErrDatabase)
	}

	return &execution, nil
}

func (r *reportRepository) Update(ctx context.Context, execution *report.Execution) error {
	query := `
	UPDATE report_executions SET
		state = $1, started_at = $2, completed_at = $3, file_url = $4,
		error_message = $5, updated_at = $6, updated_by = $7
	WHERE id = $8 AND tenant_id = $9 AND status = $10`

	result, err := r.client.Querier(ctx).ExecContext(ctx, query,
		execution.State, execution.StartedAt, execution.CompletedAt, execution.FileURL,
		execution.ErrorMessage, execution.UpdatedAt, execution.UpdatedBy,
		execution.ID, types.GetTenantID(ctx), types.StatusPublished,
	)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update report execution").
			Mark(ierr.ErrDatabase)
	}

	return requireRowsAffected(result, "report execution", execution.ID)
}
