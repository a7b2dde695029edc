package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stewardly/stewardly/internal/domain/signature"
	ierr "github.com/stewardly/stewardly/internal/errors"
	"github.com/stewardly/stewardly/internal/logger"
	"github.com/stewardly/stewardly/internal/postgres"
	"github.com/stewardly/stewardly/internal/types"
)

type signatureRepository struct {
	client postgres.IClient
	logger *logger.Logger
}

// NewSignatureRepository creates a new signature repository
func NewSignatureRepository(client postgres.IClient, logger *logger.Logger) signature.Repository {
	return &signatureRepository{client: client, logger: logger}
}

const signatureColumns = `
	id, document_id, job_id, signer_name, object_key, captured_at, expires_at,
	tenant_id, status, created_at, updated_at, created_by, updated_by`

func (r *signatureRepository) Create(ctx context.Context, sig *signature.Signature) error {
	r.logger.Debugw("creating signature", "signature_id", sig.ID, "object_key", sig.ObjectKey)

	query := `
	INSERT INTO signatures (` + signatureColumns + `
	) VALUES (
		$1, $2, $3, $4, $5, $6, $7,
		$8, $9, $10, $11, $12, $13
	)`

	_, err := r.client.Querier(ctx).ExecContext(ctx, query,
		sig.ID, sig.DocumentID, sig.JobID, sig.SignerName, sig.ObjectKey, sig.CapturedAt, sig.ExpiresAt,
		sig.TenantID, sig.Status, sig.CreatedAt, sig.UpdatedAt, sig.CreatedBy, sig.UpdatedBy,
	)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create signature").
			WithReportableDetails(map[string]any{
				"signature_id": sig.ID,
				"object_key":   sig.ObjectKey,
			}).
			Mark(ierr.ErrDatabase)
	}

	return nil
}

func (r *signatureRepository) Get(ctx context.Context, id string) (*signature.Signature, error) {
	query := `
	SELECT ` + signatureColumns + `
	FROM signatures
	WHERE id = $1 AND tenant_id = $2 AND status = $3`

	var sig signature.Signature
	err := sqlx.GetContext(ctx, r.client.Querier(ctx), &sig, query,
		id, types.GetTenantID(ctx), types.StatusPublished)
	if err != nil {
		if ierr.Is(err, sql.ErrNoRows) {
			return nil, ierr.NewErrorf("signature %s not found", id).
				WithHint("Signature not found").
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get signature").
			Mark(ierr.ErrDatabase)
	}

	return &sig, nil
}

func (r *signatureRepository) Delete(ctx context.Context, id string) error {
	query := `
	UPDATE signatures SET status = $1, updated_at = NOW(), updated_by = $2
	WHERE id = $3 AND tenant_id = $4 AND status = $5`

	result, err := r.client.Querier(ctx).ExecContext(ctx, query,
		types.StatusDeleted, types.GetUserID(ctx),
		id, types.GetTenantID(ctx), types.StatusPublished,
	)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to delete signature").
			Mark(ierr.ErrDatabase)
	}

	return requireRowsAffected(result, "signature", id)
}

// ListExpired runs without a tenant filter; the scheduled cleanup sweeps
// every tenant in one pass
func (r *signatureRepository) ListExpired(ctx context.Context, cutoff time.Time, limit int) ([]*signature.Signature, error) {
	query := `
	SELECT ` + signatureColumns + `
	FROM signatures
	WHERE expires_at IS NOT NULL AND expires_at < $1 AND status = $2
	ORDER BY expires_at
	LIMIT $3`

	var sigs []*signature.Signature
	err := sqlx.SelectContext(ctx, r.client.Querier(ctx), &sigs, query,
		cutoff, types.StatusPublished, limit)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list expired signatures").
			Mark(ierr.ErrDatabase)
	}

	return sigs, nil
}
