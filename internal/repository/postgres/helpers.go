package postgres

import (
	"database/sql"

	ierr "github.com/stewardly/stewardly/internal/errors"
)

// requireRowsAffected converts a zero-row write into a not-found error so
// updates against deleted or foreign-tenant rows surface to the caller
func requireRowsAffected(result sql.Result, entity, id string) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to get rows affected").
			Mark(ierr.ErrDatabase)
	}
	if rows == 0 {
		return ierr.NewErrorf("%s %s not found", entity, id).
			WithHintf("%s not found", entity).
			Mark(ierr.ErrNotFound)
	}
	return nil
}
