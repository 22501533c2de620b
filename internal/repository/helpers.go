package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	customError "github.com/akvarelka1na1ohote/MiS-system-for-library/pkg/errors"
)

// execAffectingOne runs a statement that must touch an existing row and maps
// zero affected rows to ErrNotFound.
func execAffectingOne(ctx context.Context, db *sqlx.DB, query string, args ...interface{}) error {
	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return customError.ErrNotFound
	}

	return nil
}
