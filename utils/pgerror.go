package utils

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// PgErrorCode returns the SQLSTATE and constraint name of a PostgreSQL error in err's chain.
func PgErrorCode(err error) (code, constraint string, ok bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, pgErr.ConstraintName, true
	}
	return "", "", false
}

// ClassifyDBError converts a driver error into an *AppError. Data exceptions (class 22)
// and integrity violations (class 23) become KindConstraint; everything else is internal.
// Errors that are already *AppError pass through unchanged.
func ClassifyDBError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := AsAppError(err); ok {
		return err
	}
	if code, constraint, ok := PgErrorCode(err); ok {
		if strings.HasPrefix(code, "22") || strings.HasPrefix(code, "23") {
			return Constraint(code, constraint, err)
		}
	}
	return Internal(err)
}
