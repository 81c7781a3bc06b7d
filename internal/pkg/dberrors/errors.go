package dberrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn" // Import pgconn for PgError
)

// PostgreSQL error codes used by the repositories.
const (
	UniqueViolation     = "23505"
	ForeignKeyViolation = "23503"
)

// IsDuplicateConstraintError checks if the error is a PostgreSQL unique violation error
// for a specific constraint.
func IsDuplicateConstraintError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == UniqueViolation && pgErr.ConstraintName == constraintName
}

// IsForeignKeyViolation reports whether err is a foreign key violation on constraintName.
// An empty constraintName matches any foreign key violation.
func IsForeignKeyViolation(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != ForeignKeyViolation {
		return false
	}
	return constraintName == "" || pgErr.ConstraintName == constraintName
}
