package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

// IsUniqueViolation reports whether err is a Postgres unique-index violation.
// The unique indexes are the only concurrency guard in the system: the second
// writer of a duplicate row loses here, and callers decide whether that is a
// conflict (watchlist add) or benign (racing movie backfill).
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
