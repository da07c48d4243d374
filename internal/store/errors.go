package store

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrConflict is returned when an insert violates a uniqueness
	// constraint (duplicate company ID or SKU). It is distinguishable from
	// other storage failures so batch callers can skip and continue.
	ErrConflict = errors.New("record already exists")

	// ErrNotFound is returned when a lookup matches no rows.
	ErrNotFound = errors.New("record not found")
)

// uniqueViolation is the Postgres error code for a unique constraint breach.
const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
