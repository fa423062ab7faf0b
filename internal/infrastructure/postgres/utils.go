package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation verifica si un error es una violación de constraint
// único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505" // unique_violation
}

// isUndefinedTable verifica si un error es "la tabla no existe" (42P01).
// El ledger puede consultarse antes de que su migración haya corrido; los
// repositorios lo traducen a domain.ErrBackendUnavailable para que los
// casos de uso degraden en vez de fallar.
func isUndefinedTable(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "42P01" // undefined_table
}
