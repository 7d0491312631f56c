package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Código SQLSTATE de PostgreSQL para unique_violation.
const codeUniqueViolation = "23505"

// isUniqueViolation verifica si un error es una violación de constraint único.
// Detecta los choques de SKU en products y de email en users.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation
}
