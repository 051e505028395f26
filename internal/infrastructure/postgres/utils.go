package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE que los repos traducen a errores de dominio.
const codeUniqueViolation = "23505"

// isUniqueViolation verifica si un error es una violación de constraint único,
// por ejemplo un SKU o email repetido.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation
}
