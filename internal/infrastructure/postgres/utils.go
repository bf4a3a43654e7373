package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Códigos SQLSTATE que se distinguen al envolver errores.
const (
	codeForeignKeyViolation = "23503"
	codeNotNullViolation    = "23502"
	codeQueryCanceled       = "57014" // statement_timeout
)

// pgCode devuelve el SQLSTATE del error o "" si no viene de PostgreSQL.
func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// describe agrega contexto legible a los errores de constraint más comunes.
func describe(op string, err error) error {
	switch pgCode(err) {
	case codeForeignKeyViolation:
		return &opError{op: op, reason: "referencia inexistente", err: err}
	case codeNotNullViolation:
		return &opError{op: op, reason: "campo obligatorio nulo", err: err}
	case codeQueryCanceled:
		return &opError{op: op, reason: "tiempo de consulta agotado", err: err}
	default:
		return &opError{op: op, err: err}
	}
}

type opError struct {
	op     string
	reason string
	err    error
}

func (e *opError) Error() string {
	if e.reason == "" {
		return e.op + ": " + e.err.Error()
	}
	return e.op + " (" + e.reason + "): " + e.err.Error()
}

func (e *opError) Unwrap() error { return e.err }
