package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	PgErrForeignKeyViolation = "23503"
	PgErrUniqueViolation     = "23505"
)

func IsPgErrorWithCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return false
}

// ViolatedConstraint - имя нарушенного ограничения, если err - ошибка postgres с кодом code.
// Имена внешних ключей postgres строит как <таблица>_<колонка>_fkey.
func ViolatedConstraint(err error, code string) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == code {
		return pgErr.ConstraintName, true
	}
	return "", false
}
