package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrDuplicate is the typed conflict signal for unique-constraint
// violations. Callers rely on it instead of a check-then-insert, so the
// constraint stays the single source of truth for "already exists".
var ErrDuplicate = errors.New("duplicate record")

const uniqueViolationCode = "23505"

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// translateError maps store-level duplicate-key failures to ErrDuplicate
// and passes everything else through untouched.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}
