package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/winhire/interview-engine/internal/httperr"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// translate maps driver errors onto the domain taxonomy and wraps
// everything else with the failing operation.
func translate(err error, op, entity string, id uint) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.NotFound(entity, id)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return httperr.Conflict("duplicate_"+entity, fmt.Sprintf("%s already exists (%s)", entity, pgErr.ConstraintName))
		case pgForeignKeyViolation:
			return httperr.Validation(pgErr.ColumnName, fmt.Sprintf("%s references a missing record", entity))
		}
	}

	return fmt.Errorf("%s %s: %w", op, entity, err)
}
