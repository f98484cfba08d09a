package postgres

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jhoicas/Resenas-api/internal/domain"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
	codeNotNullViolation    = "23502"
	codeInvalidText         = "22P02"

	constraintUserEmail = "users_email_key"
)

// mapError traduce errores de pgx a los tipos de dominio. op describe la operación para el log.
func mapError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			if pgErr.ConstraintName == constraintUserEmail {
				return domain.ErrEmailAlreadyExists
			}
			return fmt.Errorf("%s: %w", op, domain.ErrConflict)
		case codeForeignKeyViolation, codeCheckViolation, codeNotNullViolation, codeInvalidText:
			return domain.Errorf(domain.ErrValidation, "%s: %s", op, pgErr.Message)
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) || pgconn.Timeout(err) {
		return fmt.Errorf("%s: %w: %v", op, domain.ErrStoreUnavailable, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// validIDs descarta los ids que no son UUID; en las lecturas equivalen a "no existe".
func validIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if isUUID(id) {
			out = append(out, id)
		}
	}
	return out
}

func isUUID(id string) bool {
	return uuid.Validate(id) == nil
}
