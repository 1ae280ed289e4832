package store

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// Unique constraint names declared by the users table migration.
const (
	usersEmailConstraint    = "users_email_key"
	usersUsernameConstraint = "users_username_key"
)

// classifyUserInsertError maps a failed INSERT INTO users to the repository
// sentinel errors. Unique violations are told apart by constraint name.
func classifyUserInsertError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		switch pgErr.ConstraintName {
		case usersEmailConstraint:
			return ErrEmailAlreadyExists
		case usersUsernameConstraint:
			return ErrUsernameAlreadyExists
		}
	}

	return persistenceError(ErrExecutingQuery, err)
}

// persistenceError wraps a low-level failure so that it matches both
// [ErrPersistence] and kind.
func persistenceError(kind, err error) error {
	return fmt.Errorf("%w: %w: %w", ErrPersistence, kind, err)
}
