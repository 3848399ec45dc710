package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
)

var (
	ErrDuplicateEmail    = errors.New("email already exists")
	ErrDuplicateUsername = errors.New("username already exists")
	ErrReferenceNotFound = errors.New("referenced row does not exist")

	// Both match ErrReferenceNotFound with errors.Is.
	ErrUserReference    = fmt.Errorf("user %w", ErrReferenceNotFound)
	ErrProductReference = fmt.Errorf("product %w", ErrReferenceNotFound)
)

const (
	pqUniqueViolation     = pq.ErrorCode("23505")
	pqForeignKeyViolation = pq.ErrorCode("23503")
)

// translatePQError wraps the constraint violations callers act on with a
// sentinel error and returns every other error unchanged.
func translatePQError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}

	switch pqErr.Code {
	case pqUniqueViolation:
		switch pqErr.Constraint {
		case "users_email_key":
			return fmt.Errorf("%w: %w", ErrDuplicateEmail, err)
		case "users_username_key":
			return fmt.Errorf("%w: %w", ErrDuplicateUsername, err)
		}
	case pqForeignKeyViolation:
		switch {
		case strings.HasSuffix(pqErr.Constraint, "_user_id_fkey"):
			return fmt.Errorf("%w: %w", ErrUserReference, err)
		case strings.HasSuffix(pqErr.Constraint, "_product_id_fkey"):
			return fmt.Errorf("%w: %w", ErrProductReference, err)
		}

		return fmt.Errorf("%w: %w", ErrReferenceNotFound, err)
	}

	return err
}
