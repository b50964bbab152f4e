package database

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"syscall"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/project/dbcentral/internal/entity"
)

const (
	CodeUniqueViolation     = "23505"
	CodeForeignKeyViolation = "23503"
)

// IsTransient reports whether err is a connectivity blip worth retrying.
// Errors already classified as connection-class count as transient, with
// the exception of a closed manager, which never recovers.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, entity.ErrDatabaseClosed) {
		return false
	}

	if errors.Is(err, entity.ErrConnection) {
		return true
	}

	if pgconn.SafeToRetry(err) || pgconn.Timeout(err) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	return errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET)
}

// Classify maps a storage-layer error onto the entity error taxonomy.
// Errors that already carry a taxonomy class pass through unchanged, so
// raw driver errors never leak past the repository boundary.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, entity.ErrValidation) ||
		errors.Is(err, entity.ErrNotFound) ||
		errors.Is(err, entity.ErrConnection) ||
		errors.Is(err, entity.ErrDataIntegrity) ||
		errors.Is(err, entity.ErrOperation) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case CodeUniqueViolation, CodeForeignKeyViolation:
			return fmt.Errorf("constraint %s: %w", pgErr.ConstraintName, entity.ErrDataIntegrity)
		}
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	if IsTransient(err) {
		return fmt.Errorf("%v: %w", err, entity.ErrConnection)
	}

	return fmt.Errorf("%v: %w", err, entity.ErrOperation)
}
