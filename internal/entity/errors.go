package entity

import (
	"errors"
	"fmt"
)

// Error classes. Every error returned by the public surface wraps exactly
// one of these, so callers match with errors.Is instead of inspecting
// driver errors.
var (
	ErrValidation    = errors.New("validation failed")
	ErrNotFound      = errors.New("not found")
	ErrConnection    = errors.New("database unreachable")
	ErrDataIntegrity = errors.New("data integrity violation")
	ErrOperation     = errors.New("database operation failed")
)

var (
	ErrAuthorNotFound = fmt.Errorf("author %w", ErrNotFound)
	ErrBookNotFound   = fmt.Errorf("book %w", ErrNotFound)

	// ErrDuplicateEmail is the pre-write detection of an email conflict.
	// The same conflict caught by the UNIQUE constraint instead surfaces
	// as ErrDataIntegrity.
	ErrDuplicateEmail = fmt.Errorf("email already in use: %w", ErrValidation)

	ErrDatabaseClosed = fmt.Errorf("database is closed: %w", ErrConnection)
)
