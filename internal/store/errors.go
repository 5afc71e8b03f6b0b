package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Store error taxonomy. Callers branch on these with errors.Is; the GORM
// error surface stays inside this package.
var (
	// ErrNotFound is returned when a referenced id does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrConflict is returned on a unique-constraint violation, e.g. a duplicate username.
	ErrConflict = errors.New("record already exists")
	// ErrIntegrity is returned on a foreign-key or other integrity violation.
	ErrIntegrity = errors.New("integrity violation")
	// ErrTransient is returned for connection or backend failures.
	ErrTransient = errors.New("store unavailable")
)

// mapError converts GORM errors to the store taxonomy. Errors that already
// belong to the taxonomy pass through unchanged; anything unrecognized is
// treated as a backend failure.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, ErrNotFound),
		errors.Is(err, ErrConflict),
		errors.Is(err, ErrIntegrity),
		errors.Is(err, ErrTransient):
		return err
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrConflict
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return ErrIntegrity
	}
	return fmt.Errorf("%w: %v", ErrTransient, err)
}
