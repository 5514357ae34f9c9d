package models

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrDuplicate marks integrity failures detected at commit time (unique
// constraint at the database level), as opposed to pre-validated rules.
var ErrDuplicate = errors.New("duplicate record")

// ErrQuotaExceeded is returned when a tenant quota would be exceeded.
var ErrQuotaExceeded = errors.New("tenant quota exceeded")

// ValidationError reports a violated domain invariant on a single field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError creates a field-level validation error.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsValidationError reports whether err is a domain validation failure.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// TranslateDBError maps driver-level errors to the domain error taxonomy.
// Duplicate key errors become ErrDuplicate so callers can distinguish
// commit-time integrity failures from validation failures.
func TranslateDBError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	}
	return err
}
