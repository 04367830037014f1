package service

import (
	"errors"
	"fmt"

	"github.com/sitetrack/site-server/internal/models"
)

// Error kinds reported to callers. Handlers translate these to HTTP
// status codes with errors.Is.
var (
	ErrNotFound            = errors.New("not found")
	ErrDuplicateAttendance = errors.New("attendance already marked")
	ErrInvalidRange        = errors.New("invalid date range")
	ErrValidation          = errors.New("invalid input")
	ErrInvalidCredentials  = errors.New("invalid credentials")
)

// notFound wraps ErrNotFound with the entity kind and id so the caller
// can act on the message
func notFound(kind, id string) error {
	return fmt.Errorf("%s not found with ID %s: %w", kind, id, ErrNotFound)
}

// validateRange rejects inverted ranges; both ends are inclusive
func validateRange(from, to models.Date) error {
	if from.IsZero() || to.IsZero() || from.After(to.Time) {
		return fmt.Errorf("range %s to %s: %w", from, to, ErrInvalidRange)
	}
	return nil
}
