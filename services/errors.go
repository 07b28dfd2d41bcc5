package services

import (
	"errors"
	"strings"
)

// Sentinel errors surfaced to the request layer. Controllers map these
// to HTTP statuses; anything else is treated as an internal error.
var (
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrRoomUnavailable    = errors.New("room_unavailable")
	ErrInvalidDateRange   = errors.New("invalid_date_range")
	ErrBookingNotFound    = errors.New("booking_not_found")
	ErrBookingCancelled   = errors.New("booking_cancelled")
	ErrUserNotFound       = errors.New("user_not_found")
	ErrInvalidRole        = errors.New("invalid_role")
	ErrDuplicateRecord    = errors.New("duplicate_record")
)

// isDuplicateErr detects unique-index violations from the driver error
// text (MySQL "Duplicate entry", SQLite "UNIQUE constraint failed").
func isDuplicateErr(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") ||
		strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key")
}
