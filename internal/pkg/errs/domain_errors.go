package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Equipment errors
	ErrEquipmentNotFound    = errors.New("equipment not found")
	ErrEquipmentUnavailable = errors.New("equipment unavailable")

	// Booking errors
	ErrBookingNotFound    = errors.New("booking not found")
	ErrBookingNotActive   = errors.New("booking not active")
	ErrInvalidTimeWindow  = errors.New("invalid time window")
	ErrBookingWriteFailed = errors.New("booking write failed")

	// Identity errors
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrSignOutFailed    = errors.New("sign out failed")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrStoreOperationFailed = errors.New("store operation failed")
)
