package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by the services wraps exactly one of
// these so transports can classify it with errors.Is.
var (
	ErrValidation      = errors.New("validation failed")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
)

var (
	ErrEmailTaken         = kindError(ErrValidation, "Email already registered")
	ErrInvalidCredentials = kindError(ErrUnauthenticated, "Invalid email or password")
	ErrInvalidToken       = kindError(ErrUnauthenticated, "Invalid authentication credentials")
	ErrUserNotFound       = kindError(ErrUnauthenticated, "User not found")

	ErrTooManyImages      = kindError(ErrValidation, fmt.Sprintf("Maximum %d images allowed", MaxEquipmentImages))
	ErrInvalidCategory    = kindError(ErrValidation, "Invalid equipment category")
	ErrInvalidPagination  = kindError(ErrValidation, "skip and limit must not be negative")
	ErrEquipmentNotFound  = kindError(ErrNotFound, "Equipment not found")
	ErrRequestNotFound    = kindError(ErrNotFound, "Request not found")
	ErrSelfRental         = kindError(ErrForbidden, "Cannot request your own equipment")
	ErrNotRequestOwner    = kindError(ErrForbidden, "Not authorized to update this request")
	ErrNotRequestParty    = kindError(ErrForbidden, "Not authorized to view this request")
	ErrInvalidStatus      = kindError(ErrValidation, "Invalid request status")
	ErrTransitionDenied   = kindError(ErrValidation, "Status transition not allowed")
	ErrNotParticipant     = kindError(ErrForbidden, "Not authorized to access messages for this request")
	ErrInvalidRecipient   = kindError(ErrValidation, "Recipient must be the other party of the request")
)

// DetailError carries a caller-facing message and the error kind it belongs to.
type DetailError struct {
	Kind   error
	Detail string
}

func (e *DetailError) Error() string { return e.Detail }

func (e *DetailError) Unwrap() error { return e.Kind }

func kindError(kind error, detail string) error {
	return &DetailError{Kind: kind, Detail: detail}
}

// NewValidationError builds an ad-hoc validation error with the given detail.
func NewValidationError(detail string) error {
	return kindError(ErrValidation, detail)
}
