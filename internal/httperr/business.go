package httperr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// Kind classifies a failure. Every use case returns one of these through
// BusinessError instead of panicking.
type Kind string

const (
	KindValidation        Kind = "validation"
	KindUnauthorized      Kind = "unauthorized"
	KindNotFound          Kind = "not_found"
	KindInvalidTransition Kind = "invalid_transition"
	KindDateGuardFailed   Kind = "date_guard_failed"
	KindOverlapConflict   Kind = "overlap_conflict"
	KindInfrastructure    Kind = "infrastructure"
)

const genericMessage = "Something went wrong, please try again."

type BusinessError struct {
	Kind    Kind
	Code    string
	Message string

	// cause is only set for infrastructure failures and never rendered.
	cause error
}

func (e BusinessError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Code, e.cause)
	}
	return e.Code
}

func (e BusinessError) Unwrap() error {
	return e.cause
}

func Validation(code, message string) error {
	return BusinessError{Kind: KindValidation, Code: code, Message: message}
}

func Unauthorized(code, message string) error {
	return BusinessError{Kind: KindUnauthorized, Code: code, Message: message}
}

func NotFound(code, message string) error {
	return BusinessError{Kind: KindNotFound, Code: code, Message: message}
}

func InvalidTransition(code, message string) error {
	return BusinessError{Kind: KindInvalidTransition, Code: code, Message: message}
}

func DateGuardFailed(code, message string) error {
	return BusinessError{Kind: KindDateGuardFailed, Code: code, Message: message}
}

func OverlapConflict(code, message string) error {
	return BusinessError{Kind: KindOverlapConflict, Code: code, Message: message}
}

// Infra wraps an unexpected collaborator failure. Wrapping a BusinessError
// returns it unchanged.
func Infra(err error) error {
	if err == nil {
		return nil
	}
	var be BusinessError
	if errors.As(err, &be) {
		return be
	}
	return BusinessError{
		Kind:    KindInfrastructure,
		Code:    "internal_error",
		Message: genericMessage,
		cause:   err,
	}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// KindOf reports the kind of err. Anything that is not a BusinessError is an
// infrastructure failure.
func KindOf(err error) Kind {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Kind
	}
	return KindInfrastructure
}

// Postgres SQLSTATE codes.
const (
	pgExclusionViolation = "23P01"
	pgUniqueViolation    = "23505"
)

// IsExclusionConflict reports whether err comes from an EXCLUDE constraint,
// which is how the bookings table rejects overlapping stays.
func IsExclusionConflict(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgExclusionViolation
	}
	return false
}

func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	return false
}
