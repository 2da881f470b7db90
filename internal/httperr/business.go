package httperr

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Kind groups business error codes into the families the handlers map to
// HTTP statuses: lookups that missed, rule violations, authorization
// failures.
type Kind int

const (
	KindNotFound Kind = iota
	KindRuleViolation
	KindAuthorization
)

type BusinessError struct {
	Code string
	Kind Kind
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrNotFound(code string) error {
	return BusinessError{Code: code, Kind: KindNotFound}
}

func ErrRule(code string) error {
	return BusinessError{Code: code, Kind: KindRuleViolation}
}

func ErrAuth(code string) error {
	return BusinessError{Code: code, Kind: KindAuthorization}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func AsBusiness(err error) (BusinessError, bool) {
	var be BusinessError
	ok := errors.As(err, &be)
	return be, ok
}

// IsExclusionConflict reports whether a write lost to the appointments
// exclusion constraint (or a unique index) — the losing side of a
// concurrent double-booking race.
func IsExclusionConflict(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23P01" || pgErr.Code == "23505"
	}
	return false
}

// IsTransient reports whether the error is a store timeout or connection
// failure. Transient errors propagate unmodified so callers can retry.
func IsTransient(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// Class 08: connection exceptions. Class 57: operator intervention.
		return len(pgErr.Code) >= 2 && (pgErr.Code[:2] == "08" || pgErr.Code[:2] == "57")
	}
	return false
}
