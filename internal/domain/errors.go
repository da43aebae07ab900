package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain-level error discrimination.
// Services wrap these so handlers can map to HTTP status codes without leaking infrastructure details.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrBadRequest   = errors.New("bad request")

	// ErrRateLimited: more than the allowed number of phone keys created for one number per hour.
	ErrRateLimited = errors.New("rate limited")

	// ErrBadPhoneKey: phone key absent, expired, already verified, or not ready to use.
	ErrBadPhoneKey = errors.New("bad phone key")

	// ErrBadCredentials: login phone/password mismatch. Deliberately generic so a failed
	// login never reveals whether the phone number is registered.
	ErrBadCredentials = errors.New("incorrect phone or password")

	// ErrCategoryOwnParent: a category's parent_id must never equal its own id.
	ErrCategoryOwnParent = errors.New("category cannot be its own parent")

	// ErrBadParent: referenced parent category does not exist.
	ErrBadParent = errors.New("parent category does not exist")
)

// BadConfirmationCodeError is returned when a phone-key confirmation code does not match.
// It carries the rejected code for diagnostics; the key itself is left untouched so the
// client can retry within the original expiry window.
type BadConfirmationCodeError struct {
	Code string
}

func (e *BadConfirmationCodeError) Error() string {
	return fmt.Sprintf("confirmation code %s is invalid", e.Code)
}

func (e *BadConfirmationCodeError) Unwrap() error { return ErrUnauthorized }
