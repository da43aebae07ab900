package domain

import "time"

// PhoneKey is a one-time verification token bound to a phone number. It gates
// operations that must prove phone ownership without a standing session:
// registration, password reset, phone-number change.
//
// Lifecycle: created unverified (15 min window) -> verified (fresh 10 min window,
// replacing whatever remained of the original) -> used (terminal). Expiry is
// derived from the clock, never an explicit transition.
type PhoneKey struct {
	Key        string     `json:"key" dynamodbav:"key"`
	Phone      string     `json:"phone" dynamodbav:"phone"`
	IsVerified bool       `json:"is_verified" dynamodbav:"is_verified"`
	IsUsed     bool       `json:"is_used" dynamodbav:"is_used"`
	CreatedAt  time.Time  `json:"created_at" dynamodbav:"created_at"`
	ExpiresAt  time.Time  `json:"expires_at" dynamodbav:"expires_at"`
	VerifiedAt *time.Time `json:"verified_at" dynamodbav:"verified_at"`
	UsedAt     *time.Time `json:"used_at" dynamodbav:"used_at"`
}

// ReadyToUse reports whether the key may authorize an operation at instant now:
// verified, never used, not expired.
func (k *PhoneKey) ReadyToUse(now time.Time) bool {
	return k.IsVerified && !k.IsUsed && k.ExpiresAt.After(now)
}

type CreatePhoneKeyRequest struct {
	Phone string `json:"phone" validate:"required,ruphone"`
}

type VerifyPhoneKeyRequest struct {
	Key  string `json:"key" validate:"required"`
	Code string `json:"code" validate:"required,len=4,numeric"`
}
