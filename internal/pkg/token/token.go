package token

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// NewPhoneKey generates a cryptographically random 64-character hex token
// used as the opaque phone verification key.
func NewPhoneKey() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate phone key: %w", err)
	}
	return hex.EncodeToString(b), nil
}
