package utils

import (
	"crypto/rand"
	"encoding/base32"
	"fmt"
)

// GenerateVerificationCode generates a secure random code of the given
// length. It returns a base32 encoded string (without padding) truncated
// to the desired length.
func GenerateVerificationCode(length int) (string, error) {
	numBytes := (length*5 + 7) / 8 // bytes needed for length base32 chars
	randomBytes := make([]byte, numBytes)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	code := base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(randomBytes)
	if len(code) > length {
		code = code[:length]
	}
	return code, nil
}
