package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// GenerateMagicToken returns a 64-character hex string backed by 32 bytes
// of cryptographic randomness, used as an opaque one-link login credential.
func GenerateMagicToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate magic token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
