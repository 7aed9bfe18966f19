package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// DigestHex returns the SHA-256 hex digest of s. Used for assessment
// fingerprints and other cache keys.
func DigestHex(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
