package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// RandomString returns n random bytes as a hex string, used for upload
// filenames.
func RandomString(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return ""
	}
	return hex.EncodeToString(b)
}
