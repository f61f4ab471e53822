package security

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"math/big"
	"strings"
)

// Ambiguous glyphs (0/O, 1/I) are left out so codes read well over the counter.
const verificationCharset = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// GenerateVerificationCode returns a random uppercase code a rider reads back
// at hand-over.
func GenerateVerificationCode(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("length must be positive")
	}

	result := make([]byte, length)
	max := big.NewInt(int64(len(verificationCharset)))
	for i := range result {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		result[i] = verificationCharset[idx.Int64()]
	}
	return string(result), nil
}

// MatchVerificationCode compares two codes case-insensitively in constant time.
func MatchVerificationCode(expected, provided string) bool {
	a := strings.ToUpper(strings.TrimSpace(expected))
	b := strings.ToUpper(strings.TrimSpace(provided))
	if a == "" || b == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
