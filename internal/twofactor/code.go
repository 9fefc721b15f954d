// Package twofactor implements second-factor verification: TOTP as the
// primary factor and single-use backup codes as the fallback.
package twofactor

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"
)

const (
	// codeAlphabet excludes visually ambiguous characters (0, 1, I, O).
	codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

	codeLength = 8

	// DefaultBatchSize is the number of backup codes issued per batch.
	DefaultBatchSize = 10
)

// GenerateCodes returns count plaintext backup codes formatted XXXX-XXXX.
// The plaintext is shown to the user exactly once; only hashes are persisted.
func GenerateCodes(count int) ([]string, error) {
	codes := make([]string, count)
	max := big.NewInt(int64(len(codeAlphabet)))

	for i := range codes {
		raw := make([]byte, codeLength)
		for j := range raw {
			n, err := rand.Int(rand.Reader, max)
			if err != nil {
				return nil, fmt.Errorf("rand.Int() > %w", err)
			}
			raw[j] = codeAlphabet[n.Int64()]
		}
		codes[i] = fmt.Sprintf("%s-%s", raw[:4], raw[4:])
	}

	return codes, nil
}

// NormalizeCode canonicalizes user input: codes are case-insensitive and may
// be entered with or without the hyphen or surrounding whitespace.
func NormalizeCode(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	code = strings.ReplaceAll(code, " ", "")
	return strings.ReplaceAll(code, "-", "")
}

// HashCode returns the hex-encoded SHA-256 digest of the normalized code.
// The same plaintext always hashes to the same value so lookup-by-hash works.
func HashCode(plaintext string) string {
	sum := sha256.Sum256([]byte(NormalizeCode(plaintext)))
	return hex.EncodeToString(sum[:])
}
