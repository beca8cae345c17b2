package digest

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// Sum returns the hex BLAKE2b-256 digest of b.
func Sum(b []byte) string {
	sum := blake2b.Sum256(b)
	return hex.EncodeToString(sum[:])
}

// ShortOf truncates a hex digest produced by Sum to 20 hex chars (10 bytes).
func ShortOf(sum string) string {
	if len(sum) <= 20 {
		return sum
	}
	return sum[:20]
}
