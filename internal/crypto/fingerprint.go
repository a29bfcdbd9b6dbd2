package crypto

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"

	"chucknorris/internal/domain"
)

// fingerprintLen is the number of digest bytes kept (12 hex chars).
const fingerprintLen = 6

// Fingerprint returns a short hex fingerprint of a raw template.
//
// It hashes with BLAKE2b-256 and truncates, so the value depends only on the
// template text and not on its position in the collection.
func Fingerprint(t domain.Template) domain.Fingerprint {
	sum := blake2b.Sum256([]byte(t))
	return domain.Fingerprint(hex.EncodeToString(sum[:fingerprintLen]))
}
