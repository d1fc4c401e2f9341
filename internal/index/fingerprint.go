package index

import (
	"crypto/sha256"
	"encoding/hex"
)

// Fingerprint computes the SHA-256 hex digest of a document's raw bytes.
// It is used purely for change detection: identical bytes always produce an
// identical fingerprint, and fingerprints are only ever compared for equality.
func Fingerprint(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
