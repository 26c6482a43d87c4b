package hasher

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hash returns the hex SHA-256 of s.
func Hash(s string) string {
	h := sha256.Sum256([]byte(s))
	return hex.EncodeToString(h[:])
}

// Namespaced returns key scoped to owner, without exposing owner in the key.
func Namespaced(key, owner string) string {
	return key + ":" + Hash(owner)
}
