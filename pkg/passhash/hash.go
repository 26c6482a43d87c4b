// Package passhash stores secrets as salted PBKDF2-HMAC-SHA256 digests.
package passhash

import (
	"crypto/pbkdf2"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Short numeric pins are what this hashes, so the work factor matters more than usual.
const (
	DefaultIterations = 210_000
	SaltLen           = 16
	KeyLen            = 32

	prefix = "pbkdf2_sha256$"
)

var ErrMalformedHash = errors.New("malformed hash")

// Hash returns the encoded form pbkdf2_sha256$<iterations>$<saltB64>$<dkB64>.
func Hash(secret string) (string, error) {
	return HashWithIters(secret, DefaultIterations)
}

func HashWithIters(secret string, iterations int) (string, error) {
	if iterations <= 0 {
		return "", errors.New("iterations must be > 0")
	}
	salt := make([]byte, SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("rand.Read: %w", err)
	}

	dk, err := pbkdf2.Key(sha256.New, secret, salt, iterations, KeyLen)
	if err != nil {
		return "", fmt.Errorf("pbkdf2: %w", err)
	}

	return prefix + strconv.Itoa(iterations) + "$" +
		base64.RawStdEncoding.EncodeToString(salt) + "$" +
		base64.RawStdEncoding.EncodeToString(dk), nil
}

// Verify compares secret with an encoded hash in constant time.
func Verify(secret, encoded string) (bool, error) {
	rest, ok := strings.CutPrefix(encoded, prefix)
	if !ok {
		return false, fmt.Errorf("%w: unsupported prefix", ErrMalformedHash)
	}
	parts := strings.Split(rest, "$")
	if len(parts) != 3 {
		return false, ErrMalformedHash
	}

	iters, err := strconv.Atoi(parts[0])
	if err != nil || iters <= 0 {
		return false, fmt.Errorf("%w: iterations", ErrMalformedHash)
	}
	salt, err := base64.RawStdEncoding.DecodeString(parts[1])
	if err != nil || len(salt) == 0 {
		return false, fmt.Errorf("%w: salt", ErrMalformedHash)
	}
	want, err := base64.RawStdEncoding.DecodeString(parts[2])
	if err != nil || len(want) == 0 {
		return false, fmt.Errorf("%w: derived key", ErrMalformedHash)
	}

	got, err := pbkdf2.Key(sha256.New, secret, salt, iters, len(want))
	if err != nil {
		return false, fmt.Errorf("pbkdf2: %w", err)
	}
	return subtle.ConstantTimeCompare(got, want) == 1, nil
}
