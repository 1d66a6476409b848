package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltLen    = 16
	keyLen     = 32
	iterations = 100_000
)

// HashPassword derives a fresh salt and a PBKDF2-HMAC-SHA256 digest for the
// given password. Both values are returned hex-encoded.
func HashPassword(password string) (saltHex, digestHex string, err error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", "", fmt.Errorf("generate salt: %w", err)
	}

	dk := pbkdf2.Key([]byte(password), salt, iterations, keyLen, sha256.New)
	return hex.EncodeToString(salt), hex.EncodeToString(dk), nil
}

// VerifyPassword recomputes the derivation for the stored salt and compares
// it against the stored digest in constant time.
func VerifyPassword(password, saltHex, digestHex string) bool {
	salt, err := hex.DecodeString(saltHex)
	if err != nil {
		return false
	}
	digest, err := hex.DecodeString(digestHex)
	if err != nil {
		return false
	}

	dk := pbkdf2.Key([]byte(password), salt, iterations, keyLen, sha256.New)
	return subtle.ConstantTimeCompare(dk, digest) == 1
}
