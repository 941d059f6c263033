package auth

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltBytes  = 32
	iterations = 10000
	keyLength  = 64
)

// Derive hashes password with PBKDF2-SHA512. A blank salt is replaced by a
// fresh random one; both values come back hex-encoded.
func Derive(password, salt string) (hash string, usedSalt string, err error) {
	if salt == "" {
		buf := make([]byte, saltBytes)
		if _, err := rand.Read(buf); err != nil {
			return "", "", fmt.Errorf("generate salt: %w", err)
		}
		salt = hex.EncodeToString(buf)
	}
	key := pbkdf2.Key([]byte(password), []byte(salt), iterations, keyLength, sha512.New)
	return hex.EncodeToString(key), salt, nil
}

// Verify recomputes the hash for password under salt and compares it to hash
// in constant time.
func Verify(password, hash, salt string) bool {
	candidate, _, err := Derive(password, salt)
	if err != nil || salt == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(hash)) == 1
}
