// Package auth implements password hashing for stored credentials.
package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/scrypt"
)

// scrypt parameters. Changing them invalidates every stored hash.
const (
	scryptN      = 16384
	scryptR      = 8
	scryptP      = 1
	scryptKeyLen = 64
	saltBytes    = 16
)

// HashPassword derives a scrypt digest under a fresh random salt and returns
// it as "hex(digest).salt".
func HashPassword(plain string) (string, error) {
	raw := make([]byte, saltBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	salt := hex.EncodeToString(raw)

	digest, err := derive(plain, salt)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(digest) + "." + salt, nil
}

// VerifyPassword reports whether plain matches a value produced by
// HashPassword. Malformed stored values never match.
func VerifyPassword(plain, stored string) bool {
	hexDigest, salt, ok := strings.Cut(stored, ".")
	if !ok || hexDigest == "" || salt == "" {
		return false
	}
	want, err := hex.DecodeString(hexDigest)
	if err != nil || len(want) != scryptKeyLen {
		return false
	}
	got, err := derive(plain, salt)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare(got, want) == 1
}

// BurnPasswordCheck spends one key derivation so that a login for an unknown
// user costs the same as a wrong password.
func BurnPasswordCheck(plain string) {
	_, _ = derive(plain, "00000000000000000000000000000000")
}

// The salt is used in its hex text form, which keeps hashes compatible with
// existing "digest.salt" records.
func derive(plain, salt string) ([]byte, error) {
	digest, err := scrypt.Key([]byte(plain), []byte(salt), scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}
	return digest, nil
}
