// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/scrypt"
)

// scrypt parameters, tuned to stay well under a second on commodity
// hardware while resisting offline brute force.
const (
	scryptN      = 16384
	scryptR      = 8
	scryptP      = 1
	scryptKeyLen = 64
	saltLen      = 16

	hashTag = "scrypt"
)

// HashPassword derives a salted hash and encodes it as
// "scrypt$<salt-hex>$<key-hex>". Each call draws a fresh salt, so two
// hashes of the same password differ.
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generating salt: %w", err)
	}
	return hashWithSalt(password, salt)
}

func hashWithSalt(password string, salt []byte) (string, error) {
	key, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return "", fmt.Errorf("deriving key: %w", err)
	}
	return hashTag + "$" + hex.EncodeToString(salt) + "$" + hex.EncodeToString(key), nil
}

// VerifyPassword recomputes the derivation with the stored salt and
// compares the full encoded strings. Malformed encodings verify false,
// they never panic or surface an error.
func VerifyPassword(password, encoded string) bool {
	parts := strings.Split(encoded, "$")
	if len(parts) != 3 || parts[0] != hashTag {
		return false
	}

	salt, err := hex.DecodeString(parts[1])
	if err != nil {
		return false
	}

	candidate, err := hashWithSalt(password, salt)
	if err != nil {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(candidate), []byte(encoded)) == 1
}
