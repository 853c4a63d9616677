// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package hashing generates random secrets and their argon2id hashes.
// Parameters are fixed to match what Authelia expects to verify against.
package hashing

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"golang.org/x/crypto/argon2"
)

// ErrHashing marks failures of the underlying hashing primitive. A hashing
// failure aborts the whole reconciliation pass.
var ErrHashing = errors.New("failed to hash password")

const (
	// Letters, digits and a small symbol set; 70 characters total.
	secretAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789!@#$%^&*"

	// DefaultSecretLength is used for all generated account passwords.
	DefaultSecretLength = 16

	minSecretLength = 8
)

// GenerateSecret draws length characters independently and uniformly from
// the alphabet using crypto/rand. Lengths below the minimum are raised to it.
func GenerateSecret(length int) (string, error) {
	if length < minSecretLength {
		length = minSecretLength
	}

	max := big.NewInt(int64(len(secretAlphabet)))
	b := make([]byte, length)
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to read random source: %w", err)
		}
		b[i] = secretAlphabet[n.Int64()]
	}

	return string(b), nil
}

var _ HasherInterface = (*Argon2Hasher)(nil)

type Argon2Hasher struct {
	memory      uint32
	iterations  uint32
	parallelism uint8
	saltLength  uint32
	keyLength   uint32
}

// NewArgon2Hasher returns a hasher with Authelia-compatible argon2id
// parameters: 64 MiB memory, 3 iterations, 4-way parallelism, 32-byte hash,
// 16-byte salt.
func NewArgon2Hasher() *Argon2Hasher {
	h := new(Argon2Hasher)

	h.memory = 64 * 1024
	h.iterations = 3
	h.parallelism = 4
	h.saltLength = 16
	h.keyLength = 32

	return h
}

// Hash derives an argon2id hash of the password under a fresh random salt
// and returns it in the self-describing encoded form
// $argon2id$v=19$m=...,t=...,p=...$<salt>$<hash>, so the consuming store
// needs no side channel to verify.
func (h *Argon2Hasher) Hash(password string) (string, error) {
	salt := make([]byte, h.saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("%w: %v", ErrHashing, err)
	}

	key := argon2.IDKey([]byte(password), salt, h.iterations, h.memory, h.parallelism, h.keyLength)

	encoded := fmt.Sprintf(
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		h.memory,
		h.iterations,
		h.parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)

	return encoded, nil
}

// Verify reports whether the password matches the encoded hash. Parameters
// are taken from the encoded string, not from the hasher.
func (h *Argon2Hasher) Verify(password, encoded string) (bool, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return false, fmt.Errorf("malformed argon2id hash")
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return false, fmt.Errorf("malformed argon2id version: %w", err)
	}
	if version != argon2.Version {
		return false, fmt.Errorf("unsupported argon2 version %d", version)
	}

	var memory, iterations uint32
	var parallelism uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &iterations, &parallelism); err != nil {
		return false, fmt.Errorf("malformed argon2id parameters: %w", err)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, fmt.Errorf("malformed argon2id salt: %w", err)
	}
	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false, fmt.Errorf("malformed argon2id hash: %w", err)
	}

	derived := argon2.IDKey([]byte(password), salt, iterations, memory, parallelism, uint32(len(key)))

	return subtle.ConstantTimeCompare(key, derived) == 1, nil
}
