// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// passwordAuthenticator is the private implementation of
// [PasswordAuthenticator], backed by bcrypt. The produced hash embeds its
// own random salt, algorithm identifier and cost factor, so verification is
// self-describing and cost upgrades never invalidate stored hashes.
type passwordAuthenticator struct {
	cost int
}

// NewPasswordAuthenticator constructs a [PasswordAuthenticator] with bcrypt
// cost 10.
func NewPasswordAuthenticator() PasswordAuthenticator {
	return &passwordAuthenticator{cost: 10}
}

// Hash implements [PasswordAuthenticator].
func (p *passwordAuthenticator) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), p.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	return string(hash), nil
}

// Verify implements [PasswordAuthenticator]. bcrypt's comparison is
// constant-time over the derived material. Any error, including a malformed
// stored hash, verifies as false: access fails closed and the caller never
// has to distinguish "wrong password" from "unreadable hash".
func (p *passwordAuthenticator) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
