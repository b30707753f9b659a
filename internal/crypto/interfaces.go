// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements the cryptographic core of go-note-vault: slow
// password-based key derivation, authenticated content encryption and
// password hashing/verification.
//
// Two independent derivations exist for the same user password: the content
// encryption key (PBKDF2 with a per-encryption random salt) and the access
// credential (bcrypt hash with its own embedded salt). Rotating the
// parameters of one never affects data written under the other.
package crypto

import "github.com/MKhiriev/go-note-vault/models"

// KeyDeriver turns a user password plus a random salt into a 256-bit
// symmetric key. The derivation is deterministic for identical inputs and
// deliberately slow so that brute-forcing a password offline is expensive.
type KeyDeriver interface {
	// DeriveKey derives a 32-byte key from password and salt.
	DeriveKey(password string, salt []byte) []byte

	// Iterations reports the PBKDF2 iteration count the deriver writes into
	// new blobs so that future parameter upgrades keep old data readable.
	Iterations() int
}

// ContentCipher performs authenticated symmetric encryption and decryption
// of note bodies. A fresh salt and IV are generated on every Encrypt call.
type ContentCipher interface {
	// Encrypt encrypts plaintext under a key derived from password and a
	// fresh random salt, using AES-256-GCM with a fresh random nonce.
	Encrypt(plaintext, password string) (*models.EncryptedBlob, error)

	// Decrypt recomputes the key from the blob's own salt and decrypts.
	// Returns [ErrDecryptionFailed] if the password is wrong or the blob
	// is malformed or tampered with; no partial plaintext is ever leaked.
	Decrypt(blob *models.EncryptedBlob, password string) (string, error)
}

// PasswordAuthenticator gates access to protected notes without ever
// persisting the plaintext password.
type PasswordAuthenticator interface {
	// Hash computes a self-describing one-way hash of password.
	Hash(password string) (string, error)

	// Verify reports whether password matches hash using a constant-time
	// comparison. A malformed hash verifies as false, never as an error:
	// the authenticator fails closed.
	Verify(password, hash string) bool
}
