// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"
)

// keyDeriver is the private implementation of [KeyDeriver].
type keyDeriver struct {
	// PBKDF2 tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target; blobs record the iteration count
	// they were written with.
	iterations int
	keyLen     int
}

// NewKeyDeriver constructs a [KeyDeriver] using PBKDF2-HMAC-SHA256 with
//   - iteration count: 100,000
//   - key length:      32 bytes (256 bits)
func NewKeyDeriver() KeyDeriver {
	return &keyDeriver{
		iterations: 100_000,
		keyLen:     32, // 256 bits
	}
}

// NewKeyDeriverWithIterations constructs a [KeyDeriver] with an explicit
// iteration count. Used when decrypting blobs written under historical
// parameters.
func NewKeyDeriverWithIterations(iterations int) KeyDeriver {
	return &keyDeriver{
		iterations: iterations,
		keyLen:     32,
	}
}

// DeriveKey implements [KeyDeriver]. It is a pure function: no side effects,
// deterministic for identical password and salt.
func (k *keyDeriver) DeriveKey(password string, salt []byte) []byte {
	return pbkdf2.Key([]byte(password), salt, k.iterations, k.keyLen, sha256.New)
}

// Iterations implements [KeyDeriver].
func (k *keyDeriver) Iterations() int {
	return k.iterations
}
