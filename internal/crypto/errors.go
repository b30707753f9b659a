// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

// ErrDecryptionFailed is returned when a blob cannot be decrypted: the
// password is wrong (authentication-tag mismatch), the blob is malformed, or
// the ciphertext was tampered with. Callers match it with [errors.Is].
//
// It is deliberately distinct from a failed password verification: when the
// stored hash verifies but decryption still fails, the record's hash and
// ciphertext key have desynchronized, which indicates data corruption rather
// than a wrong guess.
var ErrDecryptionFailed = errors.New("decryption failed")
