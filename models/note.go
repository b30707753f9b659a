// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"time"
)

// Allowed values for [Note.ExpireDays]. A note is purged once it has not been
// accessed for that many days.
const (
	ExpireDays3   = 3
	ExpireDays7   = 7
	ExpireDays30  = 30
	ExpireDays365 = 365

	// DefaultExpireDays is applied to newly created notes and backfilled
	// onto legacy records that predate the expiry feature.
	DefaultExpireDays = ExpireDays3
)

// Content encryption and key-derivation algorithm tags stored inside an
// [EncryptedBlob] so that parameter upgrades never break old records.
const (
	AlgAESGCM = "aes-256-gcm"

	// AlgAESCBC is the legacy, unauthenticated mode. Blobs written before
	// algorithm tagging was introduced carry no "alg" field at all and are
	// treated as AES-256-CBC.
	AlgAESCBC = "aes-256-cbc"

	KDFPBKDF2SHA256 = "pbkdf2-sha256"
)

// Note is the persisted unit of the service, one per public note ID. The ID
// itself is the lookup key and is never stored inside the record.
//
// Central invariant: PasswordHash is non-empty if and only if Content holds
// an [EncryptedBlob] decryptable with the password that produced the hash.
// Legacy records written before encryption-at-rest may still carry a hash
// together with plaintext content; they are read, but every write brings
// them back onto the invariant.
type Note struct {
	// Content is either plaintext (unprotected note) or an encrypted blob
	// (protected note).
	Content NoteContent `json:"content"`

	// PasswordHash is the bcrypt credential gating access. Empty means the
	// note is unprotected. It is a separate derivation from the content
	// encryption key even though both originate from the same password.
	PasswordHash string `json:"passwordHash,omitempty"`

	// CreatedAt is set once at first write. Unix milliseconds.
	CreatedAt int64 `json:"createdAt"`

	// LastAccessedAt is refreshed on every read and write and drives the
	// expiry sweep. Unix milliseconds.
	LastAccessedAt int64 `json:"lastAccessedAt"`

	// ExpireDays is the retention window measured from LastAccessedAt.
	// One of {3, 7, 30, 365}.
	ExpireDays int `json:"expireDays"`

	// Version is the optimistic-concurrency token, incremented on every
	// write. SQL backends check it on UPDATE.
	Version int64 `json:"version,omitempty"`
}

// Protected reports whether access to the note is password gated.
func (n *Note) Protected() bool {
	return n.PasswordHash != ""
}

// Expired reports whether the note's retention window has elapsed at the
// given instant.
func (n *Note) Expired(now time.Time) bool {
	if n.LastAccessedAt == 0 || n.ExpireDays == 0 {
		return false
	}

	retention := time.Duration(n.ExpireDays) * 24 * time.Hour
	return now.UnixMilli()-n.LastAccessedAt > retention.Milliseconds()
}

// Clone returns a deep copy of the note. Used by the cache layer so that
// callers mutating a loaded record never alias the cached copy.
func (n *Note) Clone() *Note {
	clone := *n
	if n.Content.Blob != nil {
		blob := *n.Content.Blob
		clone.Content.Blob = &blob
	}

	return &clone
}

// NoteContent is the polymorphic content field of a [Note]. Exactly one of
// the two representations is active: Blob when the note is encrypted at
// rest, Plaintext otherwise.
//
// On the wire and on disk, plaintext content is a JSON string and encrypted
// content is a JSON object carrying the "encrypted": true marker.
type NoteContent struct {
	Plaintext string
	Blob      *EncryptedBlob
}

// PlainNoteContent wraps s as unencrypted note content.
func PlainNoteContent(s string) NoteContent {
	return NoteContent{Plaintext: s}
}

// EncryptedNoteContent wraps blob as encrypted note content.
func EncryptedNoteContent(blob *EncryptedBlob) NoteContent {
	return NoteContent{Blob: blob}
}

// Encrypted reports whether the content is an encrypted blob.
func (c NoteContent) Encrypted() bool {
	return c.Blob != nil
}

// MarshalJSON implements [json.Marshaler].
func (c NoteContent) MarshalJSON() ([]byte, error) {
	if c.Blob != nil {
		return json.Marshal(c.Blob)
	}

	return json.Marshal(c.Plaintext)
}

// ErrMalformedContent is returned when a persisted content value is neither
// a JSON string nor an object carrying the encrypted-blob marker.
var ErrMalformedContent = errors.New("malformed note content")

// UnmarshalJSON implements [json.Unmarshaler]. A JSON string becomes
// plaintext content; a JSON object must carry the "encrypted": true marker
// to be accepted as an [EncryptedBlob].
func (c *NoteContent) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return ErrMalformedContent
	}

	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = NoteContent{Plaintext: s}
		return nil
	}

	if trimmed[0] == '{' {
		var blob EncryptedBlob
		if err := json.Unmarshal(data, &blob); err != nil {
			return err
		}
		if !blob.Encrypted {
			return ErrMalformedContent
		}
		*c = NoteContent{Blob: &blob}
		return nil
	}

	return ErrMalformedContent
}

// EncryptedBlob is the at-rest representation of protected note content:
// a key-derivation salt, a cipher IV/nonce and the ciphertext, all recorded
// independently and Base64 (standard) encoded.
//
// Salt and IV are freshly random on every encryption call and never reused
// across records or re-encryptions.
type EncryptedBlob struct {
	// Encrypted is the marker distinguishing a blob from a plain string at
	// deserialization time. Always true for a valid blob.
	Encrypted bool `json:"encrypted"`

	// Alg identifies the cipher. Empty on legacy blobs, which are treated
	// as [AlgAESCBC].
	Alg string `json:"alg,omitempty"`

	// KDF identifies the key-derivation construction. Empty on legacy
	// blobs, which used PBKDF2-SHA256 implicitly.
	KDF string `json:"kdf,omitempty"`

	// Iterations is the PBKDF2 iteration count used to derive the key for
	// this blob. Zero on legacy blobs, which used the historical default.
	Iterations int `json:"iterations,omitempty"`

	// Salt is the Base64-encoded random key-derivation salt.
	Salt string `json:"salt"`

	// IV is the Base64-encoded random nonce/IV for the cipher.
	IV string `json:"iv"`

	// Data is the Base64-encoded ciphertext (including the GCM tag for
	// authenticated blobs).
	Data string `json:"data"`
}
