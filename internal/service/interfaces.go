// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the note lifecycle: password-gated reads and
// writes, password set/rotate/remove transitions that keep the stored hash
// and the content encryption key in lockstep, retention settings and the
// expiry sweep.
//
// Every operation serializes its read-modify-write sequence under a per-ID
// lock, so two concurrent mutations of the same note can never produce a
// lost update.
package service

import (
	"context"

	"github.com/MKhiriev/go-note-vault/models"
)

// NoteService is the lifecycle manager for note records.
type NoteService interface {
	// Get returns the note content. An absent ID yields an empty,
	// unprotected view rather than an error; this is how new IDs are
	// discovered. Reading touches the record's last-access time.
	Get(ctx context.Context, id, password string) (models.NoteView, error)

	// Save stores new content for the note, creating the record on first
	// save. Protected notes require the current password and are
	// re-encrypted under it with fresh salt and IV.
	Save(ctx context.Context, id, content, password string) error

	// SetPassword protects the note with newPassword, or rotates its
	// password when one is already set (currentPassword must verify).
	// Hash and ciphertext key are always updated together.
	SetPassword(ctx context.Context, id, currentPassword, newPassword string) error

	// RemovePassword verifies currentPassword, decrypts the content and
	// stores it back as plaintext with no hash.
	RemovePassword(ctx context.Context, id, currentPassword string) error

	// SetExpiry updates the retention window of an existing note. days
	// must be one of the enumerated values; protected notes require the
	// password.
	SetExpiry(ctx context.Context, id string, days int, password string) error
}

// ExpiryService purges notes whose retention window has elapsed.
type ExpiryService interface {
	// Sweep scans all stored notes and deletes the stale ones, returning
	// the purged IDs. Per-record failures are logged and skipped.
	Sweep(ctx context.Context) ([]string, error)
}
