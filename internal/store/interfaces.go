// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store provides the durable note storage layer: a single
// [NoteStorage] interface with a file-system backend, two SQL backends
// (SQLite and Postgres) and an in-memory caching decorator. The service
// layer depends only on the interface, so backends are interchangeable.
package store

import (
	"context"

	"github.com/MKhiriev/go-note-vault/models"
)

// NoteStorage is the single source of truth for note records, keyed by the
// public note ID. Implementations do not coordinate concurrent access to
// the same ID; the service layer serializes read-modify-write sequences
// per ID.
type NoteStorage interface {
	// Get loads the record stored under id. Returns [ErrNoteNotFound] when
	// no record exists.
	Get(ctx context.Context, id string) (*models.Note, error)

	// Put persists note under id, overwriting any previous record. SQL
	// backends additionally verify the record's version against the stored
	// one and return [ErrVersionConflict] on a lost-update race.
	Put(ctx context.Context, id string, note *models.Note) error

	// Delete removes the record stored under id. Deleting an absent record
	// returns [ErrNoteNotFound].
	Delete(ctx context.Context, id string) error

	// ListIDs returns the IDs of all stored notes. Foreign files or rows
	// in the storage namespace are ignored.
	ListIDs(ctx context.Context) ([]string, error)
}
