// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by storage methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNoteNotFound is returned when no record exists under the
	// requested note ID.
	ErrNoteNotFound = errors.New("note was not found")

	// ErrVersionConflict is returned when an optimistic-locking check
	// fails: the version carried by the record does not follow the version
	// currently stored, meaning another writer has modified the record
	// since it was loaded.
	ErrVersionConflict = errors.New("note version conflict occurred")
)

// Low-level storage operation errors. These are returned (or wrapped) by
// backends when an I/O or SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrReadingNote is returned when a stored record cannot be read or
	// deserialized.
	ErrReadingNote = errors.New("error reading note record")

	// ErrWritingNote is returned when a record cannot be serialized or
	// written to the backend.
	ErrWritingNote = errors.New("error writing note record")

	// ErrDeletingNote is returned when a record cannot be removed from the
	// backend.
	ErrDeletingNote = errors.New("error deleting note record")

	// ErrListingNotes is returned when the set of stored IDs cannot be
	// enumerated.
	ErrListingNotes = errors.New("error listing note records")

	// ErrBuildingSQLQuery is returned when constructing a parameterised
	// SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when a result row cannot be scanned into
	// the target values.
	ErrScanningRow = errors.New("error scanning row")
)
