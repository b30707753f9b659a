// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

// Validation sentinel errors. All of them are rejected before any storage or
// crypto work happens and are always recoverable by the caller correcting
// the input.
var (
	// ErrInvalidNoteID is returned when a note ID does not match the
	// restricted alphabet or exceeds the maximum length.
	ErrInvalidNoteID = errors.New("invalid note id")

	// ErrInvalidExpireDays is returned when the requested retention window
	// is not one of the enumerated values.
	ErrInvalidExpireDays = errors.New("invalid expire days")

	// ErrInvalidNewPassword is returned when a new password violates the
	// length policy.
	ErrInvalidNewPassword = errors.New("new password must be 4 to 128 characters")

	// ErrContentTooLarge is returned when note content is empty or exceeds
	// the configured maximum size.
	ErrContentTooLarge = errors.New("note content size out of bounds")
)
