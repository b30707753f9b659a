// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators contains the input validation rules applied at the
// boundary of the note service: note ID format, retention window values,
// password policy and content size. All checks run before any storage or
// cryptographic work.
package validators

import (
	"regexp"

	"github.com/MKhiriev/go-note-vault/models"
)

// noteIDPattern is the restricted note ID alphabet: 1 to 50 characters of
// [A-Za-z0-9_-]. Anything else never reaches the core and, on the file
// backend, never reaches the filesystem.
var noteIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,50}$`)

const (
	minPasswordLength = 4
	maxPasswordLength = 128
)

// ValidateNoteID checks id against the restricted alphabet.
func ValidateNoteID(id string) error {
	if !noteIDPattern.MatchString(id) {
		return ErrInvalidNoteID
	}

	return nil
}

// ValidateExpireDays checks that days is one of the enumerated retention
// windows {3, 7, 30, 365}.
func ValidateExpireDays(days int) error {
	switch days {
	case models.ExpireDays3, models.ExpireDays7, models.ExpireDays30, models.ExpireDays365:
		return nil
	default:
		return ErrInvalidExpireDays
	}
}

// ValidateNewPassword enforces the password length policy for newly set
// passwords. Existing passwords are never re-validated: they only need to
// verify against the stored hash.
func ValidateNewPassword(password string) error {
	if len(password) < minPasswordLength || len(password) > maxPasswordLength {
		return ErrInvalidNewPassword
	}

	return nil
}

// ValidateContent checks note content against the configured size limit.
// Empty content is rejected the same way as oversized content.
func ValidateContent(content string, maxSize int) error {
	if len(content) == 0 || len(content) > maxSize {
		return ErrContentTooLarge
	}

	return nil
}
