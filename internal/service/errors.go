// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// Sentinel errors returned by the note service. Callers match them with
// [errors.Is]; the HTTP layer maps each one to a response status.
var (
	// ErrPasswordRequired is returned when a protected note is accessed or
	// mutated without a password. Distinct from [ErrWrongPassword] so that
	// clients can prompt instead of showing a hard failure.
	ErrPasswordRequired = errors.New("password required")

	// ErrWrongPassword is returned when a supplied password fails
	// verification against the stored hash.
	ErrWrongPassword = errors.New("wrong password")

	// ErrNoteNotProtected is returned when password removal is requested
	// for a note that has no password set.
	ErrNoteNotProtected = errors.New("note is not protected")
)
