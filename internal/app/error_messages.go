// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// note vault server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidNoteID is returned when the note ID in the URL does not
	// match the accepted format.
	MsgInvalidNoteID = "invalid note ID format: must be 1-50 alphanumeric characters, underscores, or hyphens"

	// MsgInvalidRequestBody is returned when the request body cannot be
	// decoded or fails basic validation.
	MsgInvalidRequestBody = "invalid request body"

	// MsgPasswordRequired is returned when a protected note is accessed
	// without supplying a password.
	MsgPasswordRequired = "password required"

	// MsgWrongPassword is returned when the supplied password does not
	// match the note's stored credential.
	MsgWrongPassword = "wrong password"

	// MsgNoteTooLarge is returned when the note content exceeds the
	// configured size limit or is empty.
	MsgNoteTooLarge = "note content is empty or exceeds the maximum size"

	// MsgNoteNotFound is returned when an operation requires an existing
	// note and none is stored under the requested ID.
	MsgNoteNotFound = "note does not exist"

	// MsgNoteNotProtected is returned when password removal is requested
	// for a note that has no password set.
	MsgNoteNotProtected = "note has no password set"

	// MsgInvalidPasswordAction is returned when the password endpoint
	// receives an action other than "set" or "remove".
	MsgInvalidPasswordAction = "invalid password action"

	// MsgInvalidNewPassword is returned when the new password violates the
	// length policy.
	MsgInvalidNewPassword = "new password must be a string of 4 to 128 characters"

	// MsgInvalidExpireDays is returned when the requested retention window
	// is not one of the enumerated values.
	MsgInvalidExpireDays = "expire days must be one of 3, 7, 30 or 365"

	// MsgPasswordSet confirms a successful password set or rotation.
	MsgPasswordSet = "password set successfully"

	// MsgPasswordRemoved confirms a successful password removal.
	MsgPasswordRemoved = "password removed successfully"

	// MsgNoteSaved confirms a successful note save.
	MsgNoteSaved = "note saved"

	// MsgRateLimited is returned with HTTP 429 when a client exceeds its
	// request quota.
	MsgRateLimited = "too many requests, please try again later"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
