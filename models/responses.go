// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// NoteView is the result of a successful note read: the plaintext content
// and whether the note is still password gated. A protected note that was
// unlocked with the correct password is returned with Protected == false,
// mirroring the unprotected case from the caller's point of view.
type NoteView struct {
	Content   string `json:"content"`
	Protected bool   `json:"protected"`
}

// LockedResponse is returned when a protected note is accessed without a
// password or with a wrong one.
type LockedResponse struct {
	Protected bool   `json:"protected"`
	Message   string `json:"message"`
}

// MessageResponse is the generic response body for mutations and errors.
type MessageResponse struct {
	Message string `json:"message"`
}

// RateLimitedResponse tells the client how long to back off after hitting a
// rate limit. RetryAfter is in seconds.
type RateLimitedResponse struct {
	Message    string `json:"message"`
	RetryAfter int    `json:"retryAfter"`
}

// SaveNoteRequest is the JSON form of the save-note body. Plain text bodies
// are also accepted and carry the content directly.
type SaveNoteRequest struct {
	Content string `json:"content"`
}

// Password management actions accepted by the password endpoint.
const (
	PasswordActionSet    = "set"
	PasswordActionRemove = "remove"
)

// PasswordRequest is the body of the password management endpoint.
// For "set", NewPassword is required and Password must hold the current
// password when the note is already protected. For "remove", Password is
// required.
type PasswordRequest struct {
	Action      string `json:"action"`
	Password    string `json:"password"`
	NewPassword string `json:"newPassword"`
}

// ExpireRequest is the body of the expiry endpoint. ExpireDays must be one
// of the enumerated retention windows.
type ExpireRequest struct {
	ExpireDays int `json:"expireDays"`
}
