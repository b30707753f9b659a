// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-note-vault/internal/app"
	"github.com/MKhiriev/go-note-vault/internal/crypto"
	"github.com/MKhiriev/go-note-vault/internal/service"
	"github.com/MKhiriev/go-note-vault/internal/store"
	"github.com/MKhiriev/go-note-vault/internal/validators"
	"github.com/MKhiriev/go-note-vault/models"
)

var errorStatusMap = map[error]int{
	validators.ErrInvalidNoteID:      http.StatusBadRequest,
	validators.ErrInvalidExpireDays:  http.StatusBadRequest,
	validators.ErrInvalidNewPassword: http.StatusBadRequest,
	validators.ErrContentTooLarge:    http.StatusRequestEntityTooLarge,

	service.ErrPasswordRequired: http.StatusUnauthorized,
	service.ErrWrongPassword:    http.StatusUnauthorized,
	service.ErrNoteNotProtected: http.StatusBadRequest,

	store.ErrNoteNotFound:    http.StatusNotFound,
	store.ErrVersionConflict: http.StatusConflict,

	crypto.ErrDecryptionFailed: http.StatusInternalServerError,
}

var errorMessageMap = map[error]string{
	validators.ErrInvalidNoteID:      app.MsgInvalidNoteID,
	validators.ErrInvalidExpireDays:  app.MsgInvalidExpireDays,
	validators.ErrInvalidNewPassword: app.MsgInvalidNewPassword,
	validators.ErrContentTooLarge:    app.MsgNoteTooLarge,

	service.ErrPasswordRequired: app.MsgPasswordRequired,
	service.ErrWrongPassword:    app.MsgWrongPassword,
	service.ErrNoteNotProtected: app.MsgNoteNotProtected,

	store.ErrNoteNotFound: app.MsgNoteNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	return app.MsgInternalServerError
}

// writeError renders err as a JSON MessageResponse with the mapped status.
// Internal details never reach the client; they are logged at the call site.
func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusFromError(err), models.MessageResponse{Message: messageFromError(err)})
}
