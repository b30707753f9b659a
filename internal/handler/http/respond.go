// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-note-vault/internal/app"
	"github.com/MKhiriev/go-note-vault/models"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Encoding a fully-populated response value cannot fail; the write
	// itself may, but at that point the client is already gone.
	_ = json.NewEncoder(w).Encode(body)
}

// decodeJSONBody decodes a request body into dst, refusing to read more
// than limit bytes off the wire.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, limit int64, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, limit)
	return json.NewDecoder(r.Body).Decode(dst)
}

// writeBodyError reports a request body that could not be read: 413 when
// the transport-level size cap cut it off, 400 otherwise.
func writeBodyError(w http.ResponseWriter, err error) {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		writeJSON(w, http.StatusRequestEntityTooLarge, models.MessageResponse{Message: app.MsgNoteTooLarge})
		return
	}
	writeJSON(w, http.StatusBadRequest, models.MessageResponse{Message: app.MsgInvalidRequestBody})
}
