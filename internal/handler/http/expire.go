// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-note-vault/internal/logger"
	"github.com/MKhiriev/go-note-vault/models"
)

func (h *Handler) setExpire(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id := chi.URLParam(r, "id")
	password := r.Header.Get(notePasswordHeader)

	var req models.ExpireRequest
	if err := decodeJSONBody(w, r, controlBodyLimitBytes, &req); err != nil {
		log.Err(err).Msg("invalid expire request body")
		writeBodyError(w, err)
		return
	}

	if err := h.services.NoteService.SetExpiry(ctx, id, req.ExpireDays, password); err != nil {
		log.Err(err).Str("note_id", id).Msg("set expiry failed")
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, models.MessageResponse{
		Message: fmt.Sprintf("note expiry set to %d days", req.ExpireDays),
	})
}
