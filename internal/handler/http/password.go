// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-note-vault/internal/app"
	"github.com/MKhiriev/go-note-vault/internal/logger"
	"github.com/MKhiriev/go-note-vault/models"
)

func (h *Handler) managePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id := chi.URLParam(r, "id")

	var req models.PasswordRequest
	if err := decodeJSONBody(w, r, controlBodyLimitBytes, &req); err != nil {
		log.Err(err).Msg("invalid password request body")
		writeBodyError(w, err)
		return
	}

	switch req.Action {
	case models.PasswordActionSet:
		if err := h.services.NoteService.SetPassword(ctx, id, req.Password, req.NewPassword); err != nil {
			log.Err(err).Str("note_id", id).Msg("set password failed")
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, models.MessageResponse{Message: app.MsgPasswordSet})

	case models.PasswordActionRemove:
		if err := h.services.NoteService.RemovePassword(ctx, id, req.Password); err != nil {
			log.Err(err).Str("note_id", id).Msg("remove password failed")
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, models.MessageResponse{Message: app.MsgPasswordRemoved})

	default:
		log.Warn().Str("action", req.Action).Msg("unknown password action")
		writeJSON(w, http.StatusBadRequest, models.MessageResponse{Message: app.MsgInvalidPasswordAction})
	}
}
