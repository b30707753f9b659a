// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-note-vault/internal/app"
	"github.com/MKhiriev/go-note-vault/internal/logger"
	"github.com/MKhiriev/go-note-vault/internal/service"
	"github.com/MKhiriev/go-note-vault/models"
)

// notePasswordHeader carries the note password on read requests so that it
// never appears in URLs or access logs.
const notePasswordHeader = "X-Note-Password"

func (h *Handler) getNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id := chi.URLParam(r, "id")
	password := r.Header.Get(notePasswordHeader)

	view, err := h.services.NoteService.Get(ctx, id, password)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, view)
	case errors.Is(err, service.ErrPasswordRequired):
		writeJSON(w, http.StatusUnauthorized, models.LockedResponse{
			Protected: true,
			Message:   app.MsgPasswordRequired,
		})
	case errors.Is(err, service.ErrWrongPassword):
		writeJSON(w, http.StatusUnauthorized, models.LockedResponse{
			Protected: true,
			Message:   app.MsgWrongPassword,
		})
	default:
		log.Err(err).Str("note_id", id).Msg("get note failed")
		writeError(w, err)
	}
}

func (h *Handler) saveNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id := chi.URLParam(r, "id")
	password := r.Header.Get(notePasswordHeader)

	r.Body = http.MaxBytesReader(w, r.Body, h.noteBodyLimitBytes)

	content, err := readNoteContent(r)
	if err != nil {
		log.Err(err).Msg("invalid save note body")
		writeBodyError(w, err)
		return
	}

	if err := h.services.NoteService.Save(ctx, id, content, password); err != nil {
		log.Err(err).Str("note_id", id).Msg("save note failed")
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, models.MessageResponse{Message: app.MsgNoteSaved})
}

// readNoteContent extracts the note body from either a text/plain request
// or a JSON envelope with a "content" field. The caller is expected to
// have capped r.Body already; oversized bodies surface here as
// *http.MaxBytesError.
func readNoteContent(r *http.Request) (string, error) {
	contentType := r.Header.Get("Content-Type")

	if strings.HasPrefix(contentType, "application/json") {
		var req models.SaveNoteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return "", err
		}
		return req.Content, nil
	}

	raw, err := io.ReadAll(r.Body)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
