// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-note-vault/internal/store"
	"github.com/MKhiriev/go-note-vault/internal/validators"
	"github.com/MKhiriev/go-note-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// POST /api/expire/{id}
// ─────────────────────────────────────────────

func TestHandler_SetExpire_Success(t *testing.T) {
	notes := &mockNoteService{
		setExpiryFn: func(_ context.Context, id string, days int, password string) error {
			assert.Equal(t, "my-note", id)
			assert.Equal(t, models.ExpireDays30, days)
			assert.Equal(t, "hunter22", password)
			return nil
		},
	}
	router := newHandlerWithNotes(t, notes).Init()

	req := httptest.NewRequest(http.MethodPost, "/api/expire/my-note",
		strings.NewReader(`{"expireDays":30}`))
	req.Header.Set(notePasswordHeader, "hunter22")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, decodeMessage(t, rec).Message, "30")
}

func TestHandler_SetExpire_InvalidDays(t *testing.T) {
	notes := &mockNoteService{
		setExpiryFn: func(_ context.Context, _ string, _ int, _ string) error {
			return validators.ErrInvalidExpireDays
		},
	}
	router := newHandlerWithNotes(t, notes).Init()

	req := httptest.NewRequest(http.MethodPost, "/api/expire/my-note",
		strings.NewReader(`{"expireDays":14}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_SetExpire_AbsentNote(t *testing.T) {
	notes := &mockNoteService{
		setExpiryFn: func(_ context.Context, _ string, _ int, _ string) error {
			return store.ErrNoteNotFound
		},
	}
	router := newHandlerWithNotes(t, notes).Init()

	req := httptest.NewRequest(http.MethodPost, "/api/expire/missing",
		strings.NewReader(`{"expireDays":7}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_SetExpire_MalformedBody(t *testing.T) {
	router := newHandlerWithNotes(t, &mockNoteService{}).Init()

	req := httptest.NewRequest(http.MethodPost, "/api/expire/my-note",
		strings.NewReader("not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}
