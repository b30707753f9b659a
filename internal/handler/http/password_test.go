// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-note-vault/internal/app"
	"github.com/MKhiriev/go-note-vault/internal/service"
	"github.com/MKhiriev/go-note-vault/internal/validators"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// POST /api/password/{id}
// ─────────────────────────────────────────────

func TestHandler_ManagePassword_Set(t *testing.T) {
	notes := &mockNoteService{
		setPasswordFn: func(_ context.Context, id, currentPassword, newPassword string) error {
			assert.Equal(t, "my-note", id)
			assert.Empty(t, currentPassword)
			assert.Equal(t, "hunter22", newPassword)
			return nil
		},
	}
	router := newHandlerWithNotes(t, notes).Init()

	req := httptest.NewRequest(http.MethodPost, "/api/password/my-note",
		strings.NewReader(`{"action":"set","newPassword":"hunter22"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, app.MsgPasswordSet, decodeMessage(t, rec).Message)
}

func TestHandler_ManagePassword_Rotate(t *testing.T) {
	notes := &mockNoteService{
		setPasswordFn: func(_ context.Context, _, currentPassword, newPassword string) error {
			assert.Equal(t, "old-pass", currentPassword)
			assert.Equal(t, "new-pass", newPassword)
			return nil
		},
	}
	router := newHandlerWithNotes(t, notes).Init()

	req := httptest.NewRequest(http.MethodPost, "/api/password/my-note",
		strings.NewReader(`{"action":"set","password":"old-pass","newPassword":"new-pass"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_ManagePassword_SetWeakPassword(t *testing.T) {
	notes := &mockNoteService{
		setPasswordFn: func(_ context.Context, _, _, _ string) error {
			return validators.ErrInvalidNewPassword
		},
	}
	router := newHandlerWithNotes(t, notes).Init()

	req := httptest.NewRequest(http.MethodPost, "/api/password/my-note",
		strings.NewReader(`{"action":"set","newPassword":"abc"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_ManagePassword_Remove(t *testing.T) {
	notes := &mockNoteService{
		removePasswordFn: func(_ context.Context, id, currentPassword string) error {
			assert.Equal(t, "my-note", id)
			assert.Equal(t, "hunter22", currentPassword)
			return nil
		},
	}
	router := newHandlerWithNotes(t, notes).Init()

	req := httptest.NewRequest(http.MethodPost, "/api/password/my-note",
		strings.NewReader(`{"action":"remove","password":"hunter22"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, app.MsgPasswordRemoved, decodeMessage(t, rec).Message)
}

func TestHandler_ManagePassword_RemoveUnprotected(t *testing.T) {
	notes := &mockNoteService{
		removePasswordFn: func(_ context.Context, _, _ string) error {
			return service.ErrNoteNotProtected
		},
	}
	router := newHandlerWithNotes(t, notes).Init()

	req := httptest.NewRequest(http.MethodPost, "/api/password/my-note",
		strings.NewReader(`{"action":"remove","password":"whatever"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, app.MsgNoteNotProtected, decodeMessage(t, rec).Message)
}

func TestHandler_ManagePassword_WrongCurrentPassword(t *testing.T) {
	notes := &mockNoteService{
		removePasswordFn: func(_ context.Context, _, _ string) error {
			return service.ErrWrongPassword
		},
	}
	router := newHandlerWithNotes(t, notes).Init()

	req := httptest.NewRequest(http.MethodPost, "/api/password/my-note",
		strings.NewReader(`{"action":"remove","password":"wrong"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandler_ManagePassword_UnknownAction(t *testing.T) {
	router := newHandlerWithNotes(t, &mockNoteService{}).Init()

	req := httptest.NewRequest(http.MethodPost, "/api/password/my-note",
		strings.NewReader(`{"action":"rotate"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, app.MsgInvalidPasswordAction, decodeMessage(t, rec).Message)
}

func TestHandler_ManagePassword_OversizedBody(t *testing.T) {
	notes := &mockNoteService{
		setPasswordFn: func(_ context.Context, _, _, _ string) error {
			t.Fatal("service must not see a body over the transport cap")
			return nil
		},
	}
	router := newHandlerWithNotes(t, notes).Init()

	payload := `{"action":"set","newPassword":"` + strings.Repeat("a", 64<<10) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/password/my-note",
		strings.NewReader(payload))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestHandler_ManagePassword_MalformedBody(t *testing.T) {
	router := newHandlerWithNotes(t, &mockNoteService{}).Init()

	req := httptest.NewRequest(http.MethodPost, "/api/password/my-note",
		strings.NewReader("{broken"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}
