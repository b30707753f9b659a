// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-note-vault/internal/config"
	"github.com/MKhiriev/go-note-vault/internal/crypto"
	"github.com/MKhiriev/go-note-vault/internal/logger"
	"github.com/MKhiriev/go-note-vault/internal/store"
	"github.com/MKhiriev/go-note-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newTestExpiryService(t *testing.T) (*expiryService, *noteService, store.NoteStorage) {
	t.Helper()

	notes, storage := newTestNoteService(t)
	expiry := newExpiryService(storage, notes.locks, notes.now, logger.Nop())

	return expiry, notes, storage
}

// ─────────────────────────────────────────────
// Sweep
// ─────────────────────────────────────────────

func TestExpiryService_Sweep_PurgesOnlyStaleNotes(t *testing.T) {
	expiry, notes, storage := newTestExpiryService(t)
	ctx := context.Background()

	clock := time.Unix(1_700_000_000, 0)
	now := func() time.Time { return clock }
	notes.now = now
	expiry.now = now

	require.NoError(t, notes.Save(ctx, "short-lived", "a", ""))
	require.NoError(t, notes.Save(ctx, "long-lived", "b", ""))
	require.NoError(t, notes.SetExpiry(ctx, "long-lived", models.ExpireDays365, ""))

	// Past the 3-day default window, inside the 365-day one.
	clock = clock.Add(4 * 24 * time.Hour)

	purged, err := expiry.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"short-lived"}, purged)

	_, err = storage.Get(ctx, "short-lived")
	require.ErrorIs(t, err, store.ErrNoteNotFound)
	_, err = storage.Get(ctx, "long-lived")
	require.NoError(t, err)
}

func TestExpiryService_Sweep_FreshNotesUntouched(t *testing.T) {
	expiry, notes, _ := newTestExpiryService(t)
	ctx := context.Background()

	require.NoError(t, notes.Save(ctx, "fresh", "body", ""))

	purged, err := expiry.Sweep(ctx)
	require.NoError(t, err)
	assert.Empty(t, purged)
}

func TestExpiryService_Sweep_BoundaryIsExclusive(t *testing.T) {
	expiry, notes, _ := newTestExpiryService(t)
	ctx := context.Background()

	clock := time.Unix(1_700_000_000, 0)
	now := func() time.Time { return clock }
	notes.now = now
	expiry.now = now

	require.NoError(t, notes.Save(ctx, "edge", "body", ""))

	// Exactly the retention window: not yet expired.
	clock = clock.Add(time.Duration(models.DefaultExpireDays) * 24 * time.Hour)
	purged, err := expiry.Sweep(ctx)
	require.NoError(t, err)
	assert.Empty(t, purged)

	// One millisecond past: expired.
	clock = clock.Add(time.Millisecond)
	purged, err = expiry.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"edge"}, purged)
}

func TestExpiryService_Sweep_ReadResetsRetention(t *testing.T) {
	expiry, notes, _ := newTestExpiryService(t)
	ctx := context.Background()

	clock := time.Unix(1_700_000_000, 0)
	now := func() time.Time { return clock }
	notes.now = now
	expiry.now = now

	require.NoError(t, notes.Save(ctx, "revived", "body", ""))

	// Read just before expiry; the touch restarts the window.
	clock = clock.Add(2 * 24 * time.Hour)
	_, err := notes.Get(ctx, "revived", "")
	require.NoError(t, err)

	clock = clock.Add(2 * 24 * time.Hour)
	purged, err := expiry.Sweep(ctx)
	require.NoError(t, err)
	assert.Empty(t, purged, "a recently read note must survive the sweep")
}

func TestExpiryService_Sweep_PurgesProtectedNotesToo(t *testing.T) {
	expiry, notes, storage := newTestExpiryService(t)
	ctx := context.Background()

	clock := time.Unix(1_700_000_000, 0)
	now := func() time.Time { return clock }
	notes.now = now
	expiry.now = now

	require.NoError(t, notes.Save(ctx, "secret", "body", ""))
	require.NoError(t, notes.SetPassword(ctx, "secret", "", "hunter22"))

	clock = clock.Add(4 * 24 * time.Hour)
	purged, err := expiry.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"secret"}, purged)

	_, err = storage.Get(ctx, "secret")
	require.ErrorIs(t, err, store.ErrNoteNotFound)
}

func TestExpiryService_Sweep_CorruptRecordSkipped(t *testing.T) {
	dir := t.TempDir()
	storage, err := store.NewFileNoteStorage(dir, logger.Nop())
	require.NoError(t, err)

	clock := time.Unix(1_700_000_000, 0)
	notes := &noteService{
		storage:     storage,
		cipher:      crypto.NewContentCipher(crypto.NewKeyDeriverWithIterations(1_000)),
		auth:        crypto.NewPasswordAuthenticator(),
		locks:       newKeyedMutex(),
		maxNoteSize: testMaxNoteSize,
		now:         func() time.Time { return clock },
		logger:      logger.Nop(),
	}
	expiry := newExpiryService(storage, notes.locks, notes.now, logger.Nop())

	ctx := context.Background()
	require.NoError(t, notes.Save(ctx, "good", "body", ""))
	require.NoError(t, notes.Save(ctx, "stale", "body", ""))

	// Write garbage over one record directly so the sweep's load fails.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "good.json"), []byte("{not json"), 0o600))

	clock = clock.Add(4 * 24 * time.Hour)
	purged, err := expiry.Sweep(ctx)

	require.NoError(t, err, "one unreadable record must not fail the sweep")
	assert.Equal(t, []string{"stale"}, purged)
}

func TestNewServices_SweepSharesNoteLockTable(t *testing.T) {
	storage, err := store.NewFileNoteStorage(t.TempDir(), logger.Nop())
	require.NoError(t, err)

	svcs := NewServices(&store.Storages{Notes: storage}, config.StructuredConfig{
		App: config.App{MaxNoteSize: testMaxNoteSize},
	}, logger.Nop())

	notes, ok := svcs.NoteService.(*noteService)
	require.True(t, ok)
	expiry, ok := svcs.ExpiryService.(*expiryService)
	require.True(t, ok)

	assert.Same(t, notes.locks, expiry.locks, "sweep must serialize against note operations")
}

func TestExpiryService_Sweep_CancelledContext(t *testing.T) {
	expiry, notes, _ := newTestExpiryService(t)
	ctx := context.Background()

	require.NoError(t, notes.Save(ctx, "any", "body", ""))

	cancelled, cancel := context.WithCancel(ctx)
	cancel()

	_, err := expiry.Sweep(cancelled)
	require.ErrorIs(t, err, context.Canceled)
}
