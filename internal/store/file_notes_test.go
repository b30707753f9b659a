// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-note-vault/internal/logger"
	"github.com/MKhiriev/go-note-vault/internal/validators"
	"github.com/MKhiriev/go-note-vault/models"
)

func newTestFileStorage(t *testing.T) NoteStorage {
	t.Helper()

	storage, err := NewFileNoteStorage(filepath.Join(t.TempDir(), "notes"), logger.Nop())
	require.NoError(t, err)

	return storage
}

func testNote(content string) *models.Note {
	return &models.Note{
		Content:        models.PlainNoteContent(content),
		CreatedAt:      1_700_000_000_000,
		LastAccessedAt: 1_700_000_000_000,
		ExpireDays:     models.DefaultExpireDays,
		Version:        1,
	}
}

func TestFileStorage_PutGetRoundTrip(t *testing.T) {
	storage := newTestFileStorage(t)
	ctx := context.Background()

	require.NoError(t, storage.Put(ctx, "abcd", testNote("hello")))

	got, err := storage.Get(ctx, "abcd")
	require.NoError(t, err)

	assert.Equal(t, "hello", got.Content.Plaintext)
	assert.False(t, got.Content.Encrypted())
	assert.Equal(t, models.DefaultExpireDays, got.ExpireDays)
	assert.Equal(t, int64(1), got.Version)
}

func TestFileStorage_PutEncryptedNoteRoundTrip(t *testing.T) {
	storage := newTestFileStorage(t)
	ctx := context.Background()

	note := testNote("")
	note.PasswordHash = "$2a$10$something"
	note.Content = models.EncryptedNoteContent(&models.EncryptedBlob{
		Encrypted:  true,
		Alg:        models.AlgAESGCM,
		KDF:        models.KDFPBKDF2SHA256,
		Iterations: 100_000,
		Salt:       "c2FsdA==",
		IV:         "aXYxMjM0NTY3OA==",
		Data:       "Y2lwaGVydGV4dA==",
	})

	require.NoError(t, storage.Put(ctx, "prot", note))

	got, err := storage.Get(ctx, "prot")
	require.NoError(t, err)

	require.True(t, got.Content.Encrypted())
	assert.Equal(t, models.AlgAESGCM, got.Content.Blob.Alg)
	assert.Equal(t, note.Content.Blob.Data, got.Content.Blob.Data)
	assert.True(t, got.Protected())
}

func TestFileStorage_GetMissing(t *testing.T) {
	storage := newTestFileStorage(t)

	_, err := storage.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNoteNotFound)
}

func TestFileStorage_Delete(t *testing.T) {
	storage := newTestFileStorage(t)
	ctx := context.Background()

	require.NoError(t, storage.Put(ctx, "gone", testNote("x")))
	require.NoError(t, storage.Delete(ctx, "gone"))

	_, err := storage.Get(ctx, "gone")
	assert.ErrorIs(t, err, ErrNoteNotFound)

	assert.ErrorIs(t, storage.Delete(ctx, "gone"), ErrNoteNotFound)
}

func TestFileStorage_RejectsInvalidID(t *testing.T) {
	storage := newTestFileStorage(t)
	ctx := context.Background()

	_, err := storage.Get(ctx, "../escape")
	assert.ErrorIs(t, err, validators.ErrInvalidNoteID)

	assert.ErrorIs(t, storage.Put(ctx, "a/b", testNote("x")), validators.ErrInvalidNoteID)
	assert.ErrorIs(t, storage.Delete(ctx, ""), validators.ErrInvalidNoteID)
}

func TestFileStorage_ListIDsIgnoresForeignFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "notes")
	storage, err := NewFileNoteStorage(dir, logger.Nop())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, storage.Put(ctx, "one", testNote("1")))
	require.NoError(t, storage.Put(ctx, "two", testNote("2")))

	// Foreign content in the namespace must be invisible to the sweep.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("docs"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad id!.json"), []byte("{}"), 0o600))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "subdir"), 0o700))

	ids, err := storage.ListIDs(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"one", "two"}, ids)
}

func TestFileStorage_CorruptRecord(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "notes")
	storage, err := NewFileNoteStorage(dir, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{not json"), 0o600))

	_, err = storage.Get(context.Background(), "bad")
	assert.ErrorIs(t, err, ErrReadingNote)
}
