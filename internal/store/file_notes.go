// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-note-vault/internal/logger"
	"github.com/MKhiriev/go-note-vault/internal/validators"
	"github.com/MKhiriev/go-note-vault/models"
)

const noteFileExtension = ".json"

// fileNoteStorage is the file-system implementation of [NoteStorage]. Each
// record lives in its own <id>.json file under a dedicated directory. The
// note ID alphabet is re-checked before every path construction, so a
// record path can never escape the directory.
type fileNoteStorage struct {
	dir    string
	logger *logger.Logger
}

// NewFileNoteStorage constructs a [NoteStorage] over dir, creating the
// directory if it does not exist.
func NewFileNoteStorage(dir string, logger *logger.Logger) (NoteStorage, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create notes directory: %w", err)
	}

	logger.Debug().Str("dir", dir).Msg("file note storage created")

	return &fileNoteStorage{
		dir:    dir,
		logger: logger,
	}, nil
}

// Get implements [NoteStorage].
func (f *fileNoteStorage) Get(ctx context.Context, id string) (*models.Note, error) {
	log := logger.FromContext(ctx)

	path, err := f.notePath(id)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoteNotFound
		}
		log.Err(err).Str("note_id", id).Msg("failed to read note file")
		return nil, fmt.Errorf("%w: %w", ErrReadingNote, err)
	}

	var note models.Note
	if err := json.Unmarshal(data, &note); err != nil {
		log.Err(err).Str("note_id", id).Msg("failed to unmarshal note record")
		return nil, fmt.Errorf("%w: %w", ErrReadingNote, err)
	}

	return &note, nil
}

// Put implements [NoteStorage]. The record is written to a temporary file
// in the same directory and renamed into place, so a crash mid-write never
// leaves a truncated record behind.
func (f *fileNoteStorage) Put(ctx context.Context, id string, note *models.Note) error {
	log := logger.FromContext(ctx)

	path, err := f.notePath(id)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(note, "", "  ")
	if err != nil {
		log.Err(err).Str("note_id", id).Msg("failed to marshal note record")
		return fmt.Errorf("%w: %w", ErrWritingNote, err)
	}

	tmp, err := os.CreateTemp(f.dir, id+".tmp-*")
	if err != nil {
		log.Err(err).Str("note_id", id).Msg("failed to create temp note file")
		return fmt.Errorf("%w: %w", ErrWritingNote, err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		log.Err(err).Str("note_id", id).Msg("failed to write note file")
		return fmt.Errorf("%w: %w", ErrWritingNote, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: %w", ErrWritingNote, err)
	}
	if err := os.Chmod(tmp.Name(), 0o600); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: %w", ErrWritingNote, err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		log.Err(err).Str("note_id", id).Msg("failed to move note file into place")
		return fmt.Errorf("%w: %w", ErrWritingNote, err)
	}

	return nil
}

// Delete implements [NoteStorage].
func (f *fileNoteStorage) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	path, err := f.notePath(id)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return ErrNoteNotFound
		}
		log.Err(err).Str("note_id", id).Msg("failed to delete note file")
		return fmt.Errorf("%w: %w", ErrDeletingNote, err)
	}

	return nil
}

// ListIDs implements [NoteStorage]. Files that do not look like note
// records (wrong extension, invalid ID) are foreign and skipped.
func (f *fileNoteStorage) ListIDs(ctx context.Context) ([]string, error) {
	log := logger.FromContext(ctx)

	entries, err := os.ReadDir(f.dir)
	if err != nil {
		log.Err(err).Str("dir", f.dir).Msg("failed to list notes directory")
		return nil, fmt.Errorf("%w: %w", ErrListingNotes, err)
	}

	ids := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), noteFileExtension) {
			continue
		}

		id := strings.TrimSuffix(entry.Name(), noteFileExtension)
		if validators.ValidateNoteID(id) != nil {
			continue
		}

		ids = append(ids, id)
	}

	return ids, nil
}

// notePath resolves the record file for id, rejecting any id that could
// escape the notes directory.
func (f *fileNoteStorage) notePath(id string) (string, error) {
	if err := validators.ValidateNoteID(id); err != nil {
		return "", err
	}

	return filepath.Join(f.dir, id+noteFileExtension), nil
}
