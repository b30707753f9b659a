// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-note-vault/internal/config"
	"github.com/MKhiriev/go-note-vault/internal/crypto"
	"github.com/MKhiriev/go-note-vault/internal/logger"
	"github.com/MKhiriev/go-note-vault/internal/store"
	"github.com/MKhiriev/go-note-vault/internal/validators"
	"github.com/MKhiriev/go-note-vault/models"
)

// noteService is the concrete implementation of [NoteService].
//
// It owns the central invariant of the data model: a record carries a
// password hash if and only if its content is encrypted, and the hash and
// the encryption key always reflect the same password. All five operations
// run their load-transform-persist sequence under a per-ID lock.
type noteService struct {
	storage store.NoteStorage
	cipher  crypto.ContentCipher
	auth    crypto.PasswordAuthenticator

	locks       *keyedMutex
	maxNoteSize int

	// now is the injected clock; tests replace it to drive timestamps
	// deterministically.
	now func() time.Time

	logger *logger.Logger
}

// newNoteService constructs the note service. The lock table and clock are
// handed in rather than created here because the expiry sweep must share
// both; [NewServices] owns the wiring.
func newNoteService(
	storage store.NoteStorage,
	cipher crypto.ContentCipher,
	auth crypto.PasswordAuthenticator,
	locks *keyedMutex,
	now func() time.Time,
	cfg config.App,
	logger *logger.Logger,
) *noteService {
	return &noteService{
		storage:     storage,
		cipher:      cipher,
		auth:        auth,
		locks:       locks,
		maxNoteSize: cfg.MaxNoteSize,
		now:         now,
		logger:      logger,
	}
}

// Get implements [NoteService].
func (s *noteService) Get(ctx context.Context, id, password string) (models.NoteView, error) {
	log := logger.FromContext(ctx)

	if err := validators.ValidateNoteID(id); err != nil {
		return models.NoteView{}, err
	}

	unlock := s.locks.Lock(id)
	defer unlock()

	note, err := s.storage.Get(ctx, id)
	if errors.Is(err, store.ErrNoteNotFound) {
		// Absent IDs read as empty unprotected notes; no record is created
		// until the first save.
		return models.NoteView{Content: "", Protected: false}, nil
	}
	if err != nil {
		return models.NoteView{}, err
	}

	// Reads refresh the retention clock too, so a note that is only ever
	// read never expires under its reader.
	s.touch(note)
	if err := s.storage.Put(ctx, id, note); err != nil {
		return models.NoteView{}, err
	}

	if !note.Protected() {
		return models.NoteView{Content: note.Content.Plaintext, Protected: false}, nil
	}

	if password == "" {
		return models.NoteView{Protected: true}, ErrPasswordRequired
	}
	if !s.auth.Verify(password, note.PasswordHash) {
		log.Warn().Str("note_id", id).Msg("note password verification failed")
		return models.NoteView{Protected: true}, ErrWrongPassword
	}

	if !note.Content.Encrypted() {
		// Legacy record written before encryption-at-rest: hash present,
		// content still plaintext. Readable; the next save re-encrypts it.
		return models.NoteView{Content: note.Content.Plaintext, Protected: false}, nil
	}

	plaintext, err := s.cipher.Decrypt(note.Content.Blob, password)
	if err != nil {
		// Verification succeeded but decryption failed: hash and key have
		// desynchronized. Surfaced as corruption, not as a wrong guess.
		log.Err(err).Str("note_id", id).Msg("decryption failed after successful password verification")
		return models.NoteView{}, fmt.Errorf("note %q: %w", id, err)
	}

	return models.NoteView{Content: plaintext, Protected: false}, nil
}

// Save implements [NoteService].
func (s *noteService) Save(ctx context.Context, id, content, password string) error {
	log := logger.FromContext(ctx)

	if err := validators.ValidateNoteID(id); err != nil {
		return err
	}
	if err := validators.ValidateContent(content, s.maxNoteSize); err != nil {
		return err
	}

	unlock := s.locks.Lock(id)
	defer unlock()

	note, err := s.storage.Get(ctx, id)
	switch {
	case errors.Is(err, store.ErrNoteNotFound):
		note = s.newNote()
	case err != nil:
		return err
	}

	if note.Protected() {
		if password == "" {
			return ErrPasswordRequired
		}
		if !s.auth.Verify(password, note.PasswordHash) {
			log.Warn().Str("note_id", id).Msg("note password verification failed")
			return ErrWrongPassword
		}

		// Re-encrypt under the verified password with fresh salt and IV.
		blob, err := s.cipher.Encrypt(content, password)
		if err != nil {
			return fmt.Errorf("encrypt note content: %w", err)
		}
		note.Content = models.EncryptedNoteContent(blob)
	} else {
		note.Content = models.PlainNoteContent(content)
	}

	s.touch(note)
	return s.storage.Put(ctx, id, note)
}

// SetPassword implements [NoteService]. This is the only operation allowed
// to change the password/encryption pairing: the new hash and the newly
// encrypted content are computed together and persisted in a single write
// under the ID lock, so no caller ever observes one without the other.
func (s *noteService) SetPassword(ctx context.Context, id, currentPassword, newPassword string) error {
	log := logger.FromContext(ctx)

	if err := validators.ValidateNoteID(id); err != nil {
		return err
	}
	if err := validators.ValidateNewPassword(newPassword); err != nil {
		return err
	}

	unlock := s.locks.Lock(id)
	defer unlock()

	note, err := s.storage.Get(ctx, id)
	switch {
	case errors.Is(err, store.ErrNoteNotFound):
		// Protecting a not-yet-saved ID creates the record, so a password
		// can be put in place before any content exists.
		note = s.newNote()
	case err != nil:
		return err
	}

	plaintext := note.Content.Plaintext
	if note.Protected() {
		if currentPassword == "" {
			return ErrPasswordRequired
		}
		if !s.auth.Verify(currentPassword, note.PasswordHash) {
			log.Warn().Str("note_id", id).Msg("note password verification failed")
			return ErrWrongPassword
		}

		if note.Content.Encrypted() {
			plaintext, err = s.cipher.Decrypt(note.Content.Blob, currentPassword)
			if err != nil {
				log.Err(err).Str("note_id", id).Msg("decryption failed during password rotation")
				return fmt.Errorf("note %q: %w", id, err)
			}
		}
	}

	blob, err := s.cipher.Encrypt(plaintext, newPassword)
	if err != nil {
		return fmt.Errorf("encrypt note content: %w", err)
	}
	hash, err := s.auth.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("hash note password: %w", err)
	}

	note.Content = models.EncryptedNoteContent(blob)
	note.PasswordHash = hash

	s.touch(note)
	return s.storage.Put(ctx, id, note)
}

// RemovePassword implements [NoteService].
func (s *noteService) RemovePassword(ctx context.Context, id, currentPassword string) error {
	log := logger.FromContext(ctx)

	if err := validators.ValidateNoteID(id); err != nil {
		return err
	}

	unlock := s.locks.Lock(id)
	defer unlock()

	note, err := s.storage.Get(ctx, id)
	if errors.Is(err, store.ErrNoteNotFound) {
		return ErrNoteNotProtected
	}
	if err != nil {
		return err
	}
	if !note.Protected() {
		return ErrNoteNotProtected
	}

	if currentPassword == "" {
		return ErrPasswordRequired
	}
	if !s.auth.Verify(currentPassword, note.PasswordHash) {
		log.Warn().Str("note_id", id).Msg("note password verification failed")
		return ErrWrongPassword
	}

	plaintext := note.Content.Plaintext
	if note.Content.Encrypted() {
		plaintext, err = s.cipher.Decrypt(note.Content.Blob, currentPassword)
		if err != nil {
			log.Err(err).Str("note_id", id).Msg("decryption failed during password removal")
			return fmt.Errorf("note %q: %w", id, err)
		}
	}

	note.Content = models.PlainNoteContent(plaintext)
	note.PasswordHash = ""

	s.touch(note)
	return s.storage.Put(ctx, id, note)
}

// SetExpiry implements [NoteService].
func (s *noteService) SetExpiry(ctx context.Context, id string, days int, password string) error {
	log := logger.FromContext(ctx)

	if err := validators.ValidateNoteID(id); err != nil {
		return err
	}
	if err := validators.ValidateExpireDays(days); err != nil {
		return err
	}

	unlock := s.locks.Lock(id)
	defer unlock()

	note, err := s.storage.Get(ctx, id)
	if err != nil {
		return err
	}

	if note.Protected() {
		if password == "" {
			return ErrPasswordRequired
		}
		if !s.auth.Verify(password, note.PasswordHash) {
			log.Warn().Str("note_id", id).Msg("note password verification failed")
			return ErrWrongPassword
		}
	}

	note.ExpireDays = days

	s.touch(note)
	return s.storage.Put(ctx, id, note)
}

// newNote returns a fresh unprotected record with default retention.
func (s *noteService) newNote() *models.Note {
	now := s.now().UnixMilli()

	return &models.Note{
		Content:        models.PlainNoteContent(""),
		CreatedAt:      now,
		LastAccessedAt: now,
		ExpireDays:     models.DefaultExpireDays,
	}
}

// touch refreshes the record's last-access time, backfills fields missing
// on legacy records and advances the optimistic-concurrency version before
// the record is persisted.
func (s *noteService) touch(note *models.Note) {
	now := s.now().UnixMilli()

	note.LastAccessedAt = now
	if note.CreatedAt == 0 {
		note.CreatedAt = now
	}
	if note.ExpireDays == 0 {
		note.ExpireDays = models.DefaultExpireDays
	}
	note.Version++
}
