// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-note-vault/internal/logger"
	"github.com/MKhiriev/go-note-vault/internal/store"
)

// expiryService scans storage for notes whose retention window has elapsed
// and deletes them. It shares the per-ID lock table with the note service,
// so a sweep never races a concurrent read or write of the same note.
type expiryService struct {
	storage store.NoteStorage
	locks   *keyedMutex
	now     func() time.Time
	logger  *logger.Logger
}

// newExpiryService constructs the sweep over the given storage. locks and
// now must be the same lock table and clock the note service runs on;
// [NewServices] owns the wiring.
func newExpiryService(storage store.NoteStorage, locks *keyedMutex, now func() time.Time, logger *logger.Logger) *expiryService {
	return &expiryService{
		storage: storage,
		locks:   locks,
		now:     now,
		logger:  logger,
	}
}

// Sweep implements [ExpiryService]. A failure on one record is logged and
// skipped so a single corrupt note cannot stall retention for the rest.
func (s *expiryService) Sweep(ctx context.Context) ([]string, error) {
	ids, err := s.storage.ListIDs(ctx)
	if err != nil {
		return nil, err
	}

	var purged []string
	for _, id := range ids {
		select {
		case <-ctx.Done():
			return purged, ctx.Err()
		default:
		}

		if s.sweepOne(ctx, id) {
			purged = append(purged, id)
		}
	}

	return purged, nil
}

// sweepOne checks a single note under its ID lock and deletes it if stale.
// The expiry decision is made against a freshly loaded record: a note
// touched between ListIDs and here is not purged.
func (s *expiryService) sweepOne(ctx context.Context, id string) bool {
	unlock := s.locks.Lock(id)
	defer unlock()

	note, err := s.storage.Get(ctx, id)
	if err != nil {
		// Already deleted by a concurrent sweep, or unreadable. Either way
		// it is not this pass's purge.
		s.logger.Warn().Err(err).Str("note_id", id).Msg("expiry sweep: skipping note")
		return false
	}

	if !note.Expired(s.now()) {
		return false
	}

	if err := s.storage.Delete(ctx, id); err != nil {
		s.logger.Warn().Err(err).Str("note_id", id).Msg("expiry sweep: delete failed")
		return false
	}

	s.logger.Info().Str("note_id", id).Msg("expiry sweep: purged expired note")
	return true
}
