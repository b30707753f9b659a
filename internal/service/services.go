// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"time"

	"github.com/MKhiriev/go-note-vault/internal/config"
	"github.com/MKhiriev/go-note-vault/internal/crypto"
	"github.com/MKhiriev/go-note-vault/internal/logger"
	"github.com/MKhiriev/go-note-vault/internal/store"
)

type Services struct {
	NoteService   NoteService
	ExpiryService ExpiryService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	// One lock table and one clock for both services: every note operation
	// and every sweep of the same ID must serialize against each other.
	locks := newKeyedMutex()
	now := time.Now

	notes := newNoteService(
		storages.Notes,
		crypto.NewContentCipher(crypto.NewKeyDeriver()),
		crypto.NewPasswordAuthenticator(),
		locks,
		now,
		cfg.App,
		logger,
	)

	return &Services{
		NoteService:   notes,
		ExpiryService: newExpiryService(storages.Notes, locks, now, logger),
	}
}
