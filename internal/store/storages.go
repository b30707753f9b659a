// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-note-vault/internal/config"
	"github.com/MKhiriev/go-note-vault/internal/logger"
)

// Storages bundles the constructed note storage with the optional SQL
// connection behind it, so the caller can close the connection on shutdown.
type Storages struct {
	Notes NoteStorage

	db *DB
}

// NewStorages constructs the note storage selected by cfg.Storage.Backend,
// runs migrations for SQL backends and wraps the result with the record
// cache when cfg.Cache.TTL is positive.
func NewStorages(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*Storages, error) {
	storages := new(Storages)

	switch cfg.Storage.Backend {
	case config.BackendFile:
		notes, err := NewFileNoteStorage(cfg.Storage.Files.NotesDir, log)
		if err != nil {
			return nil, fmt.Errorf("error creating file note storage: %w", err)
		}
		storages.Notes = notes

	case config.BackendSQLite:
		db, err := NewConnectSQLite(ctx, cfg.Storage.DB, log)
		if err != nil {
			return nil, err
		}
		if err := db.Migrate(); err != nil {
			return nil, err
		}
		storages.db = db
		storages.Notes = NewSQLNoteStorage(db, log)

	case config.BackendPostgres:
		db, err := NewConnectPostgres(ctx, cfg.Storage.DB, log)
		if err != nil {
			return nil, err
		}
		if err := db.Migrate(); err != nil {
			return nil, err
		}
		storages.db = db
		storages.Notes = NewSQLNoteStorage(db, log)

	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}

	if cfg.Cache.TTL > 0 {
		storages.Notes = NewCachedNoteStorage(storages.Notes, cfg.Cache.TTL, time.Now, log)
	}

	return storages, nil
}

// Close releases the SQL connection, if any.
func (s *Storages) Close() error {
	if s.db != nil {
		return s.db.Close()
	}

	return nil
}
